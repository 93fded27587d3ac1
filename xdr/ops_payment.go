package xdr

// CreateAccountOp funds a new account from the source account's balance.
type CreateAccountOp struct {
	Destination     AccountId
	StartingBalance Int64
}

func (o CreateAccountOp) EncodeTo(e *Encoder) error {
	if err := o.Destination.EncodeTo(e); err != nil {
		return err
	}
	return o.StartingBalance.EncodeTo(e)
}

func (o *CreateAccountOp) DecodeFrom(d *Decoder) error {
	if err := o.Destination.DecodeFrom(d); err != nil {
		return err
	}
	return o.StartingBalance.DecodeFrom(d)
}

// PaymentOp sends Amount of Asset from the operation's (implicit or explicit) source to Destination.
type PaymentOp struct {
	Destination MuxedAccount
	Asset       Asset
	Amount      Int64
}

func (o PaymentOp) EncodeTo(e *Encoder) error {
	if err := o.Destination.EncodeTo(e); err != nil {
		return err
	}
	if err := o.Asset.EncodeTo(e); err != nil {
		return err
	}
	return o.Amount.EncodeTo(e)
}

func (o *PaymentOp) DecodeFrom(d *Decoder) error {
	if err := o.Destination.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.Asset.DecodeFrom(d); err != nil {
		return err
	}
	return o.Amount.DecodeFrom(d)
}

// PathPaymentStrictReceiveOp sends exactly DestAmount of DestAsset, spending at most SendMax of
// SendAsset, converted along Path.
type PathPaymentStrictReceiveOp struct {
	SendAsset   Asset
	SendMax     Int64
	Destination MuxedAccount
	DestAsset   Asset
	DestAmount  Int64
	Path        []Asset
}

func (o PathPaymentStrictReceiveOp) EncodeTo(e *Encoder) error {
	if err := o.SendAsset.EncodeTo(e); err != nil {
		return err
	}
	if err := o.SendMax.EncodeTo(e); err != nil {
		return err
	}
	if err := o.Destination.EncodeTo(e); err != nil {
		return err
	}
	if err := o.DestAsset.EncodeTo(e); err != nil {
		return err
	}
	if err := o.DestAmount.EncodeTo(e); err != nil {
		return err
	}
	if len(o.Path) > 5 {
		return errInvalidLength("PathPaymentStrictReceiveOp.Path", 5, len(o.Path))
	}
	e.EncodeUint32(uint32(len(o.Path)))
	for i := range o.Path {
		if err := o.Path[i].EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (o *PathPaymentStrictReceiveOp) DecodeFrom(d *Decoder) error {
	if err := o.SendAsset.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.SendMax.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.Destination.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.DestAsset.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.DestAmount.DecodeFrom(d); err != nil {
		return err
	}
	n, err := d.DecodeUint32("PathPaymentStrictReceiveOp.Path.len")
	if err != nil {
		return err
	}
	if n > 5 {
		return errInvalidLength("PathPaymentStrictReceiveOp.Path", 5, int(n))
	}
	o.Path = make([]Asset, n)
	for i := range o.Path {
		if err := o.Path[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	return nil
}

// PathPaymentStrictSendOp spends exactly SendAmount of SendAsset, requiring at least DestMin of
// DestAsset to arrive, converted along Path.
type PathPaymentStrictSendOp struct {
	SendAsset   Asset
	SendAmount  Int64
	Destination MuxedAccount
	DestAsset   Asset
	DestMin     Int64
	Path        []Asset
}

func (o PathPaymentStrictSendOp) EncodeTo(e *Encoder) error {
	if err := o.SendAsset.EncodeTo(e); err != nil {
		return err
	}
	if err := o.SendAmount.EncodeTo(e); err != nil {
		return err
	}
	if err := o.Destination.EncodeTo(e); err != nil {
		return err
	}
	if err := o.DestAsset.EncodeTo(e); err != nil {
		return err
	}
	if err := o.DestMin.EncodeTo(e); err != nil {
		return err
	}
	if len(o.Path) > 5 {
		return errInvalidLength("PathPaymentStrictSendOp.Path", 5, len(o.Path))
	}
	e.EncodeUint32(uint32(len(o.Path)))
	for i := range o.Path {
		if err := o.Path[i].EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (o *PathPaymentStrictSendOp) DecodeFrom(d *Decoder) error {
	if err := o.SendAsset.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.SendAmount.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.Destination.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.DestAsset.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.DestMin.DecodeFrom(d); err != nil {
		return err
	}
	n, err := d.DecodeUint32("PathPaymentStrictSendOp.Path.len")
	if err != nil {
		return err
	}
	if n > 5 {
		return errInvalidLength("PathPaymentStrictSendOp.Path", 5, int(n))
	}
	o.Path = make([]Asset, n)
	for i := range o.Path {
		if err := o.Path[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	return nil
}

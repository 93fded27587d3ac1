package xdr

// CreateClaimableBalanceOp escrows Amount of Asset, claimable by any of Claimants once its
// predicate is satisfied.
type CreateClaimableBalanceOp struct {
	Asset     Asset
	Amount    Int64
	Claimants []Claimant
}

func (o CreateClaimableBalanceOp) EncodeTo(e *Encoder) error {
	if err := o.Asset.EncodeTo(e); err != nil {
		return err
	}
	if err := o.Amount.EncodeTo(e); err != nil {
		return err
	}
	if len(o.Claimants) > 10 {
		return errInvalidLength("CreateClaimableBalanceOp.Claimants", 10, len(o.Claimants))
	}
	e.EncodeUint32(uint32(len(o.Claimants)))
	for i := range o.Claimants {
		if err := o.Claimants[i].EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (o *CreateClaimableBalanceOp) DecodeFrom(d *Decoder) error {
	if err := o.Asset.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.Amount.DecodeFrom(d); err != nil {
		return err
	}
	n, err := d.DecodeUint32("CreateClaimableBalanceOp.Claimants.len")
	if err != nil {
		return err
	}
	if n > 10 {
		return errInvalidLength("CreateClaimableBalanceOp.Claimants", 10, int(n))
	}
	o.Claimants = make([]Claimant, n)
	for i := range o.Claimants {
		if err := o.Claimants[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	return nil
}

// ClaimClaimableBalanceOp claims BalanceId on behalf of the operation's source account.
type ClaimClaimableBalanceOp struct {
	BalanceId ClaimableBalanceId
}

func (o ClaimClaimableBalanceOp) EncodeTo(e *Encoder) error { return o.BalanceId.EncodeTo(e) }
func (o *ClaimClaimableBalanceOp) DecodeFrom(d *Decoder) error { return o.BalanceId.DecodeFrom(d) }

// ClawbackOp reclaims Amount of Asset from From's trustline; only permitted when the asset issuer
// has AUTH_CLAWBACK_ENABLED set and the trustline itself was created clawback-enabled.
type ClawbackOp struct {
	Asset  Asset
	From   MuxedAccount
	Amount Int64
}

func (o ClawbackOp) EncodeTo(e *Encoder) error {
	if err := o.Asset.EncodeTo(e); err != nil {
		return err
	}
	if err := o.From.EncodeTo(e); err != nil {
		return err
	}
	return o.Amount.EncodeTo(e)
}

func (o *ClawbackOp) DecodeFrom(d *Decoder) error {
	if err := o.Asset.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.From.DecodeFrom(d); err != nil {
		return err
	}
	return o.Amount.DecodeFrom(d)
}

// ClawbackClaimableBalanceOp reclaims an entire pending ClaimableBalance back to the issuer.
type ClawbackClaimableBalanceOp struct {
	BalanceId ClaimableBalanceId
}

func (o ClawbackClaimableBalanceOp) EncodeTo(e *Encoder) error { return o.BalanceId.EncodeTo(e) }
func (o *ClawbackClaimableBalanceOp) DecodeFrom(d *Decoder) error { return o.BalanceId.DecodeFrom(d) }

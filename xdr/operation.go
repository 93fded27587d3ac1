package xdr

// OperationType discriminates OperationBody. Numbering matches the network's wire protocol so
// that captured envelopes decode without translation.
type OperationType int32

const (
	OperationTypeCreateAccount                   OperationType = 0
	OperationTypePayment                          OperationType = 1
	OperationTypePathPaymentStrictReceive         OperationType = 2
	OperationTypeManageSellOffer                  OperationType = 3
	OperationTypeCreatePassiveSellOffer            OperationType = 4
	OperationTypeSetOptions                        OperationType = 5
	OperationTypeChangeTrust                       OperationType = 6
	OperationTypeAllowTrust                        OperationType = 7
	OperationTypeAccountMerge                      OperationType = 8
	OperationTypeManageData                        OperationType = 10
	OperationTypeBumpSequence                      OperationType = 11
	OperationTypeManageBuyOffer                    OperationType = 12
	OperationTypePathPaymentStrictSend              OperationType = 13
	OperationTypeCreateClaimableBalance             OperationType = 14
	OperationTypeClaimClaimableBalance              OperationType = 15
	OperationTypeBeginSponsoringFutureReserves      OperationType = 16
	OperationTypeEndSponsoringFutureReserves        OperationType = 17
	OperationTypeRevokeSponsorship                  OperationType = 18
	OperationTypeClawback                           OperationType = 19
	OperationTypeClawbackClaimableBalance           OperationType = 20
	OperationTypeSetTrustLineFlags                  OperationType = 21
	OperationTypeLiquidityPoolDeposit               OperationType = 22
	OperationTypeLiquidityPoolWithdraw              OperationType = 23
	OperationTypeInvokeHostFunction                  OperationType = 24
	OperationTypeExtendFootprintTTL                  OperationType = 25
	OperationTypeRestoreFootprint                    OperationType = 26
)

// OperationBody is the union of all operation kinds. AccountMerge and EndSponsoringFutureReserves
// carry no dedicated struct: the former's sole field is a MuxedAccount, the latter has no fields.
type OperationBody struct {
	Type                            OperationType
	CreateAccount                    *CreateAccountOp
	Payment                          *PaymentOp
	PathPaymentStrictReceive          *PathPaymentStrictReceiveOp
	ManageSellOffer                   *ManageSellOfferOp
	CreatePassiveSellOffer             *CreatePassiveSellOfferOp
	SetOptions                        *SetOptionsOp
	ChangeTrust                        *ChangeTrustOp
	AllowTrust                         *AllowTrustOp
	AccountMerge                       *MuxedAccount
	ManageData                         *ManageDataOp
	BumpSequence                       *BumpSequenceOp
	ManageBuyOffer                     *ManageBuyOfferOp
	PathPaymentStrictSend               *PathPaymentStrictSendOp
	CreateClaimableBalance              *CreateClaimableBalanceOp
	ClaimClaimableBalance               *ClaimClaimableBalanceOp
	BeginSponsoringFutureReserves        *BeginSponsoringFutureReservesOp
	RevokeSponsorship                    *RevokeSponsorshipOp
	Clawback                             *ClawbackOp
	ClawbackClaimableBalance             *ClawbackClaimableBalanceOp
	SetTrustLineFlags                    *SetTrustLineFlagsOp
	LiquidityPoolDeposit                 *LiquidityPoolDepositOp
	LiquidityPoolWithdraw                *LiquidityPoolWithdrawOp
	InvokeHostFunction                   *InvokeHostFunctionOp
	ExtendFootprintTTL                   *ExtendFootprintTTLOp
	RestoreFootprint                     *RestoreFootprintOp
}

func (b OperationBody) EncodeTo(e *Encoder) error {
	e.EncodeInt32(int32(b.Type))
	switch b.Type {
	case OperationTypeCreateAccount:
		return b.CreateAccount.EncodeTo(e)
	case OperationTypePayment:
		return b.Payment.EncodeTo(e)
	case OperationTypePathPaymentStrictReceive:
		return b.PathPaymentStrictReceive.EncodeTo(e)
	case OperationTypeManageSellOffer:
		return b.ManageSellOffer.EncodeTo(e)
	case OperationTypeCreatePassiveSellOffer:
		return b.CreatePassiveSellOffer.EncodeTo(e)
	case OperationTypeSetOptions:
		return b.SetOptions.EncodeTo(e)
	case OperationTypeChangeTrust:
		return b.ChangeTrust.EncodeTo(e)
	case OperationTypeAllowTrust:
		return b.AllowTrust.EncodeTo(e)
	case OperationTypeAccountMerge:
		return b.AccountMerge.EncodeTo(e)
	case OperationTypeManageData:
		return b.ManageData.EncodeTo(e)
	case OperationTypeBumpSequence:
		return b.BumpSequence.EncodeTo(e)
	case OperationTypeManageBuyOffer:
		return b.ManageBuyOffer.EncodeTo(e)
	case OperationTypePathPaymentStrictSend:
		return b.PathPaymentStrictSend.EncodeTo(e)
	case OperationTypeCreateClaimableBalance:
		return b.CreateClaimableBalance.EncodeTo(e)
	case OperationTypeClaimClaimableBalance:
		return b.ClaimClaimableBalance.EncodeTo(e)
	case OperationTypeBeginSponsoringFutureReserves:
		return b.BeginSponsoringFutureReserves.EncodeTo(e)
	case OperationTypeEndSponsoringFutureReserves:
		return nil
	case OperationTypeRevokeSponsorship:
		return b.RevokeSponsorship.EncodeTo(e)
	case OperationTypeClawback:
		return b.Clawback.EncodeTo(e)
	case OperationTypeClawbackClaimableBalance:
		return b.ClawbackClaimableBalance.EncodeTo(e)
	case OperationTypeSetTrustLineFlags:
		return b.SetTrustLineFlags.EncodeTo(e)
	case OperationTypeLiquidityPoolDeposit:
		return b.LiquidityPoolDeposit.EncodeTo(e)
	case OperationTypeLiquidityPoolWithdraw:
		return b.LiquidityPoolWithdraw.EncodeTo(e)
	case OperationTypeInvokeHostFunction:
		return b.InvokeHostFunction.EncodeTo(e)
	case OperationTypeExtendFootprintTTL:
		return b.ExtendFootprintTTL.EncodeTo(e)
	case OperationTypeRestoreFootprint:
		return b.RestoreFootprint.EncodeTo(e)
	default:
		return errInvalidDiscriminant("OperationBody", int64(b.Type))
	}
}

func (b *OperationBody) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("OperationBody.Type")
	if err != nil {
		return err
	}
	b.Type = OperationType(t)
	switch b.Type {
	case OperationTypeCreateAccount:
		v := new(CreateAccountOp)
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		b.CreateAccount = v
	case OperationTypePayment:
		v := new(PaymentOp)
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		b.Payment = v
	case OperationTypePathPaymentStrictReceive:
		v := new(PathPaymentStrictReceiveOp)
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		b.PathPaymentStrictReceive = v
	case OperationTypeManageSellOffer:
		v := new(ManageSellOfferOp)
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		b.ManageSellOffer = v
	case OperationTypeCreatePassiveSellOffer:
		v := new(CreatePassiveSellOfferOp)
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		b.CreatePassiveSellOffer = v
	case OperationTypeSetOptions:
		v := new(SetOptionsOp)
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		b.SetOptions = v
	case OperationTypeChangeTrust:
		v := new(ChangeTrustOp)
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		b.ChangeTrust = v
	case OperationTypeAllowTrust:
		v := new(AllowTrustOp)
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		b.AllowTrust = v
	case OperationTypeAccountMerge:
		v := new(MuxedAccount)
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		b.AccountMerge = v
	case OperationTypeManageData:
		v := new(ManageDataOp)
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		b.ManageData = v
	case OperationTypeBumpSequence:
		v := new(BumpSequenceOp)
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		b.BumpSequence = v
	case OperationTypeManageBuyOffer:
		v := new(ManageBuyOfferOp)
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		b.ManageBuyOffer = v
	case OperationTypePathPaymentStrictSend:
		v := new(PathPaymentStrictSendOp)
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		b.PathPaymentStrictSend = v
	case OperationTypeCreateClaimableBalance:
		v := new(CreateClaimableBalanceOp)
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		b.CreateClaimableBalance = v
	case OperationTypeClaimClaimableBalance:
		v := new(ClaimClaimableBalanceOp)
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		b.ClaimClaimableBalance = v
	case OperationTypeBeginSponsoringFutureReserves:
		v := new(BeginSponsoringFutureReservesOp)
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		b.BeginSponsoringFutureReserves = v
	case OperationTypeEndSponsoringFutureReserves:
		return nil
	case OperationTypeRevokeSponsorship:
		v := new(RevokeSponsorshipOp)
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		b.RevokeSponsorship = v
	case OperationTypeClawback:
		v := new(ClawbackOp)
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		b.Clawback = v
	case OperationTypeClawbackClaimableBalance:
		v := new(ClawbackClaimableBalanceOp)
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		b.ClawbackClaimableBalance = v
	case OperationTypeSetTrustLineFlags:
		v := new(SetTrustLineFlagsOp)
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		b.SetTrustLineFlags = v
	case OperationTypeLiquidityPoolDeposit:
		v := new(LiquidityPoolDepositOp)
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		b.LiquidityPoolDeposit = v
	case OperationTypeLiquidityPoolWithdraw:
		v := new(LiquidityPoolWithdrawOp)
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		b.LiquidityPoolWithdraw = v
	case OperationTypeInvokeHostFunction:
		v := new(InvokeHostFunctionOp)
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		b.InvokeHostFunction = v
	case OperationTypeExtendFootprintTTL:
		v := new(ExtendFootprintTTLOp)
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		b.ExtendFootprintTTL = v
	case OperationTypeRestoreFootprint:
		v := new(RestoreFootprintOp)
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		b.RestoreFootprint = v
	default:
		return errInvalidDiscriminant("OperationBody", int64(t))
	}
	return nil
}

// Operation pairs an optional SourceAccount override with its Body; when SourceAccount is nil the
// enclosing transaction's source account applies.
type Operation struct {
	SourceAccount *MuxedAccount
	Body          OperationBody
}

func (o Operation) EncodeTo(e *Encoder) error {
	e.EncodeOptionalPresent(o.SourceAccount != nil)
	if o.SourceAccount != nil {
		if err := o.SourceAccount.EncodeTo(e); err != nil {
			return err
		}
	}
	return o.Body.EncodeTo(e)
}

func (o *Operation) DecodeFrom(d *Decoder) error {
	present, err := d.DecodeBool("Operation.SourceAccount?")
	if err != nil {
		return err
	}
	if present {
		var src MuxedAccount
		if err := src.DecodeFrom(d); err != nil {
			return err
		}
		o.SourceAccount = &src
	}
	return o.Body.DecodeFrom(d)
}

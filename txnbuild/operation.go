package txnbuild

import (
	"github.com/Soneso/stellar-go-sdk/xdr"
)

// Operation is implemented by every operation variant the builder accepts.
type Operation interface {
	// GetSourceAccount returns the operation-level source account override, or "" to inherit the
	// transaction's source account.
	GetSourceAccount() string
	toXDRBody() (xdr.OperationBody, error)
}

func toXDROperation(op Operation) (xdr.Operation, error) {
	body, err := op.toXDRBody()
	if err != nil {
		return xdr.Operation{}, err
	}
	out := xdr.Operation{Body: body}
	if src := op.GetSourceAccount(); src != "" {
		m, err := muxedAccountFromAddress(src)
		if err != nil {
			return xdr.Operation{}, err
		}
		out.SourceAccount = &m
	}
	return out, nil
}

func operationSource(x xdr.Operation) string {
	if x.SourceAccount == nil {
		return ""
	}
	s, err := addressFromMuxedAccount(*x.SourceAccount)
	if err != nil {
		return ""
	}
	return s
}

// operationFromXDR converts an xdr.Operation back into the matching builder Operation variant.
func operationFromXDR(x xdr.Operation) (Operation, error) {
	src := operationSource(x)
	b := x.Body
	switch b.Type {
	case xdr.OperationTypeCreateAccount:
		return createAccountFromXDR(src, b.CreateAccount)
	case xdr.OperationTypePayment:
		return paymentFromXDR(src, b.Payment)
	case xdr.OperationTypePathPaymentStrictReceive:
		return pathPaymentStrictReceiveFromXDR(src, b.PathPaymentStrictReceive)
	case xdr.OperationTypePathPaymentStrictSend:
		return pathPaymentStrictSendFromXDR(src, b.PathPaymentStrictSend)
	case xdr.OperationTypeManageSellOffer:
		return manageSellOfferFromXDR(src, b.ManageSellOffer)
	case xdr.OperationTypeManageBuyOffer:
		return manageBuyOfferFromXDR(src, b.ManageBuyOffer)
	case xdr.OperationTypeCreatePassiveSellOffer:
		return createPassiveSellOfferFromXDR(src, b.CreatePassiveSellOffer)
	case xdr.OperationTypeSetOptions:
		return setOptionsFromXDR(src, b.SetOptions)
	case xdr.OperationTypeChangeTrust:
		return changeTrustFromXDR(src, b.ChangeTrust)
	case xdr.OperationTypeAllowTrust:
		return allowTrustFromXDR(src, b.AllowTrust)
	case xdr.OperationTypeAccountMerge:
		return accountMergeFromXDR(src, b.AccountMerge)
	case xdr.OperationTypeManageData:
		return manageDataFromXDR(src, b.ManageData)
	case xdr.OperationTypeBumpSequence:
		return bumpSequenceFromXDR(src, b.BumpSequence)
	case xdr.OperationTypeCreateClaimableBalance:
		return createClaimableBalanceFromXDR(src, b.CreateClaimableBalance)
	case xdr.OperationTypeClaimClaimableBalance:
		return claimClaimableBalanceFromXDR(src, b.ClaimClaimableBalance)
	case xdr.OperationTypeClawback:
		return clawbackFromXDR(src, b.Clawback)
	case xdr.OperationTypeClawbackClaimableBalance:
		return clawbackClaimableBalanceFromXDR(src, b.ClawbackClaimableBalance)
	case xdr.OperationTypeSetTrustLineFlags:
		return setTrustLineFlagsFromXDR(src, b.SetTrustLineFlags)
	case xdr.OperationTypeBeginSponsoringFutureReserves:
		return beginSponsoringFutureReservesFromXDR(src, b.BeginSponsoringFutureReserves)
	case xdr.OperationTypeEndSponsoringFutureReserves:
		return EndSponsoringFutureReserves{SourceAccount: src}, nil
	case xdr.OperationTypeRevokeSponsorship:
		return revokeSponsorshipFromXDR(src, b.RevokeSponsorship)
	case xdr.OperationTypeLiquidityPoolDeposit:
		return liquidityPoolDepositFromXDR(src, b.LiquidityPoolDeposit)
	case xdr.OperationTypeLiquidityPoolWithdraw:
		return liquidityPoolWithdrawFromXDR(src, b.LiquidityPoolWithdraw)
	case xdr.OperationTypeInvokeHostFunction:
		return invokeHostFunctionFromXDR(src, b.InvokeHostFunction)
	case xdr.OperationTypeExtendFootprintTTL:
		return extendFootprintTTLFromXDR(src, b.ExtendFootprintTTL)
	case xdr.OperationTypeRestoreFootprint:
		return RestoreFootprint{SourceAccount: src}, nil
	default:
		return nil, &Error{Msg: "unsupported operation discriminant"}
	}
}

package txnbuild

import (
	"github.com/Soneso/stellar-go-sdk/amount"
	"github.com/Soneso/stellar-go-sdk/asset"
	"github.com/Soneso/stellar-go-sdk/xdr"
)

// CreateClaimableBalance locks Amount of Asset until one of Claimants satisfies its predicate.
// At most 10 claimants are allowed.
type CreateClaimableBalance struct {
	SourceAccount string
	Asset         asset.Asset
	Amount        string
	Claimants     []Claimant
}

func (op CreateClaimableBalance) GetSourceAccount() string { return op.SourceAccount }

func (op CreateClaimableBalance) toXDRBody() (xdr.OperationBody, error) {
	if len(op.Claimants) == 0 || len(op.Claimants) > 10 {
		return xdr.OperationBody{}, &Error{Msg: "claimable balance requires 1-10 claimants"}
	}
	a, err := op.Asset.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	amt, err := amount.Parse(op.Amount)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	claimants := make([]xdr.Claimant, len(op.Claimants))
	for i, c := range op.Claimants {
		x, err := c.toXDR()
		if err != nil {
			return xdr.OperationBody{}, err
		}
		claimants[i] = x
	}
	return xdr.OperationBody{
		Type: xdr.OperationTypeCreateClaimableBalance,
		CreateClaimableBalance: &xdr.CreateClaimableBalanceOp{
			Asset:     a,
			Amount:    xdr.Int64(amt),
			Claimants: claimants,
		},
	}, nil
}

func createClaimableBalanceFromXDR(src string, op *xdr.CreateClaimableBalanceOp) (Operation, error) {
	a, err := asset.FromXDR(op.Asset)
	if err != nil {
		return nil, err
	}
	claimants := make([]Claimant, len(op.Claimants))
	for i, c := range op.Claimants {
		conv, err := claimantFromXDR(c)
		if err != nil {
			return nil, err
		}
		claimants[i] = conv
	}
	return CreateClaimableBalance{
		SourceAccount: src,
		Asset:         a,
		Amount:        amount.String(int64(op.Amount)),
		Claimants:     claimants,
	}, nil
}

// claimableBalanceIDFromHex accepts the balance id's canonical hex or "B..." strkey form.
func claimableBalanceIDFromHex(s string) (xdr.ClaimableBalanceId, error) {
	id, err := asset.ParsePoolID(s)
	if err != nil {
		return xdr.ClaimableBalanceId{}, err
	}
	h := xdr.Hash(id)
	return xdr.ClaimableBalanceId{Type: xdr.ClaimableBalanceIdTypeV0, V0: &h}, nil
}

func claimableBalanceIDToHex(id xdr.ClaimableBalanceId) (string, error) {
	if id.Type != xdr.ClaimableBalanceIdTypeV0 || id.V0 == nil {
		return "", &Error{Msg: "unsupported ClaimableBalanceId discriminant"}
	}
	return hashToHex(*id.V0), nil
}

// ClaimClaimableBalance claims a previously created claimable balance, identified by hex or
// strkey BalanceID, for the source account.
type ClaimClaimableBalance struct {
	SourceAccount string
	BalanceID     string
}

func (op ClaimClaimableBalance) GetSourceAccount() string { return op.SourceAccount }

func (op ClaimClaimableBalance) toXDRBody() (xdr.OperationBody, error) {
	id, err := claimableBalanceIDFromHex(op.BalanceID)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type:                  xdr.OperationTypeClaimClaimableBalance,
		ClaimClaimableBalance: &xdr.ClaimClaimableBalanceOp{BalanceId: id},
	}, nil
}

func claimClaimableBalanceFromXDR(src string, op *xdr.ClaimClaimableBalanceOp) (Operation, error) {
	id, err := claimableBalanceIDToHex(op.BalanceId)
	if err != nil {
		return nil, err
	}
	return ClaimClaimableBalance{SourceAccount: src, BalanceID: id}, nil
}

// Clawback reclaims Amount of Asset from From's trustline. Only valid for assets whose issuer has
// the clawback-enabled flag set.
type Clawback struct {
	SourceAccount string
	Asset         asset.Asset
	From          string
	Amount        string
}

func (op Clawback) GetSourceAccount() string { return op.SourceAccount }

func (op Clawback) toXDRBody() (xdr.OperationBody, error) {
	a, err := op.Asset.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	from, err := muxedAccountFromAddress(op.From)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	amt, err := amount.Parse(op.Amount)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type:     xdr.OperationTypeClawback,
		Clawback: &xdr.ClawbackOp{Asset: a, From: from, Amount: xdr.Int64(amt)},
	}, nil
}

func clawbackFromXDR(src string, op *xdr.ClawbackOp) (Operation, error) {
	a, err := asset.FromXDR(op.Asset)
	if err != nil {
		return nil, err
	}
	from, err := addressFromMuxedAccount(op.From)
	if err != nil {
		return nil, err
	}
	return Clawback{SourceAccount: src, Asset: a, From: from, Amount: amount.String(int64(op.Amount))}, nil
}

// ClawbackClaimableBalance reclaims an entire claimable balance back to its issuer.
type ClawbackClaimableBalance struct {
	SourceAccount string
	BalanceID     string
}

func (op ClawbackClaimableBalance) GetSourceAccount() string { return op.SourceAccount }

func (op ClawbackClaimableBalance) toXDRBody() (xdr.OperationBody, error) {
	id, err := claimableBalanceIDFromHex(op.BalanceID)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type:                     xdr.OperationTypeClawbackClaimableBalance,
		ClawbackClaimableBalance: &xdr.ClawbackClaimableBalanceOp{BalanceId: id},
	}, nil
}

func clawbackClaimableBalanceFromXDR(src string, op *xdr.ClawbackClaimableBalanceOp) (Operation, error) {
	id, err := claimableBalanceIDToHex(op.BalanceId)
	if err != nil {
		return nil, err
	}
	return ClawbackClaimableBalance{SourceAccount: src, BalanceID: id}, nil
}

package txnbuild

import (
	"github.com/Soneso/stellar-go-sdk/amount"
	"github.com/Soneso/stellar-go-sdk/asset"
	"github.com/Soneso/stellar-go-sdk/xdr"
)

// Payment sends Amount (human decimal form) of Asset from the source account to Destination.
type Payment struct {
	SourceAccount string
	Destination   string
	Asset         asset.Asset
	Amount        string
}

func (op Payment) GetSourceAccount() string { return op.SourceAccount }

func (op Payment) toXDRBody() (xdr.OperationBody, error) {
	dest, err := muxedAccountFromAddress(op.Destination)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	a, err := op.Asset.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	amt, err := parsePaymentAmount(op.Amount)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type: xdr.OperationTypePayment,
		Payment: &xdr.PaymentOp{
			Destination: dest,
			Asset:       a,
			Amount:      xdr.Int64(amt),
		},
	}, nil
}

// parsePaymentAmount parses a decimal payment amount, rejecting zero or negative amounts per the
// network's non-trivial Payment validation rule (amount must be strictly positive).
func parsePaymentAmount(s string) (int64, error) {
	v, err := amount.Parse(s)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, &Error{Msg: "payment amount must be positive"}
	}
	return v, nil
}

func paymentFromXDR(src string, op *xdr.PaymentOp) (Operation, error) {
	dest, err := addressFromMuxedAccount(op.Destination)
	if err != nil {
		return nil, err
	}
	a, err := asset.FromXDR(op.Asset)
	if err != nil {
		return nil, err
	}
	return Payment{SourceAccount: src, Destination: dest, Asset: a, Amount: amount.String(int64(op.Amount))}, nil
}

// PathPaymentStrictReceive sends at most SendMax of SendAsset so that Destination receives
// exactly DestAmount of DestAsset, routed through the given intermediate assets.
type PathPaymentStrictReceive struct {
	SourceAccount string
	SendAsset     asset.Asset
	SendMax       string
	Destination   string
	DestAsset     asset.Asset
	DestAmount    string
	Path          []asset.Asset
}

func (op PathPaymentStrictReceive) GetSourceAccount() string { return op.SourceAccount }

func (op PathPaymentStrictReceive) toXDRBody() (xdr.OperationBody, error) {
	if len(op.Path) > 5 {
		return xdr.OperationBody{}, &Error{Msg: "path payment path longer than 5 assets"}
	}
	dest, err := muxedAccountFromAddress(op.Destination)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	sendAsset, err := op.SendAsset.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	destAsset, err := op.DestAsset.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	sendMax, err := amount.Parse(op.SendMax)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	destAmount, err := amount.Parse(op.DestAmount)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	path, err := assetsToXDR(op.Path)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type: xdr.OperationTypePathPaymentStrictReceive,
		PathPaymentStrictReceive: &xdr.PathPaymentStrictReceiveOp{
			SendAsset:   sendAsset,
			SendMax:     xdr.Int64(sendMax),
			Destination: dest,
			DestAsset:   destAsset,
			DestAmount:  xdr.Int64(destAmount),
			Path:        path,
		},
	}, nil
}

func pathPaymentStrictReceiveFromXDR(src string, op *xdr.PathPaymentStrictReceiveOp) (Operation, error) {
	dest, err := addressFromMuxedAccount(op.Destination)
	if err != nil {
		return nil, err
	}
	sendAsset, err := asset.FromXDR(op.SendAsset)
	if err != nil {
		return nil, err
	}
	destAsset, err := asset.FromXDR(op.DestAsset)
	if err != nil {
		return nil, err
	}
	path, err := assetsFromXDR(op.Path)
	if err != nil {
		return nil, err
	}
	return PathPaymentStrictReceive{
		SourceAccount: src,
		SendAsset:     sendAsset,
		SendMax:       amount.String(int64(op.SendMax)),
		Destination:   dest,
		DestAsset:     destAsset,
		DestAmount:    amount.String(int64(op.DestAmount)),
		Path:          path,
	}, nil
}

// PathPaymentStrictSend sends exactly SendAmount of SendAsset so that Destination receives at
// least DestMin of DestAsset, routed through the given intermediate assets.
type PathPaymentStrictSend struct {
	SourceAccount string
	SendAsset     asset.Asset
	SendAmount    string
	Destination   string
	DestAsset     asset.Asset
	DestMin       string
	Path          []asset.Asset
}

func (op PathPaymentStrictSend) GetSourceAccount() string { return op.SourceAccount }

func (op PathPaymentStrictSend) toXDRBody() (xdr.OperationBody, error) {
	if len(op.Path) > 5 {
		return xdr.OperationBody{}, &Error{Msg: "path payment path longer than 5 assets"}
	}
	dest, err := muxedAccountFromAddress(op.Destination)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	sendAsset, err := op.SendAsset.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	destAsset, err := op.DestAsset.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	sendAmount, err := amount.Parse(op.SendAmount)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	destMin, err := amount.Parse(op.DestMin)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	path, err := assetsToXDR(op.Path)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type: xdr.OperationTypePathPaymentStrictSend,
		PathPaymentStrictSend: &xdr.PathPaymentStrictSendOp{
			SendAsset:  sendAsset,
			SendAmount: xdr.Int64(sendAmount),
			Destination: dest,
			DestAsset:  destAsset,
			DestMin:    xdr.Int64(destMin),
			Path:       path,
		},
	}, nil
}

func pathPaymentStrictSendFromXDR(src string, op *xdr.PathPaymentStrictSendOp) (Operation, error) {
	dest, err := addressFromMuxedAccount(op.Destination)
	if err != nil {
		return nil, err
	}
	sendAsset, err := asset.FromXDR(op.SendAsset)
	if err != nil {
		return nil, err
	}
	destAsset, err := asset.FromXDR(op.DestAsset)
	if err != nil {
		return nil, err
	}
	path, err := assetsFromXDR(op.Path)
	if err != nil {
		return nil, err
	}
	return PathPaymentStrictSend{
		SourceAccount: src,
		SendAsset:     sendAsset,
		SendAmount:    amount.String(int64(op.SendAmount)),
		Destination:   dest,
		DestAsset:     destAsset,
		DestMin:       amount.String(int64(op.DestMin)),
		Path:          path,
	}, nil
}

func assetsToXDR(assets []asset.Asset) ([]xdr.Asset, error) {
	out := make([]xdr.Asset, len(assets))
	for i, a := range assets {
		x, err := a.ToXDR()
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}

func assetsFromXDR(assets []xdr.Asset) ([]asset.Asset, error) {
	out := make([]asset.Asset, len(assets))
	for i, a := range assets {
		conv, err := asset.FromXDR(a)
		if err != nil {
			return nil, err
		}
		out[i] = conv
	}
	return out, nil
}

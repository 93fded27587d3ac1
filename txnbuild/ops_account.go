package txnbuild

import (
	"github.com/Soneso/stellar-go-sdk/amount"
	"github.com/Soneso/stellar-go-sdk/xdr"
)

// CreateAccount funds a new account with startingBalance lumens, in the human decimal form
// amount.Parse accepts.
type CreateAccount struct {
	SourceAccount   string
	Destination     string
	StartingBalance string
}

func (op CreateAccount) GetSourceAccount() string { return op.SourceAccount }

func (op CreateAccount) toXDRBody() (xdr.OperationBody, error) {
	dest, err := accountIDFromAddress(op.Destination)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	balance, err := amount.Parse(op.StartingBalance)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	if balance < 0 {
		return xdr.OperationBody{}, &Error{Msg: "starting balance must not be negative"}
	}
	return xdr.OperationBody{
		Type: xdr.OperationTypeCreateAccount,
		CreateAccount: &xdr.CreateAccountOp{
			Destination:     dest,
			StartingBalance: xdr.Int64(balance),
		},
	}, nil
}

func createAccountFromXDR(src string, op *xdr.CreateAccountOp) (Operation, error) {
	dest, err := addressFromAccountID(op.Destination)
	if err != nil {
		return nil, err
	}
	return CreateAccount{SourceAccount: src, Destination: dest, StartingBalance: amount.String(int64(op.StartingBalance))}, nil
}

// Signer adds, updates, or removes (weight 0) a signer on the source account.
type Signer struct {
	Key    string // strkey signer key (G..., T..., or X...)
	Weight uint32
}

// SetOptions updates account-level configuration. Every field is a pointer so that only the
// fields actually set are included in the operation; nil means "leave unchanged".
type SetOptions struct {
	SourceAccount   string
	InflationDest   *string
	ClearFlags      *uint32
	SetFlags        *uint32
	MasterWeight    *uint32
	LowThreshold    *uint32
	MedThreshold    *uint32
	HighThreshold   *uint32
	HomeDomain      *string
	Signer          *Signer
}

func (op SetOptions) GetSourceAccount() string { return op.SourceAccount }

func (op SetOptions) toXDRBody() (xdr.OperationBody, error) {
	var body xdr.SetOptionsOp
	if op.InflationDest != nil {
		id, err := accountIDFromAddress(*op.InflationDest)
		if err != nil {
			return xdr.OperationBody{}, err
		}
		body.InflationDest = &id
	}
	body.ClearFlags = uint32PtrToXDR(op.ClearFlags)
	body.SetFlags = uint32PtrToXDR(op.SetFlags)
	body.MasterWeight = uint32PtrToXDR(op.MasterWeight)
	body.LowThreshold = uint32PtrToXDR(op.LowThreshold)
	body.MedThreshold = uint32PtrToXDR(op.MedThreshold)
	body.HighThreshold = uint32PtrToXDR(op.HighThreshold)
	if op.HomeDomain != nil {
		if len(*op.HomeDomain) > 32 {
			return xdr.OperationBody{}, &Error{Msg: "home domain longer than 32 bytes"}
		}
		hd := *op.HomeDomain
		body.HomeDomain = &hd
	}
	if op.Signer != nil {
		key, err := signerKeyFromStrkey(op.Signer.Key)
		if err != nil {
			return xdr.OperationBody{}, err
		}
		body.Signer = &xdr.Signer{Key: key, Weight: xdr.Uint32(op.Signer.Weight)}
	}
	return xdr.OperationBody{Type: xdr.OperationTypeSetOptions, SetOptions: &body}, nil
}

func uint32PtrToXDR(v *uint32) *xdr.Uint32 {
	if v == nil {
		return nil
	}
	x := xdr.Uint32(*v)
	return &x
}

func uint32PtrFromXDR(v *xdr.Uint32) *uint32 {
	if v == nil {
		return nil
	}
	x := uint32(*v)
	return &x
}

func setOptionsFromXDR(src string, op *xdr.SetOptionsOp) (Operation, error) {
	out := SetOptions{
		SourceAccount: src,
		ClearFlags:    uint32PtrFromXDR(op.ClearFlags),
		SetFlags:      uint32PtrFromXDR(op.SetFlags),
		MasterWeight:  uint32PtrFromXDR(op.MasterWeight),
		LowThreshold:  uint32PtrFromXDR(op.LowThreshold),
		MedThreshold:  uint32PtrFromXDR(op.MedThreshold),
		HighThreshold: uint32PtrFromXDR(op.HighThreshold),
		HomeDomain:    op.HomeDomain,
	}
	if op.InflationDest != nil {
		addr, err := addressFromAccountID(*op.InflationDest)
		if err != nil {
			return nil, err
		}
		out.InflationDest = &addr
	}
	if op.Signer != nil {
		key, err := signerKeyToStrkey(op.Signer.Key)
		if err != nil {
			return nil, err
		}
		out.Signer = &Signer{Key: key, Weight: uint32(op.Signer.Weight)}
	}
	return out, nil
}

// ManageData writes or deletes (nil Value) a single key/value pair in the source account's data
// entries. Name must be at most 64 bytes; Value at most 64 bytes.
type ManageData struct {
	SourceAccount string
	Name          string
	Value         []byte // nil deletes the entry
}

func (op ManageData) GetSourceAccount() string { return op.SourceAccount }

func (op ManageData) toXDRBody() (xdr.OperationBody, error) {
	if len(op.Name) > 64 {
		return xdr.OperationBody{}, &Error{Msg: "data name longer than 64 bytes"}
	}
	body := xdr.ManageDataOp{DataName: xdr.String64(op.Name)}
	if op.Value != nil {
		if len(op.Value) > 64 {
			return xdr.OperationBody{}, &Error{Msg: "data value longer than 64 bytes"}
		}
		dv := xdr.DataValue(op.Value)
		body.DataValue = &dv
	}
	return xdr.OperationBody{Type: xdr.OperationTypeManageData, ManageData: &body}, nil
}

func manageDataFromXDR(src string, op *xdr.ManageDataOp) (Operation, error) {
	out := ManageData{SourceAccount: src, Name: string(op.DataName)}
	if op.DataValue != nil {
		out.Value = []byte(*op.DataValue)
	}
	return out, nil
}

// BumpSequence advances the source account's sequence number to bumpTo without consuming an
// operation slot for an actual payment.
type BumpSequence struct {
	SourceAccount string
	BumpTo        int64
}

func (op BumpSequence) GetSourceAccount() string { return op.SourceAccount }

func (op BumpSequence) toXDRBody() (xdr.OperationBody, error) {
	return xdr.OperationBody{
		Type:         xdr.OperationTypeBumpSequence,
		BumpSequence: &xdr.BumpSequenceOp{BumpTo: xdr.SequenceNumber(op.BumpTo)},
	}, nil
}

func bumpSequenceFromXDR(src string, op *xdr.BumpSequenceOp) (Operation, error) {
	return BumpSequence{SourceAccount: src, BumpTo: int64(op.BumpTo)}, nil
}

// AccountMerge transfers the source account's remaining balance to Destination and removes it
// from the ledger.
type AccountMerge struct {
	SourceAccount string
	Destination   string
}

func (op AccountMerge) GetSourceAccount() string { return op.SourceAccount }

func (op AccountMerge) toXDRBody() (xdr.OperationBody, error) {
	dest, err := muxedAccountFromAddress(op.Destination)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{Type: xdr.OperationTypeAccountMerge, AccountMerge: &dest}, nil
}

func accountMergeFromXDR(src string, dest *xdr.MuxedAccount) (Operation, error) {
	addr, err := addressFromMuxedAccount(*dest)
	if err != nil {
		return nil, err
	}
	return AccountMerge{SourceAccount: src, Destination: addr}, nil
}

package txnbuild

import (
	"github.com/Soneso/stellar-go-sdk/xdr"
)

// InvokeHostFunction carries a single Soroban host function call (contract invocation, contract
// creation, or Wasm upload) plus any authorization entries it needs. Auth may be left empty at
// build time and filled in after simulation, per the soroban RPC pipeline.
type InvokeHostFunction struct {
	SourceAccount string
	HostFunction  xdr.HostFunction
	Auth          []xdr.SorobanAuthorizationEntry
}

func (op InvokeHostFunction) GetSourceAccount() string { return op.SourceAccount }

func (op InvokeHostFunction) toXDRBody() (xdr.OperationBody, error) {
	return xdr.OperationBody{
		Type: xdr.OperationTypeInvokeHostFunction,
		InvokeHostFunction: &xdr.InvokeHostFunctionOp{
			HostFunction: op.HostFunction,
			Auth:         op.Auth,
		},
	}, nil
}

func invokeHostFunctionFromXDR(src string, op *xdr.InvokeHostFunctionOp) (Operation, error) {
	return InvokeHostFunction{SourceAccount: src, HostFunction: op.HostFunction, Auth: op.Auth}, nil
}

// ExtendFootprintTTL extends the time-to-live of the ledger entries named in the enclosing
// transaction's Soroban read footprint to at least ExtendTo ledgers from the current ledger.
type ExtendFootprintTTL struct {
	SourceAccount string
	ExtendTo      uint32
}

func (op ExtendFootprintTTL) GetSourceAccount() string { return op.SourceAccount }

func (op ExtendFootprintTTL) toXDRBody() (xdr.OperationBody, error) {
	return xdr.OperationBody{
		Type:               xdr.OperationTypeExtendFootprintTTL,
		ExtendFootprintTTL: &xdr.ExtendFootprintTTLOp{ExtendTo: xdr.Uint32(op.ExtendTo)},
	}, nil
}

func extendFootprintTTLFromXDR(src string, op *xdr.ExtendFootprintTTLOp) (Operation, error) {
	return ExtendFootprintTTL{SourceAccount: src, ExtendTo: uint32(op.ExtendTo)}, nil
}

// RestoreFootprint restores expired ledger entries named in the enclosing transaction's Soroban
// read-write footprint. It carries no fields beyond the standard extension point.
type RestoreFootprint struct {
	SourceAccount string
}

func (op RestoreFootprint) GetSourceAccount() string { return op.SourceAccount }

func (op RestoreFootprint) toXDRBody() (xdr.OperationBody, error) {
	return xdr.OperationBody{
		Type:             xdr.OperationTypeRestoreFootprint,
		RestoreFootprint: &xdr.RestoreFootprintOp{},
	}, nil
}

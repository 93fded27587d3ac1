package xdr

// InvokeHostFunctionOp runs a single HostFunction (contract invocation, contract/Wasm creation)
// carrying the authorization entries needed to satisfy every `require_auth` it triggers.
type InvokeHostFunctionOp struct {
	HostFunction HostFunction
	Auth         []SorobanAuthorizationEntry
}

func (o InvokeHostFunctionOp) EncodeTo(e *Encoder) error {
	if err := o.HostFunction.EncodeTo(e); err != nil {
		return err
	}
	e.EncodeUint32(uint32(len(o.Auth)))
	for i := range o.Auth {
		if err := o.Auth[i].EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (o *InvokeHostFunctionOp) DecodeFrom(d *Decoder) error {
	if err := o.HostFunction.DecodeFrom(d); err != nil {
		return err
	}
	n, err := d.DecodeUint32("InvokeHostFunctionOp.Auth.len")
	if err != nil {
		return err
	}
	o.Auth = make([]SorobanAuthorizationEntry, n)
	for i := range o.Auth {
		if err := o.Auth[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	return nil
}

// ExtendFootprintTTLOp pushes the archival TTL of every entry in the transaction's read-only
// footprint out to at least ExtendTo ledgers past the current one; it carries no footprint of its
// own since the Soroban resources on the enclosing transaction already declare it.
type ExtendFootprintTTLOp struct {
	Ext      ExtensionPoint
	ExtendTo Uint32
}

func (o ExtendFootprintTTLOp) EncodeTo(e *Encoder) error {
	if err := o.Ext.EncodeTo(e); err != nil {
		return err
	}
	return o.ExtendTo.EncodeTo(e)
}

func (o *ExtendFootprintTTLOp) DecodeFrom(d *Decoder) error {
	if err := o.Ext.DecodeFrom(d); err != nil {
		return err
	}
	return o.ExtendTo.DecodeFrom(d)
}

// RestoreFootprintOp restores archived (evicted) entries named in the transaction's read-write
// footprint so they become accessible again.
type RestoreFootprintOp struct {
	Ext ExtensionPoint
}

func (o RestoreFootprintOp) EncodeTo(e *Encoder) error   { return o.Ext.EncodeTo(e) }
func (o *RestoreFootprintOp) DecodeFrom(d *Decoder) error { return o.Ext.DecodeFrom(d) }

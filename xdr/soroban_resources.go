package xdr

// LedgerFootprint declares which ledger keys a Soroban invocation reads (ReadOnly) and which it
// reads-and-writes (ReadWrite); the host enforces that the invocation touches nothing outside it.
type LedgerFootprint struct {
	ReadOnly  []LedgerKey
	ReadWrite []LedgerKey
}

func (f LedgerFootprint) EncodeTo(e *Encoder) error {
	e.EncodeUint32(uint32(len(f.ReadOnly)))
	for i := range f.ReadOnly {
		if err := f.ReadOnly[i].EncodeTo(e); err != nil {
			return err
		}
	}
	e.EncodeUint32(uint32(len(f.ReadWrite)))
	for i := range f.ReadWrite {
		if err := f.ReadWrite[i].EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (f *LedgerFootprint) DecodeFrom(d *Decoder) error {
	n, err := d.DecodeUint32("LedgerFootprint.ReadOnly.len")
	if err != nil {
		return err
	}
	f.ReadOnly = make([]LedgerKey, n)
	for i := range f.ReadOnly {
		if err := f.ReadOnly[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	n, err = d.DecodeUint32("LedgerFootprint.ReadWrite.len")
	if err != nil {
		return err
	}
	f.ReadWrite = make([]LedgerKey, n)
	for i := range f.ReadWrite {
		if err := f.ReadWrite[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	return nil
}

// SorobanResources is the resource envelope (footprint, instructions, rent-affecting byte reads)
// that simulation fills in and the builder embeds into SorobanTransactionData.
type SorobanResources struct {
	Footprint               LedgerFootprint
	Instructions            Uint32
	DiskReadBytes           Uint32
	WriteBytes              Uint32
}

func (r SorobanResources) EncodeTo(e *Encoder) error {
	if err := r.Footprint.EncodeTo(e); err != nil {
		return err
	}
	if err := r.Instructions.EncodeTo(e); err != nil {
		return err
	}
	if err := r.DiskReadBytes.EncodeTo(e); err != nil {
		return err
	}
	return r.WriteBytes.EncodeTo(e)
}

func (r *SorobanResources) DecodeFrom(d *Decoder) error {
	if err := r.Footprint.DecodeFrom(d); err != nil {
		return err
	}
	if err := r.Instructions.DecodeFrom(d); err != nil {
		return err
	}
	if err := r.DiskReadBytes.DecodeFrom(d); err != nil {
		return err
	}
	return r.WriteBytes.DecodeFrom(d)
}

// SorobanTransactionDataExt is a one-arm extension point reserved by the protocol for future
// resource-fee refinements; callers never populate it today.
type SorobanTransactionDataExt struct {
	V int32
}

func (x SorobanTransactionDataExt) EncodeTo(e *Encoder) error {
	if x.V != 0 {
		return errInvalidDiscriminant("SorobanTransactionDataExt", int64(x.V))
	}
	e.EncodeInt32(0)
	return nil
}

func (x *SorobanTransactionDataExt) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt32("SorobanTransactionDataExt.V")
	if err != nil {
		return err
	}
	if v != 0 {
		return errInvalidDiscriminant("SorobanTransactionDataExt", int64(v))
	}
	x.V = 0
	return nil
}

// SorobanTransactionData is the Soroban transaction extension carried in the transaction's Ext
// field: resources plus the resource fee the submitter is willing to pay, both normally filled in
// from a prior simulateTransaction response (sorobanrpc/pipeline.go).
type SorobanTransactionData struct {
	Ext          SorobanTransactionDataExt
	Resources    SorobanResources
	ResourceFee  Int64
}

func (t SorobanTransactionData) EncodeTo(e *Encoder) error {
	if err := t.Ext.EncodeTo(e); err != nil {
		return err
	}
	if err := t.Resources.EncodeTo(e); err != nil {
		return err
	}
	return t.ResourceFee.EncodeTo(e)
}

func (t *SorobanTransactionData) DecodeFrom(d *Decoder) error {
	if err := t.Ext.DecodeFrom(d); err != nil {
		return err
	}
	if err := t.Resources.DecodeFrom(d); err != nil {
		return err
	}
	return t.ResourceFee.DecodeFrom(d)
}

package xdr

// Signer pairs a SignerKey with its weight in an account's signing threshold scheme.
type Signer struct {
	Key    SignerKey
	Weight Uint32
}

func (s Signer) EncodeTo(e *Encoder) error {
	if err := s.Key.EncodeTo(e); err != nil {
		return err
	}
	return s.Weight.EncodeTo(e)
}

func (s *Signer) DecodeFrom(d *Decoder) error {
	if err := s.Key.DecodeFrom(d); err != nil {
		return err
	}
	return s.Weight.DecodeFrom(d)
}

// SetOptionsOp updates any subset of an account's inflation destination, flags, thresholds, home
// domain, or signer list; every field is optional and only present fields are changed.
type SetOptionsOp struct {
	InflationDest   *AccountId
	ClearFlags      *Uint32
	SetFlags        *Uint32
	MasterWeight    *Uint32
	LowThreshold    *Uint32
	MedThreshold    *Uint32
	HighThreshold   *Uint32
	HomeDomain      *string
	Signer          *Signer
}

func (o SetOptionsOp) EncodeTo(e *Encoder) error {
	e.EncodeOptionalPresent(o.InflationDest != nil)
	if o.InflationDest != nil {
		if err := o.InflationDest.EncodeTo(e); err != nil {
			return err
		}
	}
	if err := encodeOptionalUint32(e, o.ClearFlags); err != nil {
		return err
	}
	if err := encodeOptionalUint32(e, o.SetFlags); err != nil {
		return err
	}
	if err := encodeOptionalUint32(e, o.MasterWeight); err != nil {
		return err
	}
	if err := encodeOptionalUint32(e, o.LowThreshold); err != nil {
		return err
	}
	if err := encodeOptionalUint32(e, o.MedThreshold); err != nil {
		return err
	}
	if err := encodeOptionalUint32(e, o.HighThreshold); err != nil {
		return err
	}
	e.EncodeOptionalPresent(o.HomeDomain != nil)
	if o.HomeDomain != nil {
		if len(*o.HomeDomain) > 32 {
			return errInvalidLength("SetOptionsOp.HomeDomain", 32, len(*o.HomeDomain))
		}
		e.EncodeString(*o.HomeDomain)
	}
	e.EncodeOptionalPresent(o.Signer != nil)
	if o.Signer != nil {
		if err := o.Signer.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func encodeOptionalUint32(e *Encoder, v *Uint32) error {
	e.EncodeOptionalPresent(v != nil)
	if v != nil {
		return v.EncodeTo(e)
	}
	return nil
}

func decodeOptionalUint32(d *Decoder, field string) (*Uint32, error) {
	present, err := d.DecodeBool(field + "?")
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	var v Uint32
	if err := v.DecodeFrom(d); err != nil {
		return nil, err
	}
	return &v, nil
}

func (o *SetOptionsOp) DecodeFrom(d *Decoder) error {
	present, err := d.DecodeBool("SetOptionsOp.InflationDest?")
	if err != nil {
		return err
	}
	if present {
		var a AccountId
		if err := a.DecodeFrom(d); err != nil {
			return err
		}
		o.InflationDest = &a
	}
	if o.ClearFlags, err = decodeOptionalUint32(d, "SetOptionsOp.ClearFlags"); err != nil {
		return err
	}
	if o.SetFlags, err = decodeOptionalUint32(d, "SetOptionsOp.SetFlags"); err != nil {
		return err
	}
	if o.MasterWeight, err = decodeOptionalUint32(d, "SetOptionsOp.MasterWeight"); err != nil {
		return err
	}
	if o.LowThreshold, err = decodeOptionalUint32(d, "SetOptionsOp.LowThreshold"); err != nil {
		return err
	}
	if o.MedThreshold, err = decodeOptionalUint32(d, "SetOptionsOp.MedThreshold"); err != nil {
		return err
	}
	if o.HighThreshold, err = decodeOptionalUint32(d, "SetOptionsOp.HighThreshold"); err != nil {
		return err
	}
	present, err = d.DecodeBool("SetOptionsOp.HomeDomain?")
	if err != nil {
		return err
	}
	if present {
		s, err := d.DecodeString("SetOptionsOp.HomeDomain")
		if err != nil {
			return err
		}
		if len(s) > 32 {
			return errInvalidLength("SetOptionsOp.HomeDomain", 32, len(s))
		}
		o.HomeDomain = &s
	}
	present, err = d.DecodeBool("SetOptionsOp.Signer?")
	if err != nil {
		return err
	}
	if present {
		var s Signer
		if err := s.DecodeFrom(d); err != nil {
			return err
		}
		o.Signer = &s
	}
	return nil
}

// ManageDataOp sets (DataValue != nil) or clears (DataValue == nil) a single key in an account's
// arbitrary key/value data store.
type ManageDataOp struct {
	DataName  String64
	DataValue *DataValue
}

func (o ManageDataOp) EncodeTo(e *Encoder) error {
	if err := o.DataName.EncodeTo(e); err != nil {
		return err
	}
	e.EncodeOptionalPresent(o.DataValue != nil)
	if o.DataValue != nil {
		return o.DataValue.EncodeTo(e)
	}
	return nil
}

func (o *ManageDataOp) DecodeFrom(d *Decoder) error {
	if err := o.DataName.DecodeFrom(d); err != nil {
		return err
	}
	present, err := d.DecodeBool("ManageDataOp.DataValue?")
	if err != nil {
		return err
	}
	if present {
		var v DataValue
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		o.DataValue = &v
	}
	return nil
}

// BumpSequenceOp advances an account's sequence number to BumpTo without consuming it via a
// payment, typically used to invalidate outstanding pre-signed transactions.
type BumpSequenceOp struct {
	BumpTo SequenceNumber
}

func (o BumpSequenceOp) EncodeTo(e *Encoder) error { return o.BumpTo.EncodeTo(e) }
func (o *BumpSequenceOp) DecodeFrom(d *Decoder) error { return o.BumpTo.DecodeFrom(d) }

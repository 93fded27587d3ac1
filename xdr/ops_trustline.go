package xdr

// ChangeTrustOp establishes, adjusts, or (Limit==0) removes a trustline to Line, a limit of zero
// meaning the trustor will accept none of the asset.
type ChangeTrustOp struct {
	Line  ChangeTrustAsset
	Limit Int64
}

func (o ChangeTrustOp) EncodeTo(e *Encoder) error {
	if err := o.Line.EncodeTo(e); err != nil {
		return err
	}
	return o.Limit.EncodeTo(e)
}

func (o *ChangeTrustOp) DecodeFrom(d *Decoder) error {
	if err := o.Line.DecodeFrom(d); err != nil {
		return err
	}
	return o.Limit.DecodeFrom(d)
}

// AllowTrustOp is the deprecated (superseded by SetTrustLineFlagsOp) single-bit authorize/deauthorize
// toggle; kept for decode compatibility with historical transactions per spec §9.
type AllowTrustOp struct {
	Trustor   AccountId
	AssetCode AssetCode4OrCode12
	Authorize Uint32
}

// AssetCode4OrCode12 models AllowTrustOp's legacy inline asset-code union (not a full Asset,
// just the 4- or 12-byte code).
type AssetCode4OrCode12 struct {
	Type AssetType
	Code4  *AssetCode4
	Code12 *AssetCode12
}

func (a AssetCode4OrCode12) EncodeTo(e *Encoder) error {
	e.EncodeInt32(int32(a.Type))
	switch a.Type {
	case AssetTypeCreditAlphanum4:
		return a.Code4.EncodeTo(e)
	case AssetTypeCreditAlphanum12:
		return a.Code12.EncodeTo(e)
	default:
		return errInvalidDiscriminant("AssetCode4OrCode12", int64(a.Type))
	}
}

func (a *AssetCode4OrCode12) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("AssetCode4OrCode12.Type")
	if err != nil {
		return err
	}
	a.Type = AssetType(t)
	switch a.Type {
	case AssetTypeCreditAlphanum4:
		var c AssetCode4
		if err := c.DecodeFrom(d); err != nil {
			return err
		}
		a.Code4 = &c
	case AssetTypeCreditAlphanum12:
		var c AssetCode12
		if err := c.DecodeFrom(d); err != nil {
			return err
		}
		a.Code12 = &c
	default:
		return errInvalidDiscriminant("AssetCode4OrCode12", int64(t))
	}
	return nil
}

func (o AllowTrustOp) EncodeTo(e *Encoder) error {
	if err := o.Trustor.EncodeTo(e); err != nil {
		return err
	}
	if err := o.AssetCode.EncodeTo(e); err != nil {
		return err
	}
	return o.Authorize.EncodeTo(e)
}

func (o *AllowTrustOp) DecodeFrom(d *Decoder) error {
	if err := o.Trustor.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.AssetCode.DecodeFrom(d); err != nil {
		return err
	}
	return o.Authorize.DecodeFrom(d)
}

// SetTrustLineFlagsOp clears then sets the named authorization bits on Trustor's trustline in
// Asset; it superseded AllowTrustOp so more than one flag can change atomically.
type SetTrustLineFlagsOp struct {
	Trustor    AccountId
	Asset      Asset
	ClearFlags Uint32
	SetFlags   Uint32
}

func (o SetTrustLineFlagsOp) EncodeTo(e *Encoder) error {
	if err := o.Trustor.EncodeTo(e); err != nil {
		return err
	}
	if err := o.Asset.EncodeTo(e); err != nil {
		return err
	}
	if err := o.ClearFlags.EncodeTo(e); err != nil {
		return err
	}
	return o.SetFlags.EncodeTo(e)
}

func (o *SetTrustLineFlagsOp) DecodeFrom(d *Decoder) error {
	if err := o.Trustor.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.Asset.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.ClearFlags.DecodeFrom(d); err != nil {
		return err
	}
	return o.SetFlags.DecodeFrom(d)
}

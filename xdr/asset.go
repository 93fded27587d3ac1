package xdr

import "strings"

// AssetType discriminates the Asset union.
type AssetType int32

const (
	AssetTypeNative         AssetType = 0
	AssetTypeCreditAlphanum4  AssetType = 1
	AssetTypeCreditAlphanum12 AssetType = 2
	AssetTypePoolShare        AssetType = 3
)

// AssetCode4 is a fixed 4-byte, NUL-padded asset code.
type AssetCode4 [4]byte

func (a AssetCode4) EncodeTo(e *Encoder) error { e.EncodeFixedOpaque(a[:]); return nil }
func (a *AssetCode4) DecodeFrom(d *Decoder) error {
	b, err := d.DecodeFixedOpaque(4, "AssetCode4")
	if err != nil {
		return err
	}
	copy(a[:], b)
	return nil
}

// AssetCode12 is a fixed 12-byte, NUL-padded asset code.
type AssetCode12 [12]byte

func (a AssetCode12) EncodeTo(e *Encoder) error { e.EncodeFixedOpaque(a[:]); return nil }
func (a *AssetCode12) DecodeFrom(d *Decoder) error {
	b, err := d.DecodeFixedOpaque(12, "AssetCode12")
	if err != nil {
		return err
	}
	copy(a[:], b)
	return nil
}

func NewAssetCode4(code string) AssetCode4 {
	var c AssetCode4
	copy(c[:], code)
	return c
}

func NewAssetCode12(code string) AssetCode12 {
	var c AssetCode12
	copy(c[:], code)
	return c
}

func (a AssetCode4) String() string  { return strings.TrimRight(string(a[:]), "\x00") }
func (a AssetCode12) String() string { return strings.TrimRight(string(a[:]), "\x00") }

// AlphaNum4 is a non-native asset with a 1-4 character code.
type AlphaNum4 struct {
	AssetCode AssetCode4
	Issuer    AccountId
}

func (a AlphaNum4) EncodeTo(e *Encoder) error {
	if err := a.AssetCode.EncodeTo(e); err != nil {
		return err
	}
	return a.Issuer.EncodeTo(e)
}

func (a *AlphaNum4) DecodeFrom(d *Decoder) error {
	if err := a.AssetCode.DecodeFrom(d); err != nil {
		return err
	}
	return a.Issuer.DecodeFrom(d)
}

// AlphaNum12 is a non-native asset with a 5-12 character code.
type AlphaNum12 struct {
	AssetCode AssetCode12
	Issuer    AccountId
}

func (a AlphaNum12) EncodeTo(e *Encoder) error {
	if err := a.AssetCode.EncodeTo(e); err != nil {
		return err
	}
	return a.Issuer.EncodeTo(e)
}

func (a *AlphaNum12) DecodeFrom(d *Decoder) error {
	if err := a.AssetCode.DecodeFrom(d); err != nil {
		return err
	}
	return a.Issuer.DecodeFrom(d)
}

// Asset is the network's tagged-union asset type: native, or a credit asset identified by
// code+issuer. PoolShare only ever appears inside TrustLineAsset/ChangeTrustAsset, not here.
type Asset struct {
	Type       AssetType
	AlphaNum4  *AlphaNum4
	AlphaNum12 *AlphaNum12
}

func (a Asset) EncodeTo(e *Encoder) error {
	e.EncodeInt32(int32(a.Type))
	switch a.Type {
	case AssetTypeNative:
		return nil
	case AssetTypeCreditAlphanum4:
		return a.AlphaNum4.EncodeTo(e)
	case AssetTypeCreditAlphanum12:
		return a.AlphaNum12.EncodeTo(e)
	default:
		return errInvalidDiscriminant("Asset", int64(a.Type))
	}
}

func (a *Asset) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("Asset.Type")
	if err != nil {
		return err
	}
	a.Type = AssetType(t)
	switch a.Type {
	case AssetTypeNative:
		return nil
	case AssetTypeCreditAlphanum4:
		var v AlphaNum4
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		a.AlphaNum4 = &v
	case AssetTypeCreditAlphanum12:
		var v AlphaNum12
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		a.AlphaNum12 = &v
	default:
		return errInvalidDiscriminant("Asset", int64(t))
	}
	return nil
}

// ChangeTrustAsset additionally supports the pool-share arm, used only by ChangeTrustOp.
type ChangeTrustAsset struct {
	Type          AssetType
	AlphaNum4     *AlphaNum4
	AlphaNum12    *AlphaNum12
	LiquidityPool *LiquidityPoolParameters
}

func (a ChangeTrustAsset) EncodeTo(e *Encoder) error {
	e.EncodeInt32(int32(a.Type))
	switch a.Type {
	case AssetTypeNative:
		return nil
	case AssetTypeCreditAlphanum4:
		return a.AlphaNum4.EncodeTo(e)
	case AssetTypeCreditAlphanum12:
		return a.AlphaNum12.EncodeTo(e)
	case AssetTypePoolShare:
		return a.LiquidityPool.EncodeTo(e)
	default:
		return errInvalidDiscriminant("ChangeTrustAsset", int64(a.Type))
	}
}

func (a *ChangeTrustAsset) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("ChangeTrustAsset.Type")
	if err != nil {
		return err
	}
	a.Type = AssetType(t)
	switch a.Type {
	case AssetTypeNative:
		return nil
	case AssetTypeCreditAlphanum4:
		var v AlphaNum4
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		a.AlphaNum4 = &v
	case AssetTypeCreditAlphanum12:
		var v AlphaNum12
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		a.AlphaNum12 = &v
	case AssetTypePoolShare:
		var v LiquidityPoolParameters
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		a.LiquidityPool = &v
	default:
		return errInvalidDiscriminant("ChangeTrustAsset", int64(t))
	}
	return nil
}

// LiquidityPoolType discriminates LiquidityPoolParameters; constant product is the only kind.
type LiquidityPoolType int32

const LiquidityPoolConstantProduct LiquidityPoolType = 0

// LiquidityPoolParameters describes a pool by its two assets and fee, from which the pool id is
// derived (see asset.DeriveLiquidityPoolId).
type LiquidityPoolParameters struct {
	Type            LiquidityPoolType
	AssetA          Asset
	AssetB          Asset
	Fee             Int32
}

func (p LiquidityPoolParameters) EncodeTo(e *Encoder) error {
	e.EncodeInt32(int32(p.Type))
	if err := p.AssetA.EncodeTo(e); err != nil {
		return err
	}
	if err := p.AssetB.EncodeTo(e); err != nil {
		return err
	}
	return p.Fee.EncodeTo(e)
}

func (p *LiquidityPoolParameters) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("LiquidityPoolParameters.Type")
	if err != nil {
		return err
	}
	p.Type = LiquidityPoolType(t)
	if p.Type != LiquidityPoolConstantProduct {
		return errInvalidDiscriminant("LiquidityPoolParameters", int64(t))
	}
	if err := p.AssetA.DecodeFrom(d); err != nil {
		return err
	}
	if err := p.AssetB.DecodeFrom(d); err != nil {
		return err
	}
	return p.Fee.DecodeFrom(d)
}

// Price is a rational number n/d used for offer prices.
type Price struct {
	N Int32
	D Int32
}

func (p Price) EncodeTo(e *Encoder) error {
	if err := p.N.EncodeTo(e); err != nil {
		return err
	}
	return p.D.EncodeTo(e)
}

func (p *Price) DecodeFrom(d *Decoder) error {
	if err := p.N.DecodeFrom(d); err != nil {
		return err
	}
	return p.D.DecodeFrom(d)
}

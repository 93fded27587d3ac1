// Package asset implements the sum type over every asset the network trades: native XLM, a
// 1-4 character credit asset, a 5-12 character credit asset, or a liquidity pool share. Grounded
// on xdr/asset.go's Asset/ChangeTrustAsset/TrustLineAsset unions, which this package wraps behind
// a single Go type with a canonical string form ("native" or "CODE:ISSUER") and strkey-or-hex
// acceptance for pool/balance ids, per spec §3/§4.5/§6/§9.
package asset

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/Soneso/stellar-go-sdk/hash"
	"github.com/Soneso/stellar-go-sdk/strkey"
	"github.com/Soneso/stellar-go-sdk/xdr"
)

// Kind discriminates the Asset sum type.
type Kind int

const (
	KindNative Kind = iota
	KindCreditAlphaNum4
	KindCreditAlphaNum12
	KindPoolShare
)

// Error is the sentinel error kind for this package, part of the InputInvalid taxonomy row.
type Error struct{ Msg string }

func (e *Error) Error() string { return fmt.Sprintf("asset: %s", e.Msg) }

// Asset is the canonical representation of a tradeable or held asset.
type Asset struct {
	Kind   Kind
	Code   string   // meaningful for CreditAlphaNum4/12
	Issuer string   // "G..." strkey account address, meaningful for CreditAlphaNum4/12
	PoolID [32]byte // meaningful for KindPoolShare
}

// NativeAsset returns the lumen asset.
func NativeAsset() Asset { return Asset{Kind: KindNative} }

// CreditAsset builds a credit asset, choosing AlphaNum4 or AlphaNum12 by code length, and
// validating that issuer is a well-formed "G..." account address.
func CreditAsset(code, issuer string) (Asset, error) {
	if code == "" {
		return Asset{}, &Error{Msg: "asset code must not be empty"}
	}
	if len(code) > 12 {
		return Asset{}, &Error{Msg: fmt.Sprintf("asset code %q longer than 12 characters", code)}
	}
	if !isASCII(code) {
		return Asset{}, &Error{Msg: fmt.Sprintf("asset code %q is not ASCII", code)}
	}
	if _, err := strkey.DecodeVersion(issuer, strkey.VersionByteAccountID); err != nil {
		return Asset{}, fmt.Errorf("asset: issuer %q is not a valid account address: %w", issuer, err)
	}
	kind := KindCreditAlphaNum4
	if len(code) > 4 {
		kind = KindCreditAlphaNum12
	}
	return Asset{Kind: kind, Code: code, Issuer: issuer}, nil
}

// PoolShareAsset wraps an already-derived 32-byte liquidity pool id.
func PoolShareAsset(poolID [32]byte) Asset {
	return Asset{Kind: KindPoolShare, PoolID: poolID}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}

// Parse decodes a canonical string: "native", "CODE:ISSUER", or a pool id (hex or "L..." strkey).
func Parse(s string) (Asset, error) {
	if s == "native" {
		return NativeAsset(), nil
	}
	if id, err := parsePoolID(s); err == nil {
		return PoolShareAsset(id), nil
	}
	code, issuer, ok := strings.Cut(s, ":")
	if !ok {
		return Asset{}, &Error{Msg: fmt.Sprintf("malformed canonical asset %q: expected CODE:ISSUER", s)}
	}
	return CreditAsset(code, issuer)
}

func parsePoolID(s string) ([32]byte, error) {
	var out [32]byte
	if strings.HasPrefix(s, "L") {
		body, err := strkey.DecodeVersion(s, strkey.VersionByteLiquidityPool)
		if err != nil {
			return out, err
		}
		copy(out[:], body)
		return out, nil
	}
	if len(s) == 64 {
		b, err := hex.DecodeString(s)
		if err == nil && len(b) == 32 {
			copy(out[:], b)
			return out, nil
		}
	}
	return out, &Error{Msg: "not a pool id"}
}

// ParsePoolID normalizes a liquidity-pool or claimable-balance id supplied as lowercase hex or
// strkey (L... for a pool, B... for a claimable balance) into its 32-byte canonical form, per
// spec §9's "normalize at every ingress" note.
func ParsePoolID(s string) ([32]byte, error) {
	if strings.HasPrefix(s, "B") {
		var out [32]byte
		body, err := strkey.DecodeVersion(s, strkey.VersionByteClaimableBalance)
		if err != nil {
			return out, &Error{Msg: fmt.Sprintf("%q is not a valid B... strkey", s)}
		}
		copy(out[:], body[1:])
		return out, nil
	}
	id, err := parsePoolID(s)
	if err != nil {
		return id, &Error{Msg: fmt.Sprintf("%q is neither 64-char hex nor a valid L... or B... strkey", s)}
	}
	return id, nil
}

// String renders a in its canonical form.
func (a Asset) String() string {
	switch a.Kind {
	case KindNative:
		return "native"
	case KindCreditAlphaNum4, KindCreditAlphaNum12:
		return a.Code + ":" + a.Issuer
	case KindPoolShare:
		return hex.EncodeToString(a.PoolID[:])
	default:
		return ""
	}
}

// IsNative reports whether a is the native lumen asset.
func (a Asset) IsNative() bool { return a.Kind == KindNative }

func (a Asset) toIssuerAccountID() (xdr.AccountId, error) {
	body, err := strkey.DecodeVersion(a.Issuer, strkey.VersionByteAccountID)
	if err != nil {
		return xdr.AccountId{}, err
	}
	var u xdr.Uint256
	copy(u[:], body)
	return xdr.AccountId{Type: xdr.PublicKeyTypeEd25519, Ed25519: &u}, nil
}

// ToXDR converts a to the wire Asset union. Fails for KindPoolShare: pool shares are never a
// plain Asset payload on the wire, only a ChangeTrustAsset or TrustLineAsset.
func (a Asset) ToXDR() (xdr.Asset, error) {
	switch a.Kind {
	case KindNative:
		return xdr.Asset{Type: xdr.AssetTypeNative}, nil
	case KindCreditAlphaNum4:
		issuer, err := a.toIssuerAccountID()
		if err != nil {
			return xdr.Asset{}, err
		}
		an := xdr.AlphaNum4{AssetCode: xdr.NewAssetCode4(a.Code), Issuer: issuer}
		return xdr.Asset{Type: xdr.AssetTypeCreditAlphanum4, AlphaNum4: &an}, nil
	case KindCreditAlphaNum12:
		issuer, err := a.toIssuerAccountID()
		if err != nil {
			return xdr.Asset{}, err
		}
		an := xdr.AlphaNum12{AssetCode: xdr.NewAssetCode12(a.Code), Issuer: issuer}
		return xdr.Asset{Type: xdr.AssetTypeCreditAlphanum12, AlphaNum12: &an}, nil
	default:
		return xdr.Asset{}, &Error{Msg: "pool share assets have no plain XDR Asset form"}
	}
}

// FromXDR is ToXDR's inverse for the plain Asset union.
func FromXDR(x xdr.Asset) (Asset, error) {
	switch x.Type {
	case xdr.AssetTypeNative:
		return NativeAsset(), nil
	case xdr.AssetTypeCreditAlphanum4:
		issuer, err := accountIDToAddress(x.AlphaNum4.Issuer)
		if err != nil {
			return Asset{}, err
		}
		return Asset{Kind: KindCreditAlphaNum4, Code: x.AlphaNum4.AssetCode.String(), Issuer: issuer}, nil
	case xdr.AssetTypeCreditAlphanum12:
		issuer, err := accountIDToAddress(x.AlphaNum12.Issuer)
		if err != nil {
			return Asset{}, err
		}
		return Asset{Kind: KindCreditAlphaNum12, Code: x.AlphaNum12.AssetCode.String(), Issuer: issuer}, nil
	default:
		return Asset{}, &Error{Msg: "unsupported xdr.Asset discriminant"}
	}
}

func accountIDToAddress(id xdr.AccountId) (string, error) {
	if id.Ed25519 == nil {
		return "", &Error{Msg: "AccountId missing Ed25519 key"}
	}
	return strkey.Encode(strkey.VersionByteAccountID, id.Ed25519[:])
}

// ToChangeTrustAsset converts a to the ChangeTrustAsset union used by ChangeTrustOp; for pool
// shares, poolA/poolB name the two underlying assets and feeBps the pool's fee basis points.
func (a Asset) ToChangeTrustAsset(poolA, poolB Asset, feeBps int32) (xdr.ChangeTrustAsset, error) {
	if a.Kind != KindPoolShare {
		plain, err := a.ToXDR()
		if err != nil {
			return xdr.ChangeTrustAsset{}, err
		}
		switch plain.Type {
		case xdr.AssetTypeNative:
			return xdr.ChangeTrustAsset{Type: xdr.AssetTypeNative}, nil
		case xdr.AssetTypeCreditAlphanum4:
			return xdr.ChangeTrustAsset{Type: xdr.AssetTypeCreditAlphanum4, AlphaNum4: plain.AlphaNum4}, nil
		default:
			return xdr.ChangeTrustAsset{Type: xdr.AssetTypeCreditAlphanum12, AlphaNum12: plain.AlphaNum12}, nil
		}
	}
	params, err := liquidityPoolParameters(poolA, poolB, feeBps)
	if err != nil {
		return xdr.ChangeTrustAsset{}, err
	}
	return xdr.ChangeTrustAsset{Type: xdr.AssetTypePoolShare, LiquidityPool: &params}, nil
}

// ToTrustLineAsset converts a to the TrustLineAsset union, used by ledger-key lookups
// (LedgerKeyTrustLine, RevokeSponsorshipOp). Unlike ToChangeTrustAsset, the pool-share arm here
// names the pool only by its already-derived id, not by its defining parameters.
func (a Asset) ToTrustLineAsset() (xdr.TrustLineAsset, error) {
	if a.Kind == KindPoolShare {
		h := xdr.Hash(a.PoolID)
		return xdr.TrustLineAsset{Type: xdr.AssetTypePoolShare, LiquidityPoolId: &h}, nil
	}
	plain, err := a.ToXDR()
	if err != nil {
		return xdr.TrustLineAsset{}, err
	}
	return xdr.TrustLineAsset{Type: plain.Type, AlphaNum4: plain.AlphaNum4, AlphaNum12: plain.AlphaNum12}, nil
}

// compareXDR orders two assets by their encoded XDR bytes, the same canonical-order idiom
// xdr.sortScMapEntries uses for ScMap keys; the network requires liquidity pool parameters to
// name their two assets in this order so that both participants derive the same pool id.
func compareXDR(a, b Asset) (int, error) {
	xa, err := a.ToXDR()
	if err != nil {
		return 0, err
	}
	xb, err := b.ToXDR()
	if err != nil {
		return 0, err
	}
	ba, err := xdr.Marshal(xa)
	if err != nil {
		return 0, err
	}
	bb, err := xdr.Marshal(xb)
	if err != nil {
		return 0, err
	}
	return bytes.Compare(ba, bb), nil
}

func liquidityPoolParameters(a, b Asset, feeBps int32) (xdr.LiquidityPoolParameters, error) {
	cmp, err := compareXDR(a, b)
	if err != nil {
		return xdr.LiquidityPoolParameters{}, err
	}
	if cmp == 0 {
		return xdr.LiquidityPoolParameters{}, &Error{Msg: "liquidity pool requires two distinct assets"}
	}
	if cmp > 0 {
		a, b = b, a
	}
	xa, err := a.ToXDR()
	if err != nil {
		return xdr.LiquidityPoolParameters{}, err
	}
	xb, err := b.ToXDR()
	if err != nil {
		return xdr.LiquidityPoolParameters{}, err
	}
	return xdr.LiquidityPoolParameters{
		Type:   xdr.LiquidityPoolConstantProduct,
		AssetA: xa,
		AssetB: xb,
		Fee:    xdr.Int32(feeBps),
	}, nil
}

// DeriveLiquidityPoolId computes the 32-byte id of the constant-product pool over assetA/assetB
// at feeBps, sorting the pair into canonical order first so either caller order yields the same
// id. Grounded on the teacher's CalculateContractAddress (internal/utils/contract_address.go),
// which hashes a marshalled preimage struct the same way.
func DeriveLiquidityPoolId(assetA, assetB Asset, feeBps int32) ([32]byte, error) {
	params, err := liquidityPoolParameters(assetA, assetB, feeBps)
	if err != nil {
		return [32]byte{}, err
	}
	b, err := xdr.Marshal(params)
	if err != nil {
		return [32]byte{}, err
	}
	return hash.Hash256(b), nil
}

// LessXDR reports whether a sorts before b in canonical XDR-encoded order; exposed for callers
// that need to order a slice of assets the same way the network orders liquidity pool pairs
// (e.g. building a path payment's intermediate assets deterministically).
func LessXDR(a, b Asset) bool {
	cmp, err := compareXDR(a, b)
	if err != nil {
		// ToXDR fails for an unresolvable issuer strkey (which Parse/CreditAsset already
		// validated) and for pool-share assets, which have no Asset XDR form; such pairs report
		// false.
		return false
	}
	return cmp < 0
}

// SortXDR sorts assets in place by canonical XDR order.
func SortXDR(assets []Asset) {
	sort.SliceStable(assets, func(i, j int) bool { return LessXDR(assets[i], assets[j]) })
}

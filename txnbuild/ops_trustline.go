package txnbuild

import (
	"math"

	"github.com/Soneso/stellar-go-sdk/amount"
	"github.com/Soneso/stellar-go-sdk/asset"
	"github.com/Soneso/stellar-go-sdk/xdr"
)

// MaxTrustLineLimit is the decimal-string form of the largest limit a trustline can carry
// (i64::MAX stroops), the sentinel conventionally used to mean "no practical limit".
const MaxTrustLineLimit = "922337203685.4775807"

// ChangeTrust establishes, adjusts, or (Limit == "0") removes a trustline to Line. PoolA/PoolB/
// PoolFeeBps are only consulted when Line is a pool-share asset.
type ChangeTrust struct {
	SourceAccount string
	Line          asset.Asset
	Limit         string
	PoolA         asset.Asset
	PoolB         asset.Asset
	PoolFeeBps    int32
}

func (op ChangeTrust) GetSourceAccount() string { return op.SourceAccount }

func (op ChangeTrust) toXDRBody() (xdr.OperationBody, error) {
	line, err := op.Line.ToChangeTrustAsset(op.PoolA, op.PoolB, op.PoolFeeBps)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	limit, err := amount.Parse(op.Limit)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	if limit < 0 || limit > math.MaxInt64 {
		return xdr.OperationBody{}, &Error{Msg: "trust limit out of i64 range"}
	}
	return xdr.OperationBody{
		Type:        xdr.OperationTypeChangeTrust,
		ChangeTrust: &xdr.ChangeTrustOp{Line: line, Limit: xdr.Int64(limit)},
	}, nil
}

func changeTrustFromXDR(src string, op *xdr.ChangeTrustOp) (Operation, error) {
	out := ChangeTrust{SourceAccount: src, Limit: amount.String(int64(op.Limit))}
	switch op.Line.Type {
	case xdr.AssetTypeNative:
		out.Line = asset.NativeAsset()
	case xdr.AssetTypeCreditAlphanum4, xdr.AssetTypeCreditAlphanum12:
		plain := xdr.Asset{Type: op.Line.Type, AlphaNum4: op.Line.AlphaNum4, AlphaNum12: op.Line.AlphaNum12}
		a, err := asset.FromXDR(plain)
		if err != nil {
			return nil, err
		}
		out.Line = a
	case xdr.AssetTypePoolShare:
		poolA, err := asset.FromXDR(op.Line.LiquidityPool.AssetA)
		if err != nil {
			return nil, err
		}
		poolB, err := asset.FromXDR(op.Line.LiquidityPool.AssetB)
		if err != nil {
			return nil, err
		}
		id, err := asset.DeriveLiquidityPoolId(poolA, poolB, int32(op.Line.LiquidityPool.Fee))
		if err != nil {
			return nil, err
		}
		out.Line = asset.PoolShareAsset(id)
		out.PoolA = poolA
		out.PoolB = poolB
		out.PoolFeeBps = int32(op.Line.LiquidityPool.Fee)
	default:
		return nil, &Error{Msg: "unsupported ChangeTrustAsset discriminant"}
	}
	return out, nil
}

// AllowTrustAuthorization mirrors the network's trustline authorization byte: it can mark a
// trustline fully authorized, unauthorized, or authorized-to-maintain-liabilities-only.
type AllowTrustAuthorization uint32

const (
	TrustlineUnauthorized                        AllowTrustAuthorization = 0
	TrustlineAuthorized                          AllowTrustAuthorization = 1
	TrustlineAuthorizedToMaintainLiabilities     AllowTrustAuthorization = 2
)

// AllowTrust is retained for decode compatibility with the legacy inline asset-code union; issuers
// should prefer SetTrustLineFlags, which the network now recommends, but AllowTrust envelopes
// still appear on the wire and must round-trip.
type AllowTrust struct {
	SourceAccount string
	Trustor       string
	AssetCode     string
	Authorize     AllowTrustAuthorization
}

func (op AllowTrust) GetSourceAccount() string { return op.SourceAccount }

func (op AllowTrust) toXDRBody() (xdr.OperationBody, error) {
	trustor, err := accountIDFromAddress(op.Trustor)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	codeUnion, err := assetCode4Or12(op.AssetCode)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type: xdr.OperationTypeAllowTrust,
		AllowTrust: &xdr.AllowTrustOp{
			Trustor:   trustor,
			AssetCode: codeUnion,
			Authorize: xdr.Uint32(op.Authorize),
		},
	}, nil
}

func assetCode4Or12(code string) (xdr.AssetCode4OrCode12, error) {
	if code == "" || len(code) > 12 {
		return xdr.AssetCode4OrCode12{}, &Error{Msg: "asset code must be 1-12 characters"}
	}
	if len(code) <= 4 {
		c := xdr.NewAssetCode4(code)
		return xdr.AssetCode4OrCode12{Type: xdr.AssetTypeCreditAlphanum4, Code4: &c}, nil
	}
	c := xdr.NewAssetCode12(code)
	return xdr.AssetCode4OrCode12{Type: xdr.AssetTypeCreditAlphanum12, Code12: &c}, nil
}

func allowTrustFromXDR(src string, op *xdr.AllowTrustOp) (Operation, error) {
	trustor, err := addressFromAccountID(op.Trustor)
	if err != nil {
		return nil, err
	}
	var code string
	switch op.AssetCode.Type {
	case xdr.AssetTypeCreditAlphanum4:
		code = op.AssetCode.Code4.String()
	case xdr.AssetTypeCreditAlphanum12:
		code = op.AssetCode.Code12.String()
	default:
		return nil, &Error{Msg: "unsupported AllowTrust asset code discriminant"}
	}
	return AllowTrust{
		SourceAccount: src,
		Trustor:       trustor,
		AssetCode:     code,
		Authorize:     AllowTrustAuthorization(op.Authorize),
	}, nil
}

// SetTrustLineFlags is the modern replacement for AllowTrust, clearing and setting trustline
// flags in a single operation instead of overwriting the whole authorization byte.
type SetTrustLineFlags struct {
	SourceAccount string
	Trustor       string
	Asset         asset.Asset
	ClearFlags    uint32
	SetFlags      uint32
}

func (op SetTrustLineFlags) GetSourceAccount() string { return op.SourceAccount }

func (op SetTrustLineFlags) toXDRBody() (xdr.OperationBody, error) {
	trustor, err := accountIDFromAddress(op.Trustor)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	a, err := op.Asset.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type: xdr.OperationTypeSetTrustLineFlags,
		SetTrustLineFlags: &xdr.SetTrustLineFlagsOp{
			Trustor:    trustor,
			Asset:      a,
			ClearFlags: xdr.Uint32(op.ClearFlags),
			SetFlags:   xdr.Uint32(op.SetFlags),
		},
	}, nil
}

func setTrustLineFlagsFromXDR(src string, op *xdr.SetTrustLineFlagsOp) (Operation, error) {
	trustor, err := addressFromAccountID(op.Trustor)
	if err != nil {
		return nil, err
	}
	a, err := asset.FromXDR(op.Asset)
	if err != nil {
		return nil, err
	}
	return SetTrustLineFlags{
		SourceAccount: src,
		Trustor:       trustor,
		Asset:         a,
		ClearFlags:    uint32(op.ClearFlags),
		SetFlags:      uint32(op.SetFlags),
	}, nil
}

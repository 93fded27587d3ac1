package txnbuild

import (
	"github.com/Soneso/stellar-go-sdk/xdr"
)

// TimeoutInfinite is the sentinel passed to SetTimeout to mean "no expiry" (maxTime = 0).
const TimeoutInfinite = 0

// TimeBounds restricts the ledger close time window a transaction is valid in.
type TimeBounds struct {
	MinTime int64
	MaxTime int64
}

// LedgerBounds restricts the ledger sequence window a transaction is valid in.
type LedgerBounds struct {
	MinLedger uint32
	MaxLedger uint32
}

// Preconditions bundles every optional transaction precondition. The zero value means "none".
type Preconditions struct {
	TimeBounds      *TimeBounds
	LedgerBounds    *LedgerBounds
	MinSeqNum       *int64
	MinSeqAge       uint64
	MinSeqLedgerGap uint32
	ExtraSigners    []string // strkey-encoded signer keys
}

func (p Preconditions) toXDR() (xdr.Preconditions, error) {
	if p.isTimeOnly() {
		if p.TimeBounds == nil {
			return xdr.Preconditions{Type: xdr.PreconditionTypeNone}, nil
		}
		tb := xdr.TimeBounds{MinTime: xdr.TimePoint(p.TimeBounds.MinTime), MaxTime: xdr.TimePoint(p.TimeBounds.MaxTime)}
		return xdr.Preconditions{Type: xdr.PreconditionTypeTime, TimeBounds: &tb}, nil
	}

	v2 := xdr.PreconditionsV2{
		MinSeqAge:       xdr.Duration(p.MinSeqAge),
		MinSeqLedgerGap: xdr.Uint32(p.MinSeqLedgerGap),
	}
	if p.TimeBounds != nil {
		tb := xdr.TimeBounds{MinTime: xdr.TimePoint(p.TimeBounds.MinTime), MaxTime: xdr.TimePoint(p.TimeBounds.MaxTime)}
		v2.TimeBounds = &tb
	}
	if p.LedgerBounds != nil {
		lb := xdr.LedgerBounds{MinLedger: xdr.Uint32(p.LedgerBounds.MinLedger), MaxLedger: xdr.Uint32(p.LedgerBounds.MaxLedger)}
		v2.LedgerBounds = &lb
	}
	if p.MinSeqNum != nil {
		sn := xdr.SequenceNumber(*p.MinSeqNum)
		v2.MinSeqNum = &sn
	}
	if len(p.ExtraSigners) > 2 {
		return xdr.Preconditions{}, &Error{Msg: "at most 2 extra signers allowed"}
	}
	for _, s := range p.ExtraSigners {
		key, err := signerKeyFromStrkey(s)
		if err != nil {
			return xdr.Preconditions{}, err
		}
		v2.ExtraSigners = append(v2.ExtraSigners, key)
	}
	return xdr.Preconditions{Type: xdr.PreconditionTypeV2, V2: &v2}, nil
}

// isTimeOnly reports whether p carries nothing beyond an optional time bound, letting the
// builder emit the more compact PreconditionTypeTime form instead of a full V2 block.
func (p Preconditions) isTimeOnly() bool {
	return p.LedgerBounds == nil && p.MinSeqNum == nil && p.MinSeqAge == 0 &&
		p.MinSeqLedgerGap == 0 && len(p.ExtraSigners) == 0
}

func preconditionsFromXDR(p xdr.Preconditions) (Preconditions, error) {
	switch p.Type {
	case xdr.PreconditionTypeNone:
		return Preconditions{}, nil
	case xdr.PreconditionTypeTime:
		if p.TimeBounds == nil {
			return Preconditions{}, nil
		}
		return Preconditions{TimeBounds: &TimeBounds{
			MinTime: int64(p.TimeBounds.MinTime),
			MaxTime: int64(p.TimeBounds.MaxTime),
		}}, nil
	case xdr.PreconditionTypeV2:
		out := Preconditions{
			MinSeqAge:       uint64(p.V2.MinSeqAge),
			MinSeqLedgerGap: uint32(p.V2.MinSeqLedgerGap),
		}
		if p.V2.TimeBounds != nil {
			out.TimeBounds = &TimeBounds{MinTime: int64(p.V2.TimeBounds.MinTime), MaxTime: int64(p.V2.TimeBounds.MaxTime)}
		}
		if p.V2.LedgerBounds != nil {
			out.LedgerBounds = &LedgerBounds{MinLedger: uint32(p.V2.LedgerBounds.MinLedger), MaxLedger: uint32(p.V2.LedgerBounds.MaxLedger)}
		}
		if p.V2.MinSeqNum != nil {
			sn := int64(*p.V2.MinSeqNum)
			out.MinSeqNum = &sn
		}
		for _, sk := range p.V2.ExtraSigners {
			s, err := signerKeyToStrkey(sk)
			if err != nil {
				return Preconditions{}, err
			}
			out.ExtraSigners = append(out.ExtraSigners, s)
		}
		return out, nil
	default:
		return Preconditions{}, &Error{Msg: "unsupported preconditions discriminant"}
	}
}

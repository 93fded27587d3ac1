package xdr

// TimeBounds restricts validity to a [MinTime, MaxTime] window; MaxTime==0 means "no upper
// bound" (TIMEOUT_INFINITE per spec §4.4/§8).
type TimeBounds struct {
	MinTime TimePoint
	MaxTime TimePoint
}

func (t TimeBounds) EncodeTo(e *Encoder) error {
	if err := t.MinTime.EncodeTo(e); err != nil {
		return err
	}
	return t.MaxTime.EncodeTo(e)
}

func (t *TimeBounds) DecodeFrom(d *Decoder) error {
	if err := t.MinTime.DecodeFrom(d); err != nil {
		return err
	}
	return t.MaxTime.DecodeFrom(d)
}

// LedgerBounds restricts validity to a [MinLedger, MaxLedger] window; MaxLedger==0 means unbounded.
type LedgerBounds struct {
	MinLedger Uint32
	MaxLedger Uint32
}

func (l LedgerBounds) EncodeTo(e *Encoder) error {
	if err := l.MinLedger.EncodeTo(e); err != nil {
		return err
	}
	return l.MaxLedger.EncodeTo(e)
}

func (l *LedgerBounds) DecodeFrom(d *Decoder) error {
	if err := l.MinLedger.DecodeFrom(d); err != nil {
		return err
	}
	return l.MaxLedger.DecodeFrom(d)
}

// PreconditionsV2, with its extra-signers list, and the Preconditions union itself follow.

// PreconditionsV2 is the richer precondition set (time/ledger bounds, min sequence requirements,
// extra signers) available since CAP-21.
type PreconditionsV2 struct {
	TimeBounds      *TimeBounds
	LedgerBounds    *LedgerBounds
	MinSeqNum       *SequenceNumber
	MinSeqAge       Duration
	MinSeqLedgerGap Uint32
	ExtraSigners    []SignerKey
}

func (p PreconditionsV2) EncodeTo(e *Encoder) error {
	e.EncodeOptionalPresent(p.TimeBounds != nil)
	if p.TimeBounds != nil {
		if err := p.TimeBounds.EncodeTo(e); err != nil {
			return err
		}
	}
	e.EncodeOptionalPresent(p.LedgerBounds != nil)
	if p.LedgerBounds != nil {
		if err := p.LedgerBounds.EncodeTo(e); err != nil {
			return err
		}
	}
	e.EncodeOptionalPresent(p.MinSeqNum != nil)
	if p.MinSeqNum != nil {
		if err := p.MinSeqNum.EncodeTo(e); err != nil {
			return err
		}
	}
	if err := p.MinSeqAge.EncodeTo(e); err != nil {
		return err
	}
	if err := p.MinSeqLedgerGap.EncodeTo(e); err != nil {
		return err
	}
	e.EncodeUint32(uint32(len(p.ExtraSigners)))
	for i := range p.ExtraSigners {
		if err := p.ExtraSigners[i].EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (p *PreconditionsV2) DecodeFrom(d *Decoder) error {
	present, err := d.DecodeBool("PreconditionsV2.TimeBounds?")
	if err != nil {
		return err
	}
	if present {
		var tb TimeBounds
		if err := tb.DecodeFrom(d); err != nil {
			return err
		}
		p.TimeBounds = &tb
	}
	present, err = d.DecodeBool("PreconditionsV2.LedgerBounds?")
	if err != nil {
		return err
	}
	if present {
		var lb LedgerBounds
		if err := lb.DecodeFrom(d); err != nil {
			return err
		}
		p.LedgerBounds = &lb
	}
	present, err = d.DecodeBool("PreconditionsV2.MinSeqNum?")
	if err != nil {
		return err
	}
	if present {
		var sn SequenceNumber
		if err := sn.DecodeFrom(d); err != nil {
			return err
		}
		p.MinSeqNum = &sn
	}
	if err := p.MinSeqAge.DecodeFrom(d); err != nil {
		return err
	}
	if err := p.MinSeqLedgerGap.DecodeFrom(d); err != nil {
		return err
	}
	n, err := d.DecodeUint32("PreconditionsV2.ExtraSigners.len")
	if err != nil {
		return err
	}
	if n > 2 {
		return errInvalidLength("PreconditionsV2.ExtraSigners", 2, int(n))
	}
	p.ExtraSigners = make([]SignerKey, n)
	for i := range p.ExtraSigners {
		if err := p.ExtraSigners[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	return nil
}

// PreconditionType discriminates the Preconditions union.
type PreconditionType int32

const (
	PreconditionTypeNone PreconditionType = 0
	PreconditionTypeTime PreconditionType = 1
	PreconditionTypeV2   PreconditionType = 2
)

// Preconditions gates when a transaction may be applied.
type Preconditions struct {
	Type       PreconditionType
	TimeBounds *TimeBounds
	V2         *PreconditionsV2
}

func (p Preconditions) EncodeTo(e *Encoder) error {
	e.EncodeInt32(int32(p.Type))
	switch p.Type {
	case PreconditionTypeNone:
		return nil
	case PreconditionTypeTime:
		return p.TimeBounds.EncodeTo(e)
	case PreconditionTypeV2:
		return p.V2.EncodeTo(e)
	default:
		return errInvalidDiscriminant("Preconditions", int64(p.Type))
	}
}

func (p *Preconditions) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("Preconditions.Type")
	if err != nil {
		return err
	}
	p.Type = PreconditionType(t)
	switch p.Type {
	case PreconditionTypeNone:
		return nil
	case PreconditionTypeTime:
		var tb TimeBounds
		if err := tb.DecodeFrom(d); err != nil {
			return err
		}
		p.TimeBounds = &tb
		return nil
	case PreconditionTypeV2:
		var v2 PreconditionsV2
		if err := v2.DecodeFrom(d); err != nil {
			return err
		}
		p.V2 = &v2
		return nil
	default:
		return errInvalidDiscriminant("Preconditions", int64(t))
	}
}

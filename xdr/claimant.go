package xdr

// ClaimPredicateType discriminates ClaimPredicate.
type ClaimPredicateType int32

const (
	ClaimPredicateUnconditional      ClaimPredicateType = 0
	ClaimPredicateAnd                 ClaimPredicateType = 1
	ClaimPredicateOr                  ClaimPredicateType = 2
	ClaimPredicateNot                 ClaimPredicateType = 3
	ClaimPredicateBeforeAbsoluteTime ClaimPredicateType = 4
	ClaimPredicateBeforeRelativeTime ClaimPredicateType = 5
)

// ClaimPredicate is a recursive boolean expression over absolute/relative deadlines gating when a
// Claimant may claim a ClaimableBalance.
type ClaimPredicate struct {
	Type             ClaimPredicateType
	AndPredicates    []ClaimPredicate
	OrPredicates     []ClaimPredicate
	NotPredicate     *ClaimPredicate
	AbsBefore        *Int64
	RelBefore        *Int64
}

func (p ClaimPredicate) EncodeTo(e *Encoder) error {
	e.EncodeInt32(int32(p.Type))
	switch p.Type {
	case ClaimPredicateUnconditional:
		return nil
	case ClaimPredicateAnd:
		if len(p.AndPredicates) != 2 {
			return errInvalidLength("ClaimPredicate.And", 2, len(p.AndPredicates))
		}
		for i := range p.AndPredicates {
			if err := p.AndPredicates[i].EncodeTo(e); err != nil {
				return err
			}
		}
		return nil
	case ClaimPredicateOr:
		if len(p.OrPredicates) != 2 {
			return errInvalidLength("ClaimPredicate.Or", 2, len(p.OrPredicates))
		}
		for i := range p.OrPredicates {
			if err := p.OrPredicates[i].EncodeTo(e); err != nil {
				return err
			}
		}
		return nil
	case ClaimPredicateNot:
		e.EncodeOptionalPresent(p.NotPredicate != nil)
		if p.NotPredicate != nil {
			return p.NotPredicate.EncodeTo(e)
		}
		return nil
	case ClaimPredicateBeforeAbsoluteTime:
		i := Int64(*p.AbsBefore)
		return i.EncodeTo(e)
	case ClaimPredicateBeforeRelativeTime:
		i := Int64(*p.RelBefore)
		return i.EncodeTo(e)
	default:
		return errInvalidDiscriminant("ClaimPredicate", int64(p.Type))
	}
}

func (p *ClaimPredicate) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("ClaimPredicate.Type")
	if err != nil {
		return err
	}
	p.Type = ClaimPredicateType(t)
	switch p.Type {
	case ClaimPredicateUnconditional:
		return nil
	case ClaimPredicateAnd:
		p.AndPredicates = make([]ClaimPredicate, 2)
		for i := range p.AndPredicates {
			if err := p.AndPredicates[i].DecodeFrom(d); err != nil {
				return err
			}
		}
		return nil
	case ClaimPredicateOr:
		p.OrPredicates = make([]ClaimPredicate, 2)
		for i := range p.OrPredicates {
			if err := p.OrPredicates[i].DecodeFrom(d); err != nil {
				return err
			}
		}
		return nil
	case ClaimPredicateNot:
		present, err := d.DecodeBool("ClaimPredicate.Not?")
		if err != nil {
			return err
		}
		if present {
			var inner ClaimPredicate
			if err := inner.DecodeFrom(d); err != nil {
				return err
			}
			p.NotPredicate = &inner
		}
		return nil
	case ClaimPredicateBeforeAbsoluteTime:
		var i Int64
		if err := i.DecodeFrom(d); err != nil {
			return err
		}
		p.AbsBefore = &i
		return nil
	case ClaimPredicateBeforeRelativeTime:
		var i Int64
		if err := i.DecodeFrom(d); err != nil {
			return err
		}
		p.RelBefore = &i
		return nil
	default:
		return errInvalidDiscriminant("ClaimPredicate", int64(t))
	}
}

// ClaimantType discriminates Claimant; V0 (by account id + predicate) is the only kind defined.
type ClaimantType int32

const ClaimantTypeV0 ClaimantType = 0

type ClaimantV0 struct {
	Destination AccountId
	Predicate   ClaimPredicate
}

// Claimant names a potential recipient of a ClaimableBalance and the predicate gating their claim.
type Claimant struct {
	Type ClaimantType
	V0   *ClaimantV0
}

func (c Claimant) EncodeTo(e *Encoder) error {
	e.EncodeInt32(int32(c.Type))
	switch c.Type {
	case ClaimantTypeV0:
		if err := c.V0.Destination.EncodeTo(e); err != nil {
			return err
		}
		return c.V0.Predicate.EncodeTo(e)
	default:
		return errInvalidDiscriminant("Claimant", int64(c.Type))
	}
}

func (c *Claimant) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("Claimant.Type")
	if err != nil {
		return err
	}
	c.Type = ClaimantType(t)
	switch c.Type {
	case ClaimantTypeV0:
		var v ClaimantV0
		if err := v.Destination.DecodeFrom(d); err != nil {
			return err
		}
		if err := v.Predicate.DecodeFrom(d); err != nil {
			return err
		}
		c.V0 = &v
		return nil
	default:
		return errInvalidDiscriminant("Claimant", int64(t))
	}
}

package txnbuild

import (
	"github.com/Soneso/stellar-go-sdk/xdr"
)

// ClaimPredicate is implemented by every claim predicate variant.
type ClaimPredicate interface {
	toXDR() (xdr.ClaimPredicate, error)
}

// UnconditionalClaim always lets the claimant claim the balance.
type UnconditionalClaim struct{}

func (UnconditionalClaim) toXDR() (xdr.ClaimPredicate, error) {
	return xdr.ClaimPredicate{Type: xdr.ClaimPredicateUnconditional}, nil
}

// AndClaim requires both Left and Right to hold.
type AndClaim struct{ Left, Right ClaimPredicate }

func (p AndClaim) toXDR() (xdr.ClaimPredicate, error) {
	l, err := p.Left.toXDR()
	if err != nil {
		return xdr.ClaimPredicate{}, err
	}
	r, err := p.Right.toXDR()
	if err != nil {
		return xdr.ClaimPredicate{}, err
	}
	return xdr.ClaimPredicate{Type: xdr.ClaimPredicateAnd, AndPredicates: []xdr.ClaimPredicate{l, r}}, nil
}

// OrClaim requires either Left or Right to hold.
type OrClaim struct{ Left, Right ClaimPredicate }

func (p OrClaim) toXDR() (xdr.ClaimPredicate, error) {
	l, err := p.Left.toXDR()
	if err != nil {
		return xdr.ClaimPredicate{}, err
	}
	r, err := p.Right.toXDR()
	if err != nil {
		return xdr.ClaimPredicate{}, err
	}
	return xdr.ClaimPredicate{Type: xdr.ClaimPredicateOr, OrPredicates: []xdr.ClaimPredicate{l, r}}, nil
}

// NotClaim inverts Inner.
type NotClaim struct{ Inner ClaimPredicate }

func (p NotClaim) toXDR() (xdr.ClaimPredicate, error) {
	inner, err := p.Inner.toXDR()
	if err != nil {
		return xdr.ClaimPredicate{}, err
	}
	return xdr.ClaimPredicate{Type: xdr.ClaimPredicateNot, NotPredicate: &inner}, nil
}

// BeforeAbsoluteTimeClaim holds only before the given Unix timestamp.
type BeforeAbsoluteTimeClaim struct{ UnixTime int64 }

func (p BeforeAbsoluteTimeClaim) toXDR() (xdr.ClaimPredicate, error) {
	t := xdr.Int64(p.UnixTime)
	return xdr.ClaimPredicate{Type: xdr.ClaimPredicateBeforeAbsoluteTime, AbsBefore: &t}, nil
}

// BeforeRelativeTimeClaim holds only before Seconds elapse since the balance is created.
type BeforeRelativeTimeClaim struct{ Seconds int64 }

func (p BeforeRelativeTimeClaim) toXDR() (xdr.ClaimPredicate, error) {
	t := xdr.Int64(p.Seconds)
	return xdr.ClaimPredicate{Type: xdr.ClaimPredicateBeforeRelativeTime, RelBefore: &t}, nil
}

func claimPredicateFromXDR(p xdr.ClaimPredicate) (ClaimPredicate, error) {
	switch p.Type {
	case xdr.ClaimPredicateUnconditional:
		return UnconditionalClaim{}, nil
	case xdr.ClaimPredicateAnd:
		if len(p.AndPredicates) != 2 {
			return nil, &Error{Msg: "and predicate requires exactly 2 operands"}
		}
		l, err := claimPredicateFromXDR(p.AndPredicates[0])
		if err != nil {
			return nil, err
		}
		r, err := claimPredicateFromXDR(p.AndPredicates[1])
		if err != nil {
			return nil, err
		}
		return AndClaim{Left: l, Right: r}, nil
	case xdr.ClaimPredicateOr:
		if len(p.OrPredicates) != 2 {
			return nil, &Error{Msg: "or predicate requires exactly 2 operands"}
		}
		l, err := claimPredicateFromXDR(p.OrPredicates[0])
		if err != nil {
			return nil, err
		}
		r, err := claimPredicateFromXDR(p.OrPredicates[1])
		if err != nil {
			return nil, err
		}
		return OrClaim{Left: l, Right: r}, nil
	case xdr.ClaimPredicateNot:
		if p.NotPredicate == nil {
			return nil, &Error{Msg: "not predicate missing operand"}
		}
		inner, err := claimPredicateFromXDR(*p.NotPredicate)
		if err != nil {
			return nil, err
		}
		return NotClaim{Inner: inner}, nil
	case xdr.ClaimPredicateBeforeAbsoluteTime:
		return BeforeAbsoluteTimeClaim{UnixTime: int64(*p.AbsBefore)}, nil
	case xdr.ClaimPredicateBeforeRelativeTime:
		return BeforeRelativeTimeClaim{Seconds: int64(*p.RelBefore)}, nil
	default:
		return nil, &Error{Msg: "unsupported claim predicate discriminant"}
	}
}

// Claimant names a destination account and the predicate under which it may claim a balance.
type Claimant struct {
	Destination string
	Predicate   ClaimPredicate
}

func (c Claimant) toXDR() (xdr.Claimant, error) {
	dest, err := accountIDFromAddress(c.Destination)
	if err != nil {
		return xdr.Claimant{}, err
	}
	pred, err := c.Predicate.toXDR()
	if err != nil {
		return xdr.Claimant{}, err
	}
	v0 := xdr.ClaimantV0{Destination: dest, Predicate: pred}
	return xdr.Claimant{Type: xdr.ClaimantTypeV0, V0: &v0}, nil
}

func claimantFromXDR(c xdr.Claimant) (Claimant, error) {
	if c.Type != xdr.ClaimantTypeV0 || c.V0 == nil {
		return Claimant{}, &Error{Msg: "unsupported Claimant discriminant"}
	}
	dest, err := addressFromAccountID(c.V0.Destination)
	if err != nil {
		return Claimant{}, err
	}
	pred, err := claimPredicateFromXDR(c.V0.Predicate)
	if err != nil {
		return Claimant{}, err
	}
	return Claimant{Destination: dest, Predicate: pred}, nil
}

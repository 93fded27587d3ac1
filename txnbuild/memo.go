package txnbuild

import (
	"fmt"

	"github.com/Soneso/stellar-go-sdk/xdr"
)

// Memo is implemented by every memo variant a transaction can carry.
type Memo interface {
	toXDR() (xdr.Memo, error)
}

// MemoNone carries no memo.
type MemoNone struct{}

func (MemoNone) toXDR() (xdr.Memo, error) { return xdr.Memo{Type: xdr.MemoTypeNone}, nil }

// MemoText carries up to 28 bytes of UTF-8 text.
type MemoText string

func (m MemoText) toXDR() (xdr.Memo, error) {
	if len(m) > 28 {
		return xdr.Memo{}, &Error{Msg: fmt.Sprintf("memo text longer than 28 bytes: %d", len(m))}
	}
	s := string(m)
	return xdr.Memo{Type: xdr.MemoTypeText, Text: &s}, nil
}

// MemoID carries a uint64 identifier, commonly used to route a payment to a sub-account.
type MemoID uint64

func (m MemoID) toXDR() (xdr.Memo, error) {
	v := xdr.Uint64(m)
	return xdr.Memo{Type: xdr.MemoTypeId, Id: &v}, nil
}

// MemoHash carries an arbitrary 32-byte hash.
type MemoHash [32]byte

func (m MemoHash) toXDR() (xdr.Memo, error) {
	h := xdr.Hash(m)
	return xdr.Memo{Type: xdr.MemoTypeHash, Hash: &h}, nil
}

// MemoReturn carries the hash of the transaction this one refunds.
type MemoReturn [32]byte

func (m MemoReturn) toXDR() (xdr.Memo, error) {
	h := xdr.Hash(m)
	return xdr.Memo{Type: xdr.MemoTypeReturn, Return: &h}, nil
}

func memoFromXDR(m xdr.Memo) (Memo, error) {
	switch m.Type {
	case xdr.MemoTypeNone:
		return MemoNone{}, nil
	case xdr.MemoTypeText:
		if m.Text == nil {
			return nil, &Error{Msg: "memo text missing payload"}
		}
		return MemoText(*m.Text), nil
	case xdr.MemoTypeId:
		if m.Id == nil {
			return nil, &Error{Msg: "memo id missing payload"}
		}
		return MemoID(*m.Id), nil
	case xdr.MemoTypeHash:
		if m.Hash == nil {
			return nil, &Error{Msg: "memo hash missing payload"}
		}
		return MemoHash(*m.Hash), nil
	case xdr.MemoTypeReturn:
		if m.Return == nil {
			return nil, &Error{Msg: "memo return missing payload"}
		}
		return MemoReturn(*m.Return), nil
	default:
		return nil, &Error{Msg: "unsupported memo discriminant"}
	}
}

package xdr

// MemoType discriminates the Memo union.
type MemoType int32

const (
	MemoTypeNone   MemoType = 0
	MemoTypeText   MemoType = 1
	MemoTypeId     MemoType = 2
	MemoTypeHash   MemoType = 3
	MemoTypeReturn MemoType = 4
)

// Memo is optional metadata attached to a transaction.
type Memo struct {
	Type MemoType
	Text *string
	Id   *Uint64
	Hash *Hash
	Return *Hash
}

func (m Memo) EncodeTo(e *Encoder) error {
	e.EncodeInt32(int32(m.Type))
	switch m.Type {
	case MemoTypeNone:
		return nil
	case MemoTypeText:
		if m.Text == nil || len(*m.Text) > 28 {
			return errInvalidLength("Memo.Text", 28, len(derefStr(m.Text)))
		}
		e.EncodeString(*m.Text)
		return nil
	case MemoTypeId:
		return m.Id.EncodeTo(e)
	case MemoTypeHash:
		return m.Hash.EncodeTo(e)
	case MemoTypeReturn:
		return m.Return.EncodeTo(e)
	default:
		return errInvalidDiscriminant("Memo", int64(m.Type))
	}
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (m *Memo) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("Memo.Type")
	if err != nil {
		return err
	}
	m.Type = MemoType(t)
	switch m.Type {
	case MemoTypeNone:
		return nil
	case MemoTypeText:
		s, err := d.DecodeString("Memo.Text")
		if err != nil {
			return err
		}
		if len(s) > 28 {
			return errInvalidLength("Memo.Text", 28, len(s))
		}
		m.Text = &s
		return nil
	case MemoTypeId:
		var v Uint64
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		m.Id = &v
		return nil
	case MemoTypeHash:
		var h Hash
		if err := h.DecodeFrom(d); err != nil {
			return err
		}
		m.Hash = &h
		return nil
	case MemoTypeReturn:
		var h Hash
		if err := h.DecodeFrom(d); err != nil {
			return err
		}
		m.Return = &h
		return nil
	default:
		return errInvalidDiscriminant("Memo", int64(t))
	}
}

// MemoNone returns the empty memo.
func MemoNone() Memo { return Memo{Type: MemoTypeNone} }

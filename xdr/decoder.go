package xdr

import (
	"encoding/binary"
)

// Decoder consumes the canonical RFC 4506 encoding produced by Encoder. Decoding is strict:
// padding bytes must be zero, and DecodeEOF fails if bytes remain.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder wraps b for decoding. b is not copied; callers must not mutate it concurrently.
func NewDecoder(b []byte) *Decoder {
	return &Decoder{buf: b}
}

// Remaining returns the number of bytes not yet consumed.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}

func (d *Decoder) take(n int, typ string) ([]byte, error) {
	if d.pos+n > len(d.buf) {
		return nil, errUnexpectedEOF(typ)
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

func (d *Decoder) DecodeUint32(typ string) (uint32, error) {
	b, err := d.take(4, typ)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (d *Decoder) DecodeInt32(typ string) (int32, error) {
	v, err := d.DecodeUint32(typ)
	return int32(v), err
}

func (d *Decoder) DecodeUint64(typ string) (uint64, error) {
	b, err := d.take(8, typ)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (d *Decoder) DecodeInt64(typ string) (int64, error) {
	v, err := d.DecodeUint64(typ)
	return int64(v), err
}

func (d *Decoder) DecodeBool(typ string) (bool, error) {
	v, err := d.DecodeUint32(typ)
	if err != nil {
		return false, err
	}
	if v != 0 && v != 1 {
		return false, errInvalidDiscriminant(typ, int64(v))
	}
	return v == 1, nil
}

func (d *Decoder) checkPadZero(typ string, n int) error {
	b, err := d.take(n, typ)
	if err != nil {
		return err
	}
	for _, c := range b {
		if c != 0 {
			return errInvalidPadding(typ)
		}
	}
	return nil
}

// DecodeFixedOpaque reads exactly n bytes followed by zero-padding to a 4-byte boundary.
func (d *Decoder) DecodeFixedOpaque(n int, typ string) ([]byte, error) {
	b, err := d.take(n, typ)
	if err != nil {
		return nil, err
	}
	if err := d.checkPadZero(typ, padLen(n)); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// DecodeVarOpaque reads a u32 length prefix then that many bytes, zero-padded to 4 bytes.
func (d *Decoder) DecodeVarOpaque(typ string) ([]byte, error) {
	n, err := d.DecodeUint32(typ)
	if err != nil {
		return nil, err
	}
	if n > uint32(d.Remaining()) {
		return nil, errInvalidLength(typ, int(n), d.Remaining())
	}
	return d.DecodeFixedOpaque(int(n), typ)
}

func (d *Decoder) DecodeString(typ string) (string, error) {
	b, err := d.DecodeVarOpaque(typ)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeEOF fails if any bytes remain undecoded; call after decoding a top-level envelope.
func (d *Decoder) DecodeEOF(typ string) error {
	if d.Remaining() != 0 {
		return errTrailingBytes(typ, d.Remaining())
	}
	return nil
}

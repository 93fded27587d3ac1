package xdr

import (
	"bytes"
	"encoding/binary"
)

// Encoder accumulates the canonical big-endian, 4-byte-aligned RFC 4506 encoding of a value.
type Encoder struct {
	buf bytes.Buffer
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns the accumulated wire bytes.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

func (e *Encoder) EncodeUint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	e.buf.Write(b[:])
}

func (e *Encoder) EncodeInt32(v int32) {
	e.EncodeUint32(uint32(v))
}

func (e *Encoder) EncodeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	e.buf.Write(b[:])
}

func (e *Encoder) EncodeInt64(v int64) {
	e.EncodeUint64(uint64(v))
}

func (e *Encoder) EncodeBool(v bool) {
	if v {
		e.EncodeUint32(1)
	} else {
		e.EncodeUint32(0)
	}
}

// pad4 writes n zero bytes such that the total written since the last aligned boundary reaches
// a multiple of 4.
func (e *Encoder) pad4(n int) {
	for i := 0; i < n; i++ {
		e.buf.WriteByte(0)
	}
}

func padLen(n int) int {
	if r := n % 4; r != 0 {
		return 4 - r
	}
	return 0
}

// EncodeFixedOpaque writes exactly len(b) bytes, zero-padded to a 4-byte boundary.
// The length itself is NOT prefixed (XDR fixed-length opaque has no length prefix).
func (e *Encoder) EncodeFixedOpaque(b []byte) {
	e.buf.Write(b)
	e.pad4(padLen(len(b)))
}

// EncodeVarOpaque writes a u32 length prefix followed by the bytes, zero-padded to 4 bytes.
func (e *Encoder) EncodeVarOpaque(b []byte) {
	e.EncodeUint32(uint32(len(b)))
	e.EncodeFixedOpaque(b)
}

// EncodeString writes a variable-length opaque containing the UTF-8 bytes of s.
func (e *Encoder) EncodeString(s string) {
	e.EncodeVarOpaque([]byte(s))
}

// EncodeOptionalPresent writes the presence marker of an XDR optional value: u32(1) when present,
// u32(0) when absent.
func (e *Encoder) EncodeOptionalPresent(present bool) {
	e.EncodeBool(present)
}

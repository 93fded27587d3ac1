package xdr

// Hash is a fixed 32-byte opaque, used for ledger hashes, network ids and transaction hashes.
type Hash [32]byte

func (h Hash) EncodeTo(e *Encoder) error {
	e.EncodeFixedOpaque(h[:])
	return nil
}

func (h *Hash) DecodeFrom(d *Decoder) error {
	b, err := d.DecodeFixedOpaque(32, "Hash")
	if err != nil {
		return err
	}
	copy(h[:], b)
	return nil
}

// Uint256 is a fixed 32-byte opaque used for Ed25519 public keys and similar 256-bit fields.
type Uint256 [32]byte

func (u Uint256) EncodeTo(e *Encoder) error {
	e.EncodeFixedOpaque(u[:])
	return nil
}

func (u *Uint256) DecodeFrom(d *Decoder) error {
	b, err := d.DecodeFixedOpaque(32, "Uint256")
	if err != nil {
		return err
	}
	copy(u[:], b)
	return nil
}

// SignatureHint is the last 4 bytes of an Ed25519 public key, per spec §9.
type SignatureHint [4]byte

func (h SignatureHint) EncodeTo(e *Encoder) error {
	e.EncodeFixedOpaque(h[:])
	return nil
}

func (h *SignatureHint) DecodeFrom(d *Decoder) error {
	b, err := d.DecodeFixedOpaque(4, "SignatureHint")
	if err != nil {
		return err
	}
	copy(h[:], b)
	return nil
}

// Signature is a variable-length opaque holding a detached Ed25519 signature (64 bytes).
type Signature []byte

func (s Signature) EncodeTo(e *Encoder) error {
	e.EncodeVarOpaque(s)
	return nil
}

func (s *Signature) DecodeFrom(d *Decoder) error {
	b, err := d.DecodeVarOpaque("Signature")
	if err != nil {
		return err
	}
	*s = b
	return nil
}

// SequenceNumber is a transaction source account's sequence number.
type SequenceNumber int64

func (s SequenceNumber) EncodeTo(e *Encoder) error {
	e.EncodeInt64(int64(s))
	return nil
}

func (s *SequenceNumber) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt64("SequenceNumber")
	if err != nil {
		return err
	}
	*s = SequenceNumber(v)
	return nil
}

// TimePoint is a POSIX timestamp in seconds since the epoch, encoded as an unsigned 64-bit hyper.
type TimePoint uint64

func (t TimePoint) EncodeTo(e *Encoder) error {
	e.EncodeUint64(uint64(t))
	return nil
}

func (t *TimePoint) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeUint64("TimePoint")
	if err != nil {
		return err
	}
	*t = TimePoint(v)
	return nil
}

// Duration is a length of time in seconds, encoded as an unsigned 64-bit hyper.
type Duration uint64

func (dur Duration) EncodeTo(e *Encoder) error {
	e.EncodeUint64(uint64(dur))
	return nil
}

func (dur *Duration) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeUint64("Duration")
	if err != nil {
		return err
	}
	*dur = Duration(v)
	return nil
}

// Uint32/Int32/Uint64/Int64 are thin Codec-implementing wrappers over Go's builtin integer
// types, used wherever the protocol schema names a bare integer field.
type Uint32 uint32

func (v Uint32) EncodeTo(e *Encoder) error { e.EncodeUint32(uint32(v)); return nil }
func (v *Uint32) DecodeFrom(d *Decoder) error {
	x, err := d.DecodeUint32("Uint32")
	if err != nil {
		return err
	}
	*v = Uint32(x)
	return nil
}

type Int32 int32

func (v Int32) EncodeTo(e *Encoder) error { e.EncodeInt32(int32(v)); return nil }
func (v *Int32) DecodeFrom(d *Decoder) error {
	x, err := d.DecodeInt32("Int32")
	if err != nil {
		return err
	}
	*v = Int32(x)
	return nil
}

type Uint64 uint64

func (v Uint64) EncodeTo(e *Encoder) error { e.EncodeUint64(uint64(v)); return nil }
func (v *Uint64) DecodeFrom(d *Decoder) error {
	x, err := d.DecodeUint64("Uint64")
	if err != nil {
		return err
	}
	*v = Uint64(x)
	return nil
}

type Int64 int64

func (v Int64) EncodeTo(e *Encoder) error { e.EncodeInt64(int64(v)); return nil }
func (v *Int64) DecodeFrom(d *Decoder) error {
	x, err := d.DecodeInt64("Int64")
	if err != nil {
		return err
	}
	*v = Int64(x)
	return nil
}

// String64 and String32 are the protocol's bounded string typedefs (asset codes use raw fixed
// opaque instead, see asset.go).
type String32 string

func (s String32) EncodeTo(e *Encoder) error { e.EncodeString(string(s)); return nil }
func (s *String32) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeString("String32")
	if err != nil {
		return err
	}
	*s = String32(v)
	return nil
}

type String64 string

func (s String64) EncodeTo(e *Encoder) error { e.EncodeString(string(s)); return nil }
func (s *String64) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeString("String64")
	if err != nil {
		return err
	}
	*s = String64(v)
	return nil
}

// DataValue is the opaque payload of a ManageData operation (variable length, max 64 bytes).
type DataValue []byte

func (d DataValue) EncodeTo(e *Encoder) error { e.EncodeVarOpaque(d); return nil }
func (d *DataValue) DecodeFrom(dec *Decoder) error {
	b, err := dec.DecodeVarOpaque("DataValue")
	if err != nil {
		return err
	}
	*d = b
	return nil
}

// ExtensionPoint is the protocol's reserved forward-compatibility union, currently only arm 0 (void).
type ExtensionPoint struct {
	V int32
}

func (e ExtensionPoint) EncodeTo(enc *Encoder) error {
	enc.EncodeInt32(e.V)
	return nil
}

func (e *ExtensionPoint) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt32("ExtensionPoint")
	if err != nil {
		return err
	}
	if v != 0 {
		return errInvalidDiscriminant("ExtensionPoint", int64(v))
	}
	e.V = v
	return nil
}

package xdr

import (
	"bytes"
	"regexp"
	"sort"
)

var symbolRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

func validateSymbol(s string) error {
	if s == "" || !symbolRe.MatchString(s) {
		return errInvalidLength("ScVal.Sym", 1, len(s))
	}
	return nil
}

// EncodeTo/DecodeFrom let ScSymbol be used directly as a Codec field (e.g.
// InvokeContractArgs.FunctionName) outside of the ScVal union.
func (s ScSymbol) EncodeTo(e *Encoder) error {
	if err := validateSymbol(string(s)); err != nil {
		return err
	}
	e.EncodeString(string(s))
	return nil
}

func (s *ScSymbol) DecodeFrom(d *Decoder) error {
	str, err := d.DecodeString("ScSymbol")
	if err != nil {
		return err
	}
	if err := validateSymbol(str); err != nil {
		return err
	}
	*s = ScSymbol(str)
	return nil
}

// sortScMapEntries orders entries by a byte-wise comparison of a sort key derived from each
// entry's encoded key, per spec §4.1 ("Maps are encoded as sorted ... arrays ... implementers
// must compute this sort before encoding"). String, symbol and bytes keys compare by type and then
// by content, without the length prefix (so "alpha" < "mid" < "zeta"); signed integer keys have
// their sign bit flipped so negative values sort before non-negative ones; any other key compares
// by its full encoding. The result is hash-stable regardless of how a caller built the map.
func sortScMapEntries(entries ScMap) {
	type keyed struct {
		key   []byte
		entry ScMapEntry
	}
	tmp := make([]keyed, len(entries))
	for i, e := range entries {
		enc := NewEncoder()
		// A key that fails to encode is left with a nil byte key; it sorts first and the
		// original EncodeTo call on the real entry will surface the error.
		if err := e.Key.EncodeTo(enc); err == nil {
			key := enc.Bytes()
			switch e.Key.Type {
			case ScValTypeScvString:
				key = append(key[:4:4], string(*e.Key.Str)...)
			case ScValTypeScvSymbol:
				key = append(key[:4:4], string(*e.Key.Sym)...)
			case ScValTypeScvBytes:
				key = append(key[:4:4], *e.Key.Bytes...)
			case ScValTypeScvI32, ScValTypeScvI64, ScValTypeScvI128, ScValTypeScvI256:
				key[4] ^= 0x80
			}
			tmp[i] = keyed{key: key, entry: e}
		} else {
			tmp[i] = keyed{key: nil, entry: e}
		}
	}
	sort.SliceStable(tmp, func(i, j int) bool {
		return bytes.Compare(tmp[i].key, tmp[j].key) < 0
	})
	for i := range tmp {
		entries[i] = tmp[i].entry
	}
}

// NewScVal is a convenience constructor mirroring the stellar SDKs' "build the union then assign
// the arm" idiom, for callers that already hold a typed Vec, Map or Bytes payload.
func NewScVal(t ScValType, payload interface{}) (ScVal, error) {
	v := ScVal{Type: t}
	switch t {
	case ScValTypeScvVec:
		vec, ok := payload.(*ScVec)
		if !ok {
			return ScVal{}, errInvalidDiscriminant("NewScVal(Vec)", int64(t))
		}
		v.Vec = vec
	case ScValTypeScvMap:
		m, ok := payload.(*ScMap)
		if !ok {
			return ScVal{}, errInvalidDiscriminant("NewScVal(Map)", int64(t))
		}
		v.Map = m
	case ScValTypeScvBytes:
		b, ok := payload.(*ScBytes)
		if !ok {
			return ScVal{}, errInvalidDiscriminant("NewScVal(Bytes)", int64(t))
		}
		v.Bytes = b
	default:
		return ScVal{}, errInvalidDiscriminant("NewScVal", int64(t))
	}
	return v, nil
}

// ScSymbolVal, ScStringVal, ScBoolVal, ScVoidVal, ScU32Val, ScI32Val, ScU64Val, ScI64Val,
// ScAddressVal are small constructors used by the ContractSpec marshaller and the auth signer so
// callers never have to hand-populate the ScVal union's pointer fields themselves.

func ScSymbolVal(s string) ScVal {
	sym := ScSymbol(s)
	return ScVal{Type: ScValTypeScvSymbol, Sym: &sym}
}

func ScStringVal(s string) ScVal {
	str := ScString(s)
	return ScVal{Type: ScValTypeScvString, Str: &str}
}

func ScBoolVal(b bool) ScVal {
	return ScVal{Type: ScValTypeScvBool, B: &b}
}

func ScVoidVal() ScVal {
	return ScVal{Type: ScValTypeScvVoid}
}

func ScU32Val(v uint32) ScVal {
	u := Uint32(v)
	return ScVal{Type: ScValTypeScvU32, U32: &u}
}

func ScI32Val(v int32) ScVal {
	i := Int32(v)
	return ScVal{Type: ScValTypeScvI32, I32: &i}
}

func ScU64Val(v uint64) ScVal {
	u := Uint64(v)
	return ScVal{Type: ScValTypeScvU64, U64: &u}
}

func ScI64Val(v int64) ScVal {
	i := Int64(v)
	return ScVal{Type: ScValTypeScvI64, I64: &i}
}

func ScBytesVal(b []byte) ScVal {
	sb := ScBytes(b)
	return ScVal{Type: ScValTypeScvBytes, Bytes: &sb}
}

func ScVecVal(items []ScVal) ScVal {
	vec := ScVec(items)
	return ScVal{Type: ScValTypeScvVec, Vec: &vec}
}

// ScMapVal wraps entries as a ScMap, sorting a copy into canonical key order up front so callers
// that inspect the returned value (rather than encoding it) still observe the canonical order
// EncodeTo would itself produce.
func ScMapVal(entries []ScMapEntry) ScVal {
	m := make(ScMap, len(entries))
	copy(m, entries)
	sortScMapEntries(m)
	return ScVal{Type: ScValTypeScvMap, Map: &m}
}

func ScAddressVal(addr ScAddress) ScVal {
	a := addr
	return ScVal{Type: ScValTypeScvAddress, Address: &a}
}

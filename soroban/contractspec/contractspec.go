// Package contractspec marshals native Go values into the ScVals an InvokeContract operation
// needs, driven by a contract's declared function signatures. No repo in the retrieval pack
// parses Soroban contract specs, so this package's type dispatch is grounded directly on the type
// dispatch table the spec lays out; the wire-level pieces it produces (two/four-limb big integers,
// canonical maps, addresses) reuse xdr/scval.go's UInt128Parts/UInt256Parts and the address
// package's strkey-prefix auto-detection, the same way the rest of this module does.
package contractspec

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/Soneso/stellar-go-sdk/address"
	"github.com/Soneso/stellar-go-sdk/xdr"
)

// Kind names a spec type's shape, independent of any particular contract's user-defined types.
type Kind int

const (
	KindBool Kind = iota
	KindVoid
	KindU32
	KindI32
	KindU64
	KindI64
	KindU128
	KindI128
	KindU256
	KindI256
	KindBytes
	KindBytesN
	KindString
	KindSymbol
	KindTimepoint
	KindDuration
	KindAddress
	KindOption
	KindVec
	KindMap
	KindTuple
	KindUdtStruct
	KindUdtEnum
	KindUdtUnion
)

// UdtField is one named field of a Udt(struct) type.
type UdtField struct {
	Name string
	Type Type
}

// UdtEnumCase is one named, numbered case of a Udt(enum) type.
type UdtEnumCase struct {
	Name  string
	Value uint32
}

// UdtUnionVariant is one tagged arm of a Udt(union) type. Types is empty for a unit variant
// (tag only, no payload); a single type is the common case of one associated value; more than
// one models a tuple-like payload, encoded the same way Tuple is.
type UdtUnionVariant struct {
	Tag   string
	Types []Type
}

// Type describes one spec type: a Kind plus whatever nested structure it carries (BytesN's
// length, Option/Vec's element type, Map's key/value types, Tuple's element types, a Udt's
// fields/cases/variants).
type Type struct {
	Kind     Kind
	N        uint32 // BytesN length
	Element  *Type  // Option, Vec
	Key      *Type  // Map
	Value    *Type  // Map
	Elements []Type // Tuple

	Name     string            // Udt(struct/enum/union): the user-defined type's name, for error messages
	Fields   []UdtField        // Udt(struct)
	Cases    []UdtEnumCase     // Udt(enum)
	Variants []UdtUnionVariant // Udt(union)
}

// Param names one function input.
type Param struct {
	Name string
	Type Type
}

// Function is one entry from a contract's SpecEntries: a name and its ordered parameter list.
type Function struct {
	Name   string
	Inputs []Param
}

// Spec holds a contract's function signatures, keyed by name.
type Spec struct {
	functions map[string]Function
}

// New builds a Spec from a contract's function entries.
func New(functions []Function) *Spec {
	m := make(map[string]Function, len(functions))
	for _, f := range functions {
		m[f.Name] = f
	}
	return &Spec{functions: m}
}

// ErrorKind distinguishes the marshaller's two named failure modes from general InputInvalid
// conversion errors.
type ErrorKind string

const (
	ErrFunctionNotFound ErrorKind = "FunctionNotFound"
	ErrMissingArgument  ErrorKind = "MissingArgument"
	ErrInvalidArgument  ErrorKind = "InvalidArgument"
)

// Error is the sentinel error kind for this package.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("contractspec: %s: %s", e.Kind, e.Msg) }

// MarshalArgs converts named into the ordered ScVal list InvokeContract expects for functionName,
// per the function's declared parameter order. A missing argument for an Option-typed parameter
// is treated as Void; any other missing argument is an error.
func (s *Spec) MarshalArgs(functionName string, named map[string]interface{}) ([]xdr.ScVal, error) {
	fn, ok := s.functions[functionName]
	if !ok {
		return nil, &Error{Kind: ErrFunctionNotFound, Msg: functionName}
	}
	out := make([]xdr.ScVal, len(fn.Inputs))
	for i, p := range fn.Inputs {
		v, present := named[p.Name]
		if !present {
			if p.Type.Kind == KindOption {
				out[i] = xdr.ScVoidVal()
				continue
			}
			return nil, &Error{Kind: ErrMissingArgument, Msg: p.Name}
		}
		val, err := convert(p.Type, v)
		if err != nil {
			return nil, fmt.Errorf("contractspec: argument %q: %w", p.Name, err)
		}
		out[i] = val
	}
	return out, nil
}

func convert(t Type, v interface{}) (xdr.ScVal, error) {
	switch t.Kind {
	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return xdr.ScVal{}, invalidArg("expected bool, got %T", v)
		}
		return xdr.ScBoolVal(b), nil

	case KindVoid:
		if v != nil {
			return xdr.ScVal{}, invalidArg("expected nil for Void, got %T", v)
		}
		return xdr.ScVoidVal(), nil

	case KindU32:
		n, err := toInt64(v)
		if err != nil {
			return xdr.ScVal{}, err
		}
		if n < 0 || n > 1<<32-1 {
			return xdr.ScVal{}, invalidArg("%d out of u32 range", n)
		}
		return xdr.ScU32Val(uint32(n)), nil

	case KindI32:
		n, err := toInt64(v)
		if err != nil {
			return xdr.ScVal{}, err
		}
		if n < -(1<<31) || n > 1<<31-1 {
			return xdr.ScVal{}, invalidArg("%d out of i32 range", n)
		}
		return xdr.ScI32Val(int32(n)), nil

	case KindU64, KindTimepoint, KindDuration:
		n, err := toInt64(v)
		if err != nil {
			return xdr.ScVal{}, err
		}
		if n < 0 {
			return xdr.ScVal{}, invalidArg("%d must be non-negative", n)
		}
		val := xdr.ScU64Val(uint64(n))
		if t.Kind == KindTimepoint {
			val = xdr.ScVal{Type: xdr.ScValTypeScvTimepoint, Tp: timepointPtr(xdr.TimePoint(n))}
		} else if t.Kind == KindDuration {
			val = xdr.ScVal{Type: xdr.ScValTypeScvDuration, Dur: durationPtr(xdr.Duration(n))}
		}
		return val, nil

	case KindI64:
		n, err := toInt64(v)
		if err != nil {
			return xdr.ScVal{}, err
		}
		return xdr.ScI64Val(n), nil

	case KindU128:
		b, err := toBigInt(v)
		if err != nil {
			return xdr.ScVal{}, err
		}
		if b.Sign() < 0 {
			return xdr.ScVal{}, invalidArg("u128 must be non-negative")
		}
		parts := splitUint(b, 2)
		u := xdr.UInt128Parts{Hi: xdr.Uint64(parts[0]), Lo: xdr.Uint64(parts[1])}
		return xdr.ScVal{Type: xdr.ScValTypeScvU128, U128: &u}, nil

	case KindI128:
		b, err := toBigInt(v)
		if err != nil {
			return xdr.ScVal{}, err
		}
		hi, lo := splitSigned128(b)
		i := xdr.Int128Parts{Hi: xdr.Int64(hi), Lo: xdr.Uint64(lo)}
		return xdr.ScVal{Type: xdr.ScValTypeScvI128, I128: &i}, nil

	case KindU256:
		b, err := toBigInt(v)
		if err != nil {
			return xdr.ScVal{}, err
		}
		if b.Sign() < 0 {
			return xdr.ScVal{}, invalidArg("u256 must be non-negative")
		}
		parts := splitUint(b, 4)
		u := xdr.UInt256Parts{HiHi: xdr.Uint64(parts[0]), HiLo: xdr.Uint64(parts[1]), LoHi: xdr.Uint64(parts[2]), LoLo: xdr.Uint64(parts[3])}
		return xdr.ScVal{Type: xdr.ScValTypeScvU256, U256: &u}, nil

	case KindI256:
		b, err := toBigInt(v)
		if err != nil {
			return xdr.ScVal{}, err
		}
		hihi, hilo, lohi, lolo := splitSigned256(b)
		i := xdr.Int256Parts{HiHi: xdr.Int64(hihi), HiLo: xdr.Uint64(hilo), LoHi: xdr.Uint64(lohi), LoLo: xdr.Uint64(lolo)}
		return xdr.ScVal{Type: xdr.ScValTypeScvI256, I256: &i}, nil

	case KindBytes:
		b, err := toBytes(v)
		if err != nil {
			return xdr.ScVal{}, err
		}
		return xdr.ScBytesVal(b), nil

	case KindBytesN:
		b, err := toBytes(v)
		if err != nil {
			return xdr.ScVal{}, err
		}
		if uint32(len(b)) != t.N {
			return xdr.ScVal{}, invalidArg("expected %d bytes, got %d", t.N, len(b))
		}
		return xdr.ScBytesVal(b), nil

	case KindString:
		str, ok := v.(string)
		if !ok {
			return xdr.ScVal{}, invalidArg("expected string, got %T", v)
		}
		return xdr.ScStringVal(str), nil

	case KindSymbol:
		str, ok := v.(string)
		if !ok {
			return xdr.ScVal{}, invalidArg("expected string, got %T", v)
		}
		if !symbolRe.MatchString(str) {
			return xdr.ScVal{}, invalidArg("%q is not a valid symbol", str)
		}
		return xdr.ScSymbolVal(str), nil

	case KindAddress:
		str, ok := v.(string)
		if !ok {
			return xdr.ScVal{}, invalidArg("expected strkey address string, got %T", v)
		}
		addr, err := address.Parse(str)
		if err != nil {
			return xdr.ScVal{}, invalidArg("%q is not a valid address: %v", str, err)
		}
		sc, err := addr.ToScAddress()
		if err != nil {
			return xdr.ScVal{}, invalidArg("%q cannot be used as a contract address argument: %v", str, err)
		}
		return xdr.ScAddressVal(sc), nil

	case KindOption:
		if v == nil {
			return xdr.ScVoidVal(), nil
		}
		if t.Element == nil {
			return xdr.ScVal{}, invalidArg("option type missing element type")
		}
		return convert(*t.Element, v)

	case KindVec:
		items, ok := v.([]interface{})
		if !ok {
			return xdr.ScVal{}, invalidArg("expected a slice, got %T", v)
		}
		if t.Element == nil {
			return xdr.ScVal{}, invalidArg("vec type missing element type")
		}
		vals := make([]xdr.ScVal, len(items))
		for i, item := range items {
			val, err := convert(*t.Element, item)
			if err != nil {
				return xdr.ScVal{}, fmt.Errorf("element %d: %w", i, err)
			}
			vals[i] = val
		}
		return xdr.ScVecVal(vals), nil

	case KindMap:
		m, ok := v.(map[string]interface{})
		if !ok {
			return xdr.ScVal{}, invalidArg("expected a map, got %T", v)
		}
		if t.Key == nil || t.Value == nil {
			return xdr.ScVal{}, invalidArg("map type missing key/value type")
		}
		entries := make([]xdr.ScMapEntry, 0, len(m))
		for k, val := range m {
			key, err := convert(*t.Key, k)
			if err != nil {
				return xdr.ScVal{}, fmt.Errorf("key %q: %w", k, err)
			}
			mv, err := convert(*t.Value, val)
			if err != nil {
				return xdr.ScVal{}, fmt.Errorf("value for key %q: %w", k, err)
			}
			entries = append(entries, xdr.ScMapEntry{Key: key, Val: mv})
		}
		return xdr.ScMapVal(entries), nil

	case KindTuple:
		items, ok := v.([]interface{})
		if !ok {
			return xdr.ScVal{}, invalidArg("expected a %d-element slice, got %T", len(t.Elements), v)
		}
		if len(items) != len(t.Elements) {
			return xdr.ScVal{}, invalidArg("expected %d tuple elements, got %d", len(t.Elements), len(items))
		}
		vals := make([]xdr.ScVal, len(items))
		for i, item := range items {
			val, err := convert(t.Elements[i], item)
			if err != nil {
				return xdr.ScVal{}, fmt.Errorf("tuple element %d: %w", i, err)
			}
			vals[i] = val
		}
		return xdr.ScVecVal(vals), nil

	case KindUdtStruct:
		m, ok := v.(map[string]interface{})
		if !ok {
			return xdr.ScVal{}, invalidArg("expected a field map for struct %q, got %T", t.Name, v)
		}
		entries := make([]xdr.ScMapEntry, 0, len(t.Fields))
		for _, f := range t.Fields {
			fv, present := m[f.Name]
			if !present {
				return xdr.ScVal{}, &Error{Kind: ErrMissingArgument, Msg: fmt.Sprintf("%s.%s", t.Name, f.Name)}
			}
			val, err := convert(f.Type, fv)
			if err != nil {
				return xdr.ScVal{}, fmt.Errorf("field %q: %w", f.Name, err)
			}
			entries = append(entries, xdr.ScMapEntry{Key: xdr.ScSymbolVal(f.Name), Val: val})
		}
		return xdr.ScMapVal(entries), nil

	case KindUdtEnum:
		switch c := v.(type) {
		case string:
			for _, k := range t.Cases {
				if k.Name == c {
					return xdr.ScU32Val(k.Value), nil
				}
			}
			return xdr.ScVal{}, invalidArg("%q is not a case of enum %q", c, t.Name)
		default:
			n, err := toInt64(v)
			if err != nil {
				return xdr.ScVal{}, invalidArg("expected a case name or integer for enum %q, got %T", t.Name, v)
			}
			for _, k := range t.Cases {
				if int64(k.Value) == n {
					return xdr.ScU32Val(k.Value), nil
				}
			}
			return xdr.ScVal{}, invalidArg("%d is not a case value of enum %q", n, t.Name)
		}

	case KindUdtUnion:
		tag, payload, err := unionTagAndPayload(v)
		if err != nil {
			return xdr.ScVal{}, err
		}
		var variant *UdtUnionVariant
		for i := range t.Variants {
			if t.Variants[i].Tag == tag {
				variant = &t.Variants[i]
				break
			}
		}
		if variant == nil {
			return xdr.ScVal{}, invalidArg("%q is not a variant of union %q", tag, t.Name)
		}
		vals := make([]xdr.ScVal, 0, 1+len(variant.Types))
		vals = append(vals, xdr.ScSymbolVal(tag))
		switch len(variant.Types) {
		case 0:
			if payload != nil {
				return xdr.ScVal{}, invalidArg("union %q variant %q takes no payload", t.Name, tag)
			}
		case 1:
			items, isSlice := payload.([]interface{})
			if isSlice {
				if len(items) != 1 {
					return xdr.ScVal{}, invalidArg("union %q variant %q expects 1 value, got %d", t.Name, tag, len(items))
				}
				payload = items[0]
			}
			val, err := convert(variant.Types[0], payload)
			if err != nil {
				return xdr.ScVal{}, fmt.Errorf("union %q variant %q: %w", t.Name, tag, err)
			}
			vals = append(vals, val)
		default:
			items, ok := payload.([]interface{})
			if !ok || len(items) != len(variant.Types) {
				return xdr.ScVal{}, invalidArg("union %q variant %q expects %d values", t.Name, tag, len(variant.Types))
			}
			for i, item := range items {
				val, err := convert(variant.Types[i], item)
				if err != nil {
					return xdr.ScVal{}, fmt.Errorf("union %q variant %q value %d: %w", t.Name, tag, i, err)
				}
				vals = append(vals, val)
			}
		}
		return xdr.ScVecVal(vals), nil

	default:
		return xdr.ScVal{}, invalidArg("unsupported spec type")
	}
}

// unionTagAndPayload accepts either a single-key map {"VariantName": payload} or the bare string
// tag of a unit variant, the two shapes a caller can supply for a Udt(union) argument.
func unionTagAndPayload(v interface{}) (tag string, payload interface{}, err error) {
	switch u := v.(type) {
	case string:
		return u, nil, nil
	case map[string]interface{}:
		if len(u) != 1 {
			return "", nil, invalidArg("union value must be a single-key map {tag: payload}, got %d keys", len(u))
		}
		for k, val := range u {
			return k, val, nil
		}
	}
	return "", nil, invalidArg("expected a union tag string or single-key map, got %T", v)
}

var symbolRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

func invalidArg(format string, args ...interface{}) error {
	return &Error{Kind: ErrInvalidArgument, Msg: fmt.Sprintf(format, args...)}
}

func toInt64(v interface{}) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint32:
		return int64(n), nil
	case uint64:
		if n > 1<<63-1 {
			return 0, invalidArg("%d overflows i64", n)
		}
		return int64(n), nil
	default:
		return 0, invalidArg("expected an integer, got %T", v)
	}
}

func toBigInt(v interface{}) (*big.Int, error) {
	switch n := v.(type) {
	case *big.Int:
		return n, nil
	case int64:
		return big.NewInt(n), nil
	case int:
		return big.NewInt(int64(n)), nil
	case uint64:
		return new(big.Int).SetUint64(n), nil
	default:
		return nil, invalidArg("expected an integer or *big.Int, got %T", v)
	}
}

func toBytes(v interface{}) ([]byte, error) {
	switch b := v.(type) {
	case []byte:
		return b, nil
	case string:
		s := strings.TrimPrefix(b, "0x")
		out, err := hex.DecodeString(s)
		if err != nil {
			return nil, invalidArg("%q is not valid hex", b)
		}
		return out, nil
	default:
		return nil, invalidArg("expected []byte or 0x-hex string, got %T", v)
	}
}

// splitUint splits the absolute value of b into limbs big-endian 64-bit words, zero-padded.
func splitUint(b *big.Int, limbs int) []uint64 {
	out := make([]uint64, limbs)
	tmp := new(big.Int).Set(b)
	mask := new(big.Int).SetUint64(^uint64(0))
	for i := limbs - 1; i >= 0; i-- {
		word := new(big.Int).And(tmp, mask)
		out[i] = word.Uint64()
		tmp.Rsh(tmp, 64)
	}
	return out
}

func splitSigned128(b *big.Int) (hi int64, lo uint64) {
	u := toTwosComplement(b, 128)
	parts := splitUint(u, 2)
	return int64(parts[0]), parts[1]
}

func splitSigned256(b *big.Int) (hihi int64, hilo, lohi, lolo uint64) {
	u := toTwosComplement(b, 256)
	parts := splitUint(u, 4)
	return int64(parts[0]), parts[1], parts[2], parts[3]
}

// toTwosComplement renders b (which may be negative) as its bits-wide two's complement unsigned
// value, the representation each signed limb pair is actually stored in.
func toTwosComplement(b *big.Int, bits uint) *big.Int {
	if b.Sign() >= 0 {
		return new(big.Int).Set(b)
	}
	mod := new(big.Int).Lsh(big.NewInt(1), bits)
	return new(big.Int).Add(mod, b)
}

func timepointPtr(t xdr.TimePoint) *xdr.TimePoint { return &t }
func durationPtr(d xdr.Duration) *xdr.Duration     { return &d }

package contractspec

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soneso/stellar-go-sdk/keypair"
	"github.com/Soneso/stellar-go-sdk/xdr"
)

func Test_MarshalArgsHelloContract(t *testing.T) {
	spec := New([]Function{
		{Name: "hello", Inputs: []Param{{Name: "to", Type: Type{Kind: KindSymbol}}}},
	})

	args, err := spec.MarshalArgs("hello", map[string]interface{}{"to": "Maria"})
	require.NoError(t, err)
	require.Len(t, args, 1)
	assert.Equal(t, xdr.ScValTypeScvSymbol, args[0].Type)
	assert.Equal(t, xdr.ScSymbol("Maria"), *args[0].Sym)
}

func Test_MarshalArgsUnknownFunction(t *testing.T) {
	spec := New(nil)
	_, err := spec.MarshalArgs("missing", nil)
	require.Error(t, err)
	assert.Equal(t, ErrFunctionNotFound, err.(*Error).Kind)
}

func Test_MarshalArgsMissingRequiredArgument(t *testing.T) {
	spec := New([]Function{
		{Name: "transfer", Inputs: []Param{{Name: "amount", Type: Type{Kind: KindI128}}}},
	})
	_, err := spec.MarshalArgs("transfer", map[string]interface{}{})
	require.Error(t, err)
	assert.Equal(t, ErrMissingArgument, err.(*Error).Kind)
}

func Test_MarshalArgsMissingOptionDefaultsToVoid(t *testing.T) {
	spec := New([]Function{
		{Name: "configure", Inputs: []Param{{Name: "limit", Type: Type{Kind: KindOption, Element: &Type{Kind: KindU32}}}}},
	})
	args, err := spec.MarshalArgs("configure", map[string]interface{}{})
	require.NoError(t, err)
	require.Len(t, args, 1)
	assert.Equal(t, xdr.ScValTypeScvVoid, args[0].Type)
}

func Test_ConvertU128RoundTripsThroughLimbs(t *testing.T) {
	big128 := new(big.Int)
	big128.SetString("340282366920938463463374607431768211455", 10) // 2^128 - 1
	val, err := convert(Type{Kind: KindU128}, big128)
	require.NoError(t, err)
	require.NotNil(t, val.U128)
	assert.Equal(t, xdr.Uint64(^uint64(0)), val.U128.Hi)
	assert.Equal(t, xdr.Uint64(^uint64(0)), val.U128.Lo)
}

func Test_ConvertI128NegativeUsesTwosComplement(t *testing.T) {
	val, err := convert(Type{Kind: KindI128}, big.NewInt(-1))
	require.NoError(t, err)
	require.NotNil(t, val.I128)
	assert.Equal(t, xdr.Int64(-1), val.I128.Hi)
	assert.Equal(t, xdr.Uint64(^uint64(0)), val.I128.Lo)
}

func Test_ConvertBytesNRejectsWrongLength(t *testing.T) {
	_, err := convert(Type{Kind: KindBytesN, N: 32}, make([]byte, 16))
	assert.Error(t, err)
}

func Test_ConvertBytesAcceptsHexString(t *testing.T) {
	val, err := convert(Type{Kind: KindBytes}, "0xdeadbeef")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, []byte(*val.Bytes))
}

func Test_ConvertSymbolRejectsInvalidCharacters(t *testing.T) {
	_, err := convert(Type{Kind: KindSymbol}, "not a symbol")
	assert.Error(t, err)
}

func Test_ConvertAddress(t *testing.T) {
	kp, err := keypair.Random()
	require.NoError(t, err)

	val, err := convert(Type{Kind: KindAddress}, kp.Address())
	require.NoError(t, err)
	assert.Equal(t, xdr.ScValTypeScvAddress, val.Type)
}

func Test_ConvertVecOfStrings(t *testing.T) {
	val, err := convert(Type{Kind: KindVec, Element: &Type{Kind: KindString}}, []interface{}{"a", "b"})
	require.NoError(t, err)
	require.NotNil(t, val.Vec)
	assert.Len(t, *val.Vec, 2)
}

func Test_ConvertTuple(t *testing.T) {
	tp := Type{Kind: KindTuple, Elements: []Type{{Kind: KindU32}, {Kind: KindString}}}
	val, err := convert(tp, []interface{}{uint32(7), "x"})
	require.NoError(t, err)
	require.NotNil(t, val.Vec)
	require.Len(t, *val.Vec, 2)
	assert.Equal(t, xdr.ScValTypeScvU32, (*val.Vec)[0].Type)
	assert.Equal(t, xdr.ScValTypeScvString, (*val.Vec)[1].Type)
}

func Test_ConvertTupleRejectsWrongArity(t *testing.T) {
	tp := Type{Kind: KindTuple, Elements: []Type{{Kind: KindU32}, {Kind: KindString}}}
	_, err := convert(tp, []interface{}{uint32(7)})
	assert.Error(t, err)
}

func Test_ConvertUdtStructProducesSymbolKeyedMap(t *testing.T) {
	tp := Type{Kind: KindUdtStruct, Name: "Point", Fields: []UdtField{
		{Name: "x", Type: Type{Kind: KindI32}},
		{Name: "y", Type: Type{Kind: KindI32}},
	}}
	val, err := convert(tp, map[string]interface{}{"x": int32(1), "y": int32(2)})
	require.NoError(t, err)
	require.NotNil(t, val.Map)
	entries := *val.Map
	require.Len(t, entries, 2)
	for _, e := range entries {
		require.NotNil(t, e.Key.Sym)
	}
	assert.Equal(t, xdr.ScSymbol("x"), *entries[0].Key.Sym)
	assert.Equal(t, xdr.ScSymbol("y"), *entries[1].Key.Sym)
}

func Test_ConvertUdtStructMissingFieldFails(t *testing.T) {
	tp := Type{Kind: KindUdtStruct, Name: "Point", Fields: []UdtField{{Name: "x", Type: Type{Kind: KindI32}}}}
	_, err := convert(tp, map[string]interface{}{})
	require.Error(t, err)
	assert.Equal(t, ErrMissingArgument, err.(*Error).Kind)
}

func Test_ConvertUdtEnumByName(t *testing.T) {
	tp := Type{Kind: KindUdtEnum, Name: "Color", Cases: []UdtEnumCase{
		{Name: "Red", Value: 0}, {Name: "Green", Value: 1}, {Name: "Blue", Value: 2},
	}}
	val, err := convert(tp, "Green")
	require.NoError(t, err)
	assert.Equal(t, xdr.ScValTypeScvU32, val.Type)
	assert.Equal(t, xdr.Uint32(1), *val.U32)
}

func Test_ConvertUdtEnumByValue(t *testing.T) {
	tp := Type{Kind: KindUdtEnum, Name: "Color", Cases: []UdtEnumCase{{Name: "Red", Value: 0}}}
	val, err := convert(tp, 0)
	require.NoError(t, err)
	assert.Equal(t, xdr.Uint32(0), *val.U32)
}

func Test_ConvertUdtUnionUnitVariant(t *testing.T) {
	tp := Type{Kind: KindUdtUnion, Name: "Status", Variants: []UdtUnionVariant{
		{Tag: "Pending"}, {Tag: "Done"},
	}}
	val, err := convert(tp, "Pending")
	require.NoError(t, err)
	require.NotNil(t, val.Vec)
	require.Len(t, *val.Vec, 1)
	assert.Equal(t, xdr.ScSymbol("Pending"), *(*val.Vec)[0].Sym)
}

func Test_ConvertUdtUnionWithPayload(t *testing.T) {
	tp := Type{Kind: KindUdtUnion, Name: "Status", Variants: []UdtUnionVariant{
		{Tag: "Failed", Types: []Type{{Kind: KindString}}},
		{Tag: "Retry", Types: []Type{{Kind: KindU32}, {Kind: KindU32}}},
	}}

	val, err := convert(tp, map[string]interface{}{"Failed": "boom"})
	require.NoError(t, err)
	require.Len(t, *val.Vec, 2)
	assert.Equal(t, xdr.ScSymbol("Failed"), *(*val.Vec)[0].Sym)
	assert.Equal(t, xdr.ScValTypeScvString, (*val.Vec)[1].Type)

	val2, err := convert(tp, map[string]interface{}{"Retry": []interface{}{uint32(1), uint32(2)}})
	require.NoError(t, err)
	require.Len(t, *val2.Vec, 3)
}

func Test_ConvertUdtUnionUnknownVariantFails(t *testing.T) {
	tp := Type{Kind: KindUdtUnion, Name: "Status", Variants: []UdtUnionVariant{{Tag: "Done"}}}
	_, err := convert(tp, "Nope")
	assert.Error(t, err)
}

func Test_ConvertMapIsCanonicallyOrdered(t *testing.T) {
	m := map[string]interface{}{"zeta": "1", "alpha": "2", "mid": "3"}
	val, err := convert(Type{Kind: KindMap, Key: &Type{Kind: KindString}, Value: &Type{Kind: KindString}}, m)
	require.NoError(t, err)
	require.NotNil(t, val.Map)
	entries := *val.Map
	require.Len(t, entries, 3)
	for i := 1; i < len(entries); i++ {
		assert.True(t, entries[i-1].Key.Str != nil && entries[i].Key.Str != nil)
		assert.LessOrEqual(t, string(*entries[i-1].Key.Str), string(*entries[i].Key.Str))
	}
}

package xdr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_PrimitivesRoundTrip(t *testing.T) {
	i64 := Int64(-123456789)
	b, err := Marshal(i64)
	require.NoError(t, err)
	var gotI64 Int64
	require.NoError(t, Unmarshal(b, &gotI64))
	assert.Equal(t, i64, gotI64)

	u32 := Uint32(42)
	b, err = Marshal(u32)
	require.NoError(t, err)
	var gotU32 Uint32
	require.NoError(t, Unmarshal(b, &gotU32))
	assert.Equal(t, u32, gotU32)

	var h Hash
	for i := range h {
		h[i] = byte(i)
	}
	b, err = Marshal(h)
	require.NoError(t, err)
	var gotHash Hash
	require.NoError(t, Unmarshal(b, &gotHash))
	assert.Equal(t, h, gotHash)
}

func Test_UnmarshalRejectsTrailingBytes(t *testing.T) {
	i64 := Int64(7)
	b, err := Marshal(i64)
	require.NoError(t, err)
	b = append(b, 0, 0, 0, 0)

	var got Int64
	assert.Error(t, Unmarshal(b, &got))
}

func Test_MarshalBase64RoundTrip(t *testing.T) {
	u64 := Uint64(18446744073709551615)
	s, err := MarshalBase64(u64)
	require.NoError(t, err)

	var got Uint64
	require.NoError(t, UnmarshalBase64(s, &got))
	assert.Equal(t, u64, got)
}

func Test_ScValBoolRoundTrip(t *testing.T) {
	v := ScBoolVal(true)
	b, err := Marshal(v)
	require.NoError(t, err)

	var got ScVal
	require.NoError(t, Unmarshal(b, &got))
	assert.Equal(t, v, got)
}

func Test_ScValU128RoundTrip(t *testing.T) {
	v := ScVal{Type: ScValTypeScvU128, U128: &UInt128Parts{Hi: 1, Lo: 2}}
	b, err := Marshal(v)
	require.NoError(t, err)

	var got ScVal
	require.NoError(t, Unmarshal(b, &got))
	assert.Equal(t, v, got)
}

func Test_ScValVecRoundTrip(t *testing.T) {
	v := ScVecVal([]ScVal{ScU32Val(1), ScSymbolVal("hi"), ScBoolVal(false)})
	b, err := Marshal(v)
	require.NoError(t, err)

	var got ScVal
	require.NoError(t, Unmarshal(b, &got))
	assert.Equal(t, v, got)
}

func Test_ScValMapCanonicalOrderPreservedAcrossRoundTrip(t *testing.T) {
	v := ScMapVal([]ScMapEntry{
		{Key: ScSymbolVal("alpha"), Val: ScU32Val(1)},
		{Key: ScSymbolVal("zeta"), Val: ScU32Val(2)},
	})
	b, err := Marshal(v)
	require.NoError(t, err)

	var got ScVal
	require.NoError(t, Unmarshal(b, &got))
	assert.Equal(t, v, got)
}

func Test_ScValAddressRoundTrip(t *testing.T) {
	var key Uint256
	for i := range key {
		key[i] = byte(i)
	}
	addr := ScAddress{Type: ScAddressTypeScAddressTypeAccount, AccountId: &AccountId{Type: PublicKeyTypeEd25519, Ed25519: &key}}
	v := ScAddressVal(addr)

	b, err := Marshal(v)
	require.NoError(t, err)

	var got ScVal
	require.NoError(t, Unmarshal(b, &got))
	assert.Equal(t, v, got)
}

func Test_ExtensionPointRejectsNonZeroDiscriminant(t *testing.T) {
	b, err := Marshal(Int32(1))
	require.NoError(t, err)

	var ep ExtensionPoint
	assert.Error(t, Unmarshal(b, &ep))
}

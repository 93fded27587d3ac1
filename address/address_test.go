package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soneso/stellar-go-sdk/keypair"
)

func Test_ParseAccountRoundTrip(t *testing.T) {
	kp, err := keypair.Random()
	require.NoError(t, err)

	a, err := Parse(kp.Address())
	require.NoError(t, err)
	assert.Equal(t, KindAccount, a.Kind)
	assert.Equal(t, kp.Address(), a.String())
}

func Test_ParseMuxedRoundTrip(t *testing.T) {
	kp, err := keypair.Random()
	require.NoError(t, err)
	var key [32]byte
	copy(key[:], kp.PublicKey())

	a := Address{Kind: KindMuxed, Key: key, MuxedID: 42}
	s := a.String()
	assert.Equal(t, byte('M'), s[0])

	back, err := Parse(s)
	require.NoError(t, err)
	assert.Equal(t, a, back)
}

func Test_ScAddressRoundTrip(t *testing.T) {
	kp, err := keypair.Random()
	require.NoError(t, err)
	a, err := Parse(kp.Address())
	require.NoError(t, err)

	sc, err := a.ToScAddress()
	require.NoError(t, err)

	back, err := FromScAddress(sc)
	require.NoError(t, err)
	assert.Equal(t, a, back)
}

func Test_ParseRejectsGarbage(t *testing.T) {
	_, err := Parse("not-a-strkey")
	assert.Error(t, err)
}

func Test_ToScAddressRejectsNonAccountNonContract(t *testing.T) {
	a := Address{Kind: KindLiquidityPool}
	_, err := a.ToScAddress()
	assert.Error(t, err)
}

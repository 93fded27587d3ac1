package asset

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soneso/stellar-go-sdk/keypair"
	"github.com/Soneso/stellar-go-sdk/strkey"
)

func randomIssuer(t *testing.T) string {
	t.Helper()
	kp, err := keypair.Random()
	require.NoError(t, err)
	return kp.Address()
}

func Test_ParseNative(t *testing.T) {
	a, err := Parse("native")
	require.NoError(t, err)
	assert.True(t, a.IsNative())
	assert.Equal(t, "native", a.String())
}

func Test_StrictAssetParsing(t *testing.T) {
	// Spec scenario: a 5-char code selects AlphaNum12, round-trips through canonical().
	issuer := randomIssuer(t)
	canonical := "ASTRO:" + issuer

	a, err := Parse(canonical)
	require.NoError(t, err)
	assert.Equal(t, KindCreditAlphaNum12, a.Kind)
	assert.Equal(t, canonical, a.String())

	x, err := a.ToXDR()
	require.NoError(t, err)
	assert.NotNil(t, x.AlphaNum12)
	assert.Nil(t, x.AlphaNum4)

	back, err := FromXDR(x)
	require.NoError(t, err)
	assert.Equal(t, a, back)
}

func Test_CreditAsset4vs12(t *testing.T) {
	issuer := randomIssuer(t)

	a4, err := CreditAsset("USD", issuer)
	require.NoError(t, err)
	assert.Equal(t, KindCreditAlphaNum4, a4.Kind)

	a12, err := CreditAsset("LONGCODE12", issuer)
	require.NoError(t, err)
	assert.Equal(t, KindCreditAlphaNum12, a12.Kind)
}

func Test_CreditAssetRejectsBadIssuer(t *testing.T) {
	_, err := CreditAsset("USD", "not-an-address")
	assert.Error(t, err)
}

func Test_CreditAssetRejectsOverlongCode(t *testing.T) {
	_, err := CreditAsset("THIRTEENCHARS", randomIssuer(t))
	assert.Error(t, err)
}

func Test_ParsePoolIDHexAndStrkey(t *testing.T) {
	var raw [32]byte
	for i := range raw {
		raw[i] = byte(i)
	}
	hexStr := hex.EncodeToString(raw[:])

	fromHex, err := ParsePoolID(hexStr)
	require.NoError(t, err)
	assert.Equal(t, raw, fromHex)

	lp, err := strkey.Encode(strkey.VersionByteLiquidityPool, raw[:])
	require.NoError(t, err)
	fromStrkey, err := ParsePoolID(lp)
	require.NoError(t, err)
	assert.Equal(t, raw, fromStrkey)

	a := PoolShareAsset(raw)
	assert.Equal(t, hexStr, a.String())
}

func Test_DeriveLiquidityPoolIdOrderIndependent(t *testing.T) {
	issuer := randomIssuer(t)
	usd, err := CreditAsset("USD", issuer)
	require.NoError(t, err)
	native := NativeAsset()

	id1, err := DeriveLiquidityPoolId(native, usd, 30)
	require.NoError(t, err)
	id2, err := DeriveLiquidityPoolId(usd, native, 30)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
}

func Test_DeriveLiquidityPoolIdRejectsIdenticalAssets(t *testing.T) {
	_, err := DeriveLiquidityPoolId(NativeAsset(), NativeAsset(), 30)
	assert.Error(t, err)
}

func Test_SortXDRIsDeterministicAndOrderIndependent(t *testing.T) {
	issuer := randomIssuer(t)
	usd, err := CreditAsset("USD", issuer)
	require.NoError(t, err)
	eur, err := CreditAsset("EUR", issuer)
	require.NoError(t, err)
	native := NativeAsset()

	a := []Asset{usd, native, eur}
	b := []Asset{eur, usd, native}
	SortXDR(a)
	SortXDR(b)
	assert.Equal(t, a, b)
}

package txnbuild

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soneso/stellar-go-sdk/asset"
	"github.com/Soneso/stellar-go-sdk/keypair"
	"github.com/Soneso/stellar-go-sdk/network"
)

func newFundedPayment(t *testing.T, dest string) Payment {
	t.Helper()
	return Payment{
		Destination: dest,
		Asset:       asset.NativeAsset(),
		Amount:      "100",
	}
}

func Test_FeeFloor(t *testing.T) {
	source, err := keypair.Random()
	require.NoError(t, err)
	dest, err := keypair.Random()
	require.NoError(t, err)

	tx, err := NewBuilder(source.Address(), 1).
		AddOperation(newFundedPayment(t, dest.Address())).
		AddOperation(newFundedPayment(t, dest.Address())).
		SetTimeout(30).
		Build()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, tx.Fee(), uint32(200))
	assert.Equal(t, uint32(200), tx.Fee())
}

func Test_BuildRejectsBaseFeeBelowMinimum(t *testing.T) {
	source, err := keypair.Random()
	require.NoError(t, err)
	dest, err := keypair.Random()
	require.NoError(t, err)

	_, err = NewBuilder(source.Address(), 1).
		AddOperation(newFundedPayment(t, dest.Address())).
		SetBaseFee(1).
		SetTimeout(30).
		Build()
	assert.Error(t, err)
}

func Test_SetTimeoutZeroIsInfinite(t *testing.T) {
	source, err := keypair.Random()
	require.NoError(t, err)
	dest, err := keypair.Random()
	require.NoError(t, err)

	tx, err := NewBuilder(source.Address(), 1).
		AddOperation(newFundedPayment(t, dest.Address())).
		SetTimeout(TimeoutInfinite).
		Build()
	require.NoError(t, err)

	cond, err := tx.Preconditions()
	require.NoError(t, err)
	require.NotNil(t, cond.TimeBounds)
	assert.Equal(t, int64(0), cond.TimeBounds.MaxTime)
}

func Test_BuildRequiresTimeout(t *testing.T) {
	source, err := keypair.Random()
	require.NoError(t, err)
	dest, err := keypair.Random()
	require.NoError(t, err)

	_, err = NewBuilder(source.Address(), 1).
		AddOperation(newFundedPayment(t, dest.Address())).
		Build()
	assert.Error(t, err)
}

func Test_BuildRequiresAtLeastOneOperation(t *testing.T) {
	source, err := keypair.Random()
	require.NoError(t, err)

	_, err = NewBuilder(source.Address(), 1).SetTimeout(30).Build()
	assert.Error(t, err)
}

func Test_BuildRejectsMoreThan100Operations(t *testing.T) {
	source, err := keypair.Random()
	require.NoError(t, err)
	dest, err := keypair.Random()
	require.NoError(t, err)

	b := NewBuilder(source.Address(), 1).SetTimeout(30)
	for i := 0; i < 101; i++ {
		b.AddOperation(newFundedPayment(t, dest.Address()))
	}
	_, err = b.Build()
	assert.Error(t, err)
}

func Test_SignAndVerify(t *testing.T) {
	source, err := keypair.Random()
	require.NoError(t, err)
	dest, err := keypair.Random()
	require.NoError(t, err)

	tx, err := NewBuilder(source.Address(), 1).
		AddOperation(newFundedPayment(t, dest.Address())).
		SetTimeout(30).
		Build()
	require.NoError(t, err)

	require.NoError(t, tx.Sign(network.TestNetworkPassphrase, source))
	require.Len(t, tx.Signatures(), 1)

	h, err := tx.Hash(network.TestNetworkPassphrase)
	require.NoError(t, err)

	sig := tx.Signatures()[0]
	assert.True(t, ed25519.Verify(ed25519.PublicKey(source.PublicKey()), h[:], sig.Signature))
}

func Test_EnvelopeRoundTrip(t *testing.T) {
	source, err := keypair.Random()
	require.NoError(t, err)
	dest, err := keypair.Random()
	require.NoError(t, err)

	tx, err := NewBuilder(source.Address(), 5).
		AddOperation(newFundedPayment(t, dest.Address())).
		SetMemo(MemoText("hello")).
		SetTimeout(60).
		Build()
	require.NoError(t, err)
	require.NoError(t, tx.Sign(network.TestNetworkPassphrase, source))

	envelope, err := tx.ToEnvelopeXDRBase64()
	require.NoError(t, err)

	back, err := FromEnvelopeXDR(envelope)
	require.NoError(t, err)

	envelope2, err := back.ToEnvelopeXDRBase64()
	require.NoError(t, err)
	assert.Equal(t, envelope, envelope2)

	gotSource, err := back.SourceAccount()
	require.NoError(t, err)
	assert.Equal(t, source.Address(), gotSource)
	assert.Equal(t, int64(6), back.SequenceNumber())

	memo, err := back.Memo()
	require.NoError(t, err)
	assert.Equal(t, MemoText("hello"), memo)
}

func Test_PaymentRejectsZeroAmount(t *testing.T) {
	source, err := keypair.Random()
	require.NoError(t, err)
	dest, err := keypair.Random()
	require.NoError(t, err)

	_, err = NewBuilder(source.Address(), 1).
		AddOperation(Payment{Destination: dest.Address(), Asset: asset.NativeAsset(), Amount: "0"}).
		SetTimeout(30).
		Build()
	assert.Error(t, err)
}

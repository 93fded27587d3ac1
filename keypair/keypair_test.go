package keypair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_RandomSignVerify(t *testing.T) {
	kp, err := Random()
	require.NoError(t, err)
	assert.True(t, kp.IsFull())

	data := []byte("hello stellar")
	sig, err := kp.Sign(data)
	require.NoError(t, err)
	assert.NoError(t, kp.Verify(data, sig))

	tampered := append([]byte{}, data...)
	tampered[0] ^= 0xFF
	assert.Error(t, kp.Verify(tampered, sig))
}

func Test_SeedRoundTrip(t *testing.T) {
	kp, err := Random()
	require.NoError(t, err)

	seed, err := kp.Seed()
	require.NoError(t, err)

	kp2, err := Parse(seed)
	require.NoError(t, err)
	assert.Equal(t, kp.Address(), kp2.Address())
	assert.True(t, kp2.IsFull())
}

func Test_ParseAddressIsPublicOnly(t *testing.T) {
	kp, err := Random()
	require.NoError(t, err)

	pub, err := Parse(kp.Address())
	require.NoError(t, err)
	assert.False(t, pub.IsFull())

	_, err = pub.Sign([]byte("x"))
	assert.Error(t, err)
}

func Test_Hint(t *testing.T) {
	kp, err := Random()
	require.NoError(t, err)
	h := kp.Hint()
	assert.Equal(t, kp.PublicKey()[28:32], h[:])
}

func Test_FromRawSeedRejectsWrongLength(t *testing.T) {
	_, err := FromRawSeed([]byte{1, 2, 3})
	assert.Error(t, err)
}

func Test_ParseRejectsUnrecognizedPrefix(t *testing.T) {
	_, err := Parse("Xsomething")
	assert.Error(t, err)
}

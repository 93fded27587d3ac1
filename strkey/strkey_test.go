package strkey

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_EncodeDecodeRoundTrip(t *testing.T) {
	versions := []VersionByte{
		VersionByteAccountID,
		VersionByteSeed,
		VersionByteStellarPreAuthTx,
		VersionByteStellarHashX,
		VersionByteContract,
		VersionByteLiquidityPool,
	}
	for _, v := range versions {
		body := make([]byte, 32)
		_, err := rand.Read(body)
		require.NoError(t, err)

		s, err := Encode(v, body)
		require.NoError(t, err)

		gotVersion, gotBody, err := Decode(s)
		require.NoError(t, err)
		assert.Equal(t, v, gotVersion)
		assert.Equal(t, body, gotBody)
	}
}

func Test_MuxedAccountRoundTrip(t *testing.T) {
	body := make([]byte, 40)
	_, err := rand.Read(body)
	require.NoError(t, err)

	s, err := Encode(VersionByteMuxedAccount, body)
	require.NoError(t, err)

	gotVersion, gotBody, err := Decode(s)
	require.NoError(t, err)
	assert.Equal(t, VersionByteMuxedAccount, gotVersion)
	assert.Equal(t, body, gotBody)
}

func Test_ClaimableBalanceRoundTrip(t *testing.T) {
	body := make([]byte, 33)
	_, err := rand.Read(body)
	require.NoError(t, err)

	s, err := Encode(VersionByteClaimableBalance, body)
	require.NoError(t, err)

	gotVersion, gotBody, err := Decode(s)
	require.NoError(t, err)
	assert.Equal(t, VersionByteClaimableBalance, gotVersion)
	assert.Equal(t, body, gotBody)
}

func Test_CorruptedChecksumFails(t *testing.T) {
	body := make([]byte, 32)
	s, err := Encode(VersionByteAccountID, body)
	require.NoError(t, err)

	corrupted := []byte(s)
	// Flip a character in the middle of the string, away from the trailing checksum chars, so the
	// payload itself changes and the checksum no longer matches.
	mid := len(corrupted) / 2
	if corrupted[mid] == 'A' {
		corrupted[mid] = 'B'
	} else {
		corrupted[mid] = 'A'
	}

	_, _, err = Decode(string(corrupted))
	assert.Error(t, err)
}

func Test_WrongBodyLengthRejected(t *testing.T) {
	_, err := Encode(VersionByteAccountID, make([]byte, 16))
	assert.Error(t, err)
}

func Test_DecodeVersionMismatchRejected(t *testing.T) {
	body := make([]byte, 32)
	s, err := Encode(VersionByteContract, body)
	require.NoError(t, err)

	_, err = DecodeVersion(s, VersionByteAccountID)
	assert.Error(t, err)
}

func Test_IsValidPrefix(t *testing.T) {
	body := make([]byte, 32)
	s, err := Encode(VersionByteAccountID, body)
	require.NoError(t, err)
	assert.True(t, IsValidPrefix(s, 'G'))
	assert.False(t, IsValidPrefix(s, 'C'))
}

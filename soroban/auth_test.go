package soroban

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soneso/stellar-go-sdk/address"
	"github.com/Soneso/stellar-go-sdk/keypair"
	"github.com/Soneso/stellar-go-sdk/network"
	"github.com/Soneso/stellar-go-sdk/xdr"
)

func addressEntry(t *testing.T, kp *keypair.KeyPair, nonce int64) xdr.SorobanAuthorizationEntry {
	t.Helper()
	addr, err := address.Parse(kp.Address())
	require.NoError(t, err)
	scAddr, err := addr.ToScAddress()
	require.NoError(t, err)

	invocation := xdr.SorobanAuthorizedInvocation{
		Function: xdr.SorobanAuthorizedFunction{
			Type: xdr.SorobanAuthorizedFunctionTypeContractFn,
			ContractFn: &xdr.InvokeContractArgs{
				ContractAddress: scAddr,
				FunctionName:    xdr.ScSymbol("increment"),
				Args:            []xdr.ScVal{xdr.ScU32Val(1)},
			},
		},
	}

	return xdr.SorobanAuthorizationEntry{
		Credentials: xdr.SorobanCredentials{
			Type: xdr.SorobanCredentialsTypeAddress,
			Address: &xdr.SorobanAddressCredentials{
				Address:   scAddr,
				Nonce:     xdr.Int64(nonce),
				Signature: xdr.ScVoidVal(),
			},
		},
		RootInvocation: invocation,
	}
}

func Test_NeedsNonInvokerSigningByFindsUnsignedAddressCredentials(t *testing.T) {
	a, err := keypair.Random()
	require.NoError(t, err)
	b, err := keypair.Random()
	require.NoError(t, err)

	entries := []xdr.SorobanAuthorizationEntry{
		addressEntry(t, a, 1),
		addressEntry(t, b, 2),
		{Credentials: xdr.SorobanCredentials{Type: xdr.SorobanCredentialsTypeSourceAccount}},
	}

	needed, err := NeedsNonInvokerSigningBy(entries)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a.Address(), b.Address()}, needed)
}

func Test_NeedsNonInvokerSigningByDedupesSameSigner(t *testing.T) {
	a, err := keypair.Random()
	require.NoError(t, err)

	entries := []xdr.SorobanAuthorizationEntry{addressEntry(t, a, 1), addressEntry(t, a, 2)}

	needed, err := NeedsNonInvokerSigningBy(entries)
	require.NoError(t, err)
	assert.Equal(t, []string{a.Address()}, needed)
}

func Test_SignAuthEntrySignsMatchingSigner(t *testing.T) {
	a, err := keypair.Random()
	require.NoError(t, err)

	entry := addressEntry(t, a, 1)
	signed, err := SignAuthEntry(entry, a, 1000, network.TestNetworkPassphrase)
	require.NoError(t, err)

	require.NotNil(t, signed.Credentials.Address)
	assert.Equal(t, xdr.Uint32(1000), signed.Credentials.Address.SignatureExpirationLedger)
	assert.Equal(t, xdr.ScValTypeScvVec, signed.Credentials.Address.Signature.Type)

	remaining, err := NeedsNonInvokerSigningBy([]xdr.SorobanAuthorizationEntry{signed})
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func Test_SignAuthEntryLeavesMismatchedSignerUnchanged(t *testing.T) {
	a, err := keypair.Random()
	require.NoError(t, err)
	other, err := keypair.Random()
	require.NoError(t, err)

	entry := addressEntry(t, a, 1)
	unchanged, err := SignAuthEntry(entry, other, 1000, network.TestNetworkPassphrase)
	require.NoError(t, err)
	assert.Equal(t, xdr.ScValTypeScvVoid, unchanged.Credentials.Address.Signature.Type)
}

func Test_SignAuthEntryLeavesSourceAccountCredentialsUnchanged(t *testing.T) {
	a, err := keypair.Random()
	require.NoError(t, err)

	entry := xdr.SorobanAuthorizationEntry{Credentials: xdr.SorobanCredentials{Type: xdr.SorobanCredentialsTypeSourceAccount}}
	unchanged, err := SignAuthEntry(entry, a, 1000, network.TestNetworkPassphrase)
	require.NoError(t, err)
	assert.Equal(t, entry, unchanged)
}

package sorobanrpc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soneso/stellar-go-sdk/address"
	"github.com/Soneso/stellar-go-sdk/keypair"
	"github.com/Soneso/stellar-go-sdk/network"
	"github.com/Soneso/stellar-go-sdk/txnbuild"
	"github.com/Soneso/stellar-go-sdk/xdr"
)

func buildInvokeTx(t *testing.T, source *keypair.KeyPair, contract, fn string) *txnbuild.Transaction {
	t.Helper()
	addr, err := address.Parse(contract)
	require.NoError(t, err)
	scAddr, err := addr.ToScAddress()
	require.NoError(t, err)

	op := txnbuild.InvokeHostFunction{
		SourceAccount: source.Address(),
		HostFunction: xdr.HostFunction{
			Type: xdr.HostFunctionTypeInvokeContract,
			InvokeContract: &xdr.InvokeContractArgs{
				ContractAddress: scAddr,
				FunctionName:    xdr.ScSymbol(fn),
			},
		},
	}
	tx, err := txnbuild.NewBuilder(source.Address(), 10).
		AddOperation(op).
		SetTimeout(30).
		Build()
	require.NoError(t, err)
	return tx
}

func randomContractAddress(t *testing.T) string {
	t.Helper()
	kp, err := keypair.Random()
	require.NoError(t, err)
	return kp.Address()
}

func Test_PrepareTransactionOverlaysResourcesAndFee(t *testing.T) {
	source, err := keypair.Random()
	require.NoError(t, err)
	tx := buildInvokeTx(t, source, randomContractAddress(t), "increment")

	txData := xdr.SorobanTransactionData{
		Resources: xdr.SorobanResources{Instructions: 1000000},
		ResourceFee: 5000,
	}
	txDataB64, err := xdr.MarshalBase64(txData)
	require.NoError(t, err)

	sim := &SimulateTransactionResult{
		TransactionData: txDataB64,
		MinResourceFee:  "5000",
		LatestLedger:    1000,
	}

	prepared, err := PrepareTransaction(tx, sim, source.Address(), source, network.TestNetworkPassphrase)
	require.NoError(t, err)

	assert.Equal(t, uint32(100+5000), prepared.Fee())
	assert.Equal(t, txData.Resources.Instructions, prepared.SorobanData().Resources.Instructions)
}

func Test_PrepareTransactionAutoSignsSubmitterMatchingAuthEntry(t *testing.T) {
	source, err := keypair.Random()
	require.NoError(t, err)
	contractAddr := randomContractAddress(t)
	tx := buildInvokeTx(t, source, contractAddr, "increment")

	sourceScAddr, err := mustScAddress(t, source.Address())
	require.NoError(t, err)

	ops, err := tx.Operations()
	require.NoError(t, err)
	inv := ops[0].(txnbuild.InvokeHostFunction)
	inv.Auth = []xdr.SorobanAuthorizationEntry{
		{
			Credentials: xdr.SorobanCredentials{
				Type: xdr.SorobanCredentialsTypeAddress,
				Address: &xdr.SorobanAddressCredentials{
					Address:   sourceScAddr,
					Nonce:     1,
					Signature: xdr.ScVoidVal(),
				},
			},
		},
	}

	rebuilt, err := txnbuild.NewBuilder(source.Address(), 10).
		AddOperation(inv).
		SetTimeout(30).
		Build()
	require.NoError(t, err)

	txData := xdr.SorobanTransactionData{Resources: xdr.SorobanResources{Instructions: 1}}
	txDataB64, err := xdr.MarshalBase64(txData)
	require.NoError(t, err)

	sim := &SimulateTransactionResult{TransactionData: txDataB64, MinResourceFee: "100", LatestLedger: 500}

	prepared, err := PrepareTransaction(rebuilt, sim, source.Address(), source, network.TestNetworkPassphrase)
	require.NoError(t, err)

	preparedOps, err := prepared.Operations()
	require.NoError(t, err)
	preparedInv := preparedOps[0].(txnbuild.InvokeHostFunction)
	require.Len(t, preparedInv.Auth, 1)
	assert.NotEqual(t, xdr.ScValTypeScvVoid, preparedInv.Auth[0].Credentials.Address.Signature.Type)
	assert.Equal(t, xdr.Uint32(510), preparedInv.Auth[0].Credentials.Address.SignatureExpirationLedger)
}

func mustScAddress(t *testing.T, addr string) (xdr.ScAddress, error) {
	t.Helper()
	a, err := address.Parse(addr)
	require.NoError(t, err)
	return a.ToScAddress()
}

func Test_SubmitPollsUntilSuccess(t *testing.T) {
	source, err := keypair.Random()
	require.NoError(t, err)
	tx := buildInvokeTx(t, source, randomContractAddress(t), "increment")
	require.NoError(t, tx.Sign(network.TestNetworkPassphrase, source))

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		var result interface{}
		switch req.Method {
		case "sendTransaction":
			result = SendTransactionResult{Hash: "abc123", Status: SendTransactionStatusPending}
		case "getTransaction":
			calls++
			if calls < 2 {
				result = GetTransactionResult{Status: TransactionStatusNotFound}
			} else {
				result = GetTransactionResult{Status: TransactionStatusSuccess}
			}
		}
		b, _ := json.Marshal(result)
		resp := rpcResponse{JSONRPC: "2.0", ID: req.ID, Result: b}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, nil)
	res, err := Submit(context.Background(), c, tx, WithPollInterval(0), WithMaxAttempts(5))
	require.NoError(t, err)
	assert.Equal(t, "abc123", res.Hash)
	assert.Equal(t, TransactionStatusSuccess, res.Transaction.Status)
}

func Test_SubmitReturnsTxFailedOnSendError(t *testing.T) {
	source, err := keypair.Random()
	require.NoError(t, err)
	tx := buildInvokeTx(t, source, randomContractAddress(t), "increment")
	require.NoError(t, tx.Sign(network.TestNetworkPassphrase, source))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		result := SendTransactionResult{Status: SendTransactionStatusError, ErrorResultXDR: "AAAA"}
		b, _ := json.Marshal(result)
		resp := rpcResponse{JSONRPC: "2.0", ID: req.ID, Result: b}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, nil)
	_, err = Submit(context.Background(), c, tx)
	require.Error(t, err)
	sErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindTxFailed, sErr.Kind)
}

func Test_SubmitReturnsTimeoutWhenNeverFound(t *testing.T) {
	source, err := keypair.Random()
	require.NoError(t, err)
	tx := buildInvokeTx(t, source, randomContractAddress(t), "increment")
	require.NoError(t, tx.Sign(network.TestNetworkPassphrase, source))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		var result interface{}
		switch req.Method {
		case "sendTransaction":
			result = SendTransactionResult{Hash: "abc123", Status: SendTransactionStatusPending}
		case "getTransaction":
			result = GetTransactionResult{Status: TransactionStatusNotFound}
		}
		b, _ := json.Marshal(result)
		resp := rpcResponse{JSONRPC: "2.0", ID: req.ID, Result: b}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, nil)
	_, err = Submit(context.Background(), c, tx, WithPollInterval(0), WithMaxAttempts(2))
	require.Error(t, err)
	sErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindTimeout, sErr.Kind)
}

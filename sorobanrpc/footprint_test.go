package sorobanrpc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soneso/stellar-go-sdk/keypair"
	"github.com/Soneso/stellar-go-sdk/network"
	"github.com/Soneso/stellar-go-sdk/xdr"
)

func fakeRPCServer(t *testing.T, handlers map[string]func(req rpcRequest) interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		h, ok := handlers[req.Method]
		require.True(t, ok, "unexpected method %s", req.Method)
		b, err := json.Marshal(h(req))
		require.NoError(t, err)
		resp := rpcResponse{JSONRPC: "2.0", ID: req.ID, Result: b}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func Test_RestoreFootprintMovesReadOnlyIntoReadWrite(t *testing.T) {
	submitter, err := keypair.Random()
	require.NoError(t, err)

	archivedKey := xdr.LedgerKey{
		Type:         xdr.LedgerEntryTypeContractCode,
		ContractCode: &xdr.LedgerKeyContractCode{Hash: xdr.Hash{1, 2, 3}},
	}
	originalTxData := xdr.SorobanTransactionData{
		Resources: xdr.SorobanResources{
			Footprint: xdr.LedgerFootprint{ReadOnly: []xdr.LedgerKey{archivedKey}},
		},
	}
	originalTxDataB64, err := xdr.MarshalBase64(originalTxData)
	require.NoError(t, err)
	sim := &SimulateTransactionResult{TransactionData: originalTxDataB64, LatestLedger: 100}

	restoreTxData := xdr.SorobanTransactionData{
		Resources:   xdr.SorobanResources{Footprint: xdr.LedgerFootprint{ReadWrite: []xdr.LedgerKey{archivedKey}}},
		ResourceFee: 1234,
	}
	restoreTxDataB64, err := xdr.MarshalBase64(restoreTxData)
	require.NoError(t, err)

	srv := fakeRPCServer(t, map[string]func(req rpcRequest) interface{}{
		"simulateTransaction": func(req rpcRequest) interface{} {
			return SimulateTransactionResult{TransactionData: restoreTxDataB64, MinResourceFee: "1234", LatestLedger: 101}
		},
		"sendTransaction": func(req rpcRequest) interface{} {
			return SendTransactionResult{Hash: "restore123", Status: SendTransactionStatusPending}
		},
		"getTransaction": func(req rpcRequest) interface{} {
			return GetTransactionResult{Status: TransactionStatusSuccess}
		},
	})
	defer srv.Close()

	c := NewClient(srv.URL, nil, nil)
	res, err := RestoreFootprint(context.Background(), c, network.TestNetworkPassphrase, submitter.Address(), 10, sim, submitter, WithPollInterval(0), WithMaxAttempts(3))
	require.NoError(t, err)
	assert.Equal(t, "restore123", res.Hash)
}

func Test_RestoreFootprintUsesRestorePreambleWhenPresent(t *testing.T) {
	submitter, err := keypair.Random()
	require.NoError(t, err)

	key := xdr.LedgerKey{Type: xdr.LedgerEntryTypeContractCode, ContractCode: &xdr.LedgerKeyContractCode{Hash: xdr.Hash{9}}}
	preambleTxData := xdr.SorobanTransactionData{
		Resources: xdr.SorobanResources{Footprint: xdr.LedgerFootprint{ReadWrite: []xdr.LedgerKey{key}}},
	}
	preambleB64, err := xdr.MarshalBase64(preambleTxData)
	require.NoError(t, err)

	sim := &SimulateTransactionResult{
		RestorePreamble: &struct {
			TransactionData string `json:"transactionData"`
			MinResourceFee  string `json:"minResourceFee"`
		}{TransactionData: preambleB64, MinResourceFee: "500"},
		LatestLedger: 100,
	}

	respTxDataB64, err := xdr.MarshalBase64(preambleTxData)
	require.NoError(t, err)

	srv := fakeRPCServer(t, map[string]func(req rpcRequest) interface{}{
		"simulateTransaction": func(req rpcRequest) interface{} {
			return SimulateTransactionResult{TransactionData: respTxDataB64, MinResourceFee: "500", LatestLedger: 101}
		},
		"sendTransaction": func(req rpcRequest) interface{} {
			return SendTransactionResult{Hash: "preamble123", Status: SendTransactionStatusPending}
		},
		"getTransaction": func(req rpcRequest) interface{} {
			return GetTransactionResult{Status: TransactionStatusSuccess}
		},
	})
	defer srv.Close()

	c := NewClient(srv.URL, nil, nil)
	res, err := RestoreFootprint(context.Background(), c, network.TestNetworkPassphrase, submitter.Address(), 10, sim, submitter, WithPollInterval(0), WithMaxAttempts(3))
	require.NoError(t, err)
	assert.Equal(t, "preamble123", res.Hash)
}

func Test_ExtendFootprintTTLBuildsFootprintFromContractCodeKey(t *testing.T) {
	submitter, err := keypair.Random()
	require.NoError(t, err)

	codeKey := xdr.LedgerKey{Type: xdr.LedgerEntryTypeContractCode, ContractCode: &xdr.LedgerKeyContractCode{Hash: xdr.Hash{4, 5, 6}}}

	var capturedEnvelope string
	txData := xdr.SorobanTransactionData{ResourceFee: 777}
	txDataB64, err := xdr.MarshalBase64(txData)
	require.NoError(t, err)

	srv := fakeRPCServer(t, map[string]func(req rpcRequest) interface{}{
		"simulateTransaction": func(req rpcRequest) interface{} {
			params, ok := req.Params.(map[string]interface{})
			require.True(t, ok)
			capturedEnvelope, _ = params["transaction"].(string)
			return SimulateTransactionResult{TransactionData: txDataB64, MinResourceFee: "777", LatestLedger: 200}
		},
		"sendTransaction": func(req rpcRequest) interface{} {
			return SendTransactionResult{Hash: "ttl123", Status: SendTransactionStatusPending}
		},
		"getTransaction": func(req rpcRequest) interface{} {
			return GetTransactionResult{Status: TransactionStatusSuccess}
		},
	})
	defer srv.Close()

	c := NewClient(srv.URL, nil, nil)
	res, err := ExtendFootprintTTL(context.Background(), c, network.TestNetworkPassphrase, submitter.Address(), 10, codeKey, 5000, submitter, WithPollInterval(0), WithMaxAttempts(3))
	require.NoError(t, err)
	assert.Equal(t, "ttl123", res.Hash)
	assert.NotEmpty(t, capturedEnvelope)
}

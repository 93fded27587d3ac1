package sorobanrpc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handle func(method string, params json.RawMessage) (interface{}, *rpcError)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		var paramsRaw json.RawMessage
		if req.Params != nil {
			b, _ := json.Marshal(req.Params)
			paramsRaw = b
		}

		result, rpcErr := handle(req.Method, paramsRaw)
		resp := rpcResponse{JSONRPC: "2.0", ID: req.ID}
		if rpcErr != nil {
			resp.Error = rpcErr
		} else {
			b, err := json.Marshal(result)
			require.NoError(t, err)
			resp.Result = b
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func Test_GetHealthSendsWellFormedRequest(t *testing.T) {
	srv := newTestServer(t, func(method string, params json.RawMessage) (interface{}, *rpcError) {
		assert.Equal(t, "getHealth", method)
		return GetHealthResult{Status: "healthy", LatestLedger: 100}, nil
	})
	c := NewClient(srv.URL, nil, nil)

	out, err := c.GetHealth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", out.Status)
	assert.Equal(t, 100, out.LatestLedger)
}

func Test_CallUsesStringJSONRPCIds(t *testing.T) {
	var gotRaw json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := json.Marshal(map[string]interface{}{})
		var raw map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		gotRaw = raw["id"]
		w.Write([]byte(`{"jsonrpc":"2.0","id":"1","result":{}}`))
		_ = b
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, nil)
	_, err := c.Call(context.Background(), "getHealth", nil)
	require.NoError(t, err)

	var asString string
	assert.NoError(t, json.Unmarshal(gotRaw, &asString))
}

func Test_RPCErrorSurfacesAsProtocolError(t *testing.T) {
	srv := newTestServer(t, func(method string, params json.RawMessage) (interface{}, *rpcError) {
		return nil, &rpcError{Code: -32602, Message: "invalid params"}
	})
	c := NewClient(srv.URL, nil, nil)

	_, err := c.GetHealth(context.Background())
	require.Error(t, err)
	sErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindProtocolError, sErr.Kind)
	assert.Equal(t, -32602, sErr.Code)
}

func Test_GetEventsRejectsTooManyFiltersLocally(t *testing.T) {
	c := NewClient("http://unused.invalid", nil, nil)
	filters := make([]EventFilter, 6)
	_, err := c.GetEvents(context.Background(), GetEventsRequest{Filters: filters})
	require.Error(t, err)
}

func Test_GetEventsRejectsLimitAbove10000(t *testing.T) {
	c := NewClient("http://unused.invalid", nil, nil)
	req := GetEventsRequest{Pagination: &struct {
		Cursor string `json:"cursor,omitempty"`
		Limit  int    `json:"limit,omitempty"`
	}{Limit: 10001}}
	_, err := c.GetEvents(context.Background(), req)
	require.Error(t, err)
}

func Test_GetEventsRejectsTooManyTopicSegments(t *testing.T) {
	c := NewClient("http://unused.invalid", nil, nil)
	req := GetEventsRequest{Filters: []EventFilter{{Topics: [][]string{{"a"}, {"b"}, {"c"}, {"d"}, {"e"}}}}}
	_, err := c.GetEvents(context.Background(), req)
	require.Error(t, err)
}

func Test_SimulateTransactionSurfacesSimulationError(t *testing.T) {
	srv := newTestServer(t, func(method string, params json.RawMessage) (interface{}, *rpcError) {
		return SimulateTransactionResult{Error: "host invocation failed"}, nil
	})
	c := NewClient(srv.URL, nil, nil)

	_, err := c.SimulateTransaction(context.Background(), "AAAA", AuthModeEnforce)
	require.Error(t, err)
	sErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindSimulation, sErr.Kind)
}

func Test_BearerTokenAuthenticatorSetsHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"jsonrpc":"2.0","id":"1","result":{}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, &BearerTokenAuthenticator{Token: "secret"})
	_, err := c.GetHealth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", gotAuth)
}

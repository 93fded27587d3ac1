// Package sorobanrpc is a JSON-RPC 2.0 client for the Soroban RPC surface, generalizing the
// teacher's hand-rolled client (internal/transactionsubmission/services/sorobanrpc/client.go) from
// its three hardcoded methods to the full method set a contract-invocation pipeline needs.
package sorobanrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
)

// ErrorKind names one row of the error taxonomy this client can produce.
type ErrorKind string

const (
	KindHttpTransport ErrorKind = "HttpTransport"
	KindProtocolError ErrorKind = "ProtocolError"
	KindSimulation    ErrorKind = "Simulation"
)

// Error is the sentinel error kind for this package. Code and Data are populated for
// ProtocolError (the JSON-RPC error object) and are zero/nil otherwise.
type Error struct {
	Kind ErrorKind
	Msg  string
	Code int
	Data json.RawMessage
}

func (e *Error) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("sorobanrpc: %s: %s (code=%d)", e.Kind, e.Msg, e.Code)
	}
	return fmt.Sprintf("sorobanrpc: %s: %s", e.Kind, e.Msg)
}

// Authenticator injects authentication into an outgoing HTTP request, e.g. a bearer token for a
// provider that gates its RPC endpoint.
type Authenticator interface {
	Authenticate(req *http.Request)
}

// BearerTokenAuthenticator authenticates with a static bearer token.
type BearerTokenAuthenticator struct {
	Token string
}

func (b *BearerTokenAuthenticator) Authenticate(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+b.Token)
}

// Client is a Soroban RPC JSON-RPC 2.0 client bound to a single endpoint.
type Client struct {
	endpoint      string
	httpClient    *http.Client
	authenticator Authenticator
	nextID        int64
}

// NewClient builds a client against endpoint. httpClient defaults to http.DefaultClient if nil.
func NewClient(endpoint string, httpClient *http.Client, auth Authenticator) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{endpoint: endpoint, httpClient: httpClient, authenticator: auth}
}

type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      string      `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      string          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Call issues a single JSON-RPC request and returns the raw result payload. The request id is a
// monotonically increasing string generated internally; callers never need to supply one.
func (c *Client) Call(ctx context.Context, method string, params interface{}) (json.RawMessage, error) {
	id := atomic.AddInt64(&c.nextID, 1)
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      fmt.Sprintf("%d", id),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, &Error{Kind: KindHttpTransport, Msg: fmt.Sprintf("marshal request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Kind: KindHttpTransport, Msg: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.authenticator != nil {
		c.authenticator.Authenticate(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindHttpTransport, Msg: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Kind: KindProtocolError, Msg: fmt.Sprintf("unexpected status %d", resp.StatusCode), Code: resp.StatusCode}
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return nil, &Error{Kind: KindProtocolError, Msg: fmt.Sprintf("decode response: %v", err)}
	}
	if rpcResp.Error != nil {
		return nil, &Error{Kind: KindProtocolError, Msg: rpcResp.Error.Message, Code: rpcResp.Error.Code, Data: rpcResp.Error.Data}
	}
	return rpcResp.Result, nil
}

func (c *Client) call(ctx context.Context, method string, params, out interface{}) error {
	raw, err := c.Call(ctx, method, params)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Kind: KindProtocolError, Msg: fmt.Sprintf("unmarshal %s result: %v", method, err)}
	}
	return nil
}

// GetHealthResult is the response to getHealth.
type GetHealthResult struct {
	Status                string `json:"status"`
	LatestLedger           int    `json:"latestLedger"`
	OldestLedger           int    `json:"oldestLedger"`
	LedgerRetentionWindow  int    `json:"ledgerRetentionWindow"`
}

func (c *Client) GetHealth(ctx context.Context) (*GetHealthResult, error) {
	var out GetHealthResult
	if err := c.call(ctx, "getHealth", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetVersionInfoResult is the response to getVersionInfo.
type GetVersionInfoResult struct {
	Version            string `json:"version"`
	CommitHash         string `json:"commitHash"`
	BuildTimestamp     string `json:"buildTimestamp"`
	CaptiveCoreVersion string `json:"captiveCoreVersion"`
	ProtocolVersion    int    `json:"protocolVersion"`
}

func (c *Client) GetVersionInfo(ctx context.Context) (*GetVersionInfoResult, error) {
	var out GetVersionInfoResult
	if err := c.call(ctx, "getVersionInfo", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FeeDistribution is one fee distribution reported by getFeeStats.
type FeeDistribution struct {
	Max              string `json:"max"`
	Min              string `json:"min"`
	Mode             string `json:"mode"`
	P10              string `json:"p10"`
	P20              string `json:"p20"`
	P30              string `json:"p30"`
	P40              string `json:"p40"`
	P50              string `json:"p50"`
	P60              string `json:"p60"`
	P70              string `json:"p70"`
	P80              string `json:"p80"`
	P90              string `json:"p90"`
	P95              string `json:"p95"`
	P99              string `json:"p99"`
	TransactionCount string `json:"transactionCount"`
	LedgerCount      int    `json:"ledgerCount"`
}

type GetFeeStatsResult struct {
	SorobanInclusionFee FeeDistribution `json:"sorobanInclusionFee"`
	InclusionFee        FeeDistribution `json:"inclusionFee"`
	LatestLedger        int             `json:"latestLedger"`
}

func (c *Client) GetFeeStats(ctx context.Context) (*GetFeeStatsResult, error) {
	var out GetFeeStatsResult
	if err := c.call(ctx, "getFeeStats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetNetworkResult is the response to getNetwork.
type GetNetworkResult struct {
	FriendbotURL    string `json:"friendbotUrl,omitempty"`
	Passphrase      string `json:"passphrase"`
	ProtocolVersion int    `json:"protocolVersion"`
}

func (c *Client) GetNetwork(ctx context.Context) (*GetNetworkResult, error) {
	var out GetNetworkResult
	if err := c.call(ctx, "getNetwork", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLatestLedgerResult is the response to getLatestLedger.
type GetLatestLedgerResult struct {
	ID              string `json:"id"`
	ProtocolVersion int    `json:"protocolVersion"`
	Sequence        int    `json:"sequence"`
}

func (c *Client) GetLatestLedger(ctx context.Context) (*GetLatestLedgerResult, error) {
	var out GetLatestLedgerResult
	if err := c.call(ctx, "getLatestLedger", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TransactionStatus is the terminal/interim state of a submitted transaction.
type TransactionStatus string

const (
	TransactionStatusSuccess  TransactionStatus = "SUCCESS"
	TransactionStatusFailed   TransactionStatus = "FAILED"
	TransactionStatusNotFound TransactionStatus = "NOT_FOUND"
)

// GetTransactionResult is the response to getTransaction.
type GetTransactionResult struct {
	Status                TransactionStatus `json:"status"`
	LatestLedger          int               `json:"latestLedger"`
	LatestLedgerCloseTime string            `json:"latestLedgerCloseTime"`
	OldestLedger          int               `json:"oldestLedger"`
	OldestLedgerCloseTime string            `json:"oldestLedgerCloseTime"`
	ApplicationOrder      int               `json:"applicationOrder,omitempty"`
	EnvelopeXDR           string            `json:"envelopeXdr,omitempty"`
	ResultXDR             string            `json:"resultXdr,omitempty"`
	ResultMetaXDR         string            `json:"resultMetaXdr,omitempty"`
	Ledger                int               `json:"ledger,omitempty"`
	CreatedAt             string            `json:"createdAt,omitempty"`
}

func (c *Client) GetTransaction(ctx context.Context, hash string) (*GetTransactionResult, error) {
	var out GetTransactionResult
	if err := c.call(ctx, "getTransaction", map[string]string{"hash": hash}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTransactionsResult is the response to getTransactions.
type GetTransactionsResult struct {
	Transactions []GetTransactionResult `json:"transactions"`
	LatestLedger int                    `json:"latestLedger"`
	OldestLedger int                    `json:"oldestLedger"`
	Cursor       string                 `json:"cursor"`
}

// GetTransactionsRequest paginates through a ledger range.
type GetTransactionsRequest struct {
	StartLedger int `json:"startLedger,omitempty"`
	Pagination  *struct {
		Cursor string `json:"cursor,omitempty"`
		Limit  int    `json:"limit,omitempty"`
	} `json:"pagination,omitempty"`
}

func (c *Client) GetTransactions(ctx context.Context, req GetTransactionsRequest) (*GetTransactionsResult, error) {
	var out GetTransactionsResult
	if err := c.call(ctx, "getTransactions", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LedgerInfo is one entry returned by getLedgers.
type LedgerInfo struct {
	Hash            string `json:"hash"`
	Sequence        int    `json:"sequence"`
	LedgerCloseTime string `json:"ledgerCloseTime"`
	HeaderXDR       string `json:"headerXdr"`
	MetadataXDR     string `json:"metadataXdr"`
}

// GetLedgersResult is the response to getLedgers.
type GetLedgersResult struct {
	Ledgers      []LedgerInfo `json:"ledgers"`
	LatestLedger int          `json:"latestLedger"`
	OldestLedger int          `json:"oldestLedger"`
	Cursor       string       `json:"cursor"`
}

// GetLedgersRequest paginates through a ledger range.
type GetLedgersRequest struct {
	StartLedger int `json:"startLedger,omitempty"`
	Pagination  *struct {
		Cursor string `json:"cursor,omitempty"`
		Limit  int    `json:"limit,omitempty"`
	} `json:"pagination,omitempty"`
}

func (c *Client) GetLedgers(ctx context.Context, req GetLedgersRequest) (*GetLedgersResult, error) {
	var out GetLedgersResult
	if err := c.call(ctx, "getLedgers", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LedgerEntryResult is one entry returned by getLedgerEntries.
type LedgerEntryResult struct {
	Key                string `json:"key"`
	XDR                string `json:"xdr"`
	LastModifiedLedger int    `json:"lastModifiedLedgerSeq"`
	LiveUntilLedgerSeq int    `json:"liveUntilLedgerSeq,omitempty"`
}

// GetLedgerEntriesResult is the response to getLedgerEntries.
type GetLedgerEntriesResult struct {
	Entries      []LedgerEntryResult `json:"entries"`
	LatestLedger int                 `json:"latestLedger"`
}

// GetLedgerEntries fetches the current value of each base64 ledger key in keys.
func (c *Client) GetLedgerEntries(ctx context.Context, keys []string) (*GetLedgerEntriesResult, error) {
	var out GetLedgerEntriesResult
	if err := c.call(ctx, "getLedgerEntries", map[string][]string{"keys": keys}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EventFilterType names one of the three event sources getEvents can filter on.
type EventFilterType string

const (
	EventFilterContract   EventFilterType = "contract"
	EventFilterSystem     EventFilterType = "system"
	EventFilterDiagnostic EventFilterType = "diagnostic"
)

// EventFilter narrows getEvents to a contract/topic pattern. At most 5 filters and 4 topic
// segments per filter are accepted; a topic segment of "*" matches anything in that position.
type EventFilter struct {
	Type        EventFilterType `json:"type,omitempty"`
	ContractIDs []string        `json:"contractIds,omitempty"`
	Topics      [][]string      `json:"topics,omitempty"`
}

// GetEventsRequest is the parameter object for getEvents.
type GetEventsRequest struct {
	StartLedger int           `json:"startLedger,omitempty"`
	Filters     []EventFilter `json:"filters,omitempty"`
	Pagination  *struct {
		Cursor string `json:"cursor,omitempty"`
		Limit  int    `json:"limit,omitempty"`
	} `json:"pagination,omitempty"`
}

// EventInfo is one event returned by getEvents.
type EventInfo struct {
	Type                     string   `json:"type"`
	Ledger                   int      `json:"ledger"`
	LedgerClosedAt           string   `json:"ledgerClosedAt"`
	ContractID               string   `json:"contractId"`
	ID                       string   `json:"id"`
	PagingToken              string   `json:"pagingToken"`
	InSuccessfulContractCall bool     `json:"inSuccessfulContractCall"`
	TxHash                   string   `json:"txHash"`
	Topic                    []string `json:"topic"`
	Value                    string   `json:"value"`
}

// GetEventsResult is the response to getEvents.
type GetEventsResult struct {
	Events       []EventInfo `json:"events"`
	LatestLedger int         `json:"latestLedger"`
	Cursor       string      `json:"cursor"`
}

// GetEvents fetches events matching req. Filter count, topic depth, and limit are validated
// locally before any network call, per the protocol's own limits.
func (c *Client) GetEvents(ctx context.Context, req GetEventsRequest) (*GetEventsResult, error) {
	if len(req.Filters) > 5 {
		return nil, &Error{Kind: KindProtocolError, Msg: "getEvents accepts at most 5 filters"}
	}
	for _, f := range req.Filters {
		if len(f.Topics) > 4 {
			return nil, &Error{Kind: KindProtocolError, Msg: "getEvents accepts at most 4 topic segments per filter"}
		}
	}
	if req.Pagination != nil && req.Pagination.Limit > 10000 {
		return nil, &Error{Kind: KindProtocolError, Msg: "getEvents limit must be <= 10000"}
	}
	var out GetEventsResult
	if err := c.call(ctx, "getEvents", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SimulateTransactionAuthMode selects how simulateTransaction evaluates authorization.
type SimulateTransactionAuthMode string

const (
	AuthModeEnforce            SimulateTransactionAuthMode = "enforce"
	AuthModeRecord             SimulateTransactionAuthMode = "record"
	AuthModeRecordAllowNonRoot SimulateTransactionAuthMode = "record_allow_nonroot"
)

type simulateTransactionRequest struct {
	Transaction string                       `json:"transaction"`
	AuthMode    SimulateTransactionAuthMode   `json:"authMode,omitempty"`
}

// SimulateHostFunctionResult is one entry in SimulateTransactionResult.Results.
type SimulateHostFunctionResult struct {
	Auth []string `json:"auth"`
	XDR  string   `json:"xdr"`
}

// SimulateTransactionCost reports the resources a simulation measured.
type SimulateTransactionCost struct {
	CPUInstructions string `json:"cpuInsns"`
	MemoryBytes     string `json:"memBytes"`
}

// SimulateTransactionResult is the response to simulateTransaction. Error is non-empty exactly
// when simulation failed; callers should treat that as a Simulation-kind failure, not inspect the
// zero-valued Results.
type SimulateTransactionResult struct {
	Error           string                       `json:"error,omitempty"`
	TransactionData string                       `json:"transactionData"`
	MinResourceFee  string                       `json:"minResourceFee"`
	Events          []string                     `json:"events"`
	Results         []SimulateHostFunctionResult `json:"results"`
	Cost            SimulateTransactionCost      `json:"cost"`
	LatestLedger    int                          `json:"latestLedger"`
	RestorePreamble *struct {
		TransactionData string `json:"transactionData"`
		MinResourceFee  string `json:"minResourceFee"`
	} `json:"restorePreamble,omitempty"`
	StateChanges []struct {
		Type   string `json:"type"`
		Key    string `json:"key"`
		Before string `json:"before,omitempty"`
		After  string `json:"after,omitempty"`
	} `json:"stateChanges,omitempty"`
}

// SimulateTransaction simulates txXDR (a base64 TransactionEnvelope) and returns the resource
// footprint, fee, and auth entries a real invocation would need. A non-empty Result.Error is
// surfaced as a Simulation-kind error so callers don't have to remember to check it.
func (c *Client) SimulateTransaction(ctx context.Context, txXDR string, authMode SimulateTransactionAuthMode) (*SimulateTransactionResult, error) {
	var out SimulateTransactionResult
	if err := c.call(ctx, "simulateTransaction", simulateTransactionRequest{Transaction: txXDR, AuthMode: authMode}, &out); err != nil {
		return nil, err
	}
	if out.Error != "" {
		return &out, &Error{Kind: KindSimulation, Msg: out.Error}
	}
	return &out, nil
}

// SendTransactionStatus is the interim status sendTransaction reports immediately.
type SendTransactionStatus string

const (
	SendTransactionStatusPending       SendTransactionStatus = "PENDING"
	SendTransactionStatusDuplicate     SendTransactionStatus = "DUPLICATE"
	SendTransactionStatusTryAgainLater SendTransactionStatus = "TRY_AGAIN_LATER"
	SendTransactionStatusError         SendTransactionStatus = "ERROR"
)

// SendTransactionResult is the response to sendTransaction.
type SendTransactionResult struct {
	Hash                  string                 `json:"hash"`
	Status                SendTransactionStatus  `json:"status"`
	LatestLedger          int                    `json:"latestLedger"`
	LatestLedgerCloseTime string                 `json:"latestLedgerCloseTime"`
	DiagnosticEventsXDR   string                 `json:"diagnosticEventsXdr,omitempty"`
	ErrorResultXDR        string                 `json:"errorResultXdr,omitempty"`
}

func (c *Client) SendTransaction(ctx context.Context, txXDR string) (*SendTransactionResult, error) {
	var out SendTransactionResult
	if err := c.call(ctx, "sendTransaction", map[string]string{"transaction": txXDR}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

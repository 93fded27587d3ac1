// Package requestbuilder assembles Horizon REST request URLs, mirroring this module's other
// fluent *Builder types (txnbuild.Builder): each call narrows a query and returns the same
// builder so callers chain calls before a final URL() or StreamURL().
package requestbuilder

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Order is Horizon's page ordering parameter.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Builder accumulates a path and query parameters for one Horizon endpoint.
type Builder struct {
	base  string
	path  string
	query url.Values
}

func newBuilder(base, path string) *Builder {
	return &Builder{base: strings.TrimRight(base, "/"), path: path, query: url.Values{}}
}

// Cursor sets the paging cursor, the resume point for both plain pagination and SSE streaming.
func (b *Builder) Cursor(cursor string) *Builder {
	if cursor != "" {
		b.query.Set("cursor", cursor)
	}
	return b
}

// Limit sets the page size.
func (b *Builder) Limit(n int) *Builder {
	if n > 0 {
		b.query.Set("limit", strconv.Itoa(n))
	}
	return b
}

// Order sets the page ordering.
func (b *Builder) Order(o Order) *Builder {
	if o != "" {
		b.query.Set("order", string(o))
	}
	return b
}

// IncludeFailed includes failed transactions/operations in the result set.
func (b *Builder) IncludeFailed(include bool) *Builder {
	b.query.Set("include_failed", strconv.FormatBool(include))
	return b
}

// URL renders the final request URL.
func (b *Builder) URL() string {
	u := b.base + b.path
	if enc := b.query.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

// StreamURL renders the request URL for the streaming variant of this endpoint; Horizon's
// streaming and non-streaming variants share a path, distinguished by the Accept header the
// caller sets (text/event-stream), not the URL.
func (b *Builder) StreamURL() string { return b.URL() }

// Client roots a set of endpoint builders at a Horizon base URL (e.g.
// "https://horizon-testnet.stellar.org").
type Client struct {
	base string
}

// NewClient builds a Client rooted at base.
func NewClient(base string) *Client { return &Client{base: base} }

// Root builds "/" (the server's root resource: network passphrase, versions, ledger state).
func (c *Client) Root() *Builder { return newBuilder(c.base, "/") }

// Health builds "/health".
func (c *Client) Health() *Builder { return newBuilder(c.base, "/health") }

// FeeStats builds "/fee_stats".
func (c *Client) FeeStats() *Builder { return newBuilder(c.base, "/fee_stats") }

// Ledgers builds "/ledgers", optionally scoped to a single sequence.
func (c *Client) Ledgers(sequence ...uint32) *Builder {
	if len(sequence) > 0 {
		return newBuilder(c.base, fmt.Sprintf("/ledgers/%d", sequence[0]))
	}
	return newBuilder(c.base, "/ledgers")
}

// Account builds "/accounts/{id}".
func (c *Client) Account(accountID string) *Builder {
	return newBuilder(c.base, "/accounts/"+accountID)
}

// Accounts builds "/accounts" for filtered account search (by signer, sponsor, or asset).
func (c *Client) Accounts() *Builder { return newBuilder(c.base, "/accounts") }

// Transactions builds "/transactions", optionally scoped to a single hash.
func (c *Client) Transactions(hash ...string) *Builder {
	if len(hash) > 0 {
		return newBuilder(c.base, "/transactions/"+hash[0])
	}
	return newBuilder(c.base, "/transactions")
}

// TransactionsForAccount builds "/accounts/{id}/transactions".
func (c *Client) TransactionsForAccount(accountID string) *Builder {
	return newBuilder(c.base, "/accounts/"+accountID+"/transactions")
}

// Operations builds "/operations", optionally scoped to a single operation id.
func (c *Client) Operations(id ...string) *Builder {
	if len(id) > 0 {
		return newBuilder(c.base, "/operations/"+id[0])
	}
	return newBuilder(c.base, "/operations")
}

// OperationsForTransaction builds "/transactions/{hash}/operations".
func (c *Client) OperationsForTransaction(hash string) *Builder {
	return newBuilder(c.base, "/transactions/"+hash+"/operations")
}

// Effects builds "/effects".
func (c *Client) Effects() *Builder { return newBuilder(c.base, "/effects") }

// EffectsForAccount builds "/accounts/{id}/effects".
func (c *Client) EffectsForAccount(accountID string) *Builder {
	return newBuilder(c.base, "/accounts/"+accountID+"/effects")
}

// Offers builds "/offers", optionally scoped to a single offer id.
func (c *Client) Offers(id ...string) *Builder {
	if len(id) > 0 {
		return newBuilder(c.base, "/offers/"+id[0])
	}
	return newBuilder(c.base, "/offers")
}

// OffersForAccount builds "/accounts/{id}/offers".
func (c *Client) OffersForAccount(accountID string) *Builder {
	return newBuilder(c.base, "/accounts/"+accountID+"/offers")
}

// Trades builds "/trades".
func (c *Client) Trades() *Builder { return newBuilder(c.base, "/trades") }

// TradesForAccount builds "/accounts/{id}/trades".
func (c *Client) TradesForAccount(accountID string) *Builder {
	return newBuilder(c.base, "/accounts/"+accountID+"/trades")
}

// LiquidityPools builds "/liquidity_pools", optionally scoped to a single pool id.
func (c *Client) LiquidityPools(poolID ...string) *Builder {
	if len(poolID) > 0 {
		return newBuilder(c.base, "/liquidity_pools/"+poolID[0])
	}
	return newBuilder(c.base, "/liquidity_pools")
}

// ClaimableBalances builds "/claimable_balances", optionally scoped to a single balance id.
func (c *Client) ClaimableBalances(balanceID ...string) *Builder {
	if len(balanceID) > 0 {
		return newBuilder(c.base, "/claimable_balances/"+balanceID[0])
	}
	return newBuilder(c.base, "/claimable_balances")
}

// Assets builds "/assets".
func (c *Client) Assets() *Builder { return newBuilder(c.base, "/assets") }

// PathsStrictSend builds "/paths/strict-send".
func (c *Client) PathsStrictSend() *Builder { return newBuilder(c.base, "/paths/strict-send") }

// PathsStrictReceive builds "/paths/strict-receive".
func (c *Client) PathsStrictReceive() *Builder { return newBuilder(c.base, "/paths/strict-receive") }

// OrderBook builds "/order_book" for a selling/buying asset pair. The caller's strings are set
// as given on the "selling" and "buying" query parameters (empty ones are omitted); they are not
// split into asset_type/asset_code/asset_issuer parameters.
func (c *Client) OrderBook(sellingParam, buyingParam string) *Builder {
	b := newBuilder(c.base, "/order_book")
	if sellingParam != "" {
		b.query.Set("selling", sellingParam)
	}
	if buyingParam != "" {
		b.query.Set("buying", buyingParam)
	}
	return b
}

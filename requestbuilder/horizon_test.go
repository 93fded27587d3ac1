package requestbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_AccountURL(t *testing.T) {
	c := NewClient("https://horizon-testnet.stellar.org/")
	url := c.Account("GABC").URL()
	assert.Equal(t, "https://horizon-testnet.stellar.org/accounts/GABC", url)
}

func Test_BuilderChainsCursorLimitOrder(t *testing.T) {
	c := NewClient("https://horizon-testnet.stellar.org")
	url := c.Transactions().Cursor("123").Limit(50).Order(OrderDesc).URL()
	assert.Equal(t, "https://horizon-testnet.stellar.org/transactions?cursor=123&limit=50&order=desc", url)
}

func Test_LimitZeroIsOmitted(t *testing.T) {
	c := NewClient("https://horizon-testnet.stellar.org")
	url := c.Operations().Limit(0).URL()
	assert.Equal(t, "https://horizon-testnet.stellar.org/operations", url)
}

func Test_EmptyCursorIsOmitted(t *testing.T) {
	c := NewClient("https://horizon-testnet.stellar.org")
	url := c.Effects().Cursor("").URL()
	assert.Equal(t, "https://horizon-testnet.stellar.org/effects", url)
}

func Test_ScopedSingleResourcePaths(t *testing.T) {
	c := NewClient("https://horizon-testnet.stellar.org")
	assert.Equal(t, "https://horizon-testnet.stellar.org/ledgers/100", c.Ledgers(100).URL())
	assert.Equal(t, "https://horizon-testnet.stellar.org/transactions/abc", c.Transactions("abc").URL())
	assert.Equal(t, "https://horizon-testnet.stellar.org/offers/7", c.Offers("7").URL())
	assert.Equal(t, "https://horizon-testnet.stellar.org/claimable_balances/xyz", c.ClaimableBalances("xyz").URL())
}

func Test_TransactionsForAccountPath(t *testing.T) {
	c := NewClient("https://horizon-testnet.stellar.org")
	assert.Equal(t, "https://horizon-testnet.stellar.org/accounts/GABC/transactions", c.TransactionsForAccount("GABC").URL())
}

func Test_IncludeFailedAlwaysSet(t *testing.T) {
	c := NewClient("https://horizon-testnet.stellar.org")
	url := c.Transactions().IncludeFailed(true).URL()
	assert.Equal(t, "https://horizon-testnet.stellar.org/transactions?include_failed=true", url)
}

func Test_OrderBookEncodesSellingBuying(t *testing.T) {
	c := NewClient("https://horizon-testnet.stellar.org")
	url := c.OrderBook("asset_type=native", "asset_type=credit_alphanum4&asset_code=USD&asset_issuer=GISS").URL()
	assert.Contains(t, url, "selling=asset_type%3Dnative")
	assert.Contains(t, url, "buying=")
}

func Test_StreamURLMatchesURL(t *testing.T) {
	c := NewClient("https://horizon-testnet.stellar.org")
	b := c.Operations().Cursor("5")
	assert.Equal(t, b.URL(), b.StreamURL())
}

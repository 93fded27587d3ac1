package txnbuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soneso/stellar-go-sdk/asset"
	"github.com/Soneso/stellar-go-sdk/keypair"
	"github.com/Soneso/stellar-go-sdk/xdr"
)

func Test_ClaimPredicateRoundTrip(t *testing.T) {
	cases := []ClaimPredicate{
		UnconditionalClaim{},
		BeforeAbsoluteTimeClaim{UnixTime: 1700000000},
		BeforeRelativeTimeClaim{Seconds: 3600},
		AndClaim{Left: UnconditionalClaim{}, Right: BeforeRelativeTimeClaim{Seconds: 60}},
		OrClaim{Left: BeforeAbsoluteTimeClaim{UnixTime: 1}, Right: BeforeRelativeTimeClaim{Seconds: 2}},
		NotClaim{Inner: BeforeAbsoluteTimeClaim{UnixTime: 42}},
	}
	for _, pred := range cases {
		x, err := pred.toXDR()
		require.NoError(t, err)
		back, err := claimPredicateFromXDR(x)
		require.NoError(t, err)
		assert.Equal(t, pred, back)
	}
}

func Test_AndClaimRejectsWrongOperandCount(t *testing.T) {
	malformed := xdr.ClaimPredicate{
		Type:          xdr.ClaimPredicateAnd,
		AndPredicates: []xdr.ClaimPredicate{{Type: xdr.ClaimPredicateUnconditional}},
	}
	_, err := claimPredicateFromXDR(malformed)
	assert.Error(t, err)
}

func Test_CreateClaimableBalanceRejectsTooManyClaimants(t *testing.T) {
	dest, err := keypair.Random()
	require.NoError(t, err)

	claimants := make([]Claimant, 11)
	for i := range claimants {
		claimants[i] = Claimant{Destination: dest.Address(), Predicate: UnconditionalClaim{}}
	}

	op := CreateClaimableBalance{
		SourceAccount: dest.Address(),
		Asset:         asset.NativeAsset(),
		Amount:        "100",
		Claimants:     claimants,
	}
	_, err = op.toXDRBody()
	assert.Error(t, err)
}

func Test_CreateClaimableBalanceRoundTrip(t *testing.T) {
	source, err := keypair.Random()
	require.NoError(t, err)
	dest, err := keypair.Random()
	require.NoError(t, err)

	op := CreateClaimableBalance{
		SourceAccount: source.Address(),
		Asset:         asset.NativeAsset(),
		Amount:        "250",
		Claimants: []Claimant{
			{Destination: dest.Address(), Predicate: BeforeRelativeTimeClaim{Seconds: 120}},
		},
	}

	body, err := op.toXDRBody()
	require.NoError(t, err)
	require.NotNil(t, body.CreateClaimableBalance)

	back, err := createClaimableBalanceFromXDR(source.Address(), body.CreateClaimableBalance)
	require.NoError(t, err)
	assert.Equal(t, op, back)
}

func Test_ChangeTrustRemovesTrustlineAtZeroLimit(t *testing.T) {
	source, err := keypair.Random()
	require.NoError(t, err)
	issuer, err := keypair.Random()
	require.NoError(t, err)
	usd, err := asset.CreditAsset("USD", issuer.Address())
	require.NoError(t, err)

	op := ChangeTrust{SourceAccount: source.Address(), Line: usd, Limit: "0"}
	body, err := op.toXDRBody()
	require.NoError(t, err)
	assert.Equal(t, int64(0), int64(body.ChangeTrust.Limit))
}

func Test_ChangeTrustAcceptsMaxTrustLineLimit(t *testing.T) {
	source, err := keypair.Random()
	require.NoError(t, err)
	issuer, err := keypair.Random()
	require.NoError(t, err)
	usd, err := asset.CreditAsset("USD", issuer.Address())
	require.NoError(t, err)

	op := ChangeTrust{SourceAccount: source.Address(), Line: usd, Limit: MaxTrustLineLimit}
	body, err := op.toXDRBody()
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), int64(body.ChangeTrust.Limit))

	back, err := changeTrustFromXDR(source.Address(), body.ChangeTrust)
	require.NoError(t, err)
	assert.Equal(t, op, back)
}

func Test_ChangeTrustRejectsLimitAboveI64Max(t *testing.T) {
	source, err := keypair.Random()
	require.NoError(t, err)
	issuer, err := keypair.Random()
	require.NoError(t, err)
	usd, err := asset.CreditAsset("USD", issuer.Address())
	require.NoError(t, err)

	op := ChangeTrust{SourceAccount: source.Address(), Line: usd, Limit: "922337203685.4775808"}
	_, err = op.toXDRBody()
	assert.Error(t, err)
}

func Test_PriceRejectsNonPositiveTerms(t *testing.T) {
	_, err := Price{N: 0, D: 1}.toXDR()
	assert.Error(t, err)

	_, err = Price{N: 1, D: 0}.toXDR()
	assert.Error(t, err)

	_, err = Price{N: -1, D: 1}.toXDR()
	assert.Error(t, err)
}

func Test_ManageSellOfferRoundTrip(t *testing.T) {
	source, err := keypair.Random()
	require.NoError(t, err)
	issuer, err := keypair.Random()
	require.NoError(t, err)
	usd, err := asset.CreditAsset("USD", issuer.Address())
	require.NoError(t, err)

	op := ManageSellOffer{
		SourceAccount: source.Address(),
		Selling:       asset.NativeAsset(),
		Buying:        usd,
		Amount:        "100",
		Price:         Price{N: 3, D: 2},
		OfferID:       7,
	}
	body, err := op.toXDRBody()
	require.NoError(t, err)

	back, err := manageSellOfferFromXDR(source.Address(), body.ManageSellOffer)
	require.NoError(t, err)
	assert.Equal(t, op, back)
}

func Test_ManageDataRoundTrip(t *testing.T) {
	source, err := keypair.Random()
	require.NoError(t, err)

	op := ManageData{SourceAccount: source.Address(), Name: "memo-key", Value: []byte("memo-value")}
	body, err := op.toXDRBody()
	require.NoError(t, err)

	back, err := manageDataFromXDR(source.Address(), body.ManageData)
	require.NoError(t, err)
	assert.Equal(t, op, back)
}

func Test_ManageDataDeletesWithNilValue(t *testing.T) {
	source, err := keypair.Random()
	require.NoError(t, err)

	op := ManageData{SourceAccount: source.Address(), Name: "memo-key"}
	body, err := op.toXDRBody()
	require.NoError(t, err)
	assert.Nil(t, body.ManageData.DataValue)

	back, err := manageDataFromXDR(source.Address(), body.ManageData)
	require.NoError(t, err)
	assert.Nil(t, back.(ManageData).Value)
}

func Test_ManageDataRejectsOverlongName(t *testing.T) {
	source, err := keypair.Random()
	require.NoError(t, err)

	name := ""
	for i := 0; i < 65; i++ {
		name += "a"
	}
	op := ManageData{SourceAccount: source.Address(), Name: name}
	_, err = op.toXDRBody()
	assert.Error(t, err)
}

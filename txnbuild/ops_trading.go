package txnbuild

import (
	"github.com/Soneso/stellar-go-sdk/amount"
	"github.com/Soneso/stellar-go-sdk/asset"
	"github.com/Soneso/stellar-go-sdk/xdr"
)

// Price is a rational price n/d. Both n and d must be strictly positive.
type Price struct {
	N int32
	D int32
}

func (p Price) toXDR() (xdr.Price, error) {
	if p.N <= 0 || p.D <= 0 {
		return xdr.Price{}, &Error{Msg: "price numerator and denominator must both be positive"}
	}
	return xdr.Price{N: xdr.Int32(p.N), D: xdr.Int32(p.D)}, nil
}

func priceFromXDR(p xdr.Price) Price { return Price{N: int32(p.N), D: int32(p.D)} }

// ManageSellOffer creates, updates, or (Amount == "0") deletes an offer selling Selling for
// Buying. Updating an existing offer requires a non-zero OfferId.
type ManageSellOffer struct {
	SourceAccount string
	Selling       asset.Asset
	Buying        asset.Asset
	Amount        string
	Price         Price
	OfferID       int64
}

func (op ManageSellOffer) GetSourceAccount() string { return op.SourceAccount }

func (op ManageSellOffer) toXDRBody() (xdr.OperationBody, error) {
	selling, err := op.Selling.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	buying, err := op.Buying.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	amt, err := amount.Parse(op.Amount)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	price, err := op.Price.toXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type: xdr.OperationTypeManageSellOffer,
		ManageSellOffer: &xdr.ManageSellOfferOp{
			Selling: selling,
			Buying:  buying,
			Amount:  xdr.Int64(amt),
			Price:   price,
			OfferId: xdr.Int64(op.OfferID),
		},
	}, nil
}

func manageSellOfferFromXDR(src string, op *xdr.ManageSellOfferOp) (Operation, error) {
	selling, err := asset.FromXDR(op.Selling)
	if err != nil {
		return nil, err
	}
	buying, err := asset.FromXDR(op.Buying)
	if err != nil {
		return nil, err
	}
	return ManageSellOffer{
		SourceAccount: src,
		Selling:       selling,
		Buying:        buying,
		Amount:        amount.String(int64(op.Amount)),
		Price:         priceFromXDR(op.Price),
		OfferID:       int64(op.OfferId),
	}, nil
}

// ManageBuyOffer creates, updates, or (BuyAmount == "0") deletes an offer buying Buying with
// Selling. Updating an existing offer requires a non-zero OfferId.
type ManageBuyOffer struct {
	SourceAccount string
	Selling       asset.Asset
	Buying        asset.Asset
	BuyAmount     string
	Price         Price
	OfferID       int64
}

func (op ManageBuyOffer) GetSourceAccount() string { return op.SourceAccount }

func (op ManageBuyOffer) toXDRBody() (xdr.OperationBody, error) {
	selling, err := op.Selling.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	buying, err := op.Buying.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	amt, err := amount.Parse(op.BuyAmount)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	price, err := op.Price.toXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type: xdr.OperationTypeManageBuyOffer,
		ManageBuyOffer: &xdr.ManageBuyOfferOp{
			Selling:   selling,
			Buying:    buying,
			BuyAmount: xdr.Int64(amt),
			Price:     price,
			OfferId:   xdr.Int64(op.OfferID),
		},
	}, nil
}

func manageBuyOfferFromXDR(src string, op *xdr.ManageBuyOfferOp) (Operation, error) {
	selling, err := asset.FromXDR(op.Selling)
	if err != nil {
		return nil, err
	}
	buying, err := asset.FromXDR(op.Buying)
	if err != nil {
		return nil, err
	}
	return ManageBuyOffer{
		SourceAccount: src,
		Selling:       selling,
		Buying:        buying,
		BuyAmount:     amount.String(int64(op.BuyAmount)),
		Price:         priceFromXDR(op.Price),
		OfferID:       int64(op.OfferId),
	}, nil
}

// CreatePassiveSellOffer creates an offer that does not execute against other offers at the same
// price, avoiding self-trade with the account's own resting offers.
type CreatePassiveSellOffer struct {
	SourceAccount string
	Selling       asset.Asset
	Buying        asset.Asset
	Amount        string
	Price         Price
}

func (op CreatePassiveSellOffer) GetSourceAccount() string { return op.SourceAccount }

func (op CreatePassiveSellOffer) toXDRBody() (xdr.OperationBody, error) {
	selling, err := op.Selling.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	buying, err := op.Buying.ToXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	amt, err := amount.Parse(op.Amount)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	price, err := op.Price.toXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type: xdr.OperationTypeCreatePassiveSellOffer,
		CreatePassiveSellOffer: &xdr.CreatePassiveSellOfferOp{
			Selling: selling,
			Buying:  buying,
			Amount:  xdr.Int64(amt),
			Price:   price,
		},
	}, nil
}

func createPassiveSellOfferFromXDR(src string, op *xdr.CreatePassiveSellOfferOp) (Operation, error) {
	selling, err := asset.FromXDR(op.Selling)
	if err != nil {
		return nil, err
	}
	buying, err := asset.FromXDR(op.Buying)
	if err != nil {
		return nil, err
	}
	return CreatePassiveSellOffer{
		SourceAccount: src,
		Selling:       selling,
		Buying:        buying,
		Amount:        amount.String(int64(op.Amount)),
		Price:         priceFromXDR(op.Price),
	}, nil
}

// LiquidityPoolDeposit deposits into a constant-product pool, identified by PoolID supplied as
// either 64-char lowercase hex or an "L..." strkey; both forms are normalized to 32 bytes.
type LiquidityPoolDeposit struct {
	SourceAccount string
	PoolID        string
	MaxAmountA    string
	MaxAmountB    string
	MinPrice      Price
	MaxPrice      Price
}

func (op LiquidityPoolDeposit) GetSourceAccount() string { return op.SourceAccount }

func (op LiquidityPoolDeposit) toXDRBody() (xdr.OperationBody, error) {
	id, err := asset.ParsePoolID(op.PoolID)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	maxA, err := amount.Parse(op.MaxAmountA)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	maxB, err := amount.Parse(op.MaxAmountB)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	minPrice, err := op.MinPrice.toXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	maxPrice, err := op.MaxPrice.toXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type: xdr.OperationTypeLiquidityPoolDeposit,
		LiquidityPoolDeposit: &xdr.LiquidityPoolDepositOp{
			LiquidityPoolId: xdr.Hash(id),
			MaxAmountA:      xdr.Int64(maxA),
			MaxAmountB:      xdr.Int64(maxB),
			MinPrice:        minPrice,
			MaxPrice:        maxPrice,
		},
	}, nil
}

func liquidityPoolDepositFromXDR(src string, op *xdr.LiquidityPoolDepositOp) (Operation, error) {
	return LiquidityPoolDeposit{
		SourceAccount: src,
		PoolID:        hashToHex(op.LiquidityPoolId),
		MaxAmountA:    amount.String(int64(op.MaxAmountA)),
		MaxAmountB:    amount.String(int64(op.MaxAmountB)),
		MinPrice:      priceFromXDR(op.MinPrice),
		MaxPrice:      priceFromXDR(op.MaxPrice),
	}, nil
}

// LiquidityPoolWithdraw redeems pool shares for the pool's two underlying assets. PoolID accepts
// the same hex-or-strkey forms as LiquidityPoolDeposit.
type LiquidityPoolWithdraw struct {
	SourceAccount string
	PoolID        string
	Amount        string
	MinAmountA    string
	MinAmountB    string
}

func (op LiquidityPoolWithdraw) GetSourceAccount() string { return op.SourceAccount }

func (op LiquidityPoolWithdraw) toXDRBody() (xdr.OperationBody, error) {
	id, err := asset.ParsePoolID(op.PoolID)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	amt, err := amount.Parse(op.Amount)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	minA, err := amount.Parse(op.MinAmountA)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	minB, err := amount.Parse(op.MinAmountB)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type: xdr.OperationTypeLiquidityPoolWithdraw,
		LiquidityPoolWithdraw: &xdr.LiquidityPoolWithdrawOp{
			LiquidityPoolId: xdr.Hash(id),
			Amount:          xdr.Int64(amt),
			MinAmountA:      xdr.Int64(minA),
			MinAmountB:      xdr.Int64(minB),
		},
	}, nil
}

func liquidityPoolWithdrawFromXDR(src string, op *xdr.LiquidityPoolWithdrawOp) (Operation, error) {
	return LiquidityPoolWithdraw{
		SourceAccount: src,
		PoolID:        hashToHex(op.LiquidityPoolId),
		Amount:        amount.String(int64(op.Amount)),
		MinAmountA:    amount.String(int64(op.MinAmountA)),
		MinAmountB:    amount.String(int64(op.MinAmountB)),
	}, nil
}

package xdr

// ManageSellOfferOp creates, updates, or (Amount==0) deletes an offer selling Selling for Buying at
// Price; OfferId==0 creates a new offer.
type ManageSellOfferOp struct {
	Selling Asset
	Buying  Asset
	Amount  Int64
	Price   Price
	OfferId Int64
}

func (o ManageSellOfferOp) EncodeTo(e *Encoder) error {
	if err := o.Selling.EncodeTo(e); err != nil {
		return err
	}
	if err := o.Buying.EncodeTo(e); err != nil {
		return err
	}
	if err := o.Amount.EncodeTo(e); err != nil {
		return err
	}
	if err := o.Price.EncodeTo(e); err != nil {
		return err
	}
	return o.OfferId.EncodeTo(e)
}

func (o *ManageSellOfferOp) DecodeFrom(d *Decoder) error {
	if err := o.Selling.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.Buying.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.Amount.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.Price.DecodeFrom(d); err != nil {
		return err
	}
	return o.OfferId.DecodeFrom(d)
}

// ManageBuyOfferOp is ManageSellOfferOp's mirror: BuyAmount denominates in the Buying asset.
type ManageBuyOfferOp struct {
	Selling   Asset
	Buying    Asset
	BuyAmount Int64
	Price     Price
	OfferId   Int64
}

func (o ManageBuyOfferOp) EncodeTo(e *Encoder) error {
	if err := o.Selling.EncodeTo(e); err != nil {
		return err
	}
	if err := o.Buying.EncodeTo(e); err != nil {
		return err
	}
	if err := o.BuyAmount.EncodeTo(e); err != nil {
		return err
	}
	if err := o.Price.EncodeTo(e); err != nil {
		return err
	}
	return o.OfferId.EncodeTo(e)
}

func (o *ManageBuyOfferOp) DecodeFrom(d *Decoder) error {
	if err := o.Selling.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.Buying.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.BuyAmount.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.Price.DecodeFrom(d); err != nil {
		return err
	}
	return o.OfferId.DecodeFrom(d)
}

// CreatePassiveSellOfferOp creates an offer that never crosses another offer from the same account
// and is never itself crossed as a taker.
type CreatePassiveSellOfferOp struct {
	Selling Asset
	Buying  Asset
	Amount  Int64
	Price   Price
}

func (o CreatePassiveSellOfferOp) EncodeTo(e *Encoder) error {
	if err := o.Selling.EncodeTo(e); err != nil {
		return err
	}
	if err := o.Buying.EncodeTo(e); err != nil {
		return err
	}
	if err := o.Amount.EncodeTo(e); err != nil {
		return err
	}
	return o.Price.EncodeTo(e)
}

func (o *CreatePassiveSellOfferOp) DecodeFrom(d *Decoder) error {
	if err := o.Selling.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.Buying.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.Amount.DecodeFrom(d); err != nil {
		return err
	}
	return o.Price.DecodeFrom(d)
}

// LiquidityPoolDepositOp contributes up to MaxAmountA/MaxAmountB into a pool, bounded by a
// [MinPrice, MaxPrice] ratio to protect against slippage between quote and submission.
type LiquidityPoolDepositOp struct {
	LiquidityPoolId Hash
	MaxAmountA      Int64
	MaxAmountB      Int64
	MinPrice        Price
	MaxPrice        Price
}

func (o LiquidityPoolDepositOp) EncodeTo(e *Encoder) error {
	if err := o.LiquidityPoolId.EncodeTo(e); err != nil {
		return err
	}
	if err := o.MaxAmountA.EncodeTo(e); err != nil {
		return err
	}
	if err := o.MaxAmountB.EncodeTo(e); err != nil {
		return err
	}
	if err := o.MinPrice.EncodeTo(e); err != nil {
		return err
	}
	return o.MaxPrice.EncodeTo(e)
}

func (o *LiquidityPoolDepositOp) DecodeFrom(d *Decoder) error {
	if err := o.LiquidityPoolId.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.MaxAmountA.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.MaxAmountB.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.MinPrice.DecodeFrom(d); err != nil {
		return err
	}
	return o.MaxPrice.DecodeFrom(d)
}

// LiquidityPoolWithdrawOp redeems Amount pool shares for at least MinAmountA/MinAmountB of the
// pool's underlying reserves.
type LiquidityPoolWithdrawOp struct {
	LiquidityPoolId Hash
	Amount          Int64
	MinAmountA      Int64
	MinAmountB      Int64
}

func (o LiquidityPoolWithdrawOp) EncodeTo(e *Encoder) error {
	if err := o.LiquidityPoolId.EncodeTo(e); err != nil {
		return err
	}
	if err := o.Amount.EncodeTo(e); err != nil {
		return err
	}
	if err := o.MinAmountA.EncodeTo(e); err != nil {
		return err
	}
	return o.MinAmountB.EncodeTo(e)
}

func (o *LiquidityPoolWithdrawOp) DecodeFrom(d *Decoder) error {
	if err := o.LiquidityPoolId.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.Amount.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.MinAmountA.DecodeFrom(d); err != nil {
		return err
	}
	return o.MinAmountB.DecodeFrom(d)
}

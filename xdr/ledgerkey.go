package xdr

// LedgerEntryType discriminates LedgerKey (and LedgerEntry, not modeled here since the core never
// constructs full ledger entries, only the keys needed for Soroban footprints and sponsorship ops).
type LedgerEntryType int32

const (
	LedgerEntryTypeAccount          LedgerEntryType = 0
	LedgerEntryTypeTrustline        LedgerEntryType = 1
	LedgerEntryTypeOffer            LedgerEntryType = 2
	LedgerEntryTypeData             LedgerEntryType = 3
	LedgerEntryTypeClaimableBalance LedgerEntryType = 4
	LedgerEntryTypeLiquidityPool    LedgerEntryType = 5
	LedgerEntryTypeContractData     LedgerEntryType = 6
	LedgerEntryTypeContractCode     LedgerEntryType = 7
	LedgerEntryTypeTtl              LedgerEntryType = 9
)

// ContractDataDurability discriminates whether a contract data entry survives across the
// archival TTL horizon without an explicit restore.
type ContractDataDurability int32

const (
	ContractDataDurabilityTemporary  ContractDataDurability = 0
	ContractDataDurabilityPersistent ContractDataDurability = 1
)

// TrustLineAsset is like ChangeTrustAsset's discriminant set but the pool-share arm names an
// already-created pool by id rather than by its defining parameters.
type TrustLineAsset struct {
	Type          AssetType
	AlphaNum4     *AlphaNum4
	AlphaNum12    *AlphaNum12
	LiquidityPoolId *Hash
}

func (a TrustLineAsset) EncodeTo(e *Encoder) error {
	e.EncodeInt32(int32(a.Type))
	switch a.Type {
	case AssetTypeNative:
		return nil
	case AssetTypeCreditAlphanum4:
		return a.AlphaNum4.EncodeTo(e)
	case AssetTypeCreditAlphanum12:
		return a.AlphaNum12.EncodeTo(e)
	case AssetTypePoolShare:
		return a.LiquidityPoolId.EncodeTo(e)
	default:
		return errInvalidDiscriminant("TrustLineAsset", int64(a.Type))
	}
}

func (a *TrustLineAsset) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("TrustLineAsset.Type")
	if err != nil {
		return err
	}
	a.Type = AssetType(t)
	switch a.Type {
	case AssetTypeNative:
		return nil
	case AssetTypeCreditAlphanum4:
		var v AlphaNum4
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		a.AlphaNum4 = &v
	case AssetTypeCreditAlphanum12:
		var v AlphaNum12
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		a.AlphaNum12 = &v
	case AssetTypePoolShare:
		var h Hash
		if err := h.DecodeFrom(d); err != nil {
			return err
		}
		a.LiquidityPoolId = &h
	default:
		return errInvalidDiscriminant("TrustLineAsset", int64(t))
	}
	return nil
}

// ClaimableBalanceIdType discriminates ClaimableBalanceId; hash is the only kind the network defines.
type ClaimableBalanceIdType int32

const ClaimableBalanceIdTypeV0 ClaimableBalanceIdType = 0

type ClaimableBalanceId struct {
	Type ClaimableBalanceIdType
	V0   *Hash
}

func (c ClaimableBalanceId) EncodeTo(e *Encoder) error {
	e.EncodeInt32(int32(c.Type))
	return c.V0.EncodeTo(e)
}
func (c *ClaimableBalanceId) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("ClaimableBalanceId.Type")
	if err != nil {
		return err
	}
	c.Type = ClaimableBalanceIdType(t)
	var h Hash
	if err := h.DecodeFrom(d); err != nil {
		return err
	}
	c.V0 = &h
	return nil
}

type LedgerKeyAccount struct{ AccountId AccountId }
type LedgerKeyTrustLine struct {
	AccountId AccountId
	Asset     TrustLineAsset
}
type LedgerKeyOffer struct {
	SellerId AccountId
	OfferId  Int64
}
type LedgerKeyData struct {
	AccountId AccountId
	DataName  String64
}
type LedgerKeyClaimableBalance struct{ BalanceId ClaimableBalanceId }
type LedgerKeyLiquidityPool struct{ LiquidityPoolId Hash }
type LedgerKeyContractData struct {
	Contract   ScAddress
	Key        ScVal
	Durability ContractDataDurability
}
type LedgerKeyContractCode struct{ Hash Hash }
type LedgerKeyTtl struct{ KeyHash Hash }

// LedgerKey is the union identifying any ledger entry, used both classically (sponsorship,
// offers) and for Soroban footprints (contract data/code/TTL).
type LedgerKey struct {
	Type              LedgerEntryType
	Account           *LedgerKeyAccount
	TrustLine         *LedgerKeyTrustLine
	Offer             *LedgerKeyOffer
	Data              *LedgerKeyData
	ClaimableBalance  *LedgerKeyClaimableBalance
	LiquidityPool     *LedgerKeyLiquidityPool
	ContractData      *LedgerKeyContractData
	ContractCode      *LedgerKeyContractCode
	Ttl               *LedgerKeyTtl
}

func (k LedgerKey) EncodeTo(e *Encoder) error {
	e.EncodeInt32(int32(k.Type))
	switch k.Type {
	case LedgerEntryTypeAccount:
		return k.Account.AccountId.EncodeTo(e)
	case LedgerEntryTypeTrustline:
		if err := k.TrustLine.AccountId.EncodeTo(e); err != nil {
			return err
		}
		return k.TrustLine.Asset.EncodeTo(e)
	case LedgerEntryTypeOffer:
		if err := k.Offer.SellerId.EncodeTo(e); err != nil {
			return err
		}
		return k.Offer.OfferId.EncodeTo(e)
	case LedgerEntryTypeData:
		if err := k.Data.AccountId.EncodeTo(e); err != nil {
			return err
		}
		return k.Data.DataName.EncodeTo(e)
	case LedgerEntryTypeClaimableBalance:
		return k.ClaimableBalance.BalanceId.EncodeTo(e)
	case LedgerEntryTypeLiquidityPool:
		return k.LiquidityPool.LiquidityPoolId.EncodeTo(e)
	case LedgerEntryTypeContractData:
		if err := k.ContractData.Contract.EncodeTo(e); err != nil {
			return err
		}
		if err := k.ContractData.Key.EncodeTo(e); err != nil {
			return err
		}
		e.EncodeInt32(int32(k.ContractData.Durability))
		return nil
	case LedgerEntryTypeContractCode:
		return k.ContractCode.Hash.EncodeTo(e)
	case LedgerEntryTypeTtl:
		return k.Ttl.KeyHash.EncodeTo(e)
	default:
		return errInvalidDiscriminant("LedgerKey", int64(k.Type))
	}
}

func (k *LedgerKey) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("LedgerKey.Type")
	if err != nil {
		return err
	}
	k.Type = LedgerEntryType(t)
	switch k.Type {
	case LedgerEntryTypeAccount:
		var a LedgerKeyAccount
		if err := a.AccountId.DecodeFrom(d); err != nil {
			return err
		}
		k.Account = &a
	case LedgerEntryTypeTrustline:
		var tl LedgerKeyTrustLine
		if err := tl.AccountId.DecodeFrom(d); err != nil {
			return err
		}
		if err := tl.Asset.DecodeFrom(d); err != nil {
			return err
		}
		k.TrustLine = &tl
	case LedgerEntryTypeOffer:
		var o LedgerKeyOffer
		if err := o.SellerId.DecodeFrom(d); err != nil {
			return err
		}
		if err := o.OfferId.DecodeFrom(d); err != nil {
			return err
		}
		k.Offer = &o
	case LedgerEntryTypeData:
		var dt LedgerKeyData
		if err := dt.AccountId.DecodeFrom(d); err != nil {
			return err
		}
		if err := dt.DataName.DecodeFrom(d); err != nil {
			return err
		}
		k.Data = &dt
	case LedgerEntryTypeClaimableBalance:
		var cb LedgerKeyClaimableBalance
		if err := cb.BalanceId.DecodeFrom(d); err != nil {
			return err
		}
		k.ClaimableBalance = &cb
	case LedgerEntryTypeLiquidityPool:
		var lp LedgerKeyLiquidityPool
		if err := lp.LiquidityPoolId.DecodeFrom(d); err != nil {
			return err
		}
		k.LiquidityPool = &lp
	case LedgerEntryTypeContractData:
		var cd LedgerKeyContractData
		if err := cd.Contract.DecodeFrom(d); err != nil {
			return err
		}
		if err := cd.Key.DecodeFrom(d); err != nil {
			return err
		}
		dur, err := d.DecodeInt32("LedgerKeyContractData.Durability")
		if err != nil {
			return err
		}
		cd.Durability = ContractDataDurability(dur)
		k.ContractData = &cd
	case LedgerEntryTypeContractCode:
		var cc LedgerKeyContractCode
		if err := cc.Hash.DecodeFrom(d); err != nil {
			return err
		}
		k.ContractCode = &cc
	case LedgerEntryTypeTtl:
		var ttl LedgerKeyTtl
		if err := ttl.KeyHash.DecodeFrom(d); err != nil {
			return err
		}
		k.Ttl = &ttl
	default:
		return errInvalidDiscriminant("LedgerKey", int64(t))
	}
	return nil
}

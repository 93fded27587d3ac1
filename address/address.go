// Package address implements the polymorphic Address sum type: account, muxed account,
// contract, liquidity pool, and claimable balance, each rendering through strkey. Grounded on the
// teacher's contract_address.go (CalculateContractAddress), which shows the same
// strkey.Encode(hash-derived-bytes) idiom this package generalizes to every address kind.
package address

import (
	"encoding/binary"
	"fmt"

	"github.com/Soneso/stellar-go-sdk/strkey"
	"github.com/Soneso/stellar-go-sdk/xdr"
)

// Kind discriminates the Address sum type.
type Kind int

const (
	KindAccount Kind = iota
	KindMuxed
	KindContract
	KindLiquidityPool
	KindClaimableBalance
)

// Error is the sentinel error kind for this package, part of the InputInvalid taxonomy row.
type Error struct{ Msg string }

func (e *Error) Error() string { return fmt.Sprintf("address: %s", e.Msg) }

// Address is a sum type over every strkey-rendered identity the protocol defines.
type Address struct {
	Kind         Kind
	Key          [32]byte // account/muxed/contract/liquidity-pool body
	MuxedID      uint64   // only meaningful when Kind == KindMuxed
	BalanceIdType byte    // only meaningful when Kind == KindClaimableBalance
}

// Parse decodes s, auto-detecting its kind from the strkey version byte.
func Parse(s string) (Address, error) {
	version, body, err := strkey.Decode(s)
	if err != nil {
		return Address{}, fmt.Errorf("address: parse: %w", err)
	}
	switch version {
	case strkey.VersionByteAccountID:
		var a Address
		a.Kind = KindAccount
		copy(a.Key[:], body)
		return a, nil
	case strkey.VersionByteMuxedAccount:
		var a Address
		a.Kind = KindMuxed
		copy(a.Key[:], body[:32])
		a.MuxedID = binary.BigEndian.Uint64(body[32:40])
		return a, nil
	case strkey.VersionByteContract:
		var a Address
		a.Kind = KindContract
		copy(a.Key[:], body)
		return a, nil
	case strkey.VersionByteLiquidityPool:
		var a Address
		a.Kind = KindLiquidityPool
		copy(a.Key[:], body)
		return a, nil
	case strkey.VersionByteClaimableBalance:
		var a Address
		a.Kind = KindClaimableBalance
		a.BalanceIdType = body[0]
		copy(a.Key[:], body[1:])
		return a, nil
	default:
		return Address{}, &Error{Msg: fmt.Sprintf("unsupported address version byte %d", version)}
	}
}

// String renders a back into its strkey form.
func (a Address) String() string {
	var s string
	var err error
	switch a.Kind {
	case KindAccount:
		s, err = strkey.Encode(strkey.VersionByteAccountID, a.Key[:])
	case KindMuxed:
		body := make([]byte, 40)
		copy(body, a.Key[:])
		binary.BigEndian.PutUint64(body[32:], a.MuxedID)
		s, err = strkey.Encode(strkey.VersionByteMuxedAccount, body)
	case KindContract:
		s, err = strkey.Encode(strkey.VersionByteContract, a.Key[:])
	case KindLiquidityPool:
		s, err = strkey.Encode(strkey.VersionByteLiquidityPool, a.Key[:])
	case KindClaimableBalance:
		body := make([]byte, 33)
		body[0] = a.BalanceIdType
		copy(body[1:], a.Key[:])
		s, err = strkey.Encode(strkey.VersionByteClaimableBalance, body)
	}
	if err != nil {
		panic(err)
	}
	return s
}

// ToScAddress converts an account or contract Address into the xdr.ScAddress union used
// throughout the Soroban surface.
func (a Address) ToScAddress() (xdr.ScAddress, error) {
	switch a.Kind {
	case KindAccount:
		key := a.Key
		u := xdr.Uint256(key)
		acc := xdr.AccountId{Type: xdr.PublicKeyTypeEd25519, Ed25519: &u}
		return xdr.ScAddress{Type: xdr.ScAddressTypeScAddressTypeAccount, AccountId: &acc}, nil
	case KindContract:
		h := xdr.Hash(a.Key)
		return xdr.ScAddress{Type: xdr.ScAddressTypeScAddressTypeContract, ContractId: &h}, nil
	default:
		return xdr.ScAddress{}, &Error{Msg: "only account and contract addresses convert to ScAddress"}
	}
}

// FromScAddress is ToScAddress's inverse.
func FromScAddress(sc xdr.ScAddress) (Address, error) {
	switch sc.Type {
	case xdr.ScAddressTypeScAddressTypeAccount:
		if sc.AccountId == nil || sc.AccountId.Ed25519 == nil {
			return Address{}, &Error{Msg: "ScAddress account missing Ed25519 key"}
		}
		return Address{Kind: KindAccount, Key: [32]byte(*sc.AccountId.Ed25519)}, nil
	case xdr.ScAddressTypeScAddressTypeContract:
		if sc.ContractId == nil {
			return Address{}, &Error{Msg: "ScAddress contract missing id"}
		}
		return Address{Kind: KindContract, Key: [32]byte(*sc.ContractId)}, nil
	default:
		return Address{}, &Error{Msg: "unsupported ScAddress type"}
	}
}

// ToAccountId converts an account-kind Address into xdr.AccountId.
func (a Address) ToAccountId() (xdr.AccountId, error) {
	if a.Kind != KindAccount {
		return xdr.AccountId{}, &Error{Msg: "not an account address"}
	}
	key := a.Key
	u := xdr.Uint256(key)
	return xdr.AccountId{Type: xdr.PublicKeyTypeEd25519, Ed25519: &u}, nil
}

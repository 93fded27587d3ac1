package txnbuild

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/Soneso/stellar-go-sdk/strkey"
	"github.com/Soneso/stellar-go-sdk/xdr"
)

func hashToHex(h xdr.Hash) string { return hex.EncodeToString(h[:]) }

// Error is the sentinel error kind for this package, part of the InputInvalid taxonomy row.
type Error struct{ Msg string }

func (e *Error) Error() string { return fmt.Sprintf("txnbuild: %s", e.Msg) }

func accountIDFromAddress(address string) (xdr.AccountId, error) {
	body, err := strkey.DecodeVersion(address, strkey.VersionByteAccountID)
	if err != nil {
		return xdr.AccountId{}, fmt.Errorf("txnbuild: %q is not a valid account address: %w", address, err)
	}
	var u xdr.Uint256
	copy(u[:], body)
	return xdr.AccountId{Type: xdr.PublicKeyTypeEd25519, Ed25519: &u}, nil
}

func addressFromAccountID(id xdr.AccountId) (string, error) {
	if id.Ed25519 == nil {
		return "", &Error{Msg: "AccountId missing Ed25519 key"}
	}
	return strkey.Encode(strkey.VersionByteAccountID, id.Ed25519[:])
}

// muxedAccountFromAddress accepts either a "G..." account address or an "M..." muxed address.
func muxedAccountFromAddress(address string) (xdr.MuxedAccount, error) {
	if len(address) > 0 && address[0] == 'M' {
		body, err := strkey.DecodeVersion(address, strkey.VersionByteMuxedAccount)
		if err != nil {
			return xdr.MuxedAccount{}, fmt.Errorf("txnbuild: %q is not a valid muxed address: %w", address, err)
		}
		var ed xdr.Uint256
		copy(ed[:], body[:32])
		id := binary.BigEndian.Uint64(body[32:40])
		med := xdr.MuxedAccountMed25519{Id: xdr.Uint64(id), Ed25519: ed}
		return xdr.MuxedAccount{Type: xdr.CryptoKeyTypeMuxedEd25519, Med25519: &med}, nil
	}
	id, err := accountIDFromAddress(address)
	if err != nil {
		return xdr.MuxedAccount{}, err
	}
	return xdr.MuxedAccount{Type: xdr.CryptoKeyTypeEd25519, Ed25519: id.Ed25519}, nil
}

func addressFromMuxedAccount(m xdr.MuxedAccount) (string, error) {
	switch m.Type {
	case xdr.CryptoKeyTypeEd25519:
		if m.Ed25519 == nil {
			return "", &Error{Msg: "MuxedAccount missing Ed25519 key"}
		}
		return strkey.Encode(strkey.VersionByteAccountID, m.Ed25519[:])
	case xdr.CryptoKeyTypeMuxedEd25519:
		if m.Med25519 == nil {
			return "", &Error{Msg: "MuxedAccount missing Med25519 payload"}
		}
		body := make([]byte, 40)
		copy(body, m.Med25519.Ed25519[:])
		binary.BigEndian.PutUint64(body[32:], uint64(m.Med25519.Id))
		return strkey.Encode(strkey.VersionByteMuxedAccount, body)
	default:
		return "", &Error{Msg: "unsupported MuxedAccount discriminant"}
	}
}

func signerKeyFromStrkey(s string) (xdr.SignerKey, error) {
	if len(s) == 0 {
		return xdr.SignerKey{}, &Error{Msg: "empty signer key"}
	}
	switch s[0] {
	case 'G':
		body, err := strkey.DecodeVersion(s, strkey.VersionByteAccountID)
		if err != nil {
			return xdr.SignerKey{}, err
		}
		var u xdr.Uint256
		copy(u[:], body)
		return xdr.SignerKey{Type: xdr.CryptoKeyTypeEd25519, Ed25519: &u}, nil
	case 'T':
		body, err := strkey.DecodeVersion(s, strkey.VersionByteStellarPreAuthTx)
		if err != nil {
			return xdr.SignerKey{}, err
		}
		var h xdr.Uint256
		copy(h[:], body)
		return xdr.SignerKey{Type: xdr.CryptoKeyTypePreAuthTx, PreAuthTx: &h}, nil
	case 'X':
		body, err := strkey.DecodeVersion(s, strkey.VersionByteStellarHashX)
		if err != nil {
			return xdr.SignerKey{}, err
		}
		var h xdr.Uint256
		copy(h[:], body)
		return xdr.SignerKey{Type: xdr.CryptoKeyTypeHashX, HashX: &h}, nil
	default:
		return xdr.SignerKey{}, &Error{Msg: fmt.Sprintf("unsupported signer key prefix %q", s[:1])}
	}
}

func signerKeyToStrkey(k xdr.SignerKey) (string, error) {
	switch k.Type {
	case xdr.CryptoKeyTypeEd25519:
		return strkey.Encode(strkey.VersionByteAccountID, k.Ed25519[:])
	case xdr.CryptoKeyTypePreAuthTx:
		return strkey.Encode(strkey.VersionByteStellarPreAuthTx, k.PreAuthTx[:])
	case xdr.CryptoKeyTypeHashX:
		return strkey.Encode(strkey.VersionByteStellarHashX, k.HashX[:])
	default:
		return "", &Error{Msg: "unsupported SignerKey discriminant"}
	}
}

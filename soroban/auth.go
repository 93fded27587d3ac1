// Package soroban implements the client-side pieces of contract invocation that don't belong in
// the wire-format (xdr) or transport (sorobanrpc) layers: authorization entry signing and
// contract/footprint id derivation. Grounded on the teacher's BuildAuthorizationPayload /
// SignAuthEntry (internal/transactionsubmission/services/sorobanrpc and internal/utils), which
// build a preimage struct, hash it, sign the hash, and write the signature back into the entry
// the same way this package does.
package soroban

import (
	"crypto/sha256"

	"github.com/Soneso/stellar-go-sdk/keypair"
	"github.com/Soneso/stellar-go-sdk/network"
	"github.com/Soneso/stellar-go-sdk/xdr"
)

// Error is the sentinel error kind for this package, part of the InputInvalid/CryptoFailure
// taxonomy rows.
type Error struct{ Msg string }

func (e *Error) Error() string { return "soroban: " + e.Msg }

// SignAuthEntry returns a signed copy of entry per the protocol's authorization scheme: it hashes
// HashIdPreimageSorobanAuthorization{networkID, entry.nonce, validUntilLedgerSeq, entry.invocation}
// and sets signatureExpirationLedger and the canonical signature ScVal on the copy; the caller's
// entry is not modified. If entry's
// credentials are not address credentials, or the address does not match signer, entry is
// returned unchanged — the caller is expected to route entries to their correct signer, and
// source-implicit or already-signed entries take no action here.
func SignAuthEntry(entry xdr.SorobanAuthorizationEntry, signer *keypair.KeyPair, validUntilLedgerSeq uint32, networkPassphrase string) (xdr.SorobanAuthorizationEntry, error) {
	if entry.Credentials.Type != xdr.SorobanCredentialsTypeAddress || entry.Credentials.Address == nil {
		return entry, nil
	}
	creds := *entry.Credentials.Address

	signerAddress, err := addressFromScAddress(creds.Address)
	if err != nil {
		return entry, nil
	}
	if signerAddress != signer.Address() {
		return entry, nil
	}

	creds.SignatureExpirationLedger = xdr.Uint32(validUntilLedgerSeq)

	preimage := xdr.HashIdPreimage{
		Type: xdr.EnvelopeTypeSorobanAuthorization,
		SorobanAuthorization: &xdr.HashIdPreimageSorobanAuthorization{
			NetworkId:                 xdr.Hash(network.ID(networkPassphrase)),
			Nonce:                     creds.Nonce,
			SignatureExpirationLedger: creds.SignatureExpirationLedger,
			Invocation:                entry.RootInvocation,
		},
	}
	payload, err := xdr.Marshal(preimage)
	if err != nil {
		return xdr.SorobanAuthorizationEntry{}, err
	}
	digest := sha256.Sum256(payload)

	sig, err := signer.Sign(digest[:])
	if err != nil {
		return xdr.SorobanAuthorizationEntry{}, err
	}

	creds.Signature = xdr.ScVecVal([]xdr.ScVal{
		xdr.ScMapVal([]xdr.ScMapEntry{
			{Key: xdr.ScSymbolVal("public_key"), Val: xdr.ScBytesVal(signer.PublicKey())},
			{Key: xdr.ScSymbolVal("signature"), Val: xdr.ScBytesVal(sig)},
		}),
	})

	entry.Credentials = xdr.SorobanCredentials{
		Type:    xdr.SorobanCredentialsTypeAddress,
		Address: &creds,
	}
	return entry, nil
}

func addressFromScAddress(a xdr.ScAddress) (string, error) {
	switch a.Type {
	case xdr.ScAddressTypeScAddressTypeAccount:
		if a.AccountId == nil || a.AccountId.Ed25519 == nil {
			return "", &Error{Msg: "ScAddress account missing Ed25519 key"}
		}
		kp, err := keypair.FromPublicKey(a.AccountId.Ed25519[:])
		if err != nil {
			return "", err
		}
		return kp.Address(), nil
	default:
		return "", &Error{Msg: "only account addresses can be matched to a signing keypair"}
	}
}

// NeedsNonInvokerSigningBy walks entries and returns the set of account addresses whose address
// credentials still carry an empty signature, i.e. the addresses the caller must supply signers
// for before submission. An entry whose source account implicitly authorizes it (credentials type
// SourceAccount) is never included.
func NeedsNonInvokerSigningBy(entries []xdr.SorobanAuthorizationEntry) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, e := range entries {
		if e.Credentials.Type != xdr.SorobanCredentialsTypeAddress || e.Credentials.Address == nil {
			continue
		}
		if e.Credentials.Address.Signature.Type != xdr.ScValTypeScvVoid {
			continue
		}
		addr, err := addressFromScAddress(e.Credentials.Address.Address)
		if err != nil {
			return nil, err
		}
		if !seen[addr] {
			seen[addr] = true
			out = append(out, addr)
		}
	}
	return out, nil
}

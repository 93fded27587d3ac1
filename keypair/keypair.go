// Package keypair wraps Ed25519 key material in the two states the protocol cares about: a
// public-only KeyPair (parsed from a "G..." address) that can verify and report its address, and
// a full KeyPair (parsed from a "S..." seed, raw bytes, or freshly generated) that can also sign.
// Grounded on the teacher's SignURL/VerifySignedURL usage in internal/utils/url.go, which shows
// the same sign/verify-via-keypair idiom this package generalizes.
package keypair

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/Soneso/stellar-go-sdk/strkey"
)

// Error is the sentinel error kind for this package, matching the taxonomy row `CryptoError`.
type Error struct {
	Kind string
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("keypair: %s: %s", e.Kind, e.Msg) }

func errBadSeedLength(msg string) error   { return &Error{Kind: "BadSeedLength", Msg: msg} }
func errSignatureInvalid(msg string) error { return &Error{Kind: "SignatureInvalid", Msg: msg} }

// KeyPair holds an Ed25519 public key and, when full, its 32-byte seed.
type KeyPair struct {
	public ed25519.PublicKey
	seed   []byte // nil for a public-only KeyPair
}

// Random generates a new full KeyPair from a cryptographically secure random seed.
func Random() (*KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("keypair: generate: %w", err)
	}
	return &KeyPair{public: pub, seed: priv.Seed()}, nil
}

// FromRawSeed builds a full KeyPair from a 32-byte seed.
func FromRawSeed(seed []byte) (*KeyPair, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, errBadSeedLength(fmt.Sprintf("want %d bytes, got %d", ed25519.SeedSize, len(seed)))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)
	s := make([]byte, len(seed))
	copy(s, seed)
	return &KeyPair{public: pub, seed: s}, nil
}

// Parse builds a KeyPair from either a "S..." secret seed (full) or a "G..." address (public-only).
func Parse(s string) (*KeyPair, error) {
	if len(s) == 0 {
		return nil, errBadSeedLength("empty string")
	}
	switch s[0] {
	case 'S':
		body, err := strkey.DecodeVersion(s, strkey.VersionByteSeed)
		if err != nil {
			return nil, fmt.Errorf("keypair: parse seed: %w", err)
		}
		return FromRawSeed(body)
	case 'G':
		return ParseAddress(s)
	default:
		return nil, errBadSeedLength("unrecognized strkey prefix")
	}
}

// ParseAddress builds a public-only KeyPair from a "G..." address.
func ParseAddress(address string) (*KeyPair, error) {
	body, err := strkey.DecodeVersion(address, strkey.VersionByteAccountID)
	if err != nil {
		return nil, fmt.Errorf("keypair: parse address: %w", err)
	}
	return FromPublicKey(body)
}

// FromPublicKey builds a public-only KeyPair from a raw 32-byte Ed25519 public key.
func FromPublicKey(pub []byte) (*KeyPair, error) {
	if len(pub) != ed25519.PublicKeySize {
		return nil, errBadSeedLength(fmt.Sprintf("want %d bytes, got %d", ed25519.PublicKeySize, len(pub)))
	}
	p := make([]byte, len(pub))
	copy(p, pub)
	return &KeyPair{public: p}, nil
}

// IsFull reports whether kp can sign (was built from a seed, not just a public key).
func (kp *KeyPair) IsFull() bool { return kp.seed != nil }

// Address returns the "G..." strkey rendering of the public key.
func (kp *KeyPair) Address() string {
	s, err := strkey.Encode(strkey.VersionByteAccountID, kp.public)
	if err != nil {
		// public is always exactly 32 bytes by construction; this cannot fail.
		panic(err)
	}
	return s
}

// Seed returns the "S..." strkey rendering of the seed. Fails if kp is public-only.
func (kp *KeyPair) Seed() (string, error) {
	if !kp.IsFull() {
		return "", errBadSeedLength("public-only keypair has no seed")
	}
	return strkey.Encode(strkey.VersionByteSeed, kp.seed)
}

// PublicKey returns the raw 32-byte Ed25519 public key.
func (kp *KeyPair) PublicKey() []byte {
	out := make([]byte, len(kp.public))
	copy(out, kp.public)
	return out
}

// Hint returns the last 4 bytes of the public key, used to match signatures to candidate signers.
func (kp *KeyPair) Hint() [4]byte {
	var h [4]byte
	copy(h[:], kp.public[len(kp.public)-4:])
	return h
}

// Sign returns the detached Ed25519 signature of data. Fails if kp is public-only.
func (kp *KeyPair) Sign(data []byte) ([]byte, error) {
	if !kp.IsFull() {
		return nil, errBadSeedLength("public-only keypair cannot sign")
	}
	priv := ed25519.NewKeyFromSeed(kp.seed)
	return ed25519.Sign(priv, data), nil
}

// Verify checks sig against data using kp's public key.
func (kp *KeyPair) Verify(data, sig []byte) error {
	if !ed25519.Verify(kp.public, data, sig) {
		return errSignatureInvalid("signature does not verify")
	}
	return nil
}

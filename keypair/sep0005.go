package keypair

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// seedFromMnemonic derives the 64-byte BIP-39 seed from an NFKD-normalized mnemonic and
// passphrase, per spec §4.3: PBKDF2-HMAC-SHA512(mnemonic, "mnemonic"+passphrase, 2048, 64).
func seedFromMnemonic(mnemonic, passphrase string) []byte {
	normalizedMnemonic := norm.NFKD.String(mnemonic)
	salt := norm.NFKD.String("mnemonic" + passphrase)
	return pbkdf2.Key([]byte(normalizedMnemonic), []byte(salt), 2048, 64, sha512.New)
}

const slip10Ed25519Curve = "ed25519 seed"

type slip10Node struct {
	key       [32]byte
	chainCode [32]byte
}

func slip10Master(seed []byte) slip10Node {
	mac := hmac.New(sha512.New, []byte(slip10Ed25519Curve))
	mac.Write(seed)
	sum := mac.Sum(nil)
	var n slip10Node
	copy(n.key[:], sum[:32])
	copy(n.chainCode[:], sum[32:])
	return n
}

// deriveHardened applies one hardened SLIP-0010 Ed25519 derivation step, the only kind the curve
// supports (Ed25519 has no public-key-only derivation).
func (n slip10Node) deriveHardened(index uint32) slip10Node {
	data := make([]byte, 0, 1+32+4)
	data = append(data, 0x00)
	data = append(data, n.key[:]...)
	var idxBuf [4]byte
	binary.BigEndian.PutUint32(idxBuf[:], index|0x80000000)
	data = append(data, idxBuf[:]...)

	mac := hmac.New(sha512.New, n.chainCode[:])
	mac.Write(data)
	sum := mac.Sum(nil)
	var out slip10Node
	copy(out.key[:], sum[:32])
	copy(out.chainCode[:], sum[32:])
	return out
}

// DeriveSEP0005 derives the full KeyPair at account index `account` of a SEP-0005 mnemonic,
// following path m/44'/148'/account'. All three path components are hardened, as required by
// Ed25519 SLIP-0010 derivation.
func DeriveSEP0005(mnemonic, passphrase string, account uint32) (*KeyPair, error) {
	seed := seedFromMnemonic(mnemonic, passphrase)
	node := slip10Master(seed)
	node = node.deriveHardened(44)
	node = node.deriveHardened(148)
	node = node.deriveHardened(account)
	kp, err := FromRawSeed(node.key[:])
	if err != nil {
		return nil, fmt.Errorf("keypair: derive sep-0005: %w", err)
	}
	return kp, nil
}

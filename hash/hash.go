// Package hash provides the single SHA-256 primitive the rest of the module builds on: deriving
// network ids from passphrases, transaction signature bases, and contract ids all reduce to it.
package hash

import "crypto/sha256"

// Hash256 returns the SHA-256 digest of data.
func Hash256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// Package network holds the well-known network passphrases and derives the network id every
// signed payload is scoped to, following the teacher's NetworkType enum in
// internal/utils/network_type.go.
package network

import "github.com/Soneso/stellar-go-sdk/hash"

const (
	// PublicNetworkPassphrase is the production Stellar network's passphrase.
	PublicNetworkPassphrase = "Public Global Stellar Network ; September 2015"
	// TestNetworkPassphrase is the long-lived public test network's passphrase.
	TestNetworkPassphrase = "Test SDF Network ; September 2015"
	// FutureNetworkPassphrase is the short-lived "futurenet" network used to preview upcoming
	// protocol versions.
	FutureNetworkPassphrase = "Test SDF Future Network ; October 2022"
)

// ID returns the 32-byte network id: SHA-256 of the passphrase. Every transaction signature base
// and Soroban authorization preimage is scoped by this value so a signature collected on one
// network can never be replayed on another.
func ID(passphrase string) [32]byte {
	return hash.Hash256([]byte(passphrase))
}

// IsTestNetwork reports whether passphrase names a non-production network (test or futurenet),
// mirroring the teacher's IsTestNetwork helper.
func IsTestNetwork(passphrase string) bool {
	return passphrase == TestNetworkPassphrase || passphrase == FutureNetworkPassphrase
}

package soroban

import (
	"bytes"

	"github.com/Soneso/stellar-go-sdk/xdr"
)

// ledgerKeyBytes gives a ledger key a total order so footprints can be deduplicated without a
// bespoke equality rule per key kind, the same canonical-bytes idiom xdr.ScMap's key sort uses.
func ledgerKeyBytes(k xdr.LedgerKey) []byte {
	b, err := xdr.Marshal(k)
	if err != nil {
		return nil
	}
	return b
}

func dedupeLedgerKeys(keys []xdr.LedgerKey) []xdr.LedgerKey {
	seen := make(map[string]bool, len(keys))
	out := make([]xdr.LedgerKey, 0, len(keys))
	for _, k := range keys {
		b := string(ledgerKeyBytes(k))
		if seen[b] {
			continue
		}
		seen[b] = true
		out = append(out, k)
	}
	return out
}

// MergeFootprints unions a and b, deduplicating read-only and read-write entries independently.
// A simulated transaction's footprint is merged this way with any footprint the caller already
// expects to touch (e.g. when chaining a restore before the real invocation).
func MergeFootprints(a, b xdr.LedgerFootprint) xdr.LedgerFootprint {
	return xdr.LedgerFootprint{
		ReadOnly:  dedupeLedgerKeys(append(append([]xdr.LedgerKey{}, a.ReadOnly...), b.ReadOnly...)),
		ReadWrite: dedupeLedgerKeys(append(append([]xdr.LedgerKey{}, a.ReadWrite...), b.ReadWrite...)),
	}
}

// RestoreFootprintFor builds the footprint a RestoreFootprint operation needs: the network
// requires every key being restored to appear in the transaction's read-write set, regardless of
// which set (read-only or read-write) it occupied in the operation that discovered it was
// archived.
func RestoreFootprintFor(archivedKeys []xdr.LedgerKey) xdr.LedgerFootprint {
	return xdr.LedgerFootprint{ReadWrite: dedupeLedgerKeys(archivedKeys)}
}

// KeyEquals reports whether two ledger keys name the same entry.
func KeyEquals(a, b xdr.LedgerKey) bool {
	return bytes.Equal(ledgerKeyBytes(a), ledgerKeyBytes(b))
}

package soroban

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soneso/stellar-go-sdk/xdr"
)

func contractCodeKey(b byte) xdr.LedgerKey {
	return xdr.LedgerKey{Type: xdr.LedgerEntryTypeContractCode, ContractCode: &xdr.LedgerKeyContractCode{Hash: xdr.Hash{b}}}
}

func Test_MergeFootprintsDeduplicates(t *testing.T) {
	k1, k2 := contractCodeKey(1), contractCodeKey(2)
	a := xdr.LedgerFootprint{ReadOnly: []xdr.LedgerKey{k1}, ReadWrite: []xdr.LedgerKey{k2}}
	b := xdr.LedgerFootprint{ReadOnly: []xdr.LedgerKey{k1}, ReadWrite: []xdr.LedgerKey{k2}}

	merged := MergeFootprints(a, b)
	assert.Len(t, merged.ReadOnly, 1)
	assert.Len(t, merged.ReadWrite, 1)
}

func Test_RestoreFootprintForMovesEverythingIntoReadWrite(t *testing.T) {
	k1, k2 := contractCodeKey(1), contractCodeKey(2)
	fp := RestoreFootprintFor([]xdr.LedgerKey{k1, k2, k1})
	require.Len(t, fp.ReadWrite, 2)
	assert.Empty(t, fp.ReadOnly)
}

func Test_KeyEquals(t *testing.T) {
	k1, k1b, k2 := contractCodeKey(1), contractCodeKey(1), contractCodeKey(2)
	assert.True(t, KeyEquals(k1, k1b))
	assert.False(t, KeyEquals(k1, k2))
}

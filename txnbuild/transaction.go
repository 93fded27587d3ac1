// Package txnbuild assembles and signs transactions: a builder that accumulates operations,
// preconditions, memo, and fee, and a Transaction that can be signed and rendered to the
// canonical base64 envelope the network accepts. Grounded on the teacher's txnbuild.TransactionParams
// / txnbuild.NewTransaction call shape (internal/transactionsubmission/payment_transaction_handler.go),
// generalized into the fluent builder the spec's contract describes.
package txnbuild

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/Soneso/stellar-go-sdk/keypair"
	"github.com/Soneso/stellar-go-sdk/network"
	"github.com/Soneso/stellar-go-sdk/xdr"
)

const maxOperationsPerTransaction = 100

// MinBaseFee is the network's minimum per-operation fee, in stroops.
const MinBaseFee = 100

// Builder accumulates the pieces of a transaction before producing an immutable Transaction.
type Builder struct {
	sourceAccount string
	sequenceNum   int64
	baseFee       int64
	operations    []Operation
	memo          Memo
	preconditions Preconditions
	sorobanData   *xdr.SorobanTransactionData
	timeoutSet    bool
}

// NewBuilder starts a builder for a transaction sourced from sourceAccount at sequenceNum + 1
// (sequenceNum is the account's current, pre-submission sequence number).
func NewBuilder(sourceAccount string, sequenceNum int64) *Builder {
	return &Builder{
		sourceAccount: sourceAccount,
		sequenceNum:   sequenceNum,
		baseFee:       100,
		memo:          MemoNone{},
	}
}

// AddOperation appends op to the transaction.
func (b *Builder) AddOperation(op Operation) *Builder {
	b.operations = append(b.operations, op)
	return b
}

// SetTimeout sets a time-bound precondition of [0, now+seconds]. TimeoutInfinite (0) means no
// upper bound. Calling SetTimeout replaces any time bound already present in the preconditions,
// including one set via SetPreconditions.
func (b *Builder) SetTimeout(seconds int64) *Builder {
	var max int64
	if seconds != TimeoutInfinite {
		max = time.Now().Unix() + seconds
	}
	b.preconditions.TimeBounds = &TimeBounds{MinTime: 0, MaxTime: max}
	b.timeoutSet = true
	return b
}

// SetBaseFee sets the per-operation fee in stroops; the transaction's total fee is
// baseFee * len(operations), plus the Soroban resource fee when Soroban data is set.
func (b *Builder) SetBaseFee(stroops int64) *Builder {
	b.baseFee = stroops
	return b
}

// SetMemo attaches m to the transaction.
func (b *Builder) SetMemo(m Memo) *Builder {
	b.memo = m
	return b
}

// SetPreconditions replaces the transaction's full precondition set. Calling it satisfies
// Build's "a timeout has been set" requirement whether or not p carries a time bound.
func (b *Builder) SetPreconditions(p Preconditions) *Builder {
	b.preconditions = p
	b.timeoutSet = true
	return b
}

// SetSorobanData attaches Soroban resource/fee data, required for transactions that invoke a host
// function.
func (b *Builder) SetSorobanData(d xdr.SorobanTransactionData) *Builder {
	b.sorobanData = &d
	return b
}

// Build validates the accumulated state and returns the immutable, unsigned Transaction.
func (b *Builder) Build() (*Transaction, error) {
	if len(b.operations) == 0 {
		return nil, &Error{Msg: "transaction requires at least one operation"}
	}
	if len(b.operations) > maxOperationsPerTransaction {
		return nil, &Error{Msg: fmt.Sprintf("transaction exceeds %d operations", maxOperationsPerTransaction)}
	}
	if !b.timeoutSet {
		return nil, &Error{Msg: "build requires a timeout to have been set (use SetTimeout or SetPreconditions)"}
	}

	source, err := muxedAccountFromAddress(b.sourceAccount)
	if err != nil {
		return nil, err
	}
	cond, err := b.preconditions.toXDR()
	if err != nil {
		return nil, err
	}
	memo, err := b.memo.toXDR()
	if err != nil {
		return nil, err
	}

	ops := make([]xdr.Operation, len(b.operations))
	for i, op := range b.operations {
		x, err := toXDROperation(op)
		if err != nil {
			return nil, fmt.Errorf("txnbuild: operation %d: %w", i, err)
		}
		ops[i] = x
	}

	if b.baseFee < MinBaseFee {
		return nil, &Error{Msg: fmt.Sprintf("base fee %d is below the network minimum of %d stroops per operation", b.baseFee, MinBaseFee)}
	}

	fee := b.baseFee * int64(len(b.operations))
	if b.sorobanData != nil {
		fee += int64(b.sorobanData.ResourceFee)
	}
	if fee < 0 || fee > 1<<32-1 {
		return nil, &Error{Msg: "fee overflows uint32"}
	}

	ext := xdr.TransactionExt{Type: xdr.TransactionExtVoid}
	if b.sorobanData != nil {
		ext = xdr.TransactionExt{Type: xdr.TransactionExtSoroban, Soroban: b.sorobanData}
	}

	tx := xdr.Transaction{
		SourceAccount: source,
		Fee:           xdr.Uint32(fee),
		SeqNum:        xdr.SequenceNumber(b.sequenceNum + 1),
		Cond:          cond,
		Memo:          memo,
		Operations:    ops,
		Ext:           ext,
	}
	return &Transaction{inner: tx}, nil
}

// Transaction is an assembled, possibly-signed transaction envelope.
type Transaction struct {
	inner      xdr.Transaction
	signatures []xdr.DecoratedSignature
}

// Hash returns the signature base this transaction's signatures are computed over:
// SHA-256(networkID || ENVELOPE_TYPE_TX || tx_xdr).
func (t *Transaction) Hash(networkPassphrase string) ([32]byte, error) {
	payload := xdr.TransactionSignaturePayload{
		NetworkId: xdr.Hash(network.ID(networkPassphrase)),
		TaggedTransaction: xdr.TaggedTransaction{
			Type: xdr.EnvelopeTypeTx,
			Tx:   &t.inner,
		},
	}
	b, err := xdr.Marshal(payload)
	if err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256(b), nil
}

// Sign appends a detached signature from each signer, in call order. A transaction may be signed
// by multiple keys.
func (t *Transaction) Sign(networkPassphrase string, signers ...*keypair.KeyPair) error {
	h, err := t.Hash(networkPassphrase)
	if err != nil {
		return err
	}
	for _, kp := range signers {
		sig, err := kp.Sign(h[:])
		if err != nil {
			return err
		}
		t.signatures = append(t.signatures, xdr.DecoratedSignature{
			Hint:      xdr.SignatureHint(kp.Hint()),
			Signature: sig,
		})
	}
	return nil
}

// AddSignatureBase64 appends a pre-computed signature (e.g. produced by an external signer),
// given as the raw Ed25519 signature base64-encoded and hinted by the signing account's address.
func (t *Transaction) AddSignatureBase64(signerAddress, sigBase64 string) error {
	kp, err := keypair.ParseAddress(signerAddress)
	if err != nil {
		return err
	}
	sig, err := base64.StdEncoding.DecodeString(sigBase64)
	if err != nil {
		return fmt.Errorf("txnbuild: decode signature: %w", err)
	}
	t.signatures = append(t.signatures, xdr.DecoratedSignature{
		Hint:      xdr.SignatureHint(kp.Hint()),
		Signature: sig,
	})
	return nil
}

// ToEnvelopeXDRBase64 renders the canonical wire form of this transaction and its signatures.
func (t *Transaction) ToEnvelopeXDRBase64() (string, error) {
	env := xdr.TransactionEnvelope{
		Type: xdr.EnvelopeTypeTx,
		V1:   &xdr.TransactionV1Envelope{Tx: t.inner, Signatures: t.signatures},
	}
	return xdr.MarshalBase64(env)
}

// FromEnvelopeXDR parses a base64 TransactionEnvelope. Round-tripping through
// ToEnvelopeXDRBase64 must be byte-identical.
func FromEnvelopeXDR(envelopeBase64 string) (*Transaction, error) {
	var env xdr.TransactionEnvelope
	if err := xdr.UnmarshalBase64(envelopeBase64, &env); err != nil {
		return nil, fmt.Errorf("txnbuild: decode envelope: %w", err)
	}
	if env.Type != xdr.EnvelopeTypeTx || env.V1 == nil {
		return nil, &Error{Msg: "only EnvelopeTypeTx transactions are supported"}
	}
	return &Transaction{inner: env.V1.Tx, signatures: env.V1.Signatures}, nil
}

// SourceAccount returns the transaction's source account address.
func (t *Transaction) SourceAccount() (string, error) {
	return addressFromMuxedAccount(t.inner.SourceAccount)
}

// SequenceNumber returns the transaction's sequence number (already incremented past the
// account's pre-submission value).
func (t *Transaction) SequenceNumber() int64 { return int64(t.inner.SeqNum) }

// Fee returns the transaction's total fee in stroops.
func (t *Transaction) Fee() uint32 { return uint32(t.inner.Fee) }

// Operations returns the transaction's operations, converted back to builder Operation values.
func (t *Transaction) Operations() ([]Operation, error) {
	out := make([]Operation, len(t.inner.Operations))
	for i, x := range t.inner.Operations {
		op, err := operationFromXDR(x)
		if err != nil {
			return nil, err
		}
		out[i] = op
	}
	return out, nil
}

// Memo returns the transaction's memo.
func (t *Transaction) Memo() (Memo, error) { return memoFromXDR(t.inner.Memo) }

// Preconditions returns the transaction's preconditions.
func (t *Transaction) Preconditions() (Preconditions, error) { return preconditionsFromXDR(t.inner.Cond) }

// SorobanData returns the transaction's Soroban resource/fee data, or nil if it carries none.
func (t *Transaction) SorobanData() *xdr.SorobanTransactionData {
	if t.inner.Ext.Type != xdr.TransactionExtSoroban {
		return nil
	}
	return t.inner.Ext.Soroban
}

// Signatures returns the detached signatures currently attached to the transaction.
func (t *Transaction) Signatures() []xdr.DecoratedSignature { return t.signatures }

// ToXDR returns the underlying xdr.Transaction, for callers (e.g. the soroban auth signer) that
// need direct access to build a preimage over it.
func (t *Transaction) ToXDR() xdr.Transaction { return t.inner }

// WithSorobanData returns a copy of t with its Soroban data and fee replaced, used by the RPC
// pipeline's prepare-transaction step after simulation yields the actual resource fee. The copy
// carries no signatures.
func (t *Transaction) WithSorobanData(d xdr.SorobanTransactionData, totalFee uint32) *Transaction {
	cp := t.inner
	cp.Ext = xdr.TransactionExt{Type: xdr.TransactionExtSoroban, Soroban: &d}
	cp.Fee = xdr.Uint32(totalFee)
	return &Transaction{inner: cp}
}

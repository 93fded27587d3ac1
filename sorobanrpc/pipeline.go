package sorobanrpc

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/Soneso/stellar-go-sdk/keypair"
	"github.com/Soneso/stellar-go-sdk/soroban"
	"github.com/Soneso/stellar-go-sdk/txnbuild"
	"github.com/Soneso/stellar-go-sdk/xdr"
)

// KindTxFailed and KindTimeout extend this package's error taxonomy with the two outcomes specific to the
// invocation lifecycle: a submitted transaction that ultimately failed, and a poll that never
// reached a terminal status.
const (
	KindTxFailed ErrorKind = "TxFailed"
	KindTimeout  ErrorKind = "Timeout"
)

// InvocationResult is the outcome of a successful end-to-end invocation: the submission hash and
// the terminal getTransaction result it polled to.
type InvocationResult struct {
	Hash        string
	Transaction GetTransactionResult
}

// SignerSet resolves the keypair to use for a given account address when an auth entry names an
// address other than the transaction's submitter, e.g. a lookup table the caller maintains.
type SignerSet func(address string) (*keypair.KeyPair, error)

// Invoke runs the full simulate -> auth-route -> sign -> rebuild -> prepare -> submit -> poll
// pipeline for an unsigned transaction whose only operation is build.InvokeHostFunction,
// following the protocol's documented invocation lifecycle step by step.
func Invoke(ctx context.Context, c *Client, networkPassphrase string, build *txnbuild.Builder, op txnbuild.InvokeHostFunction, submitter *keypair.KeyPair, signers SignerSet, pollOpts ...PollOption) (*InvocationResult, error) {
	tx, err := build.AddOperation(op).Build()
	if err != nil {
		return nil, err
	}

	envelope, err := tx.ToEnvelopeXDRBase64()
	if err != nil {
		return nil, err
	}
	sim, err := c.SimulateTransaction(ctx, envelope, AuthModeEnforce)
	if err != nil {
		return nil, err
	}
	if len(sim.Results) == 0 {
		return nil, &Error{Kind: KindSimulation, Msg: "simulation returned no results"}
	}

	entries, err := decodeAuthEntries(sim.Results[0].Auth)
	if err != nil {
		return nil, err
	}

	submitterAddress := submitter.Address()
	validUntil := uint32(sim.LatestLedger) + 10

	nonInvoker, err := soroban.NeedsNonInvokerSigningBy(entries)
	if err != nil {
		return nil, err
	}
	for i, entry := range entries {
		addr, err := addressOf(entry)
		if err != nil {
			return nil, err
		}
		if addr == "" || addr == submitterAddress {
			continue // left unsigned; prepare_transaction auto-signs source-matching entries.
		}
		needsSigning := false
		for _, a := range nonInvoker {
			if a == addr {
				needsSigning = true
				break
			}
		}
		if !needsSigning {
			continue
		}
		signer, err := signers(addr)
		if err != nil {
			return nil, err
		}
		signed, err := soroban.SignAuthEntry(entry, signer, validUntil, networkPassphrase)
		if err != nil {
			return nil, err
		}
		entries[i] = signed
	}

	op.Auth = entries
	memo, err := tx.Memo()
	if err != nil {
		return nil, err
	}
	cond, err := tx.Preconditions()
	if err != nil {
		return nil, err
	}
	rebuilt, err := txnbuild.NewBuilder(submitterAddress, tx.SequenceNumber()-1).SetMemo(memo).SetPreconditions(cond).AddOperation(op).Build()
	if err != nil {
		return nil, err
	}

	prepared, err := PrepareTransaction(rebuilt, sim, submitterAddress, submitter, networkPassphrase)
	if err != nil {
		return nil, err
	}

	if err := prepared.Sign(networkPassphrase, submitter); err != nil {
		return nil, err
	}
	return Submit(ctx, c, prepared, pollOpts...)
}

// PrepareTransaction overlays simulation's resource data onto tx, bumps the fee to
// 100*opCount + minResourceFee, and auto-signs any still-unsigned AddressCredentials entry whose
// address is submitterAddress — the protocol's own shortcut for the common case where the
// invoker is also the submitter.
func PrepareTransaction(tx *txnbuild.Transaction, sim *SimulateTransactionResult, submitterAddress string, submitter *keypair.KeyPair, networkPassphrase string) (*txnbuild.Transaction, error) {
	var txData xdr.SorobanTransactionData
	if err := xdr.UnmarshalBase64(sim.TransactionData, &txData); err != nil {
		return nil, fmt.Errorf("sorobanrpc: decode transactionData: %w", err)
	}

	ops, err := tx.Operations()
	if err != nil {
		return nil, err
	}
	opCount := len(ops)

	var minResourceFee int64
	if _, err := fmt.Sscanf(sim.MinResourceFee, "%d", &minResourceFee); err != nil {
		return nil, fmt.Errorf("sorobanrpc: parse minResourceFee: %w", err)
	}
	totalFee := uint32(100*int64(opCount) + minResourceFee)

	for i, o := range ops {
		inv, ok := o.(txnbuild.InvokeHostFunction)
		if !ok {
			continue
		}
		validUntil := uint32(sim.LatestLedger) + 10
		for j, entry := range inv.Auth {
			addr, err := addressOf(entry)
			if err != nil {
				return nil, err
			}
			if addr != submitterAddress {
				continue
			}
			if entry.Credentials.Address.Signature.Type != xdr.ScValTypeScvVoid {
				continue
			}
			signed, err := soroban.SignAuthEntry(entry, submitter, validUntil, networkPassphrase)
			if err != nil {
				return nil, err
			}
			inv.Auth[j] = signed
		}
		ops[i] = inv
	}

	b := txnbuild.NewBuilder(submitterAddress, tx.SequenceNumber()-1).SetBaseFee(100).SetSorobanData(txData)
	memo, err := tx.Memo()
	if err != nil {
		return nil, err
	}
	b.SetMemo(memo)
	cond, err := tx.Preconditions()
	if err != nil {
		return nil, err
	}
	b.SetPreconditions(cond)
	for _, o := range ops {
		b.AddOperation(o)
	}
	built, err := b.Build()
	if err != nil {
		return nil, err
	}
	return built.WithSorobanData(txData, totalFee), nil
}

// PollOption configures Submit's polling: its attempt budget and the interval between polls.
type PollOption func(*pollConfig)

type pollConfig struct {
	maxAttempts int
	interval    time.Duration
}

// WithMaxAttempts overrides the default 20-attempt poll budget.
func WithMaxAttempts(n int) PollOption { return func(c *pollConfig) { c.maxAttempts = n } }

// WithPollInterval overrides the default fixed 3s interval between polls.
func WithPollInterval(d time.Duration) PollOption { return func(c *pollConfig) { c.interval = d } }

// Submit sends a signed transaction and polls until it reaches a terminal status. The reference
// implementation's polling is a fixed 3s interval, not exponential backoff.
func Submit(ctx context.Context, c *Client, tx *txnbuild.Transaction, opts ...PollOption) (*InvocationResult, error) {
	cfg := pollConfig{maxAttempts: 20, interval: 3 * time.Second}
	for _, o := range opts {
		o(&cfg)
	}

	envelope, err := tx.ToEnvelopeXDRBase64()
	if err != nil {
		return nil, err
	}
	sent, err := c.SendTransaction(ctx, envelope)
	if err != nil {
		return nil, err
	}
	if sent.Status == SendTransactionStatusError {
		return nil, &Error{Kind: KindTxFailed, Msg: sent.ErrorResultXDR}
	}

	var result GetTransactionResult
	attempt := 0
	err = retry.Do(
		func() error {
			attempt++
			r, err := c.GetTransaction(ctx, sent.Hash)
			if err != nil {
				return err
			}
			result = *r
			if result.Status == TransactionStatusNotFound {
				return fmt.Errorf("sorobanrpc: transaction %s not yet found", sent.Hash)
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(cfg.maxAttempts)),
		retry.DelayType(retry.FixedDelay),
		retry.Delay(cfg.interval),
	)
	if err != nil {
		return nil, &Error{Kind: KindTimeout, Msg: fmt.Sprintf("transaction %s did not reach a terminal status after %d attempts", sent.Hash, attempt)}
	}
	if result.Status == TransactionStatusFailed {
		return nil, &Error{Kind: KindTxFailed, Msg: result.ResultXDR}
	}
	return &InvocationResult{Hash: sent.Hash, Transaction: result}, nil
}

func decodeAuthEntries(authXDRs []string) ([]xdr.SorobanAuthorizationEntry, error) {
	out := make([]xdr.SorobanAuthorizationEntry, len(authXDRs))
	for i, s := range authXDRs {
		if err := xdr.UnmarshalBase64(s, &out[i]); err != nil {
			return nil, fmt.Errorf("sorobanrpc: decode auth entry %d: %w", i, err)
		}
	}
	return out, nil
}

func addressOf(entry xdr.SorobanAuthorizationEntry) (string, error) {
	if entry.Credentials.Type != xdr.SorobanCredentialsTypeAddress || entry.Credentials.Address == nil {
		return "", nil
	}
	a := entry.Credentials.Address.Address
	if a.Type != xdr.ScAddressTypeScAddressTypeAccount || a.AccountId == nil || a.AccountId.Ed25519 == nil {
		return "", &Error{Kind: KindSimulation, Msg: "only account addresses are supported as auth entry credentials"}
	}
	kp, err := keypair.FromPublicKey(a.AccountId.Ed25519[:])
	if err != nil {
		return "", err
	}
	return kp.Address(), nil
}

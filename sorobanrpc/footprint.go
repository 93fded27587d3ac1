package sorobanrpc

import (
	"context"
	"fmt"

	"github.com/Soneso/stellar-go-sdk/keypair"
	"github.com/Soneso/stellar-go-sdk/soroban"
	"github.com/Soneso/stellar-go-sdk/txnbuild"
	"github.com/Soneso/stellar-go-sdk/xdr"
)

// RestoreFootprint runs the footprint-restore workflow: it takes the simulation output that
// reported archived entries (via RestorePreamble, or, lacking one, the simulation's own
// transactionData), moves every readOnly key into readWrite per soroban.RestoreFootprintFor,
// overlays the resource fee/footprint, builds a dedicated RestoreFootprint transaction, and runs
// it through this package's simulate -> prepare -> sign -> submit -> poll pipeline.
func RestoreFootprint(ctx context.Context, c *Client, networkPassphrase, sourceAccount string, sourceSeqNum int64, sim *SimulateTransactionResult, submitter *keypair.KeyPair, pollOpts ...PollOption) (*InvocationResult, error) {
	var txData xdr.SorobanTransactionData

	if sim.RestorePreamble != nil {
		if err := xdr.UnmarshalBase64(sim.RestorePreamble.TransactionData, &txData); err != nil {
			return nil, fmt.Errorf("sorobanrpc: decode restorePreamble.transactionData: %w", err)
		}
	} else {
		if err := xdr.UnmarshalBase64(sim.TransactionData, &txData); err != nil {
			return nil, fmt.Errorf("sorobanrpc: decode transactionData: %w", err)
		}
		archived := append(append([]xdr.LedgerKey{}, txData.Resources.Footprint.ReadOnly...), txData.Resources.Footprint.ReadWrite...)
		txData.Resources.Footprint = soroban.RestoreFootprintFor(archived)
	}

	tx, err := txnbuild.NewBuilder(sourceAccount, sourceSeqNum).
		SetBaseFee(txnbuild.MinBaseFee).
		SetTimeout(30).
		SetSorobanData(txData).
		AddOperation(txnbuild.RestoreFootprint{SourceAccount: sourceAccount}).
		Build()
	if err != nil {
		return nil, err
	}

	envelope, err := tx.ToEnvelopeXDRBase64()
	if err != nil {
		return nil, err
	}
	restoreSim, err := c.SimulateTransaction(ctx, envelope, AuthModeEnforce)
	if err != nil {
		return nil, err
	}

	prepared, err := PrepareTransaction(tx, restoreSim, sourceAccount, submitter, networkPassphrase)
	if err != nil {
		return nil, err
	}
	if err := prepared.Sign(networkPassphrase, submitter); err != nil {
		return nil, err
	}
	return Submit(ctx, c, prepared, pollOpts...)
}

// ExtendFootprintTTL builds and runs an ExtendFootprintTTL transaction whose Soroban resources
// carry a footprint that is exactly contractCodeKey (per spec §4.9's TTL-extension helper),
// letting simulation fill in the resource fee before it is signed, submitted and polled.
func ExtendFootprintTTL(ctx context.Context, c *Client, networkPassphrase, sourceAccount string, sourceSeqNum int64, contractCodeKey xdr.LedgerKey, extendTo uint32, submitter *keypair.KeyPair, pollOpts ...PollOption) (*InvocationResult, error) {
	txData := xdr.SorobanTransactionData{
		Resources: xdr.SorobanResources{
			Footprint: xdr.LedgerFootprint{ReadOnly: []xdr.LedgerKey{contractCodeKey}},
		},
	}

	tx, err := txnbuild.NewBuilder(sourceAccount, sourceSeqNum).
		SetBaseFee(txnbuild.MinBaseFee).
		SetTimeout(30).
		SetSorobanData(txData).
		AddOperation(txnbuild.ExtendFootprintTTL{SourceAccount: sourceAccount, ExtendTo: extendTo}).
		Build()
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

	prepared, err := PrepareTransaction(tx, sim, sourceAccount, submitter, networkPassphrase)
	if err != nil {
		return nil, err
	}
	if err := prepared.Sign(networkPassphrase, submitter); err != nil {
		return nil, err
	}
	return Submit(ctx, c, prepared, pollOpts...)
}

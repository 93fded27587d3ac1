package txnbuild

import (
	"github.com/Soneso/stellar-go-sdk/xdr"
)

// BeginSponsoringFutureReserves starts sponsoring the reserve requirements of every operation
// SponsoredID signs until a matching EndSponsoringFutureReserves closes the block.
type BeginSponsoringFutureReserves struct {
	SourceAccount string
	SponsoredID   string
}

func (op BeginSponsoringFutureReserves) GetSourceAccount() string { return op.SourceAccount }

func (op BeginSponsoringFutureReserves) toXDRBody() (xdr.OperationBody, error) {
	id, err := accountIDFromAddress(op.SponsoredID)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type:                          xdr.OperationTypeBeginSponsoringFutureReserves,
		BeginSponsoringFutureReserves: &xdr.BeginSponsoringFutureReservesOp{SponsoredId: id},
	}, nil
}

func beginSponsoringFutureReservesFromXDR(src string, op *xdr.BeginSponsoringFutureReservesOp) (Operation, error) {
	id, err := addressFromAccountID(op.SponsoredId)
	if err != nil {
		return nil, err
	}
	return BeginSponsoringFutureReserves{SourceAccount: src, SponsoredID: id}, nil
}

// EndSponsoringFutureReserves closes the sponsorship block opened by the matching
// BeginSponsoringFutureReserves earlier in the same transaction. It carries no fields.
type EndSponsoringFutureReserves struct {
	SourceAccount string
}

func (op EndSponsoringFutureReserves) GetSourceAccount() string { return op.SourceAccount }

func (op EndSponsoringFutureReserves) toXDRBody() (xdr.OperationBody, error) {
	return xdr.OperationBody{Type: xdr.OperationTypeEndSponsoringFutureReserves}, nil
}

// RevokeSponsorshipLedgerKey revokes the sponsorship of a single ledger entry, named by its key.
type RevokeSponsorshipLedgerKey struct {
	Key xdr.LedgerKey
}

// RevokeSponsorshipSigner revokes the sponsorship of a single signer on AccountID.
type RevokeSponsorshipSigner struct {
	AccountID string
	SignerKey string
}

// RevokeSponsorship revokes either a ledger entry's or a signer's sponsorship. Exactly one of
// LedgerKey/Signer must be set.
type RevokeSponsorship struct {
	SourceAccount string
	LedgerKey     *RevokeSponsorshipLedgerKey
	Signer        *RevokeSponsorshipSigner
}

func (op RevokeSponsorship) GetSourceAccount() string { return op.SourceAccount }

func (op RevokeSponsorship) toXDRBody() (xdr.OperationBody, error) {
	switch {
	case op.LedgerKey != nil && op.Signer == nil:
		key := op.LedgerKey.Key
		return xdr.OperationBody{
			Type: xdr.OperationTypeRevokeSponsorship,
			RevokeSponsorship: &xdr.RevokeSponsorshipOp{
				Type:      xdr.RevokeSponsorshipLedgerEntry,
				LedgerKey: &key,
			},
		}, nil
	case op.Signer != nil && op.LedgerKey == nil:
		accountID, err := accountIDFromAddress(op.Signer.AccountID)
		if err != nil {
			return xdr.OperationBody{}, err
		}
		key, err := signerKeyFromStrkey(op.Signer.SignerKey)
		if err != nil {
			return xdr.OperationBody{}, err
		}
		return xdr.OperationBody{
			Type: xdr.OperationTypeRevokeSponsorship,
			RevokeSponsorship: &xdr.RevokeSponsorshipOp{
				Type:   xdr.RevokeSponsorshipSigner,
				Signer: &xdr.RevokeSponsorshipSignerOp{AccountId: accountID, SignerKey: key},
			},
		}, nil
	default:
		return xdr.OperationBody{}, &Error{Msg: "exactly one of LedgerKey or Signer must be set"}
	}
}

func revokeSponsorshipFromXDR(src string, op *xdr.RevokeSponsorshipOp) (Operation, error) {
	switch op.Type {
	case xdr.RevokeSponsorshipLedgerEntry:
		if op.LedgerKey == nil {
			return nil, &Error{Msg: "revoke sponsorship missing ledger key"}
		}
		return RevokeSponsorship{SourceAccount: src, LedgerKey: &RevokeSponsorshipLedgerKey{Key: *op.LedgerKey}}, nil
	case xdr.RevokeSponsorshipSigner:
		if op.Signer == nil {
			return nil, &Error{Msg: "revoke sponsorship missing signer"}
		}
		accountID, err := addressFromAccountID(op.Signer.AccountId)
		if err != nil {
			return nil, err
		}
		key, err := signerKeyToStrkey(op.Signer.SignerKey)
		if err != nil {
			return nil, err
		}
		return RevokeSponsorship{SourceAccount: src, Signer: &RevokeSponsorshipSigner{AccountID: accountID, SignerKey: key}}, nil
	default:
		return nil, &Error{Msg: "unsupported RevokeSponsorship discriminant"}
	}
}

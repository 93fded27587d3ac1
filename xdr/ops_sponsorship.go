package xdr

// BeginSponsoringFutureReservesOp marks that the source account will pay the base reserve for
// entries SponsoredId creates until a matching EndSponsoringFutureReservesOp.
type BeginSponsoringFutureReservesOp struct {
	SponsoredId AccountId
}

func (o BeginSponsoringFutureReservesOp) EncodeTo(e *Encoder) error { return o.SponsoredId.EncodeTo(e) }
func (o *BeginSponsoringFutureReservesOp) DecodeFrom(d *Decoder) error { return o.SponsoredId.DecodeFrom(d) }

// RevokeSponsorshipType discriminates RevokeSponsorshipOp.
type RevokeSponsorshipType int32

const (
	RevokeSponsorshipLedgerEntry RevokeSponsorshipType = 0
	RevokeSponsorshipSigner      RevokeSponsorshipType = 1
)

// RevokeSponsorshipSignerOp names a signer on AccountId whose sponsorship is being revoked.
type RevokeSponsorshipSignerOp struct {
	AccountId AccountId
	SignerKey SignerKey
}

// RevokeSponsorshipOp removes sponsorship from either a ledger entry (by key) or an account
// signer, making the sponsored entity responsible for its own reserve again.
type RevokeSponsorshipOp struct {
	Type        RevokeSponsorshipType
	LedgerKey   *LedgerKey
	Signer      *RevokeSponsorshipSignerOp
}

func (o RevokeSponsorshipOp) EncodeTo(e *Encoder) error {
	e.EncodeInt32(int32(o.Type))
	switch o.Type {
	case RevokeSponsorshipLedgerEntry:
		return o.LedgerKey.EncodeTo(e)
	case RevokeSponsorshipSigner:
		if err := o.Signer.AccountId.EncodeTo(e); err != nil {
			return err
		}
		return o.Signer.SignerKey.EncodeTo(e)
	default:
		return errInvalidDiscriminant("RevokeSponsorshipOp", int64(o.Type))
	}
}

func (o *RevokeSponsorshipOp) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("RevokeSponsorshipOp.Type")
	if err != nil {
		return err
	}
	o.Type = RevokeSponsorshipType(t)
	switch o.Type {
	case RevokeSponsorshipLedgerEntry:
		var k LedgerKey
		if err := k.DecodeFrom(d); err != nil {
			return err
		}
		o.LedgerKey = &k
		return nil
	case RevokeSponsorshipSigner:
		var s RevokeSponsorshipSignerOp
		if err := s.AccountId.DecodeFrom(d); err != nil {
			return err
		}
		if err := s.SignerKey.DecodeFrom(d); err != nil {
			return err
		}
		o.Signer = &s
		return nil
	default:
		return errInvalidDiscriminant("RevokeSponsorshipOp", int64(t))
	}
}

package xdr

// TransactionExtType discriminates Transaction.Ext: void for classic transactions, or the
// Soroban resource/fee envelope for contract-invoking ones.
type TransactionExtType int32

const (
	TransactionExtVoid    TransactionExtType = 0
	TransactionExtSoroban TransactionExtType = 1
)

// TransactionExt carries SorobanTransactionData when the transaction invokes a host function.
type TransactionExt struct {
	Type    TransactionExtType
	Soroban *SorobanTransactionData
}

func (x TransactionExt) EncodeTo(e *Encoder) error {
	e.EncodeInt32(int32(x.Type))
	switch x.Type {
	case TransactionExtVoid:
		return nil
	case TransactionExtSoroban:
		return x.Soroban.EncodeTo(e)
	default:
		return errInvalidDiscriminant("TransactionExt", int64(x.Type))
	}
}

func (x *TransactionExt) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("TransactionExt.Type")
	if err != nil {
		return err
	}
	x.Type = TransactionExtType(t)
	switch x.Type {
	case TransactionExtVoid:
		return nil
	case TransactionExtSoroban:
		var s SorobanTransactionData
		if err := s.DecodeFrom(d); err != nil {
			return err
		}
		x.Soroban = &s
		return nil
	default:
		return errInvalidDiscriminant("TransactionExt", int64(t))
	}
}

// Transaction is the unsigned envelope body: source, fee, sequence number, validity preconditions,
// memo, up to 100 operations, and an optional Soroban extension.
type Transaction struct {
	SourceAccount MuxedAccount
	Fee           Uint32
	SeqNum        SequenceNumber
	Cond          Preconditions
	Memo          Memo
	Operations    []Operation
	Ext           TransactionExt
}

func (t Transaction) EncodeTo(e *Encoder) error {
	if err := t.SourceAccount.EncodeTo(e); err != nil {
		return err
	}
	if err := t.Fee.EncodeTo(e); err != nil {
		return err
	}
	if err := t.SeqNum.EncodeTo(e); err != nil {
		return err
	}
	if err := t.Cond.EncodeTo(e); err != nil {
		return err
	}
	if err := t.Memo.EncodeTo(e); err != nil {
		return err
	}
	if len(t.Operations) == 0 || len(t.Operations) > 100 {
		return errInvalidLength("Transaction.Operations", 100, len(t.Operations))
	}
	e.EncodeUint32(uint32(len(t.Operations)))
	for i := range t.Operations {
		if err := t.Operations[i].EncodeTo(e); err != nil {
			return err
		}
	}
	return t.Ext.EncodeTo(e)
}

func (t *Transaction) DecodeFrom(d *Decoder) error {
	if err := t.SourceAccount.DecodeFrom(d); err != nil {
		return err
	}
	if err := t.Fee.DecodeFrom(d); err != nil {
		return err
	}
	if err := t.SeqNum.DecodeFrom(d); err != nil {
		return err
	}
	if err := t.Cond.DecodeFrom(d); err != nil {
		return err
	}
	if err := t.Memo.DecodeFrom(d); err != nil {
		return err
	}
	n, err := d.DecodeUint32("Transaction.Operations.len")
	if err != nil {
		return err
	}
	if n == 0 || n > 100 {
		return errInvalidLength("Transaction.Operations", 100, int(n))
	}
	t.Operations = make([]Operation, n)
	for i := range t.Operations {
		if err := t.Operations[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	return t.Ext.DecodeFrom(d)
}

// DecoratedSignature pairs a signature with a 4-byte hint (the signing key's last 4 bytes) so
// verifiers can match signatures to candidate signers without trying every key.
type DecoratedSignature struct {
	Hint      SignatureHint
	Signature Signature
}

func (s DecoratedSignature) EncodeTo(e *Encoder) error {
	if err := s.Hint.EncodeTo(e); err != nil {
		return err
	}
	return s.Signature.EncodeTo(e)
}

func (s *DecoratedSignature) DecodeFrom(d *Decoder) error {
	if err := s.Hint.DecodeFrom(d); err != nil {
		return err
	}
	return s.Signature.DecodeFrom(d)
}

// TransactionV1Envelope wraps an unsigned Transaction with its collected DecoratedSignatures.
type TransactionV1Envelope struct {
	Tx         Transaction
	Signatures []DecoratedSignature
}

func (v TransactionV1Envelope) EncodeTo(e *Encoder) error {
	if err := v.Tx.EncodeTo(e); err != nil {
		return err
	}
	if len(v.Signatures) > 20 {
		return errInvalidLength("TransactionV1Envelope.Signatures", 20, len(v.Signatures))
	}
	e.EncodeUint32(uint32(len(v.Signatures)))
	for i := range v.Signatures {
		if err := v.Signatures[i].EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (v *TransactionV1Envelope) DecodeFrom(d *Decoder) error {
	if err := v.Tx.DecodeFrom(d); err != nil {
		return err
	}
	n, err := d.DecodeUint32("TransactionV1Envelope.Signatures.len")
	if err != nil {
		return err
	}
	if n > 20 {
		return errInvalidLength("TransactionV1Envelope.Signatures", 20, int(n))
	}
	v.Signatures = make([]DecoratedSignature, n)
	for i := range v.Signatures {
		if err := v.Signatures[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	return nil
}

// TransactionEnvelope is the top-level union transmitted to and returned by the network. Only
// EnvelopeTypeTx (the current, non-fee-bump envelope) is modeled: this library never builds
// fee-bump transactions, and the decode path surfaces any other envelope type as an error rather
// than silently misinterpreting it.
type TransactionEnvelope struct {
	Type EnvelopeType
	V1   *TransactionV1Envelope
}

func (e TransactionEnvelope) EncodeTo(enc *Encoder) error {
	enc.EncodeInt32(int32(e.Type))
	switch e.Type {
	case EnvelopeTypeTx:
		return e.V1.EncodeTo(enc)
	default:
		return errInvalidDiscriminant("TransactionEnvelope", int64(e.Type))
	}
}

func (e *TransactionEnvelope) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("TransactionEnvelope.Type")
	if err != nil {
		return err
	}
	e.Type = EnvelopeType(t)
	switch e.Type {
	case EnvelopeTypeTx:
		var v1 TransactionV1Envelope
		if err := v1.DecodeFrom(d); err != nil {
			return err
		}
		e.V1 = &v1
		return nil
	default:
		return errInvalidDiscriminant("TransactionEnvelope", int64(t))
	}
}

// TaggedTransaction is the payload of TransactionSignaturePayload; only the Tx arm is supported,
// matching TransactionEnvelope above.
type TaggedTransaction struct {
	Type EnvelopeType
	Tx   *Transaction
}

func (t TaggedTransaction) EncodeTo(e *Encoder) error {
	e.EncodeInt32(int32(t.Type))
	switch t.Type {
	case EnvelopeTypeTx:
		return t.Tx.EncodeTo(e)
	default:
		return errInvalidDiscriminant("TaggedTransaction", int64(t.Type))
	}
}

func (t *TaggedTransaction) DecodeFrom(d *Decoder) error {
	ty, err := d.DecodeInt32("TaggedTransaction.Type")
	if err != nil {
		return err
	}
	t.Type = EnvelopeType(ty)
	switch t.Type {
	case EnvelopeTypeTx:
		var tx Transaction
		if err := tx.DecodeFrom(d); err != nil {
			return err
		}
		t.Tx = &tx
		return nil
	default:
		return errInvalidDiscriminant("TaggedTransaction", int64(ty))
	}
}

// TransactionSignaturePayload is the preimage every transaction signature is computed over:
// SHA-256(NetworkId || TaggedTransaction), per spec §4.4/§8's canonical hash definition.
type TransactionSignaturePayload struct {
	NetworkId         Hash
	TaggedTransaction TaggedTransaction
}

func (p TransactionSignaturePayload) EncodeTo(e *Encoder) error {
	if err := p.NetworkId.EncodeTo(e); err != nil {
		return err
	}
	return p.TaggedTransaction.EncodeTo(e)
}

func (p *TransactionSignaturePayload) DecodeFrom(d *Decoder) error {
	if err := p.NetworkId.DecodeFrom(d); err != nil {
		return err
	}
	return p.TaggedTransaction.DecodeFrom(d)
}

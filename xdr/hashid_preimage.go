package xdr

// EnvelopeType tags the kind of payload a signature is over; mixing it into every signed preimage
// stops a signature collected for one purpose (e.g. a contract id) from being replayed as another
// (e.g. a transaction signature).
type EnvelopeType int32

const (
	EnvelopeTypeTxV0                  EnvelopeType = 0
	EnvelopeTypeScp                    EnvelopeType = 1
	EnvelopeTypeTx                     EnvelopeType = 2
	EnvelopeTypeAuth                   EnvelopeType = 3
	EnvelopeTypeScpValue               EnvelopeType = 4
	EnvelopeTypeTxFeeBump               EnvelopeType = 5
	EnvelopeTypeOpId                    EnvelopeType = 6
	EnvelopeTypePoolRevokeOpId         EnvelopeType = 7
	EnvelopeTypeContractId              EnvelopeType = 8
	EnvelopeTypeSorobanAuthorization   EnvelopeType = 9
)

// HashIdPreimageOperationId is the preimage used to derive deterministic ids for operations that
// create new ledger entries (e.g. CreateAccount's resulting account, pool creation).
type HashIdPreimageOperationId struct {
	SourceAccount AccountId
	SeqNum        SequenceNumber
	OpNum         Uint32
}

func (p HashIdPreimageOperationId) EncodeTo(e *Encoder) error {
	if err := p.SourceAccount.EncodeTo(e); err != nil {
		return err
	}
	if err := p.SeqNum.EncodeTo(e); err != nil {
		return err
	}
	return p.OpNum.EncodeTo(e)
}

func (p *HashIdPreimageOperationId) DecodeFrom(d *Decoder) error {
	if err := p.SourceAccount.DecodeFrom(d); err != nil {
		return err
	}
	if err := p.SeqNum.DecodeFrom(d); err != nil {
		return err
	}
	return p.OpNum.DecodeFrom(d)
}

// HashIdPreimageContractId is the preimage hashed (with the network id) to derive a newly
// deployed contract's id from its ContractIdPreimage.
type HashIdPreimageContractId struct {
	NetworkId          Hash
	ContractIdPreimage ContractIdPreimage
}

func (p HashIdPreimageContractId) EncodeTo(e *Encoder) error {
	if err := p.NetworkId.EncodeTo(e); err != nil {
		return err
	}
	return p.ContractIdPreimage.EncodeTo(e)
}

func (p *HashIdPreimageContractId) DecodeFrom(d *Decoder) error {
	if err := p.NetworkId.DecodeFrom(d); err != nil {
		return err
	}
	return p.ContractIdPreimage.DecodeFrom(d)
}

// HashIdPreimageSorobanAuthorization is the preimage a SorobanAddressCredentials signature is
// computed over: the network id, the nonce and expiration ledger carried in the credentials, and
// the authorized invocation tree itself (soroban/auth.go, grounded on the teacher's
// BuildAuthorizationPayload / SignAuthEntry).
type HashIdPreimageSorobanAuthorization struct {
	NetworkId                 Hash
	Nonce                     Int64
	SignatureExpirationLedger Uint32
	Invocation                SorobanAuthorizedInvocation
}

func (p HashIdPreimageSorobanAuthorization) EncodeTo(e *Encoder) error {
	if err := p.NetworkId.EncodeTo(e); err != nil {
		return err
	}
	if err := p.Nonce.EncodeTo(e); err != nil {
		return err
	}
	if err := p.SignatureExpirationLedger.EncodeTo(e); err != nil {
		return err
	}
	return p.Invocation.EncodeTo(e)
}

func (p *HashIdPreimageSorobanAuthorization) DecodeFrom(d *Decoder) error {
	if err := p.NetworkId.DecodeFrom(d); err != nil {
		return err
	}
	if err := p.Nonce.DecodeFrom(d); err != nil {
		return err
	}
	if err := p.SignatureExpirationLedger.DecodeFrom(d); err != nil {
		return err
	}
	return p.Invocation.DecodeFrom(d)
}

// HashIdPreimage is the union over every kind of value the network hashes to derive an id or a
// signature base; only the operation-id, contract-id and soroban-authorization arms are modeled
// here (Tx signature base lives in transaction_xdr.go's TransactionSignaturePayload instead).
type HashIdPreimage struct {
	Type                 EnvelopeType
	OperationId          *HashIdPreimageOperationId
	ContractId            *HashIdPreimageContractId
	SorobanAuthorization *HashIdPreimageSorobanAuthorization
}

func (p HashIdPreimage) EncodeTo(e *Encoder) error {
	e.EncodeInt32(int32(p.Type))
	switch p.Type {
	case EnvelopeTypeOpId:
		return p.OperationId.EncodeTo(e)
	case EnvelopeTypeContractId:
		return p.ContractId.EncodeTo(e)
	case EnvelopeTypeSorobanAuthorization:
		return p.SorobanAuthorization.EncodeTo(e)
	default:
		return errInvalidDiscriminant("HashIdPreimage", int64(p.Type))
	}
}

func (p *HashIdPreimage) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("HashIdPreimage.Type")
	if err != nil {
		return err
	}
	p.Type = EnvelopeType(t)
	switch p.Type {
	case EnvelopeTypeOpId:
		var v HashIdPreimageOperationId
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		p.OperationId = &v
		return nil
	case EnvelopeTypeContractId:
		var v HashIdPreimageContractId
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		p.ContractId = &v
		return nil
	case EnvelopeTypeSorobanAuthorization:
		var v HashIdPreimageSorobanAuthorization
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		p.SorobanAuthorization = &v
		return nil
	default:
		return errInvalidDiscriminant("HashIdPreimage", int64(t))
	}
}

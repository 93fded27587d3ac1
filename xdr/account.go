package xdr

// PublicKeyType discriminates the PublicKey union. Ed25519 is the only arm the network defines.
type PublicKeyType int32

const (
	PublicKeyTypeEd25519 PublicKeyType = 0
)

// AccountId is a PublicKey union, always Ed25519 on today's network.
type AccountId struct {
	Type    PublicKeyType
	Ed25519 *Uint256
}

func (a AccountId) EncodeTo(e *Encoder) error {
	e.EncodeInt32(int32(a.Type))
	switch a.Type {
	case PublicKeyTypeEd25519:
		if a.Ed25519 == nil {
			return errInvalidDiscriminant("AccountId.Ed25519", 0)
		}
		return a.Ed25519.EncodeTo(e)
	default:
		return errInvalidDiscriminant("AccountId", int64(a.Type))
	}
}

func (a *AccountId) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("AccountId.Type")
	if err != nil {
		return err
	}
	a.Type = PublicKeyType(t)
	switch a.Type {
	case PublicKeyTypeEd25519:
		var u Uint256
		if err := u.DecodeFrom(d); err != nil {
			return err
		}
		a.Ed25519 = &u
		return nil
	default:
		return errInvalidDiscriminant("AccountId", int64(t))
	}
}

// Equals reports whether two account ids hold the same Ed25519 key.
func (a AccountId) Equals(other AccountId) bool {
	if a.Type != other.Type || a.Ed25519 == nil || other.Ed25519 == nil {
		return false
	}
	return *a.Ed25519 == *other.Ed25519
}

// CryptoKeyType mirrors PublicKeyType for SignerKey, which additionally supports hashed-tx and
// hashX signer kinds.
type CryptoKeyType int32

const (
	CryptoKeyTypeEd25519      CryptoKeyType = 0
	CryptoKeyTypePreAuthTx    CryptoKeyType = 1
	CryptoKeyTypeHashX        CryptoKeyType = 2
	CryptoKeyTypeMuxedEd25519 CryptoKeyType = 0x100
)

// SignerKey names a potential transaction signer: a raw Ed25519 key, a pre-authorized
// transaction hash, or a hash-preimage (hashX) commitment.
type SignerKey struct {
	Type       CryptoKeyType
	Ed25519    *Uint256
	PreAuthTx  *Hash
	HashX      *Hash
}

func (s SignerKey) EncodeTo(e *Encoder) error {
	e.EncodeInt32(int32(s.Type))
	switch s.Type {
	case CryptoKeyTypeEd25519:
		return s.Ed25519.EncodeTo(e)
	case CryptoKeyTypePreAuthTx:
		return s.PreAuthTx.EncodeTo(e)
	case CryptoKeyTypeHashX:
		return s.HashX.EncodeTo(e)
	default:
		return errInvalidDiscriminant("SignerKey", int64(s.Type))
	}
}

func (s *SignerKey) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("SignerKey.Type")
	if err != nil {
		return err
	}
	s.Type = CryptoKeyType(t)
	switch s.Type {
	case CryptoKeyTypeEd25519:
		var u Uint256
		if err := u.DecodeFrom(d); err != nil {
			return err
		}
		s.Ed25519 = &u
	case CryptoKeyTypePreAuthTx:
		var h Hash
		if err := h.DecodeFrom(d); err != nil {
			return err
		}
		s.PreAuthTx = &h
	case CryptoKeyTypeHashX:
		var h Hash
		if err := h.DecodeFrom(d); err != nil {
			return err
		}
		s.HashX = &h
	default:
		return errInvalidDiscriminant("SignerKey", int64(t))
	}
	return nil
}

// CryptoKeyTypeMuxedEd25519Value is the discriminant for MuxedAccount's muxed arm.
const CryptoKeyTypeMuxedEd25519Value int32 = 0x100

// MuxedAccountMed25519 carries a u64 sub-account id alongside the underlying Ed25519 key.
type MuxedAccountMed25519 struct {
	Id      Uint64
	Ed25519 Uint256
}

func (m MuxedAccountMed25519) EncodeTo(e *Encoder) error {
	if err := m.Id.EncodeTo(e); err != nil {
		return err
	}
	return m.Ed25519.EncodeTo(e)
}

func (m *MuxedAccountMed25519) DecodeFrom(d *Decoder) error {
	if err := m.Id.DecodeFrom(d); err != nil {
		return err
	}
	return m.Ed25519.DecodeFrom(d)
}

// MuxedAccount is either a plain Ed25519 account or a multiplexed (M...) account.
type MuxedAccount struct {
	Type    PublicKeyType
	Ed25519 *Uint256
	Med25519 *MuxedAccountMed25519
}

func (m MuxedAccount) EncodeTo(e *Encoder) error {
	e.EncodeInt32(int32(m.Type))
	switch int32(m.Type) {
	case int32(PublicKeyTypeEd25519):
		return m.Ed25519.EncodeTo(e)
	case CryptoKeyTypeMuxedEd25519Value:
		return m.Med25519.EncodeTo(e)
	default:
		return errInvalidDiscriminant("MuxedAccount", int64(m.Type))
	}
}

func (m *MuxedAccount) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("MuxedAccount.Type")
	if err != nil {
		return err
	}
	m.Type = PublicKeyType(t)
	switch int32(m.Type) {
	case int32(PublicKeyTypeEd25519):
		var u Uint256
		if err := u.DecodeFrom(d); err != nil {
			return err
		}
		m.Ed25519 = &u
	case CryptoKeyTypeMuxedEd25519Value:
		var med MuxedAccountMed25519
		if err := med.DecodeFrom(d); err != nil {
			return err
		}
		m.Med25519 = &med
	default:
		return errInvalidDiscriminant("MuxedAccount", int64(t))
	}
	return nil
}

// ToAccountId strips any muxing, returning the underlying account id.
func (m MuxedAccount) ToAccountId() AccountId {
	if m.Med25519 != nil {
		u := m.Med25519.Ed25519
		return AccountId{Type: PublicKeyTypeEd25519, Ed25519: &u}
	}
	return AccountId{Type: PublicKeyTypeEd25519, Ed25519: m.Ed25519}
}

package xdr

// SorobanCredentialsType discriminates SorobanCredentials.
type SorobanCredentialsType int32

const (
	SorobanCredentialsTypeSourceAccount SorobanCredentialsType = 0
	SorobanCredentialsTypeAddress       SorobanCredentialsType = 1
)

// SorobanAddressCredentials carries the signing address, a replay-protected nonce, the ledger
// sequence after which the signature expires, and the signature itself (an ScVal so different
// signature schemes can be represented uniformly, per spec §4.6).
type SorobanAddressCredentials struct {
	Address                ScAddress
	Nonce                  Int64
	SignatureExpirationLedger Uint32
	Signature              ScVal
}

func (c SorobanAddressCredentials) EncodeTo(e *Encoder) error {
	if err := c.Address.EncodeTo(e); err != nil {
		return err
	}
	if err := c.Nonce.EncodeTo(e); err != nil {
		return err
	}
	if err := c.SignatureExpirationLedger.EncodeTo(e); err != nil {
		return err
	}
	return c.Signature.EncodeTo(e)
}

func (c *SorobanAddressCredentials) DecodeFrom(d *Decoder) error {
	if err := c.Address.DecodeFrom(d); err != nil {
		return err
	}
	if err := c.Nonce.DecodeFrom(d); err != nil {
		return err
	}
	if err := c.SignatureExpirationLedger.DecodeFrom(d); err != nil {
		return err
	}
	return c.Signature.DecodeFrom(d)
}

// SorobanCredentials is the union of "the invoking transaction's own source account implicitly
// authorizes" (SourceAccount) vs. an explicit signed address authorization.
type SorobanCredentials struct {
	Type    SorobanCredentialsType
	Address *SorobanAddressCredentials
}

func (c SorobanCredentials) EncodeTo(e *Encoder) error {
	e.EncodeInt32(int32(c.Type))
	switch c.Type {
	case SorobanCredentialsTypeSourceAccount:
		return nil
	case SorobanCredentialsTypeAddress:
		return c.Address.EncodeTo(e)
	default:
		return errInvalidDiscriminant("SorobanCredentials", int64(c.Type))
	}
}

func (c *SorobanCredentials) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("SorobanCredentials.Type")
	if err != nil {
		return err
	}
	c.Type = SorobanCredentialsType(t)
	switch c.Type {
	case SorobanCredentialsTypeSourceAccount:
		return nil
	case SorobanCredentialsTypeAddress:
		var ac SorobanAddressCredentials
		if err := ac.DecodeFrom(d); err != nil {
			return err
		}
		c.Address = &ac
		return nil
	default:
		return errInvalidDiscriminant("SorobanCredentials", int64(t))
	}
}

// SorobanAuthorizedFunctionType discriminates SorobanAuthorizedFunction.
type SorobanAuthorizedFunctionType int32

const (
	SorobanAuthorizedFunctionTypeContractFn       SorobanAuthorizedFunctionType = 0
	SorobanAuthorizedFunctionTypeCreateContractHostFn SorobanAuthorizedFunctionType = 1
	SorobanAuthorizedFunctionTypeCreateContractV2HostFn SorobanAuthorizedFunctionType = 2
)

// SorobanAuthorizedFunction is either a contract invocation or a contract-creation host function
// that some node in the authorization tree must authorize.
type SorobanAuthorizedFunction struct {
	Type                  SorobanAuthorizedFunctionType
	ContractFn            *InvokeContractArgs
	CreateContractHostFn  *CreateContractArgs
	CreateContractV2HostFn *CreateContractArgsV2
}

func (f SorobanAuthorizedFunction) EncodeTo(e *Encoder) error {
	e.EncodeInt32(int32(f.Type))
	switch f.Type {
	case SorobanAuthorizedFunctionTypeContractFn:
		return f.ContractFn.EncodeTo(e)
	case SorobanAuthorizedFunctionTypeCreateContractHostFn:
		return f.CreateContractHostFn.EncodeTo(e)
	case SorobanAuthorizedFunctionTypeCreateContractV2HostFn:
		return f.CreateContractV2HostFn.EncodeTo(e)
	default:
		return errInvalidDiscriminant("SorobanAuthorizedFunction", int64(f.Type))
	}
}

func (f *SorobanAuthorizedFunction) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("SorobanAuthorizedFunction.Type")
	if err != nil {
		return err
	}
	f.Type = SorobanAuthorizedFunctionType(t)
	switch f.Type {
	case SorobanAuthorizedFunctionTypeContractFn:
		var ic InvokeContractArgs
		if err := ic.DecodeFrom(d); err != nil {
			return err
		}
		f.ContractFn = &ic
		return nil
	case SorobanAuthorizedFunctionTypeCreateContractHostFn:
		var cc CreateContractArgs
		if err := cc.DecodeFrom(d); err != nil {
			return err
		}
		f.CreateContractHostFn = &cc
		return nil
	case SorobanAuthorizedFunctionTypeCreateContractV2HostFn:
		var cc CreateContractArgsV2
		if err := cc.DecodeFrom(d); err != nil {
			return err
		}
		f.CreateContractV2HostFn = &cc
		return nil
	default:
		return errInvalidDiscriminant("SorobanAuthorizedFunction", int64(t))
	}
}

// SorobanAuthorizedInvocation is a node in the authorization tree: the function it authorizes,
// plus the sub-invocations it in turn makes (and which must be authorized transitively).
type SorobanAuthorizedInvocation struct {
	Function    SorobanAuthorizedFunction
	SubInvocations []SorobanAuthorizedInvocation
}

func (i SorobanAuthorizedInvocation) EncodeTo(e *Encoder) error {
	if err := i.Function.EncodeTo(e); err != nil {
		return err
	}
	e.EncodeUint32(uint32(len(i.SubInvocations)))
	for idx := range i.SubInvocations {
		if err := i.SubInvocations[idx].EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (i *SorobanAuthorizedInvocation) DecodeFrom(d *Decoder) error {
	if err := i.Function.DecodeFrom(d); err != nil {
		return err
	}
	n, err := d.DecodeUint32("SorobanAuthorizedInvocation.SubInvocations.len")
	if err != nil {
		return err
	}
	i.SubInvocations = make([]SorobanAuthorizedInvocation, n)
	for idx := range i.SubInvocations {
		if err := i.SubInvocations[idx].DecodeFrom(d); err != nil {
			return err
		}
	}
	return nil
}

// SorobanAuthorizationEntry pairs a credentials set with the root of the invocation tree it
// authorizes. Its signature (inside Credentials, when Type is Address) covers the hash of
// HashIdPreimageSorobanAuthorization built from this entry's Nonce, SignatureExpirationLedger,
// and RootInvocation — see soroban/auth.go.
type SorobanAuthorizationEntry struct {
	Credentials     SorobanCredentials
	RootInvocation SorobanAuthorizedInvocation
}

func (a SorobanAuthorizationEntry) EncodeTo(e *Encoder) error {
	if err := a.Credentials.EncodeTo(e); err != nil {
		return err
	}
	return a.RootInvocation.EncodeTo(e)
}

func (a *SorobanAuthorizationEntry) DecodeFrom(d *Decoder) error {
	if err := a.Credentials.DecodeFrom(d); err != nil {
		return err
	}
	return a.RootInvocation.DecodeFrom(d)
}

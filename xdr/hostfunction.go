package xdr

// ContractIdPreimageType discriminates ContractIdPreimage.
type ContractIdPreimageType int32

const (
	ContractIdPreimageTypeFromAddress ContractIdPreimageType = 0
	ContractIdPreimageTypeFromAsset   ContractIdPreimageType = 1
)

// ContractIdPreimageFromAddress names the deployer address and a user-chosen salt; hashing this
// together with the network id yields the deployed contract's id (soroban/contract.go).
type ContractIdPreimageFromAddress struct {
	Address ScAddress
	Salt    Uint256
}

// ContractIdPreimage is the union fed into HashIdPreimageContractId.
type ContractIdPreimage struct {
	Type        ContractIdPreimageType
	FromAddress *ContractIdPreimageFromAddress
	FromAsset   *Asset
}

func (c ContractIdPreimage) EncodeTo(e *Encoder) error {
	e.EncodeInt32(int32(c.Type))
	switch c.Type {
	case ContractIdPreimageTypeFromAddress:
		if err := c.FromAddress.Address.EncodeTo(e); err != nil {
			return err
		}
		return c.FromAddress.Salt.EncodeTo(e)
	case ContractIdPreimageTypeFromAsset:
		return c.FromAsset.EncodeTo(e)
	default:
		return errInvalidDiscriminant("ContractIdPreimage", int64(c.Type))
	}
}

func (c *ContractIdPreimage) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("ContractIdPreimage.Type")
	if err != nil {
		return err
	}
	c.Type = ContractIdPreimageType(t)
	switch c.Type {
	case ContractIdPreimageTypeFromAddress:
		var fa ContractIdPreimageFromAddress
		if err := fa.Address.DecodeFrom(d); err != nil {
			return err
		}
		if err := fa.Salt.DecodeFrom(d); err != nil {
			return err
		}
		c.FromAddress = &fa
		return nil
	case ContractIdPreimageTypeFromAsset:
		var a Asset
		if err := a.DecodeFrom(d); err != nil {
			return err
		}
		c.FromAsset = &a
		return nil
	default:
		return errInvalidDiscriminant("ContractIdPreimage", int64(t))
	}
}

// CreateContractArgs is the legacy (pre-constructor) contract creation argument set.
type CreateContractArgs struct {
	ContractIdPreimage ContractIdPreimage
	Executable          ContractExecutable
}

func (c CreateContractArgs) EncodeTo(e *Encoder) error {
	if err := c.ContractIdPreimage.EncodeTo(e); err != nil {
		return err
	}
	return c.Executable.EncodeTo(e)
}

func (c *CreateContractArgs) DecodeFrom(d *Decoder) error {
	if err := c.ContractIdPreimage.DecodeFrom(d); err != nil {
		return err
	}
	return c.Executable.DecodeFrom(d)
}

// CreateContractArgsV2 additionally carries constructor arguments, used when the deployed Wasm
// declares a `__constructor` function.
type CreateContractArgsV2 struct {
	ContractIdPreimage ContractIdPreimage
	Executable          ContractExecutable
	ConstructorArgs     []ScVal
}

func (c CreateContractArgsV2) EncodeTo(e *Encoder) error {
	if err := c.ContractIdPreimage.EncodeTo(e); err != nil {
		return err
	}
	if err := c.Executable.EncodeTo(e); err != nil {
		return err
	}
	e.EncodeUint32(uint32(len(c.ConstructorArgs)))
	for i := range c.ConstructorArgs {
		if err := c.ConstructorArgs[i].EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (c *CreateContractArgsV2) DecodeFrom(d *Decoder) error {
	if err := c.ContractIdPreimage.DecodeFrom(d); err != nil {
		return err
	}
	if err := c.Executable.DecodeFrom(d); err != nil {
		return err
	}
	n, err := d.DecodeUint32("CreateContractArgsV2.ConstructorArgs.len")
	if err != nil {
		return err
	}
	c.ConstructorArgs = make([]ScVal, n)
	for i := range c.ConstructorArgs {
		if err := c.ConstructorArgs[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	return nil
}

// InvokeContractArgs names an already-deployed contract, a function symbol, and its arguments.
type InvokeContractArgs struct {
	ContractAddress ScAddress
	FunctionName    ScSymbol
	Args            []ScVal
}

func (a InvokeContractArgs) EncodeTo(e *Encoder) error {
	if err := a.ContractAddress.EncodeTo(e); err != nil {
		return err
	}
	sym := a.FunctionName
	if err := (&sym).EncodeTo(e); err != nil {
		return err
	}
	e.EncodeUint32(uint32(len(a.Args)))
	for i := range a.Args {
		if err := a.Args[i].EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (a *InvokeContractArgs) DecodeFrom(d *Decoder) error {
	if err := a.ContractAddress.DecodeFrom(d); err != nil {
		return err
	}
	if err := (&a.FunctionName).DecodeFrom(d); err != nil {
		return err
	}
	n, err := d.DecodeUint32("InvokeContractArgs.Args.len")
	if err != nil {
		return err
	}
	a.Args = make([]ScVal, n)
	for i := range a.Args {
		if err := a.Args[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	return nil
}

// HostFunctionType discriminates the HostFunction union.
type HostFunctionType int32

const (
	HostFunctionTypeInvokeContract     HostFunctionType = 0
	HostFunctionTypeCreateContract      HostFunctionType = 1
	HostFunctionTypeUploadContractWasm  HostFunctionType = 2
	HostFunctionTypeCreateContractV2    HostFunctionType = 3
)

// HostFunction is the single operand of an InvokeHostFunction operation.
type HostFunction struct {
	Type              HostFunctionType
	InvokeContract    *InvokeContractArgs
	CreateContract     *CreateContractArgs
	Wasm               *[]byte
	CreateContractV2   *CreateContractArgsV2
}

func (h HostFunction) EncodeTo(e *Encoder) error {
	e.EncodeInt32(int32(h.Type))
	switch h.Type {
	case HostFunctionTypeInvokeContract:
		return h.InvokeContract.EncodeTo(e)
	case HostFunctionTypeCreateContract:
		return h.CreateContract.EncodeTo(e)
	case HostFunctionTypeUploadContractWasm:
		if h.Wasm == nil {
			return errInvalidLength("HostFunction.Wasm", 0, 0)
		}
		e.EncodeVarOpaque(*h.Wasm)
		return nil
	case HostFunctionTypeCreateContractV2:
		return h.CreateContractV2.EncodeTo(e)
	default:
		return errInvalidDiscriminant("HostFunction", int64(h.Type))
	}
}

func (h *HostFunction) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("HostFunction.Type")
	if err != nil {
		return err
	}
	h.Type = HostFunctionType(t)
	switch h.Type {
	case HostFunctionTypeInvokeContract:
		var ic InvokeContractArgs
		if err := ic.DecodeFrom(d); err != nil {
			return err
		}
		h.InvokeContract = &ic
		return nil
	case HostFunctionTypeCreateContract:
		var cc CreateContractArgs
		if err := cc.DecodeFrom(d); err != nil {
			return err
		}
		h.CreateContract = &cc
		return nil
	case HostFunctionTypeUploadContractWasm:
		b, err := d.DecodeVarOpaque("HostFunction.Wasm")
		if err != nil {
			return err
		}
		h.Wasm = &b
		return nil
	case HostFunctionTypeCreateContractV2:
		var cc CreateContractArgsV2
		if err := cc.DecodeFrom(d); err != nil {
			return err
		}
		h.CreateContractV2 = &cc
		return nil
	default:
		return errInvalidDiscriminant("HostFunction", int64(t))
	}
}

package xdr

// ScValType discriminates the ScVal union. Numeric values match the Soroban protocol schema.
type ScValType int32

const (
	ScValTypeScvBool                      ScValType = 0
	ScValTypeScvVoid                      ScValType = 1
	ScValTypeScvError                     ScValType = 2
	ScValTypeScvU32                       ScValType = 3
	ScValTypeScvI32                       ScValType = 4
	ScValTypeScvU64                       ScValType = 5
	ScValTypeScvI64                       ScValType = 6
	ScValTypeScvTimepoint                 ScValType = 7
	ScValTypeScvDuration                  ScValType = 8
	ScValTypeScvU128                      ScValType = 9
	ScValTypeScvI128                      ScValType = 10
	ScValTypeScvU256                      ScValType = 11
	ScValTypeScvI256                      ScValType = 12
	ScValTypeScvBytes                     ScValType = 13
	ScValTypeScvString                    ScValType = 14
	ScValTypeScvSymbol                    ScValType = 15
	ScValTypeScvVec                       ScValType = 16
	ScValTypeScvMap                       ScValType = 17
	ScValTypeScvAddress                   ScValType = 18
	ScValTypeScvContractInstance          ScValType = 19
	ScValTypeScvLedgerKeyContractInstance ScValType = 20
	ScValTypeScvLedgerKeyNonce            ScValType = 21
)

type ScBytes []byte
type ScString string
type ScSymbol string

type UInt128Parts struct {
	Hi Uint64
	Lo Uint64
}

func (p UInt128Parts) EncodeTo(e *Encoder) error {
	if err := p.Hi.EncodeTo(e); err != nil {
		return err
	}
	return p.Lo.EncodeTo(e)
}
func (p *UInt128Parts) DecodeFrom(d *Decoder) error {
	if err := p.Hi.DecodeFrom(d); err != nil {
		return err
	}
	return p.Lo.DecodeFrom(d)
}

type Int128Parts struct {
	Hi Int64
	Lo Uint64
}

func (p Int128Parts) EncodeTo(e *Encoder) error {
	if err := p.Hi.EncodeTo(e); err != nil {
		return err
	}
	return p.Lo.EncodeTo(e)
}
func (p *Int128Parts) DecodeFrom(d *Decoder) error {
	if err := p.Hi.DecodeFrom(d); err != nil {
		return err
	}
	return p.Lo.DecodeFrom(d)
}

type UInt256Parts struct {
	HiHi Uint64
	HiLo Uint64
	LoHi Uint64
	LoLo Uint64
}

func (p UInt256Parts) EncodeTo(e *Encoder) error {
	for _, f := range []Uint64{p.HiHi, p.HiLo, p.LoHi, p.LoLo} {
		if err := f.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}
func (p *UInt256Parts) DecodeFrom(d *Decoder) error {
	fields := []*Uint64{&p.HiHi, &p.HiLo, &p.LoHi, &p.LoLo}
	for _, f := range fields {
		if err := f.DecodeFrom(d); err != nil {
			return err
		}
	}
	return nil
}

type Int256Parts struct {
	HiHi Int64
	HiLo Uint64
	LoHi Uint64
	LoLo Uint64
}

func (p Int256Parts) EncodeTo(e *Encoder) error {
	if err := p.HiHi.EncodeTo(e); err != nil {
		return err
	}
	for _, f := range []Uint64{p.HiLo, p.LoHi, p.LoLo} {
		if err := f.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}
func (p *Int256Parts) DecodeFrom(d *Decoder) error {
	if err := p.HiHi.DecodeFrom(d); err != nil {
		return err
	}
	for _, f := range []*Uint64{&p.HiLo, &p.LoHi, &p.LoLo} {
		if err := f.DecodeFrom(d); err != nil {
			return err
		}
	}
	return nil
}

// ScErrorType discriminates ScError; each arm carries a single Uint32 payload (a contract error
// code, or one of the host's reserved error-code enums).
type ScErrorType int32

const (
	ScErrorTypeSceContract ScErrorType = 0
	ScErrorTypeSceWasmVm   ScErrorType = 1
	ScErrorTypeSceContext  ScErrorType = 2
	ScErrorTypeSceStorage  ScErrorType = 3
	ScErrorTypeSceObject   ScErrorType = 4
	ScErrorTypeSceCrypto   ScErrorType = 5
	ScErrorTypeSceEvents   ScErrorType = 6
	ScErrorTypeSceBudget   ScErrorType = 7
	ScErrorTypeSceValue    ScErrorType = 8
	ScErrorTypeSceAuth     ScErrorType = 9
)

type ScError struct {
	Type ScErrorType
	Code Uint32
}

func (e ScError) EncodeTo(enc *Encoder) error {
	enc.EncodeInt32(int32(e.Type))
	return e.Code.EncodeTo(enc)
}
func (e *ScError) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("ScError.Type")
	if err != nil {
		return err
	}
	e.Type = ScErrorType(t)
	return e.Code.DecodeFrom(d)
}

// ScAddressType discriminates ScAddress.
type ScAddressType int32

const (
	ScAddressTypeScAddressTypeAccount  ScAddressType = 0
	ScAddressTypeScAddressTypeContract ScAddressType = 1
)

// ScAddress names either a classic account or a Soroban contract.
type ScAddress struct {
	Type       ScAddressType
	AccountId  *AccountId
	ContractId *Hash
}

func (a ScAddress) EncodeTo(e *Encoder) error {
	e.EncodeInt32(int32(a.Type))
	switch a.Type {
	case ScAddressTypeScAddressTypeAccount:
		return a.AccountId.EncodeTo(e)
	case ScAddressTypeScAddressTypeContract:
		return a.ContractId.EncodeTo(e)
	default:
		return errInvalidDiscriminant("ScAddress", int64(a.Type))
	}
}

func (a *ScAddress) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("ScAddress.Type")
	if err != nil {
		return err
	}
	a.Type = ScAddressType(t)
	switch a.Type {
	case ScAddressTypeScAddressTypeAccount:
		var acc AccountId
		if err := acc.DecodeFrom(d); err != nil {
			return err
		}
		a.AccountId = &acc
	case ScAddressTypeScAddressTypeContract:
		var h Hash
		if err := h.DecodeFrom(d); err != nil {
			return err
		}
		a.ContractId = &h
	default:
		return errInvalidDiscriminant("ScAddress", int64(t))
	}
	return nil
}

// ScVec is an ordered list of ScVal.
type ScVec []ScVal

func (v ScVec) EncodeTo(e *Encoder) error {
	e.EncodeUint32(uint32(len(v)))
	for i := range v {
		if err := v[i].EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (v *ScVec) DecodeFrom(d *Decoder) error {
	n, err := d.DecodeUint32("ScVec.len")
	if err != nil {
		return err
	}
	out := make(ScVec, n)
	for i := range out {
		if err := out[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	*v = out
	return nil
}

// ScMapEntry is a single key/value pair of an ScMap.
type ScMapEntry struct {
	Key ScVal
	Val ScVal
}

// ScMap is a list of key/value pairs. Per spec §4.1/§8, entries MUST be written in canonical
// key order; ScMap.EncodeTo sorts a copy rather than trusting caller order, since that is the
// only way to guarantee hash-stable output regardless of how the map was built.
type ScMap []ScMapEntry

func (m ScMap) EncodeTo(e *Encoder) error {
	sorted := make(ScMap, len(m))
	copy(sorted, m)
	sortScMapEntries(sorted)
	e.EncodeUint32(uint32(len(sorted)))
	for i := range sorted {
		if err := sorted[i].Key.EncodeTo(e); err != nil {
			return err
		}
		if err := sorted[i].Val.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (m *ScMap) DecodeFrom(d *Decoder) error {
	n, err := d.DecodeUint32("ScMap.len")
	if err != nil {
		return err
	}
	out := make(ScMap, n)
	for i := range out {
		if err := out[i].Key.DecodeFrom(d); err != nil {
			return err
		}
		if err := out[i].Val.DecodeFrom(d); err != nil {
			return err
		}
	}
	*m = out
	return nil
}

// ContractExecutableType discriminates ContractExecutable.
type ContractExecutableType int32

const (
	ContractExecutableTypeWasm         ContractExecutableType = 0
	ContractExecutableTypeStellarAsset ContractExecutableType = 1
)

// ContractExecutable names the code a contract instance runs: an uploaded Wasm blob, or the
// built-in Stellar Asset Contract.
type ContractExecutable struct {
	Type     ContractExecutableType
	WasmHash *Hash
}

func (c ContractExecutable) EncodeTo(e *Encoder) error {
	e.EncodeInt32(int32(c.Type))
	switch c.Type {
	case ContractExecutableTypeWasm:
		return c.WasmHash.EncodeTo(e)
	case ContractExecutableTypeStellarAsset:
		return nil
	default:
		return errInvalidDiscriminant("ContractExecutable", int64(c.Type))
	}
}

func (c *ContractExecutable) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("ContractExecutable.Type")
	if err != nil {
		return err
	}
	c.Type = ContractExecutableType(t)
	switch c.Type {
	case ContractExecutableTypeWasm:
		var h Hash
		if err := h.DecodeFrom(d); err != nil {
			return err
		}
		c.WasmHash = &h
	case ContractExecutableTypeStellarAsset:
	default:
		return errInvalidDiscriminant("ContractExecutable", int64(t))
	}
	return nil
}

// ScContractInstance is the on-chain record of a deployed contract: its executable plus its
// persistent instance-storage map.
type ScContractInstance struct {
	Executable ContractExecutable
	Storage    *ScMap
}

func (c ScContractInstance) EncodeTo(e *Encoder) error {
	if err := c.Executable.EncodeTo(e); err != nil {
		return err
	}
	e.EncodeOptionalPresent(c.Storage != nil)
	if c.Storage != nil {
		return c.Storage.EncodeTo(e)
	}
	return nil
}

func (c *ScContractInstance) DecodeFrom(d *Decoder) error {
	if err := c.Executable.DecodeFrom(d); err != nil {
		return err
	}
	present, err := d.DecodeBool("ScContractInstance.Storage?")
	if err != nil {
		return err
	}
	if present {
		var m ScMap
		if err := m.DecodeFrom(d); err != nil {
			return err
		}
		c.Storage = &m
	}
	return nil
}

// ScVal is the Soroban value algebraic type: the dynamically-typed payload every contract
// argument, return value, and storage entry is expressed in.
type ScVal struct {
	Type ScValType

	B    *bool
	Err  *ScError
	U32  *Uint32
	I32  *Int32
	U64  *Uint64
	I64  *Int64
	Tp   *TimePoint
	Dur  *Duration
	U128 *UInt128Parts
	I128 *Int128Parts
	U256 *UInt256Parts
	I256 *Int256Parts
	Bytes *ScBytes
	Str   *ScString
	Sym   *ScSymbol
	Vec   *ScVec
	Map   *ScMap
	Address *ScAddress
	Instance *ScContractInstance
	NonceKey *Int64
}

func (v ScVal) EncodeTo(e *Encoder) error {
	e.EncodeInt32(int32(v.Type))
	switch v.Type {
	case ScValTypeScvBool:
		e.EncodeBool(*v.B)
		return nil
	case ScValTypeScvVoid:
		return nil
	case ScValTypeScvError:
		return v.Err.EncodeTo(e)
	case ScValTypeScvU32:
		return v.U32.EncodeTo(e)
	case ScValTypeScvI32:
		return v.I32.EncodeTo(e)
	case ScValTypeScvU64:
		return v.U64.EncodeTo(e)
	case ScValTypeScvI64:
		return v.I64.EncodeTo(e)
	case ScValTypeScvTimepoint:
		return v.Tp.EncodeTo(e)
	case ScValTypeScvDuration:
		return v.Dur.EncodeTo(e)
	case ScValTypeScvU128:
		return v.U128.EncodeTo(e)
	case ScValTypeScvI128:
		return v.I128.EncodeTo(e)
	case ScValTypeScvU256:
		return v.U256.EncodeTo(e)
	case ScValTypeScvI256:
		return v.I256.EncodeTo(e)
	case ScValTypeScvBytes:
		e.EncodeVarOpaque(*v.Bytes)
		return nil
	case ScValTypeScvString:
		e.EncodeString(string(*v.Str))
		return nil
	case ScValTypeScvSymbol:
		if err := validateSymbol(string(*v.Sym)); err != nil {
			return err
		}
		e.EncodeString(string(*v.Sym))
		return nil
	case ScValTypeScvVec:
		if v.Vec == nil {
			e.EncodeOptionalPresent(false)
			return nil
		}
		e.EncodeOptionalPresent(true)
		return v.Vec.EncodeTo(e)
	case ScValTypeScvMap:
		if v.Map == nil {
			e.EncodeOptionalPresent(false)
			return nil
		}
		e.EncodeOptionalPresent(true)
		return v.Map.EncodeTo(e)
	case ScValTypeScvAddress:
		return v.Address.EncodeTo(e)
	case ScValTypeScvContractInstance:
		return v.Instance.EncodeTo(e)
	case ScValTypeScvLedgerKeyContractInstance:
		return nil
	case ScValTypeScvLedgerKeyNonce:
		return v.NonceKey.EncodeTo(e)
	default:
		return errInvalidDiscriminant("ScVal", int64(v.Type))
	}
}

func (v *ScVal) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32("ScVal.Type")
	if err != nil {
		return err
	}
	v.Type = ScValType(t)
	switch v.Type {
	case ScValTypeScvBool:
		b, err := d.DecodeBool("ScVal.B")
		if err != nil {
			return err
		}
		v.B = &b
	case ScValTypeScvVoid:
	case ScValTypeScvError:
		var x ScError
		if err := x.DecodeFrom(d); err != nil {
			return err
		}
		v.Err = &x
	case ScValTypeScvU32:
		var x Uint32
		if err := x.DecodeFrom(d); err != nil {
			return err
		}
		v.U32 = &x
	case ScValTypeScvI32:
		var x Int32
		if err := x.DecodeFrom(d); err != nil {
			return err
		}
		v.I32 = &x
	case ScValTypeScvU64:
		var x Uint64
		if err := x.DecodeFrom(d); err != nil {
			return err
		}
		v.U64 = &x
	case ScValTypeScvI64:
		var x Int64
		if err := x.DecodeFrom(d); err != nil {
			return err
		}
		v.I64 = &x
	case ScValTypeScvTimepoint:
		var x TimePoint
		if err := x.DecodeFrom(d); err != nil {
			return err
		}
		v.Tp = &x
	case ScValTypeScvDuration:
		var x Duration
		if err := x.DecodeFrom(d); err != nil {
			return err
		}
		v.Dur = &x
	case ScValTypeScvU128:
		var x UInt128Parts
		if err := x.DecodeFrom(d); err != nil {
			return err
		}
		v.U128 = &x
	case ScValTypeScvI128:
		var x Int128Parts
		if err := x.DecodeFrom(d); err != nil {
			return err
		}
		v.I128 = &x
	case ScValTypeScvU256:
		var x UInt256Parts
		if err := x.DecodeFrom(d); err != nil {
			return err
		}
		v.U256 = &x
	case ScValTypeScvI256:
		var x Int256Parts
		if err := x.DecodeFrom(d); err != nil {
			return err
		}
		v.I256 = &x
	case ScValTypeScvBytes:
		b, err := d.DecodeVarOpaque("ScVal.Bytes")
		if err != nil {
			return err
		}
		sb := ScBytes(b)
		v.Bytes = &sb
	case ScValTypeScvString:
		s, err := d.DecodeString("ScVal.Str")
		if err != nil {
			return err
		}
		ss := ScString(s)
		v.Str = &ss
	case ScValTypeScvSymbol:
		s, err := d.DecodeString("ScVal.Sym")
		if err != nil {
			return err
		}
		if err := validateSymbol(s); err != nil {
			return err
		}
		sym := ScSymbol(s)
		v.Sym = &sym
	case ScValTypeScvVec:
		present, err := d.DecodeBool("ScVal.Vec?")
		if err != nil {
			return err
		}
		if present {
			var vec ScVec
			if err := vec.DecodeFrom(d); err != nil {
				return err
			}
			v.Vec = &vec
		}
	case ScValTypeScvMap:
		present, err := d.DecodeBool("ScVal.Map?")
		if err != nil {
			return err
		}
		if present {
			var m ScMap
			if err := m.DecodeFrom(d); err != nil {
				return err
			}
			v.Map = &m
		}
	case ScValTypeScvAddress:
		var a ScAddress
		if err := a.DecodeFrom(d); err != nil {
			return err
		}
		v.Address = &a
	case ScValTypeScvContractInstance:
		var inst ScContractInstance
		if err := inst.DecodeFrom(d); err != nil {
			return err
		}
		v.Instance = &inst
	case ScValTypeScvLedgerKeyContractInstance:
	case ScValTypeScvLedgerKeyNonce:
		var x Int64
		if err := x.DecodeFrom(d); err != nil {
			return err
		}
		v.NonceKey = &x
	default:
		return errInvalidDiscriminant("ScVal", int64(t))
	}
	return nil
}

// GetMap reports whether v is a populated ScvMap and returns it.
func (v ScVal) GetMap() (*ScMap, bool) {
	if v.Type != ScValTypeScvMap || v.Map == nil {
		return nil, false
	}
	return v.Map, true
}

// GetSym reports whether v is an ScvSymbol and returns its value.
func (v ScVal) GetSym() (ScSymbol, bool) {
	if v.Type != ScValTypeScvSymbol || v.Sym == nil {
		return "", false
	}
	return *v.Sym, true
}

// GetStr reports whether v is an ScvString and returns its value.
func (v ScVal) GetStr() (ScString, bool) {
	if v.Type != ScValTypeScvString || v.Str == nil {
		return "", false
	}
	return *v.Str, true
}

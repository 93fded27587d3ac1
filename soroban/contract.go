package soroban

import (
	"crypto/sha256"

	"github.com/Soneso/stellar-go-sdk/address"
	"github.com/Soneso/stellar-go-sdk/network"
	"github.com/Soneso/stellar-go-sdk/strkey"
	"github.com/Soneso/stellar-go-sdk/xdr"
)

// DeriveContractID computes the deterministic "C..." contract address a CreateContract operation
// deploying from deployer with the given 32-byte salt would produce. Grounded on the teacher's
// CalculateContractAddress (internal/utils/contract_address.go): build a ContractIdPreimage,
// wrap it in a HashIdPreimage tagged ContractId, hash, strkey-encode.
func DeriveContractID(deployer address.Address, salt [32]byte, networkPassphrase string) (string, error) {
	scAddr, err := deployer.ToScAddress()
	if err != nil {
		return "", err
	}
	preimage := xdr.ContractIdPreimage{
		Type: xdr.ContractIdPreimageTypeFromAddress,
		FromAddress: &xdr.ContractIdPreimageFromAddress{
			Address: scAddr,
			Salt:    xdr.Uint256(salt),
		},
	}
	hashPreimage := xdr.HashIdPreimage{
		Type: xdr.EnvelopeTypeContractId,
		ContractId: &xdr.HashIdPreimageContractId{
			NetworkId:          xdr.Hash(network.ID(networkPassphrase)),
			ContractIdPreimage: preimage,
		},
	}
	b, err := xdr.Marshal(hashPreimage)
	if err != nil {
		return "", err
	}
	id := sha256.Sum256(b)
	return strkey.Encode(strkey.VersionByteContract, id[:])
}

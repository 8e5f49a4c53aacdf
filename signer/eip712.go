package signer

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/crossfusion/order-engine/chains"
	"github.com/crossfusion/order-engine/order"
)

const (
	DomainName    = "1inch Cross-Chain Order"
	DomainVersion = "1.0.0"

	// No on-chain verifier participates in order matching, so the domain
	// pins the zero address and a fixed salt for separation only.
	domainVerifyingContract = "0x0000000000000000000000000000000000000000"
	domainSalt              = "0"
)

// Every order field is typed `string`: the taker side may carry Sui
// identifiers that do not fit the fixed-width `address` type.
var orderTypes = apitypes.Types{
	"EIP712Domain": []apitypes.Type{
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
		{Name: "salt", Type: "string"},
		{Name: "verifyingContract", Type: "string"},
	},
	"Order": []apitypes.Type{
		{Name: "salt", Type: "string"},
		{Name: "makerAsset", Type: "string"},
		{Name: "takerAsset", Type: "string"},
		{Name: "maker", Type: "string"},
		{Name: "receiver", Type: "string"},
		{Name: "makingAmount", Type: "string"},
		{Name: "takingAmount", Type: "string"},
		{Name: "makerTraits", Type: "string"},
	},
}

// OrderDigest generates the EIP-712 digest of the order bound to the
// protocol name, version and source chain.
func OrderDigest(srcChainID chains.ChainID, o *order.Order) ([]byte, error) {
	domain := apitypes.TypedDataDomain{
		Name:              DomainName,
		Version:           DomainVersion,
		ChainId:           math.NewHexOrDecimal256(int64(srcChainID)),
		Salt:              domainSalt,
		VerifyingContract: domainVerifyingContract,
	}
	typedData := apitypes.TypedData{
		Types:       orderTypes,
		PrimaryType: "Order",
		Domain:      domain,
		Message:     orderToMessage(o),
	}

	domainSeparator, err := typedData.HashStruct("EIP712Domain", typedData.Domain.Map())
	if err != nil {
		return []byte{}, err
	}

	messageHash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
	if err != nil {
		return []byte{}, err
	}

	rawData := []byte(fmt.Sprintf("\x19\x01%s%s", string(domainSeparator), string(messageHash)))
	return crypto.Keccak256(rawData), nil
}

func orderToMessage(o *order.Order) apitypes.TypedDataMessage {
	return apitypes.TypedDataMessage{
		"salt":         o.Salt,
		"makerAsset":   o.MakerAsset,
		"takerAsset":   o.TakerAsset,
		"maker":        o.Maker,
		"receiver":     o.Receiver,
		"makingAmount": o.MakingAmount,
		"takingAmount": o.TakingAmount,
		"makerTraits":  o.MakerTraits,
	}
}

package order

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/crossfusion/order-engine/chains"
)

// AssetRef points at one coin on one chain. OnChainID is opaque so that EVM
// addresses and Sui coin types share a schema.
type AssetRef struct {
	Chain     chains.ChainID
	Symbol    string
	OnChainID string
	Decimals  uint8
}

// Order is the canonical payload submitted to the relayer. Field names are
// fixed by the relayer wire format. Amounts are base-unit decimal strings to
// avoid floating point loss on large values.
type Order struct {
	Salt         string `json:"salt"`
	MakerAsset   string `json:"makerAsset"`
	TakerAsset   string `json:"takerAsset"`
	Maker        string `json:"maker"`
	Receiver     string `json:"receiver"`
	MakingAmount string `json:"makingAmount"`
	TakingAmount string `json:"takingAmount"`
	MakerTraits  string `json:"makerTraits"`
}

// Hash returns the keccak256 of the canonical JSON encoding. Used for
// client-side correlation and logging only, distinct from the secret hash
// and from the signing digest.
func (o *Order) Hash() (string, error) {
	b, err := json.Marshal(o)
	if err != nil {
		return "", fmt.Errorf("failed to encode order: %w", err)
	}

	return fmt.Sprintf("0x%x", crypto.Keccak256(b)), nil
}

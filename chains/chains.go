package chains

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ChainID identifies a supported ledger. EVM chains use their EIP-155 id.
// Sui has no EIP-155 id, so it gets an internal identifier that is only
// meaningful inside this engine and the relayer API.
type ChainID uint64

const (
	EthereumMainnet ChainID = 1
	SuiMainnet      ChainID = 101
)

// Family groups chains by their account and address model.
type Family string

const (
	FamilyEVM Family = "evm"
	FamilySui Family = "sui"
)

func (c ChainID) Family() Family {
	if c == SuiMainnet {
		return FamilySui
	}
	return FamilyEVM
}

func (c ChainID) String() string {
	switch c {
	case EthereumMainnet:
		return "ethereum"
	case SuiMainnet:
		return "sui"
	default:
		return fmt.Sprintf("chain-%d", uint64(c))
	}
}

const suiAddressLength = 66 // 0x + 32 bytes hex

// ValidateAddress checks an account address against the rules of the chain
// family. Identifiers stay opaque strings beyond this check since the two
// families use incompatible encodings.
func ValidateAddress(family Family, address string) error {
	switch family {
	case FamilyEVM:
		if !common.IsHexAddress(address) {
			return fmt.Errorf("invalid evm address %s", address)
		}
	case FamilySui:
		if !strings.HasPrefix(address, "0x") || len(address) != suiAddressLength {
			return fmt.Errorf("invalid sui address %s", address)
		}
		for _, r := range address[2:] {
			if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
				return fmt.Errorf("invalid sui address %s", address)
			}
		}
	default:
		return fmt.Errorf("unknown chain family %s", family)
	}
	return nil
}

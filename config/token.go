package config

import (
	"fmt"

	"github.com/crossfusion/order-engine/chains"
)

// TokenConfig describes one coin on one chain. OnChainID is opaque: a 20-byte
// hex address on EVM chains, a `package::module::Type` coin type on Sui.
type TokenConfig struct {
	Name      string
	OnChainID string
	Decimals  uint8
}

type TokenStore struct {
	Tokens map[chains.ChainID]map[string]TokenConfig
}

// DefaultTokenStore returns the compiled-in registry for the two supported
// chains. Entries may be extended or overridden from the config file.
func DefaultTokenStore() *TokenStore {
	return &TokenStore{
		Tokens: map[chains.ChainID]map[string]TokenConfig{
			chains.EthereumMainnet: {
				"USDC": {
					Name:      "USDC (Ethereum)",
					OnChainID: "0xA0b86a33E6441b8dB4B2a4B61c4b4b6b4b4b4b4b",
					Decimals:  6,
				},
				"USDT": {
					Name:      "USDT (Ethereum)",
					OnChainID: "0xdAC17F958D2ee523a2206206994597C13D831ec7",
					Decimals:  6,
				},
				"ETH": {
					Name:      "ETH (Ethereum)",
					OnChainID: "0x0000000000000000000000000000000000000000",
					Decimals:  18,
				},
			},
			chains.SuiMainnet: {
				"USDC": {
					Name:      "USDC (Sui)",
					OnChainID: "0xdba34672e30cb065b1f93e3ab55318768fd6fef66c15942c9f7cb846e2f900e7::usdc::USDC",
					Decimals:  6,
				},
				"USDT": {
					Name:      "USDT (Sui)",
					OnChainID: "0xc060006111016b8a020ad5b33834984a437aaa7d3c74c18e09a95d48aceab08c::coin::COIN",
					Decimals:  6,
				},
				"SUI": {
					Name:      "SUI",
					OnChainID: "0x0000000000000000000000000000000000000000000000000000000000000002::sui::SUI",
					Decimals:  9,
				},
			},
		},
	}
}

func (s *TokenStore) ConfigBySymbol(chainID chains.ChainID, symbol string) (TokenConfig, error) {
	tokens, ok := s.Tokens[chainID]
	if !ok {
		return TokenConfig{}, fmt.Errorf("no tokens for chain %d", chainID)
	}

	c, ok := tokens[symbol]
	if !ok {
		return TokenConfig{}, fmt.Errorf("no config for token %s", symbol)
	}

	return c, nil
}

func (s *TokenStore) ConfigByOnChainID(chainID chains.ChainID, onChainID string) (string, TokenConfig, error) {
	tokens, ok := s.Tokens[chainID]
	if !ok {
		return "", TokenConfig{}, fmt.Errorf("no tokens for chain %d", chainID)
	}

	for symbol, c := range tokens {
		if c.OnChainID == onChainID {
			return symbol, c, nil
		}
	}

	return "", TokenConfig{}, fmt.Errorf("no symbol for asset %s", onChainID)
}

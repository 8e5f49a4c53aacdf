// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/spf13/viper"

	"github.com/crossfusion/order-engine/chains"
)

type Config struct {
	EngineConfig EngineConfig                         `mapstructure:"engine"`
	Tokens       map[string]map[string]RawTokenConfig `mapstructure:"tokens"`
	Wallets      map[string]string                    `mapstructure:"wallets"`
}

type EngineConfig struct {
	LogLevel   string `mapstructure:"logLevel" default:"info"`
	APIPort    uint16 `mapstructure:"apiPort" default:"5001"`
	HealthPort uint16 `mapstructure:"healthPort" default:"9001"`

	RelayerURL    string `mapstructure:"relayerUrl"`
	Key           string `mapstructure:"key"`
	SubmitTimeout uint64 `mapstructure:"submitTimeout" default:"10"`
	SessionTTL    uint64 `mapstructure:"sessionTTL" default:"600"`
}

type RawTokenConfig struct {
	Name      string `mapstructure:"name"`
	OnChainID string `mapstructure:"onChainId"`
	Decimals  uint8  `mapstructure:"decimals"`
}

func (c *Config) Validate() error {
	if c.EngineConfig.RelayerURL == "" {
		return fmt.Errorf("required field engine.relayerUrl empty")
	}
	if c.EngineConfig.Key == "" {
		return fmt.Errorf("required field engine.key empty")
	}
	return nil
}

func (c *Config) SubmitTimeout() time.Duration {
	return time.Duration(c.EngineConfig.SubmitTimeout) * time.Second
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.EngineConfig.SessionTTL) * time.Second
}

// TokenStore merges configured token overrides over the compiled-in
// registry. Chain keys are decimal strings and symbols are uppercased
// because viper lowercases configuration keys.
func (c *Config) TokenStore() (*TokenStore, error) {
	store := DefaultTokenStore()
	for rawChainID, tokens := range c.Tokens {
		chainID, err := strconv.ParseUint(rawChainID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid chain id %q in token config: %w", rawChainID, err)
		}

		id := chains.ChainID(chainID)
		if store.Tokens[id] == nil {
			store.Tokens[id] = make(map[string]TokenConfig)
		}
		for symbol, t := range tokens {
			store.Tokens[id][strings.ToUpper(symbol)] = TokenConfig{
				Name:      t.Name,
				OnChainID: t.OnChainID,
				Decimals:  t.Decimals,
			}
		}
	}
	return store, nil
}

// WalletAddresses resolves the configured per-chain receiver wallets.
func (c *Config) WalletAddresses() (map[chains.ChainID]string, error) {
	wallets := make(map[chains.ChainID]string)
	for rawChainID, address := range c.Wallets {
		chainID, err := strconv.ParseUint(rawChainID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid chain id %q in wallet config: %w", rawChainID, err)
		}
		wallets[chains.ChainID(chainID)] = address
	}
	return wallets, nil
}

// GetConfigFromFile reads configuration from the provided file and layers it
// over the optional base configuration.
func GetConfigFromFile(path string, base *Config) (*Config, error) {
	config := &Config{}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, err
	}

	if base != nil {
		if err := mergo.Merge(config, *base); err != nil {
			return nil, err
		}
	}

	if err := defaults.Set(config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// GetConfigFromENV reads configuration from CFO_* environment variables,
// layered over the optional base configuration.
func GetConfigFromENV(base *Config) (*Config, error) {
	config := &Config{}

	v := viper.New()
	v.SetEnvPrefix("CFO")
	// dots cannot appear in environment variable names
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{
		"engine.logLevel", "engine.apiPort", "engine.healthPort",
		"engine.relayerUrl", "engine.key", "engine.submitTimeout", "engine.sessionTTL",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, err
	}

	if base != nil {
		if err := mergo.Merge(config, *base); err != nil {
			return nil, err
		}
	}

	if err := defaults.Set(config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/crossfusion/order-engine/chains"
	"github.com/crossfusion/order-engine/config"
)

type ConfigTestSuite struct {
	suite.Suite

	dir string
}

func TestRunConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) writeConfig(content string) string {
	path := filepath.Join(s.dir, "config.yaml")
	s.Nil(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *ConfigTestSuite) Test_GetConfigFromFile_Defaults() {
	path := s.writeConfig(`
engine:
  relayerUrl: http://localhost:8980
  key: 4787d8a82fb9eb18f523c36b5b5cdea7065fcff2c5dbb0b6e975021905aa1b0c
`)

	c, err := config.GetConfigFromFile(path, nil)

	s.Nil(err)
	s.Equal("info", c.EngineConfig.LogLevel)
	s.Equal(uint16(5001), c.EngineConfig.APIPort)
	s.Equal(uint16(9001), c.EngineConfig.HealthPort)
	s.Equal(uint64(10), c.EngineConfig.SubmitTimeout)
	s.Equal(uint64(600), c.EngineConfig.SessionTTL)
}

func (s *ConfigTestSuite) Test_GetConfigFromFile_MissingRelayerURL() {
	path := s.writeConfig(`
engine:
  key: 4787d8a82fb9eb18f523c36b5b5cdea7065fcff2c5dbb0b6e975021905aa1b0c
`)

	_, err := config.GetConfigFromFile(path, nil)

	s.NotNil(err)
}

func (s *ConfigTestSuite) Test_GetConfigFromFile_MissingKey() {
	path := s.writeConfig(`
engine:
  relayerUrl: http://localhost:8980
`)

	_, err := config.GetConfigFromFile(path, nil)

	s.NotNil(err)
}

func (s *ConfigTestSuite) Test_GetConfigFromFile_BaseLayering() {
	path := s.writeConfig(`
engine:
  relayerUrl: http://localhost:8980
`)
	base := &config.Config{
		EngineConfig: config.EngineConfig{
			Key:      "4787d8a82fb9eb18f523c36b5b5cdea7065fcff2c5dbb0b6e975021905aa1b0c",
			LogLevel: "debug",
		},
	}

	c, err := config.GetConfigFromFile(path, base)

	s.Nil(err)
	s.Equal("http://localhost:8980", c.EngineConfig.RelayerURL)
	s.Equal(base.EngineConfig.Key, c.EngineConfig.Key)
	s.Equal("debug", c.EngineConfig.LogLevel)
}

func (s *ConfigTestSuite) Test_GetConfigFromENV() {
	s.T().Setenv("CFO_ENGINE_RELAYERURL", "http://localhost:8980")
	s.T().Setenv("CFO_ENGINE_KEY", "4787d8a82fb9eb18f523c36b5b5cdea7065fcff2c5dbb0b6e975021905aa1b0c")
	s.T().Setenv("CFO_ENGINE_LOGLEVEL", "debug")

	c, err := config.GetConfigFromENV(nil)

	s.Nil(err)
	s.Equal("http://localhost:8980", c.EngineConfig.RelayerURL)
	s.Equal("4787d8a82fb9eb18f523c36b5b5cdea7065fcff2c5dbb0b6e975021905aa1b0c", c.EngineConfig.Key)
	s.Equal("debug", c.EngineConfig.LogLevel)
	s.Equal(uint16(5001), c.EngineConfig.APIPort)
	s.Equal(uint64(10), c.EngineConfig.SubmitTimeout)
}

func (s *ConfigTestSuite) Test_GetConfigFromENV_MissingRelayerURL() {
	s.T().Setenv("CFO_ENGINE_KEY", "4787d8a82fb9eb18f523c36b5b5cdea7065fcff2c5dbb0b6e975021905aa1b0c")

	_, err := config.GetConfigFromENV(nil)

	s.NotNil(err)
}

func (s *ConfigTestSuite) Test_TokenStore_Overrides() {
	path := s.writeConfig(`
engine:
  relayerUrl: http://localhost:8980
  key: 4787d8a82fb9eb18f523c36b5b5cdea7065fcff2c5dbb0b6e975021905aa1b0c
tokens:
  "1":
    wbtc:
      name: Wrapped BTC
      onChainId: "0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599"
      decimals: 8
`)

	c, err := config.GetConfigFromFile(path, nil)
	s.Nil(err)

	store, err := c.TokenStore()
	s.Nil(err)

	// override present alongside the compiled-in registry
	wbtc, err := store.ConfigBySymbol(chains.EthereumMainnet, "WBTC")
	s.Nil(err)
	s.Equal(uint8(8), wbtc.Decimals)

	usdc, err := store.ConfigBySymbol(chains.EthereumMainnet, "USDC")
	s.Nil(err)
	s.Equal(uint8(6), usdc.Decimals)
}

func (s *ConfigTestSuite) Test_WalletAddresses() {
	path := s.writeConfig(`
engine:
  relayerUrl: http://localhost:8980
  key: 4787d8a82fb9eb18f523c36b5b5cdea7065fcff2c5dbb0b6e975021905aa1b0c
wallets:
  "101": "0xdba34672e30cb065b1f93e3ab55318768fd6fef66c15942c9f7cb846e2f900e7"
`)

	c, err := config.GetConfigFromFile(path, nil)
	s.Nil(err)

	wallets, err := c.WalletAddresses()
	s.Nil(err)
	s.Equal("0xdba34672e30cb065b1f93e3ab55318768fd6fef66c15942c9f7cb846e2f900e7", wallets[chains.SuiMainnet])
}

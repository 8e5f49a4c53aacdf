package chains_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crossfusion/order-engine/chains"
)

func Test_Family(t *testing.T) {
	require.Equal(t, chains.FamilyEVM, chains.EthereumMainnet.Family())
	require.Equal(t, chains.FamilySui, chains.SuiMainnet.Family())
}

func Test_ValidateAddress(t *testing.T) {
	tests := []struct {
		name    string
		family  chains.Family
		address string
		valid   bool
	}{
		{
			name:    "valid evm address",
			family:  chains.FamilyEVM,
			address: "0x6C8A0c210C4C097270FA5df9b799d79A6887b11A",
			valid:   true,
		},
		{
			name:    "evm address too short",
			family:  chains.FamilyEVM,
			address: "0x6C8A0c210C4C0972",
			valid:   false,
		},
		{
			name:    "evm address missing prefix",
			family:  chains.FamilyEVM,
			address: "6C8A0c210C4C097270FA5df9b799d79A6887b11A",
			valid:   false,
		},
		{
			name:    "valid sui address",
			family:  chains.FamilySui,
			address: "0xdba34672e30cb065b1f93e3ab55318768fd6fef66c15942c9f7cb846e2f900e7",
			valid:   true,
		},
		{
			name:    "sui address too short",
			family:  chains.FamilySui,
			address: "0xdba34672e30cb065b1f93e3ab55318768fd6fef66c15942c9f7cb846e2f9",
			valid:   false,
		},
		{
			name:    "sui address with non-hex characters",
			family:  chains.FamilySui,
			address: "0xzba34672e30cb065b1f93e3ab55318768fd6fef66c15942c9f7cb846e2f900e7",
			valid:   false,
		},
		{
			name:    "empty address",
			family:  chains.FamilyEVM,
			address: "",
			valid:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := chains.ValidateAddress(tt.family, tt.address)
			if tt.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

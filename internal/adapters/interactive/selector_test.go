package interactive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

func TestFuzzySearchFunc(t *testing.T) {
	items := []string{"arbitrum", "goerli", "hardhat", "mainnet"}
	search := FuzzySearchFunc(items)

	tests := []struct {
		name     string
		input    string
		index    int
		expected bool
	}{
		{"empty input matches everything", "", 1, true},
		{"substring", "net", 3, true},
		{"substring ignores case", "NET", 3, true},
		{"fuzzy subsequence", "mnt", 3, true},
		{"fuzzy subsequence elsewhere", "abt", 0, true},
		{"no subsequence", "mnt", 1, false},
		{"unrelated", "xyz", 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, search(tt.input, tt.index))
		})
	}
}

func TestSelectNetwork(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses in non-interactive mode", func(t *testing.T) {
		selector := NewSelectorAdapter(&config.RuntimeConfig{NonInteractive: true})
		_, err := selector.SelectNetwork(ctx, []string{"goerli", "mainnet"}, "Select")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "non-interactive")
	})

	t.Run("no networks", func(t *testing.T) {
		selector := NewSelectorAdapter(&config.RuntimeConfig{})
		_, err := selector.SelectNetwork(ctx, nil, "Select")
		require.Error(t, err)
	})

	t.Run("single network is chosen without prompting", func(t *testing.T) {
		selector := NewSelectorAdapter(&config.RuntimeConfig{})
		name, err := selector.SelectNetwork(ctx, []string{"goerli"}, "Select")
		require.NoError(t, err)
		assert.Equal(t, "goerli", name)
	})
}

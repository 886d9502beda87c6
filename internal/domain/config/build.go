package config

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/chaincfg/internal/domain"
)

// BuildConfig is the settings object handed to the contract toolchain.
// It is assembled once and never mutated afterwards.
type BuildConfig struct {
	Solidity           SolidityConfig           `json:"solidity" yaml:"solidity" toml:"solidity"`
	DefaultNetwork     string                   `json:"defaultNetwork" yaml:"defaultNetwork" toml:"defaultNetwork"`
	Networks           map[string]NetworkConfig `json:"networks" yaml:"networks" toml:"networks"`
	Etherscan          EtherscanConfig          `json:"etherscan" yaml:"etherscan" toml:"etherscan"`
	DependencyCompiler DependencyCompilerConfig `json:"dependencyCompiler" yaml:"dependencyCompiler" toml:"dependencyCompiler"`
	Mocha              MochaConfig              `json:"mocha" yaml:"mocha" toml:"mocha"`
}

// SolidityConfig lists the compilers used to build sources
type SolidityConfig struct {
	Compilers []CompilerConfig `json:"compilers" yaml:"compilers" toml:"compilers"`
}

type CompilerConfig struct {
	Version  string           `json:"version" yaml:"version" toml:"version"`
	Settings CompilerSettings `json:"settings" yaml:"settings" toml:"settings"`
}

type CompilerSettings struct {
	Optimizer OptimizerConfig `json:"optimizer" yaml:"optimizer" toml:"optimizer"`
}

// OptimizerConfig controls the code-size/execution-cost tradeoff of the compiler
type OptimizerConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled" toml:"enabled"`
	Runs    int  `json:"runs" yaml:"runs" toml:"runs"`
}

// NetworkConfig describes one deployment target
type NetworkConfig struct {
	URL      string   `json:"url" yaml:"url" toml:"url"`
	ChainID  uint64   `json:"chainId" yaml:"chainId" toml:"chainId"`
	Accounts []string `json:"accounts" yaml:"accounts" toml:"accounts"`
	Timeout  *uint64  `json:"timeout,omitempty" yaml:"timeout,omitempty" toml:"timeout,omitempty"`    // milliseconds
	GasPrice *uint64  `json:"gasPrice,omitempty" yaml:"gasPrice,omitempty" toml:"gasPrice,omitempty"` // wei
}

// EtherscanConfig holds block-explorer verification keys keyed by explorer network name
type EtherscanConfig struct {
	APIKey map[string]string `json:"apiKey" yaml:"apiKey" toml:"apiKey"`
}

// DependencyCompilerConfig lists external sources compiled alongside the project
type DependencyCompilerConfig struct {
	Paths []string `json:"paths" yaml:"paths" toml:"paths"`
}

// MochaConfig configures the test runner
type MochaConfig struct {
	Timeout uint64 `json:"timeout" yaml:"timeout" toml:"timeout"` // milliseconds
}

// NetworkNames returns the configured network names in sorted order
func (c *BuildConfig) NetworkNames() []string {
	names := lo.Keys(c.Networks)
	sort.Strings(names)
	return names
}

// Network looks up a network by name. Unknown names yield a NetworkNotFoundErr
// carrying fuzzy matches against the configured names.
func (c *BuildConfig) Network(name string) (NetworkConfig, error) {
	if network, ok := c.Networks[name]; ok {
		return network, nil
	}

	names := c.NetworkNames()
	matches := fuzzy.Find(name, names)
	suggestions := lo.Map(matches, func(m fuzzy.Match, _ int) string {
		return m.Str
	})

	return NetworkConfig{}, domain.NetworkNotFoundErr{Name: name, Suggestions: suggestions}
}

// HasURL reports whether an endpoint is configured
func (n NetworkConfig) HasURL() bool {
	return n.URL != ""
}

// HasAccounts reports whether at least one non-empty credential is configured
func (n NetworkConfig) HasAccounts() bool {
	return lo.SomeBy(n.Accounts, func(a string) bool { return a != "" })
}

// GasPriceGwei formats the fixed gas price in gwei without rounding, or "auto" when unset
func (n NetworkConfig) GasPriceGwei() string {
	if n.GasPrice == nil {
		return "auto"
	}
	// one wei is 1e-9 gwei, so nine digits are exact
	gwei := new(big.Rat).SetFrac(new(big.Int).SetUint64(*n.GasPrice), big.NewInt(1_000_000_000))
	digits := strings.TrimRight(gwei.FloatString(9), "0")
	if strings.HasSuffix(digits, ".") {
		digits += "0"
	}
	return fmt.Sprintf("%s gwei", digits)
}

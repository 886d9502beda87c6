package config

import (
	"strings"

	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// Environment variables read by the assembler
const (
	EnvGoerliRPC       = "ETHEREUM_GOERLI_RPC"
	EnvMainnetRPC      = "ETHEREUM_MAINNET_RPC"
	EnvArbitrumRPC     = "ARBITRUM_MAINNET_RPC"
	EnvPrivateKey      = "PRIVATE_KEY" //nolint:gosec // variable name, not a secret
	EnvEtherscanAPIKey = "ETHERSCAN_API_KEY"
	EnvArbiscanAPIKey  = "ARBISCAN_API_KEY"
)

// Structural literals of the build configuration
const (
	SolidityVersion  = "0.8.10"
	OptimizerRuns    = 2000
	DefaultNetwork   = "hardhat"
	MochaTimeout     = 100_000_000
	GoerliTimeout    = 86_400_000
	TimelockSource   = "@openzeppelin/contracts/governance/TimelockController.sol"
	HardhatChainID   = 31337
	GoerliChainID    = 5
	MainnetChainID   = 1
	ArbitrumChainID  = 42161
	GoerliGasPrice   = 2_000_000_000  // 2 gwei
	MainnetGasPrice  = 15_000_000_000 // 15 gwei
	ArbitrumGasPrice = 100_000_000    // 0.1 gwei
)

// Options tweak assembly. The zero value reproduces the configuration verbatim.
type Options struct {
	// NormalizeAccounts trims PRIVATE_KEY for every network instead of only goerli
	NormalizeAccounts bool
}

// Assemble builds the configuration from env with default options
func Assemble(env Env) *config.BuildConfig {
	return AssembleWith(env, Options{})
}

// AssembleWith builds the configuration from env. Absent variables fall back to
// the empty string; nothing here fails.
func AssembleWith(env Env, opts Options) *config.BuildConfig {
	rawKey := env.Get(EnvPrivateKey)
	trimmedKey := strings.TrimSpace(rawKey)

	// goerli has always trimmed the key, mainnet and arbitrum pass it through
	untrimmedKey := rawKey
	if opts.NormalizeAccounts {
		untrimmedKey = trimmedKey
	}

	etherscanKey := strings.TrimSpace(env.Get(EnvEtherscanAPIKey))
	arbiscanKey := strings.TrimSpace(env.Get(EnvArbiscanAPIKey))

	return &config.BuildConfig{
		Solidity: config.SolidityConfig{
			Compilers: []config.CompilerConfig{
				{
					Version: SolidityVersion,
					Settings: config.CompilerSettings{
						Optimizer: config.OptimizerConfig{
							Enabled: true,
							Runs:    OptimizerRuns,
						},
					},
				},
			},
		},
		DefaultNetwork: DefaultNetwork,
		Networks: map[string]config.NetworkConfig{
			DefaultNetwork: {
				ChainID:  HardhatChainID,
				Accounts: []string{},
			},
			"goerli": {
				URL:      env.Get(EnvGoerliRPC),
				ChainID:  GoerliChainID,
				Accounts: []string{trimmedKey},
				Timeout:  uint64Ptr(GoerliTimeout),
				GasPrice: uint64Ptr(GoerliGasPrice),
			},
			"mainnet": {
				URL:      env.Get(EnvMainnetRPC),
				ChainID:  MainnetChainID,
				Accounts: []string{untrimmedKey},
				GasPrice: uint64Ptr(MainnetGasPrice),
			},
			"arbitrum": {
				URL:      env.Get(EnvArbitrumRPC),
				ChainID:  ArbitrumChainID,
				Accounts: []string{untrimmedKey},
				GasPrice: uint64Ptr(ArbitrumGasPrice),
			},
		},
		Etherscan: config.EtherscanConfig{
			APIKey: map[string]string{
				"mainnet":     etherscanKey,
				"goerli":      etherscanKey,
				"arbitrumOne": arbiscanKey,
			},
		},
		DependencyCompiler: config.DependencyCompilerConfig{
			Paths: []string{TimelockSource},
		},
		Mocha: config.MochaConfig{
			Timeout: MochaTimeout,
		},
	}
}

// EnvSource describes where an env-derived field comes from
type EnvSource struct {
	Network  string // empty for explorer keys
	Field    string
	Variable string
	Trimmed  bool
}

// EnvSources lists every env-derived field of the assembled configuration
func EnvSources(opts Options) []EnvSource {
	return []EnvSource{
		{Network: "goerli", Field: "url", Variable: EnvGoerliRPC},
		{Network: "goerli", Field: "accounts", Variable: EnvPrivateKey, Trimmed: true},
		{Network: "mainnet", Field: "url", Variable: EnvMainnetRPC},
		{Network: "mainnet", Field: "accounts", Variable: EnvPrivateKey, Trimmed: opts.NormalizeAccounts},
		{Network: "arbitrum", Field: "url", Variable: EnvArbitrumRPC},
		{Network: "arbitrum", Field: "accounts", Variable: EnvPrivateKey, Trimmed: opts.NormalizeAccounts},
		{Field: "etherscan.apiKey.mainnet", Variable: EnvEtherscanAPIKey, Trimmed: true},
		{Field: "etherscan.apiKey.goerli", Variable: EnvEtherscanAPIKey, Trimmed: true},
		{Field: "etherscan.apiKey.arbitrumOne", Variable: EnvArbiscanAPIKey, Trimmed: true},
	}
}

func uint64Ptr(v uint64) *uint64 {
	return &v
}

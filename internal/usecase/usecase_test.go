package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	internalconfig "github.com/trebuchet-org/chaincfg/internal/config"
	"github.com/trebuchet-org/chaincfg/internal/domain"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
	"gopkg.in/yaml.v3"
)

const testPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func runtimeConfig(env internalconfig.Env) *config.RuntimeConfig {
	return &config.RuntimeConfig{
		ProjectRoot:    "/project",
		NonInteractive: true,
		Format:         "text",
		Env:            env,
		Build:          internalconfig.Assemble(env),
	}
}

func TestShowConfig(t *testing.T) {
	cfg := runtimeConfig(internalconfig.Env{
		internalconfig.EnvPrivateKey: " abc ",
		internalconfig.EnvMainnetRPC: "",
	})

	result, err := NewShowConfig(cfg).Run(context.Background())
	require.NoError(t, err)

	assert.Same(t, cfg.Build, result.Config)
	assert.Equal(t, "/project", result.ProjectRoot)
	require.Len(t, result.Sources, 9)

	set := map[string]bool{}
	for _, s := range result.Sources {
		set[s.Network+"/"+s.Field] = s.Set
	}
	assert.True(t, set["mainnet/accounts"])
	assert.True(t, set["mainnet/url"], "an empty but present variable counts as set")
	assert.False(t, set["goerli/url"])
	assert.False(t, set["/etherscan.apiKey.arbitrumOne"])
}

func TestExportConfig(t *testing.T) {
	cfg := runtimeConfig(internalconfig.Env{
		internalconfig.EnvPrivateKey:      testPrivateKey,
		internalconfig.EnvEtherscanAPIKey: "ETHKEY",
	})
	uc := NewExportConfig(cfg)

	t.Run("json redacted", func(t *testing.T) {
		result, err := uc.Run(context.Background(), ExportConfigParams{Format: FormatJSON})
		require.NoError(t, err)

		var decoded config.BuildConfig
		require.NoError(t, json.Unmarshal(result.Data, &decoded))
		assert.Equal(t, []string{Redacted}, decoded.Networks["mainnet"].Accounts)
		assert.Equal(t, Redacted, decoded.Etherscan.APIKey["mainnet"])
		// unset values stay visible as empty strings
		assert.Equal(t, "", decoded.Etherscan.APIKey["arbitrumOne"])
		assert.Equal(t, 2000, decoded.Solidity.Compilers[0].Settings.Optimizer.Runs)

		// the runtime config itself is untouched
		assert.Equal(t, testPrivateKey, cfg.Build.Networks["mainnet"].Accounts[0])
		assert.Equal(t, "ETHKEY", cfg.Build.Etherscan.APIKey["mainnet"])
	})

	t.Run("json keys", func(t *testing.T) {
		result, err := uc.Run(context.Background(), ExportConfigParams{Format: FormatJSON})
		require.NoError(t, err)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(result.Data, &raw))
		assert.Equal(t, "hardhat", raw["defaultNetwork"])
		assert.Contains(t, raw, "dependencyCompiler")
		assert.Contains(t, raw, "mocha")

		networks := raw["networks"].(map[string]any)
		mainnet := networks["mainnet"].(map[string]any)
		assert.NotContains(t, mainnet, "timeout")
		assert.Equal(t, float64(15_000_000_000), mainnet["gasPrice"])
	})

	t.Run("yaml revealed", func(t *testing.T) {
		result, err := uc.Run(context.Background(), ExportConfigParams{Format: FormatYAML, Reveal: true})
		require.NoError(t, err)

		var decoded config.BuildConfig
		require.NoError(t, yaml.Unmarshal(result.Data, &decoded))
		assert.Equal(t, []string{testPrivateKey}, decoded.Networks["arbitrum"].Accounts)
		require.NotNil(t, decoded.Networks["goerli"].Timeout)
		assert.Equal(t, uint64(86_400_000), *decoded.Networks["goerli"].Timeout)
	})

	t.Run("toml", func(t *testing.T) {
		result, err := uc.Run(context.Background(), ExportConfigParams{Format: FormatTOML})
		require.NoError(t, err)

		var decoded config.BuildConfig
		_, err = toml.Decode(string(result.Data), &decoded)
		require.NoError(t, err)
		assert.Equal(t, "0.8.10", decoded.Solidity.Compilers[0].Version)
		assert.Equal(t, uint64(42161), decoded.Networks["arbitrum"].ChainID)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := uc.Run(context.Background(), ExportConfigParams{Format: "xml"})
		assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	})
}

func TestListNetworks(t *testing.T) {
	cfg := runtimeConfig(internalconfig.Env{
		internalconfig.EnvMainnetRPC:     "https://mainnet.example",
		internalconfig.EnvPrivateKey:     testPrivateKey,
		internalconfig.EnvArbiscanAPIKey: "ARB",
	})

	result, err := NewListNetworks(cfg).Run(context.Background(), ListNetworksParams{})
	require.NoError(t, err)

	assert.Equal(t, "hardhat", result.Default)
	require.Len(t, result.Networks, 4)

	byName := map[string]NetworkStatus{}
	for _, n := range result.Networks {
		byName[n.Name] = n
	}
	assert.Equal(t, []string{"arbitrum", "goerli", "hardhat", "mainnet"},
		[]string{result.Networks[0].Name, result.Networks[1].Name, result.Networks[2].Name, result.Networks[3].Name})

	mainnet := byName["mainnet"]
	assert.True(t, mainnet.URLSet)
	assert.True(t, mainnet.AccountSet)
	assert.Equal(t, "15.0 gwei", mainnet.GasPrice)
	assert.Equal(t, "https://etherscan.io", mainnet.Explorer)
	assert.Equal(t, "mainnet", mainnet.VerifyKey)
	assert.False(t, mainnet.VerifyKeySet)

	arbitrum := byName["arbitrum"]
	assert.False(t, arbitrum.URLSet)
	assert.Equal(t, "arbitrumOne", arbitrum.VerifyKey)
	assert.True(t, arbitrum.VerifyKeySet)

	hardhat := byName["hardhat"]
	assert.True(t, hardhat.Default)
	assert.True(t, hardhat.Local)
	assert.Equal(t, "", hardhat.VerifyKey)
}

func TestValidateConfig(t *testing.T) {
	cfg := runtimeConfig(internalconfig.Env{internalconfig.EnvPrivateKey: "not-a-key"})
	uc := NewValidateConfig(cfg)

	result, err := uc.Run(context.Background(), ValidateConfigParams{})
	require.NoError(t, err, "problems are only reported by default")
	assert.True(t, result.Issues.HasErrors())

	result, err = uc.Run(context.Background(), ValidateConfigParams{Strict: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidationFailed)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Issues)

	cfg.Strict = true
	_, err = uc.Run(context.Background(), ValidateConfigParams{})
	assert.ErrorIs(t, err, domain.ErrValidationFailed)
}

// fakeChecker answers probes from a table keyed by network name
type fakeChecker struct {
	mu      sync.Mutex
	calls   []string
	results map[string]uint64
}

func (f *fakeChecker) Probe(ctx context.Context, network, rpcURL string, expectedChainID uint64) (*domain.ProbeResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, network)
	f.mu.Unlock()

	if rpcURL == "" {
		return nil, domain.ErrEmptyEndpoint
	}
	chainID, ok := f.results[network]
	if !ok {
		return nil, errors.New("connection refused")
	}
	result := &domain.ProbeResult{ChainID: chainID, BlockNumber: 100}
	if chainID != expectedChainID {
		return result, domain.ChainIDMismatchErr{Network: network, Expected: expectedChainID, Actual: chainID}
	}
	return result, nil
}

type fakeSelector struct {
	choice string
	called bool
}

func (f *fakeSelector) SelectNetwork(ctx context.Context, names []string, prompt string) (string, error) {
	f.called = true
	return f.choice, nil
}

type recordingSink struct {
	events []ProgressEvent
}

func (r *recordingSink) OnProgress(ctx context.Context, event ProgressEvent) {
	r.events = append(r.events, event)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCheckNetworks(t *testing.T) {
	env := internalconfig.Env{
		internalconfig.EnvGoerliRPC:   "https://goerli.example",
		internalconfig.EnvMainnetRPC:  "https://mainnet.example",
		internalconfig.EnvArbitrumRPC: "https://arbitrum.example",
	}

	t.Run("all networks", func(t *testing.T) {
		checker := &fakeChecker{results: map[string]uint64{"goerli": 5, "mainnet": 1, "arbitrum": 1}}
		sink := &recordingSink{}
		uc := NewCheckNetworks(runtimeConfig(env), checker, nil, sink, discardLogger())

		result, err := uc.Run(context.Background(), CheckNetworksParams{All: true})
		require.NoError(t, err)
		require.Len(t, result.Checks, 4)
		assert.True(t, result.Failed())

		byName := map[string]NetworkCheck{}
		for _, c := range result.Checks {
			byName[c.Name] = c
		}

		assert.True(t, byName["hardhat"].Skipped)
		assert.NoError(t, byName["hardhat"].Error)
		assert.NoError(t, byName["goerli"].Error)
		assert.NoError(t, byName["mainnet"].Error)
		assert.ErrorIs(t, byName["arbitrum"].Error, domain.ErrChainIDMismatch)
		assert.Equal(t, uint64(42161), byName["arbitrum"].ExpectedChainID)

		assert.Len(t, checker.calls, 3, "the built-in network is never dialed")
		require.Len(t, sink.events, 2)
		assert.True(t, sink.events[0].Spinner)
	})

	t.Run("explicit selection keeps order", func(t *testing.T) {
		checker := &fakeChecker{results: map[string]uint64{"goerli": 5, "mainnet": 1}}
		uc := NewCheckNetworks(runtimeConfig(env), checker, nil, &recordingSink{}, discardLogger())

		result, err := uc.Run(context.Background(), CheckNetworksParams{Networks: []string{"mainnet", "goerli"}})
		require.NoError(t, err)
		require.Len(t, result.Checks, 2)
		assert.Equal(t, "mainnet", result.Checks[0].Name)
		assert.Equal(t, "goerli", result.Checks[1].Name)
		assert.False(t, result.Failed())
	})

	t.Run("unknown network", func(t *testing.T) {
		uc := NewCheckNetworks(runtimeConfig(env), &fakeChecker{}, nil, &recordingSink{}, discardLogger())

		_, err := uc.Run(context.Background(), CheckNetworksParams{Networks: []string{"sepolia"}})
		assert.ErrorIs(t, err, domain.ErrNetworkNotFound)
	})

	t.Run("empty endpoint fails", func(t *testing.T) {
		uc := NewCheckNetworks(runtimeConfig(internalconfig.Env{}), &fakeChecker{}, nil, &recordingSink{}, discardLogger())

		result, err := uc.Run(context.Background(), CheckNetworksParams{Networks: []string{"mainnet"}})
		require.NoError(t, err)
		assert.ErrorIs(t, result.Checks[0].Error, domain.ErrEmptyEndpoint)
	})

	t.Run("configured network", func(t *testing.T) {
		cfg := runtimeConfig(env)
		cfg.Network = "goerli"
		checker := &fakeChecker{results: map[string]uint64{"goerli": 5}}
		uc := NewCheckNetworks(cfg, checker, nil, &recordingSink{}, discardLogger())

		result, err := uc.Run(context.Background(), CheckNetworksParams{})
		require.NoError(t, err)
		require.Len(t, result.Checks, 1)
		assert.Equal(t, "goerli", result.Checks[0].Name)
	})

	t.Run("interactive selection", func(t *testing.T) {
		cfg := runtimeConfig(env)
		cfg.NonInteractive = false
		selector := &fakeSelector{choice: "mainnet"}
		checker := &fakeChecker{results: map[string]uint64{"mainnet": 1}}
		uc := NewCheckNetworks(cfg, checker, selector, &recordingSink{}, discardLogger())

		result, err := uc.Run(context.Background(), CheckNetworksParams{})
		require.NoError(t, err)
		assert.True(t, selector.called)
		require.Len(t, result.Checks, 1)
		assert.Equal(t, "mainnet", result.Checks[0].Name)
	})

	t.Run("non-interactive falls back to all", func(t *testing.T) {
		selector := &fakeSelector{choice: "mainnet"}
		uc := NewCheckNetworks(runtimeConfig(env), &fakeChecker{}, selector, &recordingSink{}, discardLogger())

		result, err := uc.Run(context.Background(), CheckNetworksParams{})
		require.NoError(t, err)
		assert.False(t, selector.called)
		assert.Len(t, result.Checks, 4)
	})
}

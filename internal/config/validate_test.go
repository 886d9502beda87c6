package config

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/chaincfg/internal/domain"
)

// anvil's first development account
const (
	testPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func completeEnv() Env {
	return Env{
		EnvGoerliRPC:       "https://goerli.example",
		EnvMainnetRPC:      "https://mainnet.example",
		EnvArbitrumRPC:     "wss://arbitrum.example",
		EnvPrivateKey:      testPrivateKey,
		EnvEtherscanAPIKey: "ETHKEY",
		EnvArbiscanAPIKey:  "ARBKEY",
	}
}

func findIssue(issues Issues, network, field string) *Issue {
	for i := range issues {
		if issues[i].Network == network && issues[i].Field == field {
			return &issues[i]
		}
	}
	return nil
}

func TestValidate_CompleteConfig(t *testing.T) {
	issues := Validate(Assemble(completeEnv()))

	assert.Empty(t, issues)
	assert.False(t, issues.HasErrors())
	assert.NoError(t, issues.Err())
}

func TestValidate_EmptyEnvOnlyWarns(t *testing.T) {
	issues := Validate(Assemble(Env{}))

	require.NotEmpty(t, issues)
	assert.False(t, issues.HasErrors())

	for _, name := range []string{"goerli", "mainnet", "arbitrum"} {
		issue := findIssue(issues, name, "url")
		require.NotNil(t, issue, name)
		assert.Equal(t, SeverityWarning, issue.Severity)

		issue = findIssue(issues, name, "accounts[0]")
		require.NotNil(t, issue, name)
		assert.Equal(t, SeverityWarning, issue.Severity)
	}
	for _, key := range []string{"mainnet", "goerli", "arbitrumOne"} {
		assert.NotNil(t, findIssue(issues, "", "etherscan.apiKey."+key), key)
	}

	// the built-in network has no url or accounts to complain about
	assert.Nil(t, findIssue(issues, "hardhat", "url"))
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(env Env)
		network string
		field   string
	}{
		{
			name:    "bad scheme",
			mutate:  func(env Env) { env[EnvMainnetRPC] = "ftp://mainnet.example" },
			network: "mainnet",
			field:   "url",
		},
		{
			name:    "missing host",
			mutate:  func(env Env) { env[EnvGoerliRPC] = "https://" },
			network: "goerli",
			field:   "url",
		},
		{
			name:    "not a private key",
			mutate:  func(env Env) { env[EnvPrivateKey] = "abc123" },
			network: "mainnet",
			field:   "accounts[0]",
		},
		{
			name:    "untrimmed key reaches mainnet as is",
			mutate:  func(env Env) { env[EnvPrivateKey] = " " + testPrivateKey + " " },
			network: "arbitrum",
			field:   "accounts[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := completeEnv()
			tt.mutate(env)

			issues := Validate(Assemble(env))
			require.True(t, issues.HasErrors())

			var found bool
			for _, issue := range issues.Errors() {
				if issue.Network == tt.network && issue.Field == tt.field {
					found = true
				}
			}
			assert.True(t, found, "expected error on %s.%s, got %v", tt.network, tt.field, issues)

			err := issues.Err()
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidationFailed))
		})
	}
}

func TestValidate_InconsistentTrimming(t *testing.T) {
	env := completeEnv()
	env[EnvPrivateKey] = testPrivateKey + "\n"

	issues := Validate(Assemble(env))

	for _, network := range []string{"mainnet", "arbitrum"} {
		var onAccount Issues
		for _, issue := range issues {
			if issue.Network == network && issue.Field == "accounts[0]" {
				onAccount = append(onAccount, issue)
			}
		}
		require.Len(t, onAccount, 1, "one finding per untrimmed credential on %s", network)
		assert.Equal(t, SeverityError, onAccount[0].Severity)
		assert.Equal(t, "credential has surrounding whitespace that other networks trim", onAccount[0].Message)
	}
	assert.Nil(t, findIssue(issues, "goerli", "accounts[0]"), "goerli receives the trimmed key")

	// normalizing removes the findings
	normalized := Validate(AssembleWith(env, Options{NormalizeAccounts: true}))
	assert.Empty(t, normalized)
}

func TestValidate_DefaultNetworkMissing(t *testing.T) {
	cfg := Assemble(completeEnv())
	delete(cfg.Networks, cfg.DefaultNetwork)

	issues := Validate(cfg)
	issue := findIssue(issues, "", "defaultNetwork")
	require.NotNil(t, issue)
	assert.Equal(t, SeverityError, issue.Severity)
}

func TestValidate_ChainIDMismatch(t *testing.T) {
	cfg := Assemble(completeEnv())
	goerli := cfg.Networks["goerli"]
	goerli.ChainID = 11155111
	cfg.Networks["goerli"] = goerli

	issue := findIssue(Validate(cfg), "goerli", "chainId")
	require.NotNil(t, issue)
	assert.Equal(t, SeverityError, issue.Severity)
}

func TestValidate_NegativeOptimizerRuns(t *testing.T) {
	cfg := Assemble(completeEnv())
	cfg.Solidity.Compilers[0].Settings.Optimizer.Runs = -1

	issue := findIssue(Validate(cfg), "", "solidity.optimizer.runs")
	require.NotNil(t, issue)
	assert.Equal(t, SeverityError, issue.Severity)
}

func TestAccountAddress(t *testing.T) {
	addr, err := AccountAddress(testPrivateKey)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(testAddress), addr)

	addr, err = AccountAddress(testPrivateKey[2:])
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(testAddress), addr)

	addr, err = AccountAddress("0X" + testPrivateKey[2:])
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(testAddress), addr)

	for _, bad := range []string{"", "0x", "zz", " " + testPrivateKey} {
		_, err := AccountAddress(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidPrivateKey, bad)
	}
}

func TestIssueString(t *testing.T) {
	assert.Equal(t, "warning: mainnet.url: endpoint URL is empty",
		Issue{Severity: SeverityWarning, Network: "mainnet", Field: "url", Message: "endpoint URL is empty"}.String())
	assert.Equal(t, "error: defaultNetwork: missing",
		Issue{Severity: SeverityError, Field: "defaultNetwork", Message: "missing"}.String())
}

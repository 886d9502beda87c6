package config

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/samber/lo"
	"github.com/trebuchet-org/chaincfg/internal/domain"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Issue is a single finding produced by Validate
type Issue struct {
	Severity Severity
	Network  string
	Field    string
	Message  string
}

func (i Issue) String() string {
	scope := i.Field
	if i.Network != "" {
		scope = i.Network + "." + i.Field
	}
	return fmt.Sprintf("%s: %s: %s", i.Severity, scope, i.Message)
}

type Issues []Issue

// HasErrors reports whether any issue is error-level
func (is Issues) HasErrors() bool {
	return lo.SomeBy(is, func(i Issue) bool { return i.Severity == SeverityError })
}

// Errors returns only the error-level issues
func (is Issues) Errors() Issues {
	return lo.Filter(is, func(i Issue, _ int) bool { return i.Severity == SeverityError })
}

// Err returns ErrValidationFailed wrapped with the first error, or nil
func (is Issues) Err() error {
	errs := is.Errors()
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d error(s), first: %s", domain.ErrValidationFailed, len(errs), errs[0])
}

// Validate inspects an assembled configuration. It never changes it, and an
// unset variable is only ever a warning: assembly itself does not fail.
func Validate(cfg *config.BuildConfig) Issues {
	var issues Issues

	if len(cfg.Solidity.Compilers) != 1 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Field:    "solidity.compilers",
			Message:  fmt.Sprintf("expected exactly one compiler, found %d", len(cfg.Solidity.Compilers)),
		})
	}
	for _, c := range cfg.Solidity.Compilers {
		if c.Settings.Optimizer.Runs < 0 {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Field:    "solidity.optimizer.runs",
				Message:  fmt.Sprintf("runs must be non-negative, got %d", c.Settings.Optimizer.Runs),
			})
		}
	}

	if _, ok := cfg.Networks[cfg.DefaultNetwork]; !ok {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Field:    "defaultNetwork",
			Message:  fmt.Sprintf("default network '%s' is not a configured network", cfg.DefaultNetwork),
		})
	}

	untrimmed := untrimmedAccounts(cfg)
	for _, name := range cfg.NetworkNames() {
		issues = append(issues, validateNetwork(name, cfg.Networks[name], untrimmed)...)
	}

	keys := lo.Keys(cfg.Etherscan.APIKey)
	sort.Strings(keys)
	for _, k := range keys {
		if cfg.Etherscan.APIKey[k] == "" {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Field:    "etherscan.apiKey." + k,
				Message:  "verification key is empty",
			})
		}
	}

	return issues
}

func validateNetwork(name string, n config.NetworkConfig, untrimmed map[accountRef]bool) Issues {
	var issues Issues

	if chain, ok := LookupChainByName(name); ok && chain.ID != n.ChainID {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Network:  name,
			Field:    "chainId",
			Message:  fmt.Sprintf("well-known chain ID for %s is %d, configured %d", name, chain.ID, n.ChainID),
		})
	}

	// the built-in development network has neither url nor accounts
	if chain, ok := LookupChain(n.ChainID); ok && chain.Local {
		return issues
	}

	switch {
	case n.URL == "":
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Network:  name,
			Field:    "url",
			Message:  "endpoint URL is empty",
		})
	default:
		if err := validateEndpoint(n.URL); err != nil {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Network:  name,
				Field:    "url",
				Message:  err.Error(),
			})
		}
	}

	for i, account := range n.Accounts {
		field := fmt.Sprintf("accounts[%d]", i)
		if account == "" {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Network:  name,
				Field:    field,
				Message:  "account credential is empty",
			})
			continue
		}
		if untrimmed[accountRef{name, i}] {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Network:  name,
				Field:    field,
				Message:  "credential has surrounding whitespace that other networks trim",
			})
			continue
		}
		if _, err := AccountAddress(account); err != nil {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Network:  name,
				Field:    field,
				Message:  err.Error(),
			})
		}
	}

	return issues
}

type accountRef struct {
	network string
	index   int
}

// untrimmedAccounts finds credentials with surrounding whitespace whose trimmed
// form is also handed to another network
func untrimmedAccounts(cfg *config.BuildConfig) map[accountRef]bool {
	byTrimmed := map[string][]string{}
	for _, name := range cfg.NetworkNames() {
		for _, account := range cfg.Networks[name].Accounts {
			if account == "" {
				continue
			}
			trimmed := strings.TrimSpace(account)
			byTrimmed[trimmed] = append(byTrimmed[trimmed], name)
		}
	}

	untrimmed := map[accountRef]bool{}
	for _, name := range cfg.NetworkNames() {
		for i, account := range cfg.Networks[name].Accounts {
			trimmed := strings.TrimSpace(account)
			if account != trimmed && len(byTrimmed[trimmed]) > 1 {
				untrimmed[accountRef{name, i}] = true
			}
		}
	}
	return untrimmed
}

func validateEndpoint(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("endpoint URL is not parsable: %w", err)
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return fmt.Errorf("endpoint URL has unsupported scheme '%s'", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("endpoint URL has no host")
	}
	return nil
}

// AccountAddress derives the address controlled by a hex private key.
// Surrounding whitespace is an error: the toolchain receives the value as is.
func AccountAddress(privateKey string) (common.Address, error) {
	if strings.TrimSpace(privateKey) != privateKey {
		return common.Address{}, fmt.Errorf("%w: surrounding whitespace", domain.ErrInvalidPrivateKey)
	}
	hexKey := privateKey
	if len(hexKey) >= 2 && hexKey[0] == '0' && (hexKey[1] == 'x' || hexKey[1] == 'X') {
		hexKey = hexKey[2:]
	}
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", domain.ErrInvalidPrivateKey, err)
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

package usecase

import (
	"context"

	internalconfig "github.com/trebuchet-org/chaincfg/internal/config"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// ValidateConfigParams contains parameters for validating the configuration
type ValidateConfigParams struct {
	Strict bool // fail on error-level issues
}

// ValidateConfigResult contains the issues found
type ValidateConfigResult struct {
	Issues internalconfig.Issues
}

// ValidateConfig is a use case for reporting configuration problems ahead of the toolchain
type ValidateConfig struct {
	config *config.RuntimeConfig
}

// NewValidateConfig creates a new ValidateConfig use case
func NewValidateConfig(cfg *config.RuntimeConfig) *ValidateConfig {
	return &ValidateConfig{
		config: cfg,
	}
}

// Run executes the use case. The result is returned even when strict
// validation fails so callers can render the issues.
func (uc *ValidateConfig) Run(ctx context.Context, params ValidateConfigParams) (*ValidateConfigResult, error) {
	result := &ValidateConfigResult{
		Issues: internalconfig.Validate(uc.config.Build),
	}

	if params.Strict || uc.config.Strict {
		return result, result.Issues.Err()
	}
	return result, nil
}

package usecase

import (
	"context"

	internalconfig "github.com/trebuchet-org/chaincfg/internal/config"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// ShowConfigResult contains the assembled configuration and where its values came from
type ShowConfigResult struct {
	Config      *config.BuildConfig
	Sources     []FieldSource
	ProjectRoot string
	EnvFiles    []string
	Normalized  bool
}

// FieldSource is an env-derived field together with whether its variable was set
type FieldSource struct {
	internalconfig.EnvSource
	Set bool
}

// ShowConfig is a use case for displaying the assembled configuration
type ShowConfig struct {
	config *config.RuntimeConfig
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig) *ShowConfig {
	return &ShowConfig{
		config: cfg,
	}
}

// Run executes the use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	env := internalconfig.Env(uc.config.Env)
	opts := internalconfig.Options{NormalizeAccounts: uc.config.NormalizeAccounts}

	sources := make([]FieldSource, 0)
	for _, src := range internalconfig.EnvSources(opts) {
		_, set := env.Lookup(src.Variable)
		sources = append(sources, FieldSource{EnvSource: src, Set: set})
	}

	return &ShowConfigResult{
		Config:      uc.config.Build,
		Sources:     sources,
		ProjectRoot: uc.config.ProjectRoot,
		EnvFiles:    uc.config.EnvFiles,
		Normalized:  uc.config.NormalizeAccounts,
	}, nil
}

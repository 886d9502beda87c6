package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"
	"github.com/trebuchet-org/chaincfg/internal/domain"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
	"gopkg.in/yaml.v3"
)

// Redacted replaces secrets in exported output
const Redacted = "<redacted>"

// Export formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// ExportConfigParams contains parameters for exporting the configuration
type ExportConfigParams struct {
	Format string
	Reveal bool // keep account credentials and API keys in the output
}

// ExportConfigResult contains the encoded configuration
type ExportConfigResult struct {
	Format string
	Data   []byte
}

// ExportConfig is a use case for encoding the configuration for other tools
type ExportConfig struct {
	config *config.RuntimeConfig
}

// NewExportConfig creates a new ExportConfig use case
func NewExportConfig(cfg *config.RuntimeConfig) *ExportConfig {
	return &ExportConfig{
		config: cfg,
	}
}

// Run executes the use case
func (uc *ExportConfig) Run(ctx context.Context, params ExportConfigParams) (*ExportConfigResult, error) {
	build := uc.config.Build
	if !params.Reveal {
		build = redact(build)
	}

	data, err := encode(build, params.Format)
	if err != nil {
		return nil, err
	}

	return &ExportConfigResult{
		Format: params.Format,
		Data:   data,
	}, nil
}

func encode(build *config.BuildConfig, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(build, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(build); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(build); err != nil {
			return nil, fmt.Errorf("failed to encode toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, format)
	}
}

// redact returns a copy of build with non-empty secrets replaced. Empty values
// stay empty so unset variables remain visible.
func redact(build *config.BuildConfig) *config.BuildConfig {
	hide := func(s string) string {
		if s == "" {
			return ""
		}
		return Redacted
	}

	out := *build
	out.Networks = lo.MapValues(build.Networks, func(n config.NetworkConfig, _ string) config.NetworkConfig {
		n.Accounts = lo.Map(n.Accounts, func(a string, _ int) string { return hide(a) })
		return n
	})
	out.Etherscan.APIKey = lo.MapValues(build.Etherscan.APIKey, func(k string, _ string) string {
		return hide(k)
	})
	return &out
}

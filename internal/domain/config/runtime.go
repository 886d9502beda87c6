package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	EnvFiles    []string // env files that were actually read

	// Context settings
	Network string // empty if not specified

	// Execution settings
	Debug          bool
	NonInteractive bool
	Format         string // text, json, yaml or toml
	Timeout        time.Duration

	// Assembly settings
	NormalizeAccounts bool
	Strict            bool

	// Resolved configurations
	Env   map[string]string
	Build *BuildConfig
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// projectMarkers identify the root of a contract project
var projectMarkers = []string{"hardhat.config.ts", "hardhat.config.js", "package.json"}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper, base Env) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:       projectRoot,
		Network:           v.GetString("network"),
		Debug:             v.GetBool("debug"),
		NonInteractive:    v.GetBool("non_interactive"),
		Format:            v.GetString("format"),
		Timeout:           v.GetDuration("timeout"),
		NormalizeAccounts: v.GetBool("normalize_accounts"),
		Strict:            v.GetBool("strict"),
	}

	env, loaded, err := LoadEnv(projectRoot, base, v.GetStringSlice("env_file")...)
	if err != nil {
		return nil, fmt.Errorf("failed to load env files: %w", err)
	}
	cfg.Env = env
	cfg.EnvFiles = loaded

	cfg.Build = AssembleWith(env, Options{NormalizeAccounts: cfg.NormalizeAccounts})

	if cfg.Network != "" {
		if _, err := cfg.Build.Network(cfg.Network); err != nil {
			return nil, fmt.Errorf("failed to resolve network: %w", err)
		}
	}

	return cfg, nil
}

// FindProjectRoot walks up from the current directory looking for a project
// marker, falling back to the current directory when none is found.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findProjectRootFrom(cwd), nil
}

func findProjectRootFrom(start string) string {
	dir := start
	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("CHAINCFG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("format", "text")
	v.SetDefault("timeout", "30s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("normalize_accounts", false)
	v.SetDefault("strict", false)
	v.SetDefault("project_root", projectRoot)

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if !f.Changed {
				return
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				v.Set(key, sv.GetSlice())
				return
			}
			v.Set(key, f.Value.String())
		})
	}

	return v
}

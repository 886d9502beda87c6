package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chaincfg/internal/app"
	"github.com/trebuchet-org/chaincfg/internal/cli/render"
	"github.com/trebuchet-org/chaincfg/internal/config"
	domainconfig "github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chaincfg",
		Short: "Assemble and inspect the contract build configuration",
		Long: `chaincfg assembles the contract build configuration (compiler, networks,
verification keys) from the environment and .env files, and lets you
inspect, export and check it before handing it to the toolchain.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)

			appInstance, err := app.InitApp(v, config.EnvFromOS())
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			if shouldWarnUntrimmedAccount(cmd.Name(), appInstance.Config) {
				fmt.Fprintln(cmd.ErrOrStderr(), render.FormatWarning(
					"PRIVATE_KEY has surrounding whitespace: goerli trims it, mainnet and arbitrum receive it as is (see --normalize-accounts)"))
			}

			appInstance.Logger.Debug("configuration assembled",
				"projectRoot", appInstance.Config.ProjectRoot,
				"envFiles", appInstance.Config.EnvFiles,
				"networks", appInstance.Config.Build.NetworkNames())

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				releaseOnExit(cmd, cancel)
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., mainnet, goerli)")
	rootCmd.PersistentFlags().String("project-root", "", "Project root (defaults to the nearest directory with a hardhat config or package.json)")
	rootCmd.PersistentFlags().StringSlice("env-file", nil, "Env files to read, relative to the project root (defaults to .env and .env.local)")
	rootCmd.PersistentFlags().Bool("normalize-accounts", false, "Trim PRIVATE_KEY for every network, not only goerli")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Timeout for network operations (default 30s)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "network",
		Title: "Network Commands",
	})

	showCmd := NewShowCmd()
	showCmd.GroupID = "main"
	rootCmd.AddCommand(showCmd)

	validateCmd := NewValidateCmd()
	validateCmd.GroupID = "main"
	rootCmd.AddCommand(validateCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "network"
	rootCmd.AddCommand(networksCmd)

	checkCmd := NewCheckCmd()
	checkCmd.GroupID = "network"
	rootCmd.AddCommand(checkCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// shouldWarnUntrimmedAccount reports whether the assembled config hands an
// untrimmed credential to some networks while goerli gets it trimmed
func shouldWarnUntrimmedAccount(cmdName string, cfg *domainconfig.RuntimeConfig) bool {
	if cmdName == "version" || cmdName == "help" || cmdName == "completion" {
		return false
	}
	if cfg == nil || cfg.NormalizeAccounts || cfg.Format != "text" {
		return false
	}
	key := cfg.Env[config.EnvPrivateKey]
	return key != "" && strings.TrimSpace(key) != key
}

// releaseOnExit runs cancel once the command's run function returns. PostRun
// hooks are skipped when RunE fails, so the run function itself is wrapped.
func releaseOnExit(cmd *cobra.Command, cancel context.CancelFunc) {
	switch {
	case cmd.RunE != nil:
		runE := cmd.RunE
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			defer cancel()
			return runE(cmd, args)
		}
	case cmd.Run != nil:
		run := cmd.Run
		cmd.Run = func(cmd *cobra.Command, args []string) {
			defer cancel()
			run(cmd, args)
		}
	default:
		cancel()
	}
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chaincfg/internal/cli/render"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the assembled build configuration",
		Long: `Show the build configuration assembled from the environment.

With --format text (the default) a summary is printed together with the
environment variable behind every env-derived field. json, yaml and toml
print the full settings object for other tools. Account credentials and
API keys are redacted unless --reveal is given.

Examples:
  chaincfg show
  chaincfg show --format json
  chaincfg show --format yaml --reveal`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			format := app.Config.Format
			if format == "" || format == "text" {
				result, err := app.ShowConfig.Run(cmd.Context())
				if err != nil {
					return err
				}
				renderer := render.NewConfigRenderer(cmd.OutOrStdout())
				return renderer.Render(result)
			}

			result, err := app.ExportConfig.Run(cmd.Context(), usecase.ExportConfigParams{
				Format: format,
				Reveal: reveal,
			})
			if err != nil {
				return fmt.Errorf("failed to export config: %w", err)
			}

			renderer := render.NewExportRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringP("format", "f", "text", "Output format (text, json, yaml, toml)")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Include account credentials and API keys in the output")

	return cmd
}

package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chaincfg/internal/cli/render"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// NewValidateCmd creates the validate command
func NewValidateCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Report configuration problems before the toolchain does",
		Long: `Inspect the assembled configuration for empty endpoints, malformed URLs,
invalid private keys, inconsistent trimming and missing verification keys.

Missing values only produce warnings: the toolchain accepts them and fails
later. With --strict, error-level issues make the command fail.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, runErr := app.ValidateConfig.Run(cmd.Context(), usecase.ValidateConfigParams{Strict: strict})
			if result != nil {
				renderer := render.NewValidateRenderer(cmd.OutOrStdout())
				if err := renderer.Render(result); err != nil {
					return err
				}
			}
			return runErr
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when error-level issues are found")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chaincfg/internal/cli/render"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "check [network...]",
		Short: "Probe network endpoints",
		Long: `Connect to the endpoint of each selected network and compare the chain ID
it reports with the configured one.

Without arguments the --network flag is used; failing that you are asked to
pick a network, or all networks are checked in non-interactive mode.

Examples:
  chaincfg check mainnet
  chaincfg check --all
  chaincfg check -n goerli`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.CheckNetworks.Run(cmd.Context(), usecase.CheckNetworksParams{
				Networks: args,
				All:      all,
			})
			if err != nil {
				return err
			}

			renderer := render.NewCheckRenderer(cmd.OutOrStdout())
			if err := renderer.Render(result); err != nil {
				return err
			}

			if result.Failed() {
				return fmt.Errorf("one or more network checks failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Check every configured network")

	return cmd
}

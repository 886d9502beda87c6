package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{
		out: out,
	}
}

// Render renders the configured networks as a table
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.AppendHeader(table.Row{"Network", "Chain ID", "Gas Price", "URL", "Account", "Verify Key", "Explorer"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})

	for _, n := range result.Networks {
		name := n.Name
		if n.Default {
			name = color.New(color.Bold).Sprint(name + " (default)")
		}

		url, account, verify := "-", "-", "-"
		if !n.Local {
			url = mark(n.URLSet)
			account = mark(n.AccountSet)
		}
		if n.VerifyKey != "" {
			verify = fmt.Sprintf("%s %s", n.VerifyKey, mark(n.VerifyKeySet))
		}

		explorer := n.Explorer
		if explorer == "" {
			explorer = "-"
		}

		t.AppendRow(table.Row{name, n.ChainID, n.GasPrice, url, account, verify, explorer})
	}

	t.Render()
	return nil
}

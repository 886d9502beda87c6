package render

import (
	"fmt"
	"io"
	"time"

	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// CheckRenderer renders network probe results
type CheckRenderer struct {
	out io.Writer
}

// NewCheckRenderer creates a new check renderer
func NewCheckRenderer(out io.Writer) *CheckRenderer {
	return &CheckRenderer{
		out: out,
	}
}

// Render renders one line per checked network
func (r *CheckRenderer) Render(result *usecase.CheckNetworksResult) error {
	for _, c := range result.Checks {
		switch {
		case c.Skipped:
			fmt.Fprintf(r.out, "  ⏭️  %s - skipped (built-in network)\n", c.Name)
		case c.Error != nil:
			fmt.Fprintf(r.out, "  ❌ %s - Error: %v\n", c.Name, c.Error)
		default:
			fmt.Fprintf(r.out, "  ✅ %s - Chain ID: %d, block %d (%s)\n",
				c.Name, c.Result.ChainID, c.Result.BlockNumber, c.Result.Latency.Round(time.Millisecond))
		}
	}
	return nil
}

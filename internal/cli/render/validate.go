package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	internalconfig "github.com/trebuchet-org/chaincfg/internal/config"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// ValidateRenderer renders validation issues
type ValidateRenderer struct {
	out io.Writer
}

// NewValidateRenderer creates a new validate renderer
func NewValidateRenderer(out io.Writer) *ValidateRenderer {
	return &ValidateRenderer{
		out: out,
	}
}

// Render renders the issues in the order they were found
func (r *ValidateRenderer) Render(result *usecase.ValidateConfigResult) error {
	if len(result.Issues) == 0 {
		fmt.Fprintln(r.out, FormatSuccess("Configuration looks good"))
		return nil
	}

	for _, issue := range result.Issues {
		scope := issue.Field
		if issue.Network != "" {
			scope = issue.Network + "." + issue.Field
		}

		c := color.New(color.FgYellow)
		if issue.Severity == internalconfig.SeverityError {
			c = color.New(color.FgRed)
		}
		fmt.Fprintf(r.out, "%s %s: %s\n", c.Sprintf("%-8s", title(string(issue.Severity))), scope, issue.Message)
	}

	errs := len(result.Issues.Errors())
	fmt.Fprintf(r.out, "\n%d issue(s), %d error(s)\n", len(result.Issues), errs)
	return nil
}

package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

// Render renders the configuration summary
func (r *ConfigRenderer) Render(result *usecase.ShowConfigResult) error {
	cfg := result.Config
	bold := color.New(color.Bold)

	fmt.Fprintln(r.out, "📋 Build config:")
	for _, c := range cfg.Solidity.Compilers {
		optimizer := "disabled"
		if c.Settings.Optimizer.Enabled {
			optimizer = fmt.Sprintf("enabled, %d runs", c.Settings.Optimizer.Runs)
		}
		fmt.Fprintf(r.out, "Compiler:        solc %s (optimizer %s)\n", c.Version, optimizer)
	}
	fmt.Fprintf(r.out, "Default network: %s\n", cfg.DefaultNetwork)
	fmt.Fprintf(r.out, "Networks:        %s\n", strings.Join(cfg.NetworkNames(), ", "))
	fmt.Fprintf(r.out, "Dependencies:    %s\n", strings.Join(cfg.DependencyCompiler.Paths, ", "))
	fmt.Fprintf(r.out, "Test timeout:    %d ms\n", cfg.Mocha.Timeout)

	fmt.Fprintln(r.out)
	bold.Fprintln(r.out, "🔑 Environment:")
	for _, src := range result.Sources {
		scope := src.Field
		if src.Network != "" {
			scope = src.Network + "." + src.Field
		}
		trimmed := ""
		if src.Trimmed {
			trimmed = " (trimmed)"
		}
		fmt.Fprintf(r.out, "  %-30s %-22s %s%s\n", scope, src.Variable, mark(src.Set), trimmed)
	}

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "📁 project root: %s\n", getRelativePath(result.ProjectRoot))
	if len(result.EnvFiles) == 0 {
		fmt.Fprintln(r.out, "📦 env files: (none)")
	} else {
		rel := make([]string, len(result.EnvFiles))
		for i, f := range result.EnvFiles {
			rel[i] = getRelativePath(f)
		}
		fmt.Fprintf(r.out, "📦 env files: %s\n", strings.Join(rel, ", "))
	}

	return nil
}

// ExportRenderer writes encoded configurations
type ExportRenderer struct {
	out io.Writer
}

// NewExportRenderer creates a new export renderer
func NewExportRenderer(out io.Writer) *ExportRenderer {
	return &ExportRenderer{
		out: out,
	}
}

// Render writes the encoded configuration as is
func (r *ExportRenderer) Render(result *usecase.ExportConfigResult) error {
	_, err := r.out.Write(result.Data)
	return err
}

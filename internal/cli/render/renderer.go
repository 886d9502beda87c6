package render

import "github.com/trebuchet-org/chaincfg/internal/usecase"

// Renderer writes the result of a use case to its output
type Renderer[T any] interface {
	Render(result T) error
}

var (
	_ Renderer[*usecase.ShowConfigResult]     = (*ConfigRenderer)(nil)
	_ Renderer[*usecase.ExportConfigResult]   = (*ExportRenderer)(nil)
	_ Renderer[*usecase.ListNetworksResult]   = (*NetworksRenderer)(nil)
	_ Renderer[*usecase.CheckNetworksResult]  = (*CheckRenderer)(nil)
	_ Renderer[*usecase.ValidateConfigResult] = (*ValidateRenderer)(nil)
)

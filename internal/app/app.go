package app

import (
	"log/slog"

	"github.com/trebuchet-org/chaincfg/internal/domain/config"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Logger *slog.Logger

	// Use cases
	ShowConfig     *usecase.ShowConfig
	ExportConfig   *usecase.ExportConfig
	ListNetworks   *usecase.ListNetworks
	CheckNetworks  *usecase.CheckNetworks
	ValidateConfig *usecase.ValidateConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	logger *slog.Logger,
	showConfig *usecase.ShowConfig,
	exportConfig *usecase.ExportConfig,
	listNetworks *usecase.ListNetworks,
	checkNetworks *usecase.CheckNetworks,
	validateConfig *usecase.ValidateConfig,
) (*App, error) {
	return &App{
		Config:         cfg,
		Logger:         logger,
		ShowConfig:     showConfig,
		ExportConfig:   exportConfig,
		ListNetworks:   listNetworks,
		CheckNetworks:  checkNetworks,
		ValidateConfig: validateConfig,
	}, nil
}

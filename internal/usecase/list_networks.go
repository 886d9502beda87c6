package usecase

import (
	"context"

	internalconfig "github.com/trebuchet-org/chaincfg/internal/config"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Currently no parameters, but we keep the struct for future extensibility
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Default  string
	Networks []NetworkStatus
}

// NetworkStatus summarises one configured network
type NetworkStatus struct {
	Name         string
	ChainID      uint64
	ChainName    string
	Explorer     string
	GasPrice     string
	Timeout      *uint64
	Default      bool
	Local        bool
	URLSet       bool
	AccountSet   bool
	VerifyKey    string // explorer plugin key name, empty if none applies
	VerifyKeySet bool
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	config *config.RuntimeConfig
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig) *ListNetworks {
	return &ListNetworks{
		config: cfg,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	build := uc.config.Build

	networks := make([]NetworkStatus, 0, len(build.Networks))
	for _, name := range build.NetworkNames() {
		n := build.Networks[name]
		status := NetworkStatus{
			Name:       name,
			ChainID:    n.ChainID,
			GasPrice:   n.GasPriceGwei(),
			Timeout:    n.Timeout,
			Default:    name == build.DefaultNetwork,
			URLSet:     n.HasURL(),
			AccountSet: n.HasAccounts(),
		}

		if chain, ok := internalconfig.LookupChain(n.ChainID); ok {
			status.ChainName = chain.Name
			status.Explorer = chain.ExplorerURL
			status.Local = chain.Local
		}

		if key, keyName, ok := internalconfig.ExplorerKeyFor(build, name); ok {
			status.VerifyKey = keyName
			status.VerifyKeySet = key != ""
		}

		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Default:  build.DefaultNetwork,
		Networks: networks,
	}, nil
}

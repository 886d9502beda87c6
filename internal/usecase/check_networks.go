package usecase

import (
	"context"
	"fmt"
	"log/slog"

	internalconfig "github.com/trebuchet-org/chaincfg/internal/config"
	"github.com/trebuchet-org/chaincfg/internal/domain"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentProbes bounds the number of endpoints dialed at once
const maxConcurrentProbes = 4

// CheckNetworksParams contains parameters for checking networks
type CheckNetworksParams struct {
	Networks []string // explicit selection; empty means the configured network, a prompt, or all
	All      bool
}

// CheckNetworksResult contains one check per selected network, in sorted order
type CheckNetworksResult struct {
	Checks []NetworkCheck
}

// Failed reports whether any network check failed
func (r *CheckNetworksResult) Failed() bool {
	for _, c := range r.Checks {
		if c.Error != nil {
			return true
		}
	}
	return false
}

// NetworkCheck is the outcome of probing one network
type NetworkCheck struct {
	Name            string
	ExpectedChainID uint64
	Result          *domain.ProbeResult
	Skipped         bool // no endpoint to probe, e.g. the built-in development network
	Error           error
}

// CheckNetworks is a use case for probing configured endpoints
type CheckNetworks struct {
	config   *config.RuntimeConfig
	checker  ChainChecker
	selector NetworkSelector
	progress ProgressSink
	log      *slog.Logger
}

// NewCheckNetworks creates a new CheckNetworks use case
func NewCheckNetworks(
	cfg *config.RuntimeConfig,
	checker ChainChecker,
	selector NetworkSelector,
	progress ProgressSink,
	log *slog.Logger,
) *CheckNetworks {
	return &CheckNetworks{
		config:   cfg,
		checker:  checker,
		selector: selector,
		progress: progress,
		log:      log.With("component", "CheckNetworks"),
	}
}

// Run executes the use case
func (uc *CheckNetworks) Run(ctx context.Context, params CheckNetworksParams) (*CheckNetworksResult, error) {
	names, err := uc.selectNetworks(ctx, params)
	if err != nil {
		return nil, err
	}

	build := uc.config.Build
	checks := make([]NetworkCheck, len(names))
	for i, name := range names {
		network, err := build.Network(name)
		if err != nil {
			return nil, err
		}
		checks[i] = NetworkCheck{Name: name, ExpectedChainID: network.ChainID}
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "probing",
		Message: fmt.Sprintf("Probing %d network(s)", len(names)),
		Spinner: true,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentProbes)
	for i := range checks {
		check := &checks[i]
		network := build.Networks[check.Name]
		if !network.HasURL() && isLocalChain(network.ChainID) {
			check.Skipped = true
			continue
		}

		g.Go(func() error {
			uc.log.Debug("probing network", "network", check.Name, "chainId", check.ExpectedChainID)
			result, err := uc.checker.Probe(gctx, check.Name, network.URL, network.ChainID)
			check.Result = result
			check.Error = err
			// a failing endpoint must not cancel the others
			return nil
		})
	}
	_ = g.Wait()

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "completed"})

	return &CheckNetworksResult{Checks: checks}, nil
}

func (uc *CheckNetworks) selectNetworks(ctx context.Context, params CheckNetworksParams) ([]string, error) {
	build := uc.config.Build
	switch {
	case params.All:
		return build.NetworkNames(), nil
	case len(params.Networks) > 0:
		for _, name := range params.Networks {
			if _, err := build.Network(name); err != nil {
				return nil, err
			}
		}
		return params.Networks, nil
	case uc.config.Network != "":
		return []string{uc.config.Network}, nil
	case !uc.config.NonInteractive && uc.selector != nil:
		name, err := uc.selector.SelectNetwork(ctx, build.NetworkNames(), "Select a network to check")
		if err != nil {
			return nil, err
		}
		return []string{name}, nil
	default:
		return build.NetworkNames(), nil
	}
}

func isLocalChain(chainID uint64) bool {
	chain, ok := internalconfig.LookupChain(chainID)
	return ok && chain.Local
}

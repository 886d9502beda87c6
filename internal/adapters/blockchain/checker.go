package blockchain

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/chaincfg/internal/domain"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// defaultProbeTimeout applies when the runtime config carries no timeout
const defaultProbeTimeout = 10 * time.Second

// CheckerAdapter implements the ChainChecker interface using ethclient
type CheckerAdapter struct {
	timeout time.Duration
}

// NewCheckerAdapter creates a new blockchain checker adapter
func NewCheckerAdapter(cfg *config.RuntimeConfig) *CheckerAdapter {
	timeout := defaultProbeTimeout
	if cfg != nil && cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}
	return &CheckerAdapter{timeout: timeout}
}

// Probe dials rpcURL and compares the reported chain ID with expectedChainID
func (c *CheckerAdapter) Probe(ctx context.Context, network, rpcURL string, expectedChainID uint64) (*domain.ProbeResult, error) {
	if rpcURL == "" {
		return nil, fmt.Errorf("%s: %w", network, domain.ErrEmptyEndpoint)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	blockNumber, err := client.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get block number: %w", err)
	}

	result := &domain.ProbeResult{
		ChainID:     chainID.Uint64(),
		BlockNumber: blockNumber,
		Latency:     time.Since(start),
	}

	if result.ChainID != expectedChainID {
		return result, domain.ChainIDMismatchErr{
			Network:  network,
			Expected: expectedChainID,
			Actual:   result.ChainID,
		}
	}

	return result, nil
}

// Ensure the adapter implements the interface
var _ usecase.ChainChecker = (*CheckerAdapter)(nil)

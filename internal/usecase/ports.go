package usecase

import (
	"context"

	"github.com/trebuchet-org/chaincfg/internal/domain"
)

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool // Whether to show spinner
}

// ProgressSink receives progress updates
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
}

// ChainChecker talks to a live endpoint
type ChainChecker interface {
	Probe(ctx context.Context, network, rpcURL string, expectedChainID uint64) (*domain.ProbeResult, error)
}

// NetworkSelector lets the user pick networks
type NetworkSelector interface {
	SelectNetwork(ctx context.Context, names []string, prompt string) (string, error)
}

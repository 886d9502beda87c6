package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/chaincfg/internal/adapters/blockchain"
	"github.com/trebuchet-org/chaincfg/internal/adapters/interactive"
	"github.com/trebuchet-org/chaincfg/internal/adapters/progress"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// BlockchainSet provides live chain implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewCheckerAdapter,
	wire.Bind(new(usecase.ChainChecker), new(*blockchain.CheckerAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.NetworkSelector), new(*interactive.SelectorAdapter)),
)

// ProgressSet provides progress reporting
var ProgressSet = wire.NewSet(
	progress.NewProgressSink,
)

// AllAdapters combines all adapter sets
var AllAdapters = wire.NewSet(
	BlockchainSet,
	InteractiveSet,
	ProgressSet,
)

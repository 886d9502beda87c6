package config

import (
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// Chain describes a well-known public network
type Chain struct {
	ID          uint64
	Name        string
	ExplorerURL string
	APIURL      string
	// VerifyKey is the explorer plugin's name for this chain in etherscan.apiKey
	VerifyKey string
	Local     bool
}

var knownChains = map[uint64]Chain{
	1:        {ID: 1, Name: "mainnet", ExplorerURL: "https://etherscan.io", APIURL: "https://api.etherscan.io/api", VerifyKey: "mainnet"},
	5:        {ID: 5, Name: "goerli", ExplorerURL: "https://goerli.etherscan.io", APIURL: "https://api-goerli.etherscan.io/api", VerifyKey: "goerli"},
	10:       {ID: 10, Name: "optimism", ExplorerURL: "https://optimistic.etherscan.io", APIURL: "https://api-optimistic.etherscan.io/api", VerifyKey: "optimisticEthereum"},
	56:       {ID: 56, Name: "bsc", ExplorerURL: "https://bscscan.com", APIURL: "https://api.bscscan.com/api", VerifyKey: "bsc"},
	137:      {ID: 137, Name: "polygon", ExplorerURL: "https://polygonscan.com", APIURL: "https://api.polygonscan.com/api", VerifyKey: "polygon"},
	250:      {ID: 250, Name: "fantom", ExplorerURL: "https://ftmscan.com", APIURL: "https://api.ftmscan.com/api", VerifyKey: "opera"},
	8453:     {ID: 8453, Name: "base", ExplorerURL: "https://basescan.org", APIURL: "https://api.basescan.org/api", VerifyKey: "base"},
	31337:    {ID: 31337, Name: "hardhat", Local: true},
	42161:    {ID: 42161, Name: "arbitrum", ExplorerURL: "https://arbiscan.io", APIURL: "https://api.arbiscan.io/api", VerifyKey: "arbitrumOne"},
	42220:    {ID: 42220, Name: "celo", ExplorerURL: "https://celoscan.io", APIURL: "https://api.celoscan.io/api", VerifyKey: "celo"},
	43114:    {ID: 43114, Name: "avalanche", ExplorerURL: "https://snowtrace.io", APIURL: "https://api.snowtrace.io/api", VerifyKey: "avalanche"},
	11155111: {ID: 11155111, Name: "sepolia", ExplorerURL: "https://sepolia.etherscan.io", APIURL: "https://api-sepolia.etherscan.io/api", VerifyKey: "sepolia"},
}

// LookupChain returns the well-known chain for id
func LookupChain(id uint64) (Chain, bool) {
	c, ok := knownChains[id]
	return c, ok
}

// LookupChainByName returns the well-known chain whose canonical name is name
func LookupChainByName(name string) (Chain, bool) {
	for _, c := range knownChains {
		if c.Name == name {
			return c, true
		}
	}
	return Chain{}, false
}

// ExplorerKeyFor returns the verification key that applies to a network, looked
// up through the explorer plugin's name for the network's chain.
func ExplorerKeyFor(cfg *config.BuildConfig, network string) (key string, name string, ok bool) {
	n, exists := cfg.Networks[network]
	if !exists {
		return "", "", false
	}
	chain, known := LookupChain(n.ChainID)
	if !known || chain.VerifyKey == "" {
		return "", "", false
	}
	key, ok = cfg.Etherscan.APIKey[chain.VerifyKey]
	return key, chain.VerifyKey, ok
}

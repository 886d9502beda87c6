package domain

import "time"

// ProbeResult is what a live endpoint reported about itself
type ProbeResult struct {
	ChainID     uint64        `json:"chainId"`
	BlockNumber uint64        `json:"blockNumber"`
	Latency     time.Duration `json:"latency"`
}

package memdb

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hedisam/ledgercore/internal/custompromauto"
)

// The gauges below are package level, so they describe the most recently
// created store of each kind. A process is expected to run a single
// StateStore and a single ChainStore; NewChainStore and NewStateStore reset
// the gauge they own.
var (
	createdAccounts = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "ledgercore_accounts_created_total",
		Help: "Total number of accounts created on first write",
	})
	accountsGauge = custompromauto.Auto().NewGauge(prometheus.GaugeOpts{
		Name: "ledgercore_accounts",
		Help: "Number of accounts currently held in state",
	})
	nonceIncrements = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "ledgercore_nonce_increments_total",
		Help: "Total number of nonce increments",
	})

	appendedBlocks = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "ledgercore_blocks_appended_total",
		Help: "Total number of blocks appended to the chain",
	})
	chainLength = custompromauto.Auto().NewGauge(prometheus.GaugeOpts{
		Name: "ledgercore_chain_length",
		Help: "Number of blocks in the chain, genesis included",
	})
)

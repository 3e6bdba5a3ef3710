package eth

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hedisam/ledgercore/internal/custompromauto"
)

var failedHeaderRetrievals = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
	Name: "ledgercore_failed_header_retrievals_total",
	Help: "Number of failed header retrievals from the eth node",
})

var retrievedHeaders = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
	Name: "ledgercore_header_retrievals_total",
	Help: "Number of successful header retrievals from the eth node",
})

var reorgDroppedHeaders = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
	Name: "ledgercore_reorg_dropped_headers_total",
	Help: "Number of headers dropped from the confirmation window due to chain reorganisation",
})

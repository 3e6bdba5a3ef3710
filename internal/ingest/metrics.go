package ingest

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hedisam/ledgercore/internal/custompromauto"
)

var (
	headersFailedIngesting = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "ledgercore_headers_failed_ingesting_total",
		Help: "Total number of confirmed headers that could not be appended to the chain",
	})

	ingestedHeaders = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "ledgercore_headers_ingested_total",
		Help: "Total number of confirmed headers appended to the chain",
	})
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "papermc_website",
		Name:      "upstream_requests_total",
		Help:      "Requests sent to the downloads API by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	UpstreamLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "papermc_website",
		Name:      "upstream_request_duration_seconds",
		Help:      "Latency of downloads API requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})

	PageRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "papermc_website",
		Name:      "page_renders_total",
		Help:      "Rendered pages by page and whether release data was available.",
	}, []string{"page", "state"})
)

const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"

	StateLoaded  = "loaded"
	StateLoading = "loading"
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysisRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cvos",
		Name:      "analysis_requests_total",
		Help:      "CV analysis requests by mode and outcome.",
	}, []string{"mode", "outcome"})

	AnalysisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cvos",
		Name:      "analysis_duration_seconds",
		Help:      "Latency of calls to the analysis backend.",
		Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
	}, []string{"mode"})

	ProfileSaves = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cvos",
		Name:      "profile_saves_total",
		Help:      "Profile write-through attempts by outcome.",
	}, []string{"outcome"})

	ProfileLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cvos",
		Name:      "profile_loads_total",
		Help:      "Profile hydrations by outcome (hit, miss, discarded, error).",
	}, []string{"outcome"})

	ExportsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cvos",
		Name:      "profile_exports_total",
		Help:      "PDF exports handled by the worker by outcome.",
	}, []string{"outcome"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cvos",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route template and status code.",
	}, []string{"method", "route", "status"})
)

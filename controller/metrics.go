package controller

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	standingsCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gohls_standings_cache_hits_total",
		Help: "Standings requests served from the cache.",
	})
	standingsCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gohls_standings_cache_misses_total",
		Help: "Standings requests that required a full recomputation.",
	})
	standingsComputeSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gohls_standings_compute_seconds",
		Help:    "Wall-clock time of one standings aggregation pass.",
		Buckets: prometheus.DefBuckets,
	})
	teamCacheRefreshes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gohls_team_directory_refreshes_total",
		Help: "Full refetches of the team directory.",
	})
)

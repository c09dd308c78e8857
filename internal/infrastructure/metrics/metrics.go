package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests by method, matched route and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qa_http_requests_total",
		Help: "Total HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration tracks handler latency.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "qa_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~2s
	}, []string{"method", "route"})

	// LikeTogglesTotal counts committed toggles by resulting state.
	LikeTogglesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qa_like_toggles_total",
		Help: "Committed like toggles by resulting state",
	}, []string{"state"})

	// FeedCacheRequestsTotal counts question feed cache lookups by result (hit, miss, error).
	FeedCacheRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qa_feed_cache_requests_total",
		Help: "Question feed cache lookups by result",
	}, []string{"result"})
)

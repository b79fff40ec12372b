package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP request metrics, labeled by method, route template and status.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	PromotionRedemptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promotion_redemptions_total",
			Help: "Total promotion redemption attempts",
		},
		[]string{"result"},
	)

	PromotionViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "promotion_views_total",
			Help: "Total promotion detail views tracked",
		},
	)
)

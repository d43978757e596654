package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gamehub_http_requests_total",
		Help: "The total number of HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gamehub_http_request_duration_seconds",
		Help:    "Latency of HTTP requests by method and route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// Domain Metrics
	RatingsSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gamehub_ratings_submitted_total",
		Help: "The total number of rating upserts that were stored",
	})
	ListTogglesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gamehub_list_toggles_total",
		Help: "The total number of personal list toggles by list and resulting state",
	}, []string{"list", "state"})
	CatalogQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gamehub_catalog_query_duration_seconds",
		Help:    "Latency of catalog queries by operation",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)

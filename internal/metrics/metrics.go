// Package metrics holds the prometheus collectors of the recommendation API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recommendations counts recommendation runs by final status.
	Recommendations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "house_recommendations_total",
			Help: "Total number of recommendation runs by status",
		},
		[]string{"status"},
	)

	// RecommendationCandidates observes how many listings passed the price filter.
	RecommendationCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "house_recommendation_candidates",
			Help:    "Number of listings inside the requested price range",
			Buckets: []float64{0, 1, 10, 50, 100, 500, 1000, 5000, 10000},
		},
	)

	// ListingFetchDuration observes calls to the listing source.
	ListingFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "listing_fetch_duration_seconds",
			Help:    "Duration of listing source fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source", "result"},
	)

	// ListingCacheRequests counts cache lookups by result (hit, miss).
	ListingCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_cache_requests_total",
			Help: "Total number of listing cache lookups",
		},
		[]string{"result"},
	)

	// ListingCircuitBreakerState is 0 closed, 1 half-open, 2 open.
	ListingCircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "listing_circuit_breaker_state",
			Help: "Circuit breaker state of the listing service client (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)

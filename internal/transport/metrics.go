package transport

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "imgbb_client_requests_total",
			Help: "Total number of requests issued to the image-hosting service",
		},
		[]string{"operation", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "imgbb_client_request_duration_seconds",
			Help:    "Request duration in seconds, including response body read",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	requestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "imgbb_client_requests_in_flight",
			Help: "Current number of requests awaiting a response",
		},
	)
)

package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SalesQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_queries_total",
		Help: "Total number of sales store queries",
	}, []string{"operation", "status"})

	SalesQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sales_query_latency_seconds",
		Help:    "Latency of sales store queries",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	SalesRowsReturned = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sales_query_rows_returned",
		Help:    "Number of rows returned per sales page",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
	})

	RequestValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_request_validation_failures_total",
		Help: "Total number of rejected list requests",
	}, []string{"field"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)

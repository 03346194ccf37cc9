package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gym_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gym_http_request_duration_seconds",
		Help:    "Request latency",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"method", "route"})

	// LedgerOperations - исходы операций с деньгами и посещениями
	LedgerOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gym_ledger_operations_total",
		Help: "Ledger operations by outcome",
	}, []string{"operation", "outcome"})

	ExpiredSubscriptions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gym_subscriptions_expired_total",
		Help: "Subscriptions moved to expired by the nightly job",
	})
)

const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

func ObserveLedger(operation, outcome string) {
	LedgerOperations.WithLabelValues(operation, outcome).Inc()
}

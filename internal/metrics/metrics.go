// Package metrics provides the Prometheus registry for the bet ledger.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bet_ledger"

var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	BetsRecordedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bets_recorded_total",
		Help:      "Total number of bets recorded",
	})
	BetsUpdatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bets_updated_total",
		Help:      "Total number of bet edits",
	})
	BetsSettledTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bets_settled_total",
		Help:      "Total number of bets moved to a completed outcome",
	}, []string{"outcome"})
	ValidationRejectionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_rejections_total",
		Help:      "Bet writes refused by validation, by offending field",
	}, []string{"field"})
)

// Gauge metrics
var (
	PendingStake = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "pending_stake",
		Help:      "Total stake of bets awaiting a result, as of the last dashboard",
	})
	PendingBets = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "pending_bets",
		Help:      "Number of bets awaiting a result, as of the last dashboard",
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(BetsRecordedTotal)
		registry.MustRegister(BetsUpdatedTotal)
		registry.MustRegister(BetsSettledTotal)
		registry.MustRegister(ValidationRejectionsTotal)

		registry.MustRegister(PendingStake)
		registry.MustRegister(PendingBets)

		registry.MustRegister(ReportDuration)
		registry.MustRegister(ReportFailuresTotal)
		registry.MustRegister(ReportCacheRequestsTotal)

		registry.MustRegister(HTTPRequestsTotal)
		registry.MustRegister(HTTPRequestDuration)
		registry.MustRegister(RateLimitedTotal)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	return InitRegistry()
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordBetRecorded records a newly stored bet.
func RecordBetRecorded() {
	BetsRecordedTotal.Inc()
}

// RecordBetUpdated records an edit of an existing bet.
func RecordBetUpdated() {
	BetsUpdatedTotal.Inc()
}

// RecordBetSettled records a bet reaching a completed outcome.
func RecordBetSettled(outcome string) {
	BetsSettledTotal.WithLabelValues(outcome).Inc()
}

// RecordValidationRejection records a refused write.
func RecordValidationRejection(field string) {
	ValidationRejectionsTotal.WithLabelValues(field).Inc()
}

// UpdatePending updates the pending exposure gauges.
func UpdatePending(count int, stake float64) {
	PendingBets.Set(float64(count))
	PendingStake.Set(stake)
}

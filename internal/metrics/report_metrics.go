package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Report metrics
var (
	ReportDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "report_duration_seconds",
		Help:      "Time spent computing a report",
		Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"report"})
	ReportFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_failures_total",
		Help:      "Reports that returned an error payload",
	}, []string{"report"})
	ReportCacheRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_cache_requests_total",
		Help:      "Report cache lookups by result",
	}, []string{"report", "result"})
)

// RecordReportDuration records how long a report took.
func RecordReportDuration(report string, durationSeconds float64) {
	ReportDuration.WithLabelValues(report).Observe(durationSeconds)
}

// RecordReportFailure records a failed report.
func RecordReportFailure(report string) {
	ReportFailuresTotal.WithLabelValues(report).Inc()
}

// RecordReportCache records a cache hit or miss.
func RecordReportCache(report string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	ReportCacheRequestsTotal.WithLabelValues(report, result).Inc()
}

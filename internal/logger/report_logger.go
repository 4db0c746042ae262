package logger

import (
	"github.com/sirupsen/logrus"
)

// ReportLogger provides dedicated logging for report generation.
type ReportLogger struct {
	*logrus.Entry
}

// NewReportLogger creates a new report logger.
func NewReportLogger(baseLogger *logrus.Logger) *ReportLogger {
	return &ReportLogger{
		Entry: baseLogger.WithField("component", "reports"),
	}
}

// LogReportGenerated logs a computed report.
func (rl *ReportLogger) LogReportGenerated(report string, params map[string]interface{}, betsLoaded int, durationMs float64) {
	rl.WithFields(logrus.Fields{
		"report":      report,
		"params":      params,
		"bets_loaded": betsLoaded,
		"duration_ms": durationMs,
	}).Debug("Report generated")
}

// LogReportCacheHit logs a report served from the cache.
func (rl *ReportLogger) LogReportCacheHit(report, key string) {
	rl.WithFields(logrus.Fields{
		"report":    report,
		"cache_key": key,
	}).Debug("Report served from cache")
}

// LogReportFailure logs a report that could not be produced.
func (rl *ReportLogger) LogReportFailure(report string, err error) {
	rl.WithFields(logrus.Fields{
		"report": report,
	}).WithError(err).Error("Report generation failed")
}

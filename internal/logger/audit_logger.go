package logger

import (
	"github.com/sirupsen/logrus"
	"github.com/yourusername/bet-ledger/internal/models"
)

// AuditLogger provides dedicated audit trail logging for ledger writes.
type AuditLogger struct {
	*logrus.Entry
}

// NewAuditLogger creates a new audit logger.
func NewAuditLogger(baseLogger *logrus.Logger) *AuditLogger {
	return &AuditLogger{
		Entry: baseLogger.WithField("component", "audit"),
	}
}

func betFields(bet *models.Bet) logrus.Fields {
	return logrus.Fields{
		"bet_id":      bet.ID.String(),
		"sport_id":    bet.SportID.String(),
		"bookmaker":   bet.BookmakerID.String(),
		"date":        bet.Date.Format("2006-01-02"),
		"stake":       bet.Stake,
		"odds":        bet.BookmakerOdds,
		"outcome":     string(bet.Outcome),
		"profit_loss": bet.ProfitLoss,
	}
}

// LogBetRecorded logs a newly recorded bet.
func (al *AuditLogger) LogBetRecorded(bet *models.Bet) {
	al.WithFields(betFields(bet)).Info("Bet recorded")
}

// LogBetUpdated logs an edit of an existing bet.
func (al *AuditLogger) LogBetUpdated(bet *models.Bet, previousOutcome models.Outcome) {
	fields := betFields(bet)
	fields["previous_outcome"] = string(previousOutcome)
	al.WithFields(fields).Info("Bet updated")
}

// LogBetSettled logs an outcome change that produced a new profit/loss.
func (al *AuditLogger) LogBetSettled(bet *models.Bet, previousOutcome models.Outcome) {
	al.WithFields(logrus.Fields{
		"bet_id":           bet.ID.String(),
		"previous_outcome": string(previousOutcome),
		"outcome":          string(bet.Outcome),
		"profit_loss":      bet.ProfitLoss,
	}).Info("Bet settled")
}

// LogValidationRejected logs a write refused by the validation gate.
func (al *AuditLogger) LogValidationRejected(field, message string) {
	al.WithFields(logrus.Fields{
		"field":  field,
		"reason": message,
	}).Warn("Bet rejected by validation")
}

// LogLookupStatusChange logs activation or deactivation of a lookup entity.
func (al *AuditLogger) LogLookupStatusChange(entity, id string, active bool) {
	al.WithFields(logrus.Fields{
		"entity":    entity,
		"entity_id": id,
		"is_active": active,
	}).Info("Lookup status changed")
}

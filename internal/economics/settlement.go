package economics

import (
	"github.com/shopspring/decimal"
	"github.com/yourusername/bet-ledger/internal/models"
)

// Settle recomputes ProfitLoss from the bet's current outcome, stake and odds.
// It must run on every write of a bet. Pending bets keep whatever value they
// already hold. It returns true when ProfitLoss was recomputed.
func Settle(b *models.Bet) bool {
	switch b.Outcome {
	case models.OutcomeWin:
		b.ProfitLoss = PotentialProfit(InputsOf(b))
	case models.OutcomeLoss:
		b.ProfitLoss = toFloat(decimal.NewFromFloat(b.Stake).Neg())
	case models.OutcomePush, models.OutcomeVoid:
		b.ProfitLoss = 0
	default:
		return false
	}
	return true
}

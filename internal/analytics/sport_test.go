package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/bet-ledger/internal/models"
)

func TestROIBySport(t *testing.T) {
	d := day(2025, time.June, 1, 12)
	bets := []*models.Bet{
		newBet(d, models.OutcomeWin, 50, 1.80, onSport(football)),
		newBet(d, models.OutcomeLoss, 50, 2.00, onSport(football)),
		newBet(d, models.OutcomeWin, 100, 2.50, onSport(tennis)),
		newBet(d, models.OutcomePending, 100, 2.50, onSport(basketball)),
	}

	result := ROIBySport(bets, []*models.Sport{basketball, football, tennis}, 0)

	require.Len(t, result, 2)
	assert.Equal(t, "Tennis", result[0].Sport)
	assert.Equal(t, 150.0, result[0].ROI)
	assert.Equal(t, 1, result[0].BetCount)
	assert.Equal(t, "Football", result[1].Sport)
	assert.Equal(t, -10.0, result[1].ROI)
	assert.Equal(t, -10.0, result[1].Profit)
	assert.Equal(t, 2, result[1].BetCount)
}

func TestROIBySportLimit(t *testing.T) {
	d := day(2025, time.June, 1, 12)
	bets := []*models.Bet{
		newBet(d, models.OutcomeWin, 10, 1.5, onSport(football)),
		newBet(d, models.OutcomeWin, 10, 3.0, onSport(tennis)),
		newBet(d, models.OutcomeLoss, 10, 3.0, onSport(basketball)),
	}

	result := ROIBySport(bets, []*models.Sport{basketball, football, tennis}, 2)

	require.Len(t, result, 2)
	assert.Equal(t, "Tennis", result[0].Sport)
	assert.Equal(t, "Football", result[1].Sport)
}

func TestSportStats(t *testing.T) {
	d := day(2025, time.June, 1, 12)
	bets := []*models.Bet{
		newBet(d, models.OutcomeWin, 10, 2.0, onSport(football)),
		newBet(d, models.OutcomeLoss, 10, 2.0, onSport(football)),
		newBet(d, models.OutcomePush, 10, 2.0, onSport(football)),
		newBet(d, models.OutcomePending, 10, 2.0, onSport(tennis)),
	}

	stats := SportStats(bets, []*models.Sport{basketball, football, tennis}, 5)

	require.Len(t, stats, 1)
	assert.Equal(t, 3, stats[0].TotalBets)
	assert.Equal(t, 33.33, stats[0].WinRate)
	assert.Equal(t, 0.0, stats[0].ProfitLoss)
}

package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/bet-ledger/internal/models"
)

func TestDashboardTotals(t *testing.T) {
	now := day(2025, time.June, 30, 12)
	bets := []*models.Bet{
		newBet(now.AddDate(0, 0, -1), models.OutcomeWin, 50, 1.80, withProbability(60)),
		newBet(now.AddDate(0, 0, -2), models.OutcomeLoss, 30, 2.00, withBookmaker(betclic)),
		newBet(now.AddDate(0, 0, -40), models.OutcomeWin, 20, 2.00),
		newBet(now.AddDate(0, 0, -3), models.OutcomePending, 100, 1.50, withBookmaker(pinnacle)),
	}

	snap := Dashboard(bets, []*models.Sport{football, tennis}, []*models.Bookmaker{bet365, betclic, pinnacle}, DefaultDashboardOptions(now))

	assert.Equal(t, 4, snap.TotalBets)
	assert.Equal(t, 200.0, snap.TotalStaked)
	assert.Equal(t, 30.0, snap.TotalProfitLoss)
	assert.Equal(t, 66.67, snap.WinRate)
	assert.Equal(t, 15.0, snap.ROI)
	assert.Equal(t, 1, snap.PendingBets)
	assert.Equal(t, 100.0, snap.PendingStake)
	assert.Equal(t, 1.83, snap.AvgOdds)
	assert.Equal(t, 10.0, snap.RecentProfitLoss)
	assert.Equal(t, 180.0, snap.RecentStaked)
	assert.Equal(t, -50.0, snap.ProfitTrend)
	assert.False(t, snap.ProfitTrendPositive)
	assert.True(t, snap.ROIPositive)

	require.Len(t, snap.BookmakerStats, 2)
	assert.Equal(t, "Bet365", snap.BookmakerStats[0].Bookmaker)
	assert.Equal(t, 70.0, snap.BookmakerStats[0].TotalStaked)
	assert.Equal(t, "Betclic", snap.BookmakerStats[1].Bookmaker)

	require.Len(t, snap.SportsStats, 1)
	assert.Equal(t, 3, snap.SportsStats[0].TotalBets)

	require.Len(t, snap.LatestBets, 4)
	assert.Equal(t, bets[0].ID, snap.LatestBets[0].ID)
	assert.Equal(t, bets[2].ID, snap.LatestBets[3].ID)
}

func TestDashboardAverageEV(t *testing.T) {
	now := day(2025, time.June, 30, 12)
	bets := []*models.Bet{
		newBet(now, models.OutcomePending, 100, 2.0, withProbability(60)),
		newBet(now, models.OutcomePending, 100, 2.0, withProbability(40)),
		newBet(now, models.OutcomePending, 100, 2.0, withProbability(65)),
	}

	snap := Dashboard(bets, nil, nil, DefaultDashboardOptions(now))

	// EVs are 20, -20 and 30
	assert.Equal(t, 10.0, snap.AvgExpectedValue)
	assert.True(t, snap.EVPositive)
	assert.Equal(t, 0.0, snap.ROI)
	assert.Equal(t, 0.0, snap.WinRate)
}

func TestDashboardEmpty(t *testing.T) {
	snap := Dashboard(nil, nil, nil, DefaultDashboardOptions(day(2025, time.June, 30, 12)))

	assert.Equal(t, 0, snap.TotalBets)
	assert.Equal(t, 0.0, snap.ROI)
	assert.Equal(t, 0.0, snap.AvgOdds)
	assert.Equal(t, 0.0, snap.AvgExpectedValue)
	assert.Equal(t, 0.0, snap.ProfitTrend)
	assert.Empty(t, snap.LatestBets)
}

func TestTrend(t *testing.T) {
	tests := []struct {
		name     string
		recent   float64
		previous float64
		expected float64
	}{
		{"improvement", 150, 100, 50},
		{"from loss to profit", 50, -100, 150},
		{"decline", -20, 80, -125},
		{"zero previous positive recent", 10, 0, 100},
		{"both zero", 0, 0, 0},
		{"zero previous negative recent", -10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Trend(decimal.NewFromFloat(tt.recent), decimal.NewFromFloat(tt.previous))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSummarizeAndUsage(t *testing.T) {
	d := day(2025, time.June, 1, 12)
	bets := []*models.Bet{
		newBet(d, models.OutcomeWin, 10, 2.0),
		newBet(d, models.OutcomeLoss, 10, 3.0),
		newBet(d, models.OutcomePending, 10, 4.0, onSport(tennis)),
	}

	s := Summarize(bets)
	assert.Equal(t, 3, s.TotalBets)
	assert.Equal(t, 2, s.CompletedBets)
	assert.Equal(t, 30.0, s.TotalStaked)
	assert.Equal(t, 0.0, s.TotalProfitLoss)
	assert.Equal(t, 3.0, s.AvgOdds)
	assert.Equal(t, 50.0, s.WinRate)

	u := CountUsage(bets)
	assert.Equal(t, 2, u.Sports[football.ID])
	assert.Equal(t, 1, u.Sports[tennis.ID])
	assert.Equal(t, 3, u.Bookmakers[bet365.ID])
}

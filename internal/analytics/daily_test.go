package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/bet-ledger/internal/models"
)

func TestDailySeriesHasEveryDay(t *testing.T) {
	start := day(2025, time.March, 1, 0)
	end := start.AddDate(0, 0, 29)

	series := DailySeries(nil, start, end, time.UTC)

	require.Len(t, series.DailyProfit, 30)
	assert.Len(t, series.Labels, 30)
	assert.Len(t, series.CumulativeProfit, 30)
	assert.Equal(t, "01/03", series.Labels[0])
	assert.Equal(t, "30/03", series.Labels[29])
	assert.Equal(t, 30, series.Period.Days)
	assert.Equal(t, "01/03/2025", series.Period.Start)
	assert.Equal(t, 0.0, series.FinalCumulative)
	assert.Equal(t, 0, series.Stats.DaysWithBets)
}

func TestDailySeriesSumLaw(t *testing.T) {
	start := day(2025, time.March, 1, 0)
	end := day(2025, time.March, 10, 0)
	bets := []*models.Bet{
		newBet(day(2025, time.March, 1, 12), models.OutcomeWin, 50, 1.80),
		newBet(day(2025, time.March, 1, 18), models.OutcomeLoss, 30, 2.10),
		newBet(day(2025, time.March, 4, 9), models.OutcomeWin, 10.55, 2.37),
		newBet(day(2025, time.March, 7, 21), models.OutcomeVoid, 20, 1.5),
		newBet(day(2025, time.March, 9, 20), models.OutcomeLoss, 12.34, 3.0),
		newBet(day(2025, time.March, 9, 22), models.OutcomePending, 99, 3.0),
		newBet(day(2025, time.February, 28, 23), models.OutcomeWin, 100, 2.0),
		newBet(day(2025, time.March, 11, 1), models.OutcomeWin, 100, 2.0),
	}

	series := DailySeries(bets, start, end, time.UTC)

	require.Len(t, series.DailyProfit, 10)
	sum := 0.0
	for _, p := range series.DailyProfit {
		sum += p
	}
	assert.InDelta(t, series.FinalCumulative, sum, 1e-9)
	assert.Equal(t, series.FinalCumulative, series.CumulativeProfit[9])

	// 40 - 30 + 14.45 + 0 - 12.34
	assert.InDelta(t, 12.11, series.FinalCumulative, 1e-9)
	assert.Equal(t, 10.0, series.DailyProfit[0])
	assert.Equal(t, 5, series.Stats.TotalBets)
	assert.Equal(t, 3, series.Stats.DaysWithBets)
	assert.Equal(t, 14.45, series.Stats.BestDay)
	assert.Equal(t, -12.34, series.Stats.WorstDay)
	assert.Equal(t, 1.21, series.Stats.AverageDaily)
}

func TestDailySeriesUsesLocalDate(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	bet := newBet(day(2025, time.May, 1, 22), models.OutcomeWin, 10, 2.0)

	series := DailySeries([]*models.Bet{bet}, time.Date(2025, time.May, 1, 0, 0, 0, 0, loc), time.Date(2025, time.May, 2, 0, 0, 0, 0, loc), loc)

	require.Len(t, series.DailyProfit, 2)
	assert.Equal(t, 0.0, series.DailyProfit[0])
	assert.Equal(t, 10.0, series.DailyProfit[1])
}

func TestDailySeriesEmptyRange(t *testing.T) {
	series := DailySeries(nil, day(2025, time.May, 3, 0), day(2025, time.May, 1, 0), time.UTC)

	assert.Empty(t, series.DailyProfit)
	assert.Equal(t, 0.0, series.Stats.AverageDaily)
}

// Package analytics aggregates recorded bets into the reports behind the
// dashboard and chart endpoints. Functions operate on bets already loaded from
// the store and never mutate them.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/yourusername/bet-ledger/internal/economics"
	"github.com/yourusername/bet-ledger/internal/models"
)

const (
	dayKeyLayout     = "2006-01-02"
	dayLabelLayout   = "02/01"
	periodLayout     = "02/01/2006"
	monthLabelFormat = "Jan 2006"
)

// Period describes the date range a series covers.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

// DailyStats summarises a daily profit series.
type DailyStats struct {
	TotalBets    int     `json:"total_bets"`
	DaysWithBets int     `json:"days_with_bets"`
	BestDay      float64 `json:"best_day"`
	WorstDay     float64 `json:"worst_day"`
	AverageDaily float64 `json:"average_daily"`
}

// DailyProfitSeries holds one entry per calendar day of a range.
type DailyProfitSeries struct {
	Labels           []string   `json:"labels"`
	Dates            []string   `json:"dates"`
	DailyProfit      []float64  `json:"daily_profit"`
	CumulativeProfit []float64  `json:"cumulative_profit"`
	Period           Period     `json:"period"`
	Stats            DailyStats `json:"stats"`
	FinalCumulative  float64    `json:"final_cumulative"`
}

// DailySeries buckets completed bets by local calendar day over [start, end]
// inclusive. Every day of the range gets an entry, with zero profit when no
// bet settled on it.
func DailySeries(bets []*models.Bet, start, end time.Time, loc *time.Location) DailyProfitSeries {
	if loc == nil {
		loc = time.UTC
	}
	first, last := dayStart(start, loc), dayStart(end, loc)

	var days []time.Time
	index := make(map[string]int)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		index[d.Format(dayKeyLayout)] = len(days)
		days = append(days, d)
	}

	profits := make([]decimal.Decimal, len(days))
	totalBets := 0
	for _, bet := range bets {
		if !bet.IsCompleted() {
			continue
		}
		i, ok := index[bet.Date.In(loc).Format(dayKeyLayout)]
		if !ok {
			continue
		}
		profits[i] = profits[i].Add(decimal.NewFromFloat(bet.ProfitLoss))
		totalBets++
	}

	series := DailyProfitSeries{
		Labels:           make([]string, 0, len(days)),
		Dates:            make([]string, 0, len(days)),
		DailyProfit:      make([]float64, 0, len(days)),
		CumulativeProfit: make([]float64, 0, len(days)),
		Period: Period{
			Start: first.Format(periodLayout),
			End:   last.Format(periodLayout),
			Days:  len(days),
		},
	}

	cumulative := decimal.Zero
	for i, d := range days {
		cumulative = cumulative.Add(profits[i])
		daily := profits[i].InexactFloat64()

		series.Labels = append(series.Labels, d.Format(dayLabelLayout))
		series.Dates = append(series.Dates, d.Format(dayKeyLayout))
		series.DailyProfit = append(series.DailyProfit, daily)
		series.CumulativeProfit = append(series.CumulativeProfit, cumulative.InexactFloat64())

		if !profits[i].IsZero() {
			series.Stats.DaysWithBets++
		}
		if i == 0 || daily > series.Stats.BestDay {
			series.Stats.BestDay = daily
		}
		if i == 0 || daily < series.Stats.WorstDay {
			series.Stats.WorstDay = daily
		}
	}

	series.Stats.TotalBets = totalBets
	series.FinalCumulative = cumulative.InexactFloat64()
	if len(days) > 0 {
		series.Stats.AverageDaily = economics.Round2(cumulative.Div(decimal.NewFromInt(int64(len(days)))).InexactFloat64())
	}
	return series
}

func dayStart(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

package analytics

import (
	"time"

	"github.com/yourusername/bet-ledger/internal/models"
)

// MonthSummary reports the completed bets of one calendar month.
type MonthSummary struct {
	Month    string  `json:"month"`
	Year     int     `json:"year"`
	MonthNum int     `json:"month_number"`
	Profit   float64 `json:"profit"`
	Staked   float64 `json:"staked"`
	WinRate  float64 `json:"win_rate"`
	BetCount int     `json:"bets_count"`
}

type monthKey struct {
	year  int
	month time.Month
}

// MonthlySummary walks whole months from the month containing from up to the
// month containing to, and reports each month that has at least one
// completed bet. Empty months are omitted.
func MonthlySummary(bets []*models.Bet, from, to time.Time, loc *time.Location) []MonthSummary {
	if loc == nil {
		loc = time.UTC
	}

	tallies := make(map[monthKey]*tally)
	for _, bet := range bets {
		if !bet.IsCompleted() {
			continue
		}
		local := bet.Date.In(loc)
		key := monthKey{year: local.Year(), month: local.Month()}
		t, ok := tallies[key]
		if !ok {
			t = &tally{}
			tallies[key] = t
		}
		t.add(bet)
	}

	last := dayStart(to, loc)
	fy, fm, _ := from.In(loc).Date()
	cursor := time.Date(fy, fm, 1, 0, 0, 0, 0, loc)

	var result []MonthSummary
	for !cursor.After(last) {
		key := monthKey{year: cursor.Year(), month: cursor.Month()}
		if t, ok := tallies[key]; ok && t.count > 0 {
			result = append(result, MonthSummary{
				Month:    cursor.Format(monthLabelFormat),
				Year:     cursor.Year(),
				MonthNum: int(cursor.Month()),
				Profit:   t.profit.InexactFloat64(),
				Staked:   t.staked.InexactFloat64(),
				WinRate:  t.winRate(),
				BetCount: t.count,
			})
		}
		cursor = cursor.AddDate(0, 1, 0)
	}
	return result
}

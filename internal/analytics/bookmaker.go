package analytics

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/yourusername/bet-ledger/internal/economics"
	"github.com/yourusername/bet-ledger/internal/models"
)

// BookmakerStat is the per-bookmaker line of the dashboard. TotalStaked and
// AvgOdds cover every bet with the bookmaker, pending ones included; the
// other fields cover completed bets only.
type BookmakerStat struct {
	BookmakerID uuid.UUID `json:"bookmaker_id"`
	Bookmaker   string    `json:"bookmaker"`
	TotalBets   int       `json:"total_bets"`
	TotalStaked float64   `json:"total_staked"`
	ProfitLoss  float64   `json:"profit_loss"`
	AvgOdds     float64   `json:"avg_odds"`
}

type bookmakerTally struct {
	completed tally
	allCount  int
	allStaked decimal.Decimal
	oddsSum   decimal.Decimal
}

// BookmakerStats returns one line per bookmaker with at least one completed
// bet, sorted by total staked descending. A positive limit caps the result.
func BookmakerStats(bets []*models.Bet, bookmakers []*models.Bookmaker, limit int) []BookmakerStat {
	tallies := make(map[uuid.UUID]*bookmakerTally)
	for _, bet := range bets {
		t, ok := tallies[bet.BookmakerID]
		if !ok {
			t = &bookmakerTally{}
			tallies[bet.BookmakerID] = t
		}
		t.allCount++
		t.allStaked = t.allStaked.Add(decimal.NewFromFloat(bet.Stake))
		t.oddsSum = t.oddsSum.Add(decimal.NewFromFloat(bet.BookmakerOdds))
		if bet.IsCompleted() {
			t.completed.add(bet)
		}
	}

	result := make([]BookmakerStat, 0, len(tallies))
	for _, bm := range bookmakers {
		t, ok := tallies[bm.ID]
		if !ok || t.completed.count == 0 {
			continue
		}
		result = append(result, BookmakerStat{
			BookmakerID: bm.ID,
			Bookmaker:   bm.Name,
			TotalBets:   t.completed.count,
			TotalStaked: t.allStaked.InexactFloat64(),
			ProfitLoss:  t.completed.profit.InexactFloat64(),
			AvgOdds:     economics.Round2(t.oddsSum.Div(decimal.NewFromInt(int64(t.allCount))).InexactFloat64()),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalStaked > result[j].TotalStaked
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

package analytics

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/yourusername/bet-ledger/internal/economics"
	"github.com/yourusername/bet-ledger/internal/models"
)

// SportROI is the realised return of all completed bets on one sport.
type SportROI struct {
	SportID  uuid.UUID `json:"sport_id"`
	Sport    string    `json:"sport"`
	ROI      float64   `json:"roi"`
	BetCount int       `json:"total_bets"`
	Profit   float64   `json:"profit"`
}

// SportStat is the per-sport line of the dashboard.
type SportStat struct {
	SportID    uuid.UUID `json:"sport_id"`
	Sport      string    `json:"sport"`
	TotalBets  int       `json:"total_bets"`
	ProfitLoss float64   `json:"profit_loss"`
	WinRate    float64   `json:"win_rate"`
}

type tally struct {
	count  int
	wins   int
	staked decimal.Decimal
	profit decimal.Decimal
}

func (t *tally) add(bet *models.Bet) {
	t.count++
	if bet.IsWin() {
		t.wins++
	}
	t.staked = t.staked.Add(decimal.NewFromFloat(bet.Stake))
	t.profit = t.profit.Add(decimal.NewFromFloat(bet.ProfitLoss))
}

func (t *tally) winRate() float64 {
	return economics.Percentage(decimal.NewFromInt(int64(t.wins)), decimal.NewFromInt(int64(t.count)))
}

func completedBySport(bets []*models.Bet) map[uuid.UUID]*tally {
	out := make(map[uuid.UUID]*tally)
	for _, bet := range bets {
		if !bet.IsCompleted() {
			continue
		}
		t, ok := out[bet.SportID]
		if !ok {
			t = &tally{}
			out[bet.SportID] = t
		}
		t.add(bet)
	}
	return out
}

// ROIBySport returns 100*Σprofit/Σstake per sport over completed bets, sorted
// by ROI descending. Sports without completed bets or with nothing staked are
// left out. A positive limit caps the result.
func ROIBySport(bets []*models.Bet, sports []*models.Sport, limit int) []SportROI {
	tallies := completedBySport(bets)

	result := make([]SportROI, 0, len(tallies))
	for _, sport := range sports {
		t, ok := tallies[sport.ID]
		if !ok || t.count == 0 || !t.staked.IsPositive() {
			continue
		}
		result = append(result, SportROI{
			SportID:  sport.ID,
			Sport:    sport.Name,
			ROI:      economics.Percentage(t.profit, t.staked),
			BetCount: t.count,
			Profit:   t.profit.InexactFloat64(),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ROI > result[j].ROI
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// SportStats returns the completed-bet count, profit and win rate of every
// sport that has at least one completed bet, in the order sports are given.
func SportStats(bets []*models.Bet, sports []*models.Sport, limit int) []SportStat {
	tallies := completedBySport(bets)

	result := make([]SportStat, 0, len(tallies))
	for _, sport := range sports {
		t, ok := tallies[sport.ID]
		if !ok {
			continue
		}
		result = append(result, SportStat{
			SportID:    sport.ID,
			Sport:      sport.Name,
			TotalBets:  t.count,
			ProfitLoss: t.profit.InexactFloat64(),
			WinRate:    t.winRate(),
		})
	}
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

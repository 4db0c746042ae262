package analytics

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/yourusername/bet-ledger/internal/economics"
	"github.com/yourusername/bet-ledger/internal/models"
)

// Summary is the headline block shown over any list of bets.
type Summary struct {
	TotalBets       int     `json:"total_bets"`
	CompletedBets   int     `json:"completed_bets"`
	Wins            int     `json:"wins"`
	TotalStaked     float64 `json:"total_staked"`
	TotalProfitLoss float64 `json:"total_profit_loss"`
	AvgOdds         float64 `json:"avg_odds"`
	WinRate         float64 `json:"win_rate"`
}

type totals struct {
	count        int
	staked       decimal.Decimal
	oddsSum      decimal.Decimal
	completed    tally
	pendingCount int
	pendingStake decimal.Decimal
	evSum        decimal.Decimal
}

func sumBets(bets []*models.Bet) totals {
	var t totals
	for _, bet := range bets {
		t.count++
		t.staked = t.staked.Add(decimal.NewFromFloat(bet.Stake))
		t.oddsSum = t.oddsSum.Add(decimal.NewFromFloat(bet.BookmakerOdds))
		t.evSum = t.evSum.Add(decimal.NewFromFloat(economics.ForBet(bet).ExpectedValue))
		if bet.IsCompleted() {
			t.completed.add(bet)
		} else {
			t.pendingCount++
			t.pendingStake = t.pendingStake.Add(decimal.NewFromFloat(bet.Stake))
		}
	}
	return t
}

func (t totals) avg(sum decimal.Decimal) float64 {
	if t.count == 0 {
		return 0
	}
	return economics.Round2(sum.Div(decimal.NewFromInt(int64(t.count))).InexactFloat64())
}

// Summarize totals a list of bets. Staked and average odds include pending
// bets; profit and win rate cover completed bets only.
func Summarize(bets []*models.Bet) Summary {
	t := sumBets(bets)
	return Summary{
		TotalBets:       t.count,
		CompletedBets:   t.completed.count,
		Wins:            t.completed.wins,
		TotalStaked:     t.staked.InexactFloat64(),
		TotalProfitLoss: t.completed.profit.InexactFloat64(),
		AvgOdds:         t.avg(t.oddsSum),
		WinRate:         t.completed.winRate(),
	}
}

// Usage counts how many bets reference each lookup entity. A team counts
// both its home and away bets.
type Usage struct {
	Sports       map[uuid.UUID]int `json:"sports"`
	Competitions map[uuid.UUID]int `json:"competitions"`
	Teams        map[uuid.UUID]int `json:"teams"`
	Bookmakers   map[uuid.UUID]int `json:"bookmakers"`
	BetTypes     map[uuid.UUID]int `json:"bet_types"`
}

// CountUsage builds the per-entity bet counts.
func CountUsage(bets []*models.Bet) Usage {
	u := Usage{
		Sports:       make(map[uuid.UUID]int),
		Competitions: make(map[uuid.UUID]int),
		Teams:        make(map[uuid.UUID]int),
		Bookmakers:   make(map[uuid.UUID]int),
		BetTypes:     make(map[uuid.UUID]int),
	}
	for _, bet := range bets {
		u.Sports[bet.SportID]++
		u.Competitions[bet.CompetitionID]++
		u.Teams[bet.HomeTeamID]++
		u.Teams[bet.AwayTeamID]++
		u.Bookmakers[bet.BookmakerID]++
		u.BetTypes[bet.BetTypeID]++
	}
	return u
}

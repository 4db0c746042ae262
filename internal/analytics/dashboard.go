package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yourusername/bet-ledger/internal/economics"
	"github.com/yourusername/bet-ledger/internal/models"
)

// DashboardOptions controls the windows and list sizes of a snapshot.
type DashboardOptions struct {
	Now           time.Time
	RecentWindow  time.Duration
	TopSports     int
	TopBookmakers int
	LatestBets    int
}

// DefaultDashboardOptions returns a 30 day window, top 5 sports and
// bookmakers and the 10 latest bets.
func DefaultDashboardOptions(now time.Time) DashboardOptions {
	return DashboardOptions{
		Now:           now,
		RecentWindow:  30 * 24 * time.Hour,
		TopSports:     5,
		TopBookmakers: 5,
		LatestBets:    10,
	}
}

// Snapshot holds the global dashboard metrics.
type Snapshot struct {
	TotalBets        int     `json:"total_bets"`
	TotalStaked      float64 `json:"total_staked"`
	TotalProfitLoss  float64 `json:"total_profit_loss"`
	WinRate          float64 `json:"win_rate"`
	ROI              float64 `json:"roi"`
	PendingBets      int     `json:"pending_bets"`
	PendingStake     float64 `json:"pending_stake"`
	AvgOdds          float64 `json:"avg_odds"`
	AvgExpectedValue float64 `json:"avg_expected_value"`

	RecentProfitLoss float64 `json:"recent_profit_loss"`
	RecentStaked     float64 `json:"recent_staked"`
	ProfitTrend      float64 `json:"profit_trend"`

	SportsStats    []SportStat     `json:"sports_stats"`
	BookmakerStats []BookmakerStat `json:"bookmaker_stats"`
	LatestBets     []*models.Bet   `json:"latest_bets"`

	ProfitTrendPositive bool `json:"profit_trend_positive"`
	ROIPositive         bool `json:"roi_positive"`
	EVPositive          bool `json:"ev_positive"`

	GeneratedAt time.Time `json:"generated_at"`
}

// Dashboard computes the global snapshot over every recorded bet.
func Dashboard(bets []*models.Bet, sports []*models.Sport, bookmakers []*models.Bookmaker, opts DashboardOptions) Snapshot {
	if opts.RecentWindow <= 0 {
		opts.RecentWindow = 30 * 24 * time.Hour
	}
	t := sumBets(bets)

	recentStart := opts.Now.Add(-opts.RecentWindow)
	previousStart := recentStart.Add(-opts.RecentWindow)

	recentProfit, recentStaked, previousProfit := decimal.Zero, decimal.Zero, decimal.Zero
	for _, bet := range bets {
		switch {
		case !bet.Date.Before(recentStart):
			recentStaked = recentStaked.Add(decimal.NewFromFloat(bet.Stake))
			if bet.IsCompleted() {
				recentProfit = recentProfit.Add(decimal.NewFromFloat(bet.ProfitLoss))
			}
		case !bet.Date.Before(previousStart):
			if bet.IsCompleted() {
				previousProfit = previousProfit.Add(decimal.NewFromFloat(bet.ProfitLoss))
			}
		}
	}

	roi := economics.Percentage(t.completed.profit, t.staked)
	avgEV := t.avg(t.evSum)
	trend := Trend(recentProfit, previousProfit)

	return Snapshot{
		TotalBets:        t.count,
		TotalStaked:      t.staked.InexactFloat64(),
		TotalProfitLoss:  t.completed.profit.InexactFloat64(),
		WinRate:          t.completed.winRate(),
		ROI:              roi,
		PendingBets:      t.pendingCount,
		PendingStake:     t.pendingStake.InexactFloat64(),
		AvgOdds:          t.avg(t.oddsSum),
		AvgExpectedValue: avgEV,

		RecentProfitLoss: recentProfit.InexactFloat64(),
		RecentStaked:     recentStaked.InexactFloat64(),
		ProfitTrend:      trend,

		SportsStats:    SportStats(bets, sports, opts.TopSports),
		BookmakerStats: BookmakerStats(bets, bookmakers, opts.TopBookmakers),
		LatestBets:     LatestBets(bets, opts.LatestBets),

		ProfitTrendPositive: trend > 0,
		ROIPositive:         roi > 0,
		EVPositive:          avgEV > 0,

		GeneratedAt: opts.Now,
	}
}

// Trend compares recent profit with the previous window as a percentage of
// the previous window's magnitude. With a zero previous window it is 100 when
// recent profit is positive and 0 otherwise.
func Trend(recent, previous decimal.Decimal) float64 {
	if !previous.IsZero() {
		return economics.Percentage(recent.Sub(previous), previous.Abs())
	}
	if recent.IsPositive() {
		return 100
	}
	return 0
}

// LatestBets returns up to n bets ordered by date then creation time, newest first.
func LatestBets(bets []*models.Bet, n int) []*models.Bet {
	sorted := make([]*models.Bet, len(bets))
	copy(sorted, bets)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.After(sorted[j].Date)
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Package economics derives the financial and probability metrics of a single bet.
//
// Every function is pure and rounds half away from zero to two decimal places.
// Missing inputs (nil pointers) and zero denominators resolve to 0 instead of
// producing an error.
package economics

import (
	"github.com/shopspring/decimal"
	"github.com/yourusername/bet-ledger/internal/models"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// Inputs holds the stored fields the metrics are computed from. A nil field
// is treated as missing.
type Inputs struct {
	EstimatedProbability *float64
	BookmakerOdds        *float64
	Stake                *float64
	ProfitLoss           *float64
}

// Metrics is the full set of per-bet derived values.
type Metrics struct {
	ImpliedProbability float64 `json:"implied_probability"`
	BookmakerEdge      float64 `json:"bookmaker_edge"`
	ExpectedValue      float64 `json:"expected_value"`
	PotentialPayout    float64 `json:"potential_payout"`
	PotentialProfit    float64 `json:"potential_profit"`
	ROI                float64 `json:"roi"`
}

// InputsOf returns the inputs stored on a bet.
func InputsOf(b *models.Bet) Inputs {
	prob, odds, stake, pl := b.EstimatedProbability, b.BookmakerOdds, b.Stake, b.ProfitLoss
	return Inputs{
		EstimatedProbability: &prob,
		BookmakerOdds:        &odds,
		Stake:                &stake,
		ProfitLoss:           &pl,
	}
}

// Compute returns every metric for the given inputs.
func Compute(in Inputs) Metrics {
	return Metrics{
		ImpliedProbability: ImpliedProbability(in),
		BookmakerEdge:      BookmakerEdge(in),
		ExpectedValue:      ExpectedValue(in),
		PotentialPayout:    PotentialPayout(in),
		PotentialProfit:    PotentialProfit(in),
		ROI:                ROI(in),
	}
}

// ForBet computes the metrics of a stored bet.
func ForBet(b *models.Bet) Metrics {
	return Compute(InputsOf(b))
}

// ImpliedProbability is 100/odds, in percent.
func ImpliedProbability(in Inputs) float64 {
	if in.BookmakerOdds == nil || *in.BookmakerOdds <= 0 {
		return 0
	}
	return toFloat(hundred.Div(decimal.NewFromFloat(*in.BookmakerOdds)))
}

// BookmakerEdge is the implied probability minus the estimated probability.
func BookmakerEdge(in Inputs) float64 {
	if in.EstimatedProbability == nil {
		return 0
	}
	implied := decimal.NewFromFloat(ImpliedProbability(in))
	return toFloat(implied.Sub(decimal.NewFromFloat(*in.EstimatedProbability)))
}

// ExpectedValue is p*(odds-1)*stake - (1-p)*stake with p = estimated/100.
func ExpectedValue(in Inputs) float64 {
	if in.EstimatedProbability == nil || in.BookmakerOdds == nil || in.Stake == nil {
		return 0
	}
	p := decimal.NewFromFloat(*in.EstimatedProbability).Div(hundred)
	odds := decimal.NewFromFloat(*in.BookmakerOdds)
	stake := decimal.NewFromFloat(*in.Stake)

	win := p.Mul(odds.Sub(one)).Mul(stake)
	lose := one.Sub(p).Mul(stake)
	return toFloat(win.Sub(lose))
}

// PotentialPayout is stake*odds.
func PotentialPayout(in Inputs) float64 {
	if in.Stake == nil || in.BookmakerOdds == nil {
		return 0
	}
	return toFloat(decimal.NewFromFloat(*in.Stake).Mul(decimal.NewFromFloat(*in.BookmakerOdds)))
}

// PotentialProfit is the rounded payout minus the stake.
func PotentialProfit(in Inputs) float64 {
	if in.Stake == nil {
		return 0
	}
	payout := decimal.NewFromFloat(PotentialPayout(in))
	return toFloat(payout.Sub(decimal.NewFromFloat(*in.Stake)))
}

// ROI is the realised profit as a percentage of stake.
func ROI(in Inputs) float64 {
	if in.Stake == nil || *in.Stake <= 0 {
		return 0
	}
	pl := decimal.Zero
	if in.ProfitLoss != nil {
		pl = decimal.NewFromFloat(*in.ProfitLoss)
	}
	return toFloat(hundred.Mul(pl).Div(decimal.NewFromFloat(*in.Stake)))
}

// Percentage returns 100*part/whole rounded to two places, or 0 when whole is 0.
func Percentage(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return toFloat(hundred.Mul(part).Div(whole))
}

// Round2 rounds x half away from zero to two decimal places.
func Round2(x float64) float64 {
	return toFloat(decimal.NewFromFloat(x))
}

func toFloat(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

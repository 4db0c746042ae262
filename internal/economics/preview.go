package economics

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Preview is the quick calculation shown while a bet is being entered.
type Preview struct {
	ExpectedValue        float64 `json:"ev"`
	ImpliedProbability   float64 `json:"implied_prob"`
	EstimatedProbability float64 `json:"estimated_prob"`
	PotentialProfit      float64 `json:"potential_profit"`
	ROIPercentage        float64 `json:"roi_percentage"`
	EVPositive           bool    `json:"ev_positive"`
	ProbAdvantage        bool    `json:"prob_advantage"`
}

// PreviewFromStrings parses raw form values and returns the preview. Any
// value that is empty or fails to parse yields the zero preview.
func PreviewFromStrings(probability, odds, stake string) Preview {
	p, errP := parseNumber(probability)
	o, errO := parseNumber(odds)
	s, errS := parseNumber(stake)
	if errP != nil || errO != nil || errS != nil {
		return Preview{}
	}
	return NewPreview(p, o, s)
}

// NewPreview computes EV, implied probability, potential profit and the
// return percentage of a prospective bet.
func NewPreview(probability, odds, stake float64) Preview {
	if odds <= 0 {
		return Preview{EstimatedProbability: Round2(probability)}
	}
	in := Inputs{EstimatedProbability: &probability, BookmakerOdds: &odds, Stake: &stake}
	ev := ExpectedValue(in)
	implied := ImpliedProbability(in)

	profit := decimal.NewFromFloat(odds).Sub(one).Mul(decimal.NewFromFloat(stake))
	roiPct := 0.0
	if stake > 0 {
		roiPct = Percentage(profit, decimal.NewFromFloat(stake))
	}

	return Preview{
		ExpectedValue:        ev,
		ImpliedProbability:   implied,
		EstimatedProbability: probability,
		PotentialProfit:      toFloat(profit),
		ROIPercentage:        roiPct,
		EVPositive:           ev > 0,
		ProbAdvantage:        probability > implied,
	}
}

func parseNumber(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(raw, 64)
}

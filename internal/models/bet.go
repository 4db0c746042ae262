package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Outcome represents the result of a bet
type Outcome string

const (
	OutcomeWin     Outcome = "win"
	OutcomeLoss    Outcome = "loss"
	OutcomePush    Outcome = "push"
	OutcomeVoid    Outcome = "void"
	OutcomePending Outcome = "pending"
)

// ParseOutcome converts a raw string into an Outcome.
func ParseOutcome(s string) (Outcome, error) {
	o := Outcome(s)
	if !o.Valid() {
		return "", fmt.Errorf("unknown outcome %q", s)
	}
	return o, nil
}

// Valid reports whether o is a known outcome.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeWin, OutcomeLoss, OutcomePush, OutcomeVoid, OutcomePending:
		return true
	}
	return false
}

// IsCompleted reports whether the outcome is terminal.
func (o Outcome) IsCompleted() bool {
	return o.Valid() && o != OutcomePending
}

// Bet is a single recorded wager. ProfitLoss is the only derived value
// that is stored.
type Bet struct {
	ID                   uuid.UUID `db:"id" json:"id"`
	Date                 time.Time `db:"date" json:"date" validate:"required"`
	SportID              uuid.UUID `db:"sport_id" json:"sport_id" validate:"required"`
	CompetitionID        uuid.UUID `db:"competition_id" json:"competition_id" validate:"required"`
	HomeTeamID           uuid.UUID `db:"home_team_id" json:"home_team_id" validate:"required"`
	AwayTeamID           uuid.UUID `db:"away_team_id" json:"away_team_id" validate:"required"`
	NeutralGround        bool      `db:"neutral_ground" json:"neutral_ground"`
	BetTypeID            uuid.UUID `db:"bet_type_id" json:"bet_type_id" validate:"required"`
	Description          string    `db:"bet_description" json:"bet_description"`
	EstimatedProbability float64   `db:"estimated_probability" json:"estimated_probability" validate:"gte=0,lte=100,cents"`
	BookmakerID          uuid.UUID `db:"bookmaker_id" json:"bookmaker_id" validate:"required"`
	BookmakerOdds        float64   `db:"bookmaker_odds" json:"bookmaker_odds" validate:"gte=1.01,lte=9999.99,cents"`
	Stake                float64   `db:"stake" json:"stake" validate:"gte=0.01,lte=99999999.99,cents"`
	Outcome              Outcome   `db:"outcome" json:"outcome" validate:"required,oneof=win loss push void pending"`
	ProfitLoss           float64   `db:"profit_loss" json:"profit_loss"`
	ConfidenceLevel      int       `db:"confidence_level" json:"confidence_level" validate:"gte=1,lte=5"`
	Notes                string    `db:"notes" json:"notes"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}

// IsCompleted checks if the bet has a terminal outcome
func (b *Bet) IsCompleted() bool {
	return b.Outcome.IsCompleted()
}

// IsPending checks if the bet is still awaiting a result
func (b *Bet) IsPending() bool {
	return b.Outcome == OutcomePending
}

// IsWin checks if the bet was won
func (b *Bet) IsWin() bool {
	return b.Outcome == OutcomeWin
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// BetCategory groups bet types into market families.
type BetCategory string

const (
	CategoryMatchResult BetCategory = "match_result"
	CategoryOverGoals   BetCategory = "over_goals"
	CategoryUnderGoals  BetCategory = "under_goals"
	CategoryBothToScore BetCategory = "both_to_score"
	CategoryPlayer      BetCategory = "player"
	CategoryHandicap    BetCategory = "handicap"
	CategoryTotalPoints BetCategory = "total_points"
	CategorySetGames    BetCategory = "set_games"
	CategoryOther       BetCategory = "other"
)

var categoryLabels = map[BetCategory]string{
	CategoryMatchResult: "Match Result",
	CategoryOverGoals:   "Over Goals",
	CategoryUnderGoals:  "Under Goals",
	CategoryBothToScore: "Both Teams to Score",
	CategoryPlayer:      "Player Markets",
	CategoryHandicap:    "Handicap",
	CategoryTotalPoints: "Total Points",
	CategorySetGames:    "Sets/Games",
	CategoryOther:       "Other",
}

// Valid reports whether c is one of the nine market categories.
func (c BetCategory) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the display name of the category.
func (c BetCategory) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// BetType is a market, e.g. "Over 2.5 goals".
type BetType struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	Name        string      `db:"name" json:"name" validate:"required,max=100"`
	Category    BetCategory `db:"category" json:"category" validate:"required,oneof=match_result over_goals under_goals both_to_score player handicap total_points set_games other"`
	Description string      `db:"description" json:"description,omitempty"`
	IsActive    bool        `db:"is_active" json:"is_active"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
}

// ApplyDefaults sets the category to other when empty.
func (b *BetType) ApplyDefaults() {
	if b.Category == "" {
		b.Category = CategoryOther
	}
}

package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Division is the level of a league, or none for cups and tournaments.
type Division string

const (
	Division1    Division = "1"
	Division2    Division = "2"
	Division3    Division = "3"
	DivisionNone Division = "none"
)

// Valid reports whether d is one of the known divisions.
func (d Division) Valid() bool {
	switch d {
	case Division1, Division2, Division3, DivisionNone:
		return true
	}
	return false
}

// CompetitionType is the phase a competition is in.
type CompetitionType string

const (
	CompetitionChampionship  CompetitionType = "championship"
	CompetitionGroupStage    CompetitionType = "group_stage"
	CompetitionPlayoffs      CompetitionType = "playoffs"
	CompetitionFinals        CompetitionType = "finals"
	CompetitionKnockout      CompetitionType = "knockout"
	CompetitionRegularSeason CompetitionType = "regular_season"
)

var competitionTypeLabels = map[CompetitionType]string{
	CompetitionChampionship:  "Championship Phase",
	CompetitionGroupStage:    "Group Stage",
	CompetitionPlayoffs:      "Playoffs",
	CompetitionFinals:        "Finals",
	CompetitionKnockout:      "Knockout Phase",
	CompetitionRegularSeason: "Regular Season",
}

// Valid reports whether t is one of the known competition types.
func (t CompetitionType) Valid() bool {
	_, ok := competitionTypeLabels[t]
	return ok
}

// Label returns the human readable name of the competition type.
func (t CompetitionType) Label() string {
	if label, ok := competitionTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// Competition is a league or tournament belonging to exactly one sport.
// (Name, SportID, Division, Type) is unique.
type Competition struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	Name      string          `db:"name" json:"name" validate:"required,max=100"`
	SportID   uuid.UUID       `db:"sport_id" json:"sport_id" validate:"required"`
	Country   string          `db:"country" json:"country,omitempty" validate:"max=50"`
	Division  Division        `db:"division" json:"division" validate:"required,oneof=1 2 3 none"`
	Type      CompetitionType `db:"competition_type" json:"competition_type" validate:"required,oneof=championship group_stage playoffs finals knockout regular_season"`
	IsActive  bool            `db:"is_active" json:"is_active"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// ApplyDefaults fills the division and type the way an empty form would.
func (c *Competition) ApplyDefaults() {
	if c.Division == "" {
		c.Division = DivisionNone
	}
	if c.Type == "" {
		c.Type = CompetitionRegularSeason
	}
}

// DisplayName returns "<name> - <type label>".
func (c *Competition) DisplayName() string {
	return fmt.Sprintf("%s - %s", c.Name, c.Type.Label())
}

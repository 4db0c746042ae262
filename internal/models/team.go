package models

import (
	"time"

	"github.com/google/uuid"
)

// Team is a side taking part in matches of a single sport. (Name, SportID) is unique.
type Team struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name" validate:"required,max=100"`
	ShortName string    `db:"short_name" json:"short_name,omitempty" validate:"max=10"`
	SportID   uuid.UUID `db:"sport_id" json:"sport_id" validate:"required"`
	Country   string    `db:"country" json:"country,omitempty" validate:"max=50"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

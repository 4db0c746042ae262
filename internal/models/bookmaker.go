package models

import (
	"time"

	"github.com/google/uuid"
)

// Bookmaker is the house a bet was placed with.
type Bookmaker struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name" validate:"required,max=50"`
	Website   string    `db:"website" json:"website,omitempty" validate:"omitempty,url"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

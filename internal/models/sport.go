package models

import (
	"time"

	"github.com/google/uuid"
)

// Sport is a discipline bets are placed on, e.g. Football (FB).
type Sport struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name" validate:"required,max=50"`
	Code      string    `db:"code" json:"code" validate:"required,max=10"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

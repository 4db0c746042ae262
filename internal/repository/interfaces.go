package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/bet-ledger/internal/models"
)

// SportRepository defines the interface for sport data access
type SportRepository interface {
	Create(ctx context.Context, sport *models.Sport) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Sport, error)
	List(ctx context.Context, activeOnly bool) ([]*models.Sport, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// CompetitionRepository defines the interface for competition data access
type CompetitionRepository interface {
	Create(ctx context.Context, competition *models.Competition) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Competition, error)
	List(ctx context.Context, activeOnly bool) ([]*models.Competition, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	List(ctx context.Context, activeOnly bool) ([]*models.Team, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// BookmakerRepository defines the interface for bookmaker data access
type BookmakerRepository interface {
	Create(ctx context.Context, bookmaker *models.Bookmaker) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Bookmaker, error)
	List(ctx context.Context, activeOnly bool) ([]*models.Bookmaker, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// BetTypeRepository defines the interface for bet type data access
type BetTypeRepository interface {
	Create(ctx context.Context, betType *models.BetType) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.BetType, error)
	List(ctx context.Context, activeOnly bool) ([]*models.BetType, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// BetFilter narrows a bet listing. Zero values are ignored. From is
// inclusive and To is exclusive.
type BetFilter struct {
	SportID     *uuid.UUID
	BookmakerID *uuid.UUID
	Outcome     *models.Outcome
	Completed   *bool
	From        *time.Time
	To          *time.Time
	Limit       int
}

// BetRepository defines the interface for bet data access
type BetRepository interface {
	Create(ctx context.Context, bet *models.Bet) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Bet, error)
	Update(ctx context.Context, bet *models.Bet) error
	List(ctx context.Context, filter BetFilter) ([]*models.Bet, error)
	GetPendingBets(ctx context.Context) ([]*models.Bet, error)
}

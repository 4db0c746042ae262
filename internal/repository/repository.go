package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yourusername/bet-ledger/internal/database"
	"github.com/yourusername/bet-ledger/internal/models"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
	numericOutOfRange   = "22003"
)

// Repositories holds all repository implementations
type Repositories struct {
	Sport       SportRepository
	Competition CompetitionRepository
	Team        TeamRepository
	Bookmaker   BookmakerRepository
	BetType     BetTypeRepository
	Bet         BetRepository
}

// NewRepositories creates and returns all repository implementations
func NewRepositories(db *database.DB) (*Repositories, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	return &Repositories{
		Sport:       NewPostgresSportRepository(db),
		Competition: NewPostgresCompetitionRepository(db),
		Team:        NewPostgresTeamRepository(db),
		Bookmaker:   NewPostgresBookmakerRepository(db),
		BetType:     NewPostgresBetTypeRepository(db),
		Bet:         NewPostgresBetRepository(db),
	}, nil
}

// mapError translates driver errors into model errors.
func mapError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%s: %w (%s)", op, models.ErrDuplicateKey, pgErr.ConstraintName)
		case foreignKeyViolation:
			return fmt.Errorf("%s: referenced %w (%s)", op, models.ErrNotFound, pgErr.ConstraintName)
		case checkViolation:
			return models.NewValidationError(pgErr.ColumnName, fmt.Sprintf("violates constraint %s", pgErr.ConstraintName))
		case numericOutOfRange:
			return models.NewValidationError(pgErr.ColumnName, "numeric value out of range")
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func activeClause(activeOnly bool) string {
	if activeOnly {
		return " WHERE is_active = TRUE"
	}
	return ""
}

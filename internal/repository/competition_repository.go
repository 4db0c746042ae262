package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/yourusername/bet-ledger/internal/database"
	"github.com/yourusername/bet-ledger/internal/models"
)

const competitionColumns = `id, name, sport_id, country, division, competition_type, is_active, created_at`

// PostgresCompetitionRepository implements CompetitionRepository for PostgreSQL
type PostgresCompetitionRepository struct {
	db *database.DB
}

// NewPostgresCompetitionRepository creates a new competition repository
func NewPostgresCompetitionRepository(db *database.DB) CompetitionRepository {
	return &PostgresCompetitionRepository{db: db}
}

// Create inserts a new competition
func (r *PostgresCompetitionRepository) Create(ctx context.Context, c *models.Competition) error {
	query := `
		INSERT INTO competitions (id, name, sport_id, country, division, competition_type, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.db.Conn(ctx).QueryRow(ctx, query,
		c.ID, c.Name, c.SportID, c.Country, c.Division, c.Type, c.IsActive,
	).Scan(&c.CreatedAt)
	if err != nil {
		return mapError("failed to create competition", err)
	}
	return nil
}

// GetByID retrieves a competition by ID
func (r *PostgresCompetitionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Competition, error) {
	query := `SELECT ` + competitionColumns + ` FROM competitions WHERE id = $1`

	c := &models.Competition{}
	err := r.db.Conn(ctx).QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.SportID, &c.Country, &c.Division, &c.Type, &c.IsActive, &c.CreatedAt,
	)
	if err != nil {
		return nil, mapError("failed to get competition", err)
	}
	return c, nil
}

// List returns competitions ordered by sport name then competition name
func (r *PostgresCompetitionRepository) List(ctx context.Context, activeOnly bool) ([]*models.Competition, error) {
	query := `
		SELECT c.id, c.name, c.sport_id, c.country, c.division, c.competition_type, c.is_active, c.created_at
		FROM competitions c
		JOIN sports s ON s.id = c.sport_id
	`
	if activeOnly {
		query += ` WHERE c.is_active = TRUE`
	}
	query += ` ORDER BY s.name, c.name`

	rows, err := r.db.Conn(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query competitions: %w", err)
	}
	defer rows.Close()

	var competitions []*models.Competition
	for rows.Next() {
		c := &models.Competition{}
		err := rows.Scan(&c.ID, &c.Name, &c.SportID, &c.Country, &c.Division, &c.Type, &c.IsActive, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan competition: %w", err)
		}
		competitions = append(competitions, c)
	}
	return competitions, rows.Err()
}

// SetActive enables or disables a competition
func (r *PostgresCompetitionRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := r.db.Conn(ctx).Exec(ctx, `UPDATE competitions SET is_active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("failed to update competition: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

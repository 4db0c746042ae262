package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/yourusername/bet-ledger/internal/database"
	"github.com/yourusername/bet-ledger/internal/models"
)

// PostgresTeamRepository implements TeamRepository for PostgreSQL
type PostgresTeamRepository struct {
	db *database.DB
}

// NewPostgresTeamRepository creates a new team repository
func NewPostgresTeamRepository(db *database.DB) TeamRepository {
	return &PostgresTeamRepository{db: db}
}

// Create inserts a new team
func (r *PostgresTeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (id, name, short_name, sport_id, country, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := r.db.Conn(ctx).QueryRow(ctx, query,
		team.ID, team.Name, team.ShortName, team.SportID, team.Country, team.IsActive,
	).Scan(&team.CreatedAt)
	if err != nil {
		return mapError("failed to create team", err)
	}
	return nil
}

// GetByID retrieves a team by ID
func (r *PostgresTeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	query := `SELECT id, name, short_name, sport_id, country, is_active, created_at FROM teams WHERE id = $1`

	team := &models.Team{}
	err := r.db.Conn(ctx).QueryRow(ctx, query, id).Scan(
		&team.ID, &team.Name, &team.ShortName, &team.SportID, &team.Country, &team.IsActive, &team.CreatedAt,
	)
	if err != nil {
		return nil, mapError("failed to get team", err)
	}
	return team, nil
}

// List returns teams ordered by sport name then team name
func (r *PostgresTeamRepository) List(ctx context.Context, activeOnly bool) ([]*models.Team, error) {
	query := `
		SELECT t.id, t.name, t.short_name, t.sport_id, t.country, t.is_active, t.created_at
		FROM teams t
		JOIN sports s ON s.id = t.sport_id
	`
	if activeOnly {
		query += ` WHERE t.is_active = TRUE`
	}
	query += ` ORDER BY s.name, t.name`

	rows, err := r.db.Conn(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	var teams []*models.Team
	for rows.Next() {
		team := &models.Team{}
		err := rows.Scan(&team.ID, &team.Name, &team.ShortName, &team.SportID, &team.Country, &team.IsActive, &team.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

// SetActive enables or disables a team
func (r *PostgresTeamRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := r.db.Conn(ctx).Exec(ctx, `UPDATE teams SET is_active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("failed to update team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/yourusername/bet-ledger/internal/database"
	"github.com/yourusername/bet-ledger/internal/models"
)

// PostgresSportRepository implements SportRepository for PostgreSQL
type PostgresSportRepository struct {
	db *database.DB
}

// NewPostgresSportRepository creates a new sport repository
func NewPostgresSportRepository(db *database.DB) SportRepository {
	return &PostgresSportRepository{db: db}
}

// Create inserts a new sport
func (r *PostgresSportRepository) Create(ctx context.Context, sport *models.Sport) error {
	query := `
		INSERT INTO sports (id, name, code, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := r.db.Conn(ctx).QueryRow(ctx, query, sport.ID, sport.Name, sport.Code, sport.IsActive).Scan(&sport.CreatedAt)
	if err != nil {
		return mapError("failed to create sport", err)
	}
	return nil
}

// GetByID retrieves a sport by ID
func (r *PostgresSportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Sport, error) {
	query := `SELECT id, name, code, is_active, created_at FROM sports WHERE id = $1`

	sport := &models.Sport{}
	err := r.db.Conn(ctx).QueryRow(ctx, query, id).Scan(
		&sport.ID, &sport.Name, &sport.Code, &sport.IsActive, &sport.CreatedAt,
	)
	if err != nil {
		return nil, mapError("failed to get sport", err)
	}
	return sport, nil
}

// List returns sports ordered by name
func (r *PostgresSportRepository) List(ctx context.Context, activeOnly bool) ([]*models.Sport, error) {
	query := `SELECT id, name, code, is_active, created_at FROM sports` + activeClause(activeOnly) + ` ORDER BY name`

	rows, err := r.db.Conn(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sports: %w", err)
	}
	defer rows.Close()

	var sports []*models.Sport
	for rows.Next() {
		sport := &models.Sport{}
		if err := rows.Scan(&sport.ID, &sport.Name, &sport.Code, &sport.IsActive, &sport.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sport: %w", err)
		}
		sports = append(sports, sport)
	}
	return sports, rows.Err()
}

// SetActive enables or disables a sport
func (r *PostgresSportRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := r.db.Conn(ctx).Exec(ctx, `UPDATE sports SET is_active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("failed to update sport: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

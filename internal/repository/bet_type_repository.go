package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/yourusername/bet-ledger/internal/database"
	"github.com/yourusername/bet-ledger/internal/models"
)

// PostgresBetTypeRepository implements BetTypeRepository for PostgreSQL
type PostgresBetTypeRepository struct {
	db *database.DB
}

// NewPostgresBetTypeRepository creates a new bet type repository
func NewPostgresBetTypeRepository(db *database.DB) BetTypeRepository {
	return &PostgresBetTypeRepository{db: db}
}

// Create inserts a new bet type
func (r *PostgresBetTypeRepository) Create(ctx context.Context, bt *models.BetType) error {
	query := `
		INSERT INTO bet_types (id, name, category, description, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := r.db.Conn(ctx).QueryRow(ctx, query, bt.ID, bt.Name, bt.Category, bt.Description, bt.IsActive).Scan(&bt.CreatedAt)
	if err != nil {
		return mapError("failed to create bet type", err)
	}
	return nil
}

// GetByID retrieves a bet type by ID
func (r *PostgresBetTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.BetType, error) {
	query := `SELECT id, name, category, description, is_active, created_at FROM bet_types WHERE id = $1`

	bt := &models.BetType{}
	err := r.db.Conn(ctx).QueryRow(ctx, query, id).Scan(&bt.ID, &bt.Name, &bt.Category, &bt.Description, &bt.IsActive, &bt.CreatedAt)
	if err != nil {
		return nil, mapError("failed to get bet type", err)
	}
	return bt, nil
}

// List returns bet types ordered by category then name
func (r *PostgresBetTypeRepository) List(ctx context.Context, activeOnly bool) ([]*models.BetType, error) {
	query := `SELECT id, name, category, description, is_active, created_at FROM bet_types` +
		activeClause(activeOnly) + ` ORDER BY category, name`

	rows, err := r.db.Conn(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bet types: %w", err)
	}
	defer rows.Close()

	var types []*models.BetType
	for rows.Next() {
		bt := &models.BetType{}
		if err := rows.Scan(&bt.ID, &bt.Name, &bt.Category, &bt.Description, &bt.IsActive, &bt.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bet type: %w", err)
		}
		types = append(types, bt)
	}
	return types, rows.Err()
}

// SetActive enables or disables a bet type
func (r *PostgresBetTypeRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := r.db.Conn(ctx).Exec(ctx, `UPDATE bet_types SET is_active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("failed to update bet type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/yourusername/bet-ledger/internal/database"
	"github.com/yourusername/bet-ledger/internal/models"
)

// PostgresBookmakerRepository implements BookmakerRepository for PostgreSQL
type PostgresBookmakerRepository struct {
	db *database.DB
}

// NewPostgresBookmakerRepository creates a new bookmaker repository
func NewPostgresBookmakerRepository(db *database.DB) BookmakerRepository {
	return &PostgresBookmakerRepository{db: db}
}

// Create inserts a new bookmaker
func (r *PostgresBookmakerRepository) Create(ctx context.Context, bm *models.Bookmaker) error {
	query := `
		INSERT INTO bookmakers (id, name, website, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := r.db.Conn(ctx).QueryRow(ctx, query, bm.ID, bm.Name, bm.Website, bm.IsActive).Scan(&bm.CreatedAt)
	if err != nil {
		return mapError("failed to create bookmaker", err)
	}
	return nil
}

// GetByID retrieves a bookmaker by ID
func (r *PostgresBookmakerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Bookmaker, error) {
	query := `SELECT id, name, website, is_active, created_at FROM bookmakers WHERE id = $1`

	bm := &models.Bookmaker{}
	err := r.db.Conn(ctx).QueryRow(ctx, query, id).Scan(&bm.ID, &bm.Name, &bm.Website, &bm.IsActive, &bm.CreatedAt)
	if err != nil {
		return nil, mapError("failed to get bookmaker", err)
	}
	return bm, nil
}

// List returns bookmakers ordered by name
func (r *PostgresBookmakerRepository) List(ctx context.Context, activeOnly bool) ([]*models.Bookmaker, error) {
	query := `SELECT id, name, website, is_active, created_at FROM bookmakers` + activeClause(activeOnly) + ` ORDER BY name`

	rows, err := r.db.Conn(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookmakers: %w", err)
	}
	defer rows.Close()

	var bookmakers []*models.Bookmaker
	for rows.Next() {
		bm := &models.Bookmaker{}
		if err := rows.Scan(&bm.ID, &bm.Name, &bm.Website, &bm.IsActive, &bm.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bookmaker: %w", err)
		}
		bookmakers = append(bookmakers, bm)
	}
	return bookmakers, rows.Err()
}

// SetActive enables or disables a bookmaker
func (r *PostgresBookmakerRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := r.db.Conn(ctx).Exec(ctx, `UPDATE bookmakers SET is_active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("failed to update bookmaker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

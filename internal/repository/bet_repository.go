package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yourusername/bet-ledger/internal/database"
	"github.com/yourusername/bet-ledger/internal/models"
)

const betColumns = `id, date, sport_id, competition_id, home_team_id, away_team_id, neutral_ground,
	bet_type_id, bet_description, estimated_probability, bookmaker_id, bookmaker_odds, stake,
	outcome, profit_loss, confidence_level, notes, created_at, updated_at`

// PostgresBetRepository implements BetRepository for PostgreSQL
type PostgresBetRepository struct {
	db *database.DB
}

// NewPostgresBetRepository creates a new bet repository
func NewPostgresBetRepository(db *database.DB) BetRepository {
	return &PostgresBetRepository{db: db}
}

// Create inserts a new bet
func (r *PostgresBetRepository) Create(ctx context.Context, bet *models.Bet) error {
	query := `
		INSERT INTO bets (
			id, date, sport_id, competition_id, home_team_id, away_team_id, neutral_ground,
			bet_type_id, bet_description, estimated_probability, bookmaker_id, bookmaker_odds,
			stake, outcome, profit_loss, confidence_level, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING created_at, updated_at
	`

	err := r.db.Conn(ctx).QueryRow(ctx, query,
		bet.ID, bet.Date, bet.SportID, bet.CompetitionID, bet.HomeTeamID, bet.AwayTeamID,
		bet.NeutralGround, bet.BetTypeID, bet.Description, bet.EstimatedProbability,
		bet.BookmakerID, bet.BookmakerOdds, bet.Stake, bet.Outcome, bet.ProfitLoss,
		bet.ConfidenceLevel, bet.Notes,
	).Scan(&bet.CreatedAt, &bet.UpdatedAt)
	if err != nil {
		return mapError("failed to create bet", err)
	}
	return nil
}

// GetByID retrieves a bet by ID
func (r *PostgresBetRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE id = $1`

	bet, err := scanBet(r.db.Conn(ctx).QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError("failed to get bet", err)
	}
	return bet, nil
}

// Update rewrites every stored field of a bet
func (r *PostgresBetRepository) Update(ctx context.Context, bet *models.Bet) error {
	query := `
		UPDATE bets SET
			date = $2, sport_id = $3, competition_id = $4, home_team_id = $5, away_team_id = $6,
			neutral_ground = $7, bet_type_id = $8, bet_description = $9, estimated_probability = $10,
			bookmaker_id = $11, bookmaker_odds = $12, stake = $13, outcome = $14, profit_loss = $15,
			confidence_level = $16, notes = $17, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	err := r.db.Conn(ctx).QueryRow(ctx, query,
		bet.ID, bet.Date, bet.SportID, bet.CompetitionID, bet.HomeTeamID, bet.AwayTeamID,
		bet.NeutralGround, bet.BetTypeID, bet.Description, bet.EstimatedProbability,
		bet.BookmakerID, bet.BookmakerOdds, bet.Stake, bet.Outcome, bet.ProfitLoss,
		bet.ConfidenceLevel, bet.Notes,
	).Scan(&bet.CreatedAt, &bet.UpdatedAt)
	if err != nil {
		return mapError("failed to update bet", err)
	}
	return nil
}

// List retrieves bets matching the filter, newest first
func (r *PostgresBetRepository) List(ctx context.Context, filter BetFilter) ([]*models.Bet, error) {
	where, args := buildBetFilter(filter)

	query := `SELECT ` + betColumns + ` FROM bets`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY date DESC, created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	return r.queryBets(ctx, query, args...)
}

// GetPendingBets retrieves all bets still awaiting a result
func (r *PostgresBetRepository) GetPendingBets(ctx context.Context) ([]*models.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE outcome = $1 ORDER BY date ASC`
	return r.queryBets(ctx, query, models.OutcomePending)
}

func (r *PostgresBetRepository) queryBets(ctx context.Context, query string, args ...any) ([]*models.Bet, error) {
	rows, err := r.db.Conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bets: %w", err)
	}
	defer rows.Close()

	var bets []*models.Bet
	for rows.Next() {
		bet, err := scanBet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bet: %w", err)
		}
		bets = append(bets, bet)
	}
	return bets, rows.Err()
}

func buildBetFilter(filter BetFilter) ([]string, []any) {
	var where []string
	var args []any

	add := func(clause string, value any) {
		args = append(args, value)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	if filter.SportID != nil {
		add("sport_id = $%d", *filter.SportID)
	}
	if filter.BookmakerID != nil {
		add("bookmaker_id = $%d", *filter.BookmakerID)
	}
	if filter.Outcome != nil {
		add("outcome = $%d", *filter.Outcome)
	}
	if filter.Completed != nil {
		if *filter.Completed {
			where = append(where, "outcome <> 'pending'")
		} else {
			where = append(where, "outcome = 'pending'")
		}
	}
	if filter.From != nil {
		add("date >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("date < $%d", *filter.To)
	}

	return where, args
}

func scanBet(row pgx.Row) (*models.Bet, error) {
	bet := &models.Bet{}
	err := row.Scan(
		&bet.ID, &bet.Date, &bet.SportID, &bet.CompetitionID, &bet.HomeTeamID, &bet.AwayTeamID,
		&bet.NeutralGround, &bet.BetTypeID, &bet.Description, &bet.EstimatedProbability,
		&bet.BookmakerID, &bet.BookmakerOdds, &bet.Stake, &bet.Outcome, &bet.ProfitLoss,
		&bet.ConfidenceLevel, &bet.Notes, &bet.CreatedAt, &bet.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return bet, nil
}

// Package service implements the bet write path and the reporting surface
// on top of the repositories.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/bet-ledger/internal/analytics"
	"github.com/yourusername/bet-ledger/internal/economics"
	"github.com/yourusername/bet-ledger/internal/logger"
	"github.com/yourusername/bet-ledger/internal/metrics"
	"github.com/yourusername/bet-ledger/internal/models"
	"github.com/yourusername/bet-ledger/internal/repository"
)

// Transactor runs fn inside a single store transaction.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// BetInput carries the caller-editable fields of a bet. ProfitLoss is never
// accepted from callers; it is derived by settlement.
type BetInput struct {
	Date                 time.Time      `json:"date"`
	SportID              uuid.UUID      `json:"sport_id"`
	CompetitionID        uuid.UUID      `json:"competition_id"`
	HomeTeamID           uuid.UUID      `json:"home_team_id"`
	AwayTeamID           uuid.UUID      `json:"away_team_id"`
	NeutralGround        bool           `json:"neutral_ground"`
	BetTypeID            uuid.UUID      `json:"bet_type_id"`
	Description          string         `json:"bet_description"`
	EstimatedProbability float64        `json:"estimated_probability"`
	BookmakerID          uuid.UUID      `json:"bookmaker_id"`
	BookmakerOdds        float64        `json:"bookmaker_odds"`
	Stake                float64        `json:"stake"`
	Outcome              models.Outcome `json:"outcome"`
	ConfidenceLevel      int            `json:"confidence_level"`
	Notes                string         `json:"notes"`
}

func (in BetInput) applyTo(bet *models.Bet) {
	bet.Date = in.Date
	bet.SportID = in.SportID
	bet.CompetitionID = in.CompetitionID
	bet.HomeTeamID = in.HomeTeamID
	bet.AwayTeamID = in.AwayTeamID
	bet.NeutralGround = in.NeutralGround
	bet.BetTypeID = in.BetTypeID
	bet.Description = in.Description
	bet.EstimatedProbability = in.EstimatedProbability
	bet.BookmakerID = in.BookmakerID
	bet.BookmakerOdds = in.BookmakerOdds
	bet.Stake = in.Stake
	bet.Outcome = in.Outcome
	bet.ConfidenceLevel = in.ConfidenceLevel
	bet.Notes = in.Notes
	if bet.Outcome == "" {
		bet.Outcome = models.OutcomePending
	}
}

// BetPage is a filtered bet listing with its summary row.
type BetPage struct {
	Bets    []*models.Bet     `json:"bets"`
	Summary analytics.Summary `json:"summary"`
}

// SettleResult reports what a bulk settlement changed.
type SettleResult struct {
	Settled []uuid.UUID `json:"settled"`
	Skipped []uuid.UUID `json:"skipped"`
}

// Invalidator drops cached reports after a write.
type Invalidator interface {
	Invalidate()
}

// BetService validates, settles and persists bets.
type BetService struct {
	tx        Transactor
	repos     *repository.Repositories
	validator *Validator
	cache     Invalidator
	audit     *logger.AuditLogger
	logger    *logrus.Entry
	now       func() time.Time
}

// NewBetService creates a new bet service
func NewBetService(tx Transactor, repos *repository.Repositories, cache Invalidator, log *logrus.Logger) *BetService {
	return &BetService{
		tx:        tx,
		repos:     repos,
		validator: NewValidator(),
		cache:     cache,
		audit:     logger.NewAuditLogger(log),
		logger:    log.WithField("component", "bet_service"),
		now:       time.Now,
	}
}

// Create records a new bet. The bet is validated, settled and inserted in
// one transaction; a ValidationError or ErrNotFound leaves the store untouched.
func (s *BetService) Create(ctx context.Context, in BetInput) (*models.Bet, error) {
	bet := &models.Bet{ID: uuid.New()}
	in.applyTo(bet)
	if bet.Date.IsZero() {
		bet.Date = s.now()
	}

	if err := s.check(bet); err != nil {
		return nil, s.rejected(err)
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.verifyRefs(ctx, bet); err != nil {
			return err
		}
		economics.Settle(bet)
		return s.repos.Bet.Create(ctx, bet)
	})
	if err != nil {
		return nil, s.rejected(err)
	}

	s.cache.Invalidate()
	metrics.RecordBetRecorded()
	if bet.IsCompleted() {
		metrics.RecordBetSettled(string(bet.Outcome))
	}
	s.audit.LogBetRecorded(bet)
	return bet, nil
}

// Update replaces the editable fields of an existing bet and re-runs
// settlement so profit/loss always matches the stored outcome, stake and odds.
func (s *BetService) Update(ctx context.Context, id uuid.UUID, in BetInput) (*models.Bet, error) {
	var bet *models.Bet
	var previous models.Outcome

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repos.Bet.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("bet %s: %w", id, err)
		}
		previous = existing.Outcome

		in.applyTo(existing)
		if existing.Date.IsZero() {
			existing.Date = s.now()
		}
		if err := s.check(existing); err != nil {
			return err
		}
		if err := s.verifyRefs(ctx, existing); err != nil {
			return err
		}
		economics.Settle(existing)
		if err := s.repos.Bet.Update(ctx, existing); err != nil {
			return err
		}
		bet = existing
		return nil
	})
	if err != nil {
		return nil, s.rejected(err)
	}

	s.cache.Invalidate()
	metrics.RecordBetUpdated()
	if previous != bet.Outcome && bet.IsCompleted() {
		metrics.RecordBetSettled(string(bet.Outcome))
		s.audit.LogBetSettled(bet, previous)
	}
	s.audit.LogBetUpdated(bet, previous)
	return bet, nil
}

// Settle sets outcome on every listed bet that is still pending. Bets that
// already have a result are skipped; missing IDs abort the whole batch.
func (s *BetService) Settle(ctx context.Context, ids []uuid.UUID, outcome models.Outcome) (*SettleResult, error) {
	if !outcome.IsCompleted() {
		return nil, models.NewValidationError("outcome", "must be one of: win loss push void")
	}
	if len(ids) == 0 {
		return nil, models.NewValidationError("ids", "at least one bet is required")
	}

	result := &SettleResult{Settled: []uuid.UUID{}, Skipped: []uuid.UUID{}}
	var settled []*models.Bet

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		for _, id := range ids {
			bet, err := s.repos.Bet.GetByID(ctx, id)
			if err != nil {
				return fmt.Errorf("bet %s: %w", id, err)
			}
			if !bet.IsPending() {
				result.Skipped = append(result.Skipped, id)
				continue
			}
			bet.Outcome = outcome
			economics.Settle(bet)
			if err := s.repos.Bet.Update(ctx, bet); err != nil {
				return err
			}
			result.Settled = append(result.Settled, id)
			settled = append(settled, bet)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(settled) > 0 {
		s.cache.Invalidate()
	}
	for _, bet := range settled {
		metrics.RecordBetSettled(string(outcome))
		s.audit.LogBetSettled(bet, models.OutcomePending)
	}
	s.logger.WithFields(logrus.Fields{
		"outcome": outcome,
		"settled": len(result.Settled),
		"skipped": len(result.Skipped),
	}).Info("Bulk settlement completed")
	return result, nil
}

// Get returns a single bet
func (s *BetService) Get(ctx context.Context, id uuid.UUID) (*models.Bet, error) {
	return s.repos.Bet.GetByID(ctx, id)
}

// Metrics returns the derived economics of a stored bet.
func (s *BetService) Metrics(ctx context.Context, id uuid.UUID) (economics.Metrics, error) {
	bet, err := s.repos.Bet.GetByID(ctx, id)
	if err != nil {
		return economics.Metrics{}, err
	}
	return economics.ForBet(bet), nil
}

// List returns bets matching filter together with their summary.
func (s *BetService) List(ctx context.Context, filter repository.BetFilter) (*BetPage, error) {
	bets, err := s.repos.Bet.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if bets == nil {
		bets = []*models.Bet{}
	}
	return &BetPage{Bets: bets, Summary: analytics.Summarize(bets)}, nil
}

// check runs every rule that needs no lookups: field ranges and scale, the
// payout bound and distinct teams.
func (s *BetService) check(bet *models.Bet) error {
	if err := s.validator.Struct(bet); err != nil {
		return err
	}
	if err := CheckPayout(bet); err != nil {
		return err
	}
	return CheckDistinctTeams(bet)
}

// verifyRefs loads every referenced lookup, requires it to be active and
// then runs the cross-field rules.
func (s *BetService) verifyRefs(ctx context.Context, bet *models.Bet) error {
	var refs BetRefs
	var err error

	if refs.Sport, err = s.repos.Sport.GetByID(ctx, bet.SportID); err != nil {
		return refError("sport", bet.SportID, err)
	}
	if refs.Competition, err = s.repos.Competition.GetByID(ctx, bet.CompetitionID); err != nil {
		return refError("competition", bet.CompetitionID, err)
	}
	if refs.HomeTeam, err = s.repos.Team.GetByID(ctx, bet.HomeTeamID); err != nil {
		return refError("home team", bet.HomeTeamID, err)
	}
	if refs.AwayTeam, err = s.repos.Team.GetByID(ctx, bet.AwayTeamID); err != nil {
		return refError("away team", bet.AwayTeamID, err)
	}
	if refs.BetType, err = s.repos.BetType.GetByID(ctx, bet.BetTypeID); err != nil {
		return refError("bet type", bet.BetTypeID, err)
	}
	if refs.Bookmaker, err = s.repos.Bookmaker.GetByID(ctx, bet.BookmakerID); err != nil {
		return refError("bookmaker", bet.BookmakerID, err)
	}

	for _, ref := range []struct {
		entity string
		active bool
	}{
		{"sport", refs.Sport.IsActive},
		{"competition", refs.Competition.IsActive},
		{"home team", refs.HomeTeam.IsActive},
		{"away team", refs.AwayTeam.IsActive},
		{"bet type", refs.BetType.IsActive},
		{"bookmaker", refs.Bookmaker.IsActive},
	} {
		if !ref.active {
			return fmt.Errorf("%s: %w: %w", ref.entity, models.ErrInactive, models.ErrNotFound)
		}
	}

	return CheckConsistency(bet, refs)
}

func refError(entity string, id uuid.UUID, err error) error {
	return fmt.Errorf("%s %s: %w", entity, id, err)
}

// rejected records validation failures before handing the error back.
func (s *BetService) rejected(err error) error {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		metrics.RecordValidationRejection(ve.Field)
		s.audit.LogValidationRejected(ve.Field, ve.Message)
	}
	return err
}

package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/bet-ledger/internal/logger"
	"github.com/yourusername/bet-ledger/internal/models"
	"github.com/yourusername/bet-ledger/internal/repository"
)

// LookupRepository is the storage contract shared by every lookup entity.
type LookupRepository[T any] interface {
	Create(ctx context.Context, item *T) error
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	List(ctx context.Context, activeOnly bool) ([]*T, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// Lookup manages one reference table. Entries are never deleted, only
// deactivated, so existing bets keep resolving.
type Lookup[T any] struct {
	entity    string
	repo      LookupRepository[T]
	prepare   func(*T)
	validator *Validator
	audit     *logger.AuditLogger
	cache     Invalidator
}

func newLookup[T any](entity string, repo LookupRepository[T], prepare func(*T), v *Validator, audit *logger.AuditLogger, cache Invalidator) *Lookup[T] {
	return &Lookup[T]{
		entity:    entity,
		repo:      repo,
		prepare:   prepare,
		validator: v,
		audit:     audit,
		cache:     cache,
	}
}

// Entity returns the entity name, e.g. "sport".
func (l *Lookup[T]) Entity() string {
	return l.entity
}

// Create assigns a new ID and defaults, validates and stores item.
func (l *Lookup[T]) Create(ctx context.Context, item *T) error {
	l.prepare(item)
	if err := l.validator.Struct(item); err != nil {
		return err
	}
	return l.repo.Create(ctx, item)
}

// Get returns one entry
func (l *Lookup[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	return l.repo.GetByID(ctx, id)
}

// List returns entries, optionally only the active ones
func (l *Lookup[T]) List(ctx context.Context, activeOnly bool) ([]*T, error) {
	items, err := l.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*T{}
	}
	return items, nil
}

// SetActive enables or disables an entry
func (l *Lookup[T]) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := l.repo.SetActive(ctx, id, active); err != nil {
		return err
	}
	l.cache.Invalidate()
	l.audit.LogLookupStatusChange(l.entity, id.String(), active)
	return nil
}

// LookupService groups the reference tables.
type LookupService struct {
	Sports       *Lookup[models.Sport]
	Competitions *Lookup[models.Competition]
	Teams        *Lookup[models.Team]
	Bookmakers   *Lookup[models.Bookmaker]
	BetTypes     *Lookup[models.BetType]
}

// NewLookupService creates the lookup managers
func NewLookupService(repos *repository.Repositories, cache Invalidator, log *logrus.Logger) *LookupService {
	v := NewValidator()
	audit := logger.NewAuditLogger(log)

	return &LookupService{
		Sports: newLookup[models.Sport]("sport", repos.Sport, func(s *models.Sport) {
			s.ID = uuid.New()
			s.IsActive = true
		}, v, audit, cache),
		Competitions: newLookup[models.Competition]("competition", repos.Competition, func(c *models.Competition) {
			c.ID = uuid.New()
			c.IsActive = true
			c.ApplyDefaults()
		}, v, audit, cache),
		Teams: newLookup[models.Team]("team", repos.Team, func(t *models.Team) {
			t.ID = uuid.New()
			t.IsActive = true
		}, v, audit, cache),
		Bookmakers: newLookup[models.Bookmaker]("bookmaker", repos.Bookmaker, func(b *models.Bookmaker) {
			b.ID = uuid.New()
			b.IsActive = true
		}, v, audit, cache),
		BetTypes: newLookup[models.BetType]("bet_type", repos.BetType, func(b *models.BetType) {
			b.ID = uuid.New()
			b.IsActive = true
			b.ApplyDefaults()
		}, v, audit, cache),
	}
}

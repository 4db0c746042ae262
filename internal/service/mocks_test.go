package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/yourusername/bet-ledger/internal/models"
	"github.com/yourusername/bet-ledger/internal/repository"
)

// MockBetRepository mocks the bet repository
type MockBetRepository struct {
	mock.Mock
}

func (m *MockBetRepository) Create(ctx context.Context, bet *models.Bet) error {
	args := m.Called(ctx, bet)
	return args.Error(0)
}

func (m *MockBetRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Bet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bet), args.Error(1)
}

func (m *MockBetRepository) Update(ctx context.Context, bet *models.Bet) error {
	args := m.Called(ctx, bet)
	return args.Error(0)
}

func (m *MockBetRepository) List(ctx context.Context, filter repository.BetFilter) ([]*models.Bet, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Bet), args.Error(1)
}

func (m *MockBetRepository) GetPendingBets(ctx context.Context) ([]*models.Bet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Bet), args.Error(1)
}

// MockSportRepository mocks the sport repository
type MockSportRepository struct {
	mock.Mock
}

func (m *MockSportRepository) Create(ctx context.Context, sport *models.Sport) error {
	return m.Called(ctx, sport).Error(0)
}

func (m *MockSportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Sport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Sport), args.Error(1)
}

func (m *MockSportRepository) List(ctx context.Context, activeOnly bool) ([]*models.Sport, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Sport), args.Error(1)
}

func (m *MockSportRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

// MockCompetitionRepository mocks the competition repository
type MockCompetitionRepository struct {
	mock.Mock
}

func (m *MockCompetitionRepository) Create(ctx context.Context, c *models.Competition) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCompetitionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Competition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Competition), args.Error(1)
}

func (m *MockCompetitionRepository) List(ctx context.Context, activeOnly bool) ([]*models.Competition, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Competition), args.Error(1)
}

func (m *MockCompetitionRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

// MockTeamRepository mocks the team repository
type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, team *models.Team) error {
	return m.Called(ctx, team).Error(0)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Team), args.Error(1)
}

func (m *MockTeamRepository) List(ctx context.Context, activeOnly bool) ([]*models.Team, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Team), args.Error(1)
}

func (m *MockTeamRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

// MockBookmakerRepository mocks the bookmaker repository
type MockBookmakerRepository struct {
	mock.Mock
}

func (m *MockBookmakerRepository) Create(ctx context.Context, bm *models.Bookmaker) error {
	return m.Called(ctx, bm).Error(0)
}

func (m *MockBookmakerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Bookmaker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bookmaker), args.Error(1)
}

func (m *MockBookmakerRepository) List(ctx context.Context, activeOnly bool) ([]*models.Bookmaker, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Bookmaker), args.Error(1)
}

func (m *MockBookmakerRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

// MockBetTypeRepository mocks the bet type repository
type MockBetTypeRepository struct {
	mock.Mock
}

func (m *MockBetTypeRepository) Create(ctx context.Context, bt *models.BetType) error {
	return m.Called(ctx, bt).Error(0)
}

func (m *MockBetTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.BetType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BetType), args.Error(1)
}

func (m *MockBetTypeRepository) List(ctx context.Context, activeOnly bool) ([]*models.BetType, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BetType), args.Error(1)
}

func (m *MockBetTypeRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

// passthroughTx runs fn directly and counts the transactions opened.
type passthroughTx struct {
	calls int
}

func (p *passthroughTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type countingInvalidator struct {
	calls int
}

func (c *countingInvalidator) Invalidate() {
	c.calls++
}

type mockRepos struct {
	bets        *MockBetRepository
	sports      *MockSportRepository
	competition *MockCompetitionRepository
	teams       *MockTeamRepository
	bookmakers  *MockBookmakerRepository
	betTypes    *MockBetTypeRepository
}

func newMockRepos() (*mockRepos, *repository.Repositories) {
	m := &mockRepos{
		bets:        &MockBetRepository{},
		sports:      &MockSportRepository{},
		competition: &MockCompetitionRepository{},
		teams:       &MockTeamRepository{},
		bookmakers:  &MockBookmakerRepository{},
		betTypes:    &MockBetTypeRepository{},
	}
	return m, &repository.Repositories{
		Sport:       m.sports,
		Competition: m.competition,
		Team:        m.teams,
		Bookmaker:   m.bookmakers,
		BetType:     m.betTypes,
		Bet:         m.bets,
	}
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

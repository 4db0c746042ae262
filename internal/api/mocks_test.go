package api

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/yourusername/bet-ledger/internal/analytics"
	"github.com/yourusername/bet-ledger/internal/economics"
	"github.com/yourusername/bet-ledger/internal/models"
	"github.com/yourusername/bet-ledger/internal/repository"
	"github.com/yourusername/bet-ledger/internal/service"
)

type MockBetService struct {
	mock.Mock
}

func (m *MockBetService) Create(ctx context.Context, in service.BetInput) (*models.Bet, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bet), args.Error(1)
}

func (m *MockBetService) Update(ctx context.Context, id uuid.UUID, in service.BetInput) (*models.Bet, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bet), args.Error(1)
}

func (m *MockBetService) Settle(ctx context.Context, ids []uuid.UUID, outcome models.Outcome) (*service.SettleResult, error) {
	args := m.Called(ctx, ids, outcome)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SettleResult), args.Error(1)
}

func (m *MockBetService) Get(ctx context.Context, id uuid.UUID) (*models.Bet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bet), args.Error(1)
}

func (m *MockBetService) Metrics(ctx context.Context, id uuid.UUID) (economics.Metrics, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(economics.Metrics), args.Error(1)
}

func (m *MockBetService) List(ctx context.Context, filter repository.BetFilter) (*service.BetPage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BetPage), args.Error(1)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Location() *time.Location {
	return time.UTC
}

func (m *MockReportService) DailyProfit(ctx context.Context, start, end time.Time) (analytics.DailyProfitSeries, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(analytics.DailyProfitSeries), args.Error(1)
}

func (m *MockReportService) ProfitEvolution(ctx context.Context, days int) (analytics.DailyProfitSeries, error) {
	args := m.Called(ctx, days)
	return args.Get(0).(analytics.DailyProfitSeries), args.Error(1)
}

func (m *MockReportService) ROIBySport(ctx context.Context, limit int) ([]analytics.SportROI, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]analytics.SportROI), args.Error(1)
}

func (m *MockReportService) MonthlySummary(ctx context.Context, windowDays int) ([]analytics.MonthSummary, error) {
	args := m.Called(ctx, windowDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]analytics.MonthSummary), args.Error(1)
}

func (m *MockReportService) Dashboard(ctx context.Context) (analytics.Snapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(analytics.Snapshot), args.Error(1)
}

func (m *MockReportService) BookmakerStats(ctx context.Context, limit int) ([]analytics.BookmakerStat, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]analytics.BookmakerStat), args.Error(1)
}

func (m *MockReportService) Usage(ctx context.Context) (analytics.Usage, error) {
	args := m.Called(ctx)
	return args.Get(0).(analytics.Usage), args.Error(1)
}

// memoryLookup is an in-memory lookupStore.
type memoryLookup[T any] struct {
	mu     sync.Mutex
	items  map[uuid.UUID]*T
	active map[uuid.UUID]bool
	setID  func(*T, uuid.UUID)
}

func newMemoryLookup[T any](setID func(*T, uuid.UUID)) *memoryLookup[T] {
	return &memoryLookup[T]{
		items:  make(map[uuid.UUID]*T),
		active: make(map[uuid.UUID]bool),
		setID:  setID,
	}
}

func (m *memoryLookup[T]) Create(ctx context.Context, item *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.New()
	m.setID(item, id)
	m.items[id] = item
	m.active[id] = true
	return nil
}

func (m *memoryLookup[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return item, nil
}

func (m *memoryLookup[T]) List(ctx context.Context, activeOnly bool) ([]*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := []*T{}
	for id, item := range m.items {
		if activeOnly && !m.active[id] {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (m *memoryLookup[T]) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return models.ErrNotFound
	}
	m.active[id] = active
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

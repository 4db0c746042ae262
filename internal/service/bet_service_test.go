package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/bet-ledger/internal/models"
	"github.com/yourusername/bet-ledger/internal/repository"
)

type world struct {
	sport       *models.Sport
	competition *models.Competition
	home        *models.Team
	away        *models.Team
	bookmaker   *models.Bookmaker
	betType     *models.BetType
}

func newWorld() *world {
	sportID := uuid.New()
	return &world{
		sport:       &models.Sport{ID: sportID, Name: "Football", Code: "FUT", IsActive: true},
		competition: &models.Competition{ID: uuid.New(), Name: "Primeira Liga", SportID: sportID, IsActive: true},
		home:        &models.Team{ID: uuid.New(), Name: "Benfica", SportID: sportID, IsActive: true},
		away:        &models.Team{ID: uuid.New(), Name: "Porto", SportID: sportID, IsActive: true},
		bookmaker:   &models.Bookmaker{ID: uuid.New(), Name: "Betano", IsActive: true},
		betType:     &models.BetType{ID: uuid.New(), Name: "1X2", Category: models.CategoryMatchResult, IsActive: true},
	}
}

func (w *world) expectLookups(m *mockRepos) {
	m.sports.On("GetByID", mock.Anything, w.sport.ID).Return(w.sport, nil).Maybe()
	m.competition.On("GetByID", mock.Anything, w.competition.ID).Return(w.competition, nil).Maybe()
	m.teams.On("GetByID", mock.Anything, w.home.ID).Return(w.home, nil).Maybe()
	m.teams.On("GetByID", mock.Anything, w.away.ID).Return(w.away, nil).Maybe()
	m.bookmakers.On("GetByID", mock.Anything, w.bookmaker.ID).Return(w.bookmaker, nil).Maybe()
	m.betTypes.On("GetByID", mock.Anything, w.betType.ID).Return(w.betType, nil).Maybe()
}

func (w *world) input(outcome models.Outcome, stake, odds float64) BetInput {
	return BetInput{
		Date:                 time.Date(2025, 5, 10, 19, 0, 0, 0, time.UTC),
		SportID:              w.sport.ID,
		CompetitionID:        w.competition.ID,
		HomeTeamID:           w.home.ID,
		AwayTeamID:           w.away.ID,
		BetTypeID:            w.betType.ID,
		EstimatedProbability: 60,
		BookmakerID:          w.bookmaker.ID,
		BookmakerOdds:        odds,
		Stake:                stake,
		Outcome:              outcome,
		ConfidenceLevel:      4,
	}
}

func newTestBetService(t *testing.T) (*BetService, *mockRepos, *passthroughTx, *countingInvalidator) {
	t.Helper()
	m, repos := newMockRepos()
	tx := &passthroughTx{}
	inv := &countingInvalidator{}
	svc := NewBetService(tx, repos, inv, quietLogger())
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, m, tx, inv
}

func TestCreateSettlesWin(t *testing.T) {
	svc, m, tx, inv := newTestBetService(t)
	w := newWorld()
	w.expectLookups(m)
	m.bets.On("Create", mock.Anything, mock.AnythingOfType("*models.Bet")).Return(nil)

	bet, err := svc.Create(context.Background(), w.input(models.OutcomeWin, 50, 1.80))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, bet.ID)
	assert.Equal(t, 40.0, bet.ProfitLoss)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, 1, inv.calls)
	m.bets.AssertExpectations(t)
}

func TestCreateDefaultsOutcomeAndDate(t *testing.T) {
	svc, m, _, _ := newTestBetService(t)
	w := newWorld()
	w.expectLookups(m)
	m.bets.On("Create", mock.Anything, mock.AnythingOfType("*models.Bet")).Return(nil)

	in := w.input("", 20, 2.5)
	in.Date = time.Time{}
	bet, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomePending, bet.Outcome)
	assert.Equal(t, 0.0, bet.ProfitLoss)
	assert.Equal(t, svc.now(), bet.Date)
}

func TestCreateRejectsSameTeam(t *testing.T) {
	svc, m, _, inv := newTestBetService(t)
	w := newWorld()
	w.expectLookups(m)

	in := w.input(models.OutcomePending, 10, 2.0)
	in.AwayTeamID = in.HomeTeamID

	bet, err := svc.Create(context.Background(), in)
	assert.Nil(t, bet)

	var ve *models.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "away_team_id", ve.Field)
	m.bets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Equal(t, 0, inv.calls)
}

func TestCreateRejectsSameUnknownTeamWithoutLookups(t *testing.T) {
	svc, m, tx, _ := newTestBetService(t)
	w := newWorld()

	in := w.input(models.OutcomePending, 10, 2.0)
	in.HomeTeamID = uuid.New()
	in.AwayTeamID = in.HomeTeamID

	_, err := svc.Create(context.Background(), in)

	var ve *models.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "away_team_id", ve.Field)
	assert.NotErrorIs(t, err, models.ErrNotFound)
	assert.Equal(t, 0, tx.calls)
	m.teams.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCreateRejectsUnstorablePrecision(t *testing.T) {
	svc, m, tx, _ := newTestBetService(t)
	w := newWorld()

	for _, in := range []BetInput{
		w.input(models.OutcomeWin, 100, 2.005),
		w.input(models.OutcomeWin, 0.004, 2.0),
		w.input(models.OutcomeWin, 99999999.99, 2.5),
	} {
		_, err := svc.Create(context.Background(), in)
		assert.True(t, models.IsValidationError(err), "stake=%v odds=%v", in.Stake, in.BookmakerOdds)
	}
	assert.Equal(t, 0, tx.calls)
	m.bets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateRejectsZeroStakeBeforeTouchingStore(t *testing.T) {
	svc, m, tx, _ := newTestBetService(t)
	w := newWorld()

	_, err := svc.Create(context.Background(), w.input(models.OutcomePending, 0, 2.0))
	assert.True(t, models.IsValidationError(err))
	assert.Equal(t, 0, tx.calls)
	m.sports.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	m.bets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateRejectsTeamFromOtherSport(t *testing.T) {
	svc, m, _, _ := newTestBetService(t)
	w := newWorld()
	w.away.SportID = uuid.New()
	w.expectLookups(m)

	_, err := svc.Create(context.Background(), w.input(models.OutcomePending, 10, 2.0))
	var ve *models.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "both teams must belong to the same sport", ve.Message)
}

func TestCreateMissingLookup(t *testing.T) {
	svc, m, _, _ := newTestBetService(t)
	w := newWorld()
	m.sports.On("GetByID", mock.Anything, w.sport.ID).Return(nil, models.ErrNotFound)

	_, err := svc.Create(context.Background(), w.input(models.OutcomePending, 10, 2.0))
	assert.ErrorIs(t, err, models.ErrNotFound)
	m.bets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateInactiveLookup(t *testing.T) {
	svc, m, _, _ := newTestBetService(t)
	w := newWorld()
	w.bookmaker.IsActive = false
	w.expectLookups(m)

	_, err := svc.Create(context.Background(), w.input(models.OutcomePending, 10, 2.0))
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, err, models.ErrInactive)
	assert.Contains(t, err.Error(), "bookmaker")
	m.bets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateStoreFailure(t *testing.T) {
	svc, m, _, inv := newTestBetService(t)
	w := newWorld()
	w.expectLookups(m)
	m.bets.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	_, err := svc.Create(context.Background(), w.input(models.OutcomeWin, 10, 2.0))
	assert.EqualError(t, err, "connection reset")
	assert.Equal(t, 0, inv.calls)
}

func TestUpdateRecomputesProfit(t *testing.T) {
	svc, m, _, inv := newTestBetService(t)
	w := newWorld()
	w.expectLookups(m)

	existing := &models.Bet{ID: uuid.New(), Outcome: models.OutcomeWin, Stake: 30, BookmakerOdds: 2.0, ProfitLoss: 30}
	m.bets.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	m.bets.On("Update", mock.Anything, existing).Return(nil)

	bet, err := svc.Update(context.Background(), existing.ID, w.input(models.OutcomeLoss, 30, 2.0))
	require.NoError(t, err)

	assert.Equal(t, existing.ID, bet.ID)
	assert.Equal(t, -30.0, bet.ProfitLoss)
	assert.Equal(t, 1, inv.calls)
	m.bets.AssertExpectations(t)
}

func TestUpdateMissingBet(t *testing.T) {
	svc, m, _, _ := newTestBetService(t)
	w := newWorld()
	id := uuid.New()
	m.bets.On("GetByID", mock.Anything, id).Return(nil, models.ErrNotFound)

	_, err := svc.Update(context.Background(), id, w.input(models.OutcomeLoss, 30, 2.0))
	assert.ErrorIs(t, err, models.ErrNotFound)
	m.bets.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSettleOnlyPending(t *testing.T) {
	svc, m, tx, inv := newTestBetService(t)

	pending := &models.Bet{ID: uuid.New(), Outcome: models.OutcomePending, Stake: 20, BookmakerOdds: 2.5}
	done := &models.Bet{ID: uuid.New(), Outcome: models.OutcomeLoss, Stake: 10, BookmakerOdds: 3.0, ProfitLoss: -10}
	m.bets.On("GetByID", mock.Anything, pending.ID).Return(pending, nil)
	m.bets.On("GetByID", mock.Anything, done.ID).Return(done, nil)
	m.bets.On("Update", mock.Anything, pending).Return(nil).Once()

	result, err := svc.Settle(context.Background(), []uuid.UUID{pending.ID, done.ID}, models.OutcomeWin)
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{pending.ID}, result.Settled)
	assert.Equal(t, []uuid.UUID{done.ID}, result.Skipped)
	assert.Equal(t, 30.0, pending.ProfitLoss)
	assert.Equal(t, models.OutcomeLoss, done.Outcome)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, 1, inv.calls)
	m.bets.AssertExpectations(t)
}

func TestSettleRejectsPendingOutcome(t *testing.T) {
	svc, _, tx, _ := newTestBetService(t)

	_, err := svc.Settle(context.Background(), []uuid.UUID{uuid.New()}, models.OutcomePending)
	assert.True(t, models.IsValidationError(err))
	assert.Equal(t, 0, tx.calls)

	_, err = svc.Settle(context.Background(), nil, models.OutcomeVoid)
	assert.True(t, models.IsValidationError(err))
}

func TestMetricsScenarioA(t *testing.T) {
	svc, m, _, _ := newTestBetService(t)
	bet := &models.Bet{ID: uuid.New(), EstimatedProbability: 60, BookmakerOdds: 2.0, Stake: 100, Outcome: models.OutcomePending}
	m.bets.On("GetByID", mock.Anything, bet.ID).Return(bet, nil)

	metrics, err := svc.Metrics(context.Background(), bet.ID)
	require.NoError(t, err)

	assert.Equal(t, 50.0, metrics.ImpliedProbability)
	assert.Equal(t, -10.0, metrics.BookmakerEdge)
	assert.Equal(t, 20.0, metrics.ExpectedValue)
	assert.Equal(t, 200.0, metrics.PotentialPayout)
	assert.Equal(t, 100.0, metrics.PotentialProfit)
	assert.Equal(t, 0.0, metrics.ROI)
}

func TestListSummarises(t *testing.T) {
	svc, m, _, _ := newTestBetService(t)
	bets := []*models.Bet{
		{ID: uuid.New(), Outcome: models.OutcomeWin, Stake: 10, BookmakerOdds: 2.0, ProfitLoss: 10},
		{ID: uuid.New(), Outcome: models.OutcomeLoss, Stake: 20, BookmakerOdds: 3.0, ProfitLoss: -20},
		{ID: uuid.New(), Outcome: models.OutcomePending, Stake: 5, BookmakerOdds: 1.6},
	}
	filter := repository.BetFilter{Limit: 50}
	m.bets.On("List", mock.Anything, filter).Return(bets, nil)

	page, err := svc.List(context.Background(), filter)
	require.NoError(t, err)

	assert.Len(t, page.Bets, 3)
	assert.Equal(t, 3, page.Summary.TotalBets)
	assert.Equal(t, 35.0, page.Summary.TotalStaked)
	assert.Equal(t, -10.0, page.Summary.TotalProfitLoss)
	assert.Equal(t, 50.0, page.Summary.WinRate)
}

func TestListEmpty(t *testing.T) {
	svc, m, _, _ := newTestBetService(t)
	m.bets.On("List", mock.Anything, repository.BetFilter{}).Return(nil, nil)

	page, err := svc.List(context.Background(), repository.BetFilter{})
	require.NoError(t, err)
	assert.NotNil(t, page.Bets)
	assert.Empty(t, page.Bets)
}

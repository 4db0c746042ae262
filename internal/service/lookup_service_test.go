package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/bet-ledger/internal/models"
)

func TestLookupCreateAppliesDefaults(t *testing.T) {
	m, repos := newMockRepos()
	svc := NewLookupService(repos, &countingInvalidator{}, quietLogger())
	m.competition.On("Create", mock.Anything, mock.AnythingOfType("*models.Competition")).Return(nil)

	c := &models.Competition{Name: "Liga Portugal 2", SportID: uuid.New()}
	require.NoError(t, svc.Competitions.Create(context.Background(), c))

	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.True(t, c.IsActive)
	assert.Equal(t, models.DivisionNone, c.Division)
	assert.Equal(t, models.CompetitionRegularSeason, c.Type)
}

func TestLookupCreateValidates(t *testing.T) {
	m, repos := newMockRepos()
	svc := NewLookupService(repos, &countingInvalidator{}, quietLogger())

	err := svc.Sports.Create(context.Background(), &models.Sport{Name: "Handball", Code: "HANDBALL-EU"})
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "code", ve.Field)

	err = svc.Bookmakers.Create(context.Background(), &models.Bookmaker{Name: "Book", Website: "not a url"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "website", ve.Field)

	m.sports.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.bookmakers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLookupSetActiveInvalidatesReports(t *testing.T) {
	m, repos := newMockRepos()
	inv := &countingInvalidator{}
	svc := NewLookupService(repos, inv, quietLogger())
	id := uuid.New()

	m.bookmakers.On("SetActive", mock.Anything, id, false).Return(nil)
	require.NoError(t, svc.Bookmakers.SetActive(context.Background(), id, false))
	assert.Equal(t, 1, inv.calls)

	missing := uuid.New()
	m.teams.On("SetActive", mock.Anything, missing, false).Return(models.ErrNotFound)
	assert.ErrorIs(t, svc.Teams.SetActive(context.Background(), missing, false), models.ErrNotFound)
	assert.Equal(t, 1, inv.calls)
}

func TestLookupListNeverNil(t *testing.T) {
	m, repos := newMockRepos()
	svc := NewLookupService(repos, &countingInvalidator{}, quietLogger())
	m.betTypes.On("List", mock.Anything, true).Return(nil, nil)

	items, err := svc.BetTypes.List(context.Background(), true)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Equal(t, "bet_type", svc.BetTypes.Entity())
}

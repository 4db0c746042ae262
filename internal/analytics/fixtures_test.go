package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/bet-ledger/internal/economics"
	"github.com/yourusername/bet-ledger/internal/models"
)

var (
	football   = &models.Sport{ID: uuid.New(), Name: "Football", Code: "FB", IsActive: true}
	tennis     = &models.Sport{ID: uuid.New(), Name: "Tennis", Code: "TN", IsActive: true}
	basketball = &models.Sport{ID: uuid.New(), Name: "Basketball", Code: "BK", IsActive: true}

	bet365   = &models.Bookmaker{ID: uuid.New(), Name: "Bet365", IsActive: true}
	betclic  = &models.Bookmaker{ID: uuid.New(), Name: "Betclic", IsActive: true}
	pinnacle = &models.Bookmaker{ID: uuid.New(), Name: "Pinnacle", IsActive: true}
)

func day(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
}

type betOpt func(*models.Bet)

func onSport(s *models.Sport) betOpt            { return func(b *models.Bet) { b.SportID = s.ID } }
func withBookmaker(bm *models.Bookmaker) betOpt { return func(b *models.Bet) { b.BookmakerID = bm.ID } }
func withProbability(p float64) betOpt          { return func(b *models.Bet) { b.EstimatedProbability = p } }

func newBet(date time.Time, outcome models.Outcome, stake, odds float64, opts ...betOpt) *models.Bet {
	b := &models.Bet{
		ID:                   uuid.New(),
		Date:                 date,
		SportID:              football.ID,
		BookmakerID:          bet365.ID,
		EstimatedProbability: 50,
		BookmakerOdds:        odds,
		Stake:                stake,
		Outcome:              outcome,
		ConfidenceLevel:      3,
		CreatedAt:            date,
	}
	for _, opt := range opts {
		opt(b)
	}
	economics.Settle(b)
	return b
}

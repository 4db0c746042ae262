package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/bet-ledger/internal/models"
	"github.com/yourusername/bet-ledger/internal/repository"
	"github.com/yourusername/bet-ledger/internal/service"
)

// SettleRequest is the body of POST /api/v1/bets/settle.
type SettleRequest struct {
	IDs     []uuid.UUID    `json:"ids"`
	Outcome models.Outcome `json:"outcome"`
}

func (s *Server) createBet(w http.ResponseWriter, r *http.Request) {
	var in service.BetInput
	if err := decodeJSON(r, &in); err != nil {
		s.respondServiceError(w, r, err)
		return
	}

	bet, err := s.bets.Create(r.Context(), in)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, bet)
}

func (s *Server) updateBet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}

	var in service.BetInput
	if err := decodeJSON(r, &in); err != nil {
		s.respondServiceError(w, r, err)
		return
	}

	bet, err := s.bets.Update(r.Context(), id, in)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, bet)
}

func (s *Server) settleBets(w http.ResponseWriter, r *http.Request) {
	var req SettleRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondServiceError(w, r, err)
		return
	}

	result, err := s.bets.Settle(r.Context(), req.IDs, req.Outcome)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) getBet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}

	bet, err := s.bets.Get(r.Context(), id)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, bet)
}

func (s *Server) betMetrics(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}

	m, err := s.bets.Metrics(r.Context(), id)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, m)
}

func (s *Server) listBets(w http.ResponseWriter, r *http.Request) {
	filter, err := s.betFilter(r)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}

	page, err := s.bets.List(r.Context(), filter)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, page)
}

// betFilter reads the listing filter from the query string. "to" is an
// inclusive date and is turned into the exclusive bound the store expects.
func (s *Server) betFilter(r *http.Request) (repository.BetFilter, error) {
	var filter repository.BetFilter
	var err error

	if filter.SportID, err = queryUUID(r, "sport_id"); err != nil {
		return filter, err
	}
	if filter.BookmakerID, err = queryUUID(r, "bookmaker_id"); err != nil {
		return filter, err
	}
	if raw := r.URL.Query().Get("outcome"); raw != "" {
		outcome, err := models.ParseOutcome(raw)
		if err != nil {
			return filter, models.NewValidationError("outcome", err.Error())
		}
		filter.Outcome = &outcome
	}
	if filter.Completed, err = queryBool(r, "completed"); err != nil {
		return filter, err
	}

	loc := s.location()
	if filter.From, err = queryDate(r, "from", loc); err != nil {
		return filter, err
	}
	to, err := queryDate(r, "to", loc)
	if err != nil {
		return filter, err
	}
	if to != nil {
		next := to.AddDate(0, 0, 1)
		filter.To = &next
	}

	if filter.Limit, err = queryInt(r, "limit", 0); err != nil {
		return filter, err
	}
	return filter, nil
}

func (s *Server) location() *time.Location {
	if s.reports != nil {
		if loc := s.reports.Location(); loc != nil {
			return loc
		}
	}
	return time.UTC
}

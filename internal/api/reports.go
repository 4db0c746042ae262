package api

import (
	"net/http"

	"github.com/yourusername/bet-ledger/internal/economics"
	"github.com/yourusername/bet-ledger/internal/models"
)

// profitEvolution serves the daily profit series. An explicit start/end
// range takes precedence over days.
func (s *Server) profitEvolution(w http.ResponseWriter, r *http.Request) {
	loc := s.location()
	start, err := queryDate(r, "start", loc)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	end, err := queryDate(r, "end", loc)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}

	if start != nil || end != nil {
		if start == nil || end == nil {
			s.respondServiceError(w, r, models.NewValidationError("start", "start and end must be given together"))
			return
		}
		series, err := s.reports.DailyProfit(r.Context(), *start, *end)
		if err != nil {
			s.respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, series)
		return
	}

	days, err := queryInt(r, "days", s.defaults.DefaultDays)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	series, err := s.reports.ProfitEvolution(r.Context(), days)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, series)
}

func (s *Server) roiBySport(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", s.defaults.DefaultROILimit)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	rows, err := s.reports.ROIBySport(r.Context(), limit)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

func (s *Server) monthlySummary(w http.ResponseWriter, r *http.Request) {
	window, err := queryInt(r, "window_days", s.defaults.DefaultWindowDays)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	rows, err := s.reports.MonthlySummary(r.Context(), window)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

func (s *Server) bookmakerStats(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", s.defaults.DefaultROILimit)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	rows, err := s.reports.BookmakerStats(r.Context(), limit)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

func (s *Server) usage(w http.ResponseWriter, r *http.Request) {
	u, err := s.reports.Usage(r.Context())
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, u)
}

func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	snap, err := s.reports.Dashboard(r.Context())
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// expectedValue is the quick calculator. Bad input yields the zero preview
// rather than an error.
func (s *Server) expectedValue(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	preview := economics.PreviewFromStrings(q.Get("prob"), q.Get("odds"), q.Get("stake"))
	respondJSON(w, http.StatusOK, preview)
}

package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/yourusername/bet-ledger/internal/models"
)

// lookupStore is the subset of service.Lookup the handlers use.
type lookupStore[T any] interface {
	Create(ctx context.Context, item *T) error
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	List(ctx context.Context, activeOnly bool) ([]*T, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// ActiveRequest is the body of PATCH .../{id}/active.
type ActiveRequest struct {
	IsActive *bool `json:"is_active"`
}

// mountLookup registers list, create, get and activation routes for one
// reference table under prefix.
func mountLookup[T any](r chi.Router, prefix string, s *Server, store lookupStore[T], limiter func(http.Handler) http.Handler) {
	r.Route(prefix, func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			activeOnly, err := queryBool(r, "active")
			if err != nil {
				s.respondServiceError(w, r, err)
				return
			}
			items, err := store.List(r.Context(), activeOnly != nil && *activeOnly)
			if err != nil {
				s.respondServiceError(w, r, err)
				return
			}
			respondJSON(w, http.StatusOK, items)
		})

		r.With(limiter).Post("/", func(w http.ResponseWriter, r *http.Request) {
			item := new(T)
			if err := decodeJSON(r, item); err != nil {
				s.respondServiceError(w, r, err)
				return
			}
			if err := store.Create(r.Context(), item); err != nil {
				s.respondServiceError(w, r, err)
				return
			}
			respondJSON(w, http.StatusCreated, item)
		})

		r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
			id, err := pathID(r)
			if err != nil {
				s.respondServiceError(w, r, err)
				return
			}
			item, err := store.Get(r.Context(), id)
			if err != nil {
				s.respondServiceError(w, r, err)
				return
			}
			respondJSON(w, http.StatusOK, item)
		})

		r.With(limiter).Patch("/{id}/active", func(w http.ResponseWriter, r *http.Request) {
			id, err := pathID(r)
			if err != nil {
				s.respondServiceError(w, r, err)
				return
			}
			var req ActiveRequest
			if err := decodeJSON(r, &req); err != nil {
				s.respondServiceError(w, r, err)
				return
			}
			if req.IsActive == nil {
				s.respondServiceError(w, r, models.NewValidationError("is_active", "is required"))
				return
			}
			if err := store.SetActive(r.Context(), id, *req.IsActive); err != nil {
				s.respondServiceError(w, r, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})
	})
}

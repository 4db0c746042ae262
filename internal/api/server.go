// Package api exposes the ledger over a JSON HTTP interface.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/bet-ledger/internal/analytics"
	"github.com/yourusername/bet-ledger/internal/config"
	"github.com/yourusername/bet-ledger/internal/economics"
	"github.com/yourusername/bet-ledger/internal/health"
	"github.com/yourusername/bet-ledger/internal/metrics"
	"github.com/yourusername/bet-ledger/internal/models"
	"github.com/yourusername/bet-ledger/internal/repository"
	"github.com/yourusername/bet-ledger/internal/service"
)

// BetService is the write path used by the bet handlers.
type BetService interface {
	Create(ctx context.Context, in service.BetInput) (*models.Bet, error)
	Update(ctx context.Context, id uuid.UUID, in service.BetInput) (*models.Bet, error)
	Settle(ctx context.Context, ids []uuid.UUID, outcome models.Outcome) (*service.SettleResult, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Bet, error)
	Metrics(ctx context.Context, id uuid.UUID) (economics.Metrics, error)
	List(ctx context.Context, filter repository.BetFilter) (*service.BetPage, error)
}

// ReportService is the read-only reporting surface.
type ReportService interface {
	Location() *time.Location
	DailyProfit(ctx context.Context, start, end time.Time) (analytics.DailyProfitSeries, error)
	ProfitEvolution(ctx context.Context, days int) (analytics.DailyProfitSeries, error)
	ROIBySport(ctx context.Context, limit int) ([]analytics.SportROI, error)
	MonthlySummary(ctx context.Context, windowDays int) ([]analytics.MonthSummary, error)
	Dashboard(ctx context.Context) (analytics.Snapshot, error)
	BookmakerStats(ctx context.Context, limit int) ([]analytics.BookmakerStat, error)
	Usage(ctx context.Context) (analytics.Usage, error)
}

// Dependencies are the collaborators of the API server.
type Dependencies struct {
	Bets    BetService
	Reports ReportService
	Lookups *service.LookupService
	Health  *health.Checker
	Logger  *logrus.Logger
}

// Server wires the chi router to the services.
type Server struct {
	bets     BetService
	reports  ReportService
	lookups  *service.LookupService
	health   *health.Checker
	cfg      config.ServerConfig
	defaults config.ReportsConfig
	metrics  config.MetricsConfig
	logger   *logrus.Entry
	router   chi.Router
}

// NewServer builds the router.
func NewServer(cfg *config.Config, deps Dependencies) *Server {
	s := &Server{
		bets:     deps.Bets,
		reports:  deps.Reports,
		lookups:  deps.Lookups,
		health:   deps.Health,
		cfg:      cfg.Server,
		defaults: cfg.Reports,
		metrics:  cfg.Metrics,
		logger:   deps.Logger.WithField("component", "api"),
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	if s.health != nil {
		s.health.Routes(r)
	}
	if s.metrics.Enabled {
		r.Handle(s.metrics.Path, metrics.Handler())
	}

	limiter := writeLimiter(newWriteLimiter(s.cfg.WriteRateLimit, s.cfg.WriteBurst))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/bets", func(r chi.Router) {
			r.Get("/", s.listBets)
			r.With(limiter).Post("/", s.createBet)
			r.With(limiter).Post("/settle", s.settleBets)
			r.Get("/{id}", s.getBet)
			r.With(limiter).Put("/{id}", s.updateBet)
			r.Get("/{id}/metrics", s.betMetrics)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/profit-evolution", s.profitEvolution)
			r.Get("/roi-by-sport", s.roiBySport)
			r.Get("/monthly-summary", s.monthlySummary)
			r.Get("/bookmakers", s.bookmakerStats)
			r.Get("/usage", s.usage)
		})
		r.Get("/dashboard", s.dashboard)
		r.Get("/ev", s.expectedValue)

		if s.lookups != nil {
			mountLookup[models.Sport](r, "/sports", s, s.lookups.Sports, limiter)
			mountLookup[models.Competition](r, "/competitions", s, s.lookups.Competitions, limiter)
			mountLookup[models.Team](r, "/teams", s, s.lookups.Teams, limiter)
			mountLookup[models.Bookmaker](r, "/bookmakers", s, s.lookups.Bookmakers, limiter)
			mountLookup[models.BetType](r, "/bet-types", s, s.lookups.BetTypes, limiter)
		}
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.cfg.Address(),
		Handler:      s.router,
		ReadTimeout:  time.Duration(s.cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeoutSeconds) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", server.Addr).Info("API server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("API server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(s.cfg.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()

	if s.health != nil {
		s.health.SetReady(false)
	}
	return server.Shutdown(shutdownCtx)
}

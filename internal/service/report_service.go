package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/bet-ledger/internal/analytics"
	"github.com/yourusername/bet-ledger/internal/logger"
	"github.com/yourusername/bet-ledger/internal/metrics"
	"github.com/yourusername/bet-ledger/internal/models"
	"github.com/yourusername/bet-ledger/internal/repository"
)

// Report names, used for cache keys, metrics labels and logs.
const (
	ReportDailyProfit    = "daily_profit"
	ReportROIBySport     = "roi_by_sport"
	ReportMonthlySummary = "monthly_summary"
	ReportDashboard      = "dashboard"
	ReportUsage          = "usage"
	ReportBookmakers     = "bookmaker_stats"
)

// ReportError is the payload returned instead of a report when computing it
// failed. Reports never propagate raw errors or panics to the caller.
type ReportError struct {
	Code    string `json:"error"`
	Message string `json:"message"`
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// DefaultMaxSpanDays is the series length cap used when none is configured.
const DefaultMaxSpanDays = 3660

// ReportOptions configures a ReportService.
type ReportOptions struct {
	Location *time.Location
	Cache    *ReportCache
	Now      func() time.Time
	// MaxSpanDays caps the number of days in a daily series.
	MaxSpanDays int
}

// ReportService loads bets from the store and runs the analytics over them.
// It never writes.
type ReportService struct {
	bets       repository.BetRepository
	sports     repository.SportRepository
	bookmakers repository.BookmakerRepository
	cache      *ReportCache
	loc        *time.Location
	now        func() time.Time
	maxSpan    int
	logger     *logger.ReportLogger
}

// NewReportService creates a new report service
func NewReportService(repos *repository.Repositories, opts ReportOptions, log *logrus.Logger) *ReportService {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	maxSpan := opts.MaxSpanDays
	if maxSpan <= 0 {
		maxSpan = DefaultMaxSpanDays
	}
	return &ReportService{
		bets:       repos.Bet,
		sports:     repos.Sport,
		bookmakers: repos.Bookmaker,
		cache:      opts.Cache,
		loc:        loc,
		now:        now,
		maxSpan:    maxSpan,
		logger:     logger.NewReportLogger(log),
	}
}

// Location returns the time zone reports are bucketed in.
func (s *ReportService) Location() *time.Location {
	return s.loc
}

// Today returns midnight of the current day in the report time zone.
func (s *ReportService) Today() time.Time {
	y, m, d := s.now().In(s.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.loc)
}

// runReport serves a report from the cache or computes it, converting
// errors and panics into a *ReportError.
func runReport[T any](ctx context.Context, s *ReportService, report string, params map[string]interface{}, compute func(ctx context.Context) (T, int, error)) (result T, err error) {
	key := reportKey(report, params)
	if cached, ok := s.cache.Get(report, key); ok {
		if value, ok := cached.(T); ok {
			s.logger.LogReportCacheHit(report, key)
			return value, nil
		}
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result = zero
			err = s.fail(report, fmt.Errorf("panic: %v", r))
		}
	}()

	value, loaded, cerr := compute(ctx)
	if cerr != nil {
		var zero T
		return zero, s.fail(report, cerr)
	}

	elapsed := time.Since(start)
	metrics.RecordReportDuration(report, elapsed.Seconds())
	s.logger.LogReportGenerated(report, params, loaded, float64(elapsed.Microseconds())/1000)
	s.cache.Set(key, value)
	return value, nil
}

func (s *ReportService) fail(report string, err error) *ReportError {
	metrics.RecordReportFailure(report)
	s.logger.LogReportFailure(report, err)
	return &ReportError{
		Code:    fmt.Sprintf("failed to compute %s", report),
		Message: err.Error(),
	}
}

// DailyProfit returns the profit series for every day in [start, end].
func (s *ReportService) DailyProfit(ctx context.Context, start, end time.Time) (analytics.DailyProfitSeries, error) {
	first := s.dayStart(start)
	last := s.dayStart(end)
	if last.Before(first) {
		return analytics.DailyProfitSeries{}, models.NewValidationError("end", "must not be before start")
	}
	if !last.Before(first.AddDate(0, 0, s.maxSpan)) {
		return analytics.DailyProfitSeries{}, models.NewValidationError("end", fmt.Sprintf("range must not exceed %d days", s.maxSpan))
	}

	params := map[string]interface{}{
		"start": first.Format("2006-01-02"),
		"end":   last.Format("2006-01-02"),
	}
	return runReport(ctx, s, ReportDailyProfit, params, func(ctx context.Context) (analytics.DailyProfitSeries, int, error) {
		bets, err := s.completedBets(ctx, first, last.AddDate(0, 0, 1))
		if err != nil {
			return analytics.DailyProfitSeries{}, 0, err
		}
		return analytics.DailySeries(bets, first, last, s.loc), len(bets), nil
	})
}

// ProfitEvolution returns the daily series for the last days days, today
// included.
func (s *ReportService) ProfitEvolution(ctx context.Context, days int) (analytics.DailyProfitSeries, error) {
	if days < 1 {
		return analytics.DailyProfitSeries{}, models.NewValidationError("days", "must be at least 1")
	}
	if days > s.maxSpan {
		return analytics.DailyProfitSeries{}, models.NewValidationError("days", fmt.Sprintf("must be at most %d", s.maxSpan))
	}
	today := s.Today()
	return s.DailyProfit(ctx, today.AddDate(0, 0, -(days-1)), today)
}

// ROIBySport returns up to limit sports ranked by ROI, best first.
func (s *ReportService) ROIBySport(ctx context.Context, limit int) ([]analytics.SportROI, error) {
	if limit < 1 {
		return nil, models.NewValidationError("limit", "must be at least 1")
	}

	params := map[string]interface{}{"limit": limit}
	return runReport(ctx, s, ReportROIBySport, params, func(ctx context.Context) ([]analytics.SportROI, int, error) {
		bets, err := s.completedBets(ctx, time.Time{}, time.Time{})
		if err != nil {
			return nil, 0, err
		}
		sports, err := s.sports.List(ctx, false)
		if err != nil {
			return nil, 0, err
		}
		result := analytics.ROIBySport(bets, sports, limit)
		if result == nil {
			result = []analytics.SportROI{}
		}
		return result, len(bets), nil
	})
}

// MonthlySummary reports each month of the trailing window that has
// completed bets. The window starts on the first day of the month containing
// today minus windowDays.
func (s *ReportService) MonthlySummary(ctx context.Context, windowDays int) ([]analytics.MonthSummary, error) {
	if windowDays < 0 {
		return nil, models.NewValidationError("window_days", "must not be negative")
	}

	today := s.Today()
	from := today.AddDate(0, 0, -windowDays)
	monthStart := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, s.loc)

	params := map[string]interface{}{"window_days": windowDays, "today": today.Format("2006-01-02")}
	return runReport(ctx, s, ReportMonthlySummary, params, func(ctx context.Context) ([]analytics.MonthSummary, int, error) {
		bets, err := s.completedBets(ctx, monthStart, today.AddDate(0, 0, 1))
		if err != nil {
			return nil, 0, err
		}
		result := analytics.MonthlySummary(bets, monthStart, today, s.loc)
		if result == nil {
			result = []analytics.MonthSummary{}
		}
		return result, len(bets), nil
	})
}

// Dashboard returns the global snapshot over every recorded bet.
func (s *ReportService) Dashboard(ctx context.Context) (analytics.Snapshot, error) {
	params := map[string]interface{}{"today": s.Today().Format("2006-01-02")}
	snapshot, err := runReport(ctx, s, ReportDashboard, params, func(ctx context.Context) (analytics.Snapshot, int, error) {
		bets, err := s.bets.List(ctx, repository.BetFilter{})
		if err != nil {
			return analytics.Snapshot{}, 0, err
		}
		sports, err := s.sports.List(ctx, false)
		if err != nil {
			return analytics.Snapshot{}, 0, err
		}
		bookmakers, err := s.bookmakers.List(ctx, false)
		if err != nil {
			return analytics.Snapshot{}, 0, err
		}
		snap := analytics.Dashboard(bets, sports, bookmakers, analytics.DefaultDashboardOptions(s.now()))
		return snap, len(bets), nil
	})
	if err == nil {
		metrics.UpdatePending(snapshot.PendingBets, snapshot.PendingStake)
	}
	return snapshot, err
}

// BookmakerStats ranks every bookmaker by total staked.
func (s *ReportService) BookmakerStats(ctx context.Context, limit int) ([]analytics.BookmakerStat, error) {
	if limit < 1 {
		return nil, models.NewValidationError("limit", "must be at least 1")
	}

	params := map[string]interface{}{"limit": limit}
	return runReport(ctx, s, ReportBookmakers, params, func(ctx context.Context) ([]analytics.BookmakerStat, int, error) {
		bets, err := s.bets.List(ctx, repository.BetFilter{})
		if err != nil {
			return nil, 0, err
		}
		bookmakers, err := s.bookmakers.List(ctx, false)
		if err != nil {
			return nil, 0, err
		}
		result := analytics.BookmakerStats(bets, bookmakers, limit)
		if result == nil {
			result = []analytics.BookmakerStat{}
		}
		return result, len(bets), nil
	})
}

// Usage counts the bets that reference each lookup entity.
func (s *ReportService) Usage(ctx context.Context) (analytics.Usage, error) {
	return runReport(ctx, s, ReportUsage, nil, func(ctx context.Context) (analytics.Usage, int, error) {
		bets, err := s.bets.List(ctx, repository.BetFilter{})
		if err != nil {
			return analytics.Usage{}, 0, err
		}
		return analytics.CountUsage(bets), len(bets), nil
	})
}

func (s *ReportService) completedBets(ctx context.Context, from, to time.Time) ([]*models.Bet, error) {
	completed := true
	filter := repository.BetFilter{Completed: &completed}
	if !from.IsZero() {
		filter.From = &from
	}
	if !to.IsZero() {
		filter.To = &to
	}
	return s.bets.List(ctx, filter)
}

func (s *ReportService) dayStart(t time.Time) time.Time {
	y, m, d := t.In(s.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.loc)
}

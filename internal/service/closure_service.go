package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tregobbi/backoffice-service/internal/domain"
	"github.com/tregobbi/backoffice-service/internal/reconcile"
	"github.com/tregobbi/backoffice-service/internal/repository"
)

// ClosureServiceError represents an error in the closure service
type ClosureServiceError struct {
	Op  string
	Err error
}

func (e *ClosureServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

func (e *ClosureServiceError) Unwrap() error {
	return e.Err
}

// ClosureService defines the interface for cash-closure business logic
type ClosureService interface {
	// Closure record operations
	UpsertClosure(ctx context.Context, closure *domain.DailyClosure) (*domain.ClosureView, error)
	GetClosure(ctx context.Context, date time.Time) (*domain.ClosureView, error)
	DeleteClosure(ctx context.Context, date time.Time) error

	// Report operations
	GetMonthlyReport(ctx context.Context, year, month int) (*domain.MonthlyReport, error)
	GetAnnualReport(ctx context.Context, year int) (*domain.AnnualReport, error)
	GetYearComparison(ctx context.Context, year int) (*domain.YearComparison, error)
	GetMonthComparison(ctx context.Context, year1, month1, year2, month2 int) (*domain.MonthComparison, error)
	GetTopDays(ctx context.Context, year, limit int) (*domain.TopDaysRanking, error)
	GetDailySeries(ctx context.Context, year int) ([]domain.DailySeriesPoint, error)
}

// ClosureServiceImpl implements the ClosureService interface
type ClosureServiceImpl struct {
	repository repository.ClosureRepository
	logger     *logrus.Logger
}

// NewClosureService creates a new ClosureService
func NewClosureService(repo repository.ClosureRepository, logger *logrus.Logger) ClosureService {
	return &ClosureServiceImpl{
		repository: repo,
		logger:     logger,
	}
}

// UpsertClosure stores the closure for its date, replacing any prior record,
// and echoes the fully derived view.
func (s *ClosureServiceImpl) UpsertClosure(ctx context.Context, closure *domain.DailyClosure) (*domain.ClosureView, error) {
	if closure.Date.IsZero() {
		return nil, &ClosureServiceError{Op: "upsert_closure", Err: fmt.Errorf("date is required")}
	}
	closure.Date = truncateToDay(closure.Date)

	stored, err := s.repository.Upsert(ctx, closure)
	if err != nil {
		return nil, &ClosureServiceError{Op: "upsert_closure", Err: err}
	}

	view := reconcile.Derive(*stored)

	s.logger.WithFields(logrus.Fields{
		"date":       stored.Date.Format("2006-01-02"),
		"cashDiff":   view.CashDiff.String(),
		"cashStatus": view.CashStatus,
	}).Info("daily closure upserted")

	return &view, nil
}

// GetClosure returns the derived view of one day's closure.
func (s *ClosureServiceImpl) GetClosure(ctx context.Context, date time.Time) (*domain.ClosureView, error) {
	closure, err := s.repository.GetByDate(ctx, truncateToDay(date))
	if err != nil {
		return nil, &ClosureServiceError{Op: "get_closure", Err: err}
	}

	view := reconcile.Derive(*closure)
	return &view, nil
}

// DeleteClosure removes one day's closure record.
func (s *ClosureServiceImpl) DeleteClosure(ctx context.Context, date time.Time) error {
	if err := s.repository.DeleteByDate(ctx, truncateToDay(date)); err != nil {
		return &ClosureServiceError{Op: "delete_closure", Err: err}
	}
	return nil
}

// GetMonthlyReport builds the month's statistics, weekday baselines and the
// full calendar of days. Aggregation sees only stored records; the filler
// days are synthesized afterwards, purely for display.
func (s *ClosureServiceImpl) GetMonthlyReport(ctx context.Context, year, month int) (*domain.MonthlyReport, error) {
	records, err := s.repository.ListMonth(ctx, year, month)
	if err != nil {
		return nil, &ClosureServiceError{Op: "get_monthly_report", Err: err}
	}

	stats := reconcile.AggregateMonth(year, month, records)
	views, baselines := reconcile.ClassifyAll(records)

	return &domain.MonthlyReport{
		Statistics: stats,
		Baselines:  baselines,
		Days:       padCalendar(year, month, views),
	}, nil
}

// GetAnnualReport builds the year's statistics plus per-month rollups.
func (s *ClosureServiceImpl) GetAnnualReport(ctx context.Context, year int) (*domain.AnnualReport, error) {
	records, err := s.repository.ListYear(ctx, year)
	if err != nil {
		return nil, &ClosureServiceError{Op: "get_annual_report", Err: err}
	}

	byMonth := make(map[int][]domain.DailyClosure)
	for _, c := range records {
		m := int(c.Date.Month())
		byMonth[m] = append(byMonth[m], c)
	}

	months := make([]domain.MonthlyStatistics, 0, 12)
	for m := 1; m <= 12; m++ {
		months = append(months, reconcile.AggregateMonth(year, m, byMonth[m]))
	}

	return &domain.AnnualReport{
		Statistics: reconcile.AggregateYear(year, records),
		Months:     months,
	}, nil
}

// GetYearComparison compares a year against the prior one. A prior year with
// no records at all compares as zero totals with nil percentage deltas.
func (s *ClosureServiceImpl) GetYearComparison(ctx context.Context, year int) (*domain.YearComparison, error) {
	currentRecords, err := s.repository.ListYear(ctx, year)
	if err != nil {
		return nil, &ClosureServiceError{Op: "get_year_comparison", Err: err}
	}
	priorRecords, err := s.repository.ListYear(ctx, year-1)
	if err != nil {
		return nil, &ClosureServiceError{Op: "get_year_comparison", Err: err}
	}

	cmp := reconcile.CompareYears(
		reconcile.AggregateYear(year, currentRecords),
		reconcile.AggregateYear(year-1, priorRecords),
	)
	return &cmp, nil
}

// GetMonthComparison compares two arbitrary months, possibly across years.
func (s *ClosureServiceImpl) GetMonthComparison(ctx context.Context, year1, month1, year2, month2 int) (*domain.MonthComparison, error) {
	records1, err := s.repository.ListMonth(ctx, year1, month1)
	if err != nil {
		return nil, &ClosureServiceError{Op: "get_month_comparison", Err: err}
	}
	records2, err := s.repository.ListMonth(ctx, year2, month2)
	if err != nil {
		return nil, &ClosureServiceError{Op: "get_month_comparison", Err: err}
	}

	cmp := reconcile.CompareMonths(
		reconcile.AggregateMonth(year1, month1, records1),
		reconcile.AggregateMonth(year2, month2, records2),
	)
	return &cmp, nil
}

// GetTopDays returns the year's best and worst open days by receipts.
func (s *ClosureServiceImpl) GetTopDays(ctx context.Context, year, limit int) (*domain.TopDaysRanking, error) {
	records, err := s.repository.ListYear(ctx, year)
	if err != nil {
		return nil, &ClosureServiceError{Op: "get_top_days", Err: err}
	}

	ranking := reconcile.RankDays(year, records, limit)
	return &ranking, nil
}

// GetDailySeries returns the year's per-day chart series.
func (s *ClosureServiceImpl) GetDailySeries(ctx context.Context, year int) ([]domain.DailySeriesPoint, error) {
	records, err := s.repository.ListYear(ctx, year)
	if err != nil {
		return nil, &ClosureServiceError{Op: "get_daily_series", Err: err}
	}

	points := make([]domain.DailySeriesPoint, 0, len(records))
	for _, v := range reconcile.DeriveAll(records) {
		points = append(points, domain.DailySeriesPoint{
			Date:          v.Date,
			Weekday:       v.Weekday,
			Corrispettivi: v.Corrispettivi,
			TotalReceipts: v.TotalReceipts,
			IsClosed:      v.IsClosed,
		})
	}
	return points, nil
}

// padCalendar interleaves the stored views with synthesized filler so every
// day of the month appears exactly once, in order.
func padCalendar(year, month int, views []domain.ClosureView) []domain.MonthlyReportDay {
	byDay := make(map[int]domain.ClosureView, len(views))
	for _, v := range views {
		byDay[v.Date.Day()] = v
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]domain.MonthlyReportDay, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		if v, ok := byDay[d]; ok {
			days = append(days, domain.MonthlyReportDay{ClosureView: v})
			continue
		}

		filler := reconcile.Derive(domain.DailyClosure{
			Date: time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC),
		})
		days = append(days, domain.MonthlyReportDay{ClosureView: filler, Synthesized: true})
	}
	return days
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package service

import (
	"context"
	"io"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tregobbi/backoffice-service/internal/domain"
	"github.com/tregobbi/backoffice-service/internal/repository"
)

// fakeClosureRepo is an in-memory ClosureRepository for service tests.
type fakeClosureRepo struct {
	byDate map[string]domain.DailyClosure
}

func newFakeClosureRepo() *fakeClosureRepo {
	return &fakeClosureRepo{byDate: make(map[string]domain.DailyClosure)}
}

func (f *fakeClosureRepo) Upsert(_ context.Context, closure *domain.DailyClosure) (*domain.DailyClosure, error) {
	key := closure.Date.Format("2006-01-02")
	if existing, ok := f.byDate[key]; ok {
		closure.CreatedAt = existing.CreatedAt
	} else {
		closure.CreatedAt = time.Now()
	}
	closure.UpdatedAt = time.Now()
	f.byDate[key] = *closure
	return closure, nil
}

func (f *fakeClosureRepo) GetByDate(_ context.Context, date time.Time) (*domain.DailyClosure, error) {
	c, ok := f.byDate[date.Format("2006-01-02")]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (f *fakeClosureRepo) ListMonth(_ context.Context, year, month int) ([]domain.DailyClosure, error) {
	var out []domain.DailyClosure
	for _, c := range f.byDate {
		if c.Date.Year() == year && int(c.Date.Month()) == month {
			out = append(out, c)
		}
	}
	sortByDate(out)
	return out, nil
}

func (f *fakeClosureRepo) ListYear(_ context.Context, year int) ([]domain.DailyClosure, error) {
	var out []domain.DailyClosure
	for _, c := range f.byDate {
		if c.Date.Year() == year {
			out = append(out, c)
		}
	}
	sortByDate(out)
	return out, nil
}

func (f *fakeClosureRepo) DeleteByDate(_ context.Context, date time.Time) error {
	key := date.Format("2006-01-02")
	if _, ok := f.byDate[key]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byDate, key)
	return nil
}

func sortByDate(closures []domain.DailyClosure) {
	sort.Slice(closures, func(i, j int) bool {
		return closures[i].Date.Before(closures[j].Date)
	})
}

func newTestService(repo repository.ClosureRepository) ClosureService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewClosureService(repo, logger)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestUpsertClosureEchoesDerivedView(t *testing.T) {
	svc := newTestService(newFakeClosureRepo())

	view, err := svc.UpsertClosure(context.Background(), &domain.DailyClosure{
		Date:          day("2025-04-12"),
		Corrispettivi: dec("900"),
		CashFinal:     dec("200"),
		POS:           dec("650"),
		Mance:         dec("30"),
	})

	require.NoError(t, err)
	assert.True(t, view.TotalReceipts.Equal(dec("880")))
	assert.True(t, view.CashDiff.Equal(dec("-20")))
	assert.Equal(t, domain.CashStatusShort, view.CashStatus)
}

func TestUpsertClosureIsIdempotentPerDate(t *testing.T) {
	repo := newFakeClosureRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.UpsertClosure(ctx, &domain.DailyClosure{
		Date:          day("2025-04-12"),
		Corrispettivi: dec("900"),
		CashFinal:     dec("900"),
	})
	require.NoError(t, err)

	// Re-submitting the same date fully replaces the first payload.
	view, err := svc.UpsertClosure(ctx, &domain.DailyClosure{
		Date:          day("2025-04-12"),
		Corrispettivi: dec("500"),
		POS:           dec("500"),
	})
	require.NoError(t, err)

	assert.Len(t, repo.byDate, 1)
	assert.True(t, view.Corrispettivi.Equal(dec("500")))
	assert.True(t, view.CashFinal.IsZero())

	stored, err := svc.GetClosure(ctx, day("2025-04-12"))
	require.NoError(t, err)
	assert.True(t, stored.POS.Equal(dec("500")))
	assert.True(t, stored.CashFinal.IsZero())
}

func TestGetClosureNotFound(t *testing.T) {
	svc := newTestService(newFakeClosureRepo())

	_, err := svc.GetClosure(context.Background(), day("2025-01-01"))
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpsertClosureRequiresDate(t *testing.T) {
	svc := newTestService(newFakeClosureRepo())

	_, err := svc.UpsertClosure(context.Background(), &domain.DailyClosure{})
	assert.Error(t, err)
}

func TestMonthlyReportPadsCalendarWithoutPollutingStatistics(t *testing.T) {
	repo := newFakeClosureRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.UpsertClosure(ctx, &domain.DailyClosure{
		Date:          day("2025-02-10"),
		Corrispettivi: dec("100"),
		CashFinal:     dec("100"),
	})
	require.NoError(t, err)
	_, err = svc.UpsertClosure(ctx, &domain.DailyClosure{
		Date:          day("2025-02-20"),
		Corrispettivi: dec("300"),
		CashFinal:     dec("300"),
	})
	require.NoError(t, err)

	report, err := svc.GetMonthlyReport(ctx, 2025, 2)
	require.NoError(t, err)

	// 2025 is not a leap year: the calendar shows all 28 days.
	require.Len(t, report.Days, 28)

	synthesized := 0
	for _, d := range report.Days {
		if d.Synthesized {
			synthesized++
			assert.True(t, d.Corrispettivi.IsZero())
		}
	}
	assert.Equal(t, 26, synthesized)

	// Filler never leaks into the statistics.
	assert.Equal(t, 2, report.Statistics.RecordedDaysCount)
	assert.Equal(t, 2, report.Statistics.OpenDaysCount)
	require.NotNil(t, report.Statistics.AverageCorrispettivi)
	assert.True(t, report.Statistics.AverageCorrispettivi.Equal(dec("200")))
	assert.True(t, report.Statistics.TotalCorrispettivi.Equal(dec("400")))
}

func TestMonthlyReportDaysAreOrdered(t *testing.T) {
	repo := newFakeClosureRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	for _, d := range []string{"2025-03-15", "2025-03-02", "2025-03-28"} {
		_, err := svc.UpsertClosure(ctx, &domain.DailyClosure{
			Date:          day(d),
			Corrispettivi: dec("100"),
			CashFinal:     dec("100"),
		})
		require.NoError(t, err)
	}

	report, err := svc.GetMonthlyReport(ctx, 2025, 3)
	require.NoError(t, err)
	require.Len(t, report.Days, 31)

	for i, d := range report.Days {
		assert.Equal(t, i+1, d.Date.Day())
	}
}

func TestAnnualReportBreaksDownByMonth(t *testing.T) {
	repo := newFakeClosureRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.UpsertClosure(ctx, &domain.DailyClosure{
		Date: day("2025-01-10"), Corrispettivi: dec("1000"), CashFinal: dec("1000"),
	})
	require.NoError(t, err)
	_, err = svc.UpsertClosure(ctx, &domain.DailyClosure{
		Date: day("2025-06-10"), Corrispettivi: dec("2000"), CashFinal: dec("2000"),
	})
	require.NoError(t, err)

	report, err := svc.GetAnnualReport(ctx, 2025)
	require.NoError(t, err)

	assert.True(t, report.Statistics.TotalCorrispettivi.Equal(dec("3000")))
	require.Len(t, report.Months, 12)
	assert.True(t, report.Months[0].TotalCorrispettivi.Equal(dec("1000")))
	assert.True(t, report.Months[5].TotalCorrispettivi.Equal(dec("2000")))
	assert.True(t, report.Months[3].TotalCorrispettivi.IsZero())
	assert.Nil(t, report.Months[3].AverageCorrispettivi)
}

func TestYearComparisonAgainstEmptyPriorYear(t *testing.T) {
	repo := newFakeClosureRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.UpsertClosure(ctx, &domain.DailyClosure{
		Date: day("2025-05-01"), Corrispettivi: dec("4200"), CashFinal: dec("4200"),
	})
	require.NoError(t, err)

	cmp, err := svc.GetYearComparison(ctx, 2025)
	require.NoError(t, err)

	assert.True(t, cmp.DeltaCorrispettivi.Equal(dec("4200")))
	assert.Nil(t, cmp.DeltaCorrispettiviPct)
}

func TestDeleteClosure(t *testing.T) {
	repo := newFakeClosureRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.UpsertClosure(ctx, &domain.DailyClosure{
		Date: day("2025-05-01"), Corrispettivi: dec("100"), CashFinal: dec("100"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteClosure(ctx, day("2025-05-01")))

	err = svc.DeleteClosure(ctx, day("2025-05-01"))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tregobbi/backoffice-service/internal/domain"
)

func TestAggregateYear(t *testing.T) {
	records := []domain.DailyClosure{
		openDay("2025-01-10", "1000"),
		openDay("2025-06-20", "2500"),
		closedDay("2025-12-25"),
	}

	stats := AggregateYear(2025, records)

	assert.Equal(t, 2025, stats.Year)
	assert.True(t, stats.TotalCorrispettivi.Equal(dec("3500")))
	assert.True(t, stats.TotalIncassi.Equal(dec("3500")))
	assert.Equal(t, 3, stats.RecordedDaysCount)
	assert.Equal(t, 2, stats.OpenDaysCount)
	assert.Equal(t, 1, stats.ClosedDaysCount)
}

func TestCompareYears(t *testing.T) {
	current := AggregateYear(2025, []domain.DailyClosure{openDay("2025-01-10", "1100")})
	prior := AggregateYear(2024, []domain.DailyClosure{openDay("2024-01-10", "1000")})

	cmp := CompareYears(current, prior)

	assert.True(t, cmp.DeltaCorrispettivi.Equal(dec("100")))
	require.NotNil(t, cmp.DeltaCorrispettiviPct)
	assert.True(t, cmp.DeltaCorrispettiviPct.Equal(dec("10")))
	require.NotNil(t, cmp.DeltaIncassiPct)
	assert.True(t, cmp.DeltaIncassiPct.Equal(dec("10")))
}

func TestCompareYearsPriorYearAbsent(t *testing.T) {
	current := AggregateYear(2025, []domain.DailyClosure{openDay("2025-03-01", "5000")})
	prior := AggregateYear(2024, nil)

	cmp := CompareYears(current, prior)

	// Delta equals the whole current total; the percentage is undefined and
	// must be nil, not zero ("no change" would be a different answer).
	assert.True(t, cmp.DeltaCorrispettivi.Equal(dec("5000")))
	assert.Nil(t, cmp.DeltaCorrispettiviPct)
	assert.True(t, cmp.DeltaIncassi.Equal(dec("5000")))
	assert.Nil(t, cmp.DeltaIncassiPct)
}

func TestCompareYearsNegativeDelta(t *testing.T) {
	current := AggregateYear(2025, []domain.DailyClosure{openDay("2025-01-10", "800")})
	prior := AggregateYear(2024, []domain.DailyClosure{openDay("2024-01-10", "1000")})

	cmp := CompareYears(current, prior)

	assert.True(t, cmp.DeltaCorrispettivi.Equal(dec("-200")))
	require.NotNil(t, cmp.DeltaCorrispettiviPct)
	assert.True(t, cmp.DeltaCorrispettiviPct.Equal(dec("-20")))
}

func TestCompareMonths(t *testing.T) {
	p1 := AggregateMonth(2024, 12, []domain.DailyClosure{openDay("2024-12-05", "2000")})
	p2 := AggregateMonth(2025, 12, []domain.DailyClosure{openDay("2025-12-05", "2600")})

	cmp := CompareMonths(p1, p2)

	assert.True(t, cmp.DeltaCorrispettivi.Equal(dec("600")))
	require.NotNil(t, cmp.DeltaCorrispettiviPct)
	assert.True(t, cmp.DeltaCorrispettiviPct.Equal(dec("30")))
}

func TestCompareMonthsEmptyBase(t *testing.T) {
	p1 := AggregateMonth(2024, 8, nil)
	p2 := AggregateMonth(2025, 8, []domain.DailyClosure{openDay("2025-08-05", "900")})

	cmp := CompareMonths(p1, p2)

	assert.True(t, cmp.DeltaCorrispettivi.Equal(dec("900")))
	assert.Nil(t, cmp.DeltaCorrispettiviPct)
	assert.Nil(t, cmp.DeltaIncassiPct)
}

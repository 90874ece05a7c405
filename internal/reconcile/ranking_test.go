package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tregobbi/backoffice-service/internal/domain"
)

func TestRankDaysTieBreakByEarliestDate(t *testing.T) {
	records := []domain.DailyClosure{
		openDay("2025-01-03", "500"), // A
		openDay("2025-01-01", "500"), // B
		openDay("2025-01-02", "300"), // C
	}

	ranking := RankDays(2025, records, 2)

	require.Len(t, ranking.Best, 2)
	assert.Equal(t, day("2025-01-01"), ranking.Best[0].Date)
	assert.Equal(t, day("2025-01-03"), ranking.Best[1].Date)

	require.Len(t, ranking.Worst, 2)
	assert.Equal(t, day("2025-01-02"), ranking.Worst[0].Date)
	assert.Equal(t, day("2025-01-01"), ranking.Worst[1].Date)
}

func TestRankDaysExcludesClosedDays(t *testing.T) {
	records := []domain.DailyClosure{
		openDay("2025-02-01", "700"),
		closedDay("2025-02-02"),
		openDay("2025-02-03", "100"),
	}

	ranking := RankDays(2025, records, 10)

	require.Len(t, ranking.Best, 2)
	require.Len(t, ranking.Worst, 2)
	for _, v := range append(ranking.Best, ranking.Worst...) {
		assert.False(t, v.IsClosed)
	}
	assert.Equal(t, day("2025-02-01"), ranking.Best[0].Date)
	assert.Equal(t, day("2025-02-03"), ranking.Worst[0].Date)
}

func TestRankDaysDefaultLimit(t *testing.T) {
	var records []domain.DailyClosure
	for d := 1; d <= 20; d++ {
		records = append(records, openDay(day("2025-03-01").AddDate(0, 0, d-1).Format("2006-01-02"), "100"))
	}

	ranking := RankDays(2025, records, 0)

	assert.Equal(t, DefaultRankingLimit, ranking.Limit)
	assert.Len(t, ranking.Best, DefaultRankingLimit)
	assert.Len(t, ranking.Worst, DefaultRankingLimit)
}

func TestRankDaysEmptyYear(t *testing.T) {
	ranking := RankDays(2025, nil, 5)

	assert.Empty(t, ranking.Best)
	assert.Empty(t, ranking.Worst)
}

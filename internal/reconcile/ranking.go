package reconcile

import (
	"sort"

	"github.com/tregobbi/backoffice-service/internal/domain"
)

// DefaultRankingLimit is the list size when the caller does not set one.
const DefaultRankingLimit = 10

// RankDays builds the best/worst-N lists of a year's closures by total
// receipts. Closed days are excluded. Ties rank the earlier date first, for
// both lists.
func RankDays(year int, records []domain.DailyClosure, limit int) domain.TopDaysRanking {
	if limit <= 0 {
		limit = DefaultRankingLimit
	}

	open := make([]domain.ClosureView, 0, len(records))
	for _, v := range DeriveAll(records) {
		if !v.IsClosed {
			open = append(open, v)
		}
	}

	// Sort by date first so the receipt sorts below only need stability to
	// honor the earliest-date tie-break.
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].Date.Before(open[j].Date)
	})

	best := make([]domain.ClosureView, len(open))
	copy(best, open)
	sort.SliceStable(best, func(i, j int) bool {
		return best[i].TotalReceipts.GreaterThan(best[j].TotalReceipts)
	})

	worst := make([]domain.ClosureView, len(open))
	copy(worst, open)
	sort.SliceStable(worst, func(i, j int) bool {
		return worst[i].TotalReceipts.LessThan(worst[j].TotalReceipts)
	})

	return domain.TopDaysRanking{
		Year:  year,
		Limit: limit,
		Best:  truncate(best, limit),
		Worst: truncate(worst, limit),
	}
}

func truncate(views []domain.ClosureView, limit int) []domain.ClosureView {
	if len(views) > limit {
		return views[:limit]
	}
	return views
}

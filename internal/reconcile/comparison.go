package reconcile

import (
	"github.com/shopspring/decimal"
	"github.com/tregobbi/backoffice-service/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// AggregateYear rolls up one calendar year of closure records.
func AggregateYear(year int, records []domain.DailyClosure) domain.AnnualStatistics {
	stats := domain.AnnualStatistics{
		Year:               year,
		TotalCorrispettivi: decimal.Zero,
		TotalIncassi:       decimal.Zero,
		RecordedDaysCount:  len(records),
	}

	for _, c := range records {
		stats.TotalCorrispettivi = stats.TotalCorrispettivi.Add(c.Corrispettivi)
		stats.TotalIncassi = stats.TotalIncassi.Add(TotalReceipts(c))
		if c.IsClosed {
			stats.ClosedDaysCount++
		} else {
			stats.OpenDaysCount++
		}
	}
	return stats
}

// CompareYears computes the year-over-year delta of a year against the prior
// one. The prior year may be entirely absent; its totals are then zero and
// the percentage deltas are nil. Nil means "no basis for comparison" and is
// distinct from a zero delta, which means "no change".
func CompareYears(current, prior domain.AnnualStatistics) domain.YearComparison {
	deltaCorr := current.TotalCorrispettivi.Sub(prior.TotalCorrispettivi)
	deltaInc := current.TotalIncassi.Sub(prior.TotalIncassi)

	return domain.YearComparison{
		Current:               current,
		Prior:                 prior,
		DeltaCorrispettivi:    deltaCorr,
		DeltaCorrispettiviPct: pctDelta(deltaCorr, prior.TotalCorrispettivi),
		DeltaIncassi:          deltaInc,
		DeltaIncassiPct:       pctDelta(deltaInc, prior.TotalIncassi),
	}
}

// CompareMonths computes the same delta pair between two arbitrary months,
// possibly of different years.
func CompareMonths(period1, period2 domain.MonthlyStatistics) domain.MonthComparison {
	deltaCorr := period2.TotalCorrispettivi.Sub(period1.TotalCorrispettivi)
	deltaInc := period2.TotalIncassi.Sub(period1.TotalIncassi)

	return domain.MonthComparison{
		Period1:               period1,
		Period2:               period2,
		DeltaCorrispettivi:    deltaCorr,
		DeltaCorrispettiviPct: pctDelta(deltaCorr, period1.TotalCorrispettivi),
		DeltaIncassi:          deltaInc,
		DeltaIncassiPct:       pctDelta(deltaInc, period1.TotalIncassi),
	}
}

func pctDelta(delta, base decimal.Decimal) *decimal.Decimal {
	if base.Sign() == 0 {
		return nil
	}
	pct := delta.Div(base).Mul(hundred)
	return &pct
}

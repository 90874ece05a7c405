package reconcile

import (
	"github.com/shopspring/decimal"
	"github.com/tregobbi/backoffice-service/internal/domain"
)

// Performance class thresholds on the receipts/baseline ratio.
var (
	strongRatio = decimal.RequireFromString("1.15")
	weakRatio   = decimal.RequireFromString("0.90")
)

// AggregateMonth rolls up one calendar month of closure records.
//
// The input must contain only records that actually exist for the month.
// Calendar filler for display is synthesized downstream and must never be
// passed in here, or it would distort averages and counts.
//
// Totals sum over all records; the averages divide only over open days with
// positive receipts, and OpenDaysCount tracks that same subset so the two
// can never disagree.
func AggregateMonth(year, month int, records []domain.DailyClosure) domain.MonthlyStatistics {
	stats := domain.MonthlyStatistics{
		Year:               year,
		Month:              month,
		TotalCorrispettivi: decimal.Zero,
		TotalIncassi:       decimal.Zero,
		Alerts:             []domain.ClosureAlert{},
		RecordedDaysCount:  len(records),
		PaymentTotals: domain.PaymentBreakdown{
			CashFinal: decimal.Zero,
			POS:       decimal.Zero,
			Sella:     decimal.Zero,
			StripePay: decimal.Zero,
			Bonifici:  decimal.Zero,
			Mance:     decimal.Zero,
		},
	}

	sumCorr := decimal.Zero
	sumIncassi := decimal.Zero

	for _, c := range records {
		view := Derive(c)

		stats.TotalCorrispettivi = stats.TotalCorrispettivi.Add(c.Corrispettivi)
		stats.TotalIncassi = stats.TotalIncassi.Add(view.TotalReceipts)

		stats.PaymentTotals.CashFinal = stats.PaymentTotals.CashFinal.Add(c.CashFinal)
		stats.PaymentTotals.POS = stats.PaymentTotals.POS.Add(c.POS)
		stats.PaymentTotals.Sella = stats.PaymentTotals.Sella.Add(c.Sella)
		stats.PaymentTotals.StripePay = stats.PaymentTotals.StripePay.Add(c.StripePay)
		stats.PaymentTotals.Bonifici = stats.PaymentTotals.Bonifici.Add(c.Bonifici)
		stats.PaymentTotals.Mance = stats.PaymentTotals.Mance.Add(c.Mance)

		if c.IsClosed {
			stats.ClosedDaysCount++
		} else if view.TotalReceipts.Sign() > 0 {
			stats.OpenDaysCount++
			sumCorr = sumCorr.Add(c.Corrispettivi)
			sumIncassi = sumIncassi.Add(view.TotalReceipts)
		}

		if view.CashDiff.Abs().GreaterThanOrEqual(AlertThreshold) {
			stats.Alerts = append(stats.Alerts, domain.ClosureAlert{
				Date:     c.Date,
				CashDiff: view.CashDiff,
				Status:   view.CashStatus,
			})
		}
	}

	if stats.OpenDaysCount > 0 {
		n := decimal.NewFromInt(int64(stats.OpenDaysCount))
		avgCorr := sumCorr.Div(n)
		avgInc := sumIncassi.Div(n)
		stats.AverageCorrispettivi = &avgCorr
		stats.AverageIncassi = &avgInc
	}

	return stats
}

// ComputeWeekdayBaselines averages receipts per weekday over the open days
// of a month. Mondays are compared to Mondays: a policy of always closing on
// a given weekday must not read as underperformance on the others. A weekday
// with no open day keeps a nil baseline.
func ComputeWeekdayBaselines(views []domain.ClosureView) domain.WeekdayBaselines {
	var sums [7]decimal.Decimal
	var counts [7]int

	for _, v := range views {
		if v.IsClosed {
			continue
		}
		wd := int(v.Weekday)
		sums[wd] = sums[wd].Add(v.TotalReceipts)
		counts[wd]++
	}

	var baselines domain.WeekdayBaselines
	for wd := range baselines {
		if counts[wd] == 0 {
			continue
		}
		mean := sums[wd].Div(decimal.NewFromInt(int64(counts[wd])))
		baselines[wd] = &mean
	}
	return baselines
}

// ClassifyDay rates one day against its weekday baseline. Closed days and
// days whose weekday has no baseline stay unclassified; NORMAL is never a
// default.
func ClassifyDay(view domain.ClosureView, baselines domain.WeekdayBaselines) *domain.DayPerformanceClass {
	if view.IsClosed {
		return nil
	}

	baseline := baselines[int(view.Weekday)]
	if baseline == nil || baseline.Sign() == 0 {
		return nil
	}

	ratio := view.TotalReceipts.Div(*baseline)

	var class domain.DayPerformanceClass
	switch {
	case ratio.GreaterThanOrEqual(strongRatio):
		class = domain.PerformanceStrong
	case ratio.GreaterThanOrEqual(weakRatio):
		class = domain.PerformanceNormal
	default:
		class = domain.PerformanceWeak
	}
	return &class
}

// ClassifyAll derives views for a month's records and attaches weekday
// baselines and per-day performance classes in one pass.
func ClassifyAll(records []domain.DailyClosure) ([]domain.ClosureView, domain.WeekdayBaselines) {
	views := DeriveAll(records)
	baselines := ComputeWeekdayBaselines(views)

	for i := range views {
		views[i].Performance = ClassifyDay(views[i], baselines)
	}
	return views, baselines
}

package reconcile

import (
	"github.com/shopspring/decimal"
	"github.com/tregobbi/backoffice-service/internal/domain"
)

// Reconciliation constants. The tolerance band and alert threshold are fixed
// absolute amounts in currency units.
var (
	// CashTolerance is the band inside which a cash difference counts as OK.
	CashTolerance = decimal.RequireFromString("0.5")

	// AlertThreshold flags a day for review when |cashDiff| reaches it.
	AlertThreshold = decimal.NewFromInt(20)
)

// TotalReceipts sums the six payment fields of a closure. The sum is
// unconditional: absent fields were coerced to zero at the boundary.
func TotalReceipts(c domain.DailyClosure) decimal.Decimal {
	return c.CashFinal.
		Add(c.POS).
		Add(c.Sella).
		Add(c.StripePay).
		Add(c.Bonifici).
		Add(c.Mance)
}

// CashDiff is the discrepancy between reconciled payment totals and the
// declared fiscal revenue for the day.
func CashDiff(c domain.DailyClosure) decimal.Decimal {
	return TotalReceipts(c).Sub(c.Corrispettivi)
}

// ClassifyCash maps a cash difference to its status. Exactly one status
// applies: OK inside the tolerance band, OVER above it, SHORT below it.
func ClassifyCash(diff decimal.Decimal) domain.CashStatus {
	if diff.Abs().LessThan(CashTolerance) {
		return domain.CashStatusOK
	}
	if diff.Sign() > 0 {
		return domain.CashStatusOver
	}
	return domain.CashStatusShort
}

// Derive builds the fully derived view of one closure record.
func Derive(c domain.DailyClosure) domain.ClosureView {
	total := TotalReceipts(c)
	diff := total.Sub(c.Corrispettivi)

	return domain.ClosureView{
		DailyClosure:  c,
		Weekday:       c.Date.Weekday(),
		TotalReceipts: total,
		CashDiff:      diff,
		CashStatus:    ClassifyCash(diff),
	}
}

// DeriveAll derives views for a set of records, preserving order.
func DeriveAll(records []domain.DailyClosure) []domain.ClosureView {
	views := make([]domain.ClosureView, 0, len(records))
	for _, c := range records {
		views = append(views, Derive(c))
	}
	return views
}

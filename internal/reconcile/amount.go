// Package reconcile implements the cash-closure reconciliation rules:
// per-day derived totals, monthly and annual rollups, weekday-relative
// performance classification and top/bottom-day ranking. Every function is
// pure; callers pass complete datasets and get complete results back.
package reconcile

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a user-entered monetary value to a decimal. Both "."
// and "," are accepted as the decimal separator. Blank or unparseable input
// coerces to zero and never errors: the closure entry form relies on blank
// fields contributing nothing to its live total.
func ParseAmount(value string) decimal.Decimal {
	s := strings.TrimSpace(value)
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

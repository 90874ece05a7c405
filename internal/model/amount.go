package model

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tregobbi/backoffice-service/internal/reconcile"
)

// FlexAmount is a monetary JSON field that accepts a number, a string with
// either "." or "," as decimal separator, or null. Anything unparseable
// coerces to zero instead of failing the request: the entry form sends
// blank fields for payment methods not used that day.
type FlexAmount struct {
	decimal.Decimal
}

// UnmarshalJSON implements json.Unmarshaler
func (a *FlexAmount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		a.Decimal = decimal.Zero
		return nil
	}

	if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) && len(s) >= 2 {
		s = s[1 : len(s)-1]
	}

	a.Decimal = reconcile.ParseAmount(s)
	return nil
}

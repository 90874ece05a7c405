package reconcile

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tregobbi/backoffice-service/internal/domain"
)

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

func TestParseAmount(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		expected string
	}{
		{"dot separator", "7.50", "7.5"},
		{"comma separator", "7,50", "7.5"},
		{"integer", "120", "120"},
		{"surrounding spaces", "  12.00  ", "12"},
		{"negative", "-3,25", "-3.25"},
		{"empty string", "", "0"},
		{"whitespace only", "   ", "0"},
		{"garbage", "abc", "0"},
		{"thousands separator becomes unparseable", "1.234,50", "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseAmount(tc.in)
			assert.True(t, got.Equal(dec(tc.expected)),
				"ParseAmount(%q) = %s, expected %s", tc.in, got, tc.expected)
		})
	}
}

func TestParseAmountSeparatorEquivalence(t *testing.T) {
	assert.True(t, ParseAmount("7,50").Equal(ParseAmount("7.50")))
	assert.True(t, ParseAmount("").Equal(ParseAmount("abc")))
	assert.True(t, ParseAmount("abc").Equal(decimal.Zero))
}

func TestTotalReceiptsOrderInvariant(t *testing.T) {
	amounts := []decimal.Decimal{
		dec("110.10"), dec("250.55"), dec("42.42"),
		dec("0.01"), dec("999.99"), dec("13.13"),
	}

	c := domain.DailyClosure{
		Date:      day("2025-03-10"),
		CashFinal: amounts[0],
		POS:       amounts[1],
		Sella:     amounts[2],
		StripePay: amounts[3],
		Bonifici:  amounts[4],
		Mance:     amounts[5],
	}

	expected := TotalReceipts(c)

	// Sum in a handful of different orders; decimals must agree exactly.
	orders := [][]int{
		{5, 4, 3, 2, 1, 0},
		{2, 0, 4, 1, 5, 3},
		{3, 5, 1, 4, 0, 2},
	}
	for _, order := range orders {
		sum := decimal.Zero
		for _, idx := range order {
			sum = sum.Add(amounts[idx])
		}
		assert.True(t, sum.Equal(expected), "order %v gave %s, expected %s", order, sum, expected)
	}
}

func TestClassifyCash(t *testing.T) {
	cases := []struct {
		diff     string
		expected domain.CashStatus
	}{
		{"0", domain.CashStatusOK},
		{"0.49", domain.CashStatusOK},
		{"-0.49", domain.CashStatusOK},
		{"0.5", domain.CashStatusOver},
		{"-0.5", domain.CashStatusShort},
		{"12.30", domain.CashStatusOver},
		{"-7.80", domain.CashStatusShort},
	}

	for _, tc := range cases {
		t.Run(tc.diff, func(t *testing.T) {
			assert.Equal(t, tc.expected, ClassifyCash(dec(tc.diff)))
		})
	}
}

func TestClassifyCashMatchesToleranceBand(t *testing.T) {
	// OK ⇔ |diff| < 0.5, and exactly one status holds per diff.
	for _, s := range []string{"-20", "-0.51", "-0.5", "-0.49", "0", "0.49", "0.5", "0.51", "20"} {
		diff := dec(s)
		status := ClassifyCash(diff)
		if diff.Abs().LessThan(CashTolerance) {
			assert.Equal(t, domain.CashStatusOK, status, "diff %s", s)
		} else if diff.Sign() > 0 {
			assert.Equal(t, domain.CashStatusOver, status, "diff %s", s)
		} else {
			assert.Equal(t, domain.CashStatusShort, status, "diff %s", s)
		}
	}
}

func TestDerive(t *testing.T) {
	c := domain.DailyClosure{
		Date:          day("2025-06-14"), // a Saturday
		Corrispettivi: dec("1250.00"),
		CashFinal:     dec("300.00"),
		POS:           dec("800.00"),
		Sella:         dec("100.00"),
		StripePay:     dec("30.00"),
		Bonifici:      dec("0"),
		Mance:         dec("25.00"),
	}

	view := Derive(c)

	require.True(t, view.TotalReceipts.Equal(dec("1255.00")))
	assert.True(t, view.CashDiff.Equal(dec("5.00")))
	assert.Equal(t, domain.CashStatusOver, view.CashStatus)
	assert.Equal(t, time.Saturday, view.Weekday)
	assert.Nil(t, view.Performance)
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashStatus classifies the outcome of a day's cash reconciliation.
type CashStatus string

const (
	CashStatusOK    CashStatus = "OK"
	CashStatusOver  CashStatus = "OVER"
	CashStatusShort CashStatus = "SHORT"
)

// DayPerformanceClass rates a day's receipts against the baseline for its
// own weekday. A day with no baseline is left unclassified.
type DayPerformanceClass string

const (
	PerformanceStrong DayPerformanceClass = "STRONG"
	PerformanceNormal DayPerformanceClass = "NORMAL"
	PerformanceWeak   DayPerformanceClass = "WEAK"
)

// DailyClosure is the stored cash-closure record for one calendar date.
// At most one record exists per date; upserts replace prior values.
type DailyClosure struct {
	Date          time.Time       `json:"date"`
	Corrispettivi decimal.Decimal `json:"corrispettivi"`
	IVA10         decimal.Decimal `json:"iva10"`
	IVA22         decimal.Decimal `json:"iva22"`
	Fatture       decimal.Decimal `json:"fatture"`

	// Payment breakdown. Absent fields are stored as zero.
	CashFinal decimal.Decimal `json:"cashFinal"`
	POS       decimal.Decimal `json:"pos"`
	Sella     decimal.Decimal `json:"sella"`
	StripePay decimal.Decimal `json:"stripePay"`
	Bonifici  decimal.Decimal `json:"bonifici"`
	Mance     decimal.Decimal `json:"mance"`

	Note     string `json:"note,omitempty"`
	IsClosed bool   `json:"isClosed"`

	CreatedBy string    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// ClosureView is a DailyClosure with its derived reconciliation fields.
type ClosureView struct {
	DailyClosure

	Weekday       time.Weekday         `json:"weekday"`
	TotalReceipts decimal.Decimal      `json:"totalReceipts"`
	CashDiff      decimal.Decimal      `json:"cashDiff"`
	CashStatus    CashStatus           `json:"cashStatus"`
	Performance   *DayPerformanceClass `json:"performance,omitempty"`
}

// ClosureAlert flags a day whose cash difference exceeds the alert threshold.
type ClosureAlert struct {
	Date     time.Time       `json:"date"`
	CashDiff decimal.Decimal `json:"cashDiff"`
	Status   CashStatus      `json:"status"`
}

// PaymentBreakdown holds per-method sums across a period.
type PaymentBreakdown struct {
	CashFinal decimal.Decimal `json:"cashFinal"`
	POS       decimal.Decimal `json:"pos"`
	Sella     decimal.Decimal `json:"sella"`
	StripePay decimal.Decimal `json:"stripePay"`
	Bonifici  decimal.Decimal `json:"bonifici"`
	Mance     decimal.Decimal `json:"mance"`
}

// MonthlyStatistics is the rollup of one calendar month of closures.
//
// AverageCorrispettivi is nil when no day qualifies: the mean is taken only
// over open days with positive receipts, so recorded-but-inactive days do
// not drag it toward zero.
type MonthlyStatistics struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	TotalCorrispettivi   decimal.Decimal  `json:"totalCorrispettivi"`
	TotalIncassi         decimal.Decimal  `json:"totalIncassi"`
	AverageCorrispettivi *decimal.Decimal `json:"averageCorrispettivi"`
	AverageIncassi       *decimal.Decimal `json:"averageIncassi"`
	OpenDaysCount        int              `json:"openDaysCount"`
	ClosedDaysCount      int              `json:"closedDaysCount"`
	RecordedDaysCount    int              `json:"recordedDaysCount"`

	PaymentTotals PaymentBreakdown `json:"paymentTotals"`
	Alerts        []ClosureAlert   `json:"alerts"`
}

// WeekdayBaselines holds, per weekday (Sunday = 0), the mean receipts of the
// month's open days falling on that weekday. A weekday with no qualifying
// day has a nil baseline.
type WeekdayBaselines [7]*decimal.Decimal

// AnnualStatistics is the rollup of one calendar year of closures.
type AnnualStatistics struct {
	Year int `json:"year"`

	TotalCorrispettivi decimal.Decimal `json:"totalCorrispettivi"`
	TotalIncassi       decimal.Decimal `json:"totalIncassi"`
	RecordedDaysCount  int             `json:"recordedDaysCount"`
	OpenDaysCount      int             `json:"openDaysCount"`
	ClosedDaysCount    int             `json:"closedDaysCount"`
}

// YearComparison is the year-over-year delta for a year against the prior
// one. Percentage deltas are nil, not zero, when the prior total is zero.
type YearComparison struct {
	Current AnnualStatistics `json:"current"`
	Prior   AnnualStatistics `json:"prior"`

	DeltaCorrispettivi    decimal.Decimal  `json:"deltaCorrispettivi"`
	DeltaCorrispettiviPct *decimal.Decimal `json:"deltaCorrispettiviPct"`
	DeltaIncassi          decimal.Decimal  `json:"deltaIncassi"`
	DeltaIncassiPct       *decimal.Decimal `json:"deltaIncassiPct"`
}

// MonthComparison is the same delta pair between two arbitrary months.
type MonthComparison struct {
	Period1 MonthlyStatistics `json:"period1"`
	Period2 MonthlyStatistics `json:"period2"`

	DeltaCorrispettivi    decimal.Decimal  `json:"deltaCorrispettivi"`
	DeltaCorrispettiviPct *decimal.Decimal `json:"deltaCorrispettiviPct"`
	DeltaIncassi          decimal.Decimal  `json:"deltaIncassi"`
	DeltaIncassiPct       *decimal.Decimal `json:"deltaIncassiPct"`
}

// TopDaysRanking holds the best and worst open days of a year by receipts.
type TopDaysRanking struct {
	Year  int           `json:"year"`
	Limit int           `json:"limit"`
	Best  []ClosureView `json:"best"`
	Worst []ClosureView `json:"worst"`
}

// MonthlyReportDay is one calendar day of a monthly report. Synthesized
// marks filler for days with no stored record; filler exists only for the
// calendar display and never enters totals, averages or alerts.
type MonthlyReportDay struct {
	ClosureView
	Synthesized bool `json:"synthesized"`
}

// MonthlyReport bundles a month's statistics with its full calendar of days.
type MonthlyReport struct {
	Statistics MonthlyStatistics  `json:"statistics"`
	Baselines  WeekdayBaselines   `json:"weekdayBaselines"`
	Days       []MonthlyReportDay `json:"days"`
}

// AnnualReport bundles a year's statistics with its per-month breakdown.
type AnnualReport struct {
	Statistics AnnualStatistics    `json:"statistics"`
	Months     []MonthlyStatistics `json:"months"`
}

// DailySeriesPoint is one chart point of the per-day time series.
type DailySeriesPoint struct {
	Date          time.Time       `json:"date"`
	Weekday       time.Weekday    `json:"weekday"`
	Corrispettivi decimal.Decimal `json:"corrispettivi"`
	TotalReceipts decimal.Decimal `json:"totalReceipts"`
	IsClosed      bool            `json:"isClosed"`
}

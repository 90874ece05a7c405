package model

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tregobbi/backoffice-service/internal/domain"
)

// UpsertClosureRequest is the payload for creating or replacing one day's
// cash closure. All monetary fields tolerate blank/absent values.
type UpsertClosureRequest struct {
	Date          string     `json:"date" binding:"required,closuredate"`
	Corrispettivi FlexAmount `json:"corrispettivi"`
	IVA10         FlexAmount `json:"iva10"`
	IVA22         FlexAmount `json:"iva22"`
	Fatture       FlexAmount `json:"fatture"`
	CashFinal     FlexAmount `json:"cashFinal"`
	POS           FlexAmount `json:"pos"`
	Sella         FlexAmount `json:"sella"`
	StripePay     FlexAmount `json:"stripePay"`
	Bonifici      FlexAmount `json:"bonifici"`
	Mance         FlexAmount `json:"mance"`
	Note          string     `json:"note"`
	IsClosed      bool       `json:"isClosed"`
}

// ToDomain converts the request to a domain record. The date has already
// passed the closuredate binding rule.
func (r *UpsertClosureRequest) ToDomain() (*domain.DailyClosure, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, err
	}

	return &domain.DailyClosure{
		Date:          date,
		Corrispettivi: r.Corrispettivi.Decimal,
		IVA10:         r.IVA10.Decimal,
		IVA22:         r.IVA22.Decimal,
		Fatture:       r.Fatture.Decimal,
		CashFinal:     r.CashFinal.Decimal,
		POS:           r.POS.Decimal,
		Sella:         r.Sella.Decimal,
		StripePay:     r.StripePay.Decimal,
		Bonifici:      r.Bonifici.Decimal,
		Mance:         r.Mance.Decimal,
		Note:          r.Note,
		IsClosed:      r.IsClosed,
	}, nil
}

// ClosureResponse represents one day's fully derived closure
type ClosureResponse struct {
	Date          string  `json:"date"`
	Weekday       string  `json:"weekday"`
	Corrispettivi string  `json:"corrispettivi"`
	IVA10         string  `json:"iva10"`
	IVA22         string  `json:"iva22"`
	Fatture       string  `json:"fatture"`
	CashFinal     string  `json:"cashFinal"`
	POS           string  `json:"pos"`
	Sella         string  `json:"sella"`
	StripePay     string  `json:"stripePay"`
	Bonifici      string  `json:"bonifici"`
	Mance         string  `json:"mance"`
	TotalReceipts string  `json:"totalReceipts"`
	CashDiff      string  `json:"cashDiff"`
	CashStatus    string  `json:"cashStatus"`
	Performance   *string `json:"performance,omitempty"`
	Note          string  `json:"note,omitempty"`
	IsClosed      bool    `json:"isClosed"`
	Synthesized   bool    `json:"synthesized,omitempty"`
}

// NewClosureResponse builds a response from a derived closure view
func NewClosureResponse(view domain.ClosureView) ClosureResponse {
	resp := ClosureResponse{
		Date:          view.Date.Format("2006-01-02"),
		Weekday:       view.Weekday.String(),
		Corrispettivi: money(view.Corrispettivi),
		IVA10:         money(view.IVA10),
		IVA22:         money(view.IVA22),
		Fatture:       money(view.Fatture),
		CashFinal:     money(view.CashFinal),
		POS:           money(view.POS),
		Sella:         money(view.Sella),
		StripePay:     money(view.StripePay),
		Bonifici:      money(view.Bonifici),
		Mance:         money(view.Mance),
		TotalReceipts: money(view.TotalReceipts),
		CashDiff:      money(view.CashDiff),
		CashStatus:    string(view.CashStatus),
		Note:          view.Note,
		IsClosed:      view.IsClosed,
	}

	if view.Performance != nil {
		p := string(*view.Performance)
		resp.Performance = &p
	}

	return resp
}

// ClosureAlertResponse flags a day whose cash difference crossed the alert threshold
type ClosureAlertResponse struct {
	Date     string `json:"date"`
	CashDiff string `json:"cashDiff"`
	Status   string `json:"status"`
}

// PaymentBreakdownResponse represents per-method sums across a period
type PaymentBreakdownResponse struct {
	CashFinal string `json:"cashFinal"`
	POS       string `json:"pos"`
	Sella     string `json:"sella"`
	StripePay string `json:"stripePay"`
	Bonifici  string `json:"bonifici"`
	Mance     string `json:"mance"`
}

// MonthlyStatisticsResponse represents one month's rollup
type MonthlyStatisticsResponse struct {
	Year                 int                      `json:"year"`
	Month                int                      `json:"month"`
	TotalCorrispettivi   string                   `json:"totalCorrispettivi"`
	TotalIncassi         string                   `json:"totalIncassi"`
	AverageCorrispettivi *string                  `json:"averageCorrispettivi"`
	AverageIncassi       *string                  `json:"averageIncassi"`
	OpenDaysCount        int                      `json:"openDaysCount"`
	ClosedDaysCount      int                      `json:"closedDaysCount"`
	RecordedDaysCount    int                      `json:"recordedDaysCount"`
	PaymentTotals        PaymentBreakdownResponse `json:"paymentTotals"`
	Alerts               []ClosureAlertResponse   `json:"alerts"`
}

// NewMonthlyStatisticsResponse builds a response from a monthly rollup
func NewMonthlyStatisticsResponse(stats domain.MonthlyStatistics) MonthlyStatisticsResponse {
	alerts := make([]ClosureAlertResponse, 0, len(stats.Alerts))
	for _, a := range stats.Alerts {
		alerts = append(alerts, ClosureAlertResponse{
			Date:     a.Date.Format("2006-01-02"),
			CashDiff: money(a.CashDiff),
			Status:   string(a.Status),
		})
	}

	return MonthlyStatisticsResponse{
		Year:                 stats.Year,
		Month:                stats.Month,
		TotalCorrispettivi:   money(stats.TotalCorrispettivi),
		TotalIncassi:         money(stats.TotalIncassi),
		AverageCorrispettivi: moneyPtr(stats.AverageCorrispettivi),
		AverageIncassi:       moneyPtr(stats.AverageIncassi),
		OpenDaysCount:        stats.OpenDaysCount,
		ClosedDaysCount:      stats.ClosedDaysCount,
		RecordedDaysCount:    stats.RecordedDaysCount,
		PaymentTotals: PaymentBreakdownResponse{
			CashFinal: money(stats.PaymentTotals.CashFinal),
			POS:       money(stats.PaymentTotals.POS),
			Sella:     money(stats.PaymentTotals.Sella),
			StripePay: money(stats.PaymentTotals.StripePay),
			Bonifici:  money(stats.PaymentTotals.Bonifici),
			Mance:     money(stats.PaymentTotals.Mance),
		},
		Alerts: alerts,
	}
}

// MonthlyReportResponse bundles a month's statistics with its calendar
type MonthlyReportResponse struct {
	Statistics       MonthlyStatisticsResponse `json:"statistics"`
	WeekdayBaselines map[string]*string        `json:"weekdayBaselines"`
	Days             []ClosureResponse         `json:"days"`
}

// NewMonthlyReportResponse builds a response from a monthly report
func NewMonthlyReportResponse(report domain.MonthlyReport) MonthlyReportResponse {
	days := make([]ClosureResponse, 0, len(report.Days))
	for _, d := range report.Days {
		resp := NewClosureResponse(d.ClosureView)
		resp.Synthesized = d.Synthesized
		days = append(days, resp)
	}

	baselines := make(map[string]*string, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		baselines[wd.String()] = moneyPtr(report.Baselines[wd])
	}

	return MonthlyReportResponse{
		Statistics:       NewMonthlyStatisticsResponse(report.Statistics),
		WeekdayBaselines: baselines,
		Days:             days,
	}
}

// AnnualStatisticsResponse represents one year's rollup
type AnnualStatisticsResponse struct {
	Year               int    `json:"year"`
	TotalCorrispettivi string `json:"totalCorrispettivi"`
	TotalIncassi       string `json:"totalIncassi"`
	RecordedDaysCount  int    `json:"recordedDaysCount"`
	OpenDaysCount      int    `json:"openDaysCount"`
	ClosedDaysCount    int    `json:"closedDaysCount"`
}

// NewAnnualStatisticsResponse builds a response from an annual rollup
func NewAnnualStatisticsResponse(stats domain.AnnualStatistics) AnnualStatisticsResponse {
	return AnnualStatisticsResponse{
		Year:               stats.Year,
		TotalCorrispettivi: money(stats.TotalCorrispettivi),
		TotalIncassi:       money(stats.TotalIncassi),
		RecordedDaysCount:  stats.RecordedDaysCount,
		OpenDaysCount:      stats.OpenDaysCount,
		ClosedDaysCount:    stats.ClosedDaysCount,
	}
}

// AnnualReportResponse bundles a year's statistics with per-month rollups
type AnnualReportResponse struct {
	Statistics AnnualStatisticsResponse    `json:"statistics"`
	Months     []MonthlyStatisticsResponse `json:"months"`
}

// NewAnnualReportResponse builds a response from an annual report
func NewAnnualReportResponse(report domain.AnnualReport) AnnualReportResponse {
	months := make([]MonthlyStatisticsResponse, 0, len(report.Months))
	for _, m := range report.Months {
		months = append(months, NewMonthlyStatisticsResponse(m))
	}

	return AnnualReportResponse{
		Statistics: NewAnnualStatisticsResponse(report.Statistics),
		Months:     months,
	}
}

// YearComparisonResponse represents the year-over-year delta
type YearComparisonResponse struct {
	Current AnnualStatisticsResponse `json:"current"`
	Prior   AnnualStatisticsResponse `json:"prior"`

	DeltaCorrispettivi    string  `json:"deltaCorrispettivi"`
	DeltaCorrispettiviPct *string `json:"deltaCorrispettiviPct"`
	DeltaIncassi          string  `json:"deltaIncassi"`
	DeltaIncassiPct       *string `json:"deltaIncassiPct"`
}

// NewYearComparisonResponse builds a response from a year comparison
func NewYearComparisonResponse(cmp domain.YearComparison) YearComparisonResponse {
	return YearComparisonResponse{
		Current:               NewAnnualStatisticsResponse(cmp.Current),
		Prior:                 NewAnnualStatisticsResponse(cmp.Prior),
		DeltaCorrispettivi:    money(cmp.DeltaCorrispettivi),
		DeltaCorrispettiviPct: pctPtr(cmp.DeltaCorrispettiviPct),
		DeltaIncassi:          money(cmp.DeltaIncassi),
		DeltaIncassiPct:       pctPtr(cmp.DeltaIncassiPct),
	}
}

// MonthComparisonResponse represents the delta between two months
type MonthComparisonResponse struct {
	Period1 MonthlyStatisticsResponse `json:"period1"`
	Period2 MonthlyStatisticsResponse `json:"period2"`

	DeltaCorrispettivi    string  `json:"deltaCorrispettivi"`
	DeltaCorrispettiviPct *string `json:"deltaCorrispettiviPct"`
	DeltaIncassi          string  `json:"deltaIncassi"`
	DeltaIncassiPct       *string `json:"deltaIncassiPct"`
}

// NewMonthComparisonResponse builds a response from a month comparison
func NewMonthComparisonResponse(cmp domain.MonthComparison) MonthComparisonResponse {
	return MonthComparisonResponse{
		Period1:               NewMonthlyStatisticsResponse(cmp.Period1),
		Period2:               NewMonthlyStatisticsResponse(cmp.Period2),
		DeltaCorrispettivi:    money(cmp.DeltaCorrispettivi),
		DeltaCorrispettiviPct: pctPtr(cmp.DeltaCorrispettiviPct),
		DeltaIncassi:          money(cmp.DeltaIncassi),
		DeltaIncassiPct:       pctPtr(cmp.DeltaIncassiPct),
	}
}

// TopDaysResponse represents the best/worst days ranking for a year
type TopDaysResponse struct {
	Year  int               `json:"year"`
	Limit int               `json:"limit"`
	Best  []ClosureResponse `json:"best"`
	Worst []ClosureResponse `json:"worst"`
}

// NewTopDaysResponse builds a response from a ranking
func NewTopDaysResponse(ranking domain.TopDaysRanking) TopDaysResponse {
	toResponses := func(views []domain.ClosureView) []ClosureResponse {
		out := make([]ClosureResponse, 0, len(views))
		for _, v := range views {
			out = append(out, NewClosureResponse(v))
		}
		return out
	}

	return TopDaysResponse{
		Year:  ranking.Year,
		Limit: ranking.Limit,
		Best:  toResponses(ranking.Best),
		Worst: toResponses(ranking.Worst),
	}
}

// DailySeriesPointResponse is one chart point of the per-day series
type DailySeriesPointResponse struct {
	Date          string `json:"date"`
	Weekday       string `json:"weekday"`
	Corrispettivi string `json:"corrispettivi"`
	TotalReceipts string `json:"totalReceipts"`
	IsClosed      bool   `json:"isClosed"`
}

// NewDailySeriesResponse builds the chart series response
func NewDailySeriesResponse(points []domain.DailySeriesPoint) []DailySeriesPointResponse {
	out := make([]DailySeriesPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, DailySeriesPointResponse{
			Date:          p.Date.Format("2006-01-02"),
			Weekday:       p.Weekday.String(),
			Corrispettivi: money(p.Corrispettivi),
			TotalReceipts: money(p.TotalReceipts),
			IsClosed:      p.IsClosed,
		})
	}
	return out
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func moneyPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}

// pctPtr keeps one decimal of precision, matching the dashboard display.
func pctPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(1)
	return &s
}

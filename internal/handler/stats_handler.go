package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/tregobbi/backoffice-service/internal/model"
	"github.com/tregobbi/backoffice-service/internal/service"
)

// StatsHandler handles period statistics and comparison HTTP requests
type StatsHandler struct {
	closureService service.ClosureService
	logger         *logrus.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(closureService service.ClosureService, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		closureService: closureService,
		logger:         logger,
	}
}

// GetAnnualReport returns a year's rollup with its per-month breakdown
// @Summary Get annual statistics
// @Description Get a year's totals and day counts with a per-month breakdown
// @Tags stats
// @Produce json
// @Param year path int true "Year"
// @Success 200 {object} model.AnnualReportResponse "Annual report"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /v1/stats/annual/{year} [get]
func (h *StatsHandler) GetAnnualReport(c *gin.Context) {
	year, err := h.yearParam(c)
	if err != nil {
		return
	}

	report, err := h.closureService.GetAnnualReport(c.Request.Context(), year)
	if err != nil {
		logError(h.logger, c, "annual_report_failed", err, logrus.Fields{
			"year": year,
		})
		respondInternalServerError(c, "Failed to build annual report")
		return
	}

	respondOK(c, model.NewAnnualReportResponse(*report))
}

// GetYearComparison compares a year against the previous one
// @Summary Compare a year with the prior year
// @Description Get the absolute and percentage deltas between a year and the year before it
// @Tags stats
// @Produce json
// @Param year path int true "Year"
// @Success 200 {object} model.YearComparisonResponse "Year comparison"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /v1/stats/compare/{year} [get]
func (h *StatsHandler) GetYearComparison(c *gin.Context) {
	year, err := h.yearParam(c)
	if err != nil {
		return
	}

	cmp, err := h.closureService.GetYearComparison(c.Request.Context(), year)
	if err != nil {
		logError(h.logger, c, "year_comparison_failed", err, logrus.Fields{
			"year": year,
		})
		respondInternalServerError(c, "Failed to build year comparison")
		return
	}

	respondOK(c, model.NewYearComparisonResponse(*cmp))
}

// GetMonthComparison compares two arbitrary months
// @Summary Compare two months
// @Description Get the absolute and percentage deltas between two months
// @Tags stats
// @Produce json
// @Param year1 query int true "First year"
// @Param month1 query int true "First month (1-12)"
// @Param year2 query int true "Second year"
// @Param month2 query int true "Second month (1-12)"
// @Success 200 {object} model.MonthComparisonResponse "Month comparison"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /v1/stats/months/compare [get]
func (h *StatsHandler) GetMonthComparison(c *gin.Context) {
	year1, err := getQueryInt(c, "year1", 0)
	if err != nil {
		respondBadRequest(c, ErrInvalidQueryParams, newErrorDetail("year1", err.Error()))
		return
	}
	month1, err := getQueryInt(c, "month1", 0)
	if err != nil {
		respondBadRequest(c, ErrInvalidQueryParams, newErrorDetail("month1", err.Error()))
		return
	}
	year2, err := getQueryInt(c, "year2", 0)
	if err != nil {
		respondBadRequest(c, ErrInvalidQueryParams, newErrorDetail("year2", err.Error()))
		return
	}
	month2, err := getQueryInt(c, "month2", 0)
	if err != nil {
		respondBadRequest(c, ErrInvalidQueryParams, newErrorDetail("month2", err.Error()))
		return
	}

	for field, v := range map[string]int{"year1": year1, "year2": year2} {
		if err := validateYear(v); err != nil {
			respondBadRequest(c, ErrInvalidQueryParams, newErrorDetail(field, err.Error()))
			return
		}
	}
	for field, v := range map[string]int{"month1": month1, "month2": month2} {
		if err := validateMonth(v); err != nil {
			respondBadRequest(c, ErrInvalidQueryParams, newErrorDetail(field, err.Error()))
			return
		}
	}

	cmp, err := h.closureService.GetMonthComparison(c.Request.Context(), year1, month1, year2, month2)
	if err != nil {
		logError(h.logger, c, "month_comparison_failed", err, logrus.Fields{
			"period1": map[string]int{"year": year1, "month": month1},
			"period2": map[string]int{"year": year2, "month": month2},
		})
		respondInternalServerError(c, "Failed to build month comparison")
		return
	}

	respondOK(c, model.NewMonthComparisonResponse(*cmp))
}

// GetTopDays returns the best and worst open days of a year
// @Summary Get best and worst days
// @Description Rank a year's open days by total receipts, best and worst
// @Tags stats
// @Produce json
// @Param year path int true "Year"
// @Param limit query int false "Days per direction (default 10)"
// @Success 200 {object} model.TopDaysResponse "Ranking"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /v1/stats/top-days/{year} [get]
func (h *StatsHandler) GetTopDays(c *gin.Context) {
	year, err := h.yearParam(c)
	if err != nil {
		return
	}

	limit, err := getQueryInt(c, "limit", 10)
	if err != nil {
		respondBadRequest(c, ErrInvalidQueryParams, newErrorDetail("limit", err.Error()))
		return
	}
	if limit < 1 || limit > 366 {
		respondBadRequest(c, ErrInvalidQueryParams, newErrorDetail("limit", "limit must be between 1 and 366"))
		return
	}

	ranking, err := h.closureService.GetTopDays(c.Request.Context(), year, limit)
	if err != nil {
		logError(h.logger, c, "top_days_failed", err, logrus.Fields{
			"year":  year,
			"limit": limit,
		})
		respondInternalServerError(c, "Failed to build ranking")
		return
	}

	respondOK(c, model.NewTopDaysResponse(*ranking))
}

// GetDailySeries returns a year's per-day chart series
// @Summary Get the daily series
// @Description Get one chart point per recorded day of a year
// @Tags stats
// @Produce json
// @Param year path int true "Year"
// @Success 200 {array} model.DailySeriesPointResponse "Daily series"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /v1/stats/daily-series/{year} [get]
func (h *StatsHandler) GetDailySeries(c *gin.Context) {
	year, err := h.yearParam(c)
	if err != nil {
		return
	}

	points, err := h.closureService.GetDailySeries(c.Request.Context(), year)
	if err != nil {
		logError(h.logger, c, "daily_series_failed", err, logrus.Fields{
			"year": year,
		})
		respondInternalServerError(c, "Failed to build daily series")
		return
	}

	respondOK(c, model.NewDailySeriesResponse(points))
}

// yearParam reads and validates the year path parameter, responding on error
func (h *StatsHandler) yearParam(c *gin.Context) (int, error) {
	year, err := getPathInt(c, "year")
	if err != nil {
		respondBadRequest(c, err.Error())
		return 0, err
	}
	if err := validateYear(year); err != nil {
		respondBadRequest(c, err.Error())
		return 0, err
	}
	return year, nil
}

// RegisterRoutes registers stats routes
func (h *StatsHandler) RegisterRoutes(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	stats := router.Group("/v1/stats", authMiddleware)
	{
		stats.GET("/annual/:year", h.GetAnnualReport)
		stats.GET("/compare/:year", h.GetYearComparison)
		stats.GET("/months/compare", h.GetMonthComparison)
		stats.GET("/top-days/:year", h.GetTopDays)
		stats.GET("/daily-series/:year", h.GetDailySeries)
	}
}

package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/tregobbi/backoffice-service/internal/model"
	"github.com/tregobbi/backoffice-service/internal/repository"
	"github.com/tregobbi/backoffice-service/internal/service"
)

// ClosureHandler handles daily cash-closure HTTP requests
type ClosureHandler struct {
	closureService service.ClosureService
	logger         *logrus.Logger
}

// NewClosureHandler creates a new closure handler
func NewClosureHandler(closureService service.ClosureService, logger *logrus.Logger) *ClosureHandler {
	return &ClosureHandler{
		closureService: closureService,
		logger:         logger,
	}
}

// UpsertClosure creates or replaces the closure for a date
// @Summary Record a daily closure
// @Description Create or fully replace the cash closure for a date and return the derived totals
// @Tags closures
// @Accept json
// @Produce json
// @Param request body model.UpsertClosureRequest true "Closure fields"
// @Success 200 {object} model.ClosureResponse "Derived closure"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /v1/closures [post]
func (h *ClosureHandler) UpsertClosure(c *gin.Context) {
	var req model.UpsertClosureRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput, newErrorDetail("body", err.Error()))
		return
	}

	closure, err := req.ToDomain()
	if err != nil {
		respondBadRequest(c, ErrInvalidDate, newErrorDetail("date", err.Error()))
		return
	}

	// Stamp the record with the authenticated user set by the auth middleware
	closure.CreatedBy = c.GetString("userID")

	view, err := h.closureService.UpsertClosure(c.Request.Context(), closure)
	if err != nil {
		logError(h.logger, c, "upsert_closure_failed", err, logrus.Fields{
			"date": req.Date,
		})
		respondInternalServerError(c, "Failed to save closure")
		return
	}

	respondOK(c, model.NewClosureResponse(*view))
}

// GetClosure returns one day's derived closure
// @Summary Get a daily closure
// @Description Get the stored closure for a date with its derived totals
// @Tags closures
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} model.ClosureResponse "Derived closure"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /v1/closures/{date} [get]
func (h *ClosureHandler) GetClosure(c *gin.Context) {
	dateStr, err := getPathParam(c, "date")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		respondBadRequest(c, ErrInvalidDate, newErrorDetail("date", err.Error()))
		return
	}

	view, err := h.closureService.GetClosure(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondNotFound(c, "No closure recorded for this date")
			return
		}
		logError(h.logger, c, "get_closure_failed", err, logrus.Fields{
			"date": dateStr,
		})
		respondInternalServerError(c, "Failed to load closure")
		return
	}

	respondOK(c, model.NewClosureResponse(*view))
}

// DeleteClosure removes one day's closure
// @Summary Delete a daily closure
// @Description Remove the stored closure for a date. Requires the admin role
// @Tags closures
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 204 "Deleted"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 403 {object} model.ErrorResponse "Forbidden"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /v1/closures/{date} [delete]
func (h *ClosureHandler) DeleteClosure(c *gin.Context) {
	dateStr, err := getPathParam(c, "date")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		respondBadRequest(c, ErrInvalidDate, newErrorDetail("date", err.Error()))
		return
	}

	if err := h.closureService.DeleteClosure(c.Request.Context(), date); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondNotFound(c, "No closure recorded for this date")
			return
		}
		logError(h.logger, c, "delete_closure_failed", err, logrus.Fields{
			"date": dateStr,
		})
		respondInternalServerError(c, "Failed to delete closure")
		return
	}

	respondNoContent(c)
}

// GetMonthlyReport returns a month's statistics and full calendar
// @Summary Get a monthly report
// @Description Get a month's rollup, weekday baselines and its day-by-day calendar
// @Tags closures
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} model.MonthlyReportResponse "Monthly report"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /v1/closures/month/{year}/{month} [get]
func (h *ClosureHandler) GetMonthlyReport(c *gin.Context) {
	year, err := getPathInt(c, "year")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if err := validateYear(year); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	month, err := getPathInt(c, "month")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if err := validateMonth(month); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	report, err := h.closureService.GetMonthlyReport(c.Request.Context(), year, month)
	if err != nil {
		logError(h.logger, c, "monthly_report_failed", err, logrus.Fields{
			"year":  year,
			"month": month,
		})
		respondInternalServerError(c, "Failed to build monthly report")
		return
	}

	respondOK(c, model.NewMonthlyReportResponse(*report))
}

// RegisterRoutes registers closure routes. Deletion is admin-only.
func (h *ClosureHandler) RegisterRoutes(router *gin.Engine, authMiddleware, adminMiddleware gin.HandlerFunc) {
	closures := router.Group("/v1/closures", authMiddleware)
	{
		closures.POST("", h.UpsertClosure)
		closures.GET("/month/:year/:month", h.GetMonthlyReport)
		closures.GET("/:date", h.GetClosure)
		closures.DELETE("/:date", adminMiddleware, h.DeleteClosure)
	}
}

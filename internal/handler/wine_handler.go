package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/tregobbi/backoffice-service/internal/domain"
	"github.com/tregobbi/backoffice-service/internal/model"
	"github.com/tregobbi/backoffice-service/internal/repository"
	"github.com/tregobbi/backoffice-service/internal/service"
)

// WineHandler handles wine cellar HTTP requests
type WineHandler struct {
	wineService service.WineService
	logger      *logrus.Logger
}

// NewWineHandler creates a new wine handler
func NewWineHandler(wineService service.WineService, logger *logrus.Logger) *WineHandler {
	return &WineHandler{
		wineService: wineService,
		logger:      logger,
	}
}

// CreateWine stores a new wine item after duplicate screening
// @Summary Add a wine item
// @Description Add a wine to the cellar. Near-matches are rejected with 409 unless confirmDuplicate is set
// @Tags wines
// @Accept json
// @Produce json
// @Param request body model.WineRequest true "Wine item"
// @Success 201 {object} domain.WineItem "Created item"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 409 {object} model.DuplicateWineResponse "Matches existing items"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /v1/wines [post]
func (h *WineHandler) CreateWine(c *gin.Context) {
	var req model.WineRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput, newErrorDetail("body", err.Error()))
		return
	}

	created, duplicates, err := h.wineService.CreateWine(c.Request.Context(), req.ToDomain(), req.ConfirmDuplicate)
	if err != nil {
		logError(h.logger, c, "create_wine_failed", err, logrus.Fields{
			"description": req.Description,
		})
		respondInternalServerError(c, "Failed to create wine item")
		return
	}

	if len(duplicates) > 0 {
		respondConflict(c, model.DuplicateWineResponse{
			Message:    "Item matches existing entries; set confirmDuplicate to store it anyway",
			Duplicates: duplicates,
		})
		return
	}

	respondCreated(c, created)
}

// GetWine returns one wine item
// @Summary Get a wine item
// @Tags wines
// @Produce json
// @Param id path string true "Wine ID"
// @Success 200 {object} domain.WineItem "Wine item"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /v1/wines/{id} [get]
func (h *WineHandler) GetWine(c *gin.Context) {
	id, err := getPathParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	item, err := h.wineService.GetWineByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondNotFound(c, "Wine item not found")
			return
		}
		logError(h.logger, c, "get_wine_failed", err, logrus.Fields{"id": id})
		respondInternalServerError(c, "Failed to load wine item")
		return
	}

	respondOK(c, item)
}

// UpdateWine replaces one wine item
// @Summary Update a wine item
// @Tags wines
// @Accept json
// @Produce json
// @Param id path string true "Wine ID"
// @Param request body model.WineRequest true "Wine item"
// @Success 200 {object} domain.WineItem "Updated item"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /v1/wines/{id} [put]
func (h *WineHandler) UpdateWine(c *gin.Context) {
	id, err := getPathParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	var req model.WineRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput, newErrorDetail("body", err.Error()))
		return
	}

	item := req.ToDomain()
	item.ID = id

	updated, err := h.wineService.UpdateWine(c.Request.Context(), item)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondNotFound(c, "Wine item not found")
			return
		}
		logError(h.logger, c, "update_wine_failed", err, logrus.Fields{"id": id})
		respondInternalServerError(c, "Failed to update wine item")
		return
	}

	respondOK(c, updated)
}

// DeleteWine removes one wine item. Requires the admin role
// @Summary Delete a wine item
// @Tags wines
// @Produce json
// @Param id path string true "Wine ID"
// @Success 204 "Deleted"
// @Failure 403 {object} model.ErrorResponse "Forbidden"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /v1/wines/{id} [delete]
func (h *WineHandler) DeleteWine(c *gin.Context) {
	id, err := getPathParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.wineService.DeleteWine(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondNotFound(c, "Wine item not found")
			return
		}
		logError(h.logger, c, "delete_wine_failed", err, logrus.Fields{"id": id})
		respondInternalServerError(c, "Failed to delete wine item")
		return
	}

	respondNoContent(c)
}

// ListWines returns a filtered, paginated wine list
// @Summary List wine items
// @Tags wines
// @Produce json
// @Param search query string false "Match against description and producer"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} domain.PaginatedWines "Wine items"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Security BearerAuth
// @Router /v1/wines [get]
func (h *WineHandler) ListWines(c *gin.Context) {
	page, err := getQueryInt(c, "page", 1)
	if err != nil {
		respondBadRequest(c, ErrInvalidQueryParams, newErrorDetail("page", err.Error()))
		return
	}
	limit, err := getQueryInt(c, "limit", 20)
	if err != nil {
		respondBadRequest(c, ErrInvalidQueryParams, newErrorDetail("limit", err.Error()))
		return
	}
	if err := validatePagination(page, limit); err != nil {
		respondBadRequest(c, ErrInvalidQueryParams, newErrorDetail("pagination", err.Error()))
		return
	}

	filter := domain.WineFilter{
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}

	result, err := h.wineService.ListWines(c.Request.Context(), filter)
	if err != nil {
		logError(h.logger, c, "list_wines_failed", err, nil)
		respondInternalServerError(c, "Failed to list wine items")
		return
	}

	respondOK(c, result)
}

// RegisterRoutes registers wine routes. Deletion is admin-only.
func (h *WineHandler) RegisterRoutes(router *gin.Engine, authMiddleware, adminMiddleware gin.HandlerFunc) {
	wines := router.Group("/v1/wines", authMiddleware)
	{
		wines.POST("", h.CreateWine)
		wines.GET("", h.ListWines)
		wines.GET("/:id", h.GetWine)
		wines.PUT("/:id", h.UpdateWine)
		wines.DELETE("/:id", adminMiddleware, h.DeleteWine)
	}
}

package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tanvir/intakeform/internal/app/models/dto"
	"github.com/tanvir/intakeform/internal/app/services"
	"github.com/tanvir/intakeform/internal/middleware"
)

// CatalogController handles faculty/department reference-data endpoints.
type CatalogController struct {
	catalogService *services.CatalogService
	logger         zerolog.Logger
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *services.CatalogService, logger zerolog.Logger) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
		logger:         logger,
	}
}

// Get returns the faculty/department catalog
// @Summary Get the faculty catalog
// @Description Returns the faculties, their department lists and the aggregate counts that drive the intake form's dropdowns.
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.Catalog}
// @Failure 404 {object} dto.ErrorResponse "Catalog not configured"
// @Router /catalog [get]
func (c *CatalogController) Get(ctx *gin.Context) {
	catalog, err := c.catalogService.Get(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: catalog, Timestamp: time.Now()})
}

// Update replaces the catalog wholesale
// @Summary Update the faculty catalog
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CatalogUpdateRequest true "Full faculty map"
// @Success 200 {object} dto.APIResponse{data=models.Catalog}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /admin/catalog [put]
func (c *CatalogController) Update(ctx *gin.Context) {
	var req dto.CatalogUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid catalog payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	catalog, err := c.catalogService.Update(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: catalog, Timestamp: time.Now()})
}

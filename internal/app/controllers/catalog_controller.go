package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tallerdev/admtaller/internal/app/services"
	"github.com/tallerdev/admtaller/internal/middleware"
)

// CatalogController serves the read-only lookup tables
type CatalogController struct {
	catalogService *services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

func respondList[T any](ctx *gin.Context, items []T, err error) {
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// GetGroupingTags lists the grouping tags of product lines
// @Summary List grouping tags
// @Tags catalogs
// @Produce json
// @Success 200 {array} models.GroupingTag
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grouping-tags [get]
func (c *CatalogController) GetGroupingTags(ctx *gin.Context) {
	tags, err := c.catalogService.GetGroupingTags(ctx.Request.Context())
	respondList(ctx, tags, err)
}

// GetUnits lists the units of measure
// @Summary List units of measure
// @Tags catalogs
// @Produce json
// @Success 200 {array} models.Unit
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /units [get]
func (c *CatalogController) GetUnits(ctx *gin.Context) {
	units, err := c.catalogService.GetUnits(ctx.Request.Context())
	respondList(ctx, units, err)
}

// GetProductCategories lists the product categories
// @Summary List product categories
// @Tags catalogs
// @Produce json
// @Success 200 {array} models.ProductCategory
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /product-categories [get]
func (c *CatalogController) GetProductCategories(ctx *gin.Context) {
	categories, err := c.catalogService.GetProductCategories(ctx.Request.Context())
	respondList(ctx, categories, err)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/app/models/dto"
	"github.com/tallerdev/admtaller/internal/app/services"
	"github.com/tallerdev/admtaller/internal/middleware"
)

// WorkshopController handles workshop and workshop product endpoints
type WorkshopController struct {
	workshopService *services.WorkshopService
	logger          zerolog.Logger
}

// NewWorkshopController creates a new WorkshopController
func NewWorkshopController(workshopService *services.WorkshopService, logger zerolog.Logger) *WorkshopController {
	return &WorkshopController{workshopService: workshopService, logger: logger}
}

// GetWorkshopsBySubject lists the workshops of a subject
// @Summary List workshops of a subject
// @Tags workshops
// @Produce json
// @Param sigla path string true "Subject code"
// @Success 200 {array} models.Workshop
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects/{sigla}/workshops [get]
func (c *WorkshopController) GetWorkshopsBySubject(ctx *gin.Context) {
	workshops, err := c.workshopService.GetWorkshopsBySubject(ctx.Request.Context(), ctx.Param("sigla"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, workshops)
}

// GetWorkshop returns one workshop
// @Summary Get workshop
// @Description Unknown workshops answer an empty workshop.
// @Tags workshops
// @Produce json
// @Param actorId path int true "Acting user ID"
// @Param workshopId path int true "Workshop ID"
// @Success 200 {object} models.Workshop
// @Failure 400 {object} dto.ErrorResponse "Invalid workshop ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /actors/{actorId}/workshops/{workshopId} [get]
func (c *WorkshopController) GetWorkshop(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}
	id, ok := pathInt64(ctx, "workshopId")
	if !ok {
		return
	}

	workshop, err := c.workshopService.GetWorkshop(ctx.Request.Context(), actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, workshop)
}

// CreateWorkshop creates a workshop
// @Summary Create workshop
// @Tags workshops
// @Accept json
// @Produce json
// @Param request body dto.WorkshopRequest true "Workshop"
// @Success 201 {object} models.Workshop
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /workshops [post]
func (c *WorkshopController) CreateWorkshop(ctx *gin.Context) {
	var req dto.WorkshopRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid workshop payload")
		middleware.HandleBindError(ctx, err)
		return
	}

	workshop, err := c.workshopService.CreateWorkshop(ctx.Request.Context(), req.ToModel(0))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, workshop)
}

// UpdateWorkshop updates a workshop
// @Summary Update workshop
// @Tags workshops
// @Accept json
// @Produce json
// @Param workshopId path int true "Workshop ID"
// @Param request body dto.WorkshopRequest true "Workshop"
// @Success 200 {object} models.Workshop
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Workshop not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /workshops/{workshopId} [put]
func (c *WorkshopController) UpdateWorkshop(ctx *gin.Context) {
	id, ok := pathInt64(ctx, "workshopId")
	if !ok {
		return
	}

	var req dto.WorkshopRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid workshop payload")
		middleware.HandleBindError(ctx, err)
		return
	}

	workshop, err := c.workshopService.UpdateWorkshop(ctx.Request.Context(), req.ToModel(id))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, workshop)
}

// DeleteWorkshop deletes a workshop
// @Summary Delete workshop
// @Description A workshop with product lines or schedules is not deleted; the answer explains why.
// @Tags workshops
// @Produce json
// @Param workshopId path int true "Workshop ID"
// @Success 200 {object} map[string]any "{id_taller, eliminado, msg_error}"
// @Failure 400 {object} dto.ErrorResponse "Invalid workshop ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /workshops/{workshopId} [delete]
func (c *WorkshopController) DeleteWorkshop(ctx *gin.Context) {
	id, ok := pathInt64(ctx, "workshopId")
	if !ok {
		return
	}

	res, err := c.workshopService.DeleteWorkshop(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// GetWorkshopProducts lists the product lines of a workshop
// @Summary List workshop products
// @Tags workshops
// @Produce json
// @Param workshopId path int true "Workshop ID"
// @Success 200 {array} models.WorkshopProduct
// @Failure 400 {object} dto.ErrorResponse "Invalid workshop ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /workshops/{workshopId}/products [get]
func (c *WorkshopController) GetWorkshopProducts(ctx *gin.Context) {
	id, ok := pathInt64(ctx, "workshopId")
	if !ok {
		return
	}

	lines, err := c.workshopService.GetWorkshopProducts(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, lines)
}

func (c *WorkshopController) lineKey(ctx *gin.Context) (workshopID, productID int64, groupCode int32, ok bool) {
	if workshopID, ok = pathInt64(ctx, "workshopId"); !ok {
		return
	}
	if productID, ok = pathInt64(ctx, "productId"); !ok {
		return
	}
	groupCode, ok = pathInt32(ctx, "groupCode")
	return
}

// GetWorkshopProduct returns one product line
// @Summary Get workshop product
// @Description Unknown lines answer a line carrying only its key.
// @Tags workshops
// @Produce json
// @Param workshopId path int true "Workshop ID"
// @Param productId path int true "Product ID"
// @Param groupCode path int true "Grouping tag code"
// @Success 200 {object} models.WorkshopProduct
// @Failure 400 {object} dto.ErrorResponse "Invalid key"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /workshops/{workshopId}/products/{productId}/groups/{groupCode} [get]
func (c *WorkshopController) GetWorkshopProduct(ctx *gin.Context) {
	workshopID, productID, groupCode, ok := c.lineKey(ctx)
	if !ok {
		return
	}

	line, err := c.workshopService.GetWorkshopProduct(ctx.Request.Context(), workshopID, productID, groupCode)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, line)
}

// CreateWorkshopProduct adds a product line to a workshop
// @Summary Add workshop product
// @Tags workshops
// @Accept json
// @Produce json
// @Param workshopId path int true "Workshop ID"
// @Param request body dto.WorkshopProductRequest true "Product line"
// @Success 201 {object} models.WorkshopProduct
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 409 {object} dto.ErrorResponse "Line already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /workshops/{workshopId}/products [post]
func (c *WorkshopController) CreateWorkshopProduct(ctx *gin.Context) {
	workshopID, ok := pathInt64(ctx, "workshopId")
	if !ok {
		return
	}

	var req dto.WorkshopProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid workshop product payload")
		middleware.HandleBindError(ctx, err)
		return
	}

	line, err := c.workshopService.CreateWorkshopProduct(ctx.Request.Context(), req.ToModel(workshopID))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, line)
}

// UpdateWorkshopProduct changes the quantity of a product line
// @Summary Update workshop product quantity
// @Tags workshops
// @Accept json
// @Produce json
// @Param workshopId path int true "Workshop ID"
// @Param productId path int true "Product ID"
// @Param groupCode path int true "Grouping tag code"
// @Param request body dto.QuantityRequest true "Quantity"
// @Success 200 {object} models.WorkshopProduct
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Line not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /workshops/{workshopId}/products/{productId}/groups/{groupCode} [put]
func (c *WorkshopController) UpdateWorkshopProduct(ctx *gin.Context) {
	workshopID, productID, groupCode, ok := c.lineKey(ctx)
	if !ok {
		return
	}

	var req dto.QuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid quantity payload")
		middleware.HandleBindError(ctx, err)
		return
	}

	line, err := c.workshopService.UpdateWorkshopProduct(ctx.Request.Context(), &models.WorkshopProduct{
		WorkshopID: workshopID,
		ProductID:  productID,
		GroupCode:  groupCode,
		Quantity:   req.Quantity,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, line)
}

// DeleteWorkshopProduct removes a product line
// @Summary Delete workshop product
// @Tags workshops
// @Produce json
// @Param workshopId path int true "Workshop ID"
// @Param productId path int true "Product ID"
// @Param groupCode path int true "Grouping tag code"
// @Success 200 {object} map[string]any "{id_taller, id_producto, cod_agrupador, eliminado, msg_error}"
// @Failure 400 {object} dto.ErrorResponse "Invalid key"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /workshops/{workshopId}/products/{productId}/groups/{groupCode} [delete]
func (c *WorkshopController) DeleteWorkshopProduct(ctx *gin.Context) {
	workshopID, productID, groupCode, ok := c.lineKey(ctx)
	if !ok {
		return
	}

	res, err := c.workshopService.DeleteWorkshopProduct(ctx.Request.Context(), workshopID, productID, groupCode)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tallerdev/admtaller/internal/app/models/dto"
	"github.com/tallerdev/admtaller/internal/app/services"
	"github.com/tallerdev/admtaller/internal/middleware"
)

// ProductController handles product endpoints
type ProductController struct {
	productService *services.ProductService
	logger         zerolog.Logger
}

// NewProductController creates a new ProductController
func NewProductController(productService *services.ProductService, logger zerolog.Logger) *ProductController {
	return &ProductController{productService: productService, logger: logger}
}

// GetProducts lists products
// @Summary List products
// @Tags products
// @Produce json
// @Param actorId path int true "Acting user ID"
// @Success 200 {array} models.Product
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /actors/{actorId}/products [get]
func (c *ProductController) GetProducts(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	products, err := c.productService.GetProducts(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

// GetProduct returns one product
// @Summary Get product
// @Tags products
// @Produce json
// @Param actorId path int true "Acting user ID"
// @Param productId path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 400 {object} dto.ErrorResponse "Invalid product ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /actors/{actorId}/products/{productId} [get]
func (c *ProductController) GetProduct(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}
	id, ok := pathInt64(ctx, "productId")
	if !ok {
		return
	}

	product, err := c.productService.GetProduct(ctx.Request.Context(), actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

// CreateProduct creates a product
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param request body dto.ProductRequest true "Product"
// @Success 201 {object} models.Product
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /products [post]
func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid product payload")
		middleware.HandleBindError(ctx, err)
		return
	}

	product, err := c.productService.CreateProduct(ctx.Request.Context(), req.ToModel(0))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, product)
}

// UpdateProduct updates a product
// @Summary Update product
// @Description Instructors may not update products.
// @Tags products
// @Accept json
// @Produce json
// @Param actorId path int true "Acting user ID"
// @Param productId path int true "Product ID"
// @Param request body dto.ProductRequest true "Product"
// @Success 200 {object} models.Product
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 403 {object} dto.ErrorResponse "Not allowed"
// @Failure 404 {object} dto.ErrorResponse "Product not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /actors/{actorId}/products/{productId} [put]
func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}
	id, ok := pathInt64(ctx, "productId")
	if !ok {
		return
	}

	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid product payload")
		middleware.HandleBindError(ctx, err)
		return
	}

	product, err := c.productService.UpdateProduct(ctx.Request.Context(), actor, req.ToModel(id))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

// DeleteProduct deletes a product
// @Summary Delete product
// @Description A product used by a workshop or a record is not deleted; the answer explains why.
// @Tags products
// @Produce json
// @Param actorId path int true "Acting user ID"
// @Param productId path int true "Product ID"
// @Success 200 {object} map[string]any "{id_producto, eliminado, msg_error}"
// @Failure 400 {object} dto.ErrorResponse "Invalid product ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /actors/{actorId}/products/{productId} [delete]
func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}
	id, ok := pathInt64(ctx, "productId")
	if !ok {
		return
	}

	res, err := c.productService.DeleteProduct(ctx.Request.Context(), actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

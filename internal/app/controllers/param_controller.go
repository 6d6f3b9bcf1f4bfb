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

// ParamController handles system parameters and academic periods
type ParamController struct {
	paramService *services.ParamService
	logger       zerolog.Logger
}

// NewParamController creates a new ParamController
func NewParamController(paramService *services.ParamService, logger zerolog.Logger) *ParamController {
	return &ParamController{paramService: paramService, logger: logger}
}

// GetParams lists the system parameters
// @Summary List parameters
// @Tags params
// @Produce json
// @Success 200 {array} models.Param
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /params [get]
func (c *ParamController) GetParams(ctx *gin.Context) {
	params, err := c.paramService.GetParams(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, params)
}

// GetParam returns one parameter
// @Summary Get parameter
// @Tags params
// @Produce json
// @Param code path int true "Parameter code"
// @Success 200 {object} models.Param
// @Failure 400 {object} dto.ErrorResponse "Invalid code"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /params/{code} [get]
func (c *ParamController) GetParam(ctx *gin.Context) {
	code, ok := pathInt32(ctx, "code")
	if !ok {
		return
	}

	param, err := c.paramService.GetParam(ctx.Request.Context(), code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, param)
}

// UpdateParam sets the value of a parameter
// @Summary Update parameter
// @Tags params
// @Accept json
// @Produce json
// @Param code path int true "Parameter code"
// @Param request body dto.ParamRequest true "Value"
// @Success 200 {object} models.Param
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /params/{code} [put]
func (c *ParamController) UpdateParam(ctx *gin.Context) {
	code, ok := pathInt32(ctx, "code")
	if !ok {
		return
	}

	var req dto.ParamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	param, err := c.paramService.UpdateParam(ctx.Request.Context(), &models.Param{Code: code, Value: req.Value})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.logger.Info().Int32("code", code).Str("value", req.Value).Msg("Parameter updated")
	ctx.JSON(http.StatusOK, param)
}

// GetAcademicYear returns the current academic year
// @Summary Current academic year
// @Tags params
// @Produce json
// @Success 200 {object} models.AcademicYear
// @Router /academic-year [get]
func (c *ParamController) GetAcademicYear(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.paramService.GetAcademicYear(ctx.Request.Context()))
}

// GetPeriods lists the academic periods
// @Summary List academic periods
// @Tags params
// @Produce json
// @Success 200 {array} models.AcademicPeriod
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /periods [get]
func (c *ParamController) GetPeriods(ctx *gin.Context) {
	periods, err := c.paramService.GetPeriods(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, periods)
}

// GetPeriod returns one academic period
// @Summary Get academic period
// @Tags params
// @Produce json
// @Param code path int true "Period code"
// @Success 200 {object} models.AcademicPeriod
// @Failure 400 {object} dto.ErrorResponse "Invalid code"
// @Failure 404 {object} dto.ErrorResponse "Period not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /periods/{code} [get]
func (c *ParamController) GetPeriod(ctx *gin.Context) {
	code, ok := pathInt32(ctx, "code")
	if !ok {
		return
	}

	period, err := c.paramService.GetPeriod(ctx.Request.Context(), code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, period)
}

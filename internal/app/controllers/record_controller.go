package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tallerdev/admtaller/internal/app/models/dto"
	"github.com/tallerdev/admtaller/internal/app/services"
	"github.com/tallerdev/admtaller/internal/middleware"
)

// RecordController handles workshop execution records
type RecordController struct {
	recordService *services.RecordService
	logger        zerolog.Logger
}

// NewRecordController creates a new RecordController
func NewRecordController(recordService *services.RecordService, logger zerolog.Logger) *RecordController {
	return &RecordController{recordService: recordService, logger: logger}
}

// GetAssignedSections lists the sections where the actor has workshops
// @Summary List assigned sections
// @Tags records
// @Produce json
// @Param actorId path int true "Acting user ID"
// @Param year path int true "Academic year"
// @Success 200 {array} models.SubjectSection
// @Failure 400 {object} dto.ErrorResponse "Invalid year"
// @Failure 403 {object} dto.ErrorResponse "Unsupported role"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /actors/{actorId}/records/{year}/sections [get]
func (c *RecordController) GetAssignedSections(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}
	year, ok := pathInt32(ctx, "year")
	if !ok {
		return
	}

	sections, err := c.recordService.GetAssignedSections(ctx.Request.Context(), actor, year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sections)
}

// GetSectionWorkshops lists the scheduled workshops of a section with their record status
// @Summary List section workshops for recording
// @Tags records
// @Produce json
// @Param actorId path int true "Acting user ID"
// @Param year path int true "Academic year"
// @Param period path int true "Academic period code"
// @Param sigla path string true "Subject code"
// @Param section path int true "Section number"
// @Success 200 {array} models.SectionWorkshop
// @Failure 400 {object} dto.ErrorResponse "Invalid key"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /actors/{actorId}/records/{year}/sections/{period}/{sigla}/{section}/workshops [get]
func (c *RecordController) GetSectionWorkshops(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}
	key, ok := sectionKey(ctx)
	if !ok {
		return
	}

	workshops, err := c.recordService.GetSectionWorkshops(ctx.Request.Context(), actor, key)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, workshops)
}

// Register records the execution of a scheduled workshop
// @Summary Register workshop execution
// @Description Writes the record and its product detail in one transaction.
// @Tags records
// @Accept json
// @Produce json
// @Param request body dto.ExecutionRecordRequest true "Execution record"
// @Success 201 {object} models.ExecutionRecord
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 409 {object} dto.ErrorResponse "Already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /records [post]
func (c *RecordController) Register(ctx *gin.Context) {
	var req dto.ExecutionRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid execution record payload")
		middleware.HandleBindError(ctx, err)
		return
	}

	rec, err := c.recordService.Register(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, rec)
}

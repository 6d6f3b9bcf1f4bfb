package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tallerdev/admtaller/internal/app/models/dto"
	"github.com/tallerdev/admtaller/internal/app/services"
	"github.com/tallerdev/admtaller/internal/middleware"
)

// ScheduleController handles section and workshop scheduling endpoints
type ScheduleController struct {
	scheduleService *services.ScheduleService
	logger          zerolog.Logger
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService *services.ScheduleService, logger zerolog.Logger) *ScheduleController {
	return &ScheduleController{scheduleService: scheduleService, logger: logger}
}

// GetSections lists the sections scheduled in a year
// @Summary List sections of a year
// @Tags schedules
// @Produce json
// @Param actorId path int true "Acting user ID"
// @Param year path int true "Academic year"
// @Success 200 {array} models.SubjectSection
// @Failure 400 {object} dto.ErrorResponse "Invalid year"
// @Failure 403 {object} dto.ErrorResponse "Unsupported role"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /actors/{actorId}/schedules/{year}/sections [get]
func (c *ScheduleController) GetSections(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}
	year, ok := pathInt32(ctx, "year")
	if !ok {
		return
	}

	sections, err := c.scheduleService.GetSections(ctx.Request.Context(), actor, year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sections)
}

// CreateSection schedules a section of a subject
// @Summary Create section
// @Tags schedules
// @Accept json
// @Produce json
// @Param request body dto.SectionRequest true "Section"
// @Success 201 {object} models.SectionKey
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 409 {object} dto.ErrorResponse "Section already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/sections [post]
func (c *ScheduleController) CreateSection(ctx *gin.Context) {
	var req dto.SectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid section payload")
		middleware.HandleBindError(ctx, err)
		return
	}

	key, err := c.scheduleService.CreateSection(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, key)
}

// DeleteSection deletes a section
// @Summary Delete section
// @Description A section with scheduled workshops is not deleted; the answer explains why.
// @Tags schedules
// @Produce json
// @Param actorId path int true "Acting user ID"
// @Param year path int true "Academic year"
// @Param period path int true "Academic period code"
// @Param sigla path string true "Subject code"
// @Param section path int true "Section number"
// @Success 200 {object} map[string]any "{ano_academ, cod_periodo_academ, sigla, seccion, eliminado, msg_error}"
// @Failure 400 {object} dto.ErrorResponse "Invalid key"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /actors/{actorId}/schedules/{year}/sections/{period}/{sigla}/{section} [delete]
func (c *ScheduleController) DeleteSection(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}
	key, ok := sectionKey(ctx)
	if !ok {
		return
	}

	res, err := c.scheduleService.DeleteSection(ctx.Request.Context(), actor, key)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// GetWorkshopSchedules lists the workshops scheduled for a section
// @Summary List workshop schedules of a section
// @Tags schedules
// @Produce json
// @Param year path int true "Academic year"
// @Param period path int true "Academic period code"
// @Param sigla path string true "Subject code"
// @Param section path int true "Section number"
// @Success 200 {array} models.WorkshopSchedule
// @Failure 400 {object} dto.ErrorResponse "Invalid key"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{year}/sections/{period}/{sigla}/{section}/workshops [get]
func (c *ScheduleController) GetWorkshopSchedules(ctx *gin.Context) {
	key, ok := sectionKey(ctx)
	if !ok {
		return
	}

	schedules, err := c.scheduleService.GetWorkshopSchedules(ctx.Request.Context(), key)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, schedules)
}

// GetWorkshopSchedule returns one scheduled workshop
// @Summary Get workshop schedule
// @Description Unknown schedules answer a schedule carrying only its key.
// @Tags schedules
// @Produce json
// @Param year path int true "Academic year"
// @Param period path int true "Academic period code"
// @Param sigla path string true "Subject code"
// @Param section path int true "Section number"
// @Param workshopId path int true "Workshop ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} models.WorkshopSchedule
// @Failure 400 {object} dto.ErrorResponse "Invalid key"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{year}/sections/{period}/{sigla}/{section}/workshops/{workshopId}/{date} [get]
func (c *ScheduleController) GetWorkshopSchedule(ctx *gin.Context) {
	key, ok := sectionKey(ctx)
	if !ok {
		return
	}
	workshopID, ok := pathInt64(ctx, "workshopId")
	if !ok {
		return
	}

	schedule, err := c.scheduleService.GetWorkshopSchedule(ctx.Request.Context(), key, workshopID, ctx.Param("date"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, schedule)
}

// CreateWorkshopSchedule schedules a workshop for a section
// @Summary Create workshop schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Param request body dto.WorkshopScheduleRequest true "Workshop schedule"
// @Success 201 {object} models.WorkshopSchedule
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 409 {object} dto.ErrorResponse "Already scheduled"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/workshops [post]
func (c *ScheduleController) CreateWorkshopSchedule(ctx *gin.Context) {
	var req dto.WorkshopScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid workshop schedule payload")
		middleware.HandleBindError(ctx, err)
		return
	}

	schedule, err := c.scheduleService.CreateWorkshopSchedule(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, schedule)
}

// UpdateWorkshopInstructor assigns the instructor of a scheduled workshop
// @Summary Assign workshop instructor
// @Tags schedules
// @Accept json
// @Produce json
// @Param request body dto.WorkshopScheduleRequest true "Workshop schedule"
// @Success 200 {object} models.WorkshopSchedule
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/workshops [put]
func (c *ScheduleController) UpdateWorkshopInstructor(ctx *gin.Context) {
	var req dto.WorkshopScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid workshop schedule payload")
		middleware.HandleBindError(ctx, err)
		return
	}

	schedule, err := c.scheduleService.UpdateWorkshopInstructor(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, schedule)
}

// DeleteWorkshopSchedule unschedules a workshop
// @Summary Delete workshop schedule
// @Description A schedule with execution records is not deleted; the answer explains why.
// @Tags schedules
// @Produce json
// @Param actorId path int true "Acting user ID"
// @Param year path int true "Academic year"
// @Param period path int true "Academic period code"
// @Param sigla path string true "Subject code"
// @Param section path int true "Section number"
// @Param workshopId path int true "Workshop ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]any "{section key, id_taller, fecha, eliminado, msg_error}"
// @Failure 400 {object} dto.ErrorResponse "Invalid key"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /actors/{actorId}/schedules/{year}/sections/{period}/{sigla}/{section}/workshops/{workshopId}/{date} [delete]
func (c *ScheduleController) DeleteWorkshopSchedule(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}
	key, ok := sectionKey(ctx)
	if !ok {
		return
	}
	workshopID, ok := pathInt64(ctx, "workshopId")
	if !ok {
		return
	}

	res, err := c.scheduleService.DeleteWorkshopSchedule(ctx.Request.Context(), actor, key, workshopID, ctx.Param("date"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

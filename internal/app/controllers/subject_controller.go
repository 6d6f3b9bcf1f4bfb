package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tallerdev/admtaller/internal/app/models/dto"
	"github.com/tallerdev/admtaller/internal/app/services"
	"github.com/tallerdev/admtaller/internal/middleware"
)

// SubjectController handles subject endpoints
type SubjectController struct {
	subjectService *services.SubjectService
	logger         zerolog.Logger
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService *services.SubjectService, logger zerolog.Logger) *SubjectController {
	return &SubjectController{subjectService: subjectService, logger: logger}
}

// GetSubjects lists the subjects visible to the actor
// @Summary List subjects
// @Description Subjects with the estimated cost of all their workshops. Instructors see their program only.
// @Tags subjects
// @Produce json
// @Param actorId path int true "Acting user ID"
// @Success 200 {array} models.Subject
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /actors/{actorId}/subjects [get]
func (c *SubjectController) GetSubjects(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	subjects, err := c.subjectService.GetSubjects(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, subjects)
}

// GetSubject returns one subject
// @Summary Get subject
// @Description Unknown subjects answer the placeholder subject with sigla "None".
// @Tags subjects
// @Produce json
// @Param actorId path int true "Acting user ID"
// @Param sigla path string true "Subject code"
// @Success 200 {object} models.Subject
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /actors/{actorId}/subjects/{sigla} [get]
func (c *SubjectController) GetSubject(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	subject, err := c.subjectService.GetSubject(ctx.Request.Context(), actor, ctx.Param("sigla"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, subject)
}

// CreateSubject creates a subject
// @Summary Create subject
// @Tags subjects
// @Accept json
// @Produce json
// @Param request body dto.SubjectRequest true "Subject"
// @Success 201 {object} models.Subject
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 409 {object} dto.ErrorResponse "Subject already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req dto.SubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid subject payload")
		middleware.HandleBindError(ctx, err)
		return
	}

	subject, err := c.subjectService.CreateSubject(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, subject)
}

// UpdateSubject updates a subject
// @Summary Update subject
// @Tags subjects
// @Accept json
// @Produce json
// @Param sigla path string true "Subject code"
// @Param request body dto.SubjectRequest true "Subject"
// @Success 200 {object} models.Subject
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects/{sigla} [put]
func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	var req dto.SubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid subject payload")
		middleware.HandleBindError(ctx, err)
		return
	}

	subject := req.ToModel()
	subject.Code = ctx.Param("sigla")

	updated, err := c.subjectService.UpdateSubject(ctx.Request.Context(), subject)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteSubject deletes a subject
// @Summary Delete subject
// @Description A subject with workshops or schedules is not deleted; the answer explains why.
// @Tags subjects
// @Produce json
// @Param actorId path int true "Acting user ID"
// @Param sigla path string true "Subject code"
// @Success 200 {object} map[string]any "{sigla, eliminado, msg_error}"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /actors/{actorId}/subjects/{sigla} [delete]
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	res, err := c.subjectService.DeleteSubject(ctx.Request.Context(), actor, ctx.Param("sigla"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

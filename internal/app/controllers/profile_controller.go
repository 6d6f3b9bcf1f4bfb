package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tallerdev/admtaller/internal/app/services"
	"github.com/tallerdev/admtaller/internal/middleware"
)

// ProfileController answers profile and program lookups of an actor
type ProfileController struct {
	profileService *services.ProfileService
	logger         zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService *services.ProfileService, logger zerolog.Logger) *ProfileController {
	return &ProfileController{profileService: profileService, logger: logger}
}

// GetProfile returns the actor's profile
// @Summary Get actor profile
// @Tags profiles
// @Produce json
// @Param actorId path int true "Acting user ID"
// @Success 200 {object} models.Profile
// @Failure 404 {object} dto.ErrorResponse "User has no profile"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /actors/{actorId}/profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	profile, err := c.profileService.GetProfile(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// GetProgram returns the actor's program
// @Summary Get actor program
// @Description Both fields are null for users without a program.
// @Tags profiles
// @Produce json
// @Param actorId path int true "Acting user ID"
// @Success 200 {object} models.ProgramAffiliation
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /actors/{actorId}/program [get]
func (c *ProfileController) GetProgram(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	program, err := c.profileService.GetProgram(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, program)
}

// GetProfiles lists the profiles the actor may assign
// @Summary List assignable profiles
// @Tags profiles
// @Produce json
// @Param actorId path int true "Acting user ID"
// @Success 200 {array} models.Profile
// @Failure 403 {object} dto.ErrorResponse "Role not supported"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /actors/{actorId}/profiles [get]
func (c *ProfileController) GetProfiles(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	profiles, err := c.profileService.GetProfiles(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profiles)
}

// GetPrograms lists the programs visible to the actor
// @Summary List programs
// @Tags profiles
// @Produce json
// @Param actorId path int true "Acting user ID"
// @Success 200 {array} models.Program
// @Failure 403 {object} dto.ErrorResponse "Role not supported"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /actors/{actorId}/programs [get]
func (c *ProfileController) GetPrograms(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	programs, err := c.profileService.GetPrograms(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, programs)
}

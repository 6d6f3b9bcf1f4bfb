package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tallerdev/admtaller/internal/app/models/dto"
	"github.com/tallerdev/admtaller/internal/app/services"
	"github.com/tallerdev/admtaller/internal/middleware"
)

// UserController handles user management endpoints
type UserController struct {
	userService *services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{userService: userService, logger: logger}
}

// GetUserIDByLogin returns the id of a login
// @Summary Get user id by login
// @Tags users
// @Produce json
// @Param login path string true "Login"
// @Success 200 {object} dto.UserIDResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/by-login/{login} [get]
func (c *UserController) GetUserIDByLogin(ctx *gin.Context) {
	id, err := c.userService.GetUserIDByLogin(ctx.Request.Context(), ctx.Param("login"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.UserIDResponse{UserID: id})
}

// GetUsers lists the users visible to the actor
// @Summary List users
// @Description IT administrators see every user; program administrators see their program without IT administrators.
// @Tags users
// @Produce json
// @Param actorId path int true "Acting user ID"
// @Success 200 {array} models.User
// @Failure 403 {object} dto.ErrorResponse "Unsupported role"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /actors/{actorId}/users [get]
func (c *UserController) GetUsers(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	users, err := c.userService.GetUsers(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// GetUser returns one user
// @Summary Get user
// @Tags users
// @Produce json
// @Param actorId path int true "Acting user ID"
// @Param userId path int true "User ID"
// @Success 200 {object} models.User
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /actors/{actorId}/users/{userId} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}
	id, ok := pathInt64(ctx, "userId")
	if !ok {
		return
	}

	user, err := c.userService.GetUser(ctx.Request.Context(), actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// CreateUser creates a user
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.UserRequest true "User"
// @Success 201 {object} models.User
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 409 {object} dto.ErrorResponse "Login already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.UserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid user payload")
		middleware.HandleBindError(ctx, err)
		return
	}

	user, err := c.userService.CreateUser(ctx.Request.Context(), req.ToModel(0))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

// UpdateUser updates a user
// @Summary Update user
// @Description The password is changed only when hash_password is sent.
// @Tags users
// @Accept json
// @Produce json
// @Param actorId path int true "Acting user ID"
// @Param userId path int true "User ID"
// @Param request body dto.UserRequest true "User"
// @Success 200 {object} models.User
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 403 {object} dto.ErrorResponse "Not allowed"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /actors/{actorId}/users/{userId} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}
	id, ok := pathInt64(ctx, "userId")
	if !ok {
		return
	}

	var req dto.UserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid user payload")
		middleware.HandleBindError(ctx, err)
		return
	}

	user, err := c.userService.UpdateUser(ctx.Request.Context(), actor, req.ToModel(id))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// DeleteUser deletes a user
// @Summary Delete user
// @Description A user with schedules or records is not deleted; the answer explains why.
// @Tags users
// @Produce json
// @Param actorId path int true "Acting user ID"
// @Param userId path int true "User ID"
// @Success 200 {object} map[string]any "{id_usuario, eliminado, msg_error}"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /actors/{actorId}/users/{userId} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}
	id, ok := pathInt64(ctx, "userId")
	if !ok {
		return
	}

	res, err := c.userService.DeleteUser(ctx.Request.Context(), actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tallerdev/admtaller/internal/app/models/dto"
	"github.com/tallerdev/admtaller/internal/app/services"
	"github.com/tallerdev/admtaller/internal/middleware"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Login handles user login
// @Summary User login
// @Description Checks a login and password. Wrong credentials answer 200 with autenticado=false; the password is never echoed.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} models.Authentication "Authentication result"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		middleware.HandleBindError(ctx, err)
		return
	}

	res, err := c.authService.Login(ctx.Request.Context(), req.ToModel())
	if err != nil {
		c.logger.Error().Err(err).Str("login", req.Login).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, res)
}

// ChangePassword handles password changes
// @Summary Change password
// @Description Replaces the password of a user. modificada is false when the user does not exist.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.PasswordChangeRequest true "New password and confirmation"
// @Success 200 {object} models.PasswordChange "Password change result"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or confirmation mismatch"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/password [put]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	var req dto.PasswordChangeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid password change payload")
		middleware.HandleBindError(ctx, err)
		return
	}

	res, err := c.authService.ChangePassword(ctx.Request.Context(), req.ToModel())
	if err != nil {
		c.logger.Warn().Err(err).Int64("userID", req.UserID).Msg("Password change failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", req.UserID).Bool("changed", res.Changed).Msg("Password change processed")
	ctx.JSON(http.StatusOK, res)
}

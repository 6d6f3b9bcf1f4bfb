package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tallerdev/admtaller/internal/app/models/dto"
	"github.com/tallerdev/admtaller/internal/pkg/auth"
	"github.com/tallerdev/admtaller/internal/pkg/logger"
)

// Context keys set by ActorGuard.
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// AuthMiddleware guards actor-scoped routes
type AuthMiddleware struct {
	jwtService *auth.JWTService
	enforce    bool
}

// NewAuthMiddleware creates a new AuthMiddleware. When enforce is false the
// :actorId path segment is trusted as sent.
func NewAuthMiddleware(jwtService *auth.JWTService, enforce bool) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		enforce:    enforce,
	}
}

// ActorGuard requires a valid bearer token whose user matches :actorId.
func (m *AuthMiddleware) ActorGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enforce {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Autenticación requerida").
				WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(strings.Trim(authHeader, "\"'"))
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Autenticación requerida").
				WithDetails("Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			if errors.Is(err, auth.ErrExpiredToken) {
				errorCode = dto.ErrorCodeExpiredToken
			}
			errorDetail := dto.NewErrorDetail(errorCode, "Autenticación fallida").WithDetails(err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		actorID, err := strconv.ParseInt(c.Param("actorId"), 10, 64)
		if err != nil || actorID != claims.UserID {
			logger.Warn().
				Int64("tokenUserID", claims.UserID).
				Str("actorId", c.Param("actorId")).
				Msg("Token does not belong to the requested actor")
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "El token no corresponde al usuario solicitado")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

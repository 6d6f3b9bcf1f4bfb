package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tallerdev/admtaller/internal/app/models/dto"
	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
	"github.com/tallerdev/admtaller/internal/pkg/dberrors"
	"github.com/tallerdev/admtaller/internal/pkg/logger"
)

// errorClass maps one error sentinel onto its HTTP answer.
type errorClass struct {
	sentinel error
	status   int
	code     dto.ErrorCode
	fallback string
	// withDriverText exposes the database's own message in details.
	withDriverText bool
}

// errorClasses is checked in order; the first match wins.
var errorClasses = []errorClass{
	{apperrors.ErrConnectivity, http.StatusInternalServerError, dto.ErrorCodeDatabaseError, dberrors.MsgConnectivity, true},
	{apperrors.ErrTimeout, http.StatusGatewayTimeout, dto.ErrorCodeTimeout, dberrors.MsgTimeout, false},
	{apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, dberrors.MsgDuplicate, true},
	{apperrors.ErrIntegrityViolation, http.StatusBadRequest, dto.ErrorCodeResourceInvalid, dberrors.MsgIntegrity, true},
	{apperrors.ErrQueryFailed, http.StatusBadRequest, dto.ErrorCodeQueryFailed, dberrors.MsgQuery, true},
	{apperrors.ErrUnsupportedRole, http.StatusForbidden, dto.ErrorCodeUnsupportedRole, "Perfil no soportado", false},
	{apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden, "Acceso denegado", false},
	{apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Recurso no encontrado", false},
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, dto.MsgInvalidRequest, false},
	{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeBadRequest, "Solicitud inválida", false},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Credenciales inválidas", false},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expirado", false},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Token inválido", false},
	{apperrors.ErrTokenNotFound, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Token no encontrado", false},
}

// HandleAPIError writes the error response matching err's class. Unknown
// errors become a 500 without internal details.
func HandleAPIError(c *gin.Context, err error) {
	_ = c.Error(err)

	for _, class := range errorClasses {
		if !errors.Is(err, class.sentinel) {
			continue
		}

		detail := dto.NewErrorDetail(class.code, apperrors.Message(err, class.fallback))
		if class.withDriverText {
			if details := apperrors.Details(err); len(details) > 0 {
				detail = detail.WithDetails(details)
			}
		}
		if class.status >= http.StatusInternalServerError {
			detail = detail.WithSeverity(dto.ErrorSeverityCritical)
		}

		c.AbortWithStatusJSON(class.status, dto.NewErrorResponse(detail))
		return
	}

	logger.Error().Err(err).Str("route", c.FullPath()).Msg("Unhandled error")
	detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Error interno del servidor").
		WithSeverity(dto.ErrorSeverityCritical)
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
}

// HandleBindError answers a request whose body or query failed to bind.
func HandleBindError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
}

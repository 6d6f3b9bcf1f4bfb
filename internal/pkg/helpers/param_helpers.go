package helpers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
)

// ParseInt64Param reads an integer path parameter
func ParseInt64Param(c *gin.Context, name string) (int64, error) {
	raw := strings.TrimSpace(c.Param(name))
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewBadRequestError(fmt.Sprintf("Parámetro %s inválido: %q", name, raw))
	}
	return v, nil
}

// ParseInt32Param reads a 32-bit integer path parameter
func ParseInt32Param(c *gin.Context, name string) (int32, error) {
	raw := strings.TrimSpace(c.Param(name))
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, apperrors.NewBadRequestError(fmt.Sprintf("Parámetro %s inválido: %q", name, raw))
	}
	return int32(v), nil
}

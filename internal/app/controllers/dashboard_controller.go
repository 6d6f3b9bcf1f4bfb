package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tallerdev/admtaller/internal/app/services"
	"github.com/tallerdev/admtaller/internal/middleware"
)

// DashboardController serves the home dashboard
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetDashboard returns the figures visible to the actor
// @Summary Dashboard
// @Description Catalog counts per program, or the actor's assigned and recorded workshops for instructors.
// @Tags dashboard
// @Produce json
// @Param actorId path int true "Acting user ID"
// @Success 200 {array} models.Dashboard
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /actors/{actorId}/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	dashboard, err := c.dashboardService.GetDashboard(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dashboard)
}

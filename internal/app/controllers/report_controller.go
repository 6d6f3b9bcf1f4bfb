package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/tallerdev/admtaller/internal/app/services"
)

// ReportController serves the management reports
type ReportController struct {
	reportService *services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// GetWorkshopValuation values every workshop at current prices
// @Summary Workshop valuation
// @Tags reports
// @Produce json
// @Param actorId path int true "Acting user ID"
// @Success 200 {array} models.WorkshopValuation
// @Failure 403 {object} dto.ErrorResponse "Unsupported role"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /actors/{actorId}/reports/workshop-valuation [get]
func (c *ReportController) GetWorkshopValuation(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	rows, err := c.reportService.GetWorkshopValuation(ctx.Request.Context(), actor)
	respondList(ctx, rows, err)
}

// GetSubjectBudget estimates the cost of the subjects scheduled in a year
// @Summary Subject budget
// @Tags reports
// @Produce json
// @Param actorId path int true "Acting user ID"
// @Param year path int true "Academic year"
// @Success 200 {array} models.SubjectBudget
// @Failure 400 {object} dto.ErrorResponse "Invalid year"
// @Failure 403 {object} dto.ErrorResponse "Unsupported role"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /actors/{actorId}/reports/subject-budget/{year} [get]
func (c *ReportController) GetSubjectBudget(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}
	year, ok := pathInt32(ctx, "year")
	if !ok {
		return
	}

	rows, err := c.reportService.GetSubjectBudget(ctx.Request.Context(), actor, year)
	respondList(ctx, rows, err)
}

// GetInstructorAssignments compares assigned and recorded workshops per instructor
// @Summary Instructor assignments
// @Tags reports
// @Produce json
// @Param actorId path int true "Acting user ID"
// @Param year path int true "Academic year"
// @Success 200 {array} models.InstructorAssignment
// @Failure 400 {object} dto.ErrorResponse "Invalid year"
// @Failure 403 {object} dto.ErrorResponse "Unsupported role"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /actors/{actorId}/reports/instructor-assignments/{year} [get]
func (c *ReportController) GetInstructorAssignments(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}
	year, ok := pathInt32(ctx, "year")
	if !ok {
		return
	}

	rows, err := c.reportService.GetInstructorAssignments(ctx.Request.Context(), actor, year)
	respondList(ctx, rows, err)
}

// GetProductConsumption sums the products recorded in a date range
// @Summary Product consumption
// @Tags reports
// @Produce json
// @Param actorId path int true "Acting user ID"
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string true "Last date (YYYY-MM-DD)"
// @Success 200 {array} models.ProductConsumption
// @Failure 400 {object} dto.ErrorResponse "Invalid range"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /actors/{actorId}/reports/product-summary [get]
func (c *ReportController) GetProductConsumption(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	rows, err := c.reportService.GetProductConsumption(ctx.Request.Context(), actor, ctx.Query("from"), ctx.Query("to"))
	respondList(ctx, rows, err)
}

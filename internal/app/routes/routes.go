package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/tallerdev/admtaller/internal/app/controllers"
	"github.com/tallerdev/admtaller/internal/middleware"
)

// Controllers groups the handlers mounted under /api/v1
type Controllers struct {
	Auth      *controllers.AuthController
	Profile   *controllers.ProfileController
	Subject   *controllers.SubjectController
	Workshop  *controllers.WorkshopController
	Product   *controllers.ProductController
	User      *controllers.UserController
	Schedule  *controllers.ScheduleController
	Record    *controllers.RecordController
	Param     *controllers.ParamController
	Catalog   *controllers.CatalogController
	Dashboard *controllers.DashboardController
	Report    *controllers.ReportController
	Health    *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c *Controllers, authMiddleware *middleware.AuthMiddleware) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", c.Health.Health)

	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.Auth.Login)
		auth.PUT("/password", c.Auth.ChangePassword)
	}

	// --- Actor-scoped routes ---
	// Every handler below reads :actorId and scopes its result to the
	// actor's profile.
	actor := v1.Group("/actors/:actorId")
	actor.Use(authMiddleware.ActorGuard())
	{
		actor.GET("/profile", c.Profile.GetProfile)
		actor.GET("/program", c.Profile.GetProgram)
		actor.GET("/profiles", c.Profile.GetProfiles)
		actor.GET("/programs", c.Profile.GetPrograms)

		actor.GET("/subjects", c.Subject.GetSubjects)
		actor.GET("/subjects/:sigla", c.Subject.GetSubject)
		actor.DELETE("/subjects/:sigla", c.Subject.DeleteSubject)

		actor.GET("/workshops/:workshopId", c.Workshop.GetWorkshop)

		actor.GET("/products", c.Product.GetProducts)
		actor.GET("/products/:productId", c.Product.GetProduct)
		actor.PUT("/products/:productId", c.Product.UpdateProduct)
		actor.DELETE("/products/:productId", c.Product.DeleteProduct)

		actor.GET("/users", c.User.GetUsers)
		actor.GET("/users/:userId", c.User.GetUser)
		actor.PUT("/users/:userId", c.User.UpdateUser)
		actor.DELETE("/users/:userId", c.User.DeleteUser)

		actor.GET("/schedules/:year/sections", c.Schedule.GetSections)
		actor.DELETE("/schedules/:year/sections/:period/:sigla/:section", c.Schedule.DeleteSection)
		actor.DELETE("/schedules/:year/sections/:period/:sigla/:section/workshops/:workshopId/:date", c.Schedule.DeleteWorkshopSchedule)

		actor.GET("/records/:year/sections", c.Record.GetAssignedSections)
		actor.GET("/records/:year/sections/:period/:sigla/:section/workshops", c.Record.GetSectionWorkshops)

		actor.GET("/dashboard", c.Dashboard.GetDashboard)

		reports := actor.Group("/reports")
		{
			reports.GET("/workshop-valuation", c.Report.GetWorkshopValuation)
			reports.GET("/subject-budget/:year", c.Report.GetSubjectBudget)
			reports.GET("/instructor-assignments/:year", c.Report.GetInstructorAssignments)
			reports.GET("/product-summary", c.Report.GetProductConsumption)
		}
	}

	// --- Unscoped routes ---
	users := v1.Group("/users")
	{
		users.POST("", c.User.CreateUser)
		users.GET("/by-login/:login", c.User.GetUserIDByLogin)
	}

	subjects := v1.Group("/subjects")
	{
		subjects.POST("", c.Subject.CreateSubject)
		subjects.PUT("/:sigla", c.Subject.UpdateSubject)
		subjects.GET("/:sigla/workshops", c.Workshop.GetWorkshopsBySubject)
	}

	workshops := v1.Group("/workshops")
	{
		workshops.POST("", c.Workshop.CreateWorkshop)
		workshops.PUT("/:workshopId", c.Workshop.UpdateWorkshop)
		workshops.DELETE("/:workshopId", c.Workshop.DeleteWorkshop)

		// Product lines
		workshops.GET("/:workshopId/products", c.Workshop.GetWorkshopProducts)
		workshops.POST("/:workshopId/products", c.Workshop.CreateWorkshopProduct)
		workshops.GET("/:workshopId/products/:productId/groups/:groupCode", c.Workshop.GetWorkshopProduct)
		workshops.PUT("/:workshopId/products/:productId/groups/:groupCode", c.Workshop.UpdateWorkshopProduct)
		workshops.DELETE("/:workshopId/products/:productId/groups/:groupCode", c.Workshop.DeleteWorkshopProduct)
	}

	v1.POST("/products", c.Product.CreateProduct)

	schedules := v1.Group("/schedules")
	{
		schedules.POST("/sections", c.Schedule.CreateSection)
		schedules.GET("/:year/sections/:period/:sigla/:section/workshops", c.Schedule.GetWorkshopSchedules)
		schedules.GET("/:year/sections/:period/:sigla/:section/workshops/:workshopId/:date", c.Schedule.GetWorkshopSchedule)
		schedules.POST("/workshops", c.Schedule.CreateWorkshopSchedule)
		schedules.PUT("/workshops", c.Schedule.UpdateWorkshopInstructor)
	}

	v1.POST("/records", c.Record.Register)

	params := v1.Group("/params")
	{
		params.GET("", c.Param.GetParams)
		params.GET("/:code", c.Param.GetParam)
		params.PUT("/:code", c.Param.UpdateParam)
	}
	v1.GET("/academic-year", c.Param.GetAcademicYear)
	v1.GET("/periods", c.Param.GetPeriods)
	v1.GET("/periods/:code", c.Param.GetPeriod)

	v1.GET("/grouping-tags", c.Catalog.GetGroupingTags)
	v1.GET("/units", c.Catalog.GetUnits)
	v1.GET("/product-categories", c.Catalog.GetProductCategories)
}

package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/tallerdev/admtaller/internal/app/controllers"
	appMigrations "github.com/tallerdev/admtaller/internal/app/migrations"
	appRepos "github.com/tallerdev/admtaller/internal/app/repositories"
	appRoutes "github.com/tallerdev/admtaller/internal/app/routes"
	appServices "github.com/tallerdev/admtaller/internal/app/services"
	"github.com/tallerdev/admtaller/internal/config"
	"github.com/tallerdev/admtaller/internal/db"
	appMiddleware "github.com/tallerdev/admtaller/internal/middleware"
	pkgAuth "github.com/tallerdev/admtaller/internal/pkg/auth"
	"github.com/tallerdev/admtaller/internal/pkg/helpers"
	"github.com/tallerdev/admtaller/internal/pkg/logger"
	"github.com/tallerdev/admtaller/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	DB             *db.PostgresDB
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    *appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.ConfigFromStrings(cfg.Logging.Level, cfg.Logging.Format))

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the connection pool, applies the embedded migrations
// and seeds the admin user.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	if cfg.Database.MigrateOnStart {
		lgr.Info().Msg("Running database migrations...")
		if err := appMigrations.NewMigrator(cfg.GetPostgresConnectionString()).Up(); err != nil {
			lgr.Error().Err(err).Msg("Database migration error")
			database.Close()
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	users := appRepos.NewUserRepository(database.Pool)
	if err := seed.CreateDefaultData(ctx, users, cfg.Seed.AdminLogin, cfg.Seed.AdminPassword, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{DB: database, Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool, database)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 8*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, cfg.Auth.EnforceActorToken)

	svc := deps.Services
	deps.Controllers = &appRoutes.Controllers{
		Auth:      appControllers.NewAuthController(svc.AuthService, lgr),
		Profile:   appControllers.NewProfileController(svc.ProfileService, lgr),
		Subject:   appControllers.NewSubjectController(svc.SubjectService, lgr),
		Workshop:  appControllers.NewWorkshopController(svc.WorkshopService, lgr),
		Product:   appControllers.NewProductController(svc.ProductService, lgr),
		User:      appControllers.NewUserController(svc.UserService, lgr),
		Schedule:  appControllers.NewScheduleController(svc.ScheduleService, lgr),
		Record:    appControllers.NewRecordController(svc.RecordService, lgr),
		Param:     appControllers.NewParamController(svc.ParamService, lgr),
		Catalog:   appControllers.NewCatalogController(svc.CatalogService),
		Dashboard: appControllers.NewDashboardController(svc.DashboardService),
		Report:    appControllers.NewReportController(svc.ReportService),
		Health:    appControllers.NewHealthController(database, lgr),
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := appMiddleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		logger.GinMiddleware(),
		appMiddleware.Metrics(),
		appMiddleware.RequestTimeout(cfg.RequestTimeout()),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	if cfg.Metrics.Enabled {
		router.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router, nil
}

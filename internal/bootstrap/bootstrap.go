// Package bootstrap wires configuration, database, repositories, services
// and controllers together into a runnable application.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/edudata/scedapi/docs" // Import generated swagger docs
	appControllers "github.com/edudata/scedapi/internal/app/controllers"
	appMigrations "github.com/edudata/scedapi/internal/app/migrations"
	appRepos "github.com/edudata/scedapi/internal/app/repositories"
	appRoutes "github.com/edudata/scedapi/internal/app/routes"
	appServices "github.com/edudata/scedapi/internal/app/services"
	"github.com/edudata/scedapi/internal/config"
	"github.com/edudata/scedapi/internal/db"
	"github.com/edudata/scedapi/internal/middleware"
	"github.com/edudata/scedapi/internal/pkg/filestorage"
	"github.com/edudata/scedapi/internal/pkg/logger"
	"github.com/edudata/scedapi/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseService           appServices.CourseService
	CertificationService    appServices.CertificationService
	ImportService           appServices.ImportService
	StatsService            appServices.StatsService
	SetupService            appServices.SetupService
	CourseController        *appControllers.CourseController
	CertificationController *appControllers.CertificationController
	AdminController         *appControllers.AdminController
	SetupController         *appControllers.SetupController
	HealthController        *appControllers.HealthController
	Repos                   *appRepos.Repositories
	FileStorage             *filestorage.LocalStorage
	Logger                  zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds baseline data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	// Seed after migrations; failure is logged but does not block startup
	repos := appRepos.NewRepositories(database.Pool)
	if _, err := seed.SeedDatabase(context.Background(), repos.CourseRepository, repos.CertificationRepository); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed baseline data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.CertificationService = appServices.NewCertificationService(deps.Repos.CertificationRepository)
	deps.ImportService = appServices.NewImportService(deps.Repos.CourseRepository, deps.Repos.CertificationRepository)
	deps.StatsService = appServices.NewStatsService(deps.Repos.CourseRepository, deps.Repos.CertificationRepository)
	deps.SetupService = appServices.NewSetupService(deps.Repos.SchemaRepository, deps.Repos.CourseRepository, deps.Repos.CertificationRepository)

	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.CertificationController = appControllers.NewCertificationController(deps.CertificationService)
	deps.AdminController = appControllers.NewAdminController(deps.ImportService, deps.StatsService, deps.FileStorage, cfg.MaxUploadBytes())
	deps.SetupController = appControllers.NewSetupController(deps.SetupService)
	deps.HealthController = appControllers.NewHealthController(database)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.CourseController,
		deps.CertificationController,
		deps.AdminController,
		deps.SetupController,
		deps.HealthController,
	)

	return router
}

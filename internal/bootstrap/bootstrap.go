package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/classtap/classtap/internal/app/controllers"
	appMigrations "github.com/classtap/classtap/internal/app/migrations"
	appRepos "github.com/classtap/classtap/internal/app/repositories"
	appRoutes "github.com/classtap/classtap/internal/app/routes"
	appServices "github.com/classtap/classtap/internal/app/services"
	"github.com/classtap/classtap/internal/config"
	"github.com/classtap/classtap/internal/db"
	appMiddleware "github.com/classtap/classtap/internal/middleware"
	"github.com/classtap/classtap/internal/pkg/live"
	"github.com/classtap/classtap/internal/pkg/logger"
	"github.com/classtap/classtap/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	DirectoryService     *appServices.DirectoryService
	AttendanceService    *appServices.AttendanceService
	StudentController    *appControllers.StudentController
	CourseController     *appControllers.CourseController
	ScheduleController   *appControllers.ScheduleController
	AttendanceController *appControllers.AttendanceController
	Hub                  *live.Hub
	Repos                *appRepos.Repositories
	Logger               zerolog.Logger

	dbPool *pgxpool.Pool
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := strings.ToLower(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "console"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", logLevel).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds demo data when enabled.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Database.SeedDemoData {
		if err := seed.CreateDemoData(context.Background(), dbPool, lgr); err != nil {
			// Seed problems should not prevent the server from starting
			lgr.Error().Err(err).Msg("Failed to seed demo data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, dbPool: dbPool}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.Hub = live.NewHub(lgr)
	go deps.Hub.Run()

	deps.DirectoryService = appServices.NewDirectoryService(
		deps.Repos.StudentRepository,
		deps.Repos.CourseRepository,
		deps.Repos.ScheduleRepository,
	)
	deps.AttendanceService = appServices.NewAttendanceService(
		deps.Repos.StudentRepository,
		deps.Repos.ScheduleRepository,
		deps.Repos.CourseRepository,
		deps.Repos.AttendanceRepository,
		deps.Hub,
		lgr,
	)

	deps.StudentController = appControllers.NewStudentController(deps.DirectoryService)
	deps.CourseController = appControllers.NewCourseController(deps.DirectoryService)
	deps.ScheduleController = appControllers.NewScheduleController(deps.DirectoryService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)

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
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr, "/health", "/metrics"))

	// Scan clients are kiosks and dashboards served from other origins
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "X-Request-ID")
	router.Use(cors.New(corsConfig))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.CourseController,
		deps.ScheduleController,
		deps.AttendanceController,
		deps.Hub,
		deps.dbPool,
	)

	return router
}

package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/arnav/teamforge/docs" // generated swagger docs
	appControllers "github.com/arnav/teamforge/internal/app/controllers"
	appMigrations "github.com/arnav/teamforge/internal/app/migrations"
	appRepos "github.com/arnav/teamforge/internal/app/repositories"
	appRoutes "github.com/arnav/teamforge/internal/app/routes"
	appServices "github.com/arnav/teamforge/internal/app/services"
	"github.com/arnav/teamforge/internal/config"
	"github.com/arnav/teamforge/internal/db"
	appMiddleware "github.com/arnav/teamforge/internal/middleware"
	pkgAuth "github.com/arnav/teamforge/internal/pkg/auth"
	"github.com/arnav/teamforge/internal/pkg/logger"
	"github.com/arnav/teamforge/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos             *appRepos.Repositories
	Services          *appServices.Services
	StudentController *appControllers.StudentController
	AdminController   *appControllers.AdminController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	AdminMiddleware   *appMiddleware.AdminMiddleware
	JWTService        *pkgAuth.JWTService
	Logger            zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations, and
// seeds the development roster.
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

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if strings.ToLower(cfg.Server.Mode) != "production" {
		if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
			// Seeding is a development convenience; startup continues.
			lgr.Error().Err(err).Msg("Failed to seed development roster, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.Services = appServices.NewServices(deps.Repos, lgr)

	tokenExp, err := time.ParseDuration(cfg.JWT.TokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT token expiration: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    tokenExp,
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.AdminMiddleware = appMiddleware.NewAdminMiddleware(cfg.Admin.KeyHash)

	deps.StudentController = appControllers.NewStudentController(deps.Services.Preference, deps.Services.Report)
	deps.AdminController = appControllers.NewAdminController(deps.Services.Selection, deps.Services.Team, deps.Services.Report)

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

	router := gin.Default()

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.AdminController,
		deps.AuthMiddleware,
		deps.AdminMiddleware,
	)

	return router
}

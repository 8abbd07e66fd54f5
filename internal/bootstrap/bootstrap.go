package bootstrap

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/erenyil/enrollhub/internal/app/controllers"
	appMigrations "github.com/erenyil/enrollhub/internal/app/migrations"
	appRepos "github.com/erenyil/enrollhub/internal/app/repositories"
	appRoutes "github.com/erenyil/enrollhub/internal/app/routes"
	appServices "github.com/erenyil/enrollhub/internal/app/services"
	"github.com/erenyil/enrollhub/internal/config"
	"github.com/erenyil/enrollhub/internal/db"
	appMiddleware "github.com/erenyil/enrollhub/internal/middleware"
	pkgAuth "github.com/erenyil/enrollhub/internal/pkg/auth"
	"github.com/erenyil/enrollhub/internal/pkg/helpers"
	"github.com/erenyil/enrollhub/internal/pkg/logger"
	"github.com/erenyil/enrollhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService       appServices.StudentService
	AuthService          appServices.AuthService
	EnrollmentController *appControllers.EnrollmentController
	AuthController       *appControllers.AuthController
	DashboardController  *appControllers.DashboardController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	Sessions             *pkgAuth.SessionService
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A local .env file overrides nothing explicitly exported but feeds the
	// env-tag config overrides below.
	_ = godotenv.Load()

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
// seeds the bootstrap admin account when configured.
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
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.EnsureAdminAccount(context.Background(), dbPool, cfg, lgr); err != nil {
		// Startup continues; the provisioning CLIs cover the same ground.
		lgr.Error().Err(err).Msg("Failed to seed admin account, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, middleware and
// controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.Sessions = pkgAuth.NewSessionService(pkgAuth.SessionConfig{
		SecretKey:   cfg.Session.Secret,
		SessionTTL:  helpers.ParseDuration(cfg.Session.TTL, 12*time.Hour),
		TokenIssuer: cfg.Session.Issuer,
	})

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, lgr)
	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Sessions, deps.AuthService, cfg.Session.CookieName, lgr)

	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.StudentService)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.Sessions, cfg.Session.CookieName)
	deps.DashboardController = appControllers.NewDashboardController(deps.StudentService)

	return deps, nil
}

// SetupRouter configures the Gin engine with templates, static assets and
// routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	router.SetFuncMap(template.FuncMap{
		"date": func(t time.Time) string {
			return t.Format("Jan 2, 2006")
		},
		"datetime": func(t time.Time) string {
			return t.Format("Jan 2, 2006 15:04")
		},
	})
	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/static", "web/static")

	appRoutes.SetupRouter(router,
		deps.EnrollmentController,
		deps.AuthController,
		deps.DashboardController,
		deps.AuthMiddleware,
	)

	router.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", gin.H{
			"title": "Not Found",
		})
	})

	return router
}

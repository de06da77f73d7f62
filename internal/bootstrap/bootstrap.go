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
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/teczka-budowlanca/backend/internal/app/controllers"
	appMigrations "github.com/teczka-budowlanca/backend/internal/app/migrations"
	appRepos "github.com/teczka-budowlanca/backend/internal/app/repositories"
	appRoutes "github.com/teczka-budowlanca/backend/internal/app/routes"
	appServices "github.com/teczka-budowlanca/backend/internal/app/services"
	"github.com/teczka-budowlanca/backend/internal/config"
	"github.com/teczka-budowlanca/backend/internal/db"
	appMiddleware "github.com/teczka-budowlanca/backend/internal/middleware"
	"github.com/teczka-budowlanca/backend/internal/pkg/assistant"
	"github.com/teczka-budowlanca/backend/internal/pkg/helpers"
	"github.com/teczka-budowlanca/backend/internal/pkg/identity"
	"github.com/teczka-budowlanca/backend/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	NoteService         appServices.NoteService
	ChecklistService    appServices.ChecklistService
	NoteController      *appControllers.NoteController
	AssistantController *appControllers.AssistantController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	Verifier            identity.Verifier
	Registry            *prometheus.Registry
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// A local .env file, when present, feeds the environment before config load.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Failed to load .env file")
	}

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

// SetupDatabase establishes the database connection and runs migrations.
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
	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	queryTimeout := helpers.ParseDuration(cfg.Database.QueryTimeout, 5*time.Second)
	deps.Repos = appRepos.NewRepositories(dbPool, queryTimeout)

	deps.Verifier = identity.NewJWTVerifier(identity.JWTConfig{
		SecretKey: cfg.Auth.TokenSecret,
		Issuer:    cfg.Auth.Issuer,
	})
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Verifier)

	var assistantClient assistant.Client = assistant.Disabled{}
	if cfg.Assistant.APIKey != "" {
		client, err := assistant.NewHTTPClient(assistant.Config{
			BaseURL:   cfg.Assistant.BaseURL,
			APIKey:    cfg.Assistant.APIKey,
			Model:     cfg.Assistant.Model,
			MaxTokens: cfg.Assistant.MaxTokens,
			Timeout:   helpers.ParseDuration(cfg.Assistant.Timeout, 30*time.Second),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize assistant client: %w", err)
		}
		assistantClient = client
	} else {
		lgr.Warn().Msg("Assistant API key not set, AI endpoints will report the service unavailable")
	}

	deps.NoteService = appServices.NewNoteService(deps.Repos.NoteRepository)
	deps.ChecklistService = appServices.NewChecklistService(assistantClient)

	deps.NoteController = appControllers.NewNoteController(deps.NoteService)
	deps.AssistantController = appControllers.NewAssistantController(deps.ChecklistService)

	deps.Registry = prometheus.NewRegistry()
	deps.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return deps, nil
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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.CORS())

	metrics, err := appMiddleware.NewMetricsMiddleware(deps.Registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register HTTP metrics: %w", err)
	}
	router.Use(metrics.Handler())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupMetrics(router, deps.Registry)
	appRoutes.SetupRouter(router,
		deps.NoteController,
		deps.AssistantController,
		deps.AuthMiddleware,
	)

	return router, nil
}

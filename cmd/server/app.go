package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/quizcrawler/quizcrawler-api/internal/config"
	"github.com/quizcrawler/quizcrawler-api/internal/generation"
	"github.com/quizcrawler/quizcrawler-api/internal/platform/gemini"
	"github.com/quizcrawler/quizcrawler-api/internal/platform/googleauth"
	"github.com/quizcrawler/quizcrawler-api/internal/platform/openai"
	"github.com/quizcrawler/quizcrawler-api/internal/platform/postgres"
	"github.com/quizcrawler/quizcrawler-api/internal/service"
	"github.com/quizcrawler/quizcrawler-api/internal/service/auth"
	"github.com/quizcrawler/quizcrawler-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	userStore store.UserStore
	quizStore store.SavedQuizStore

	// Services
	jwtService    auth.JWTService
	authService   service.AuthService
	quizService   service.QuizService
	ratingService service.RatingService
}

// newApplication creates a new application instance with all dependencies
// initialized. Configuration, logging, and the database connection must be
// established first.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"session_lifetime_minutes", cfg.Auth.SessionLifetimeMinutes)

	app.userStore = postgres.NewPostgresUserStore(db)
	app.quizStore = postgres.NewPostgresSavedQuizStore(db)

	userInfoClient, err := googleauth.NewClient(
		logger.With("component", "googleauth"),
		cfg.Auth.GoogleUserInfoURL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Google userinfo client: %w", err)
	}
	app.authService = service.NewAuthService(userInfoClient, app.userStore, app.jwtService)

	completionClient, err := setupCompletionClient(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize completion client: %w", err)
	}

	generator, err := generation.NewQuizGenerator(
		logger.With("component", "quiz_generator"),
		completionClient,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize quiz generator: %w", err)
	}
	logger.Info("Quiz generator initialized", "provider", cfg.LLM.Provider, "model", cfg.LLM.ModelName)

	app.quizService = service.NewQuizService(
		generator,
		app.quizStore,
		time.Duration(cfg.LLM.RequestTimeoutSeconds)*time.Second,
	)
	app.ratingService = service.NewRatingService(app.userStore)

	logger.Info("Application initialized successfully")
	return app, nil
}

// setupCompletionClient selects the completion backend from configuration.
func setupCompletionClient(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
) (generation.CompletionClient, error) {
	switch cfg.LLM.Provider {
	case "gemini":
		return gemini.NewClient(ctx, logger.With("component", "gemini_client"), cfg.LLM)
	case "openai":
		return openai.NewClient(logger.With("component", "openai_client"), cfg.LLM)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLM.Provider)
	}
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}

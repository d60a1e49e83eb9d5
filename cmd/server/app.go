package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/folio-api/internal/config"
	"github.com/phrazzld/folio-api/internal/platform/gemini"
	"github.com/phrazzld/folio-api/internal/platform/postgres"
	"github.com/phrazzld/folio-api/internal/redact"
	"github.com/phrazzld/folio-api/internal/service"
	"github.com/phrazzld/folio-api/internal/service/auth"
	"github.com/phrazzld/folio-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore

	jwtService     auth.JWTService
	aiClient       *gemini.Client
	enhanceService service.EnhanceService
}

// newApplication creates a new application instance with all dependencies initialized.
// The database handle must already be open; it is closed by cleanup.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
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
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.userStore = postgres.NewPostgresUserStore(db)

	app.aiClient, err = gemini.New(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AI client: %w", err)
	}

	app.enhanceService, err = service.NewEnhanceService(
		app.aiClient,
		app.aiClient.Catalog(),
		service.EnhanceServiceOptions{
			ProviderName:     gemini.ProviderName,
			Configured:       app.aiClient.Configured(),
			AllowDegraded:    !cfg.IsProduction(),
			EnhanceMaxTokens: cfg.LLM.EnhanceMaxTokens,
			SkillsMaxTokens:  cfg.LLM.SkillsMaxTokens,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create enhance service: %w", err)
	}

	logger.Info("application initialized",
		"ai_configured", app.aiClient.Configured(),
		"model", app.aiClient.Catalog().Current(),
		"degraded_mode_allowed", !cfg.IsProduction())
	return app, nil
}

// Run starts the HTTP server and blocks until ctx is canceled or the server fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", redact.Error(err))
		}
	}

	app.logger.Info("application shutdown completed")
}

package main

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/folio-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: config.EnvTest,
		Server: config.ServerConfig{
			Port:                  8080,
			LogLevel:              "info",
			RequestTimeoutSeconds: 5,
		},
		Database: config.DatabaseConfig{URL: "postgres://localhost:5432/folio_test"},
		Auth: config.AuthConfig{
			JWTSecret:            "test-jwt-secret-that-is-32-chars-long",
			TokenLifetimeMinutes: 60,
		},
		LLM: config.LLMConfig{
			ModelName:        "gemini-1.5-flash",
			ModelPreferences: []string{"gemini-1.5-flash", "gemini-1.5-pro"},
			EnhanceMaxTokens: 350,
			SkillsMaxTokens:  200,
		},
	}
}

func TestNewApplication(t *testing.T) {
	cfg := testConfig()
	// sql.Open validates its arguments without connecting
	db, err := sql.Open("pgx", cfg.Database.URL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	app, err := newApplication(context.Background(), cfg, testLogger(), db)

	require.NoError(t, err)
	assert.NotNil(t, app.jwtService)
	assert.NotNil(t, app.userStore)
	assert.NotNil(t, app.enhanceService)
	require.NotNil(t, app.aiClient)
	assert.False(t, app.aiClient.Configured())

	status := app.enhanceService.Status(context.Background())
	assert.False(t, status.Configured)
	assert.Equal(t, "gemini", status.Provider)
	assert.Equal(t, "gemini-1.5-flash", status.Model)
}

func TestNewApplicationRejectsWeakSecret(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.JWTSecret = "short"

	_, err := newApplication(context.Background(), cfg, testLogger(), nil)

	assert.ErrorContains(t, err, "JWT service")
}

func TestOpenDatabase(t *testing.T) {
	db, err := openDatabase(testConfig())

	require.NoError(t, err)
	assert.NoError(t, db.Close())
}

package generation_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/folio-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	tests := []struct {
		name   string
		kind   generation.Kind
		status int
		code   string
	}{
		{"config_missing", generation.KindConfigMissing, http.StatusInternalServerError, "CONFIG_MISSING"},
		{"empty_content", generation.KindEmptyContent, http.StatusBadGateway, "EMPTY_CONTENT"},
		{"unauthorized", generation.KindProviderUnauthorized, http.StatusUnauthorized, "PROVIDER_UNAUTHORIZED"},
		{"rate_limited", generation.KindRateLimited, http.StatusTooManyRequests, "RATE_LIMITED"},
		{"content_blocked", generation.KindContentBlocked, http.StatusBadRequest, "CONTENT_BLOCKED"},
		{"insufficient_credits", generation.KindInsufficientCredits, http.StatusPaymentRequired, "INSUFFICIENT_CREDITS"},
		{"provider_error", generation.KindProviderError, http.StatusInternalServerError, "AI_PROVIDER_ERROR"},
		{"unknown_kind", generation.Kind("Bogus"), http.StatusInternalServerError, "AI_PROVIDER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := generation.NewError(tt.kind, "raw provider text")

			assert.Equal(t, tt.status, err.HTTPStatus)
			assert.Equal(t, tt.code, err.Code)
			assert.NotEmpty(t, err.Message)
			assert.Equal(t, "raw provider text", err.ProviderMessage)
			assert.Contains(t, err.Error(), tt.code)
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("enhance failed: %w", generation.NewError(generation.KindRateLimited, "429"))

	assert.ErrorIs(t, err, generation.ErrRateLimited)
	assert.NotErrorIs(t, err, generation.ErrInsufficientCredits)
	assert.NotErrorIs(t, err, errors.New("RATE_LIMITED"))
}

func TestAsError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, generation.AsError(nil))
		assert.Equal(t, generation.Kind(""), generation.KindOf(nil))
	})

	t.Run("wrapped_domain_error", func(t *testing.T) {
		original := generation.NewError(generation.KindContentBlocked, "SAFETY")
		got := generation.AsError(fmt.Errorf("wrap: %w", original))

		require.NotNil(t, got)
		assert.Same(t, original, got)
		assert.Equal(t, generation.KindContentBlocked, generation.KindOf(original))
	})

	t.Run("plain_error", func(t *testing.T) {
		got := generation.AsError(errors.New("connection reset"))

		require.NotNil(t, got)
		assert.Equal(t, generation.KindProviderError, got.Kind)
		assert.Equal(t, http.StatusInternalServerError, got.HTTPStatus)
		assert.Equal(t, "connection reset", got.ProviderMessage)
	})
}

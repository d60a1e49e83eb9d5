package gemini_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/phrazzld/folio-api/internal/config"
	"github.com/phrazzld/folio-api/internal/generation"
	"github.com/phrazzld/folio-api/internal/platform/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeModels records GenerateContent calls and replays a canned response.
type fakeModels struct {
	resp *genai.GenerateContentResponse
	err  error

	calls      int
	lastModel  string
	lastConfig *genai.GenerateContentConfig
	lastPrompt string
}

func (f *fakeModels) GenerateContent(
	_ context.Context,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.lastModel = model
	f.lastConfig = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.lastPrompt = contents[0].Parts[0].Text
	}
	return f.resp, f.err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{Role: "model"}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: content, FinishReason: genai.FinishReasonStop}},
	}
}

func newTestClient(t *testing.T, models gemini.ContentGenerator, lister gemini.ModelLister) *gemini.Client {
	t.Helper()
	catalog := gemini.NewModelCatalog(lister, "gemini-1.5-flash", []string{"gemini-1.5-pro"}, testLogger())
	client, err := gemini.NewClient(models, catalog, testLogger())
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	catalog := gemini.NewModelCatalog(nil, "gemini-1.5-flash", nil, testLogger())

	_, err := gemini.NewClient(&fakeModels{}, catalog, nil)
	assert.ErrorIs(t, err, gemini.ErrNilLogger)

	_, err = gemini.NewClient(&fakeModels{}, nil, testLogger())
	assert.ErrorIs(t, err, gemini.ErrInvalidConfig)
}

func TestNewWithoutAPIKey(t *testing.T) {
	client, err := gemini.New(context.Background(), config.LLMConfig{ModelName: "gemini-1.5-flash"}, testLogger())
	require.NoError(t, err)

	assert.False(t, client.Configured())
	assert.Equal(t, "gemini-1.5-flash", client.Catalog().Current())
	assert.Empty(t, client.Catalog().Available(context.Background()))

	_, err = client.Generate(context.Background(), "prompt", 100)
	assert.ErrorIs(t, err, generation.ErrConfigMissing)
}

func TestGenerateConfigMissing(t *testing.T) {
	lister := &fakeLister{names: []string{"models/gemini-1.5-pro"}}
	client := newTestClient(t, nil, lister)

	_, err := client.Generate(context.Background(), "prompt", 100)

	require.Error(t, err)
	domainErr := generation.AsError(err)
	assert.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
	assert.Equal(t, "CONFIG_MISSING", domainErr.Code)
	assert.Zero(t, lister.callCount(), "no provider call without a credential")
}

func TestGenerateSuccess(t *testing.T) {
	models := &fakeModels{resp: textResponse("Seasoned engineer ", "building reliable systems.")}
	lister := &fakeLister{names: []string{"models/gemini-1.5-pro"}}
	client := newTestClient(t, models, lister)

	text, err := client.Generate(context.Background(), "Enhance this", 350)

	require.NoError(t, err)
	assert.Equal(t, "Seasoned engineer building reliable systems.", text)
	assert.Equal(t, 1, models.calls)
	assert.Equal(t, "gemini-1.5-pro", models.lastModel)
	assert.Equal(t, "Enhance this", models.lastPrompt)

	require.NotNil(t, models.lastConfig)
	assert.Equal(t, int32(350), models.lastConfig.MaxOutputTokens)
	require.NotNil(t, models.lastConfig.Temperature)
	assert.InDelta(t, 0.7, *models.lastConfig.Temperature, 1e-6)
	require.NotNil(t, models.lastConfig.TopP)
	assert.InDelta(t, 0.8, *models.lastConfig.TopP, 1e-6)
	require.NotNil(t, models.lastConfig.TopK)
	assert.InDelta(t, 40, *models.lastConfig.TopK, 1e-6)
}

func TestGenerateFailures(t *testing.T) {
	tests := []struct {
		name   string
		models *fakeModels
		want   generation.Kind
	}{
		{
			name:   "nil_response",
			models: &fakeModels{},
			want:   generation.KindEmptyContent,
		},
		{
			name:   "no_candidates",
			models: &fakeModels{resp: &genai.GenerateContentResponse{}},
			want:   generation.KindEmptyContent,
		},
		{
			name:   "blank_text",
			models: &fakeModels{resp: textResponse("  ", "\n")},
			want:   generation.KindEmptyContent,
		},
		{
			name: "safety_finish_reason",
			models: &fakeModels{resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
			}},
			want: generation.KindContentBlocked,
		},
		{
			name: "prompt_blocked",
			models: &fakeModels{resp: &genai.GenerateContentResponse{
				PromptFeedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: genai.BlockedReasonSafety},
			}},
			want: generation.KindContentBlocked,
		},
		{
			name:   "invalid_key",
			models: &fakeModels{err: errors.New("Error 400, Message: API key not valid, Details: [reason: API_KEY_INVALID]")},
			want:   generation.KindProviderUnauthorized,
		},
		{
			name:   "quota",
			models: &fakeModels{err: errors.New("Error 429, Message: You exceeded your current quota")},
			want:   generation.KindInsufficientCredits,
		},
		{
			name:   "unknown",
			models: &fakeModels{err: errors.New("connection reset by peer")},
			want:   generation.KindProviderError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.models, nil)

			text, err := client.Generate(context.Background(), "prompt", 100)

			assert.Empty(t, text)
			require.Error(t, err)
			assert.Equal(t, tt.want, generation.KindOf(err))
			assert.Equal(t, 1, tt.models.calls, "exactly one attempt")
		})
	}
}

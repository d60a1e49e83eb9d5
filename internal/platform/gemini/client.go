package gemini

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/folio-api/internal/config"
	"github.com/phrazzld/folio-api/internal/generation"
	"github.com/phrazzld/folio-api/internal/redact"
	"github.com/zeebo/blake3"
	"google.golang.org/genai"
)

// ProviderName identifies this adapter in status reports.
const ProviderName = "gemini"

// Sampling parameters applied to every request.
const (
	temperature float32 = 0.7
	topP        float32 = 0.8
	topK        float32 = 40
)

// ContentGenerator is the part of the genai models service used by Client.
// *genai.Models satisfies it.
type ContentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Client implements generation.Generator on top of the Gemini API.
type Client struct {
	models  ContentGenerator
	catalog *ModelCatalog
	logger  *slog.Logger
}

var _ generation.Generator = (*Client)(nil)

// NewClient creates a Client that sends requests through models using the
// model chosen by catalog. A nil models yields a disabled client whose every
// Generate call fails with KindConfigMissing.
func NewClient(models ContentGenerator, catalog *ModelCatalog, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}
	if catalog == nil {
		return nil, fmt.Errorf("%w: model catalog cannot be nil", ErrInvalidConfig)
	}

	return &Client{
		models:  models,
		catalog: catalog,
		logger:  logger.With("component", "gemini_client"),
	}, nil
}

// New builds a Client and its ModelCatalog from cfg. Without an API key the
// returned client is disabled rather than an error, so the host service can
// start without AI features.
func New(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}

	if cfg.GeminiAPIKey == "" {
		logger.WarnContext(ctx, "gemini API key not configured, AI features disabled")
		return NewClient(nil, NewModelCatalog(nil, cfg.ModelName, cfg.ModelPreferences, logger), logger)
	}

	sdk, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", ErrInvalidConfig, redact.Error(err))
	}

	catalog := NewModelCatalog(sdkModelLister{models: sdk.Models}, cfg.ModelName, cfg.ModelPreferences, logger)
	return NewClient(sdk.Models, catalog, logger)
}

// Configured reports whether a credential is available.
func (c *Client) Configured() bool {
	return c.models != nil
}

// Catalog returns the model catalog used by the client.
func (c *Client) Catalog() *ModelCatalog {
	return c.catalog
}

// Generate sends prompt to Gemini and returns the text of the first
// candidate. It makes exactly one provider call and never retries.
func (c *Client) Generate(ctx context.Context, prompt string, maxOutputTokens int) (string, error) {
	if c.models == nil {
		return "", generation.NewError(generation.KindConfigMissing, "")
	}

	model := c.catalog.Resolve(ctx, false)
	log := c.logger.With(
		"model", model,
		"prompt_digest", promptDigest(prompt),
		"prompt_length", len(prompt),
		"max_output_tokens", maxOutputTokens,
	)

	resp, err := c.models.GenerateContent(ctx, model, genai.Text(prompt), generationConfig(maxOutputTokens))
	if err != nil {
		classified := Classify(err)
		log.WarnContext(ctx, "gemini request failed",
			"code", classified.Code,
			"error", redact.Error(err))
		return "", classified
	}

	text, err := responseText(resp)
	if err != nil {
		classified := Classify(err)
		log.WarnContext(ctx, "gemini returned no usable content",
			"code", classified.Code,
			"error", redact.Error(err))
		return "", classified
	}

	log.DebugContext(ctx, "gemini request succeeded", "response_length", len(text))
	return text, nil
}

func generationConfig(maxOutputTokens int) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(temperature),
		TopP:            genai.Ptr(topP),
		TopK:            genai.Ptr(topK),
		MaxOutputTokens: int32(maxOutputTokens),
	}
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", generation.NewError(generation.KindEmptyContent, "nil response")
	}

	if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != "" {
		return "", generation.NewError(generation.KindContentBlocked,
			fmt.Sprintf("prompt blocked: %s %s", fb.BlockReason, fb.BlockReasonMessage))
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", generation.NewError(generation.KindEmptyContent, "no candidates")
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", generation.NewError(generation.KindContentBlocked, "finish reason SAFETY")
	}

	var b strings.Builder
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part != nil && !part.Thought {
				b.WriteString(part.Text)
			}
		}
	}

	text := b.String()
	if strings.TrimSpace(text) == "" {
		return "", generation.NewError(generation.KindEmptyContent, "blank candidate")
	}
	return text, nil
}

// promptDigest identifies a prompt in logs without recording its content.
func promptDigest(prompt string) string {
	sum := blake3.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:8])
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/folio-api/internal/generation"
	"github.com/phrazzld/folio-api/internal/platform/logger"
)

// Features reported by Status.
const (
	FeatureTextEnhancement = "text_enhancement"
	FeatureSkillGeneration = "skill_generation"
)

const serviceName = "enhance"

// Enhancement is the result of rewriting user text.
type Enhancement struct {
	Original  string
	Enhanced  string
	WordCount int
	// Fallback is set when the text was produced offline after a quota error.
	Fallback bool
}

// SkillSuggestion is the result of a skill generation call.
type SkillSuggestion struct {
	Prompt   string
	Skills   []string
	Fallback bool
}

// AIStatus describes the provider wiring.
type AIStatus struct {
	Configured      bool
	Provider        string
	Model           string
	AvailableModels []string
	Features        []string
}

// EnhanceService exposes the AI content operations.
type EnhanceService interface {
	// Enhance rewrites text into a polished paragraph for task, which must be
	// one of the enhancement tasks.
	Enhance(ctx context.Context, task generation.Task, text string) (*Enhancement, error)

	// GenerateSkills suggests skills for prompt that are not in existing.
	GenerateSkills(ctx context.Context, prompt string, existing []string) (*SkillSuggestion, error)

	// Status reports whether the provider is configured and which models it
	// can use. It never fails.
	Status(ctx context.Context) AIStatus
}

// EnhanceServiceOptions configures EnhanceServiceImpl.
type EnhanceServiceOptions struct {
	ProviderName string
	Configured   bool
	// AllowDegraded permits offline output when the provider reports
	// insufficient credits. It must be false in production.
	AllowDegraded    bool
	EnhanceMaxTokens int
	SkillsMaxTokens  int
}

// EnhanceServiceImpl implements EnhanceService on top of a Generator.
type EnhanceServiceImpl struct {
	generator generation.Generator
	catalog   generation.ModelCatalog
	opts      EnhanceServiceOptions
	logger    *slog.Logger
}

var _ EnhanceService = (*EnhanceServiceImpl)(nil)

// NewEnhanceService creates an EnhanceService.
func NewEnhanceService(
	generator generation.Generator,
	catalog generation.ModelCatalog,
	opts EnhanceServiceOptions,
	logger *slog.Logger,
) (*EnhanceServiceImpl, error) {
	if generator == nil {
		return nil, fmt.Errorf("generator cannot be nil")
	}
	if catalog == nil {
		return nil, fmt.Errorf("model catalog cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	return &EnhanceServiceImpl{
		generator: generator,
		catalog:   catalog,
		opts:      opts,
		logger:    logger.With("component", "enhance_service"),
	}, nil
}

// Enhance runs the enhancement pipeline for text.
func (s *EnhanceServiceImpl) Enhance(
	ctx context.Context,
	task generation.Task,
	text string,
) (*Enhancement, error) {
	log := s.log(ctx).With("task", task, "input_length", len(text))

	if !task.IsEnhancement() {
		return nil, NewServiceError(serviceName, "enhance",
			fmt.Errorf("%w: task %q is not an enhancement", ErrInvalidRequest, task))
	}

	raw, err := s.generate(ctx, task, text, nil, s.opts.EnhanceMaxTokens)
	if err != nil {
		if s.degrade(ctx, log, err) {
			degraded := generation.DegradedEnhancement(text)
			return &Enhancement{
				Original:  text,
				Enhanced:  degraded.Body,
				WordCount: degraded.WordCount,
				Fallback:  true,
			}, nil
		}
		return nil, err
	}

	sanitized := generation.Sanitize(raw, generation.DefaultMinWords, generation.DefaultMaxWords)
	if sanitized.WordCount == 0 {
		log.WarnContext(ctx, "provider output was blank", "raw_length", len(raw))
		return nil, generation.NewError(generation.KindEmptyContent, "blank output")
	}

	log.DebugContext(ctx, "enhanced text", "word_count", sanitized.WordCount)
	return &Enhancement{
		Original:  text,
		Enhanced:  sanitized.Body,
		WordCount: sanitized.WordCount,
	}, nil
}

// GenerateSkills runs the skill pipeline for prompt.
func (s *EnhanceServiceImpl) GenerateSkills(
	ctx context.Context,
	prompt string,
	existing []string,
) (*SkillSuggestion, error) {
	log := s.log(ctx).With("task", generation.TaskSkills, "existing_count", len(existing))

	raw, err := s.generate(ctx, generation.TaskSkills, prompt, existing, s.opts.SkillsMaxTokens)
	if err != nil {
		if s.degrade(ctx, log, err) {
			return &SkillSuggestion{
				Prompt:   prompt,
				Skills:   generation.FallbackSkills(prompt, existing),
				Fallback: true,
			}, nil
		}
		return nil, err
	}

	skills := generation.ParseSkills(raw, prompt, existing)
	log.DebugContext(ctx, "generated skills", "count", len(skills))
	return &SkillSuggestion{Prompt: prompt, Skills: skills}, nil
}

// Status reports the provider wiring. Model discovery failures show up as an
// empty AvailableModels list.
func (s *EnhanceServiceImpl) Status(ctx context.Context) AIStatus {
	available := s.catalog.Available(ctx)
	if available == nil {
		available = []string{}
	}

	return AIStatus{
		Configured:      s.opts.Configured,
		Provider:        s.opts.ProviderName,
		Model:           s.catalog.Current(),
		AvailableModels: available,
		Features:        []string{FeatureTextEnhancement, FeatureSkillGeneration},
	}
}

func (s *EnhanceServiceImpl) generate(
	ctx context.Context,
	task generation.Task,
	input string,
	existing []string,
	maxTokens int,
) (string, error) {
	req, err := generation.NewRequest(task, input, maxTokens)
	if err != nil {
		return "", NewServiceError(serviceName, string(task), fmt.Errorf("%w: %v", ErrInvalidRequest, err))
	}

	prompt, err := generation.BuildPrompt(req, existing)
	if err != nil {
		return "", NewServiceError(serviceName, string(task), err)
	}

	return s.generator.Generate(ctx, prompt, req.MaxOutputTokens)
}

// degrade reports whether err may be answered with offline output.
func (s *EnhanceServiceImpl) degrade(ctx context.Context, log *slog.Logger, err error) bool {
	var genErr *generation.Error
	if !errors.As(err, &genErr) || genErr.Kind != generation.KindInsufficientCredits {
		return false
	}
	if !s.opts.AllowDegraded {
		return false
	}

	log.WarnContext(ctx, "provider quota exhausted, serving degraded output", "code", genErr.Code)
	return true
}

func (s *EnhanceServiceImpl) log(ctx context.Context) *slog.Logger {
	if l, ok := logger.Lookup(ctx); ok {
		return l.With("component", "enhance_service")
	}
	return s.logger
}

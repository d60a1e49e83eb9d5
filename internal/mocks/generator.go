package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/folio-api/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, prompt string, maxOutputTokens int) (string, error)

	// Default response values
	Text string
	Err  error

	// Call tracking for verification
	GenerateCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times Generate was called
		Count int

		// Prompts contains all prompts passed to Generate calls
		Prompts []string

		// MaxOutputTokens contains all token ceilings passed to Generate calls
		MaxOutputTokens []int
	}
}

var _ generation.Generator = (*MockGenerator)(nil)

// Generate implements the generation.Generator interface
func (m *MockGenerator) Generate(ctx context.Context, prompt string, maxOutputTokens int) (string, error) {
	m.GenerateCalls.mu.Lock()
	m.GenerateCalls.Count++
	m.GenerateCalls.Prompts = append(m.GenerateCalls.Prompts, prompt)
	m.GenerateCalls.MaxOutputTokens = append(m.GenerateCalls.MaxOutputTokens, maxOutputTokens)
	m.GenerateCalls.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt, maxOutputTokens)
	}

	return m.Text, m.Err
}

// CallCount returns how many times Generate was called.
func (m *MockGenerator) CallCount() int {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	return m.GenerateCalls.Count
}

// LastPrompt returns the prompt of the most recent Generate call.
func (m *MockGenerator) LastPrompt() string {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	if len(m.GenerateCalls.Prompts) == 0 {
		return ""
	}
	return m.GenerateCalls.Prompts[len(m.GenerateCalls.Prompts)-1]
}

// NewMockGeneratorWithText creates a MockGenerator that returns text
func NewMockGeneratorWithText(text string) *MockGenerator {
	return &MockGenerator{
		Text: text,
	}
}

// NewMockGeneratorWithKind creates a MockGenerator that fails with a
// classified error of the given kind
func NewMockGeneratorWithKind(kind generation.Kind) *MockGenerator {
	return &MockGenerator{
		Err: generation.NewError(kind, "mock provider failure"),
	}
}

// MockModelCatalog implements generation.ModelCatalog for testing
type MockModelCatalog struct {
	CurrentFn   func() string
	AvailableFn func(ctx context.Context) []string

	// Default values used when functions aren't explicitly defined
	Model  string
	Models []string

	// AvailableCalls counts Available invocations
	AvailableCalls int
}

var _ generation.ModelCatalog = (*MockModelCatalog)(nil)

// Current implements the generation.ModelCatalog interface
func (m *MockModelCatalog) Current() string {
	if m.CurrentFn != nil {
		return m.CurrentFn()
	}
	return m.Model
}

// Available implements the generation.ModelCatalog interface
func (m *MockModelCatalog) Available(ctx context.Context) []string {
	m.AvailableCalls++
	if m.AvailableFn != nil {
		return m.AvailableFn(ctx)
	}
	if m.Models == nil {
		return []string{}
	}
	return m.Models
}

package generation

import (
	"context"
)

// Generator defines the boundary between the pipeline and the external
// generative-text provider, following the hexagonal architecture pattern.
type Generator interface {
	// Generate sends prompt to the provider and returns the raw text it
	// produced, capped at maxOutputTokens.
	//
	// Every failure is returned as an *Error; implementations never retry.
	Generate(ctx context.Context, prompt string, maxOutputTokens int) (string, error)
}

// ModelCatalog exposes which models the provider credential can use.
type ModelCatalog interface {
	// Current returns the resolved model id, or the configured default when
	// resolution has not happened yet. It performs no I/O.
	Current() string

	// Available returns the discovered model ids. Discovery failures yield
	// an empty slice, never an error.
	Available(ctx context.Context) []string
}

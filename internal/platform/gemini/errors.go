package gemini

import "errors"

// Error definitions for the gemini package.
var (
	// ErrInvalidConfig is returned when the SDK client cannot be built from
	// the supplied configuration.
	ErrInvalidConfig = errors.New("invalid gemini configuration")

	// ErrNilLogger is returned by constructors that require a logger.
	ErrNilLogger = errors.New("logger cannot be nil")
)

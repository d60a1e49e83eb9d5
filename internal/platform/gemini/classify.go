package gemini

import (
	"errors"
	"strings"

	"github.com/phrazzld/folio-api/internal/generation"
)

// classifierRules map fragments of Gemini error text to failure kinds. Rules
// are checked in order and matching is case-sensitive.
//
// genai.APIError.Status is not used: quota and rate limit failures both
// arrive as RESOURCE_EXHAUSTED.
var classifierRules = []struct {
	fragment string
	kind     generation.Kind
}{
	{"API_KEY_INVALID", generation.KindProviderUnauthorized},
	{"RATE_LIMIT_EXCEEDED", generation.KindRateLimited},
	{"SAFETY", generation.KindContentBlocked},
	{"quota", generation.KindInsufficientCredits},
}

// ClassifyMessage maps provider error text to a failure kind. Text that
// matches no rule is KindProviderError.
func ClassifyMessage(msg string) generation.Kind {
	for _, rule := range classifierRules {
		if strings.Contains(msg, rule.fragment) {
			return rule.kind
		}
	}
	return generation.KindProviderError
}

// Classify converts err into a *generation.Error. Errors that are already
// classified are returned unchanged.
func Classify(err error) *generation.Error {
	if err == nil {
		return nil
	}

	var classified *generation.Error
	if errors.As(err, &classified) {
		return classified
	}

	msg := err.Error()
	return generation.NewError(ClassifyMessage(msg), msg)
}

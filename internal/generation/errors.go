package generation

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies one of the closed set of pipeline failure categories.
type Kind string

// Failure kinds. Every error leaving the pipeline carries exactly one of them.
const (
	KindConfigMissing        Kind = "ConfigMissing"
	KindEmptyContent         Kind = "EmptyContent"
	KindProviderUnauthorized Kind = "ProviderUnauthorized"
	KindRateLimited          Kind = "RateLimited"
	KindContentBlocked       Kind = "ContentBlocked"
	KindInsufficientCredits  Kind = "InsufficientCredits"
	KindProviderError        Kind = "ProviderError"
)

type kindInfo struct {
	status  int
	code    string
	message string
}

var kinds = map[Kind]kindInfo{
	KindConfigMissing: {
		status:  http.StatusInternalServerError,
		code:    "CONFIG_MISSING",
		message: "AI provider is not configured",
	},
	KindEmptyContent: {
		status:  http.StatusBadGateway,
		code:    "EMPTY_CONTENT",
		message: "AI service returned empty content",
	},
	KindProviderUnauthorized: {
		status:  http.StatusUnauthorized,
		code:    "PROVIDER_UNAUTHORIZED",
		message: "AI provider authentication failed. Please check API key.",
	},
	KindRateLimited: {
		status:  http.StatusTooManyRequests,
		code:    "RATE_LIMITED",
		message: "AI provider rate limit reached. Please wait and try again.",
	},
	KindContentBlocked: {
		status:  http.StatusBadRequest,
		code:    "CONTENT_BLOCKED",
		message: "Content was blocked by safety filters",
	},
	KindInsufficientCredits: {
		status:  http.StatusPaymentRequired,
		code:    "INSUFFICIENT_CREDITS",
		message: "Insufficient AI provider credits. Please add credits or try later.",
	},
	KindProviderError: {
		status:  http.StatusInternalServerError,
		code:    "AI_PROVIDER_ERROR",
		message: "Failed to generate AI content. Please try again.",
	},
}

// Error is the domain error returned by every pipeline operation.
//
// Message is safe to show to callers. ProviderMessage keeps the raw provider
// text for logs only and must go through redaction before it is written.
type Error struct {
	Kind            Kind
	HTTPStatus      int
	Code            string
	Message         string
	ProviderMessage string
}

// NewError builds the Error for kind, keeping providerMessage for diagnostics.
// Unknown kinds are treated as KindProviderError.
func NewError(kind Kind, providerMessage string) *Error {
	info, ok := kinds[kind]
	if !ok {
		kind = KindProviderError
		info = kinds[KindProviderError]
	}
	return &Error{
		Kind:            kind,
		HTTPStatus:      info.status,
		Code:            info.code,
		Message:         info.message,
		ProviderMessage: providerMessage,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.ProviderMessage != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Message, e.ProviderMessage)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches any *Error of the same kind, so the sentinels below work with
// errors.Is regardless of the provider message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrConfigMissing        = NewError(KindConfigMissing, "")
	ErrEmptyContent         = NewError(KindEmptyContent, "")
	ErrProviderUnauthorized = NewError(KindProviderUnauthorized, "")
	ErrRateLimited          = NewError(KindRateLimited, "")
	ErrContentBlocked       = NewError(KindContentBlocked, "")
	ErrInsufficientCredits  = NewError(KindInsufficientCredits, "")
	ErrProviderError        = NewError(KindProviderError, "")
)

// AsError extracts the *Error from err. Errors that never passed through the
// classifier are reported as KindProviderError.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return NewError(KindProviderError, err.Error())
}

// KindOf returns the failure kind carried by err.
func KindOf(err error) Kind {
	if e := AsError(err); e != nil {
		return e.Kind
	}
	return ""
}

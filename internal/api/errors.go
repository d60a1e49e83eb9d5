package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/folio-api/internal/api/shared"
	"github.com/phrazzld/folio-api/internal/generation"
	"github.com/phrazzld/folio-api/internal/service"
	"github.com/phrazzld/folio-api/internal/service/auth"
	"github.com/phrazzld/folio-api/internal/store"
)

// APIError is the client-facing form of an internal error.
type APIError struct {
	Status  int
	Code    string
	Message string
}

// MapError maps err to the status, code and safe message sent to clients.
// Generation failures keep their kind's status and code verbatim.
func MapError(err error) APIError {
	var genErr *generation.Error
	switch {
	case errors.As(err, &genErr):
		return APIError{Status: genErr.HTTPStatus, Code: genErr.Code, Message: genErr.Message}

	case errors.Is(err, service.ErrInvalidRequest):
		return APIError{Status: http.StatusBadRequest, Code: shared.CodeValidationError, Message: "Invalid request"}

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType):
		return APIError{Status: http.StatusUnauthorized, Code: shared.CodeUnauthorized, Message: "Invalid token"}

	case errors.Is(err, store.ErrUserNotFound):
		return APIError{Status: http.StatusNotFound, Code: shared.CodeNotFound, Message: "User not found"}

	default:
		return APIError{Status: http.StatusInternalServerError, Code: shared.CodeInternalError, Message: "An unexpected error occurred"}
	}
}

// HandleAPIError writes the error envelope for err and logs it.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := MapError(err)
	shared.RespondWithErrorAndLog(w, r, apiErr.Status, apiErr.Code, apiErr.Message, err)
}

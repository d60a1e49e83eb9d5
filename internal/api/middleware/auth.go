package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/phrazzld/folio-api/internal/api/shared"
	"github.com/phrazzld/folio-api/internal/service/auth"
	"github.com/phrazzld/folio-api/internal/store"
)

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates the Bearer token of the Authorization header and
// adds the user ID to the request context. Requests without a valid token
// are rejected with 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, shared.CodeUnauthorized, "Authorization header required")
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || scheme != "Bearer" || token == "" || strings.Contains(token, " ") {
			shared.RespondWithError(w, r, http.StatusUnauthorized, shared.CodeUnauthorized, "Invalid authorization format")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "Token expired"
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, shared.CodeUnauthorized, message, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithUserID(r.Context(), claims.UserID)))
	})
}

// RequirePro rejects requests from users without a pro subscription. It must
// run after Authenticate.
func RequirePro(users store.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := shared.UserIDFromContext(r.Context())
			if !ok {
				shared.RespondWithError(w, r, http.StatusUnauthorized, shared.CodeUnauthorized, "Authentication required")
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			switch {
			case errors.Is(err, store.ErrUserNotFound):
				shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, shared.CodeNotFound, "User not found", err)
				return
			case err != nil:
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, shared.CodeInternalError, "Failed to verify subscription", err)
				return
			}

			if !user.IsPro() {
				shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, shared.CodeForbidden,
					"AI features require a pro subscription", nil, shared.WithElevatedLogLevel())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

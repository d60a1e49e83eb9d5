package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/folio-api/internal/domain"
)

// UserStore defines the read access to users needed to authorize requests.
type UserStore interface {
	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

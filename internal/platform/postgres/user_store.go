package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/folio-api/internal/domain"
	"github.com/phrazzld/folio-api/internal/platform/logger"
	"github.com/phrazzld/folio-api/internal/redact"
	"github.com/phrazzld/folio-api/internal/store"
)

const getUserByIDQuery = `
	SELECT id, email, name, subscription, created_at, updated_at
	FROM users
	WHERE id = $1`

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db store.DBTX
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection that should be initialized and managed by the caller.
func NewPostgresUserStore(db store.DBTX) *PostgresUserStore {
	return &PostgresUserStore{
		db: db,
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// GetByID implements store.UserStore.GetByID
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	log := logger.FromContext(ctx)

	var (
		user         domain.User
		subscription string
	)
	err := s.db.QueryRowContext(ctx, getUserByIDQuery, id).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&subscription,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrNotFound) {
			log.DebugContext(ctx, "user not found", slog.String("user_id", id.String()))
			return nil, store.ErrUserNotFound
		}

		log.ErrorContext(ctx, "failed to get user by ID",
			slog.String("user_id", id.String()),
			slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("user", "get", "failed to query user", mapped)
	}

	user.Subscription = domain.Subscription(subscription)
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	return &user, nil
}

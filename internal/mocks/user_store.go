package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/folio-api/internal/domain"
	"github.com/phrazzld/folio-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// GetByIDFn allows test cases to mock the GetByID behavior
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// Users backs the default implementation
	Users map[uuid.UUID]*domain.User
	Err   error
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a mock store holding users
func NewMockUserStore(users ...*domain.User) *MockUserStore {
	m := &MockUserStore{Users: make(map[uuid.UUID]*domain.User, len(users))}
	for _, u := range users {
		m.Users[u.ID] = u
	}
	return m
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	user, ok := m.Users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

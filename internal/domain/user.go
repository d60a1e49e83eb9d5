package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Subscription is the plan a user is on.
type Subscription string

// Subscription tiers.
const (
	SubscriptionFree Subscription = "free"
	SubscriptionPro  Subscription = "pro"
)

// User represents a registered portfolio owner.
// Account management lives outside this service; only the fields needed to
// authorize AI features are kept.
type User struct {
	ID           uuid.UUID    `json:"id"`
	Email        string       `json:"email"`
	Name         string       `json:"name,omitempty"`
	Subscription Subscription `json:"subscription"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// NewUser creates a new User with the given email and subscription.
// It generates a new UUID for the user ID and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewUser(email string, subscription Subscription) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:           uuid.New(),
		Email:        email,
		Subscription: subscription,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if !u.Subscription.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSubscription, u.Subscription)
	}

	return nil
}

// IsPro reports whether the user may use AI features.
func (u *User) IsPro() bool {
	return u.Subscription == SubscriptionPro
}

// Valid reports whether s is a known tier.
func (s Subscription) Valid() bool {
	return s == SubscriptionFree || s == SubscriptionPro
}

// validateEmailFormat requires a non-empty local part and a dotted domain.
func validateEmailFormat(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 || strings.Count(email, "@") != 1 {
		return false
	}

	domainPart := email[at+1:]
	dot := strings.IndexByte(domainPart, '.')
	return dot > 0 && dot < len(domainPart)-1
}

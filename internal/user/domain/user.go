// Package domain defines the core user domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/user-secrets/internal/errors"
)

// User represents a principal that can own secrets. Deleting a user cascades
// to their secrets and memberships.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Password  string // pwdhash-encoded, never plaintext
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same email already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrInvalidEmail indicates the email format is invalid.
	ErrInvalidEmail = errors.Wrap(errors.ErrInvalidInput, "invalid email format")

	// ErrNameRequired indicates the name field is required.
	ErrNameRequired = errors.Wrap(errors.ErrInvalidInput, "name is required")

	// ErrPasswordRequired indicates the password field is required.
	ErrPasswordRequired = errors.Wrap(errors.ErrInvalidInput, "password is required")
)

// Package domain defines core domain models and errors for user secrets.
package domain

import (
	"github.com/allisson/user-secrets/internal/errors"
)

// Secret-specific error definitions.
var (
	// ErrSecretNotFound indicates the secret does not exist or is tombstoned.
	ErrSecretNotFound = errors.Wrap(errors.ErrNotFound, "user secret not found")

	// ErrSecretTooLarge indicates the encrypted value exceeds MaxEncryptedValueLength.
	ErrSecretTooLarge = errors.Wrap(errors.ErrPayloadTooLarge, "user secret value too long")

	// ErrMissingOrgContext indicates the request carried no resolved organization.
	ErrMissingOrgContext = errors.Wrap(errors.ErrInvalidInput, "organization context is required")

	// ErrHashMismatch indicates the claimed key hash does not match the stored
	// verification hash.
	ErrHashMismatch = errors.Wrap(errors.ErrForbidden, "verification hash mismatch")
)

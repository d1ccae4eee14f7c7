// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	secretsDomain "github.com/allisson/user-secrets/internal/secrets/domain"
)

// CreateUserSecretResponse acknowledges a stored secret with its id only.
// The envelope is never echoed back on creation.
type CreateUserSecretResponse struct {
	ID string `json:"id"`
}

// UserSecretResponse represents a user secret in API responses. The envelope
// fields are omitted for tombstoned rows and for delete confirmations; the
// verification hash is never included.
type UserSecretResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Kind           string    `json:"kind"`
	EncryptedValue string    `json:"encrypted_value,omitempty"`
	IV             string    `json:"iv,omitempty"`
	Tag            string    `json:"tag,omitempty"`
	UserID         string    `json:"user_id"`
	OrgID          string    `json:"org_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MapSecretToResponse converts a domain user secret to an API response,
// including the envelope triple for client-side decryption.
func MapSecretToResponse(secret *secretsDomain.UserSecret) UserSecretResponse {
	return UserSecretResponse{
		ID:             secret.ID.String(),
		Name:           secret.Name,
		Kind:           string(secret.Kind),
		EncryptedValue: secret.EncryptedValue,
		IV:             secret.IV,
		Tag:            secret.Tag,
		UserID:         secret.UserID.String(),
		OrgID:          secret.OrgID.String(),
		CreatedAt:      secret.CreatedAt,
		UpdatedAt:      secret.UpdatedAt,
	}
}

// MapSecretToDeleteResponse converts the pre-tombstone projection to an API
// response. The envelope fields are always blank here.
func MapSecretToDeleteResponse(secret *secretsDomain.UserSecret) UserSecretResponse {
	return UserSecretResponse{
		ID:        secret.ID.String(),
		Name:      secret.Name,
		Kind:      string(secret.Kind),
		UserID:    secret.UserID.String(),
		OrgID:     secret.OrgID.String(),
		CreatedAt: secret.CreatedAt,
		UpdatedAt: secret.UpdatedAt,
	}
}

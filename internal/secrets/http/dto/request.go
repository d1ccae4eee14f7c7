// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	secretsDomain "github.com/allisson/user-secrets/internal/secrets/domain"
	customValidation "github.com/allisson/user-secrets/internal/validation"
)

// CreateUserSecretRequest contains the client-sealed envelope for a new secret.
// The server stores the envelope opaquely; sealing happened on the client and
// the key never appears in this payload.
type CreateUserSecretRequest struct {
	Name           string `json:"name"`
	Kind           string `json:"kind"`
	EncryptedValue string `json:"encrypted_value"`
	IV             string `json:"iv"`
	Tag            string `json:"tag"`
	HashedHex      string `json:"hashed_hex"`
}

// Validate checks if the create user secret request is valid.
func (r *CreateUserSecretRequest) Validate() error {
	return validation.ValidateStruct(r,
		// Name is optional; the length cap only fires when one is given.
		validation.Field(&r.Name,
			validation.Length(1, secretsDomain.MaxNameLength),
		),
		// No upper bound here: the lifecycle service owns the size cap, after
		// authorization, and oversized payloads map to 413 instead of 422.
		validation.Field(&r.EncryptedValue,
			validation.Required,
			customValidation.Base64,
		),
		validation.Field(&r.IV,
			validation.Required,
			customValidation.Base64,
		),
		validation.Field(&r.Tag,
			validation.Required,
			customValidation.Base64,
		),
		validation.Field(&r.HashedHex,
			validation.Required,
			customValidation.Hex,
			validation.Length(64, 64), // hex-encoded SHA-256
		),
	)
}

// RevealUserSecretRequest carries the claimed key hash for a possession-gated read.
type RevealUserSecretRequest struct {
	HashedHex string `json:"hashed_hex"`
}

// Validate checks if the reveal user secret request is valid.
func (r *RevealUserSecretRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.HashedHex,
			validation.Required,
			customValidation.Hex,
			validation.Length(64, 64),
		),
	)
}

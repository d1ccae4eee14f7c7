// Package domain defines the core domain models for user secrets. A user secret
// is an opaque AEAD envelope sealed on the client; the server persists the
// envelope and a verification hash of the key, never the key or plaintext.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxEncryptedValueLength bounds the encoded ciphertext at creation. It is a
// coarse cap approximating 10,000 plaintext characters after the AEAD scheme's
// base64 expansion.
const MaxEncryptedValueLength = 13000

// MaxNameLength bounds the user-facing label. Names are never used for lookup.
const MaxNameLength = 50

// SecretKind is the closed variant type for secret contents. Only credentials
// are active today; the reserved kinds can be added without touching the
// envelope columns.
type SecretKind string

// Secret kinds.
const (
	KindCredentials SecretKind = "credentials"
	KindCreditCard  SecretKind = "credit_card" // reserved
	KindSecureNote  SecretKind = "secure_note" // reserved
)

// UserSecret represents a client-sealed secret scoped to a user within an
// organization.
type UserSecret struct {
	// ID is the stable record identity, generated at creation.
	ID uuid.UUID
	// Name is the optional user-facing label.
	Name string
	// Kind identifies the secret content variant.
	Kind SecretKind
	// EncryptedValue is the base64 AEAD ciphertext. The empty string is the
	// tombstone sentinel.
	EncryptedValue string
	// IV is the base64 nonce used for this encryption, empty when tombstoned.
	IV string
	// Tag is the base64 AEAD authentication tag, empty when tombstoned.
	Tag string
	// HashedHex is the hex-encoded one-way hash of the symmetric key. It proves
	// key possession on later retrieval and is immutable for a live record.
	HashedHex string
	// UserID references the owning user.
	UserID uuid.UUID
	// OrgID references the owning organization.
	OrgID uuid.UUID
	// CreatedAt is set once at creation.
	CreatedAt time.Time
	// UpdatedAt is refreshed on every mutation, including tombstoning.
	UpdatedAt time.Time
}

// Tombstoned reports whether the secret was soft-deleted. A tombstoned record
// keeps its row, id and foreign keys but is excluded from listing.
func (s *UserSecret) Tombstoned() bool {
	return s.EncryptedValue == ""
}

// ValidKind reports whether the kind belongs to the closed variant set.
func ValidKind(kind SecretKind) bool {
	switch kind {
	case KindCredentials, KindCreditCard, KindSecureNote:
		return true
	}
	return false
}

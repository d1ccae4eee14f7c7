// Package usecase implements the user secret lifecycle: create, list, delete
// and the possession-gated reveal. Every operation consults the org permission
// gate before touching the record store; the server never sees a key or
// plaintext.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/allisson/user-secrets/internal/auth/domain"
	secretsDomain "github.com/allisson/user-secrets/internal/secrets/domain"
)

// SecretRepository defines the interface for UserSecret persistence operations.
type SecretRepository interface {
	Create(ctx context.Context, secret *secretsDomain.UserSecret) error
	Find(
		ctx context.Context,
		userID, orgID uuid.UUID,
		offset, limit int,
	) ([]*secretsDomain.UserSecret, error)
	Count(ctx context.Context, userID, orgID uuid.UUID) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*secretsDomain.UserSecret, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// CreateSecretInput carries the client-sealed envelope for a new secret.
type CreateSecretInput struct {
	Name           string
	Kind           secretsDomain.SecretKind
	EncryptedValue string
	IV             string
	Tag            string
	HashedHex      string
}

// SecretPage is one page of listable secrets plus the total historical count.
// TotalCount includes tombstoned rows and can exceed the number of rows any
// pagination walk will return.
type SecretPage struct {
	Secrets    []*secretsDomain.UserSecret
	TotalCount int64
}

// SecretUseCase defines the interface for the user secret lifecycle.
type SecretUseCase interface {
	// Create stores a new sealed secret owned by the actor and returns its id
	// only. The envelope is never echoed back.
	Create(ctx context.Context, actor authDomain.Actor, input CreateSecretInput) (uuid.UUID, error)

	// List returns the actor's non-tombstoned secrets in the org, newest first,
	// together with the total count so the caller can paginate without a second
	// permission check.
	List(ctx context.Context, actor authDomain.Actor, offset, limit int) (*SecretPage, error)

	// Delete tombstones a secret by id and returns the pre-tombstone record
	// projection as confirmation. Org-level authorization is the only scope
	// check; any permitted org actor may tombstone any secret in the org.
	Delete(
		ctx context.Context,
		actor authDomain.Actor,
		secretID uuid.UUID,
	) (*secretsDomain.UserSecret, error)

	// Reveal returns the envelope triple for client-side decryption, but only
	// when the claimed key hash matches the stored verification hash. The
	// comparison is constant time and the server never decrypts.
	Reveal(
		ctx context.Context,
		actor authDomain.Actor,
		secretID uuid.UUID,
		claimedHash string,
	) (*secretsDomain.UserSecret, error)
}

package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/user-secrets/internal/auth/domain"
	authUseCase "github.com/allisson/user-secrets/internal/auth/usecase"
	apperrors "github.com/allisson/user-secrets/internal/errors"
	secretsDomain "github.com/allisson/user-secrets/internal/secrets/domain"
)

// secretUseCase implements the SecretUseCase interface.
type secretUseCase struct {
	permissions authUseCase.OrgPermissionChecker
	secretRepo  SecretRepository
}

// NewSecretUseCase creates a new secret use case with the provided dependencies.
// The permission gate and the record store are injected explicitly; nothing is
// looked up from ambient registries.
func NewSecretUseCase(
	permissions authUseCase.OrgPermissionChecker,
	secretRepo SecretRepository,
) SecretUseCase {
	return &secretUseCase{
		permissions: permissions,
		secretRepo:  secretRepo,
	}
}

// Create validates and stores a new sealed secret owned by the actor.
func (s *secretUseCase) Create(
	ctx context.Context,
	actor authDomain.Actor,
	input CreateSecretInput,
) (uuid.UUID, error) {
	if err := s.permissions.CheckOrgPermission(ctx, actor, actor.OrgID); err != nil {
		return uuid.Nil, err
	}

	// Encoded ciphertext cap, approximating 10,000 plaintext characters.
	if len(input.EncryptedValue) > secretsDomain.MaxEncryptedValueLength {
		return uuid.Nil, secretsDomain.ErrSecretTooLarge
	}

	kind := input.Kind
	if kind == "" {
		kind = secretsDomain.KindCredentials
	}
	if !secretsDomain.ValidKind(kind) {
		return uuid.Nil, apperrors.Wrap(
			apperrors.ErrInvalidInput,
			fmt.Sprintf("unknown secret kind %q", kind),
		)
	}

	now := time.Now().UTC()
	secret := &secretsDomain.UserSecret{
		ID:             uuid.Must(uuid.NewV7()),
		Name:           input.Name,
		Kind:           kind,
		EncryptedValue: input.EncryptedValue,
		IV:             input.IV,
		Tag:            input.Tag,
		HashedHex:      input.HashedHex,
		UserID:         actor.ID,
		OrgID:          actor.OrgID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.secretRepo.Create(ctx, secret); err != nil {
		return uuid.Nil, err
	}

	return secret.ID, nil
}

// List fetches one page of the actor's secrets plus the historical total.
func (s *secretUseCase) List(
	ctx context.Context,
	actor authDomain.Actor,
	offset, limit int,
) (*SecretPage, error) {
	if !actor.HasOrg() {
		return nil, secretsDomain.ErrMissingOrgContext
	}

	if err := s.permissions.CheckOrgPermission(ctx, actor, actor.OrgID); err != nil {
		return nil, err
	}

	secrets, err := s.secretRepo.Find(ctx, actor.ID, actor.OrgID, offset, limit)
	if err != nil {
		return nil, err
	}

	count, err := s.secretRepo.Count(ctx, actor.ID, actor.OrgID)
	if err != nil {
		return nil, err
	}

	return &SecretPage{Secrets: secrets, TotalCount: count}, nil
}

// Delete tombstones the secret and returns the pre-tombstone projection.
func (s *secretUseCase) Delete(
	ctx context.Context,
	actor authDomain.Actor,
	secretID uuid.UUID,
) (*secretsDomain.UserSecret, error) {
	if err := s.permissions.CheckOrgPermission(ctx, actor, actor.OrgID); err != nil {
		return nil, err
	}

	secret, err := s.secretRepo.GetByID(ctx, secretID)
	if err != nil {
		return nil, err
	}

	if err := s.secretRepo.SoftDelete(ctx, secretID); err != nil {
		return nil, err
	}

	// Confirmation projection: identity and timestamps, never the envelope.
	return &secretsDomain.UserSecret{
		ID:        secret.ID,
		Name:      secret.Name,
		Kind:      secret.Kind,
		UserID:    secret.UserID,
		OrgID:     secret.OrgID,
		CreatedAt: secret.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}, nil
}

// Reveal performs the possession-gated read: the envelope is returned only
// when the claimed hash matches the stored verification hash.
func (s *secretUseCase) Reveal(
	ctx context.Context,
	actor authDomain.Actor,
	secretID uuid.UUID,
	claimedHash string,
) (*secretsDomain.UserSecret, error) {
	if err := s.permissions.CheckOrgPermission(ctx, actor, actor.OrgID); err != nil {
		return nil, err
	}

	secret, err := s.secretRepo.GetByID(ctx, secretID)
	if err != nil {
		return nil, err
	}
	if secret.Tombstoned() {
		return nil, secretsDomain.ErrSecretNotFound
	}

	if subtle.ConstantTimeCompare([]byte(claimedHash), []byte(secret.HashedHex)) != 1 {
		return nil, secretsDomain.ErrHashMismatch
	}

	return secret, nil
}

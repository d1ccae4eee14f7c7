package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/user-secrets/internal/auth/domain"
	"github.com/allisson/user-secrets/internal/envelope"
	secretsDomain "github.com/allisson/user-secrets/internal/secrets/domain"
)

// allowAllChecker permits every actor; scenario tests exercise the lifecycle,
// not the gate.
type allowAllChecker struct{}

func (allowAllChecker) CheckOrgPermission(context.Context, authDomain.Actor, uuid.UUID) error {
	return nil
}

// memorySecretRepository is an in-memory SecretRepository with the same
// tombstone semantics as the SQL implementations: soft delete blanks the
// envelope fields, Find excludes blanked rows, Count includes them.
type memorySecretRepository struct {
	records map[uuid.UUID]*secretsDomain.UserSecret
	order   []uuid.UUID
}

func newMemorySecretRepository() *memorySecretRepository {
	return &memorySecretRepository{records: make(map[uuid.UUID]*secretsDomain.UserSecret)}
}

func (m *memorySecretRepository) Create(_ context.Context, secret *secretsDomain.UserSecret) error {
	stored := *secret
	m.records[secret.ID] = &stored
	m.order = append(m.order, secret.ID)
	return nil
}

func (m *memorySecretRepository) Find(
	_ context.Context,
	userID, orgID uuid.UUID,
	offset, limit int,
) ([]*secretsDomain.UserSecret, error) {
	var matched []*secretsDomain.UserSecret
	// Newest first
	for i := len(m.order) - 1; i >= 0; i-- {
		record := m.records[m.order[i]]
		if record.UserID != userID || record.OrgID != orgID || record.Tombstoned() {
			continue
		}
		matched = append(matched, record)
	}

	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (m *memorySecretRepository) Count(
	_ context.Context,
	userID, orgID uuid.UUID,
) (int64, error) {
	var count int64
	for _, record := range m.records {
		if record.UserID == userID && record.OrgID == orgID {
			count++
		}
	}
	return count, nil
}

func (m *memorySecretRepository) GetByID(
	_ context.Context,
	id uuid.UUID,
) (*secretsDomain.UserSecret, error) {
	record, ok := m.records[id]
	if !ok {
		return nil, secretsDomain.ErrSecretNotFound
	}
	return record, nil
}

func (m *memorySecretRepository) SoftDelete(_ context.Context, id uuid.UUID) error {
	if record, ok := m.records[id]; ok {
		record.EncryptedValue = ""
		record.IV = ""
		record.Tag = ""
	}
	return nil
}

func TestSecretLifecycleScenario(t *testing.T) {
	ctx := context.Background()
	actor := authDomain.Actor{
		Kind:       authDomain.ActorUser,
		ID:         uuid.Must(uuid.NewV7()),
		AuthMethod: authDomain.AuthMethodJWT,
		OrgID:      uuid.Must(uuid.NewV7()),
	}

	repo := newMemorySecretRepository()
	uc := NewSecretUseCase(allowAllChecker{}, repo)

	// The secret is sealed on the client; only the envelope and the key hash
	// travel to the service.
	plaintext := []byte(strings.Repeat("ab", 60))
	key, env, err := envelope.Seal(plaintext, envelope.AESGCM)
	require.NoError(t, err)

	id, err := uc.Create(ctx, actor, CreateSecretInput{
		Name:           "github",
		EncryptedValue: env.EncryptedValue,
		IV:             env.IV,
		Tag:            env.Tag,
		HashedHex:      envelope.VerificationHash(key),
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	// The stored record holds the hash, never the key.
	stored, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Len(t, stored.HashedHex, 64)
	assert.NotContains(t, stored.EncryptedValue, string(key))

	page, err := uc.List(ctx, actor, 0, 25)
	require.NoError(t, err)
	require.Len(t, page.Secrets, 1)
	assert.Equal(t, id, page.Secrets[0].ID)
	assert.Equal(t, int64(1), page.TotalCount)

	// Reveal with the right hash returns an envelope the key still opens.
	revealed, err := uc.Reveal(ctx, actor, id, envelope.VerificationHash(key))
	require.NoError(t, err)
	opened, err := envelope.Open(key, envelope.Envelope{
		EncryptedValue: revealed.EncryptedValue,
		IV:             revealed.IV,
		Tag:            revealed.Tag,
		Algorithm:      envelope.AESGCM,
	})
	require.NoError(t, err)
	assert.Equal(t, plaintext, opened)

	// Tombstoning removes it from listings but not from the historical count.
	deleted, err := uc.Delete(ctx, actor, id)
	require.NoError(t, err)
	assert.Equal(t, id, deleted.ID)
	assert.Empty(t, deleted.EncryptedValue)

	page, err = uc.List(ctx, actor, 0, 25)
	require.NoError(t, err)
	assert.Empty(t, page.Secrets)
	assert.Equal(t, int64(1), page.TotalCount)

	_, err = uc.Reveal(ctx, actor, id, envelope.VerificationHash(key))
	assert.ErrorIs(t, err, secretsDomain.ErrSecretNotFound)
}

func TestSecretListPaginationIsDisjointAndComplete(t *testing.T) {
	ctx := context.Background()
	actor := authDomain.Actor{
		Kind:       authDomain.ActorUser,
		ID:         uuid.Must(uuid.NewV7()),
		AuthMethod: authDomain.AuthMethodJWT,
		OrgID:      uuid.Must(uuid.NewV7()),
	}

	repo := newMemorySecretRepository()
	uc := NewSecretUseCase(allowAllChecker{}, repo)

	created := make(map[uuid.UUID]bool)
	for range 15 {
		id, err := uc.Create(ctx, actor, CreateSecretInput{
			Name:           "entry",
			EncryptedValue: "Y2lwaGVydGV4dA==",
			IV:             "bm9uY2UxMjM0NTY=",
			Tag:            "YXV0aC10YWctMTY=",
			HashedHex:      strings.Repeat("ab", 32),
		})
		require.NoError(t, err)
		created[id] = true
	}

	first, err := uc.List(ctx, actor, 0, 10)
	require.NoError(t, err)
	second, err := uc.List(ctx, actor, 10, 10)
	require.NoError(t, err)

	require.Len(t, first.Secrets, 10)
	require.Len(t, second.Secrets, 5)

	seen := make(map[uuid.UUID]bool)
	for _, secret := range append(first.Secrets, second.Secrets...) {
		assert.False(t, seen[secret.ID], "pages must be disjoint")
		seen[secret.ID] = true
		assert.True(t, created[secret.ID])
	}
	assert.Len(t, seen, 15)
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/user-secrets/internal/database"
	apperrors "github.com/allisson/user-secrets/internal/errors"
	secretsDomain "github.com/allisson/user-secrets/internal/secrets/domain"
)

// MySQLSecretRepository implements UserSecret persistence for MySQL.
type MySQLSecretRepository struct {
	db *sql.DB
}

// NewMySQLSecretRepository creates a new MySQL UserSecret repository instance.
func NewMySQLSecretRepository(db *sql.DB) *MySQLSecretRepository {
	return &MySQLSecretRepository{db: db}
}

// Create inserts a new user secret.
func (m *MySQLSecretRepository) Create(
	ctx context.Context,
	secret *secretsDomain.UserSecret,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO user_secrets
			  (id, name, kind, encrypted_value, iv, tag, hashed_hex, user_id, org_id, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(
		ctx,
		query,
		secret.ID,
		secret.Name,
		secret.Kind,
		secret.EncryptedValue,
		secret.IV,
		secret.Tag,
		secret.HashedHex,
		secret.UserID,
		secret.OrgID,
		secret.CreatedAt,
		secret.UpdatedAt,
	)
	if err != nil {
		return apperrors.WrapStorage(err, "create user secret")
	}
	return nil
}

// Find returns the non-tombstoned secrets for the user within the org, newest
// first, paged by offset/limit.
func (m *MySQLSecretRepository) Find(
	ctx context.Context,
	userID, orgID uuid.UUID,
	offset, limit int,
) ([]*secretsDomain.UserSecret, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, kind, encrypted_value, iv, tag, hashed_hex, user_id, org_id, created_at, updated_at
			  FROM user_secrets
			  WHERE user_id = ? AND org_id = ? AND encrypted_value <> ''
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, userID, orgID, limit, offset)
	if err != nil {
		return nil, apperrors.WrapStorage(err, "find user secrets")
	}
	defer rows.Close()

	secrets, err := scanSecrets(rows)
	if err != nil {
		return nil, apperrors.WrapStorage(err, "find user secrets")
	}
	return secrets, nil
}

// Count returns the number of all secrets for the user within the org,
// including tombstoned rows.
func (m *MySQLSecretRepository) Count(
	ctx context.Context,
	userID, orgID uuid.UUID,
) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT COUNT(*) FROM user_secrets WHERE user_id = ? AND org_id = ?`

	var count int64
	if err := querier.QueryRowContext(ctx, query, userID, orgID).Scan(&count); err != nil {
		return 0, apperrors.WrapStorage(err, "count user secrets")
	}
	return count, nil
}

// GetByID retrieves a secret by its id, tombstoned or not.
func (m *MySQLSecretRepository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*secretsDomain.UserSecret, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, kind, encrypted_value, iv, tag, hashed_hex, user_id, org_id, created_at, updated_at
			  FROM user_secrets
			  WHERE id = ?`

	var secret secretsDomain.UserSecret
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&secret.ID,
		&secret.Name,
		&secret.Kind,
		&secret.EncryptedValue,
		&secret.IV,
		&secret.Tag,
		&secret.HashedHex,
		&secret.UserID,
		&secret.OrgID,
		&secret.CreatedAt,
		&secret.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, secretsDomain.ErrSecretNotFound
		}
		return nil, apperrors.WrapStorage(err, "get user secret by id")
	}

	return &secret, nil
}

// SoftDelete blanks the envelope columns and refreshes updated_at. Idempotent.
func (m *MySQLSecretRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE user_secrets
			  SET encrypted_value = '', iv = '', tag = '', updated_at = ?
			  WHERE id = ?`

	_, err := querier.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.WrapStorage(err, "soft delete user secret")
	}
	return nil
}

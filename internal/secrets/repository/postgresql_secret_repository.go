// Package repository implements data persistence for user secrets, supporting
// both PostgreSQL and MySQL. Deletion is a soft delete that blanks the envelope
// columns while keeping the row, its id and its foreign keys.
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

// PostgreSQLSecretRepository implements UserSecret persistence for PostgreSQL.
type PostgreSQLSecretRepository struct {
	db *sql.DB
}

// NewPostgreSQLSecretRepository creates a new PostgreSQL UserSecret repository instance.
func NewPostgreSQLSecretRepository(db *sql.DB) *PostgreSQLSecretRepository {
	return &PostgreSQLSecretRepository{db: db}
}

// Create inserts a new user secret.
func (p *PostgreSQLSecretRepository) Create(
	ctx context.Context,
	secret *secretsDomain.UserSecret,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO user_secrets
			  (id, name, kind, encrypted_value, iv, tag, hashed_hex, user_id, org_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

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
// first, paged by offset/limit. The offset-based page is stateless and
// restartable.
func (p *PostgreSQLSecretRepository) Find(
	ctx context.Context,
	userID, orgID uuid.UUID,
	offset, limit int,
) ([]*secretsDomain.UserSecret, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, kind, encrypted_value, iv, tag, hashed_hex, user_id, org_id, created_at, updated_at
			  FROM user_secrets
			  WHERE user_id = $1 AND org_id = $2 AND encrypted_value <> ''
			  ORDER BY created_at DESC
			  OFFSET $3 LIMIT $4`

	rows, err := querier.QueryContext(ctx, query, userID, orgID, offset, limit)
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
// including tombstoned rows. The total is historical, so it can exceed the
// number of listable rows.
func (p *PostgreSQLSecretRepository) Count(
	ctx context.Context,
	userID, orgID uuid.UUID,
) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT COUNT(*) FROM user_secrets WHERE user_id = $1 AND org_id = $2`

	var count int64
	if err := querier.QueryRowContext(ctx, query, userID, orgID).Scan(&count); err != nil {
		return 0, apperrors.WrapStorage(err, "count user secrets")
	}
	return count, nil
}

// GetByID retrieves a secret by its id, tombstoned or not.
func (p *PostgreSQLSecretRepository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*secretsDomain.UserSecret, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, kind, encrypted_value, iv, tag, hashed_hex, user_id, org_id, created_at, updated_at
			  FROM user_secrets
			  WHERE id = $1`

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

// SoftDelete blanks the envelope columns and refreshes updated_at. Deleting an
// already tombstoned id is a no-op success, so the operation is idempotent.
func (p *PostgreSQLSecretRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE user_secrets
			  SET encrypted_value = '', iv = '', tag = '', updated_at = $1
			  WHERE id = $2`

	_, err := querier.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.WrapStorage(err, "soft delete user secret")
	}
	return nil
}

// scanSecrets collects UserSecret rows from a result set.
func scanSecrets(rows *sql.Rows) ([]*secretsDomain.UserSecret, error) {
	var secrets []*secretsDomain.UserSecret
	for rows.Next() {
		var secret secretsDomain.UserSecret
		err := rows.Scan(
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
			return nil, err
		}
		secrets = append(secrets, &secret)
	}
	return secrets, rows.Err()
}

package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/user-secrets/internal/errors"
	secretsDomain "github.com/allisson/user-secrets/internal/secrets/domain"
)

func TestMySQLSecretRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLSecretRepository(db)
	secret := newTestSecret()

	mock.ExpectExec("INSERT INTO user_secrets").
		WithArgs(
			secret.ID, secret.Name, secret.Kind, secret.EncryptedValue,
			secret.IV, secret.Tag, secret.HashedHex, secret.UserID,
			secret.OrgID, secret.CreatedAt, secret.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(context.Background(), secret)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLSecretRepository_Find(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLSecretRepository(db)
	userID := uuid.Must(uuid.NewV7())
	orgID := uuid.Must(uuid.NewV7())

	// MySQL takes LIMIT before OFFSET.
	mock.ExpectQuery(`LIMIT \? OFFSET \?`).
		WithArgs(userID, orgID, 25, 50).
		WillReturnRows(sqlmock.NewRows(secretColumns))

	secrets, err := repo.Find(context.Background(), userID, orgID, 50, 25)
	require.NoError(t, err)
	assert.Empty(t, secrets)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLSecretRepository_Count(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLSecretRepository(db)
	userID := uuid.Must(uuid.NewV7())
	orgID := uuid.Must(uuid.NewV7())

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM user_secrets`).
		WithArgs(userID, orgID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Count(context.Background(), userID, orgID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestMySQLSecretRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLSecretRepository(db)
	id := uuid.Must(uuid.NewV7())

	mock.ExpectQuery("SELECT (.+) FROM user_secrets").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(secretColumns))

	_, err = repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, secretsDomain.ErrSecretNotFound)
}

func TestMySQLSecretRepository_SoftDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLSecretRepository(db)
	id := uuid.Must(uuid.NewV7())

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE user_secrets`).
			WithArgs(sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.SoftDelete(context.Background(), id))
	})

	t.Run("StorageError", func(t *testing.T) {
		mock.ExpectExec(`UPDATE user_secrets`).
			WillReturnError(assert.AnError)

		err := repo.SoftDelete(context.Background(), id)
		assert.True(t, apperrors.Is(err, apperrors.ErrStorage))
	})
}

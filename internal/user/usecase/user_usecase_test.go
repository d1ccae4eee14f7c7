package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/user-secrets/internal/errors"
	"github.com/allisson/user-secrets/internal/user/domain"
)

// mockUserRepository is a testify mock for UserRepository.
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestUserUseCase_RegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("Create", ctx, mock.MatchedBy(func(user *domain.User) bool {
			return user.Name == "alice" &&
				user.Email == "alice@example.com" &&
				user.Password != "super-secret" &&
				user.ID != uuid.Nil
		})).Return(nil)

		uc, err := NewUserUseCase(userRepo)
		require.NoError(t, err)

		user, err := uc.RegisterUser(ctx, RegisterUserInput{
			Name:     "alice",
			Email:    "alice@example.com",
			Password: "super-secret",
		})

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Name)
		userRepo.AssertExpectations(t)
	})

	t.Run("NormalizesEmail", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("Create", ctx, mock.Anything).Return(nil)

		uc, err := NewUserUseCase(userRepo)
		require.NoError(t, err)

		user, err := uc.RegisterUser(ctx, RegisterUserInput{
			Name:     "alice",
			Email:    "  Alice@Example.COM ",
			Password: "super-secret",
		})

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("InvalidEmailRejected", func(t *testing.T) {
		userRepo := new(mockUserRepository)

		uc, err := NewUserUseCase(userRepo)
		require.NoError(t, err)

		_, err = uc.RegisterUser(ctx, RegisterUserInput{
			Name:     "alice",
			Email:    "not-an-email",
			Password: "super-secret",
		})

		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("ShortPasswordRejected", func(t *testing.T) {
		userRepo := new(mockUserRepository)

		uc, err := NewUserUseCase(userRepo)
		require.NoError(t, err)

		_, err = uc.RegisterUser(ctx, RegisterUserInput{
			Name:     "alice",
			Email:    "alice@example.com",
			Password: "short",
		})

		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("RepositoryErrorPropagates", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("Create", ctx, mock.Anything).Return(domain.ErrUserAlreadyExists)

		uc, err := NewUserUseCase(userRepo)
		require.NoError(t, err)

		_, err = uc.RegisterUser(ctx, RegisterUserInput{
			Name:     "alice",
			Email:    "alice@example.com",
			Password: "super-secret",
		})

		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})
}

func TestUserUseCase_GetUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())
	user := &domain.User{ID: userID, Name: "alice", Email: "alice@example.com"}

	t.Run("ByID", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("GetByID", ctx, userID).Return(user, nil)

		uc, err := NewUserUseCase(userRepo)
		require.NoError(t, err)

		got, err := uc.GetUserByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, userID, got.ID)
	})

	t.Run("ByEmail", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("GetByEmail", ctx, "alice@example.com").Return(user, nil)

		uc, err := NewUserUseCase(userRepo)
		require.NoError(t, err)

		got, err := uc.GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, userID, got.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("GetByID", ctx, userID).Return(nil, domain.ErrUserNotFound)

		uc, err := NewUserUseCase(userRepo)
		require.NoError(t, err)

		_, err = uc.GetUserByID(ctx, userID)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

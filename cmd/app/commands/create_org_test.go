package commands

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	orgDomain "github.com/allisson/user-secrets/internal/org/domain"
	orgUsecase "github.com/allisson/user-secrets/internal/org/usecase"
)

type mockOrgUseCase struct {
	mock.Mock
}

func (m *mockOrgUseCase) CreateOrganization(
	ctx context.Context,
	input orgUsecase.CreateOrganizationInput,
) (*orgDomain.Organization, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orgDomain.Organization), args.Error(1)
}

func (m *mockOrgUseCase) AddMember(
	ctx context.Context,
	orgID, userID uuid.UUID,
	role orgDomain.Role,
) (*orgDomain.Membership, error) {
	args := m.Called(ctx, orgID, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orgDomain.Membership), args.Error(1)
}

func TestRunCreateOrg(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	orgID := uuid.Must(uuid.NewV7())

	t.Run("text", func(t *testing.T) {
		mockUseCase := &mockOrgUseCase{}
		org := &orgDomain.Organization{ID: orgID, Name: "acme"}

		mockUseCase.On("CreateOrganization", ctx, orgUsecase.CreateOrganizationInput{Name: "acme"}).
			Return(org, nil)

		var out bytes.Buffer
		io := IOTuple{Reader: nil, Writer: &out}

		err := RunCreateOrg(ctx, mockUseCase, logger, io, "acme", "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), orgID.String())
		require.Contains(t, out.String(), "acme")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json", func(t *testing.T) {
		mockUseCase := &mockOrgUseCase{}
		org := &orgDomain.Organization{ID: orgID, Name: "acme"}

		mockUseCase.On("CreateOrganization", ctx, orgUsecase.CreateOrganizationInput{Name: "acme"}).
			Return(org, nil)

		var out bytes.Buffer
		io := IOTuple{Reader: nil, Writer: &out}

		err := RunCreateOrg(ctx, mockUseCase, logger, io, "acme", "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), orgID.String())
		require.Contains(t, out.String(), "{")
		mockUseCase.AssertExpectations(t)
	})
}

package commands

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	orgDomain "github.com/allisson/user-secrets/internal/org/domain"
)

func TestRunAddMember(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	orgID := uuid.Must(uuid.NewV7())
	userID := uuid.Must(uuid.NewV7())
	membershipID := uuid.Must(uuid.NewV7())

	t.Run("success-json", func(t *testing.T) {
		mockUseCase := &mockOrgUseCase{}
		membership := &orgDomain.Membership{
			ID:     membershipID,
			UserID: userID,
			OrgID:  orgID,
			Role:   orgDomain.RoleAdmin,
		}

		mockUseCase.On("AddMember", ctx, orgID, userID, orgDomain.RoleAdmin).Return(membership, nil)

		var out bytes.Buffer
		io := IOTuple{Reader: nil, Writer: &out}

		err := RunAddMember(ctx, mockUseCase, logger, io, orgID.String(), userID.String(), "admin", "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), membershipID.String())
		require.Contains(t, out.String(), "admin")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("invalid-org-id", func(t *testing.T) {
		mockUseCase := &mockOrgUseCase{}
		var out bytes.Buffer
		io := IOTuple{Reader: nil, Writer: &out}

		err := RunAddMember(ctx, mockUseCase, logger, io, "not-a-uuid", userID.String(), "member", "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid org id")
		mockUseCase.AssertNotCalled(t, "AddMember")
	})

	t.Run("invalid-user-id", func(t *testing.T) {
		mockUseCase := &mockOrgUseCase{}
		var out bytes.Buffer
		io := IOTuple{Reader: nil, Writer: &out}

		err := RunAddMember(ctx, mockUseCase, logger, io, orgID.String(), "not-a-uuid", "member", "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid user id")
		mockUseCase.AssertNotCalled(t, "AddMember")
	})
}

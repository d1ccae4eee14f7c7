package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	orgDomain "github.com/allisson/user-secrets/internal/org/domain"
	orgUsecase "github.com/allisson/user-secrets/internal/org/usecase"
)

// RunAddMember binds a user to an organization with the given role. Membership
// is what the permission gate consults, so a user cannot touch secrets in an
// org before this runs.
//
// Requirements: Database must be migrated and accessible; the org and user
// must already exist.
func RunAddMember(
	ctx context.Context,
	orgUseCase orgUsecase.UseCase,
	logger *slog.Logger,
	io IOTuple,
	orgIDStr string,
	userIDStr string,
	role string,
	format string,
) error {
	orgID, err := uuid.Parse(orgIDStr)
	if err != nil {
		return fmt.Errorf("invalid org id: %w", err)
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}

	logger.Info("adding member to organization",
		slog.String("org_id", orgID.String()),
		slog.String("user_id", userID.String()),
		slog.String("role", role),
	)

	membership, err := orgUseCase.AddMember(ctx, orgID, userID, orgDomain.Role(role))
	if err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}

	if format == "json" {
		writeJSON(io.Writer, map[string]string{
			"membership_id": membership.ID.String(),
			"org_id":        membership.OrgID.String(),
			"user_id":       membership.UserID.String(),
			"role":          string(membership.Role),
		})
	} else {
		_, _ = fmt.Fprintln(io.Writer, "\nMember added successfully!")
		_, _ = fmt.Fprintf(io.Writer, "Membership ID: %s\n", membership.ID.String())
		_, _ = fmt.Fprintf(io.Writer, "Role: %s\n", membership.Role)
	}

	logger.Info("member added successfully",
		slog.String("membership_id", membership.ID.String()),
	)

	return nil
}

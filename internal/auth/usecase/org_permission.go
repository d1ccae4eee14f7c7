// Package usecase implements the organization permission gate consulted before
// every secret operation. The lifecycle service depends only on the
// OrgPermissionChecker interface; the membership-backed implementation here is
// one provider of it.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/allisson/user-secrets/internal/auth/domain"
	apperrors "github.com/allisson/user-secrets/internal/errors"
	orgDomain "github.com/allisson/user-secrets/internal/org/domain"
)

// OrgPermissionChecker converts (actor, organization) into an allow/deny
// decision. A nil return means permitted. It is consulted on every operation;
// decisions are never cached by the callers.
type OrgPermissionChecker interface {
	CheckOrgPermission(ctx context.Context, actor authDomain.Actor, orgID uuid.UUID) error
}

// MembershipRepository is the subset of the org repository the gate needs.
type MembershipRepository interface {
	GetMembership(ctx context.Context, userID, orgID uuid.UUID) (*orgDomain.Membership, error)
}

// membershipPermissionChecker permits any actor holding a membership in the
// organization, regardless of role. Role-based tightening would live here.
type membershipPermissionChecker struct {
	memberships MembershipRepository
}

// NewMembershipPermissionChecker creates an OrgPermissionChecker backed by the
// membership store.
func NewMembershipPermissionChecker(memberships MembershipRepository) OrgPermissionChecker {
	return &membershipPermissionChecker{memberships: memberships}
}

// CheckOrgPermission permits the actor when a membership row exists for the
// (actor, org) pair. A missing membership or any lookup failure denies.
func (c *membershipPermissionChecker) CheckOrgPermission(
	ctx context.Context,
	actor authDomain.Actor,
	orgID uuid.UUID,
) error {
	if actor.ID == uuid.Nil || orgID == uuid.Nil {
		return apperrors.Wrap(apperrors.ErrUnauthorized, "actor not in org")
	}

	_, err := c.memberships.GetMembership(ctx, actor.ID, orgID)
	if err != nil {
		if apperrors.Is(err, orgDomain.ErrMembershipNotFound) {
			return apperrors.Wrap(apperrors.ErrUnauthorized, "actor not in org")
		}
		return err
	}
	return nil
}

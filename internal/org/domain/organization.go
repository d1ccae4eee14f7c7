// Package domain defines organization and membership models. Memberships back
// the org-permission gate consulted before every secret operation.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/user-secrets/internal/errors"
)

// Role is the membership role within an organization.
type Role string

// Membership roles.
const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Organization represents a tenant owning users and secrets.
type Organization struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Membership binds a user to an organization with a role. The (user, org) pair
// is unique.
type Membership struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	OrgID     uuid.UUID
	Role      Role
	CreatedAt time.Time
}

// Domain-specific errors for organization operations.
var (
	// ErrOrganizationNotFound indicates the requested organization does not exist.
	ErrOrganizationNotFound = errors.Wrap(errors.ErrNotFound, "organization not found")

	// ErrMembershipNotFound indicates the user is not a member of the organization.
	ErrMembershipNotFound = errors.Wrap(errors.ErrNotFound, "membership not found")

	// ErrAlreadyMember indicates a membership for the (user, org) pair already exists.
	ErrAlreadyMember = errors.Wrap(errors.ErrConflict, "user is already a member of the organization")
)

package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/user-secrets/internal/database"
	apperrors "github.com/allisson/user-secrets/internal/errors"
	orgDomain "github.com/allisson/user-secrets/internal/org/domain"
)

// MySQLOrgRepository implements organization persistence for MySQL.
type MySQLOrgRepository struct {
	db *sql.DB
}

// NewMySQLOrgRepository creates a new MySQL organization repository.
func NewMySQLOrgRepository(db *sql.DB) *MySQLOrgRepository {
	return &MySQLOrgRepository{db: db}
}

// Create inserts a new organization.
func (r *MySQLOrgRepository) Create(ctx context.Context, org *orgDomain.Organization) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO organizations (id, name, created_at, updated_at)
			  VALUES (?, ?, ?, ?)`

	_, err := querier.ExecContext(ctx, query, org.ID, org.Name, org.CreatedAt, org.UpdatedAt)
	if err != nil {
		return apperrors.WrapStorage(err, "create organization")
	}
	return nil
}

// GetByID retrieves an organization by its id.
func (r *MySQLOrgRepository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*orgDomain.Organization, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM organizations WHERE id = ?`

	var org orgDomain.Organization
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&org.ID,
		&org.Name,
		&org.CreatedAt,
		&org.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, orgDomain.ErrOrganizationNotFound
		}
		return nil, apperrors.WrapStorage(err, "get organization by id")
	}

	return &org, nil
}

// AddMember inserts a membership row for the (user, org) pair.
func (r *MySQLOrgRepository) AddMember(
	ctx context.Context,
	membership *orgDomain.Membership,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO org_memberships (id, user_id, org_id, role, created_at)
			  VALUES (?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(
		ctx,
		query,
		membership.ID,
		membership.UserID,
		membership.OrgID,
		membership.Role,
		membership.CreatedAt,
	)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return orgDomain.ErrAlreadyMember
		}
		return apperrors.WrapStorage(err, "add organization member")
	}
	return nil
}

// GetMembership retrieves the membership for a user within an organization.
func (r *MySQLOrgRepository) GetMembership(
	ctx context.Context,
	userID, orgID uuid.UUID,
) (*orgDomain.Membership, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, org_id, role, created_at
			  FROM org_memberships
			  WHERE user_id = ? AND org_id = ?`

	var membership orgDomain.Membership
	err := querier.QueryRowContext(ctx, query, userID, orgID).Scan(
		&membership.ID,
		&membership.UserID,
		&membership.OrgID,
		&membership.Role,
		&membership.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, orgDomain.ErrMembershipNotFound
		}
		return nil, apperrors.WrapStorage(err, "get organization membership")
	}

	return &membership, nil
}

// isMySQLDuplicateEntry checks if the error is a MySQL duplicate entry violation.
func isMySQLDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "duplicate entry")
}

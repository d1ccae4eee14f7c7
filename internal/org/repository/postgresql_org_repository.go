// Package repository implements data persistence for organizations and
// memberships, supporting both PostgreSQL and MySQL.
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

// PostgreSQLOrgRepository implements organization persistence for PostgreSQL.
type PostgreSQLOrgRepository struct {
	db *sql.DB
}

// NewPostgreSQLOrgRepository creates a new PostgreSQL organization repository.
func NewPostgreSQLOrgRepository(db *sql.DB) *PostgreSQLOrgRepository {
	return &PostgreSQLOrgRepository{db: db}
}

// Create inserts a new organization.
func (r *PostgreSQLOrgRepository) Create(ctx context.Context, org *orgDomain.Organization) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO organizations (id, name, created_at, updated_at)
			  VALUES ($1, $2, $3, $4)`

	_, err := querier.ExecContext(ctx, query, org.ID, org.Name, org.CreatedAt, org.UpdatedAt)
	if err != nil {
		return apperrors.WrapStorage(err, "create organization")
	}
	return nil
}

// GetByID retrieves an organization by its id.
func (r *PostgreSQLOrgRepository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*orgDomain.Organization, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM organizations WHERE id = $1`

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
func (r *PostgreSQLOrgRepository) AddMember(
	ctx context.Context,
	membership *orgDomain.Membership,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO org_memberships (id, user_id, org_id, role, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

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
		if isPostgreSQLUniqueViolation(err) {
			return orgDomain.ErrAlreadyMember
		}
		return apperrors.WrapStorage(err, "add organization member")
	}
	return nil
}

// GetMembership retrieves the membership for a user within an organization.
func (r *PostgreSQLOrgRepository) GetMembership(
	ctx context.Context,
	userID, orgID uuid.UUID,
) (*orgDomain.Membership, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, org_id, role, created_at
			  FROM org_memberships
			  WHERE user_id = $1 AND org_id = $2`

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

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique
// constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "duplicate key")
}

// Package usecase implements organization management: creating organizations
// and binding users to them. Memberships created here feed the permission gate
// consulted on every secret operation.
package usecase

import (
	"context"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/allisson/user-secrets/internal/database"
	orgDomain "github.com/allisson/user-secrets/internal/org/domain"
	userUseCase "github.com/allisson/user-secrets/internal/user/usecase"
	appValidation "github.com/allisson/user-secrets/internal/validation"
)

// CreateOrganizationInput contains the input data for organization creation.
type CreateOrganizationInput struct {
	Name string `json:"name"`
}

// UseCase defines the interface for organization business logic operations.
type UseCase interface {
	CreateOrganization(ctx context.Context, input CreateOrganizationInput) (*orgDomain.Organization, error)
	AddMember(ctx context.Context, orgID, userID uuid.UUID, role orgDomain.Role) (*orgDomain.Membership, error)
}

// OrgRepository interface defines organization repository operations.
type OrgRepository interface {
	Create(ctx context.Context, org *orgDomain.Organization) error
	GetByID(ctx context.Context, id uuid.UUID) (*orgDomain.Organization, error)
	AddMember(ctx context.Context, membership *orgDomain.Membership) error
	GetMembership(ctx context.Context, userID, orgID uuid.UUID) (*orgDomain.Membership, error)
}

// OrgUseCase handles organization-related business logic.
type OrgUseCase struct {
	txManager database.TxManager
	orgRepo   OrgRepository
	userRepo  userUseCase.UserRepository
}

// NewOrgUseCase creates a new OrgUseCase.
func NewOrgUseCase(
	txManager database.TxManager,
	orgRepo OrgRepository,
	userRepo userUseCase.UserRepository,
) UseCase {
	return &OrgUseCase{
		txManager: txManager,
		orgRepo:   orgRepo,
		userRepo:  userRepo,
	}
}

// CreateOrganization creates a new organization.
func (uc *OrgUseCase) CreateOrganization(
	ctx context.Context,
	input CreateOrganizationInput,
) (*orgDomain.Organization, error) {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
	)
	if err != nil {
		return nil, appValidation.WrapValidationError(err)
	}

	now := time.Now().UTC()
	org := &orgDomain.Organization{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      strings.TrimSpace(input.Name),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.orgRepo.Create(ctx, org); err != nil {
		return nil, err
	}

	return org, nil
}

// AddMember binds a user to an organization with the given role. The role
// defaults to member when empty; the org and user must both exist.
func (uc *OrgUseCase) AddMember(
	ctx context.Context,
	orgID, userID uuid.UUID,
	role orgDomain.Role,
) (*orgDomain.Membership, error) {
	if role == "" {
		role = orgDomain.RoleMember
	}
	if role != orgDomain.RoleAdmin && role != orgDomain.RoleMember {
		return nil, appValidation.WrapValidationError(
			validation.NewError("validation_role", "role must be admin or member"),
		)
	}

	membership := &orgDomain.Membership{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    userID,
		OrgID:     orgID,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	// The existence checks and the insert share one transaction.
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if _, err := uc.orgRepo.GetByID(ctx, orgID); err != nil {
			return err
		}
		if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
			return err
		}
		return uc.orgRepo.AddMember(ctx, membership)
	})
	if err != nil {
		return nil, err
	}

	return membership, nil
}

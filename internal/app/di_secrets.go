package app

import (
	"fmt"
	"sync"

	authUsecase "github.com/allisson/user-secrets/internal/auth/usecase"
	secretsHTTP "github.com/allisson/user-secrets/internal/secrets/http"
	secretsRepository "github.com/allisson/user-secrets/internal/secrets/repository"
	secretsUsecase "github.com/allisson/user-secrets/internal/secrets/usecase"
)

// secretDependencies groups the secret module wiring inside the container.
type secretDependencies struct {
	repo        secretsUsecase.SecretRepository
	permissions authUsecase.OrgPermissionChecker
	useCase     secretsUsecase.SecretUseCase
	handler     *secretsHTTP.SecretHandler
	repoInit    sync.Once
	permInit    sync.Once
	useCaseInit sync.Once
	handlerInit sync.Once
}

// SecretRepository returns the user secret repository instance.
func (c *Container) SecretRepository() (secretsUsecase.SecretRepository, error) {
	c.secretDeps.repoInit.Do(func() {
		repo, err := c.initSecretRepository()
		if err != nil {
			c.initErrors["secretRepo"] = err
			return
		}
		c.secretDeps.repo = repo
	})
	if storedErr, exists := c.initErrors["secretRepo"]; exists {
		return nil, storedErr
	}
	return c.secretDeps.repo, nil
}

// OrgPermissionChecker returns the membership-backed permission gate.
func (c *Container) OrgPermissionChecker() (authUsecase.OrgPermissionChecker, error) {
	c.secretDeps.permInit.Do(func() {
		orgRepo, err := c.OrgRepository()
		if err != nil {
			c.initErrors["orgPermissionChecker"] = fmt.Errorf(
				"failed to get org repository for permission checker: %w", err)
			return
		}
		c.secretDeps.permissions = authUsecase.NewMembershipPermissionChecker(orgRepo)
	})
	if storedErr, exists := c.initErrors["orgPermissionChecker"]; exists {
		return nil, storedErr
	}
	return c.secretDeps.permissions, nil
}

// SecretUseCase returns the secret use case, wrapped with metrics recording.
func (c *Container) SecretUseCase() (secretsUsecase.SecretUseCase, error) {
	c.secretDeps.useCaseInit.Do(func() {
		permissions, err := c.OrgPermissionChecker()
		if err != nil {
			c.initErrors["secretUseCase"] = err
			return
		}
		repo, err := c.SecretRepository()
		if err != nil {
			c.initErrors["secretUseCase"] = err
			return
		}
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["secretUseCase"] = err
			return
		}
		useCase := secretsUsecase.NewSecretUseCase(permissions, repo)
		c.secretDeps.useCase = secretsUsecase.NewSecretUseCaseWithMetrics(useCase, businessMetrics)
	})
	if storedErr, exists := c.initErrors["secretUseCase"]; exists {
		return nil, storedErr
	}
	return c.secretDeps.useCase, nil
}

// SecretHandler returns the HTTP handler for secret operations.
func (c *Container) SecretHandler() (*secretsHTTP.SecretHandler, error) {
	c.secretDeps.handlerInit.Do(func() {
		useCase, err := c.SecretUseCase()
		if err != nil {
			c.initErrors["secretHandler"] = err
			return
		}
		c.secretDeps.handler = secretsHTTP.NewSecretHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["secretHandler"]; exists {
		return nil, storedErr
	}
	return c.secretDeps.handler, nil
}

// initSecretRepository creates the user secret repository instance.
func (c *Container) initSecretRepository() (secretsUsecase.SecretRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for secret repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return secretsRepository.NewMySQLSecretRepository(db), nil
	case "postgres":
		return secretsRepository.NewPostgreSQLSecretRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

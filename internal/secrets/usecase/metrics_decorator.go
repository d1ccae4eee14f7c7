package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/user-secrets/internal/auth/domain"
	"github.com/allisson/user-secrets/internal/metrics"
	secretsDomain "github.com/allisson/user-secrets/internal/secrets/domain"
)

// secretUseCaseWithMetrics decorates SecretUseCase with metrics instrumentation.
type secretUseCaseWithMetrics struct {
	next    SecretUseCase
	metrics metrics.BusinessMetrics
}

// NewSecretUseCaseWithMetrics wraps a SecretUseCase with metrics recording.
func NewSecretUseCaseWithMetrics(useCase SecretUseCase, m metrics.BusinessMetrics) SecretUseCase {
	return &secretUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record emits the counter and duration for one operation.
func (s *secretUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "user_secrets", operation, status)
	s.metrics.RecordDuration(ctx, "user_secrets", operation, time.Since(start), status)
}

// Create records metrics for secret creation operations.
func (s *secretUseCaseWithMetrics) Create(
	ctx context.Context,
	actor authDomain.Actor,
	input CreateSecretInput,
) (uuid.UUID, error) {
	start := time.Now()
	id, err := s.next.Create(ctx, actor, input)
	s.record(ctx, "secret_create", start, err)
	return id, err
}

// List records metrics for secret listing operations.
func (s *secretUseCaseWithMetrics) List(
	ctx context.Context,
	actor authDomain.Actor,
	offset, limit int,
) (*SecretPage, error) {
	start := time.Now()
	page, err := s.next.List(ctx, actor, offset, limit)
	s.record(ctx, "secret_list", start, err)
	return page, err
}

// Delete records metrics for secret deletion operations.
func (s *secretUseCaseWithMetrics) Delete(
	ctx context.Context,
	actor authDomain.Actor,
	secretID uuid.UUID,
) (*secretsDomain.UserSecret, error) {
	start := time.Now()
	secret, err := s.next.Delete(ctx, actor, secretID)
	s.record(ctx, "secret_delete", start, err)
	return secret, err
}

// Reveal records metrics for possession-gated read operations.
func (s *secretUseCaseWithMetrics) Reveal(
	ctx context.Context,
	actor authDomain.Actor,
	secretID uuid.UUID,
	claimedHash string,
) (*secretsDomain.UserSecret, error) {
	start := time.Now()
	secret, err := s.next.Reveal(ctx, actor, secretID, claimedHash)
	s.record(ctx, "secret_reveal", start, err)
	return secret, err
}

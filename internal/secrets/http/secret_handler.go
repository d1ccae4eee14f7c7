// Package http provides HTTP handlers for user secret operations. Secrets
// arrive already sealed on the client; the server stores and serves opaque
// envelopes and never handles key material.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/user-secrets/internal/auth/http"
	apperrors "github.com/allisson/user-secrets/internal/errors"
	"github.com/allisson/user-secrets/internal/httputil"
	secretsDomain "github.com/allisson/user-secrets/internal/secrets/domain"
	"github.com/allisson/user-secrets/internal/secrets/http/dto"
	secretsUseCase "github.com/allisson/user-secrets/internal/secrets/usecase"
	customValidation "github.com/allisson/user-secrets/internal/validation"
)

// SecretHandler handles HTTP requests for user secret operations.
// It resolves the actor from the request context and delegates to SecretUseCase.
type SecretHandler struct {
	secretUseCase secretsUseCase.SecretUseCase
	logger        *slog.Logger
}

// NewSecretHandler creates a new secret handler with required dependencies.
func NewSecretHandler(
	secretUseCase secretsUseCase.SecretUseCase,
	logger *slog.Logger,
) *SecretHandler {
	return &SecretHandler{
		secretUseCase: secretUseCase,
		logger:        logger,
	}
}

// CreateHandler stores a new client-sealed secret.
// POST /v1/user-secrets
// Returns 201 Created with the secret id only.
func (h *SecretHandler) CreateHandler(c *gin.Context) {
	actor, ok := authHTTP.GetActor(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.CreateUserSecretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := secretsUseCase.CreateSecretInput{
		Name:           req.Name,
		Kind:           secretsDomain.SecretKind(req.Kind),
		EncryptedValue: req.EncryptedValue,
		IV:             req.IV,
		Tag:            req.Tag,
		HashedHex:      req.HashedHex,
	}

	id, err := h.secretUseCase.Create(c.Request.Context(), actor, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateUserSecretResponse{ID: id.String()})
}

// ListHandler retrieves the actor's secrets with pagination support.
// GET /v1/user-secrets?offset=0&limit=25
// Returns 200 OK with the page and the historical total count.
func (h *SecretHandler) ListHandler(c *gin.Context) {
	actor, ok := authHTTP.GetActor(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	page, err := h.secretUseCase.List(c.Request.Context(), actor, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSecretsToListResponse(page))
}

// DeleteHandler tombstones a secret by id.
// DELETE /v1/user-secrets/:id
// Returns 200 OK with the pre-tombstone projection as confirmation.
func (h *SecretHandler) DeleteHandler(c *gin.Context) {
	actor, ok := authHTTP.GetActor(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	secretID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			customValidation.WrapValidationError(apperrors.New("id must be a valid uuid")),
			h.logger,
		)
		return
	}

	secret, err := h.secretUseCase.Delete(c.Request.Context(), actor, secretID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSecretToDeleteResponse(secret))
}

// RevealHandler returns the envelope triple for client-side decryption when
// the claimed key hash matches the stored verification hash.
// POST /v1/user-secrets/:id/reveal
// Returns 200 OK with the envelope fields.
func (h *SecretHandler) RevealHandler(c *gin.Context) {
	actor, ok := authHTTP.GetActor(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	secretID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			customValidation.WrapValidationError(apperrors.New("id must be a valid uuid")),
			h.logger,
		)
		return
	}

	var req dto.RevealUserSecretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	secret, err := h.secretUseCase.Reveal(c.Request.Context(), actor, secretID, req.HashedHex)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSecretToResponse(secret))
}

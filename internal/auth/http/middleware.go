// Package http provides HTTP middleware and utilities for actor resolution.
package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/allisson/user-secrets/internal/auth/domain"
	apperrors "github.com/allisson/user-secrets/internal/errors"
	"github.com/allisson/user-secrets/internal/httputil"
)

// Actor resolution headers. Authentication happens at the edge; this service
// trusts the gateway-injected identity headers.
const (
	HeaderActorID    = "X-Actor-Id"
	HeaderActorKind  = "X-Actor-Kind"
	HeaderAuthMethod = "X-Auth-Method"
	HeaderOrgID      = "X-Org-Id"
)

// ActorMiddleware resolves the authenticated actor from the identity headers
// and stores it in the request context.
//
// The middleware:
// 1. Reads X-Actor-Id, X-Actor-Kind, X-Auth-Method and X-Org-Id
// 2. Validates ids as UUIDs and kind/method against their closed sets
// 3. Stores the resolved actor in the request context via WithActor
//
// X-Org-Id is optional at this layer; operations that require an organization
// scope reject actors without one downstream.
//
// Error handling:
//   - Missing or malformed X-Actor-Id → 401 Unauthorized
//   - Unknown actor kind or auth method → 401 Unauthorized
//   - Malformed X-Org-Id → 401 Unauthorized
func ActorMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID, err := uuid.Parse(c.GetHeader(HeaderActorID))
		if err != nil || actorID == uuid.Nil {
			logger.Debug("actor resolution failed: missing or malformed actor id")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		kind, ok := authDomain.ParseActorKind(c.GetHeader(HeaderActorKind))
		if !ok {
			logger.Debug("actor resolution failed: unknown actor kind",
				slog.String("kind", c.GetHeader(HeaderActorKind)))
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		method, ok := authDomain.ParseAuthMethod(c.GetHeader(HeaderAuthMethod))
		if !ok {
			logger.Debug("actor resolution failed: unknown auth method",
				slog.String("auth_method", c.GetHeader(HeaderAuthMethod)))
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		orgID := uuid.Nil
		if rawOrgID := c.GetHeader(HeaderOrgID); rawOrgID != "" {
			orgID, err = uuid.Parse(rawOrgID)
			if err != nil {
				logger.Debug("actor resolution failed: malformed org id",
					slog.String("org_id", rawOrgID))
				httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
				c.Abort()
				return
			}
		}

		actor := authDomain.Actor{
			Kind:       kind,
			ID:         actorID,
			AuthMethod: method,
			OrgID:      orgID,
		}

		ctx := WithActor(c.Request.Context(), actor)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("actor resolved",
			slog.String("actor_id", actor.ID.String()),
			slog.String("actor_kind", string(actor.Kind)),
			slog.String("auth_method", string(actor.AuthMethod)))

		c.Next()
	}
}

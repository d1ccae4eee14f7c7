// Package http provides HTTP middleware and utilities for actor resolution.
package http

import (
	"context"

	authDomain "github.com/allisson/user-secrets/internal/auth/domain"
)

// actorKey is a context key type for storing resolved actors.
type actorKey struct{}

// WithActor stores a resolved actor in the context.
// This is typically called by the actor middleware after header resolution.
func WithActor(ctx context.Context, actor authDomain.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// GetActor retrieves the resolved actor from the context.
// Returns (actor, true) if an actor is present, or (zero, false) if none was set.
func GetActor(ctx context.Context) (authDomain.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(authDomain.Actor)
	return actor, ok
}

// Package domain defines the authenticated actor model consumed by the core.
// Authentication itself happens upstream; the transport hands every request an
// already resolved actor bound to an organization context.
package domain

import (
	"github.com/google/uuid"
)

// ActorKind identifies the type of principal performing an operation.
type ActorKind string

// Actor kinds.
const (
	// ActorUser is a human principal.
	ActorUser ActorKind = "user"
	// ActorIdentity is a machine principal.
	ActorIdentity ActorKind = "identity"
)

// AuthMethod records how the actor was authenticated upstream.
type AuthMethod string

// Auth methods.
const (
	AuthMethodJWT         AuthMethod = "jwt"
	AuthMethodAccessToken AuthMethod = "access-token"
)

// Actor is the authenticated principal performing an operation, always
// evaluated within an organization scope.
type Actor struct {
	Kind       ActorKind
	ID         uuid.UUID
	AuthMethod AuthMethod
	// OrgID is the organization context the actor is acting in. The zero UUID
	// means no organization was resolved for the request.
	OrgID uuid.UUID
}

// HasOrg reports whether an organization context was resolved.
func (a Actor) HasOrg() bool {
	return a.OrgID != uuid.Nil
}

// ParseActorKind validates a string against the closed actor kind set.
func ParseActorKind(s string) (ActorKind, bool) {
	switch ActorKind(s) {
	case ActorUser:
		return ActorUser, true
	case ActorIdentity:
		return ActorIdentity, true
	}
	return "", false
}

// ParseAuthMethod validates a string against the closed auth method set.
func ParseAuthMethod(s string) (AuthMethod, bool) {
	switch AuthMethod(s) {
	case AuthMethodJWT:
		return AuthMethodJWT, true
	case AuthMethodAccessToken:
		return AuthMethodAccessToken, true
	}
	return "", false
}

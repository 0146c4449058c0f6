package security

import (
	"context"

	"rentadesk-backend/internal/domain"
)

// Actor is the identity attributed to a checkout/checkin record.
type Actor struct {
	Kind domain.ActorKind
	ID   *int32
}

// None is the actor recorded when no identity is resolvable. Absence of an
// actor is data, not a failure.
func None() Actor {
	return Actor{Kind: domain.ActorKindNone}
}

// ActorResolver determines which identity performed the current request.
type ActorResolver interface {
	CurrentActor(ctx context.Context) Actor
}

type ctxKey int

const (
	accountIDKey ctxKey = iota
	tenantLocalIDKey
)

// WithAccountID marks ctx as authenticated by a primary account identity.
func WithAccountID(ctx context.Context, id int32) context.Context {
	return context.WithValue(ctx, accountIDKey, id)
}

// WithTenantLocalID marks ctx as authenticated by a tenant-local credential.
func WithTenantLocalID(ctx context.Context, id int32) context.Context {
	return context.WithValue(ctx, tenantLocalIDKey, id)
}

type contextActorResolver struct{}

// NewActorResolver returns a resolver backed by the identities the auth
// middleware stored on the request context.
func NewActorResolver() ActorResolver {
	return contextActorResolver{}
}

// CurrentActor resolves in fixed priority order: the primary account identity
// wins over the tenant-local one, and only one is ever reported.
func (contextActorResolver) CurrentActor(ctx context.Context) Actor {
	if id, ok := ctx.Value(accountIDKey).(int32); ok {
		return Actor{Kind: domain.ActorKindAccount, ID: &id}
	}
	if id, ok := ctx.Value(tenantLocalIDKey).(int32); ok {
		return Actor{Kind: domain.ActorKindTenantLocal, ID: &id}
	}
	return None()
}

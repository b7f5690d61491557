package auth

import (
	"context"

	"github.com/wanderlist-dev/wanderlist/pkg/api"
)

// principalKey is a private type for the principal context key.
type principalKey struct{}

// SetPrincipal stores the authenticated principal's claims in the context.
func SetPrincipal(ctx context.Context, claims *api.Claims) context.Context {
	return context.WithValue(ctx, principalKey{}, claims)
}

// PrincipalFromContext retrieves the authenticated principal's claims.
// Returns nil if the request did not pass through the auth middleware.
func PrincipalFromContext(ctx context.Context) *api.Claims {
	if v, ok := ctx.Value(principalKey{}).(*api.Claims); ok {
		return v
	}
	return nil
}

package auth

import "context"

// contextKey is a private type for context keys so no other package can
// collide with or forge the stored identity.
type contextKey string

const claimsContextKey contextKey = "auth_claims"

// NewContextWithClaims returns a child context carrying the verified claims.
func NewContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext extracts the verified claims attached by the Identify
// middleware. The second return value reports whether an identity is present;
// absence is an expected state, not an error.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	return claims, ok
}

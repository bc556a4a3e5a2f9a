package ports

import "context"

// AuthProvider supplies the bearer credential attached to outbound backend
// requests and owns the session's reaction to authentication failures.
// Attaching the credential, skipping it on public order-facing paths, and
// invalidating the session on 401/403/423-class responses are policy handled
// by the outbound adapter; the core never sees credentials.
type AuthProvider interface {
	// Token returns the current bearer credential, or "" when no session
	// is active.
	Token(ctx context.Context) string

	// Invalidate discards the current session credential. Called when the
	// backend answers with an authentication-failure status.
	Invalidate()
}

type bearerTokenKey struct{}

// WithBearerToken stores a request-scoped bearer credential in the context so
// outbound calls made on behalf of the request can forward it.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerTokenKey{}, token)
}

// BearerTokenFromContext returns the request-scoped bearer credential, or ""
// when the request carried none.
func BearerTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(bearerTokenKey{}).(string)
	return token
}

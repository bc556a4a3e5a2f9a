package backendapi

import (
	"context"
	"sync"

	"driverroutes/internal/core/ports"
)

// SessionTokenProvider implements ports.AuthProvider. A request-scoped bearer
// carried in the context takes precedence; otherwise the service-level token
// configured at startup is used. Invalidation discards the service token,
// request-scoped credentials expire with their request.
type SessionTokenProvider struct {
	mu    sync.RWMutex
	token string
}

// NewSessionTokenProvider creates a provider seeded with the service token.
// An empty token is allowed: public order paths need none.
func NewSessionTokenProvider(serviceToken string) *SessionTokenProvider {
	return &SessionTokenProvider{token: serviceToken}
}

// Token returns the credential for an outbound call.
func (p *SessionTokenProvider) Token(ctx context.Context) string {
	if token := ports.BearerTokenFromContext(ctx); token != "" {
		return token
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.token
}

// Invalidate discards the service-level credential.
func (p *SessionTokenProvider) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = ""
}

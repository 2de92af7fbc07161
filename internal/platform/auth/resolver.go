package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/todo-store/internal/domain"
	"github.com/jsamuelsen11/todo-store/internal/domain/todo"
	"github.com/jsamuelsen11/todo-store/internal/platform/config"
)

// Resolver extracts the caller identity from an inbound request.
// It returns ("", nil) when the request carries no credentials, and an error
// wrapping domain.ErrUnauthenticated when credentials are present but invalid.
type Resolver interface {
	Resolve(r *http.Request) (todo.Identity, error)
}

// BearerResolver resolves callers from a signed bearer token.
type BearerResolver struct {
	tokens *Service
}

// NewBearerResolver creates a BearerResolver backed by tokens.
func NewBearerResolver(tokens *Service) *BearerResolver {
	return &BearerResolver{tokens: tokens}
}

// Resolve implements Resolver.
func (b *BearerResolver) Resolve(r *http.Request) (todo.Identity, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", nil
	}
	token, ok := BearerToken(header)
	if !ok {
		return "", fmt.Errorf("malformed authorization header: %w", domain.ErrUnauthenticated)
	}
	return b.tokens.Verify(token)
}

// HeaderResolver trusts a plain request header as the caller identity.
// Only suitable behind a trusted proxy or for local development.
type HeaderResolver struct {
	name string
}

// NewHeaderResolver creates a HeaderResolver reading the named header.
func NewHeaderResolver(name string) *HeaderResolver {
	return &HeaderResolver{name: name}
}

// Resolve implements Resolver.
func (h *HeaderResolver) Resolve(r *http.Request) (todo.Identity, error) {
	return todo.Identity(strings.TrimSpace(r.Header.Get(h.name))), nil
}

// NewResolver builds the Resolver selected by cfg.Mode.
func NewResolver(cfg config.AuthConfig) (Resolver, error) {
	switch cfg.Mode {
	case config.AuthModeJWT:
		svc, err := New(cfg.JWT)
		if err != nil {
			return nil, err
		}
		return NewBearerResolver(svc), nil
	case config.AuthModeHeader:
		return NewHeaderResolver(cfg.Header), nil
	default:
		return nil, fmt.Errorf("auth: unsupported mode %q", cfg.Mode)
	}
}

type callerKey struct{}

// WithCaller returns a copy of ctx carrying the resolved caller identity.
func WithCaller(ctx context.Context, caller todo.Identity) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// CallerFromContext returns the caller stored by WithCaller. ok is false for
// anonymous requests.
func CallerFromContext(ctx context.Context) (caller todo.Identity, ok bool) {
	caller, _ = ctx.Value(callerKey{}).(todo.Identity)
	return caller, !caller.IsZero()
}

// Package auth issues and verifies the HS256 bearer tokens that identify
// store callers. The token subject is the caller identity.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-store/internal/domain"
	"github.com/jsamuelsen11/todo-store/internal/domain/todo"
	"github.com/jsamuelsen11/todo-store/internal/platform/config"
)

// DefaultTTL is the token lifetime used when Issue is given ttl <= 0.
const DefaultTTL = time.Hour

// ErrEmptySecret is returned by New when no signing key is configured.
var ErrEmptySecret = errors.New("auth: jwt secret must not be empty")

// Claims are the registered claims carried by a store token.
type Claims struct {
	jwt.RegisteredClaims
}

// Service signs and validates tokens with a shared HMAC key.
type Service struct {
	signingKey []byte
	issuer     string
	audience   string
	now        func() time.Time
}

// New creates a Service from the auth.jwt config section.
func New(cfg config.JWTConfig) (*Service, error) {
	if cfg.Secret == "" {
		return nil, ErrEmptySecret
	}
	return &Service{
		signingKey: []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		audience:   cfg.Audience,
		now:        time.Now,
	}, nil
}

// Issue returns a signed token whose subject is subject.
func (s *Service) Issue(subject todo.Identity, ttl time.Duration) (string, error) {
	if subject.IsZero() {
		return "", &domain.ValidationError{Fields: map[string]string{"subject": domain.MsgRequired}}
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}
	if s.audience != "" {
		claims.Audience = jwt.ClaimStrings{s.audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify validates token and returns its subject as the caller identity.
// Every failure wraps domain.ErrUnauthenticated.
func (s *Service) Verify(token string) (todo.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	if s.audience != "" {
		opts = append(opts, jwt.WithAudience(s.audience))
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (any, error) {
		return s.signingKey, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("token has expired: %w", domain.ErrUnauthenticated)
		}
		return "", fmt.Errorf("invalid token: %w", domain.ErrUnauthenticated)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return "", fmt.Errorf("invalid token claims: %w", domain.ErrUnauthenticated)
	}

	subject := todo.Identity(claims.Subject)
	if subject.IsZero() {
		return "", fmt.Errorf("token has no subject: %w", domain.ErrUnauthenticated)
	}
	return subject, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. ok is false when the scheme is missing or the token is empty.
func BearerToken(header string) (token string, ok bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

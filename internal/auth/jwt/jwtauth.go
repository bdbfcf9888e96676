package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jekabolt/grbpwr-tickets/internal/entity"
)

const (
	claimName = "name"
	claimRole = "role"
)

var ErrNoSession = errors.New("no session in token")

// NewSessionToken creates a JWT carrying the session as sub, name and role claims.
func NewSessionToken(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, s entity.Session) (string, error) {
	if s.UserId == "" {
		return "", ErrNoSession
	}
	claims := map[string]interface{}{
		"sub":     s.UserId,
		"exp":     time.Now().Add(ttl).Unix(),
		claimName: s.DisplayName,
		claimRole: string(s.Role),
	}
	_, ts, err := jwtAuth.Encode(claims)
	if err != nil {
		return "", fmt.Errorf("can't encode token: %w", err)
	}
	return ts, nil
}

// VerifySessionToken verifies token and returns the session it carries.
func VerifySessionToken(jwtAuth *jwtauth.JWTAuth, token string) (entity.Session, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return entity.Session{}, err
	}
	claims := map[string]interface{}{"sub": t.Subject()}
	for k, v := range t.PrivateClaims() {
		claims[k] = v
	}
	return SessionFromClaims(claims)
}

// SessionFromContext reads the session of a request verified by jwtauth.Verifier.
func SessionFromContext(ctx context.Context) (entity.Session, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return entity.Session{}, err
	}
	return SessionFromClaims(claims)
}

// SessionFromClaims maps token claims to a session. Unknown roles fall back
// to a regular user.
func SessionFromClaims(claims map[string]interface{}) (entity.Session, error) {
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return entity.Session{}, ErrNoSession
	}
	name, _ := claims[claimName].(string)
	role := entity.RoleUser
	if r, _ := claims[claimRole].(string); entity.Role(r) == entity.RoleAdmin {
		role = entity.RoleAdmin
	}
	return entity.Session{
		UserId:      sub,
		DisplayName: name,
		Role:        role,
	}, nil
}

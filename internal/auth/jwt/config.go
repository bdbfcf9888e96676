package jwt

import (
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jekabolt/grbpwr-tickets/internal/entity"
)

// Config contains the token settings.
type Config struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	JWTTTL    string `mapstructure:"jwt_ttl"`
}

// Auth issues and verifies session tokens.
type Auth struct {
	JwtAuth *jwtauth.JWTAuth
	ttl     time.Duration
}

// New creates an HS256 token authority. An empty ttl defaults to 24h.
func New(c *Config) (*Auth, error) {
	if c.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is empty")
	}
	ttl := 24 * time.Hour
	if c.JWTTTL != "" {
		var err error
		ttl, err = time.ParseDuration(c.JWTTTL)
		if err != nil {
			return nil, fmt.Errorf("can't parse jwt ttl: %w", err)
		}
	}
	return &Auth{
		JwtAuth: jwtauth.New("HS256", []byte(c.JWTSecret), nil),
		ttl:     ttl,
	}, nil
}

func (a *Auth) Issue(s entity.Session) (string, error) {
	return NewSessionToken(a.JwtAuth, a.ttl, s)
}

func (a *Auth) Verify(token string) (entity.Session, error) {
	return VerifySessionToken(a.JwtAuth, token)
}

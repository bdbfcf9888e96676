package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/render"
	"github.com/jekabolt/grbpwr-tickets/internal/auth/jwt"
	"github.com/jekabolt/grbpwr-tickets/internal/entity"
)

type ctxKey struct{}

// withSession rejects requests without a valid session token and stores the
// session for the handlers.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := jwt.SessionFromContext(r.Context())
		if err != nil {
			render.Render(w, r, ErrUnauthorized(err))
			return
		}
		ctx := context.WithValue(r.Context(), ctxKey{}, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFrom(ctx context.Context) entity.Session {
	s, _ := ctx.Value(ctxKey{}).(entity.Session)
	return s
}

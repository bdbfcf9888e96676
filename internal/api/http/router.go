package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
)

// Router builds the REST and event stream routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			return isOriginAllowed(origin, s.c.AllowedOrigins)
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Authorization", "Last-Event-ID"},
		MaxAge:         300,
	}))
	r.Use(httprate.Limit(
		s.c.requestsPerMinute(),
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			render.Render(w, r, ErrTooManyRequests)
		}),
	))

	r.Get("/healthz", s.healthz)

	r.Route("/api/tickets", func(r chi.Router) {
		r.Use(jwtauth.Verifier(s.auth.JwtAuth))
		r.Use(s.withSession)
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Post("/", s.createTicket)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getTicket)
			r.Patch("/", s.updateTicket)
			r.Delete("/", s.deleteTicket)
			r.Get("/menu", s.ticketMenu)
			r.Get("/events", s.ticketEvents)
			r.Post("/comments", s.addComment)
		})
	})

	return r
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		render.Render(w, r, ErrUnavailable(err))
		return
	}
	render.JSON(w, r, map[string]string{"status": "ok"})
}

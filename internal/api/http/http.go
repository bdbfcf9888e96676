package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"log/slog"

	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	grpcSlog "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"

	"github.com/jekabolt/grbpwr-tickets/internal/auth/jwt"
	"github.com/jekabolt/grbpwr-tickets/internal/dependency"
	"github.com/jekabolt/grbpwr-tickets/internal/ratelimit"
	"github.com/jekabolt/grbpwr-tickets/internal/ticketform"
	"github.com/jekabolt/grbpwr-tickets/log"
)

// Config is the configuration for the http server
type Config struct {
	Port              string        `mapstructure:"port"`
	Address           string        `mapstructure:"address"`
	AllowedOrigins    []string      `mapstructure:"allowed_origins"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
	MaxUploadBytes    int64         `mapstructure:"max_upload_bytes"`
	HeartbeatInterval time.Duration `mapstructure:"heartbeat_interval"`
}

func (c *Config) requestsPerMinute() int {
	if c.RequestsPerMinute <= 0 {
		return 120
	}
	return c.RequestsPerMinute
}

func (c *Config) maxUploadBytes() int64 {
	if c.MaxUploadBytes <= 0 {
		return 12 << 20
	}
	return c.MaxUploadBytes
}

func (c *Config) heartbeatInterval() time.Duration {
	if c.HeartbeatInterval <= 0 {
		return 15 * time.Second
	}
	return c.HeartbeatInterval
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server is the http server
type Server struct {
	hs      *http.Server
	gs      *grpc.Server
	health  *health.Server
	c       *Config
	store   dependency.LiveTickets
	files   dependency.FileStore
	auth    *jwt.Auth
	limiter *ratelimit.TicketLimiter
	form    *ticketform.Config
	db      Pinger
	done    chan struct{}
}

// New creates a new server
func New(
	config *Config,
	store dependency.LiveTickets,
	files dependency.FileStore,
	auth *jwt.Auth,
	limiter *ratelimit.TicketLimiter,
	formConfig *ticketform.Config,
	db Pinger,
) *Server {
	return &Server{
		c:       config,
		store:   store,
		files:   files,
		auth:    auth,
		limiter: limiter,
		form:    formConfig,
		db:      db,
		health:  health.NewServer(),
		done:    make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Start starts the server. gRPC health checks share the listener over h2c.
func (s *Server) Start(ctx context.Context) error {
	opts := []grpcSlog.Option{
		grpcSlog.WithLogOnEvents(grpcSlog.StartCall, grpcSlog.FinishCall),
	}

	s.gs = grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpcSlog.UnaryServerInterceptor(log.InterceptorLogger(slog.Default()), opts...),
			grpcRecovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpcSlog.StreamServerInterceptor(log.InterceptorLogger(slog.Default()), opts...),
			grpcRecovery.StreamServerInterceptor(),
		),
	)
	healthpb.RegisterHealthServer(s.gs, s.health)
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	router := s.Router()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ProtoMajor == 2 && strings.Contains(r.Header.Get("Content-Type"), "application/grpc") {
			s.gs.ServeHTTP(w, r)
			return
		}
		router.ServeHTTP(w, r)
	})

	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		defer close(s.done)
		slog.Default().InfoContext(ctx, "grbpwr-tickets new listener", slog.String("addr", "http://"+listenerAddr))
		err := s.hs.ListenAndServe()
		if err == http.ErrServerClosed {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
	}()

	return nil
}

// Stop marks the health service as not serving and shuts the listener down.
// Open event streams end with their request context.
func (s *Server) Stop(ctx context.Context) error {
	s.health.Shutdown()
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	// Always allow localhost origins
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}
	for _, allowedOrigin := range allowedOrigins {
		if allowedOrigin == "*" || origin == allowedOrigin {
			return true
		}
	}
	return false
}

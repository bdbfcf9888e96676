package app

import (
	"context"
	"sync"

	"log/slog"

	"github.com/jekabolt/grbpwr-tickets/config"
	httpapi "github.com/jekabolt/grbpwr-tickets/internal/api/http"
	"github.com/jekabolt/grbpwr-tickets/internal/auth/jwt"
	"github.com/jekabolt/grbpwr-tickets/internal/livesync"
	"github.com/jekabolt/grbpwr-tickets/internal/orphansweep"
	"github.com/jekabolt/grbpwr-tickets/internal/ratelimit"
	"github.com/jekabolt/grbpwr-tickets/internal/store"
)

// App is the main application
type App struct {
	hs    *httpapi.Server
	db    *store.SQLStore
	sweep *orphansweep.Worker
	c     *config.Config
	done  chan struct{}
	once  sync.Once
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting tickets service")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to database", slog.String("err", err.Error()))
		return err
	}

	files, err := a.c.Bucket.New()
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't create bucket", slog.String("err", err.Error()))
		return err
	}

	auth, err := jwt.New(&a.c.Auth)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't create token authority", slog.String("err", err.Error()))
		return err
	}

	live := livesync.New(a.db.Tickets(), nil, &a.c.Live)

	if a.c.OrphanSweep.Enabled {
		a.sweep = orphansweep.New(&a.c.OrphanSweep, a.db.Tickets())
		if err := a.sweep.Start(ctx); err != nil {
			return err
		}
	}

	a.hs = httpapi.New(
		&a.c.HTTP,
		live,
		files,
		auth,
		ratelimit.NewTicketLimiter(&a.c.RateLimit),
		&a.c.Form,
		a.db,
	)
	if err = a.hs.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server", slog.String("err", err.Error()))
		return err
	}

	go func() {
		<-a.hs.Done()
		a.once.Do(func() { close(a.done) })
	}()

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown", slog.String("err", err.Error()))
		}
	}
	if a.sweep != nil {
		if err := a.sweep.Stop(); err != nil {
			slog.Default().ErrorContext(ctx, "orphan sweep stop", slog.String("err", err.Error()))
		}
	}
	if a.db != nil {
		a.db.Close()
	}
	a.once.Do(func() { close(a.done) })
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() <-chan struct{} {
	return a.done
}

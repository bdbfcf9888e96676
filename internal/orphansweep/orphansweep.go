// Package orphansweep removes comments left behind by deleted tickets.
package orphansweep

import (
	"context"
	"fmt"
	"time"

	"github.com/jekabolt/grbpwr-tickets/internal/dependency"
)

// Config holds configuration for the orphan sweep worker.
type Config struct {
	Enabled        bool          `mapstructure:"enabled"`
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		WorkerInterval: time.Hour,
	}
}

// Worker periodically deletes comments whose ticket no longer exists.
// Ticket deletion itself never touches comments.
type Worker struct {
	tickets dependency.Tickets
	c       *Config
	ctx     context.Context
	stop    context.CancelFunc
	done    chan struct{}
}

// New creates a new orphan sweep worker.
func New(c *Config, tickets dependency.Tickets) *Worker {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.WorkerInterval == 0 {
		c.WorkerInterval = time.Hour
	}
	return &Worker{
		tickets: tickets,
		c:       c,
	}
}

// Start starts the worker.
func (w *Worker) Start(ctx context.Context) error {
	if w.ctx != nil && w.stop != nil {
		return fmt.Errorf("orphan sweep worker already started")
	}
	w.ctx, w.stop = context.WithCancel(ctx)
	w.done = make(chan struct{})
	go w.worker(w.ctx)
	return nil
}

// Stop stops the worker and waits for a running sweep to finish.
func (w *Worker) Stop() error {
	if w.stop == nil {
		return fmt.Errorf("orphan sweep worker already stopped or not started")
	}
	w.stop()
	<-w.done
	w.stop = nil
	w.ctx = nil
	return nil
}

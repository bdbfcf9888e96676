package orphansweep

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jekabolt/grbpwr-tickets/log"
)

func (w *Worker) worker(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.c.WorkerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := w.Sweep(ctx); err != nil {
				slog.Default().ErrorContext(ctx, "can't sweep orphan comments",
					log.Err(err),
				)
			}
		case <-ctx.Done():
			return
		}
	}
}

// Sweep runs one sweep and returns the number of deleted comments.
func (w *Worker) Sweep(ctx context.Context) (int64, error) {
	n, err := w.tickets.DeleteOrphanComments(ctx)
	if err != nil {
		return 0, fmt.Errorf("can't delete orphan comments: %w", err)
	}
	if n > 0 {
		slog.Default().InfoContext(ctx, "deleted orphan comments",
			slog.Int64("count", n),
		)
	}
	return n, nil
}

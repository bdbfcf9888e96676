// Package ratelimit bounds how often a user may create tickets.
package ratelimit

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var ErrLimited = errors.New("rate limited")

// Config holds ticket creation limits.
type Config struct {
	TicketsPerHour int `mapstructure:"tickets_per_hour"`
}

// window keeps the creation times of one key inside the sliding window.
type window struct {
	hits []time.Time
}

func (w *window) prune(cutoff time.Time) {
	i := 0
	for i < len(w.hits) && !w.hits[i].After(cutoff) {
		i++
	}
	w.hits = w.hits[i:]
}

// TicketLimiter is an in-memory sliding window limiter keyed by user id.
// Keys whose window empties are dropped on the next check.
type TicketLimiter struct {
	mu     sync.Mutex
	keys   map[string]*window
	span   time.Duration
	max    int
	now    func() time.Time
	checks int
}

// NewTicketLimiter allows c.TicketsPerHour creations per user in any hour.
// A nil config or a non-positive value disables the limit.
func NewTicketLimiter(c *Config) *TicketLimiter {
	t := &TicketLimiter{
		keys: make(map[string]*window),
		span: time.Hour,
		now:  time.Now,
	}
	if c != nil && c.TicketsPerHour > 0 {
		t.max = c.TicketsPerHour
	}
	return t
}

func (t *TicketLimiter) disabled() bool {
	return t.max <= 0
}

// CheckTicketCreation records a creation for userId or returns ErrLimited.
func (t *TicketLimiter) CheckTicketCreation(userId string) error {
	if t.disabled() {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.sweepLocked(now)

	w, ok := t.keys[userId]
	if !ok {
		w = &window{}
		t.keys[userId] = w
	}
	w.prune(now.Add(-t.span))
	if len(w.hits) >= t.max {
		return fmt.Errorf("%w: too many tickets created, please try again later", ErrLimited)
	}
	w.hits = append(w.hits, now)
	return nil
}

// Remaining returns the creations left for userId, -1 when unlimited.
func (t *TicketLimiter) Remaining(userId string) int {
	if t.disabled() {
		return -1
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	w, ok := t.keys[userId]
	if !ok {
		return t.max
	}
	w.prune(t.now().Add(-t.span))
	return max(t.max-len(w.hits), 0)
}

// sweepLocked drops idle keys every hundred checks.
func (t *TicketLimiter) sweepLocked(now time.Time) {
	t.checks++
	if t.checks%100 != 0 {
		return
	}
	cutoff := now.Add(-t.span)
	for k, w := range t.keys {
		w.prune(cutoff)
		if len(w.hits) == 0 {
			delete(t.keys, k)
		}
	}
}

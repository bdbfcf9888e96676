package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func newLimiter(perHour int) (*TicketLimiter, *clock) {
	c := &clock{t: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	l := NewTicketLimiter(&Config{TicketsPerHour: perHour})
	l.now = c.now
	return l, c
}

func TestTicketLimiter(t *testing.T) {
	limiter, _ := newLimiter(2)

	require.NoError(t, limiter.CheckTicketCreation("u-1"))
	require.NoError(t, limiter.CheckTicketCreation("u-1"))
	assert.ErrorIs(t, limiter.CheckTicketCreation("u-1"), ErrLimited)

	// other users are counted separately
	require.NoError(t, limiter.CheckTicketCreation("u-2"))
	assert.Equal(t, 1, limiter.Remaining("u-2"))
	assert.Equal(t, 0, limiter.Remaining("u-1"))
	assert.Equal(t, 2, limiter.Remaining("u-3"))
}

func TestTicketLimiter_Slides(t *testing.T) {
	limiter, c := newLimiter(2)

	require.NoError(t, limiter.CheckTicketCreation("u-1"))
	c.t = c.t.Add(40 * time.Minute)
	require.NoError(t, limiter.CheckTicketCreation("u-1"))
	assert.ErrorIs(t, limiter.CheckTicketCreation("u-1"), ErrLimited)

	// only the first creation has left the window
	c.t = c.t.Add(21 * time.Minute)
	assert.Equal(t, 1, limiter.Remaining("u-1"))
	require.NoError(t, limiter.CheckTicketCreation("u-1"))
	assert.ErrorIs(t, limiter.CheckTicketCreation("u-1"), ErrLimited)
}

func TestTicketLimiter_SweepsIdleKeys(t *testing.T) {
	limiter, c := newLimiter(1)

	for i := 0; i < 99; i++ {
		require.NoError(t, limiter.CheckTicketCreation(fmt.Sprintf("u-%d", i)))
	}
	assert.Len(t, limiter.keys, 99)

	c.t = c.t.Add(2 * time.Hour)
	require.NoError(t, limiter.CheckTicketCreation("u-last"))
	assert.Len(t, limiter.keys, 1)
}

func TestTicketLimiter_Disabled(t *testing.T) {
	limiter := NewTicketLimiter(nil)
	for i := 0; i < 100; i++ {
		require.NoError(t, limiter.CheckTicketCreation("u-1"))
	}
	assert.Equal(t, -1, limiter.Remaining("u-1"))
	assert.Equal(t, -1, NewTicketLimiter(&Config{}).Remaining("u-1"))
}

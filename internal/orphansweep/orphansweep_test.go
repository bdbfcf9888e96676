package orphansweep

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-tickets/internal/dependency/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSweep(t *testing.T) {
	tickets := mocks.NewTickets(t)
	w := New(nil, tickets)
	assert.Equal(t, time.Hour, w.c.WorkerInterval)

	tickets.EXPECT().DeleteOrphanComments(mock.Anything).Return(int64(3), nil).Once()
	n, err := w.Sweep(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	tickets.EXPECT().DeleteOrphanComments(mock.Anything).Return(int64(0), errors.New("db gone")).Once()
	_, err = w.Sweep(context.Background())
	assert.Error(t, err)
}

func TestWorkerRunsOnInterval(t *testing.T) {
	tickets := mocks.NewTickets(t)
	w := New(&Config{Enabled: true, WorkerInterval: 5 * time.Millisecond}, tickets)

	swept := make(chan struct{}, 1)
	tickets.EXPECT().DeleteOrphanComments(mock.Anything).RunAndReturn(func(ctx context.Context) (int64, error) {
		select {
		case swept <- struct{}{}:
		default:
		}
		return 0, nil
	}).Maybe()

	require.NoError(t, w.Start(context.Background()))
	assert.Error(t, w.Start(context.Background()))

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not sweep")
	}

	require.NoError(t, w.Stop())
	assert.Error(t, w.Stop())
}

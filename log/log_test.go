package log

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"log/slog"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterceptorLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Config{Level: int(slog.LevelInfo)})

	InterceptorLogger(l).Log(context.Background(), logging.LevelDebug, "dropped")
	assert.Zero(t, buf.Len())

	InterceptorLogger(l).Log(context.Background(), logging.LevelWarn, "finished call", "grpc.code", "OK")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "finished call", entry["msg"])
	assert.Equal(t, "OK", entry["grpc.code"])
}

func TestNewFormats(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, Config{}).Info("ticket created", TicketId("t-1"), Err(errors.New("boom")))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "grbpwr-tickets", entry["service"])
	assert.Equal(t, "t-1", entry["ticket_id"])
	assert.Equal(t, "boom", entry["err"])

	buf.Reset()
	New(&buf, Config{Format: FormatText}).Info("ticket created", TicketId("t-2"), Err(nil))
	line := buf.String()
	assert.Contains(t, line, "msg=\"ticket created\"")
	assert.Contains(t, line, "ticket_id=t-2")
	assert.NotContains(t, line, "err=")
}

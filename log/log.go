package log

import (
	"context"
	"io"
	"strings"

	"log/slog"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

type Config struct {
	Level     int    `mapstructure:"level"`
	AddSource bool   `mapstructure:"add_source"`
	Format    string `mapstructure:"format"`
}

// New returns a logger writing to w in the configured format, JSON unless
// Format is "text". Every record carries the service name.
func New(w io.Writer, c Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     slog.Level(c.Level),
		AddSource: c.AddSource,
	}
	var h slog.Handler
	if strings.EqualFold(c.Format, FormatText) {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h).With(slog.String("service", "grbpwr-tickets"))
}

// TicketId is the attribute every ticket related record uses.
func TicketId(id string) slog.Attr {
	return slog.String("ticket_id", id)
}

// Err is the attribute for a failure, empty for a nil error.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("err", err.Error())
}

// InterceptorLogger adapts slog logger to interceptor logger.
func InterceptorLogger(l *slog.Logger) logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

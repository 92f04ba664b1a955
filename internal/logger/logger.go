package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const fightIDKey ctxKey = "fightID"

// New builds a logger writing to w in the configured format, with the base
// attributes attached.
func New(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler.WithAttrs(cfg.BaseAttributes()))
}

// Init installs a stderr logger built from cfg as the slog default.
func Init(cfg Config) *slog.Logger {
	l := New(cfg, os.Stderr)
	slog.SetDefault(l)
	return l
}

// GenerateFightID creates a new identifier for tracing one fight.
func GenerateFightID() string {
	return uuid.NewString()
}

// WithFightID returns a new context containing the fight ID.
func WithFightID(ctx context.Context, fightID string) context.Context {
	return context.WithValue(ctx, fightIDKey, fightID)
}

// FightIDFromContext extracts the fight ID from the context, if present.
func FightIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(fightIDKey).(string)
	return id, ok
}

// FromContext returns the default logger with the fight_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := FightIDFromContext(ctx); ok {
		return slog.Default().With(AttrKeyFightID, id)
	}
	return slog.Default()
}

package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

type contextKey struct{}

var loggerKey = contextKey{}

// Format selecciona el handler de salida.
type Format string

const (
	FormatPretty Format = "pretty"
	FormatJSON   Format = "json"
	FormatText   Format = "text"
)

// Options controla cómo se construye el logger por defecto.
type Options struct {
	Debug   bool
	Verbose bool
	Level   string
	Format  Format
	Output  io.Writer
}

// Initialize arma el logger por defecto del proceso. Debug gana sobre Verbose y ambos sobre Level.
func Initialize(opts Options) *slog.Logger {
	l := New(opts)
	slog.SetDefault(l)
	return l
}

// New construye un logger sin tocar el default global.
func New(opts Options) *slog.Logger {
	level := ParseLevel(opts.Level)

	if opts.Debug {
		level = slog.LevelDebug
	} else if opts.Verbose {
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     level,
		AddSource: opts.Debug,
	}

	w := opts.Output
	if w == nil {
		w = os.Stderr
	}

	var handler slog.Handler
	switch opts.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, handlerOpts)
	case FormatText:
		handler = slog.NewTextHandler(w, handlerOpts)
	default:
		handler = NewPrettyHandler(w, handlerOpts)
	}

	return slog.New(handler)
}

// ParseLevel convierte "debug", "info", "warn" o "error" en un slog.Level. Cualquier otro valor es warn.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func With(ctx context.Context, args ...any) context.Context {
	l := FromContext(ctx).With(args...)
	return WithLogger(ctx, l)
}

func Debug(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Debug(msg, args...)
}

func Info(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Info(msg, args...)
}

func Warn(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Warn(msg, args...)
}

func Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, slog.Any("error", err))
	}
	FromContext(ctx).Error(msg, args...)
}

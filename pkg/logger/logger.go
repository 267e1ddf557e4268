package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger adapts slog to the Print family expected by chi's request logger.
type Logger struct {
	*slog.Logger
}

func New(ctx context.Context, cfg *Config) (*Logger, error) {
	return NewWithWriter(ctx, cfg, os.Stdout)
}

func NewWithWriter(ctx context.Context, cfg *Config, w io.Writer) (*Logger, error) {
	if err := cfg.ValidateWithContext(ctx); err != nil {
		return nil, fmt.Errorf("invalid logger config: %w", err)
	}

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: cfg.WithSource,
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case FormatText:
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	base := slog.New(handler).With("service", cfg.ServiceName)
	return &Logger{base}, nil
}

func (a *Logger) Print(v ...interface{}) {
	a.Logger.Info(fmt.Sprint(v...))
}

func (a *Logger) Printf(format string, v ...interface{}) {
	a.Logger.Info(fmt.Sprintf(format, v...))
}

func (a *Logger) Println(v ...interface{}) {
	a.Logger.Info(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

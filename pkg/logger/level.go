package logger

import (
	"log/slog"
	"strings"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var levels = map[string]slog.Level{
	LevelDebug: slog.LevelDebug,
	LevelInfo:  slog.LevelInfo,
	LevelWarn:  slog.LevelWarn,
	LevelError: slog.LevelError,
}

func parseLevel(l string) slog.Level {
	if level, ok := levels[strings.ToLower(l)]; ok {
		return level
	}
	return slog.LevelInfo
}

func levelNames() []interface{} {
	return []interface{}{LevelDebug, LevelInfo, LevelWarn, LevelError}
}

package http

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewConsoleLogger returns a human-readable logger tagged with app.
func NewConsoleLogger(app string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Str("app", app).Logger()
}

// logger returns cfg.Logger capped at cfg.LogLevel.
func (cfg Config) logger() zerolog.Logger {
	l := cfg.Logger
	if lvl, ok := parseLevel(cfg.LogLevel); ok {
		l = l.Level(lvl)
	}
	return l
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

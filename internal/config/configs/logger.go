package configs

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

var logLevels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// Logger configures the structured logger. Level is one of debug, info, warn
// or error and Format is text or json; both are matched case-insensitively.
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// Validate rejects levels and formats the logger cannot honour, so a typo
// fails startup instead of silently logging at the wrong level.
func (c Logger) Validate() error {
	if _, ok := logLevels[strings.ToLower(c.Level)]; !ok {
		return fmt.Errorf("unknown LOG_LEVEL %q", c.Level)
	}
	switch strings.ToLower(c.Format) {
	case LogFormatText, LogFormatJSON:
		return nil
	default:
		return fmt.Errorf("unknown LOG_FORMAT %q", c.Format)
	}
}

// NewHandler builds the slog handler described by a validated c writing to w.
func (c Logger) NewHandler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: logLevels[strings.ToLower(c.Level)]}
	if strings.EqualFold(c.Format, LogFormatJSON) {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

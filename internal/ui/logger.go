package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// ParseLogLevel maps a config level name onto a pterm level.
func ParseLogLevel(level string) (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "", "info":
		return pterm.LogLevelInfo, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	case "off", "disabled":
		return pterm.LogLevelDisabled, nil
	}
	return pterm.LogLevelInfo, fmt.Errorf("unknown log level %q", level)
}

// NewLogger builds the structured logger used across the application.
// format is "colorful" (default) or "json".
func NewLogger(level, format string, w io.Writer) (*pterm.Logger, error) {
	lvl, err := ParseLogLevel(level)
	if err != nil {
		return nil, err
	}

	logger := pterm.DefaultLogger.WithLevel(lvl).WithWriter(w)
	switch strings.ToLower(format) {
	case "", "colorful", "text":
	case "json":
		logger = logger.WithFormatter(pterm.LogFormatterJSON)
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return logger, nil
}

// DiscardLogger returns a logger that drops everything, for tests and quiet runs.
func DiscardLogger() *pterm.Logger {
	return pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled).WithWriter(io.Discard)
}

// Package logging configures the process-wide slog logger used by the
// lvsearch driver and hands out component-scoped loggers.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Supported handler formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	// ErrBadLevel indicates a level name slog does not know.
	ErrBadLevel = errors.New("logging: unknown level")

	// ErrBadFormat indicates a format other than text or json.
	ErrBadFormat = errors.New("logging: unknown format")
)

// ParseLevel maps "debug", "info", "warn" or "error" (any case) to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrBadLevel, name)
	}

	return l, nil
}

// ParseFormat validates a handler format name. The empty string means text.
func ParseFormat(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadFormat, name)
	}
}

// Init configures the global slog default with the given level and format.
// If w is omitted or nil, os.Stderr is used. Any format other than "json"
// selects the text handler.
func Init(level slog.Level, format string, w ...io.Writer) {
	var writer io.Writer = os.Stderr
	if len(w) > 0 && w[0] != nil {
		writer = w[0]
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(writer, opts)
	default:
		handler = slog.NewTextHandler(writer, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// New returns a logger with a "component" attribute.
func New(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}

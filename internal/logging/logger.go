// Package logging builds the zerolog logger used by the compiler and CLI.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"fixdict-generator/internal/config"
	"fixdict-generator/internal/diagnostic"
)

// New builds a logger writing to w at the configured level, as console
// text or JSON lines.
func New(w io.Writer, cfg config.LogConfig) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}

	// zerolog maps "" to NoLevel, which would log everything
	if cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	switch cfg.Format {
	case config.LogFormatJSON:
	case "", config.LogFormatConsole:
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	default:
		return zerolog.Nop(), fmt.Errorf("log format %q is not supported", cfg.Format)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// Diagnostics logs warnings at warn and infos at debug level.
func Diagnostics(logger zerolog.Logger, diags diagnostic.Diagnostics) {
	for _, d := range diags.Warnings {
		logger.Warn().Str("code", d.Code).Str("location", d.Location).Msg(d.Message)
	}

	for _, d := range diags.Infos {
		logger.Debug().Str("code", d.Code).Str("location", d.Location).Msg(d.Message)
	}
}

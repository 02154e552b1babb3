// Package logging configures the global zerolog logger.
//
// Interactive play owns the terminal, so logs go to LOG_FILE when set and are
// discarded otherwise. One-shot commands log to stderr with a console writer.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config selects level and destination.
type Config struct {
	Level       string // zerolog level name; invalid or empty means info
	File        string // append JSON lines here when set
	Interactive bool   // a full-screen UI is using stdout/stderr
}

// Setup installs the global logger and returns a cleanup func.
func Setup(cfg Config) (func() error, error) {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	var (
		w       io.Writer
		cleanup = func() error { return nil }
	)
	switch {
	case cfg.File != "":
		if dir := filepath.Dir(cfg.File); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, err
		}
		w = f
		cleanup = f.Close
	case cfg.Interactive:
		w = io.Discard
	default:
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return cleanup, nil
}

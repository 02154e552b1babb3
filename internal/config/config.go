// internal/config/config.go
//
// Runtime configuration for the terminal client.
// Responsibilities:
//   - Load `.env` files (godotenv) and read settings from the environment.
//   - Load game mode presets from YAML, falling back to the built-in
//     Easy / Normal / Hard menu.
//   - Carry per-run overrides (max guesses, hard mode, hints) that apply
//     on top of whichever mode is played.
//
// Environment variables:
//   WORDS_FILE   plain text word list (one word per line)
//   WORDS_DB     SQLite database with a `words` table (wins over WORDS_FILE)
//   WORDS_WATCH  reload WORDS_FILE when it changes (bool)
//   MAX_GUESSES  override attempts per game (positive int)
//   HARD_MODE    override hard mode (bool)
//   HINTS        override hint budget (0 off, <0 unlimited)
//   MODES_FILE   YAML file with mode presets
//   DAILY_SALT   secret mixed into the daily word selection
//   LOG_LEVEL    zerolog level (default info)
//   LOG_FILE     write logs here instead of stderr

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

// Config is the resolved runtime configuration.
type Config struct {
	WordsFile string
	WordsDB   string
	Watch     bool

	ModesFile string
	Modes     []Mode
	Overrides Overrides

	DailySalt string

	LogLevel string
	LogFile  string
}

// Overrides replace mode fields when set.
type Overrides struct {
	MaxGuesses *int
	HardMode   *bool
	Hints      *int
}

// Load reads .env files (missing files are ignored), the environment and
// the modes file.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	cfg := Config{
		WordsFile: os.Getenv("WORDS_FILE"),
		WordsDB:   os.Getenv("WORDS_DB"),
		ModesFile: os.Getenv("MODES_FILE"),
		DailySalt: getEnv("DAILY_SALT", "local_dev_salt"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFile:   os.Getenv("LOG_FILE"),
	}

	var err error
	if cfg.Watch, err = envBool("WORDS_WATCH"); err != nil {
		return Config{}, err
	}
	if v, ok := os.LookupEnv("MAX_GUESSES"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("MAX_GUESSES: want a positive integer, got %q", v)
		}
		cfg.Overrides.MaxGuesses = &n
	}
	if v, ok := os.LookupEnv("HARD_MODE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("HARD_MODE: %w", err)
		}
		cfg.Overrides.HardMode = &b
	}
	if v, ok := os.LookupEnv("HINTS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("HINTS: %w", err)
		}
		cfg.Overrides.Hints = &n
	}

	if err := cfg.ReloadModes(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ReloadModes (re)reads Modes from ModesFile, or installs the defaults.
func (c *Config) ReloadModes() error {
	if c.ModesFile == "" {
		c.Modes = DefaultModes()
		return nil
	}
	modes, err := LoadModes(c.ModesFile)
	if err != nil {
		return err
	}
	c.Modes = modes
	return nil
}

// Mode looks up a mode by case-insensitive name.
func (c Config) Mode(name string) (Mode, bool) {
	for _, m := range c.Modes {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return Mode{}, false
}

// Options resolves m with the configured overrides applied.
func (c Config) Options(m Mode) game.Options {
	opts := m.Options()
	if c.Overrides.MaxGuesses != nil {
		opts.MaxGuesses = *c.Overrides.MaxGuesses
	}
	if c.Overrides.HardMode != nil {
		opts.HardMode = *c.Overrides.HardMode
	}
	if c.Overrides.Hints != nil {
		opts.Hints = *c.Overrides.Hints
	}
	return opts
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envBool(k string) (bool, error) {
	v := os.Getenv(k)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", k, err)
	}
	return b, nil
}

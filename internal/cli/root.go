package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-term/internal/config"
	"github.com/robalobadob/wordle/apps/go-term/internal/daily"
	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/logging"
	"github.com/robalobadob/wordle/apps/go-term/internal/tui"
	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	envFile   string
	logLevel  string
	logFile   string
	debug     bool
	wordsFile string
	wordsDB   string
}

// playFlags hold the flags that are not config overrides.
type playFlags struct {
	mode  string
	daily bool
	cheat bool
}

func newRootCmd() *cobra.Command {
	var (
		g globalFlags
		p playFlags
	)

	cmd := &cobra.Command{
		Use:          "wordle",
		Short:        "Guess the five-letter word in the terminal",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(&g)
			if err != nil {
				return err
			}
			if err := applyPlayFlags(cmd, &cfg); err != nil {
				return err
			}

			cleanup := setupLogging(cfg, true)
			defer cleanup()

			deps, err := playDeps(cmd, cfg, p)
			if err != nil {
				return err
			}
			if deps.Watcher != nil {
				defer func() { _ = deps.Watcher.Stop() }()
			}
			return tui.Run(deps)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&g.envFile, "env", ".env", "dotenv file to load before reading the environment")
	pf.StringVar(&g.logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")
	pf.StringVar(&g.logFile, "log-file", "", "append JSON logs to this file (overrides LOG_FILE)")
	pf.BoolVar(&g.debug, "debug", false, "shorthand for --log-level debug")
	pf.StringVarP(&g.wordsFile, "words", "w", "", "word list file (overrides WORDS_FILE)")
	pf.StringVar(&g.wordsDB, "db", "", "SQLite word database (overrides WORDS_DB)")

	f := cmd.Flags()
	f.StringVarP(&p.mode, "mode", "m", "", "start this mode directly instead of showing the menu")
	f.Bool("hard", false, "force hard mode on or off")
	f.Int("hints", 0, "hint budget per game (0 off, negative unlimited)")
	f.Int("max-guesses", game.DefaultMaxGuesses, "attempts per game")
	f.Bool("watch", false, "reload the word list file when it changes")
	f.BoolVar(&p.daily, "daily", false, "play the word of the day")
	f.BoolVar(&p.cheat, "cheat", false, "show the target word")

	cmd.AddCommand(checkCmd(), wordsCmd(&g))
	return cmd
}

// loadConfig resolves configuration with the global flags applied.
func loadConfig(g *globalFlags) (config.Config, error) {
	cfg, err := config.Load(g.envFile)
	if err != nil {
		return config.Config{}, err
	}
	if g.logLevel != "" {
		cfg.LogLevel = g.logLevel
	}
	if g.debug {
		cfg.LogLevel = "debug"
	}
	if g.logFile != "" {
		cfg.LogFile = g.logFile
	}
	if g.wordsFile != "" {
		cfg.WordsFile = g.wordsFile
		cfg.WordsDB = ""
	}
	if g.wordsDB != "" {
		cfg.WordsDB = g.wordsDB
	}
	return cfg, nil
}

// applyPlayFlags copies explicitly set play flags over the environment.
func applyPlayFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("max-guesses") {
		n, _ := f.GetInt("max-guesses")
		if n <= 0 {
			return fmt.Errorf("--max-guesses must be positive, got %d", n)
		}
		cfg.Overrides.MaxGuesses = &n
	}
	if f.Changed("hard") {
		b, _ := f.GetBool("hard")
		cfg.Overrides.HardMode = &b
	}
	if f.Changed("hints") {
		n, _ := f.GetInt("hints")
		cfg.Overrides.Hints = &n
	}
	if f.Changed("watch") {
		cfg.Watch, _ = f.GetBool("watch")
	}
	if mode, _ := f.GetString("mode"); mode != "" {
		if _, ok := cfg.Mode(mode); !ok {
			return fmt.Errorf("unknown mode %q", mode)
		}
	}
	return nil
}

func playDeps(cmd *cobra.Command, cfg config.Config, p playFlags) (tui.Deps, error) {
	dict, _, err := words.Load(cmd.Context(), wordOptions(cfg))
	if err != nil {
		return tui.Deps{}, err
	}
	live := words.NewLive(dict)
	rng := game.CryptoRand{}

	pick := func() string { return live.Random(rng) }
	if p.daily {
		pick = func() string { return daily.Target(time.Now(), cfg.DailySalt, live.Current()) }
	}

	deps := tui.Deps{
		Config:     cfg,
		Words:      live,
		Rand:       rng,
		PickTarget: pick,
		StartMode:  p.mode,
		Cheat:      p.cheat,
	}

	if cfg.Watch {
		if cfg.WordsFile == "" || cfg.WordsDB != "" {
			log.Warn().Msg("word list watching needs a words file; ignoring --watch")
			return deps, nil
		}
		w, err := words.NewWatcher(cfg.WordsFile, live)
		if err != nil {
			return tui.Deps{}, err
		}
		deps.Watcher = w
	}
	return deps, nil
}

// setupLogging installs the logger for cfg. A log file that cannot be opened
// falls back to the default destination.
func setupLogging(cfg config.Config, interactive bool) func() {
	cleanup, err := logging.Setup(logging.Config{
		Level:       cfg.LogLevel,
		File:        cfg.LogFile,
		Interactive: interactive,
	})
	if err != nil {
		cleanup, _ = logging.Setup(logging.Config{Level: cfg.LogLevel, Interactive: interactive})
		log.Warn().Err(err).Str("file", cfg.LogFile).Msg("cannot open log file")
	}
	return func() { _ = cleanup() }
}

func wordOptions(cfg config.Config) words.Options {
	return words.Options{File: cfg.WordsFile, DB: cfg.WordsDB}
}

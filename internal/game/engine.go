// internal/game/engine.go
//
// Game session for a single Wordle round.
// Responsibilities:
//   - Create new games from a target and mode options (max guesses, hard mode, hints).
//   - Validate and apply guesses (length, alphabetic, word list, duplicates, hard mode).
//   - Hand out hints within the configured budget.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Word lists are supplied by the caller through the Lexicon interface.
//   - Scoring, aggregation, hints and hard mode are the pure functions in this
//     package; Game only owns the history and hint state they read.
//   - randomID() is a compact hex identifier for correlating log lines.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// DefaultMaxGuesses is the attempt budget used when Options.MaxGuesses <= 0.
const DefaultMaxGuesses = 6

// Lexicon answers dictionary membership for guesses.
type Lexicon interface {
	Contains(word string) bool
}

// Options configures a game.
type Options struct {
	MaxGuesses int  // attempts before the game is lost (default 6)
	HardMode   bool // require guesses to honor the previous feedback
	Hints      int  // 0 = disabled, negative = unlimited, positive = cap
}

// Game holds the state of a single session.
type Game struct {
	ID      string    // Unique game identifier (random hex string).
	Target  string    // The solution word (uppercase).
	Options Options   // Mode the game was started with.
	Guesses []string  // Accepted guesses, in order (uppercase).
	Hints   HintState // Hints still excluded from selection.
	Given   int       // Hints handed out; unaffected by hint resets.
	Status  Status    // playing, won or lost.
}

// New constructs a game for target. The target is uppercased; it must be a
// valid dictionary word.
func New(target string, opts Options) *Game {
	if opts.MaxGuesses <= 0 {
		opts.MaxGuesses = DefaultMaxGuesses
	}
	return &Game{
		ID:      randomID(),
		Target:  strings.ToUpper(strings.TrimSpace(target)),
		Options: opts,
		Guesses: []string{},
		Status:  StatusPlaying,
	}
}

// Normalize trims and uppercases raw input.
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// ValidWord reports whether w is exactly WordLength uppercase A–Z letters.
func ValidWord(w string) bool {
	if len(w) != WordLength {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}

// Guess validates and scores raw, mutating the game on success.
//
// Validation rules, in order:
//   - Game must not be finished.
//   - Guess must be WordLength alphabetic letters.
//   - Guess must be in the lexicon.
//   - Guess must not repeat an earlier guess.
//   - In hard mode, guess must honor the previous guess's feedback.
//
// State transitions:
//   - All tiles hit → StatusWon.
//   - Else if the number of guesses reaches MaxGuesses → StatusLost.
func (g *Game) Guess(raw string, lex Lexicon) (Feedback, error) {
	if g.Status.Finished() {
		return Feedback{}, ErrFinished
	}
	guess := Normalize(raw)
	if len(guess) != len(g.Target) || !ValidWord(guess) {
		return Feedback{}, fmt.Errorf("%w: %q", ErrInvalidGuess, guess)
	}
	if lex != nil && !lex.Contains(guess) {
		return Feedback{}, fmt.Errorf("%w: %q", ErrNotInWordList, guess)
	}
	for _, prev := range g.Guesses {
		if prev == guess {
			return Feedback{}, fmt.Errorf("%w: %q", ErrAlreadyGuessed, guess)
		}
	}
	if g.Options.HardMode {
		if rules, ok := CheckHardMode(guess, g.Previous(), g.Target); !ok {
			return Feedback{}, &HardModeError{Guess: guess, Rules: rules}
		}
	}

	fb := Evaluate(guess, g.Target)
	g.Guesses = append(g.Guesses, guess)

	if fb.Solved() {
		g.Status = StatusWon
	} else if len(g.Guesses) >= g.Options.MaxGuesses {
		g.Status = StatusLost
	}
	return fb, nil
}

// Previous returns the most recent accepted guess, or "" if none.
func (g *Game) Previous() string {
	if len(g.Guesses) == 0 {
		return ""
	}
	return g.Guesses[len(g.Guesses)-1]
}

// Remaining returns the number of guesses left.
func (g *Game) Remaining() int {
	if n := g.Options.MaxGuesses - len(g.Guesses); n > 0 {
		return n
	}
	return 0
}

// HintsEnabled reports whether the mode allows hints at all.
func (g *Game) HintsEnabled() bool { return g.Options.Hints != 0 }

// HintsRemaining returns the hints left, or -1 when unlimited.
func (g *Game) HintsRemaining() int {
	switch {
	case g.Options.Hints < 0:
		return -1
	case g.Given >= g.Options.Hints:
		return 0
	}
	return g.Options.Hints - g.Given
}

// Hint reveals a new hint within the budget.
func (g *Game) Hint(rng Rand) (Hint, error) {
	if g.Status.Finished() {
		return Hint{}, ErrFinished
	}
	if !g.HintsEnabled() {
		return Hint{}, ErrHintsDisabled
	}
	if g.HintsRemaining() == 0 {
		return Hint{}, ErrNoHintsLeft
	}
	h := SelectHint(g.Guesses, g.Target, &g.Hints, rng)
	g.Given++
	return h, nil
}

// Summary aggregates the guesses made so far.
func (g *Game) Summary() Summary { return Aggregate(g.Guesses, g.Target) }

// Feedback returns the evaluation of every accepted guess, in order.
func (g *Game) Feedback() []Feedback {
	out := make([]Feedback, 0, len(g.Guesses))
	for _, guess := range g.Guesses {
		out = append(out, Evaluate(guess, g.Target))
	}
	return out
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

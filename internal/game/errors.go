package game

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Game.Guess and Game.Hint.
var (
	ErrFinished       = errors.New("game finished")
	ErrInvalidGuess   = errors.New("invalid guess")
	ErrNotInWordList  = errors.New("not in word list")
	ErrAlreadyGuessed = errors.New("already guessed")
	ErrHardMode       = errors.New("hard mode violation")
	ErrHintsDisabled  = errors.New("hints disabled")
	ErrNoHintsLeft    = errors.New("no hints left")
)

// HardModeError reports a guess rejected by hard mode along with the rules
// it broke, so callers can show what the next guess needs.
type HardModeError struct {
	Guess string
	Rules HardModeRules
}

func (e *HardModeError) Error() string {
	return fmt.Sprintf("%s: %s must contain %q and match %s",
		ErrHardMode, e.Guess, string(e.Rules.MustContain), e.Rules.Pattern)
}

// Is lets errors.Is(err, ErrHardMode) match.
func (e *HardModeError) Is(target error) bool { return target == ErrHardMode }

// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Mark: per-letter result of a guess (hit/present/miss) and keyboard status.
//   - Feedback: the marks for one guess with index accessors.
//   - Hint / HintState: kind-tagged hints already revealed in a game.
//   - Status: coarse game state (playing/won/lost).

package game

// WordLength is the number of letters in every target and guess.
const WordLength = 5

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the target but in a different position.
//   - "miss":    letter does not exist in the target (or all copies are used up).
//
// MarkNone is only used for keyboard display: the letter was never guessed.
type Mark string

const (
	MarkNone    Mark = ""
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// Feedback is the per-index evaluation of one guess against the target.
type Feedback struct {
	Marks []Mark
}

// Correct returns the indices marked hit, ascending.
func (f Feedback) Correct() []int { return f.indices(MarkHit) }

// Present returns the indices marked present, ascending.
func (f Feedback) Present() []int { return f.indices(MarkPresent) }

// Absent returns the indices marked miss, ascending.
func (f Feedback) Absent() []int { return f.indices(MarkMiss) }

// Solved reports whether every index is a hit.
func (f Feedback) Solved() bool {
	if len(f.Marks) == 0 {
		return false
	}
	for _, m := range f.Marks {
		if m != MarkHit {
			return false
		}
	}
	return true
}

func (f Feedback) indices(want Mark) []int {
	out := []int{}
	for i, m := range f.Marks {
		if m == want {
			out = append(out, i)
		}
	}
	return out
}

// HintKind distinguishes letter hints from position hints.
type HintKind int

const (
	HintLetter HintKind = iota + 1
	HintPosition
)

// Hint is a single revealed fact. Letter is set for HintLetter,
// Index (0-based) for HintPosition.
type Hint struct {
	Kind   HintKind
	Letter byte
	Index  int
}

// HintState is the ordered list of hints revealed so far in one game.
type HintState []Hint

// hasLetter reports whether a letter hint for c was already given.
func (s HintState) hasLetter(c byte) bool {
	for _, h := range s {
		if h.Kind == HintLetter && h.Letter == c {
			return true
		}
	}
	return false
}

// hasIndex reports whether a position hint for i was already given.
func (s HintState) hasIndex(i int) bool {
	for _, h := range s {
		if h.Kind == HintPosition && h.Index == i {
			return true
		}
	}
	return false
}

// withoutPositions returns the letter hints only, preserving order.
func (s HintState) withoutPositions() HintState {
	out := make(HintState, 0, len(s))
	for _, h := range s {
		if h.Kind == HintLetter {
			out = append(out, h)
		}
	}
	return out
}

// Status is the lifecycle state of a game.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Finished reports whether the status is terminal.
func (s Status) Finished() bool { return s == StatusWon || s == StatusLost }

// Rand is the randomness source used for target and hint selection.
// *math/rand.Rand satisfies it; CryptoRand is the production default.
type Rand interface {
	Intn(n int) int
}

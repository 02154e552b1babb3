package game

import "strings"

// HardModeRules describes what the previous guess requires of the next one.
type HardModeRules struct {
	MustContain []byte // letters marked present in the previous guess, index order
	Pattern     string // hit letters at their index, '?' elsewhere
}

// Fixed reports whether the pattern pins at least one position.
func (r HardModeRules) Fixed() bool { return strings.Trim(r.Pattern, "?") != "" }

// CheckHardMode validates guess against the feedback previous received.
// Every hit letter of previous must stay at its index in guess, and every
// present letter of previous must appear somewhere in guess. An empty
// previous (no guess made yet) always passes.
func CheckHardMode(guess, previous, target string) (HardModeRules, bool) {
	if previous == "" {
		return HardModeRules{}, true
	}
	fb := Evaluate(previous, target)

	ok := true
	pattern := []byte(strings.Repeat("?", len(previous)))
	for _, i := range fb.Correct() {
		pattern[i] = previous[i]
		if i >= len(guess) || guess[i] != previous[i] {
			ok = false
		}
	}
	var must []byte
	for _, i := range fb.Present() {
		must = append(must, previous[i])
		if strings.IndexByte(guess, previous[i]) < 0 {
			ok = false
		}
	}
	return HardModeRules{MustContain: must, Pattern: string(pattern)}, ok
}

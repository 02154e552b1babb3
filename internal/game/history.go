package game

import "sort"

// KeyboardRows is the QWERTY layout used for the letter status display.
var KeyboardRows = [3]string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

// Summary is the cumulative knowledge revealed by a sequence of guesses.
type Summary struct {
	CorrectIndices []int // positions ever marked hit, ascending
	PresentIndices []int // positions ever marked present, ascending

	correct [26]bool // letters ever marked hit
	present [26]bool // letters ever marked present
	absent  [26]bool // letters guessed that never occur in the target
}

// Aggregate folds Evaluate over history (submission order) against target.
func Aggregate(history []string, target string) Summary {
	var s Summary
	hitIdx := map[int]bool{}
	presentIdx := map[int]bool{}

	for _, g := range history {
		fb := Evaluate(g, target)
		for i, m := range fb.Marks {
			c := idx(g[i])
			switch m {
			case MarkHit:
				hitIdx[i] = true
				s.correct[c] = true
			case MarkPresent:
				presentIdx[i] = true
				s.present[c] = true
			}
			if !containsLetter(target, g[i]) {
				s.absent[c] = true
			}
		}
	}

	s.CorrectIndices = sortedKeys(hitIdx)
	s.PresentIndices = sortedKeys(presentIdx)
	return s
}

// Letter returns the display status for c: hit overrides present, which
// overrides miss. MarkNone means c has not been revealed by any guess.
func (s Summary) Letter(c byte) Mark {
	if c < 'A' || c > 'Z' {
		return MarkNone
	}
	i := c - 'A'
	switch {
	case s.correct[i]:
		return MarkHit
	case s.present[i]:
		return MarkPresent
	case s.absent[i]:
		return MarkMiss
	}
	return MarkNone
}

// Revealed reports whether c has been shown as hit or present in any guess.
func (s Summary) Revealed(c byte) bool {
	m := s.Letter(c)
	return m == MarkHit || m == MarkPresent
}

// KeyState is one key of the keyboard display.
type KeyState struct {
	Letter byte
	Mark   Mark
}

// Keyboard returns the QWERTY rows annotated with each letter's status.
func (s Summary) Keyboard() [][]KeyState {
	rows := make([][]KeyState, 0, len(KeyboardRows))
	for _, row := range KeyboardRows {
		keys := make([]KeyState, 0, len(row))
		for i := 0; i < len(row); i++ {
			keys = append(keys, KeyState{Letter: row[i], Mark: s.Letter(row[i])})
		}
		rows = append(rows, keys)
	}
	return rows
}

func containsLetter(w string, c byte) bool {
	for i := 0; i < len(w); i++ {
		if w[i] == c {
			return true
		}
	}
	return false
}

func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

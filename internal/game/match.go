package game

import "fmt"

// Evaluate scores guess against target using the two-pass Wordle algorithm.
//
// Pass 1:
//   - Mark exact matches as hit.
//   - Count the target letters left unclaimed by a hit.
//
// Pass 2 (left to right):
//   - A non-hit guess letter is present while unclaimed copies of it remain
//     in the target, consuming one copy; otherwise it is a miss.
//
// Excess copies of a letter in the guess are misses, and the leftmost copies
// win the present marks. Guess and target must be equal-length uppercase
// A–Z words; anything else is a caller bug and panics.
func Evaluate(guess, target string) Feedback {
	n := len(target)
	if len(guess) != n {
		panic(fmt.Sprintf("game: evaluate %q against %q: length mismatch", guess, target))
	}
	marks := make([]Mark, n)

	// Unclaimed target letters (A–Z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			marks[i] = MarkHit
		} else {
			counts[idx(target[i])]++
		}
	}

	for i := 0; i < n; i++ {
		if marks[i] == MarkHit {
			continue
		}
		j := idx(guess[i])
		if counts[j] > 0 {
			marks[i] = MarkPresent
			counts[j]--
		} else {
			marks[i] = MarkMiss
		}
	}
	return Feedback{Marks: marks}
}

// idx maps an uppercase ASCII letter to 0..25.
func idx(c byte) int {
	if c < 'A' || c > 'Z' {
		panic(fmt.Sprintf("game: letter %q outside A-Z", c))
	}
	return int(c - 'A')
}

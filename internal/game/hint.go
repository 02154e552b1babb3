package game

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// SelectHint picks one piece of information about target not yet revealed by
// history nor already given in used, appends it to used and returns it.
//
// Letter hints are preferred over position hints. Once both are exhausted,
// position hints start over (position entries are purged from used) while
// letters already hinted stay excluded for the rest of the game.
func SelectHint(history []string, target string, used *HintState, rng Rand) Hint {
	sum := Aggregate(history, target)

	revealedIdx := make(map[int]bool, len(sum.CorrectIndices))
	for _, i := range sum.CorrectIndices {
		revealedIdx[i] = true
	}

	var missingLetters []byte
	seen := [26]bool{}
	for i := 0; i < len(target); i++ {
		c := target[i]
		if seen[c-'A'] || sum.Revealed(c) {
			continue
		}
		seen[c-'A'] = true
		missingLetters = append(missingLetters, c)
	}
	var missingIndices []int
	for i := 0; i < len(target); i++ {
		if !revealedIdx[i] {
			missingIndices = append(missingIndices, i)
		}
	}

	var letterHints []byte
	for _, c := range missingLetters {
		if !used.hasLetter(c) {
			letterHints = append(letterHints, c)
		}
	}
	var indexHints []int
	for _, i := range missingIndices {
		if !used.hasIndex(i) {
			indexHints = append(indexHints, i)
		}
	}

	if len(letterHints) == 0 && len(indexHints) == 0 {
		indexHints = missingIndices
		*used = used.withoutPositions()
	}
	if len(indexHints) == 0 {
		// Every position is already solved; repeat any of them.
		for i := 0; i < len(target); i++ {
			indexHints = append(indexHints, i)
		}
	}

	var h Hint
	if len(letterHints) > 0 {
		h = Hint{Kind: HintLetter, Letter: letterHints[rng.Intn(len(letterHints))]}
	} else {
		h = Hint{Kind: HintPosition, Index: indexHints[rng.Intn(len(indexHints))]}
	}
	*used = append(*used, h)
	return h
}

// Text renders the hint for display against target.
func (h Hint) Text(target string) string {
	if h.Kind == HintLetter {
		return fmt.Sprintf("The word contains: %c", h.Letter)
	}
	return fmt.Sprintf("The %s letter is: %c", Ordinal(h.Index+1), target[h.Index])
}

// Ordinal formats n with its English suffix (1st, 2nd, 3rd, 11th, 22nd...).
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// CryptoRand draws uniformly from crypto/rand.
type CryptoRand struct{}

// Intn returns a value in [0, n). It panics if n <= 0.
func (CryptoRand) Intn(n int) int {
	if n <= 0 {
		panic("game: Intn called with non-positive n")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("game: crypto/rand: %v", err))
	}
	return int(v.Int64())
}

package game

import (
	"math/rand"
	"reflect"
	"testing"
)

// firstRand always picks the first candidate.
type firstRand struct{}

func (firstRand) Intn(int) int { return 0 }

func TestSelectHint_PrefersLettersThenPositions(t *testing.T) {
	var used HintState
	history := []string{"TRACE"} // reveals R, A, E (hit) and C (present)

	h := SelectHint(history, "CRANE", &used, firstRand{})
	if h != (Hint{Kind: HintLetter, Letter: 'N'}) {
		t.Fatalf("first hint = %+v, want letter N", h)
	}
	h = SelectHint(history, "CRANE", &used, firstRand{})
	if h != (Hint{Kind: HintPosition, Index: 0}) {
		t.Fatalf("second hint = %+v, want position 0", h)
	}
	h = SelectHint(history, "CRANE", &used, firstRand{})
	if h != (Hint{Kind: HintPosition, Index: 3}) {
		t.Fatalf("third hint = %+v, want position 3", h)
	}

	// Exhausted: positions start over, the letter hint stays.
	h = SelectHint(history, "CRANE", &used, firstRand{})
	if h != (Hint{Kind: HintPosition, Index: 0}) {
		t.Fatalf("fourth hint = %+v, want position 0 after reset", h)
	}
	want := HintState{{Kind: HintLetter, Letter: 'N'}, {Kind: HintPosition, Index: 0}}
	if !reflect.DeepEqual(used, want) {
		t.Errorf("used after reset = %+v, want %+v", used, want)
	}
}

func TestSelectHint_NeverRepeatsLetters(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var used HintState
	letters := map[byte]int{}
	positions := 0
	for i := 0; i < 20; i++ {
		h := SelectHint(nil, "SPEED", &used, rng)
		switch h.Kind {
		case HintLetter:
			letters[h.Letter]++
			if positions > 0 {
				t.Fatalf("letter hint %c after position hints", h.Letter)
			}
		case HintPosition:
			positions++
			if h.Index < 0 || h.Index >= WordLength {
				t.Fatalf("position hint out of range: %d", h.Index)
			}
		default:
			t.Fatalf("untagged hint %+v", h)
		}
	}
	// S, P, E, D: E counted once even though it appears twice.
	if len(letters) != 4 {
		t.Errorf("letters hinted = %v, want 4 distinct", letters)
	}
	for c, n := range letters {
		if n != 1 {
			t.Errorf("letter %c hinted %d times", c, n)
		}
	}
}

func TestSelectHint_PositionsCycleWithoutRepeatsPerRound(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	used := HintState{
		{Kind: HintLetter, Letter: 'C'}, {Kind: HintLetter, Letter: 'R'},
		{Kind: HintLetter, Letter: 'A'}, {Kind: HintLetter, Letter: 'N'},
		{Kind: HintLetter, Letter: 'E'},
	}
	seen := map[int]bool{}
	for i := 0; i < WordLength; i++ {
		h := SelectHint(nil, "CRANE", &used, rng)
		if h.Kind != HintPosition {
			t.Fatalf("hint %d = %+v, want position", i, h)
		}
		if seen[h.Index] {
			t.Fatalf("position %d repeated before exhaustion", h.Index)
		}
		seen[h.Index] = true
	}
	h := SelectHint(nil, "CRANE", &used, rng)
	if h.Kind != HintPosition {
		t.Fatalf("post-reset hint = %+v, want position", h)
	}
	if len(used) != 6 {
		t.Errorf("used = %+v, want 5 letters + 1 position", used)
	}
}

func TestSelectHint_SolvedBoardDoesNotPanic(t *testing.T) {
	var used HintState
	h := SelectHint([]string{"CRANE"}, "CRANE", &used, firstRand{})
	if h != (Hint{Kind: HintPosition, Index: 0}) {
		t.Errorf("hint = %+v, want position 0", h)
	}
}

func TestSelectHint_LetterAndPositionDoNotCollide(t *testing.T) {
	// A position hint for index 0 must not hide letter 'A' (or vice versa).
	used := HintState{{Kind: HintPosition, Index: 0}}
	h := SelectHint(nil, "AAAAA", &used, firstRand{})
	if h != (Hint{Kind: HintLetter, Letter: 'A'}) {
		t.Errorf("hint = %+v, want letter A", h)
	}
}

func TestHintText(t *testing.T) {
	cases := []struct {
		hint Hint
		want string
	}{
		{Hint{Kind: HintLetter, Letter: 'N'}, "The word contains: N"},
		{Hint{Kind: HintPosition, Index: 0}, "The 1st letter is: C"},
		{Hint{Kind: HintPosition, Index: 2}, "The 3rd letter is: A"},
		{Hint{Kind: HintPosition, Index: 4}, "The 5th letter is: E"},
	}
	for _, c := range cases {
		if got := c.hint.Text("CRANE"); got != c.want {
			t.Errorf("Text(%+v) = %q, want %q", c.hint, got, c.want)
		}
	}
}

func TestOrdinal(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{1, "1st"}, {2, "2nd"}, {3, "3rd"}, {4, "4th"},
		{11, "11th"}, {12, "12th"}, {13, "13th"},
		{21, "21st"}, {22, "22nd"}, {23, "23rd"},
		{101, "101st"}, {111, "111th"},
	}
	for _, c := range cases {
		if got := Ordinal(c.n); got != c.want {
			t.Errorf("Ordinal(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestCryptoRand_InRange(t *testing.T) {
	var r CryptoRand
	for i := 0; i < 100; i++ {
		if v := r.Intn(5); v < 0 || v >= 5 {
			t.Fatalf("Intn(5) = %d", v)
		}
	}
}

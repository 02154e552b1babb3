package tui

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

// RenderWord draws word as tiles colored by fb.
func RenderWord(t Theme, word string, fb game.Feedback) string {
	var b strings.Builder
	for i := 0; i < len(word); i++ {
		m := game.MarkNone
		if i < len(fb.Marks) {
			m = fb.Marks[i]
		}
		b.WriteString(t.Tile(m).Render(string(word[i])))
	}
	return b.String()
}

// RenderPlain draws every letter of word with the same mark.
func RenderPlain(t Theme, word string, m game.Mark) string {
	var b strings.Builder
	for i := 0; i < len(word); i++ {
		b.WriteString(t.Tile(m).Render(string(word[i])))
	}
	return b.String()
}

// RenderGuesses lists guesses as numbered tile rows.
func RenderGuesses(t Theme, guesses []string, target string) string {
	var b strings.Builder
	for i, g := range guesses {
		fmt.Fprintf(&b, "%d. %s\n", i+1, RenderWord(t, g, game.Evaluate(g, target)))
	}
	return b.String()
}

// RenderKeyboard draws the QWERTY rows colored by the guess summary.
// Rows are indented like a physical keyboard.
func RenderKeyboard(t Theme, s game.Summary) string {
	rows := s.Keyboard()
	lines := make([]string, 0, len(rows))
	for i, row := range rows {
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", 2*i))
		for _, k := range row {
			b.WriteString(t.Tile(k.Mark).Render(string(k.Letter)))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// RenderRules explains what hard mode requires of the next guess.
func RenderRules(t Theme, r game.HardModeRules) string {
	var b strings.Builder
	b.WriteString("Hard mode requires your guesses adhere to the following:\n\n")
	if len(r.MustContain) > 0 {
		b.WriteString(" - Must contain:        ")
		for _, c := range r.MustContain {
			b.WriteString(t.Present.Render(string(c)))
		}
		b.WriteString("\n")
	}
	if r.Fixed() {
		b.WriteString(" - Must use the format: ")
		for i := 0; i < len(r.Pattern); i++ {
			if r.Pattern[i] == '?' {
				b.WriteString(t.Miss.Render("?"))
			} else {
				b.WriteString(t.Hit.Render(string(r.Pattern[i])))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderHint formats a hint, coloring the revealed letter.
func RenderHint(t Theme, h game.Hint, target string) string {
	if h.Kind == game.HintLetter {
		return "The word contains: " + t.Present.Render(string(h.Letter))
	}
	return fmt.Sprintf("The %s letter is: %s", game.Ordinal(h.Index+1), t.Hit.Render(string(target[h.Index])))
}

// remainLabel is the "N Guesses Remain" banner.
func remainLabel(n int) string {
	if n == 1 {
		return fmt.Sprintf(" - %d Guess Remains -", n)
	}
	return fmt.Sprintf(" - %d Guesses Remain -", n)
}

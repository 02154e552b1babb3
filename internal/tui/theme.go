package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style

	Hit     lipgloss.Style
	Present lipgloss.Style
	Miss    lipgloss.Style
	Blank   lipgloss.Style
}

func DefaultTheme() Theme {
	tile := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),

		Hit:     tile.Background(lipgloss.Color("34")).Foreground(lipgloss.Color("231")),
		Present: tile.Background(lipgloss.Color("178")).Foreground(lipgloss.Color("16")),
		Miss:    tile.Background(lipgloss.Color("240")).Foreground(lipgloss.Color("231")),
		Blank:   tile,
	}
}

// Tile returns the style for a letter with mark m.
func (t Theme) Tile(m game.Mark) lipgloss.Style {
	switch m {
	case game.MarkHit:
		return t.Hit
	case game.MarkPresent:
		return t.Present
	case game.MarkMiss:
		return t.Miss
	}
	return t.Blank
}

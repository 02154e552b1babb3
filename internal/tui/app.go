package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-term/internal/config"
	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenNotice
	screenResult
)

// Deps are the collaborators the UI drives.
type Deps struct {
	Config config.Config
	Words  *words.Live
	Rand   game.Rand

	// PickTarget chooses the target for a new game.
	PickTarget func() string

	// StartMode, when set, skips the menu and starts that mode.
	StartMode string
	Cheat     bool

	// Watcher, when set, pushes reload notices into the UI.
	Watcher *words.Watcher
}

type wordsReloadedMsg struct {
	report words.LoadReport
}

type model struct {
	theme Theme
	deps  Deps

	scr    screen
	cursor int

	mode  config.Mode
	g     *game.Game
	input textinput.Model
	cheat bool

	notice string
	status string
}

// Run starts the full-screen game loop and blocks until the player quits.
func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if deps.Watcher != nil {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		deps.Watcher.OnReload = func(r words.LoadReport) { p.Send(wordsReloadedMsg{report: r}) }
		go func() {
			if err := deps.Watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Warn().Err(err).Msg("word list watcher stopped")
			}
		}()
	}
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	ti := textinput.New()
	ti.CharLimit = 16
	ti.Width = 16
	ti.Prompt = ""

	m := model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenMenu,
		input: ti,
		cheat: deps.Cheat,
	}
	if deps.StartMode != "" {
		if mode, ok := deps.Config.Mode(deps.StartMode); ok {
			m = m.startGame(mode)
		}
	}
	return m
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case wordsReloadedMsg:
		m.status = fmt.Sprintf("Word list reloaded (%d words)", msg.report.Kept)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.scr {
		case screenMenu:
			return m.updateMenu(msg)
		case screenGame:
			return m.updateGame(msg)
		case screenNotice:
			if msg.Type == tea.KeyEnter || msg.Type == tea.KeyEsc {
				m.scr = screenGame
				m.notice = ""
			}
			return m, nil
		case screenResult:
			if msg.Type == tea.KeyEnter || msg.Type == tea.KeyEsc {
				m.scr = screenMenu
				m.g = nil
			}
			return m, nil
		}
	}

	if m.scr == screenGame {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	modes := m.deps.Config.Modes
	switch msg.String() {
	case "q", "Q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(modes) {
			m.cursor++
		}
	case "enter":
		if m.cursor == len(modes) {
			return m, tea.Quit
		}
		return m.startGame(modes[m.cursor]), textinput.Blink
	default:
		// 1..9 pick a mode directly.
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if i := int(s[0] - '1'); i < len(modes) {
				return m.startGame(modes[i]), textinput.Blink
			}
		}
	}
	return m, nil
}

func (m model) startGame(mode config.Mode) model {
	m.mode = mode
	m.g = game.New(m.deps.PickTarget(), m.deps.Config.Options(mode))
	m.scr = screenGame
	m.notice = ""
	m.input.Reset()
	m.input.Focus()
	log.Info().
		Str("gameId", m.g.ID).
		Str("mode", mode.Name).
		Int("maxGuesses", m.g.Options.MaxGuesses).
		Bool("hard", m.g.Options.HardMode).
		Int("hints", m.g.Options.Hints).
		Msg("game started")
	return m
}

func (m model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.KeyEnter {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	raw := strings.ToUpper(strings.TrimSpace(m.input.Value()))
	m.input.Reset()

	switch raw {
	case "":
		return m, nil
	case "Q":
		return m, tea.Quit
	case "M":
		log.Info().Str("gameId", m.g.ID).Int("guesses", len(m.g.Guesses)).Msg("game abandoned")
		m.scr = screenMenu
		m.g = nil
		return m, nil
	case "H":
		if m.g.HintsEnabled() && m.g.HintsRemaining() != 0 {
			return m.hint(), nil
		}
	}
	return m.guess(raw), nil
}

func (m model) hint() model {
	h, err := m.g.Hint(m.deps.Rand)
	if err != nil {
		// Out of hints: the option is no longer shown.
		log.Debug().Err(err).Str("gameId", m.g.ID).Msg("hint refused")
		return m
	}
	log.Debug().Str("gameId", m.g.ID).Str("hint", h.Text(m.g.Target)).Msg("hint given")
	m.notice = RenderHint(m.theme, h, m.g.Target)
	m.scr = screenNotice
	return m
}

func (m model) guess(raw string) model {
	_, err := m.g.Guess(raw, m.deps.Words)
	if err != nil {
		log.Debug().Err(err).Str("gameId", m.g.ID).Str("guess", raw).Msg("guess rejected")
		m.notice = m.rejection(raw, err)
		m.scr = screenNotice
		return m
	}
	log.Debug().Str("gameId", m.g.ID).Str("guess", raw).Str("status", string(m.g.Status)).Msg("guess accepted")
	if m.g.Status.Finished() {
		log.Info().
			Str("gameId", m.g.ID).
			Str("status", string(m.g.Status)).
			Int("guesses", len(m.g.Guesses)).
			Msg("game finished")
		m.scr = screenResult
	}
	return m
}

// rejection turns a Guess error into the message shown to the player.
func (m model) rejection(raw string, err error) string {
	var hm *game.HardModeError
	switch {
	case errors.As(err, &hm):
		return RenderRules(m.theme, hm.Rules)
	case errors.Is(err, game.ErrInvalidGuess):
		return fmt.Sprintf("Guesses have to be %d alphabetical characters.\nNo spaces, numbers, etc.", len(m.g.Target))
	case errors.Is(err, game.ErrNotInWordList):
		return fmt.Sprintf("%q not found in word list.", raw)
	case errors.Is(err, game.ErrAlreadyGuessed):
		return fmt.Sprintf("You have already guessed %q!", raw)
	}
	return m.theme.Error.Render(err.Error())
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Wordle") + "\n"
	if m.status != "" {
		header += m.theme.Subtitle.Render(m.status) + "\n"
	}

	switch m.scr {
	case screenMenu:
		return wrap.Render(header + "\n" + m.viewMenu())
	case screenGame:
		return wrap.Render(header + "\n" + m.viewGame())
	case screenNotice:
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.notice) + "\n\n" +
			m.theme.Help.Render("Press [enter] to continue..."))
	case screenResult:
		return wrap.Render(header + "\n" + m.viewResult())
	}
	return wrap.Render(header + "\nunknown state")
}

func (m model) viewMenu() string {
	var b strings.Builder
	modes := m.deps.Config.Modes
	for i, mode := range modes {
		line := fmt.Sprintf("%d. New %s Game", i+1, mode.Name)
		if mode.Description != "" {
			line += "  (" + mode.Description + ")"
		}
		b.WriteString(m.menuLine(i, line) + "\n")
	}
	b.WriteString("\n" + m.menuLine(len(modes), "Q. Quit") + "\n\n")
	b.WriteString(m.theme.Help.Render("↑/↓ navigate • enter select • 1-9 pick • q quit"))
	return b.String()
}

func (m model) menuLine(i int, s string) string {
	if i == m.cursor {
		return m.theme.Selected.Render("> " + s)
	}
	return "  " + s
}

func (m model) viewGame() string {
	g := m.g
	var b strings.Builder
	b.WriteString(m.theme.Subtitle.Render(m.mode.Name+" game") + "\n\n")
	if m.cheat {
		fmt.Fprintf(&b, "(%s)\n\n", g.Target)
	}
	if len(g.Guesses) > 0 {
		b.WriteString("Guessed:\n\n")
		b.WriteString(RenderGuesses(m.theme, g.Guesses, g.Target))
		b.WriteString("\n")
	}
	b.WriteString(remainLabel(g.Remaining()) + "\n\n")
	if g.HintsEnabled() {
		switch n := g.HintsRemaining(); {
		case n < 0:
			b.WriteString("H. Get Hint\n")
		case n > 0:
			fmt.Fprintf(&b, "H. Get Hint (%d Remain)\n", n)
		}
	}
	b.WriteString("M. Main Menu\nQ. Quit\n\n")
	b.WriteString(RenderKeyboard(m.theme, g.Summary()) + "\n\n")
	fmt.Fprintf(&b, "Please enter a %d letter word:  %s", len(g.Target), m.input.View())
	return b.String()
}

func (m model) viewResult() string {
	g := m.g
	var b strings.Builder
	if g.Status == game.StatusWon {
		b.WriteString(m.theme.Title.Render("You WON!") + "\n\n")
	} else {
		b.WriteString(m.theme.Title.Render("You LOST!") + "\n\n")
	}
	b.WriteString("Attempts:\n\n")
	b.WriteString(RenderGuesses(m.theme, g.Guesses, g.Target))
	if g.Status == game.StatusLost {
		b.WriteString("\nThe correct word was:\n\n   ")
		b.WriteString(RenderPlain(m.theme, g.Target, game.MarkHit) + "\n")
	}
	b.WriteString("\n" + m.theme.Help.Render("Press [enter] to return to the main menu..."))
	return b.String()
}

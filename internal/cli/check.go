package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/tui"
)

func checkCmd() *cobra.Command {
	var previous string

	c := &cobra.Command{
		Use:   "check GUESS TARGET",
		Short: "Score a guess against a target without playing",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			guess, target := game.Normalize(args[0]), game.Normalize(args[1])
			for _, w := range []string{guess, target} {
				if !game.ValidWord(w) {
					return fmt.Errorf("%w: %q", game.ErrInvalidGuess, w)
				}
			}

			out := cmd.OutOrStdout()
			fb := game.Evaluate(guess, target)
			fmt.Fprintf(out, "%s  %s\n", tui.RenderWord(tui.DefaultTheme(), guess, fb), markNames(fb))

			if previous == "" {
				return nil
			}
			prev := game.Normalize(previous)
			if !game.ValidWord(prev) {
				return fmt.Errorf("%w: %q", game.ErrInvalidGuess, prev)
			}
			if rules, ok := game.CheckHardMode(guess, prev, target); !ok {
				fmt.Fprint(out, tui.RenderRules(tui.DefaultTheme(), rules))
				return &game.HardModeError{Guess: guess, Rules: rules}
			}
			fmt.Fprintln(out, "hard mode: ok")
			return nil
		},
	}

	c.Flags().StringVarP(&previous, "previous", "p", "", "also check hard mode against this earlier guess")
	return c
}

func markNames(fb game.Feedback) string {
	names := make([]string, len(fb.Marks))
	for i, m := range fb.Marks {
		names[i] = string(m)
	}
	return strings.Join(names, " ")
}

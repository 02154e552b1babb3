package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-term/internal/daily"
	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

func wordsCmd(g *globalFlags) *cobra.Command {
	var showDaily bool

	c := &cobra.Command{
		Use:   "words [WORD...]",
		Short: "Show word list statistics and look up words",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			cleanup := setupLogging(cfg, false)
			defer cleanup()

			dict, rep, err := words.Load(cmd.Context(), wordOptions(cfg))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printReport(cmd, rep)
			for _, a := range args {
				w := game.Normalize(a)
				status := "not in word list"
				switch {
				case !game.ValidWord(w):
					status = "invalid"
				case dict.Contains(w):
					status = "ok"
				}
				fmt.Fprintf(out, "%s: %s\n", w, status)
			}
			if showDaily {
				now := time.Now()
				fmt.Fprintf(out, "daily %s: %s\n", daily.DateKey(now), daily.Target(now, cfg.DailySalt, dict))
			}
			return nil
		},
	}

	c.Flags().BoolVar(&showDaily, "daily", false, "print today's word")
	return c
}

func printReport(cmd *cobra.Command, rep words.LoadReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "source:       %s\n", rep.Source)
	fmt.Fprintf(out, "entries:      %d\n", rep.Total)
	fmt.Fprintf(out, "non-alpha:    %d\n", rep.NonAlpha)
	fmt.Fprintf(out, "wrong length: %d\n", rep.WrongLength)
	fmt.Fprintf(out, "duplicates:   %d\n", rep.Duplicates)
	fmt.Fprintf(out, "kept:         %d\n", rep.Kept)
}

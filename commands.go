package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/cli/internal/config"
	"github.com/robalobadob/wordle/apps/cli/internal/console"
	"github.com/robalobadob/wordle/apps/cli/internal/daily"
	"github.com/robalobadob/wordle/apps/cli/internal/game"
	"github.com/robalobadob/wordle/apps/cli/internal/session"
	"github.com/robalobadob/wordle/apps/cli/internal/ui"
	"github.com/robalobadob/wordle/apps/cli/internal/word"
	"github.com/robalobadob/wordle/apps/cli/internal/words"
)

// newRootCmd builds the CLI around cfg. Flags write straight into cfg.
func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "wordle",
		Short:         "Play five-letter word puzzles or get suggestions for one",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return cfg.Validate()
		},
	}
	root.PersistentFlags().StringVar(&cfg.Color, "color", cfg.Color, "Colorize output: auto, always or never")

	root.AddCommand(newSolveCmd(cfg), newPlayCmd(cfg))
	return root
}

func newSolveCmd(cfg *config.Config) *cobra.Command {
	var (
		moreWords bool
		top       int
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Suggest guesses from the feedback of previous ones",
		Long: `Suggest guesses from the feedback of previous ones.

After each guess, type one line describing the result:
  a-z    letter is in the word, but not at this position
  A-Z    letter is at this position
  !x     letter x is not in the word (also ` + "`x or 'x" + `)

Example: C!r!a!n!e  (C correct, r a n e absent)
End input (Ctrl-D) to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lists, err := loadLists(cfg)
			if err != nil {
				return err
			}
			pool, err := lists.SolvePool(moreWords)
			if err != nil {
				return fmt.Errorf("build solve pool: %w", err)
			}

			in, p, err := openIO(cmd, cfg)
			if err != nil {
				return err
			}
			defer in.Close()

			return session.NewSolver(pool, in, p, top).Run(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&moreWords, "more-words", false, "Enable words that are accepted, but can't be an answer")
	cmd.Flags().IntVar(&top, "top", ui.DefaultTopGroups, "Number of score groups to show")
	return cmd
}

func newPlayCmd(cfg *config.Config) *cobra.Command {
	var (
		dailyMode bool
		strict    bool
		answer    string
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Guess a hidden five-letter word in six tries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lists, err := loadLists(cfg)
			if err != nil {
				return err
			}
			secret, err := pickAnswer(lists, cfg, answer, dailyMode)
			if err != nil {
				return err
			}

			var allowed game.Lookup
			if strict {
				allowed = func(w word.Word) bool { return w == secret || lists.IsGuessable(w) }
			}

			in, p, err := openIO(cmd, cfg)
			if err != nil {
				return err
			}
			defer in.Close()

			_, err = session.NewPlayer(secret, in, p, allowed).Run(cmd.Context())
			return err
		},
	}
	cmd.Flags().BoolVar(&dailyMode, "daily", false, "Play today's word instead of a random one")
	cmd.Flags().BoolVar(&strict, "strict", false, "Only accept guesses from the word lists")
	cmd.Flags().StringVar(&answer, "answer", "", "Fixed answer (testing)")
	_ = cmd.Flags().MarkHidden("answer")
	return cmd
}

func loadLists(cfg *config.Config) (*words.Lists, error) {
	lists, err := words.Load(words.Sources{UsedFile: cfg.UsedWordsFile, ExtraFile: cfg.ExtraWordsFile})
	if err != nil {
		return nil, err
	}
	used, extra := lists.Stats()
	log.Info().Int("used", used).Int("extra", extra).Msg("word lists loaded")
	return lists, nil
}

// pickAnswer resolves the secret: an explicit answer, today's word, or a
// uniformly random entry of the used list.
func pickAnswer(lists *words.Lists, cfg *config.Config, fixed string, dailyMode bool) (word.Word, error) {
	switch {
	case fixed != "":
		w, err := word.Parse(fixed)
		if err != nil {
			return w, fmt.Errorf("--answer: %w", err)
		}
		return w, nil
	case dailyMode:
		now := time.Now()
		w, idx, err := daily.Pick(now, cfg.DailySalt, lists.Used())
		if err != nil {
			return w, err
		}
		log.Debug().Str("date", daily.DateKey(now)).Int("index", idx).Msg("daily answer selected")
		return w, nil
	default:
		return lists.RandomAnswer()
	}
}

// openIO wires the command's streams to a LineReader and a Printer.
// The real stdout/stderr are wrapped for ANSI support.
func openIO(cmd *cobra.Command, cfg *config.Config) (console.LineReader, *ui.Printer, error) {
	out, errw := cmd.OutOrStdout(), cmd.ErrOrStderr()

	var outFile *os.File
	if f, ok := out.(*os.File); ok {
		outFile = f
	}
	color := ui.ColorEnabled(cfg.Color, outFile)
	out = ansiWriter(out)
	errw = ansiWriter(errw)

	in, err := console.Open(cmd.InOrStdin(), out, cfg.HistoryFile)
	if err != nil {
		return nil, nil, err
	}
	return in, ui.NewPrinter(out, errw, color), nil
}

func ansiWriter(w io.Writer) io.Writer {
	switch w {
	case os.Stdout:
		return ui.Stdout()
	case os.Stderr:
		return ui.Stderr()
	}
	return w
}

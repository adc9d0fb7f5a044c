// internal/ui/printer.go
//
// Plain-text rendering for both modes.
// Responsibilities:
//   - Suggestion tables for the solver (top score groups, highest printed last).
//   - The guess board for the game, colored when enabled:
//       green = correct, yellow = present, gray = incorrect.
//   - One-line diagnostics and end-of-game messages.
//
// Without color the board uses brackets: [c] correct, (p) present, ' i ' incorrect.

package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/robalobadob/wordle/apps/cli/internal/config"
	"github.com/robalobadob/wordle/apps/cli/internal/game"
	"github.com/robalobadob/wordle/apps/cli/internal/solver"
	"github.com/robalobadob/wordle/apps/cli/internal/word"
)

// DefaultTopGroups is how many score groups a suggestion table shows.
const DefaultTopGroups = 10

// ANSI formats: black text on a colored background.
const (
	correctFormat   = "\x1B[42m\x1B[30m %c \x1B[0m"
	presentFormat   = "\x1B[43m\x1B[30m %c \x1B[0m"
	incorrectFormat = "\x1B[100m\x1B[97m %c \x1B[0m"
	emptyFormat     = " %c "
)

// Plain formats used when color is off.
const (
	plainCorrect   = "[%c]"
	plainPresent   = "(%c)"
	plainIncorrect = " %c "
	plainEmpty     = " _ "
)

// Printer writes user-facing output.
type Printer struct {
	out   io.Writer
	errw  io.Writer
	color bool
}

// NewPrinter returns a Printer writing results to out and diagnostics to errw.
func NewPrinter(out, errw io.Writer, color bool) *Printer {
	if errw == nil {
		errw = out
	}
	return &Printer{out: out, errw: errw, color: color}
}

// Stdout wraps os.Stdout so ANSI sequences work on every platform.
func Stdout() io.Writer { return colorable.NewColorableStdout() }

// Stderr wraps os.Stderr so ANSI sequences work on every platform.
func Stderr() io.Writer { return colorable.NewColorableStderr() }

// ColorEnabled resolves a color mode for output f.
// "auto" enables color only when f is a terminal.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Suggestions prints the top score groups of r, lowest of them first, so the
// best group ends up closest to the prompt.
func (p *Printer) Suggestions(r solver.Ranking, top int) {
	groups := r.Top(top)
	fmt.Fprintln(p.out, "Suggestions, in ascending order of score:")
	for i := len(groups) - 1; i >= 0; i-- {
		fmt.Fprintf(p.out, "%5d -> %s\n", groups[i].Score, wordList(groups[i].Words))
	}
	fmt.Fprintf(p.out, "(%d candidates)\n", r.Len())
}

func wordList(ws []word.Word) string {
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = w.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Board prints every result so far, one numbered row per round.
func (p *Printer) Board(results []game.GuessResult) {
	for i, res := range results {
		fmt.Fprintf(p.out, "%d: %s\n", i+1, p.Row(res))
	}
}

// Row renders a single result.
func (p *Printer) Row(res game.GuessResult) string {
	var sb strings.Builder
	for _, l := range res {
		sb.WriteString(p.cell(l))
	}
	return sb.String()
}

func (p *Printer) cell(l game.GuessLetter) string {
	if p.color {
		switch l.Verdict {
		case game.VerdictCorrect:
			return fmt.Sprintf(correctFormat, l.Letter)
		case game.VerdictPresent:
			return fmt.Sprintf(presentFormat, l.Letter)
		case game.VerdictIncorrect:
			return fmt.Sprintf(incorrectFormat, l.Letter)
		}
		return fmt.Sprintf(emptyFormat, '_')
	}
	switch l.Verdict {
	case game.VerdictCorrect:
		return fmt.Sprintf(plainCorrect, l.Letter)
	case game.VerdictPresent:
		return fmt.Sprintf(plainPresent, l.Letter)
	case game.VerdictIncorrect:
		return fmt.Sprintf(plainIncorrect, l.Letter)
	}
	return plainEmpty
}

// Invalid reports a rejected input line.
func (p *Printer) Invalid(err error) {
	fmt.Fprintf(p.errw, "Invalid entry: %v\n", err)
}

// Won announces a win in round guesses.
func (p *Printer) Won(round int) {
	fmt.Fprintf(p.out, "You got it in %d!\n", round)
}

// Lost reveals the answer.
func (p *Printer) Lost(answer word.Word) {
	fmt.Fprintf(p.out, "Out of guesses. The answer was %s.\n", answer)
}

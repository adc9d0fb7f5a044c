// internal/session/solve.go
//
// Interactive solve loop.
//
// Each round prints suggestions for the current pool, adopts the filtered pool,
// then blocks for one feedback line. Rejected lines are reported and
// re-prompted without touching the hint. The loop only ends on a read error
// (end of input included) or context cancellation, which also interrupts a
// pending read.

package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/cli/internal/console"
	"github.com/robalobadob/wordle/apps/cli/internal/solver"
	"github.com/robalobadob/wordle/apps/cli/internal/ui"
	"github.com/robalobadob/wordle/apps/cli/internal/word"
)

// FeedbackPrompt is shown before each feedback line.
const FeedbackPrompt = "Result: "

// Solver owns the state of one solving session.
type Solver struct {
	ID    string
	Hint  solver.Hint
	Pool  []word.Word
	Top   int // score groups shown per round
	Round int

	in  console.LineReader
	out *ui.Printer
}

// NewSolver starts a session over pool. top <= 0 uses ui.DefaultTopGroups.
func NewSolver(pool []word.Word, in console.LineReader, out *ui.Printer, top int) *Solver {
	if top <= 0 {
		top = ui.DefaultTopGroups
	}
	return &Solver{
		ID:   uuid.NewString(),
		Pool: pool,
		Top:  top,
		in:   in,
		out:  out,
	}
}

// Suggest narrows the pool with the current hint, prints the top groups and
// returns the ranking.
func (s *Solver) Suggest() solver.Ranking {
	pool, ranking := solver.Suggest(s.Pool, &s.Hint)
	s.Pool = pool
	s.Round++

	ev := log.Debug().Str("session", s.ID).Int("round", s.Round).Int("pool", len(pool))
	if sum, err := ranking.Summary(); err == nil {
		ev = ev.Float64("score_mean", sum.Mean).Float64("score_median", sum.Median).Float64("score_max", sum.Max)
	}
	if best, ok := ranking.Best(); ok {
		ev = ev.Str("best", best.String())
	}
	ev.Msg("suggest")

	s.out.Suggestions(ranking, s.Top)
	return ranking
}

// ReadFeedback blocks until a valid feedback line arrives and applies it.
// Only read errors are returned.
func (s *Solver) ReadFeedback(ctx context.Context) (solver.Feedback, error) {
	for {
		line, err := readLine(ctx, s.in, FeedbackPrompt)
		if err != nil {
			return solver.Feedback{}, fmt.Errorf("read feedback: %w", err)
		}
		f, err := solver.ParseFeedback(line)
		if err != nil {
			log.Debug().Str("session", s.ID).Str("line", line).Err(err).Msg("rejected feedback")
			s.out.Invalid(err)
			continue
		}
		log.Debug().Str("session", s.ID).Int("letters", f.Letters()).Msg("feedback applied")
		s.Hint.Apply(f)
		return f, nil
	}
}

// Run loops until the input fails or ctx is done.
func (s *Solver) Run(ctx context.Context) error {
	log.Info().Str("session", s.ID).Int("pool", len(s.Pool)).Msg("solve session started")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Suggest()
		if _, err := s.ReadFeedback(ctx); err != nil {
			return err
		}
	}
}

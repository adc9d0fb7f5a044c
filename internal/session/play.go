// internal/session/play.go
//
// Interactive play loop: AwaitGuess(1..6) → Won | Lost.
// Unparseable (or, in strict mode, unknown) guesses are re-prompted without
// consuming a round. Every non-winning guess redisplays the whole board.

package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/cli/internal/console"
	"github.com/robalobadob/wordle/apps/cli/internal/game"
	"github.com/robalobadob/wordle/apps/cli/internal/ui"
	"github.com/robalobadob/wordle/apps/cli/internal/word"
)

// Outcome is how a finished game ended.
type Outcome struct {
	State  game.State
	Rounds int
	Answer word.Word
}

// Player drives one game.
type Player struct {
	Game    *game.Game
	Allowed game.Lookup // nil accepts any 5-letter guess

	in  console.LineReader
	out *ui.Printer
}

// NewPlayer starts a game for answer.
func NewPlayer(answer word.Word, in console.LineReader, out *ui.Printer, allowed game.Lookup) *Player {
	return &Player{Game: game.New(answer), Allowed: allowed, in: in, out: out}
}

func (p *Player) prompt() string {
	return fmt.Sprintf("Guess %d/%d: ", p.Game.Round+1, p.Game.Rows)
}

// Guess reads lines until one is accepted, applies it and returns its result.
func (p *Player) Guess(ctx context.Context) (game.GuessResult, error) {
	for {
		line, err := readLine(ctx, p.in, p.prompt())
		if err != nil {
			return game.GuessResult{}, fmt.Errorf("read guess: %w", err)
		}
		w, err := word.Parse(strings.TrimSpace(line))
		if err != nil {
			p.reject(line, err)
			continue
		}
		res, err := p.Game.ApplyGuess(w, p.Allowed)
		if errors.Is(err, game.ErrNotInWordList) {
			p.reject(line, fmt.Errorf("%s: %w", w, err))
			continue
		}
		return res, err
	}
}

func (p *Player) reject(line string, err error) {
	log.Debug().Str("game", p.Game.ID).Str("line", line).Err(err).Msg("rejected guess")
	p.out.Invalid(err)
}

// Run plays until the game is won or lost.
func (p *Player) Run(ctx context.Context) (Outcome, error) {
	g := p.Game
	log.Info().Str("game", g.ID).Msg("game started")
	for !g.State.Finished() {
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}
		res, err := p.Guess(ctx)
		if err != nil {
			return Outcome{}, err
		}
		log.Debug().Str("game", g.ID).Str("guess", res.Word().String()).Int("remaining", g.Remaining()).Msg("guess applied")
		if g.State != game.StateWon {
			p.out.Board(g.Results)
		}
	}

	out := Outcome{State: g.State, Rounds: g.Round, Answer: g.Answer}
	switch g.State {
	case game.StateWon:
		p.out.Won(g.Round)
	case game.StateLost:
		p.out.Lost(g.Answer)
	}
	log.Info().Str("game", g.ID).Str("state", string(g.State)).Int("rounds", g.Round).Msg("game finished")
	return out, nil
}

// internal/game/engine.go
//
// Core game engine for a single session.
// Responsibilities:
//   - Create new games with a fixed guess budget (6 rounds).
//   - Score guesses with the single-pass evaluator.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Evaluate compares each guess letter against the whole answer. A letter
//     guessed twice but present once is marked present both times.
//   - Word-list checks are optional and supplied by the caller.

package game

import (
	"errors"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/cli/internal/word"
)

const defaultRows = 6

var (
	// ErrGameFinished is returned when guessing after a win or loss.
	ErrGameFinished = errors.New("game finished")
	// ErrNotInWordList is returned by a Lookup rejecting a guess.
	ErrNotInWordList = errors.New("not in word list")
)

// Lookup reports whether a guess is acceptable. A nil Lookup accepts any word.
type Lookup func(w word.Word) bool

// New constructs a new game for answer with the default guess budget.
func New(answer word.Word) *Game {
	return &Game{
		ID:      uuid.NewString(),
		Answer:  answer,
		Rows:    defaultRows,
		Results: []GuessResult{},
		State:   StatePlaying,
	}
}

// ApplyGuess scores a guess and advances the game.
// Returns the per-letter result or an error; errors never consume a round.
//
// State transitions:
//   - guess == answer            → StateWon, Round is the score.
//   - otherwise the result is logged; once Round reaches Rows → StateLost.
func (g *Game) ApplyGuess(guess word.Word, allowed Lookup) (GuessResult, error) {
	if g.State.Finished() {
		return GuessResult{}, ErrGameFinished
	}
	if allowed != nil && !allowed(guess) {
		return GuessResult{}, ErrNotInWordList
	}

	g.Round++
	res := Evaluate(guess, g.Answer)
	if res.Solved() {
		g.State = StateWon
		return res, nil
	}

	g.Results = append(g.Results, res)
	if g.Round >= g.Rows {
		g.State = StateLost
	}
	return res, nil
}

// Remaining is the number of guesses left.
func (g *Game) Remaining() int {
	if g.State.Finished() {
		return 0
	}
	return g.Rows - g.Round
}

// Evaluate classifies each guess letter against answer:
//   - same letter at the same position → Correct
//   - letter anywhere else in answer   → Present
//   - otherwise                        → Incorrect
func Evaluate(guess, answer word.Word) GuessResult {
	var res GuessResult
	for i, c := range guess {
		switch {
		case c == answer[i]:
			res[i] = Correct(c)
		case answer.Contains(c):
			res[i] = Present(c)
		default:
			res[i] = Incorrect(c)
		}
	}
	return res
}

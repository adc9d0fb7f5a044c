// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Verdict: per-letter classification of a guess (correct/present/incorrect).
//   - GuessLetter, GuessResult: the verdicts for one guess.
//   - State: playing, won or lost.
//   - Game: state for a single in-progress or finished game.

package game

import (
	"github.com/robalobadob/wordle/apps/cli/internal/word"
)

// Verdict represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "":          no verdict yet (zero value, placeholder).
//   - "correct":   letter is in the answer at this position.
//   - "present":   letter is in the answer at another position.
//   - "incorrect": letter is not in the answer.
type Verdict string

const (
	VerdictEmpty     Verdict = ""
	VerdictCorrect   Verdict = "correct"
	VerdictPresent   Verdict = "present"
	VerdictIncorrect Verdict = "incorrect"
)

// GuessLetter is one guessed character and its verdict.
type GuessLetter struct {
	Verdict Verdict
	Letter  rune
}

// Correct, Present and Incorrect build a GuessLetter with that verdict.
func Correct(r rune) GuessLetter   { return GuessLetter{Verdict: VerdictCorrect, Letter: r} }
func Present(r rune) GuessLetter   { return GuessLetter{Verdict: VerdictPresent, Letter: r} }
func Incorrect(r rune) GuessLetter { return GuessLetter{Verdict: VerdictIncorrect, Letter: r} }

// GuessResult holds one verdict per guess position.
type GuessResult [word.Length]GuessLetter

// Solved reports whether every position is correct.
func (r GuessResult) Solved() bool {
	for _, l := range r {
		if l.Verdict != VerdictCorrect {
			return false
		}
	}
	return true
}

// Word returns the guess the result was computed for.
func (r GuessResult) Word() word.Word {
	var w word.Word
	for i, l := range r {
		w[i] = l.Letter
	}
	return w
}

// State is the coarse lifecycle of a Game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Finished reports whether s is terminal.
func (s State) Finished() bool { return s == StateWon || s == StateLost }

// Game holds the state of a single game session.
type Game struct {
	ID      string        // Session identifier (uuid).
	Answer  word.Word     // The secret word.
	Rows    int           // Maximum number of guesses allowed (6).
	Round   int           // Guesses consumed so far.
	Results []GuessResult // Non-winning guesses, indexed by round-1.
	State   State
}

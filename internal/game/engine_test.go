package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/cli/internal/word"
)

func TestEvaluate_ExactMatch(t *testing.T) {
	res := Evaluate(word.MustParse("abcde"), word.MustParse("abcde"))
	for i, l := range res {
		assert.Equal(t, VerdictCorrect, l.Verdict, "position %d", i)
	}
	assert.True(t, res.Solved())
	assert.Equal(t, word.MustParse("abcde"), res.Word())
}

func TestEvaluate_DuplicateGuessLettersBothPresent(t *testing.T) {
	res := Evaluate(word.MustParse("aabbc"), word.MustParse("ddaee"))
	assert.Equal(t, GuessResult{
		Present('a'),
		Present('a'),
		Incorrect('b'),
		Incorrect('b'),
		Incorrect('c'),
	}, res)
	assert.False(t, res.Solved())
}

func TestEvaluate_Mixed(t *testing.T) {
	res := Evaluate(word.MustParse("crane"), word.MustParse("zebra"))
	assert.Equal(t, GuessResult{
		Incorrect('c'),
		Present('r'),
		Present('a'),
		Incorrect('n'),
		Present('e'),
	}, res)

	res = Evaluate(word.MustParse("cobra"), word.MustParse("zebra"))
	assert.Equal(t, GuessResult{
		Incorrect('c'),
		Incorrect('o'),
		Correct('b'),
		Correct('r'),
		Correct('a'),
	}, res)
}

func TestEvaluate_Deterministic(t *testing.T) {
	g, a := word.MustParse("level"), word.MustParse("hello")
	assert.Equal(t, Evaluate(g, a), Evaluate(g, a))
}

func TestGuessResult_ZeroValueIsEmpty(t *testing.T) {
	var res GuessResult
	for _, l := range res {
		assert.Equal(t, VerdictEmpty, l.Verdict)
	}
}

func TestApplyGuess_Win(t *testing.T) {
	g := New(word.MustParse("zebra"))
	assert.NotEmpty(t, g.ID)
	assert.Equal(t, 6, g.Remaining())

	_, err := g.ApplyGuess(word.MustParse("crane"), nil)
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, g.State)

	res, err := g.ApplyGuess(word.MustParse("zebra"), nil)
	require.NoError(t, err)
	assert.True(t, res.Solved())
	assert.Equal(t, StateWon, g.State)
	assert.Equal(t, 2, g.Round)
	assert.Len(t, g.Results, 1)
	assert.Zero(t, g.Remaining())

	_, err = g.ApplyGuess(word.MustParse("zebra"), nil)
	assert.ErrorIs(t, err, ErrGameFinished)
}

func TestApplyGuess_LoseAfterSixRounds(t *testing.T) {
	g := New(word.MustParse("zebra"))
	guesses := []string{"crane", "blast", "cloud", "pinky", "moist", "fjord"}
	for i, s := range guesses {
		assert.Equal(t, StatePlaying, g.State, "before guess %d", i+1)
		_, err := g.ApplyGuess(word.MustParse(s), nil)
		require.NoError(t, err)
	}
	assert.Equal(t, StateLost, g.State)
	assert.True(t, g.State.Finished())
	assert.Len(t, g.Results, 6)
	assert.Equal(t, word.MustParse("crane"), g.Results[0].Word())
	assert.Equal(t, word.MustParse("fjord"), g.Results[5].Word())

	_, err := g.ApplyGuess(word.MustParse("zebra"), nil)
	assert.ErrorIs(t, err, ErrGameFinished)
}

func TestApplyGuess_LookupRejectsWithoutConsumingRound(t *testing.T) {
	g := New(word.MustParse("zebra"))
	only := func(w word.Word) bool { return w == word.MustParse("crane") }

	_, err := g.ApplyGuess(word.MustParse("qqqqq"), only)
	assert.ErrorIs(t, err, ErrNotInWordList)
	assert.Zero(t, g.Round)

	_, err = g.ApplyGuess(word.MustParse("crane"), only)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Round)
}

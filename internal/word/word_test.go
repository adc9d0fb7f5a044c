package word

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RoundTripsLowercase(t *testing.T) {
	inputs := []string{"crane", "CRANE", "CrAnE", "zebra", "aaaaa", "ab!de", "12345", "ÉCOLE"}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			w, err := Parse(in)
			require.NoError(t, err)
			assert.Equal(t, strings.ToLower(in), w.String())
		})
	}
}

func TestParse_WrongLength(t *testing.T) {
	for _, in := range []string{"", "a", "abcd", "abcdef", " crane", "crane\n"} {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			_, err := Parse(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrLength))

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, in, perr.Input)
		})
	}
}

func TestParse_CountsCharactersNotBytes(t *testing.T) {
	w, err := Parse("ñandú")
	require.NoError(t, err)
	assert.Equal(t, 'ñ', w[0])
	assert.Equal(t, 'ú', w[4])
}

func TestWord_Equality(t *testing.T) {
	assert.Equal(t, MustParse("Crane"), MustParse("cRANE"))
	assert.NotEqual(t, MustParse("crane"), MustParse("crate"))

	seen := map[Word]int{}
	seen[MustParse("crane")]++
	seen[MustParse("CRANE")]++
	assert.Len(t, seen, 1)
}

func TestWord_Contains(t *testing.T) {
	w := MustParse("sheet")
	assert.True(t, w.Contains('e'))
	assert.True(t, w.Contains('t'))
	assert.False(t, w.Contains('a'))
}

func TestParseAll(t *testing.T) {
	ws, err := ParseAll([]string{"crane", "Blast"})
	require.NoError(t, err)
	assert.Equal(t, []Word{MustParse("crane"), MustParse("blast")}, ws)

	_, err = ParseAll([]string{"crane", "toolong"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLength)
	assert.Contains(t, err.Error(), "entry 1")
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("nope") })
}

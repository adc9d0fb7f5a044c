// internal/word/word.go
//
// Fixed-length word value type shared by the solver and the game engine.
// Responsibilities:
//   - Parse a 5-character string into a Word (lowercased, no trimming).
//   - Render a Word back to text.
//
// Notes:
//   - Word is a plain array, so == and map keys compare all five positions.
//   - Length is counted in characters (runes), not bytes.
package word

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Length is the number of letters in every word.
const Length = 5

// ErrLength is matched by every ParseError.
var ErrLength = errors.New("word must be exactly 5 letters")

// Word is an immutable sequence of exactly Length lowercase characters.
type Word [Length]rune

// ParseError reports an input that does not have exactly Length characters.
type ParseError struct {
	Input  string
	Length int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid word %q: got %d letters, want %d", e.Input, e.Length, Length)
}

// Is lets errors.Is(err, ErrLength) match any ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrLength }

// Parse builds a Word from s. Each character is lowercased on its own;
// surrounding whitespace is the caller's problem.
func Parse(s string) (Word, error) {
	var w Word
	if n := utf8.RuneCountInString(s); n != Length {
		return w, &ParseError{Input: s, Length: n}
	}
	i := 0
	for _, r := range s {
		w[i] = unicode.ToLower(r)
		i++
	}
	return w, nil
}

// MustParse is Parse for literals known to be valid. It panics otherwise.
func MustParse(s string) Word {
	w, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return w
}

// ParseAll parses every entry of list, stopping at the first invalid one.
func ParseAll(list []string) ([]Word, error) {
	out := make([]Word, 0, len(list))
	for i, s := range list {
		w, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, w)
	}
	return out, nil
}

// String renders the letters with no separators.
func (w Word) String() string {
	var sb strings.Builder
	sb.Grow(Length)
	for _, r := range w {
		sb.WriteRune(r)
	}
	return sb.String()
}

// Contains reports whether r appears at any position.
func (w Word) Contains(r rune) bool {
	for _, c := range w {
		if c == r {
			return true
		}
	}
	return false
}

// internal/solver/feedback.go
//
// Parser for the one-line feedback the operator types after each guess.
//
// Grammar, read left to right with a position counter starting at 0:
//   a-z        letter is in the answer but not here (advances position)
//   A-Z        letter is in the answer at this position (advances position)
//   ! ` '      the next lowercase letter is absent from the answer instead
//   other      the whole line is rejected
//
// A negated letter still advances the position. An uppercase letter does not
// consume a pending negation.

package solver

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/robalobadob/wordle/apps/cli/internal/word"
)

var (
	// ErrInvalidFeedback is matched by every FeedbackError.
	ErrInvalidFeedback = errors.New("invalid feedback")
	// ErrTooManyLetters rejects lines that describe more letters than a word has.
	ErrTooManyLetters = fmt.Errorf("%w: more than %d letters", ErrInvalidFeedback, word.Length)
)

// FeedbackError points at the first disallowed character of a feedback line.
type FeedbackError struct {
	Char   rune
	Offset int // byte offset into the line
}

func (e *FeedbackError) Error() string {
	return fmt.Sprintf("invalid feedback: unexpected %q at offset %d", e.Char, e.Offset)
}

func (e *FeedbackError) Is(target error) bool { return target == ErrInvalidFeedback }

// Feedback is the set of hint increments described by one line.
type Feedback struct {
	Omit  []rune
	Req   []rune
	Found []FoundLetter
}

// Letters returns how many positions the feedback describes.
func (f Feedback) Letters() int { return len(f.Found) + len(f.Omit) }

// isNegation reports whether r marks the following letter as absent.
func isNegation(r rune) bool { return r == '!' || r == '`' || r == '\'' }

// ParseFeedback turns a feedback line into hint increments.
// It never returns a partial result alongside an error.
func ParseFeedback(line string) (Feedback, error) {
	var (
		f      Feedback
		pos    int
		negate bool
	)
	for off, c := range line {
		switch {
		case isNegation(c):
			negate = true
		case c >= 'a' && c <= 'z':
			if pos >= word.Length {
				return Feedback{}, ErrTooManyLetters
			}
			if negate {
				f.Omit = append(f.Omit, c)
				negate = false
			} else {
				f.Req = append(f.Req, c)
				f.Found = append(f.Found, FoundLetter{Letter: c, Position: pos})
			}
			pos++
		case c >= 'A' && c <= 'Z':
			if pos >= word.Length {
				return Feedback{}, ErrTooManyLetters
			}
			lc := unicode.ToLower(c)
			f.Req = append(f.Req, lc)
			f.Found = append(f.Found, FoundLetter{Letter: lc, Position: pos, CorrectLocation: true})
			pos++
		default:
			return Feedback{}, &FeedbackError{Char: c, Offset: off}
		}
	}
	return f, nil
}

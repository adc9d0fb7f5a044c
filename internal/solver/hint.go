// internal/solver/hint.go
//
// Accumulated constraint state for one solving session.
// Defines:
//   - FoundLetter: a single positional observation from a guess.
//   - Hint: absent letters, required letters and positional observations.
//
// A Hint only ever grows. Every mutation goes through Apply so a rejected
// feedback line can never leave it half-updated.

package solver

// FoundLetter records where a letter was (or was not) seen.
type FoundLetter struct {
	Letter          rune
	Position        int  // 0..4
	CorrectLocation bool // true: letter is at Position; false: present, but not at Position
}

// Hint holds everything learned from previous guesses.
type Hint struct {
	OmitLetters []rune        // letters absent from the answer (may repeat)
	ReqLetters  []rune        // letters present somewhere (multiset)
	CandLetters []FoundLetter // one entry per reported letter, in report order
}

// Apply appends a parsed feedback line to the hint.
func (h *Hint) Apply(f Feedback) {
	h.OmitLetters = append(h.OmitLetters, f.Omit...)
	h.ReqLetters = append(h.ReqLetters, f.Req...)
	h.CandLetters = append(h.CandLetters, f.Found...)
}

// Empty reports whether nothing has been learned yet.
func (h *Hint) Empty() bool {
	return len(h.OmitLetters) == 0 && len(h.ReqLetters) == 0 && len(h.CandLetters) == 0
}

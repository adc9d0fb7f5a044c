// internal/solver/filter.go
//
// Candidate filtering: keeps the words consistent with a Hint.

package solver

import "github.com/robalobadob/wordle/apps/cli/internal/word"

// IsCandidate reports whether w satisfies every constraint in h:
//   - it contains none of the omitted letters;
//   - it contains each required letter at least once (presence, not count);
//   - each FoundLetter holds at its position (equal when CorrectLocation,
//     different otherwise).
func IsCandidate(w word.Word, h *Hint) bool {
	for _, c := range h.OmitLetters {
		if w.Contains(c) {
			return false
		}
	}
	for _, c := range h.ReqLetters {
		if !w.Contains(c) {
			return false
		}
	}
	for _, f := range h.CandLetters {
		if f.Position < 0 || f.Position >= word.Length {
			return false
		}
		if (w[f.Position] == f.Letter) != f.CorrectLocation {
			return false
		}
	}
	return true
}

// Filter returns the words of pool accepted by h, in their original order.
// pool itself is left untouched.
func Filter(pool []word.Word, h *Hint) []word.Word {
	out := make([]word.Word, 0, len(pool))
	if h.Empty() {
		return append(out, pool...)
	}
	for _, w := range pool {
		if IsCandidate(w, h) {
			out = append(out, w)
		}
	}
	return out
}

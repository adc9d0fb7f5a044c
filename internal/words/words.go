// internal/words/words.go
//
// Provides word list management for the solver and the game.
//
// Responsibilities:
//   - Load the primary ("used") and secondary ("extra") lists from configured
//     files or fall back to the embedded defaults in package assets.
//   - Maintain a set for guess lookups (used ∪ extra).
//   - Supply RandomAnswer, SolvePool, IsGuessable and Stats.
//
// Word Lists:
//   - "used":  valid answers and guesses.
//   - "extra": valid guesses only; joined to the solve pool by --more-words.
//
// Load behavior:
//   1. A non-empty Sources path is read from disk.
//   2. An empty path falls back to the embedded list of the same kind.
//
// Constraints:
//   • Entries that are not 5 letters a–z are dropped here, not by the core.
//   • Lists are normalized to lowercase; order is preserved, duplicates kept.

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/cli/assets"
	"github.com/robalobadob/wordle/apps/cli/internal/word"
)

// ErrEmptyUsed is returned when no answers survive loading.
var ErrEmptyUsed = errors.New("words: used list is empty")

// Sources names optional files overriding the embedded lists.
type Sources struct {
	UsedFile  string
	ExtraFile string
}

// Lists is an immutable pair of loaded word lists.
type Lists struct {
	used     []string
	extra    []string
	guessSet map[string]struct{} // used ∪ extra
}

// Load reads both lists. It returns ErrEmptyUsed if the used list ends up empty.
func Load(src Sources) (*Lists, error) {
	used, err := loadList(src.UsedFile, assets.UsedList)
	if err != nil {
		return nil, fmt.Errorf("load used words: %w", err)
	}
	extra, err := loadList(src.ExtraFile, assets.ExtraList)
	if err != nil {
		return nil, fmt.Errorf("load extra words: %w", err)
	}
	if len(used) == 0 {
		return nil, ErrEmptyUsed
	}
	return New(used, extra), nil
}

// New builds Lists from already-normalized slices.
func New(used, extra []string) *Lists {
	l := &Lists{used: used, extra: extra}
	l.guessSet = toSet(used)
	for _, w := range extra {
		l.guessSet[w] = struct{}{}
	}
	return l
}

// loadList reads path when set, otherwise the embedded fallback,
// keeping only 5-letter alphabetic entries.
func loadList(path string, fallback func() ([]string, error)) ([]string, error) {
	var (
		raw []string
		err error
	)
	if path != "" {
		raw, err = readWordFile(path)
	} else {
		raw, err = fallback()
	}
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(raw))
	for _, w := range raw {
		if len(w) == word.Length && isAlpha(w) {
			out = append(out, w)
		}
	}
	if skipped := len(raw) - len(out); skipped > 0 {
		log.Debug().Str("file", path).Int("skipped", skipped).Msg("dropped malformed word list entries")
	}
	return out, nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return assets.ReadLines(f)
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Used returns the answer list.
func (l *Lists) Used() []string { return l.used }

// Extra returns the guess-only list.
func (l *Lists) Extra() []string { return l.extra }

// SolvePool returns the words the solver starts from: used, plus extra when
// more is set. The returned slice is fresh.
func (l *Lists) SolvePool(more bool) ([]word.Word, error) {
	src := l.used
	if more {
		src = make([]string, 0, len(l.used)+len(l.extra))
		src = append(src, l.used...)
		src = append(src, l.extra...)
	}
	return word.ParseAll(src)
}

// RandomAnswer returns a cryptographically random entry of the used list.
func (l *Lists) RandomAnswer() (word.Word, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.used))))
	if err != nil {
		return word.Word{}, fmt.Errorf("pick answer: %w", err)
	}
	return word.Parse(l.used[n.Int64()])
}

// IsGuessable reports whether w is in used ∪ extra.
func (l *Lists) IsGuessable(w word.Word) bool {
	_, ok := l.guessSet[w.String()]
	return ok
}

// Stats returns counts of loaded words: (used, extra).
func (l *Lists) Stats() (usedCount int, extraCount int) {
	return len(l.used), len(l.extra)
}

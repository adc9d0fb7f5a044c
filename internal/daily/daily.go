// internal/daily/daily.go
//
// Deterministic "word of the day" selection for `play --daily`.
// The index is HMAC-SHA256(salt, YYYY-MM-DD) modulo the answer count, so every
// player with the same salt and list gets the same answer on the same UTC day.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"time"

	"github.com/robalobadob/wordle/apps/cli/internal/word"
)

// ErrNoAnswers is returned when there is nothing to pick from.
var ErrNoAnswers = errors.New("daily: no answers")

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index in [0, n) for the date.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Pick returns the answer for date and its index in answers.
func Pick(date time.Time, salt string, answers []string) (word.Word, int, error) {
	if len(answers) == 0 {
		return word.Word{}, 0, ErrNoAnswers
	}
	idx := WordIndex(date, salt, len(answers))
	w, err := word.Parse(answers[idx])
	return w, idx, err
}

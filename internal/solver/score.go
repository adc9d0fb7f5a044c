// internal/solver/score.go
//
// Letter-frequency scoring of a candidate pool.
//
// The histogram counts every letter occurrence in every pool word. A word's
// score is the sum of the histogram counts of its distinct letters, so a
// repeated letter is only rewarded once. Words with equal scores are grouped,
// keeping pool order inside each group.

package solver

import (
	"sort"

	"github.com/robalobadob/wordle/apps/cli/internal/word"
)

// ScoreGroup is every pool word sharing one score.
type ScoreGroup struct {
	Score int
	Words []word.Word
}

// Ranking is the scored view of a pool.
type Ranking struct {
	Histogram map[rune]int
	Groups    []ScoreGroup // descending by Score
	Scores    map[word.Word]int
}

// Rank scores pool. It reads pool only.
func Rank(pool []word.Word) Ranking {
	hist := make(map[rune]int)
	for _, w := range pool {
		for _, c := range w {
			hist[c]++
		}
	}

	scores := make(map[word.Word]int, len(pool))
	byScore := make(map[int]*ScoreGroup)
	var groups []*ScoreGroup
	for _, w := range pool {
		s := scoreWord(w, hist)
		scores[w] = s
		g, ok := byScore[s]
		if !ok {
			g = &ScoreGroup{Score: s}
			byScore[s] = g
			groups = append(groups, g)
		}
		g.Words = append(g.Words, w)
	}

	out := make([]ScoreGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	return Ranking{Histogram: hist, Groups: out, Scores: scores}
}

// scoreWord sums hist over the distinct letters of w.
func scoreWord(w word.Word, hist map[rune]int) int {
	total := 0
	for i, c := range w {
		dup := false
		for _, prev := range w[:i] {
			if prev == c {
				dup = true
				break
			}
		}
		if !dup {
			total += hist[c]
		}
	}
	return total
}

// Suggest filters pool by h and ranks what is left.
// The filtered pool is returned so the caller can keep narrowing it.
func Suggest(pool []word.Word, h *Hint) ([]word.Word, Ranking) {
	filtered := Filter(pool, h)
	return filtered, Rank(filtered)
}

// Ascending returns the groups from lowest to highest score.
func (r Ranking) Ascending() []ScoreGroup {
	out := make([]ScoreGroup, len(r.Groups))
	for i, g := range r.Groups {
		out[len(r.Groups)-1-i] = g
	}
	return out
}

// Top returns the n highest-scoring groups, highest first.
func (r Ranking) Top(n int) []ScoreGroup {
	if n < 0 {
		n = 0
	}
	if n > len(r.Groups) {
		n = len(r.Groups)
	}
	out := make([]ScoreGroup, n)
	copy(out, r.Groups[:n])
	return out
}

// Len is the number of ranked words, duplicates included.
func (r Ranking) Len() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Words)
	}
	return n
}

// Best returns the first word of the highest-scoring group.
func (r Ranking) Best() (word.Word, bool) {
	if len(r.Groups) == 0 {
		return word.Word{}, false
	}
	return r.Groups[0].Words[0], true
}

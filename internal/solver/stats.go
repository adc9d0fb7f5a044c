package solver

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary describes the score distribution of a ranked pool.
type Summary struct {
	Words  int
	Groups int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
}

// Summary computes distribution statistics over every ranked word's score.
// An empty ranking returns an error wrapping stats.EmptyInputErr.
func (r Ranking) Summary() (Summary, error) {
	data := make(stats.Float64Data, 0, r.Len())
	for _, g := range r.Groups {
		for range g.Words {
			data = append(data, float64(g.Score))
		}
	}

	sum := Summary{Words: len(data), Groups: len(r.Groups)}
	var err error
	if sum.Min, err = stats.Min(data); err != nil {
		return sum, fmt.Errorf("score summary: %w", err)
	}
	if sum.Max, err = stats.Max(data); err != nil {
		return sum, fmt.Errorf("score summary: %w", err)
	}
	if sum.Mean, err = stats.Mean(data); err != nil {
		return sum, fmt.Errorf("score summary: %w", err)
	}
	if sum.Median, err = stats.Median(data); err != nil {
		return sum, fmt.Errorf("score summary: %w", err)
	}
	return sum, nil
}

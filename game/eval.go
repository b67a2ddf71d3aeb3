package game

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// EvaluateScore returns the accumulated score of the state
func EvaluateScore(s *State) float64 {
	return float64(s.score)
}

// EvaluateEmptyCells counts empty cells: more room means more time to merge
func EvaluateEmptyCells(s *State) float64 {
	return float64(len(s.EmptyCells()))
}

// EvaluateMonotonicity scores how well rows and columns are ordered toward the
// best corner, between 0 and 1
func EvaluateMonotonicity(s *State) float64 {
	pairs := 2 * s.size * (s.size - 1)
	if pairs == 0 {
		return 1
	}
	best := 0
	for _, fromTop := range []bool{true, false} {
		for _, fromLeft := range []bool{true, false} {
			best = max(best, s.monotonePairs(fromTop, fromLeft))
		}
	}
	return float64(best) / float64(pairs)
}

// EvaluateMergePotential counts adjacent equal tiles, i.e. merges available next turn
func EvaluateMergePotential(s *State) float64 {
	merges := 0
	for i := 0; i < s.size; i++ {
		for j := 0; j < s.size; j++ {
			rank := s.At(i, j)
			if rank == 0 {
				continue
			}
			if j+1 < s.size && s.At(i, j+1) == rank {
				merges++
			}
			if i+1 < s.size && s.At(i+1, j) == rank {
				merges++
			}
		}
	}
	return float64(merges)
}

// EvaluateCorner rewards keeping the largest tile in a corner, scaled by log2 of the score
func EvaluateCorner(s *State) float64 {
	top := uint8(0)
	for _, rank := range s.grid {
		top = max(top, rank)
	}
	if top == 0 {
		return 0
	}
	last := s.size - 1
	for _, corner := range [][2]int{{0, 0}, {0, last}, {last, 0}, {last, last}} {
		if s.At(corner[0], corner[1]) == top {
			return float64(top) * math.Log2(float64(s.score)+2)
		}
	}
	return 0
}

// Weighted combines evaluations as a weighted sum
type Weighted struct {
	Evaluate Evaluate
	Weight   float64
}

func EvaluateWeighted(terms ...Weighted) Evaluate {
	return func(s *State) float64 {
		return lo.SumBy(terms, func(t Weighted) float64 {
			return t.Weight * t.Evaluate(s)
		})
	}
}

// EvaluateBlend is the default composite heuristic: score, plus bonuses for
// space, ordering and pending merges
var EvaluateBlend = EvaluateWeighted(
	Weighted{Evaluate: EvaluateScore, Weight: 1},
	Weighted{Evaluate: EvaluateEmptyCells, Weight: 32},
	Weighted{Evaluate: EvaluateMonotonicity, Weight: 64},
	Weighted{Evaluate: EvaluateMergePotential, Weight: 16},
	Weighted{Evaluate: EvaluateCorner, Weight: 4},
)

var evaluations = map[string]Evaluate{
	"score":        EvaluateScore,
	"empty":        EvaluateEmptyCells,
	"monotonicity": EvaluateMonotonicity,
	"merges":       EvaluateMergePotential,
	"corner":       EvaluateCorner,
	"blend":        EvaluateBlend,
}

// LookupEvaluate resolves an evaluation by name, "" meaning the score
func LookupEvaluate(name string) (Evaluate, error) {
	if name == "" {
		return EvaluateScore, nil
	}
	evaluate, ok := evaluations[name]
	if !ok {
		return nil, fmt.Errorf("unknown heuristic %q, expected one of %v", name, lo.Keys(evaluations))
	}
	return evaluate, nil
}

// monotonePairs counts non-increasing neighbor pairs walking away from a corner
func (s *State) monotonePairs(fromTop, fromLeft bool) int {
	n := s.size
	pairs := 0
	for i := 0; i < n; i++ {
		for j := 0; j+1 < n; j++ {
			c1, c2 := j, j+1
			if !fromLeft {
				c1, c2 = n-1-j, n-2-j
			}
			if s.At(i, c1) >= s.At(i, c2) {
				pairs++
			}
		}
	}
	for j := 0; j < n; j++ {
		for i := 0; i+1 < n; i++ {
			r1, r2 := i, i+1
			if !fromTop {
				r1, r2 = n-1-i, n-2-i
			}
			if s.At(r1, j) >= s.At(r2, j) {
				pairs++
			}
		}
	}
	return pairs
}

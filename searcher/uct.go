package searcher

import "math"

type uct struct {
	c   float64 // Exploration constant
	lnN float64
}

// newUCT prepares the exploration term for a parent visited n times. An
// unvisited parent only has unvisited children, so ln(1) is used.
func newUCT(c float64, n int) uct {
	return uct{c: c, lnN: math.Log(float64(max(n, 1)))}
}

// UCT = q/n + c*sqrt(ln(N)/n), +Inf for unvisited children
func (u uct) evaluate(q float64, n int) float64 {
	if n == 0 {
		return math.Inf(1)
	}
	visits := float64(n)
	return q/visits + u.c*math.Sqrt(u.lnN/visits)
}

package tsp

import "golang.org/x/exp/rand"

// Mutate swaps two distinct random positions of t with probability rate and
// returns t (modified in place). The swap is a transposition, so t stays a
// permutation. Tours shorter than 2 are returned unchanged.
//
// Complexity: O(1).
func Mutate(t Tour, rate float64, r *rand.Rand) Tour {
	if len(t) < 2 {
		return t
	}
	r = orDefault(r)
	if r.Float64() >= rate {
		return t
	}
	i, j := distinctPair(r, len(t))
	t[i], t[j] = t[j], t[i]

	return t
}

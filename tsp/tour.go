// Package tsp - tour utilities.
//
// A Tour is an open permutation of 0..n-1: tour[k] is the k-th location
// visited and the edge tour[n-1]→tour[0] closes the cycle implicitly.
// Helpers here depend only on tour structure, never on costs.
package tsp

import (
	"fmt"
	"strconv"
	"strings"
)

// Tour is the visiting order of a closed cycle.
type Tour []int

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
// It allocates a single O(n) boolean marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrDimensionMismatch, len(perm), n)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: value %d at %d out of range", ErrDimensionMismatch, v, i)
		}
		if seen[v] {
			return fmt.Errorf("%w: duplicate %d at %d", ErrDimensionMismatch, v, i)
		}
		seen[v] = true
	}

	return nil
}

// Clone returns an independent copy of t.
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)

	return out
}

// Rotate returns a fresh copy of t shifted left by shift positions; the
// described cycle is unchanged.
//
// Complexity: O(n).
func (t Tour) Rotate(shift int) Tour {
	var n = len(t)
	if n == 0 {
		return Tour{}
	}
	shift = ((shift % n) + n) % n
	out := make(Tour, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = t[(i+shift)%n]
	}

	return out
}

// Reversed returns a fresh copy of t in reverse visiting order.
func (t Tour) Reversed() Tour {
	var n = len(t)
	out := make(Tour, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = t[n-1-i]
	}

	return out
}

// Canonical returns a copy of t rotated so that it starts at 0, oriented so
// that the right neighbour of 0 is not greater than its left neighbour. Two
// tours describing the same undirected cycle yield equal canonical forms.
// A tour without a 0 is returned as a plain copy.
//
// Complexity: O(n).
func Canonical(t Tour) Tour {
	var (
		n     = len(t)
		pivot = -1
		i     int
	)
	for i = 0; i < n; i++ {
		if t[i] == 0 {
			pivot = i
			break
		}
	}
	if pivot < 0 {
		return t.Clone()
	}
	out := t.Rotate(pivot)
	if n > 2 && out[1] > out[n-1] {
		reverseInPlace(out, 1, n-1)
	}

	return out
}

// reverseInPlace reverses the inclusive segment t[i..k].
func reverseInPlace(t Tour, i, k int) {
	for i < k {
		t[i], t[k] = t[k], t[i]
		i++
		k--
	}
}

// String renders the tour as "[0 3 1 2 | 0]", the bar marking the closure.
func (t Tour) String() string {
	if len(t) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range t {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteString(" | ")
	sb.WriteString(strconv.Itoa(t[0]))
	sb.WriteByte(']')

	return sb.String()
}

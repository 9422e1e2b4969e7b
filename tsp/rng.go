// Package tsp - RNG utilities shared by the genetic operators.
//
// This file centralizes deterministic random generation for the solver.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Every operator receives its *rand.Rand explicitly.
//
// Concurrency:
//   - rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use deriveRNG to create independent streams for parallel workers.
package tsp

import "golang.org/x/exp/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed uint64 = 1

// NewRand returns a deterministic generator for the operators of this package.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed bits are used verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	var s = uint64(seed)
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64 finalizer, so neighbouring stream ids are decorrelated.
//
// Complexity: O(1).
func deriveSeed(parent uint64, stream uint64) uint64 {
	var x = parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// deriveRNG creates an independent deterministic stream from base and a stream
// id. base.Uint64() is consumed once, so repeated derivations with the same id
// still differ. Call during setup, not in hot loops.
//
// Complexity: O(1).
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent = defaultRNGSeed
	if base != nil {
		parent = base.Uint64()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// orDefault returns r, or a default-seeded stream when r is nil.
func orDefault(r *rand.Rand) *rand.Rand {
	if r == nil {
		return NewRand(0)
	}

	return r
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using r.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, r *rand.Rand) {
	var (
		i, j int
		n    = len(a)
	)
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// permRange returns a uniformly random permutation of 0..n-1.
// Allocation is required by contract (the returned permutation slice).
//
// Complexity: O(n) time, O(n) space.
func permRange(n int, r *rand.Rand) Tour {
	p := make(Tour, n)

	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	shuffleIntsInPlace(p, r)

	return p
}

// distinctPair draws two distinct indices from [0, k) uniformly, without
// replacement and without rejection: the second draw is taken from the k-1
// remaining values. Requires k ≥ 2.
//
// Complexity: O(1), exactly two draws.
func distinctPair(r *rand.Rand, k int) (int, int) {
	var (
		i = r.Intn(k)
		j = r.Intn(k - 1)
	)
	if j >= i {
		j++
	}

	return i, j
}

// sortedDistinctPair is distinctPair ordered so that lo < hi.
func sortedDistinctPair(r *rand.Rand, k int) (lo, hi int) {
	lo, hi = distinctPair(r, k)
	if lo > hi {
		lo, hi = hi, lo
	}

	return lo, hi
}

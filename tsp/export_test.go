package tsp

// Test-only hooks for the external tsp_test package.
var (
	DistinctPair       = distinctPair
	SortedDistinctPair = sortedDistinctPair
	DeriveSeed         = deriveSeed
	DeriveRNG          = deriveRNG
	PermRange          = permRange
	AttemptBudget      = attemptBudget
	Chunk              = chunk
)

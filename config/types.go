// Package config holds the on-disk run configuration of the solver.
//
// A RunConfig file is YAML or JSON. Every field is optional; SetDefaults
// fills what is missing and Validate reports every problem at once.
//
//	populationSize: 200
//	crossoverRate: 0.9
//	maxGenerations: 1000
//	seed: 42
//	workers: 4
package config

// RunConfig mirrors tsp.Options plus the polish post-pass. Nil fields are
// unset.
type RunConfig struct {
	PopulationSize           *int     `json:"populationSize,omitempty"`
	CrossoverRate            *float64 `json:"crossoverRate,omitempty"`
	MutationRate             *float64 `json:"mutationRate,omitempty"`
	MaxGenerations           *int     `json:"maxGenerations,omitempty"`
	Seed                     *int64   `json:"seed,omitempty"`
	Workers                  *int     `json:"workers,omitempty"`
	LogEvery                 *int     `json:"logEvery,omitempty"`
	MaxAttemptsPerGeneration *int     `json:"maxAttemptsPerGeneration,omitempty"`
	StrictEdges              *bool    `json:"strictEdges,omitempty"`

	// Polish runs 2-opt on the genetic result; PolishMaxIters bounds the
	// accepted moves (0 = until a local optimum).
	Polish         *bool `json:"polish,omitempty"`
	PolishMaxIters *int  `json:"polishMaxIters,omitempty"`
}

package config

import (
	"fmt"
	"math"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/utils/ptr"

	"github.com/katalvlaran/gatsp/tsp"
)

// ValidateRunConfig checks the set fields of c and returns all violations as
// one aggregate error. Each violation matches tsp.ErrConfiguration.
func ValidateRunConfig(c *RunConfig) error {
	var errs []error
	invalid := func(field string, v any, want string) {
		errs = append(errs, fmt.Errorf("%w: %s=%v, want %s", tsp.ErrConfiguration, field, v, want))
	}

	if c.PopulationSize != nil && *c.PopulationSize < tsp.MinPopulationSize {
		invalid("populationSize", *c.PopulationSize, fmt.Sprintf("≥ %d", tsp.MinPopulationSize))
	}
	if c.CrossoverRate != nil && !(*c.CrossoverRate > 0 && *c.CrossoverRate <= 1) {
		invalid("crossoverRate", *c.CrossoverRate, "in (0, 1]")
	}
	if c.MutationRate != nil && (math.IsNaN(*c.MutationRate) || *c.MutationRate < 0 || *c.MutationRate > 1) {
		invalid("mutationRate", *c.MutationRate, "in [0, 1]")
	}
	if c.MaxGenerations != nil && *c.MaxGenerations <= 0 {
		invalid("maxGenerations", *c.MaxGenerations, "> 0")
	}
	if c.Workers != nil && *c.Workers < 0 {
		invalid("workers", *c.Workers, "≥ 0")
	}
	if c.LogEvery != nil && *c.LogEvery < 0 {
		invalid("logEvery", *c.LogEvery, "≥ 0")
	}
	if c.MaxAttemptsPerGeneration != nil && *c.MaxAttemptsPerGeneration < 0 {
		invalid("maxAttemptsPerGeneration", *c.MaxAttemptsPerGeneration, "≥ 0")
	}
	if ptr.Deref(c.PolishMaxIters, 0) < 0 {
		invalid("polishMaxIters", *c.PolishMaxIters, "≥ 0")
	}

	return utilerrors.NewAggregate(errs)
}

package config

import (
	"fmt"
	"os"

	"k8s.io/utils/ptr"
	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/gatsp/tsp"
)

// Load reads a RunConfig file, rejecting unknown fields. Defaults are not
// applied, so callers can still layer flags on top.
func Load(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes a YAML or JSON RunConfig.
func Parse(data []byte) (*RunConfig, error) {
	var c RunConfig
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	return &c, nil
}

// ToOptions converts c into engine options. Unset fields take the solver
// defaults; c itself is not modified.
func (c *RunConfig) ToOptions() tsp.Options {
	var (
		d    = tsp.DefaultOptions()
		opts = d
	)
	opts.PopulationSize = ptr.Deref(c.PopulationSize, d.PopulationSize)
	opts.CrossoverRate = ptr.Deref(c.CrossoverRate, d.CrossoverRate)
	opts.MutationRate = ptr.Deref(c.MutationRate, d.MutationRate)
	opts.MaxGenerations = ptr.Deref(c.MaxGenerations, d.MaxGenerations)
	opts.Seed = ptr.Deref(c.Seed, d.Seed)
	opts.Workers = ptr.Deref(c.Workers, d.Workers)
	opts.LogEvery = ptr.Deref(c.LogEvery, d.LogEvery)
	opts.MaxAttemptsPerGeneration = ptr.Deref(c.MaxAttemptsPerGeneration, d.MaxAttemptsPerGeneration)
	opts.StrictEdges = ptr.Deref(c.StrictEdges, d.StrictEdges)

	return opts
}

package config

import (
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"

	"github.com/katalvlaran/gatsp/tsp"
)

// SetDefaults_RunConfig fills unset fields with the solver defaults.
func SetDefaults_RunConfig(c *RunConfig) {
	klog.V(5).InfoS("Applying run configuration defaults")

	if c.PopulationSize == nil {
		c.PopulationSize = ptr.To(tsp.DefaultPopulationSize)
	}
	if c.CrossoverRate == nil {
		c.CrossoverRate = ptr.To(tsp.DefaultCrossoverRate)
	}
	if c.MutationRate == nil {
		c.MutationRate = ptr.To(tsp.DefaultMutationRate)
	}
	if c.MaxGenerations == nil {
		c.MaxGenerations = ptr.To(tsp.DefaultMaxGenerations)
	}
	if c.Seed == nil {
		c.Seed = ptr.To[int64](0)
	}
	if c.Workers == nil {
		c.Workers = ptr.To(1)
	}
	if c.LogEvery == nil {
		c.LogEvery = ptr.To(tsp.DefaultLogEvery)
	}
	if c.MaxAttemptsPerGeneration == nil {
		c.MaxAttemptsPerGeneration = ptr.To(0)
	}
	if c.StrictEdges == nil {
		c.StrictEdges = ptr.To(false)
	}
	if c.Polish == nil {
		c.Polish = ptr.To(false)
	}
	if c.PolishMaxIters == nil {
		c.PolishMaxIters = ptr.To(0)
	}
}

package app

import (
	"github.com/spf13/pflag"
	"k8s.io/utils/ptr"

	"github.com/katalvlaran/gatsp/config"
	"github.com/katalvlaran/gatsp/source"
	"github.com/katalvlaran/gatsp/tsp"
)

// SolveOptions is the flag surface of the solve command.
type SolveOptions struct {
	ConfigFile string

	// Instance, exactly one of these.
	MatrixFile   string
	CoordsFile   string
	Random       int
	RandomSparse bool
	MinWeight    int
	MaxWeight    int

	// Engine parameters; applied over the config file only when set.
	PopulationSize int
	CrossoverRate  float64
	MutationRate   float64
	Generations    int
	Seed           int64
	Workers        int
	LogEvery       int
	MaxAttempts    int
	StrictEdges    bool
	Polish         bool
	PolishIters    int

	Verify      bool
	JSON        bool
	ChartFile   string
	TourFile    string
	MetricsFile string
}

// NewSolveOptions returns options with the solver defaults.
func NewSolveOptions() *SolveOptions {
	d := tsp.DefaultOptions()
	return &SolveOptions{
		MinWeight:      source.DefaultMinWeight,
		MaxWeight:      source.DefaultMaxWeight,
		PopulationSize: d.PopulationSize,
		CrossoverRate:  d.CrossoverRate,
		MutationRate:   d.MutationRate,
		Generations:    d.MaxGenerations,
		Workers:        d.Workers,
		LogEvery:       d.LogEvery,
	}
}

// AddFlags binds o to fs.
func (o *SolveOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigFile, "config", o.ConfigFile, "Run configuration file (YAML or JSON). Flags override its values.")

	fs.StringVar(&o.MatrixFile, "matrix", o.MatrixFile, "Instance file with a distance matrix or points (YAML or JSON).")
	fs.StringVar(&o.CoordsFile, "coords", o.CoordsFile, "CSV file of x,y coordinates; distances are Euclidean.")
	fs.IntVar(&o.Random, "random", o.Random, "Solve a random complete graph with this many locations.")
	fs.BoolVar(&o.RandomSparse, "random-sparse", o.RandomSparse, "With --random, leave unconnected pairs at weight 0.")
	fs.IntVar(&o.MinWeight, "min-weight", o.MinWeight, "Smallest random edge weight.")
	fs.IntVar(&o.MaxWeight, "max-weight", o.MaxWeight, "Largest random edge weight.")

	fs.IntVar(&o.PopulationSize, "population", o.PopulationSize, "Tours per generation.")
	fs.Float64Var(&o.CrossoverRate, "crossover-rate", o.CrossoverRate, "Probability that a parent draw produces a child, in (0, 1].")
	fs.Float64Var(&o.MutationRate, "mutation-rate", o.MutationRate, "Probability of one swap per child, in [0, 1].")
	fs.IntVar(&o.Generations, "generations", o.Generations, "Generations to run.")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "Random seed. Unset picks one from the clock and logs it.")
	fs.IntVar(&o.Workers, "workers", o.Workers, "Parallel breeding workers; results depend on seed and workers.")
	fs.IntVar(&o.LogEvery, "log-every", o.LogEvery, "Log progress at -v=1 every N generations; 0 disables.")
	fs.IntVar(&o.MaxAttempts, "max-attempts", o.MaxAttempts, "Crossover attempts allowed per generation; 0 derives a bound.")
	fs.BoolVar(&o.StrictEdges, "strict-edges", o.StrictEdges, "Reject zero off-diagonal distances as missing connections.")
	fs.BoolVar(&o.Polish, "polish", o.Polish, "Improve the result with 2-opt.")
	fs.IntVar(&o.PolishIters, "polish-iters", o.PolishIters, "Maximum accepted 2-opt moves; 0 runs to a local optimum.")

	fs.BoolVar(&o.Verify, "verify", o.Verify, "Compare against the exact optimum (up to 16 locations).")
	fs.BoolVar(&o.JSON, "json", o.JSON, "Print the result as JSON.")
	fs.StringVar(&o.ChartFile, "chart", o.ChartFile, "Write an HTML convergence chart to this file.")
	fs.StringVar(&o.TourFile, "tour-chart", o.TourFile, "Write an HTML chart of the tour (coordinate instances only).")
	fs.StringVar(&o.MetricsFile, "metrics-file", o.MetricsFile, "Write run metrics in Prometheus text format to this file.")
}

// runConfig layers the flags that were set on fs over the config file.
func (o *SolveOptions) runConfig(fs *pflag.FlagSet) (*config.RunConfig, error) {
	rc := &config.RunConfig{}
	if o.ConfigFile != "" {
		var err error
		if rc, err = config.Load(o.ConfigFile); err != nil {
			return nil, err
		}
	}

	if fs.Changed("population") {
		rc.PopulationSize = ptr.To(o.PopulationSize)
	}
	if fs.Changed("crossover-rate") {
		rc.CrossoverRate = ptr.To(o.CrossoverRate)
	}
	if fs.Changed("mutation-rate") {
		rc.MutationRate = ptr.To(o.MutationRate)
	}
	if fs.Changed("generations") {
		rc.MaxGenerations = ptr.To(o.Generations)
	}
	if fs.Changed("seed") {
		rc.Seed = ptr.To(o.Seed)
	}
	if fs.Changed("workers") {
		rc.Workers = ptr.To(o.Workers)
	}
	if fs.Changed("log-every") {
		rc.LogEvery = ptr.To(o.LogEvery)
	}
	if fs.Changed("max-attempts") {
		rc.MaxAttemptsPerGeneration = ptr.To(o.MaxAttempts)
	}
	if fs.Changed("strict-edges") {
		rc.StrictEdges = ptr.To(o.StrictEdges)
	}
	if fs.Changed("polish") {
		rc.Polish = ptr.To(o.Polish)
	}
	if fs.Changed("polish-iters") {
		rc.PolishMaxIters = ptr.To(o.PolishIters)
	}

	return rc, nil
}

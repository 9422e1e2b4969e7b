// Package app implements the gatsp command line.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/gatsp/config"
	"github.com/katalvlaran/gatsp/matrix"
	"github.com/katalvlaran/gatsp/metrics"
	"github.com/katalvlaran/gatsp/plot"
	"github.com/katalvlaran/gatsp/source"
	"github.com/katalvlaran/gatsp/tsp"
)

// NewSolveCommand creates the root command; results are written to out.
func NewSolveCommand(out io.Writer) *cobra.Command {
	o := NewSolveOptions()
	cmd := &cobra.Command{
		Use:   "gatsp",
		Short: "Solve the travelling salesman problem with a genetic algorithm",
		Long: `gatsp evolves a population of tours over a symmetric distance matrix
and prints the cheapest closed tour it found.

The instance comes from exactly one of --matrix, --coords or --random.`,
		Example: `  gatsp --coords cities.csv --seed 42 --polish --tour-chart tour.html
  gatsp --random 30 --generations 2000 --workers 4 -v=1`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.Context(), o, cmd.Flags(), out)
		},
	}

	fs := cmd.Flags()
	o.AddFlags(fs)

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	fs.AddGoFlagSet(klogFlags)

	return cmd
}

// output is the printed result.
type output struct {
	Tour         []int    `json:"tour"`
	Cost         float64  `json:"cost"`
	Generations  int      `json:"generations"`
	Seed         int64    `json:"seed"`
	Polished     bool     `json:"polished,omitempty"`
	Optimum      *float64 `json:"optimum,omitempty"`
	Interrupted  bool     `json:"interrupted,omitempty"`
	ElapsedMilli int64    `json:"elapsedMs"`
}

// Run solves one instance as configured by o; fs reports which flags were set.
func Run(ctx context.Context, o *SolveOptions, fs *pflag.FlagSet, out io.Writer) error {
	logger := klog.FromContext(ctx)

	dist, points, err := o.loadInstance()
	if err != nil {
		return err
	}

	rc, err := o.runConfig(fs)
	if err != nil {
		return err
	}
	if err = config.ValidateRunConfig(rc); err != nil {
		return err
	}
	if rc.Seed == nil {
		seed := time.Now().UnixNano()
		rc.Seed = &seed
		logger.Info("No seed given, using clock", "seed", seed)
	}
	config.SetDefaults_RunConfig(rc)
	opts := rc.ToOptions()

	reg := prometheus.NewRegistry()
	if o.MetricsFile != "" {
		rec, err := metrics.NewRecorder(reg, "cli")
		if err != nil {
			return err
		}
		opts.Observer = rec
	}

	cm, err := tsp.NewCostMatrix(dist)
	if err != nil {
		return err
	}
	engine, err := tsp.NewEngine(cm, opts)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := engine.Run(ctx)
	interrupted := false
	if err != nil {
		if ctx.Err() == nil || res.Tour == nil {
			return err
		}
		logger.Info("Interrupted, reporting best tour so far", "generations", res.Generations)
		interrupted = true
	}

	result := output{
		Tour:        res.Canonical(),
		Cost:        res.Cost,
		Generations: res.Generations,
		Seed:        opts.Seed,
		Interrupted: interrupted,
	}
	if *rc.Polish {
		tour, cost, err := tsp.TwoOpt(cm, res.Tour, *rc.PolishMaxIters)
		if err != nil {
			return err
		}
		logger.V(1).Info("Polished with 2-opt", "before", res.Cost, "after", cost)
		result.Tour, result.Cost, result.Polished = tsp.Canonical(tour), cost, true
	}
	result.ElapsedMilli = time.Since(start).Milliseconds()

	if o.Verify {
		_, opt, err := tsp.TSPExact(cm)
		switch {
		case errors.Is(err, tsp.ErrTooLarge):
			logger.Info("Skipping --verify", "locations", cm.Size(), "max", tsp.MaxExactSize)
		case err != nil:
			return err
		default:
			result.Optimum = &opt
		}
	}

	if err = o.writeArtifacts(res, result.Tour, points, reg); err != nil {
		return err
	}

	return printResult(out, result, o.JSON)
}

// loadInstance returns the distance matrix and, for coordinate instances,
// the points.
func (o *SolveOptions) loadInstance() (matrix.Matrix, []matrix.Point, error) {
	var n int
	for _, set := range []bool{o.MatrixFile != "", o.CoordsFile != "", o.Random > 0} {
		if set {
			n++
		}
	}
	if n != 1 {
		return nil, nil, fmt.Errorf("exactly one of --matrix, --coords or --random is required")
	}

	switch {
	case o.MatrixFile != "":
		m, points, err := source.LoadFile(o.MatrixFile)
		return m, points, err
	case o.CoordsFile != "":
		f, err := os.Open(o.CoordsFile)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		m, points, err := source.EuclideanFromCSV(f)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", o.CoordsFile, err)
		}
		return m, points, nil
	case o.RandomSparse:
		m, err := source.RandomSparse(o.Random, o.Seed, o.MinWeight, o.MaxWeight)
		return m, nil, err
	default:
		m, err := source.RandomComplete(o.Random, o.Seed, o.MinWeight, o.MaxWeight)
		return m, nil, err
	}
}

func (o *SolveOptions) writeArtifacts(res tsp.Result, tour tsp.Tour, points []matrix.Point, reg *prometheus.Registry) error {
	if o.ChartFile != "" {
		if err := writeFile(o.ChartFile, func(w io.Writer) error {
			return plot.ConvergenceChart(w, "Best tour cost per generation", res.History)
		}); err != nil {
			return err
		}
	}
	if o.TourFile != "" {
		if points == nil {
			return fmt.Errorf("--tour-chart needs a coordinate instance (--coords or a points file)")
		}
		if err := writeFile(o.TourFile, func(w io.Writer) error {
			return plot.TourChart(w, "Best tour", points, tour)
		}); err != nil {
			return err
		}
	}
	if o.MetricsFile != "" {
		if err := writeFile(o.MetricsFile, func(w io.Writer) error {
			return metrics.WriteText(w, reg)
		}); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = render(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}

func printResult(out io.Writer, r output, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	fmt.Fprintf(out, "tour:        %v\n", tsp.Tour(r.Tour))
	fmt.Fprintf(out, "cost:        %.6g\n", r.Cost)
	fmt.Fprintf(out, "generations: %d\n", r.Generations)
	fmt.Fprintf(out, "seed:        %d\n", r.Seed)
	if r.Optimum != nil {
		gap := 0.0
		if *r.Optimum > 0 {
			gap = (r.Cost - *r.Optimum) / *r.Optimum * 100
		}
		fmt.Fprintf(out, "optimum:     %.6g (gap %.2f%%)\n", *r.Optimum, gap)
	}
	if r.Interrupted {
		fmt.Fprintln(out, "interrupted: true")
	}

	return nil
}

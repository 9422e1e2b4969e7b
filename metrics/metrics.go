// Package metrics exports genetic run progress as Prometheus metrics.
//
// A Recorder is a tsp.Observer: pass it as Options.Observer and every
// completed generation updates the series of its run label.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/gatsp/tsp"
)

const namespace = "gatsp"

// Recorder holds the run-labelled collectors.
type Recorder struct {
	run string

	generations    *prometheus.CounterVec
	attempts       *prometheus.CounterVec
	improvements   *prometheus.CounterVec
	bestCost       *prometheus.GaugeVec
	generationBest *prometheus.GaugeVec
	meanCost       *prometheus.GaugeVec
}

var _ tsp.Observer = (*Recorder)(nil)

// NewRecorder creates the collectors and registers them with reg. Series are
// labelled run=<run>.
func NewRecorder(reg prometheus.Registerer, run string) (*Recorder, error) {
	labels := []string{"run"}
	r := &Recorder{
		run: run,
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Generations completed.",
		}, labels),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "crossover_attempts_total",
			Help:      "Parent draws spent filling generations.",
		}, labels),
		improvements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "best_improvements_total",
			Help:      "Generations that lowered the best cost.",
		}, labels),
		bestCost: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_cost",
			Help:      "Best tour cost seen so far.",
		}, labels),
		generationBest: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "generation_best_cost",
			Help:      "Best tour cost within the last generation.",
		}, labels),
		meanCost: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "generation_mean_cost",
			Help:      "Mean tour cost of the last generation.",
		}, labels),
	}

	for _, c := range []prometheus.Collector{
		r.generations, r.attempts, r.improvements, r.bestCost, r.generationBest, r.meanCost,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// ObserveGeneration implements tsp.Observer.
func (r *Recorder) ObserveGeneration(s tsp.GenerationStats) {
	l := prometheus.Labels{"run": r.run}

	r.generations.With(l).Inc()
	r.attempts.With(l).Add(float64(s.Attempts))
	if s.Improved {
		r.improvements.With(l).Inc()
	}
	r.bestCost.With(l).Set(s.BestCost)
	r.generationBest.With(l).Set(s.GenerationBest)
	r.meanCost.With(l).Set(s.MeanCost)
}

// WriteText gathers g and writes it in the Prometheus text exposition format,
// the same format a node-exporter textfile collector reads.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err = enc.Encode(mf); err != nil {
			return err
		}
	}

	return nil
}

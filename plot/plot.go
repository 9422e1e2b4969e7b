// Package plot renders run results as standalone HTML charts.
package plot

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/katalvlaran/gatsp/matrix"
	"github.com/katalvlaran/gatsp/tsp"
)

// ErrNoData is returned for an empty history or point set.
var ErrNoData = errors.New("plot: nothing to plot")

// ConvergenceChart writes a line chart of the best cost after each
// generation (tsp.Result.History) to w.
func ConvergenceChart(w io.Writer, title string, history []float64) error {
	if len(history) == 0 {
		return ErrNoData
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "generation",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "best cost",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	generations := make([]int, len(history))
	data := make([]opts.LineData, len(history))
	for i, c := range history {
		generations[i] = i + 1
		data[i] = opts.LineData{Value: c}
	}
	line.SetXAxis(generations).AddSeries("best cost", data)

	return line.Render(w)
}

// TourChart writes the closed tour through points to w: the locations as a
// scatter layer and the visiting order as a line returning to the start.
func TourChart(w io.Writer, title string, points []matrix.Point, tour tsp.Tour) error {
	if len(points) == 0 {
		return ErrNoData
	}
	if err := tsp.ValidatePermutation(tour, len(points)); err != nil {
		return fmt.Errorf("plot: %w", err)
	}

	path := charts.NewLine()
	path.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d locations", len(points)),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "x",
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "y",
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	route := make([]opts.LineData, 0, len(tour)+1)
	for _, v := range tour {
		route = append(route, opts.LineData{Name: fmt.Sprint(v), Value: []float64{points[v].X, points[v].Y}})
	}
	route = append(route, route[0])
	path.AddSeries("tour", route)

	cities := charts.NewScatter()
	sites := make([]opts.ScatterData, len(points))
	for i, p := range points {
		sites[i] = opts.ScatterData{
			Name:       fmt.Sprint(i),
			Value:      []float64{p.X, p.Y},
			Symbol:     "circle",
			SymbolSize: 8,
		}
	}
	cities.AddSeries("locations", sites)
	path.Overlap(cities)

	return path.Render(w)
}

// Package report renders convergence plots for finished or archived runs.
package report

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/igorsergioJS/GA-PSO-web-app/internal/optimization"
)

// ConvergenceSeries extracts plottable best/mean fitness curves from a
// recorded stats series, skipping iterations where the mean is undefined.
func ConvergenceSeries(stats []optimization.IterationStats) (best, mean plotter.XYs) {
	for _, st := range stats {
		if !math.IsInf(st.BestFitness, 1) {
			best = append(best, plotter.XY{X: float64(st.Iteration), Y: st.BestFitness})
		}
		if !math.IsInf(st.MeanFitness, 1) {
			mean = append(mean, plotter.XY{X: float64(st.Iteration), Y: st.MeanFitness})
		}
	}
	return best, mean
}

// RenderConvergence writes a PNG plot of best and mean fitness per
// iteration.
func RenderConvergence(stats []optimization.IterationStats, title, outPath string) error {
	best, mean := ConvergenceSeries(stats)
	if len(best) == 0 {
		return fmt.Errorf("no finite fitness values to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Fitness"

	bestLine, err := plotter.NewLine(best)
	if err != nil {
		return err
	}
	p.Add(bestLine)
	p.Legend.Add("best", bestLine)

	if len(mean) > 0 {
		meanLine, err := plotter.NewLine(mean)
		if err != nil {
			return err
		}
		p.Add(meanLine)
		p.Legend.Add("mean", meanLine)
	}

	p.Legend.Top = true

	// Pad the Y range a little so flat curves stay visible.
	ys := make([]float64, len(best))
	for i, pt := range best {
		ys[i] = pt.Y
	}
	lo, hi := floats.Min(ys), floats.Max(ys)
	if lo == hi {
		p.Y.Min = lo - 1
		p.Y.Max = hi + 1
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, outPath)
}

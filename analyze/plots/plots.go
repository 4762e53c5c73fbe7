// package plots draws the accuracies of a run.
package plots

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/Arubaruba/naivebayes/analyze"
)

// DefaultBins is the number of histogram bins used when Settings.Bins is 0.
const DefaultBins = 10

type Settings struct {
	Title string
	Bins  int
}

var errNoTrials = errors.New("plots: no trials to plot")

// Histogram saves a histogram of the trial accuracies to file. The image
// format is chosen from the file extension (png, svg, pdf, ...).
func Histogram(file string, r analyze.Result, settings Settings) error {
	if len(r.Trials) == 0 {
		return errNoTrials
	}
	bins := settings.Bins
	if bins == 0 {
		bins = DefaultBins
	}

	plt := plot.New()
	plt.Title.Text = settings.Title
	plt.X.Label.Text = "Test accuracy"
	plt.Y.Label.Text = "Trials"

	h, err := plotter.NewHist(plotter.Values(r.Accuracies()), bins)
	if err != nil {
		return fmt.Errorf("plots: %w", err)
	}
	h.FillColor = plotutil.SoftColors[0]
	plt.Add(h)

	// Mark the mean and one standard deviation to either side.
	_, _, _, ymax := h.DataRange()
	for i, x := range []float64{r.Mean - r.Std, r.Mean, r.Mean + r.Std} {
		line, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: ymax}})
		if err != nil {
			return fmt.Errorf("plots: %w", err)
		}
		line.Color = plotutil.SoftColors[1]
		if i != 1 {
			line.Dashes = plotutil.Dashes(1)
		}
		plt.Add(line)
	}

	if err := plt.Save(4.48*vg.Inch, 3.37*vg.Inch, file); err != nil {
		return fmt.Errorf("plots: saving %s: %w", file, err)
	}
	return nil
}

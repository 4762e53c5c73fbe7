// Package report writes the results of a run for people to read.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Arubaruba/naivebayes/analyze"
)

// Seconds formats d as seconds with millisecond precision.
func Seconds(d time.Duration) string {
	return strconv.FormatFloat(float64(d.Milliseconds())/1000, 'f', -1, 64)
}

// Summary writes the elapsed time and the accuracy summary, one per line. The
// mean is printed as a whole percentage, truncated toward zero, and the
// standard deviation as a plain decimal.
func Summary(w io.Writer, elapsed time.Duration, r analyze.Result) error {
	_, err := fmt.Fprintf(w, "Time taken: %s\nTest accuracy summary - mean: %d%%, standard_dev: %s\n",
		Seconds(elapsed), uint64(r.Mean*100), strconv.FormatFloat(r.Std, 'f', -1, 64))
	return err
}

// Table writes one row per trial with its split sizes and accuracy.
func Table(w io.Writer, r analyze.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Trial", "Seed", "Trained", "Tested", "Correct", "Skipped", "Accuracy"})
	for i, tr := range r.Trials {
		t.AppendRow(table.Row{
			i,
			tr.Seed.String(),
			tr.Trained,
			tr.Tested,
			tr.Correct,
			tr.SkippedTrain + tr.SkippedTest,
			fmt.Sprintf("%.4f", tr.Accuracy),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "", "Mean", fmt.Sprintf("%.4f", r.Mean)})
	t.AppendFooter(table.Row{"", "", "", "", "", "Std", fmt.Sprintf("%.4f", r.Std)})
	t.Render()
}

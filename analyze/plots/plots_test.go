package plots

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Arubaruba/naivebayes"
	"github.com/Arubaruba/naivebayes/analyze"
)

func TestHistogram(t *testing.T) {
	r := analyze.Result{Mean: 0.75, Std: 0.05}
	for _, acc := range []float64{0.7, 0.72, 0.75, 0.75, 0.78, 0.8} {
		r.Trials = append(r.Trials, naivebayes.TrialResult{Accuracy: acc})
	}
	for _, name := range []string{"hist.png", "hist.svg"} {
		file := filepath.Join(t.TempDir(), name)
		require.NoError(t, Histogram(file, r, Settings{Title: "Accuracy"}))
		info, err := os.Stat(file)
		require.NoError(t, err)
		require.NotZero(t, info.Size())
	}
}

func TestHistogramErrors(t *testing.T) {
	require.ErrorIs(t, Histogram(filepath.Join(t.TempDir(), "x.png"), analyze.Result{}, Settings{}), errNoTrials)

	r := analyze.Result{Trials: []naivebayes.TrialResult{{Accuracy: 0.5}, {Accuracy: 0.6}}}
	require.Error(t, Histogram(filepath.Join(t.TempDir(), "x.unknown"), r, Settings{}))
}

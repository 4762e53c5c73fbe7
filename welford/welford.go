// package welford implements a streaming accumulator for the mean and
// variance of a sequence of observations.
//
// The update is the one of Welford:
//
//  B. P. Welford. "Note on a Method for Calculating Corrected Sums of Squares
//  and Products", Technometrics, Vol. 4, No. 3 (1962), pp. 419-420.
//
// which avoids the cancellation of the naive sum and sum of squares formula.
package welford

import "math"

// Incrementor accumulates the count, mean, and sum of squared deviations
// of the observations added to it. The zero value is an empty accumulator
// ready to use.
type Incrementor struct {
	n    int
	mean float64
	m2   float64 // sum of squared deviations from the running mean
}

// New returns an empty Incrementor.
func New() *Incrementor {
	return &Incrementor{}
}

// Add includes x in the statistics.
func (inc *Incrementor) Add(x float64) {
	inc.n++
	delta := x - inc.mean
	inc.mean += delta / float64(inc.n)
	inc.m2 += delta * (x - inc.mean)
}

// Count returns the number of observations added.
func (inc *Incrementor) Count() int {
	return inc.n
}

// Mean returns the running mean. Mean returns NaN if no observations have
// been added.
func (inc *Incrementor) Mean() float64 {
	if inc.n == 0 {
		return math.NaN()
	}
	return inc.mean
}

// Variance returns the population variance of the observations, that is
// the sum of squared deviations divided by the count and not by count-1.
// Variance returns NaN if no observations have been added.
func (inc *Incrementor) Variance() float64 {
	if inc.n == 0 {
		return math.NaN()
	}
	return inc.m2 / float64(inc.n)
}

// StdDev returns the square root of Variance.
func (inc *Incrementor) StdDev() float64 {
	return math.Sqrt(inc.Variance())
}

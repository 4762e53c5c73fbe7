package distribution

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultVarianceFloor is the smallest variance used to evaluate a density.
const DefaultVarianceFloor = 1e-9

// Density returns the normal probability density at x
//  1/sqrt(2π σ²) exp(-(x-μ)² / (2σ²))
// with mean μ and variance σ². Variances below DefaultVarianceFloor are raised
// to it, so the result is finite for finite arguments.
func Density(x, mean, variance float64) float64 {
	sigma := math.Sqrt(FloorVariance(variance, DefaultVarianceFloor))
	return distuv.Normal{Mu: mean, Sigma: sigma}.Prob(x)
}

// FloorVariance returns variance, or floor if variance is smaller. A
// feature whose training values are all equal has zero variance and would
// otherwise give an infinite density at that value and zero elsewhere.
func FloorVariance(variance, floor float64) float64 {
	if variance < floor {
		return floor
	}
	return variance
}

// IndependentGaussian is a Gaussian distribution where the
// dimensions are independent from one another.
type IndependentGaussian struct {
	Norms []distuv.Normal
}

// NewIndependentGaussian builds the distribution from per-dimension means and
// variances. Variances below floor are raised to floor.
func NewIndependentGaussian(mean, variance []float64, floor float64) IndependentGaussian {
	if len(mean) != len(variance) {
		panic("distribution: length mismatch")
	}
	norms := make([]distuv.Normal, len(mean))
	for i := range norms {
		norms[i] = distuv.Normal{
			Mu:    mean[i],
			Sigma: math.Sqrt(FloorVariance(variance[i], floor)),
		}
	}
	return IndependentGaussian{Norms: norms}
}

func (ind IndependentGaussian) Dim() int {
	return len(ind.Norms)
}

// Prob returns the product of the per-dimension densities at x.
func (ind IndependentGaussian) Prob(x []float64) float64 {
	if len(x) != len(ind.Norms) {
		panic("distribution: length mismatch")
	}
	prob := 1.0
	for i, v := range x {
		prob *= ind.Norms[i].Prob(v)
	}
	return prob
}

// LogProb returns the sum of the per-dimension log densities at x.
func (ind IndependentGaussian) LogProb(x []float64) float64 {
	if len(x) != len(ind.Norms) {
		panic("distribution: length mismatch")
	}
	var logprob float64
	for i, v := range x {
		logprob += ind.Norms[i].LogProb(v)
	}
	return logprob
}

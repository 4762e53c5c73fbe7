// package naivebayes implements a Gaussian naive Bayes classifier for binary
// labels, and its evaluation over a random train/test split.
//
// Every feature is modeled, separately for each class, as a normal
// distribution whose mean and variance are accumulated from the training rows
// in a single pass. A row is scored against each class by the product of its
// feature densities
//  L(c) = Π_i N(x_i; μ_{c,i}, σ²_{c,i})
// and assigned to the class with the larger score. No class prior is used and
// the scores are not normalized.
//
// The main routine is RunTrial, which trains and tests a model on one seeded
// split of a Dataset. Package analyze repeats trials and summarizes them.
package naivebayes

import (
	"fmt"

	"github.com/Arubaruba/naivebayes/distribution"
	"github.com/Arubaruba/naivebayes/welford"
)

// Class is a binary label.
type Class int

const (
	Negative Class = iota // label 0, healthy
	Positive              // any non-zero label, diseased
)

// ClassOf maps a label value to a Class. Zero is Negative, and every other
// value is Positive.
func ClassOf(label float64) Class {
	if label == 0 {
		return Negative
	}
	return Positive
}

func (c Class) String() string {
	switch c {
	case Negative:
		return "negative"
	case Positive:
		return "positive"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// ClassStatistics accumulates the per-feature statistics of the training rows
// of one class.
type ClassStatistics struct {
	features []welford.Incrementor
}

// NewClassStatistics returns empty statistics for nFeatures features.
func NewClassStatistics(nFeatures int) *ClassStatistics {
	if nFeatures < 1 {
		panic("naivebayes: no features")
	}
	return &ClassStatistics{features: make([]welford.Incrementor, nFeatures)}
}

// Add includes the feature values of one row.
func (c *ClassStatistics) Add(features []float64) {
	if len(features) != len(c.features) {
		panic("naivebayes: length mismatch")
	}
	for i, v := range features {
		c.features[i].Add(v)
	}
}

// Count returns the number of rows added.
func (c *ClassStatistics) Count() int {
	return c.features[0].Count()
}

// Feature returns the accumulator of feature i.
func (c *ClassStatistics) Feature(i int) *welford.Incrementor {
	return &c.features[i]
}

// Distribution returns the independent Gaussian fitted to the rows added so
// far. Variances below floor are raised to floor.
func (c *ClassStatistics) Distribution(floor float64) distribution.IndependentGaussian {
	mean := make([]float64, len(c.features))
	variance := make([]float64, len(c.features))
	for i := range c.features {
		mean[i] = c.features[i].Mean()
		variance[i] = c.features[i].Variance()
	}
	return distribution.NewIndependentGaussian(mean, variance, floor)
}

// Model is the trainer of a classifier. The zero value is not usable; use
// NewModel.
type Model struct {
	stats         [2]*ClassStatistics
	varianceFloor float64
}

// NewModel returns an untrained model for rows of nFeatures features plus a
// label.
func NewModel(nFeatures int, varianceFloor float64) *Model {
	return &Model{
		stats: [2]*ClassStatistics{
			Negative: NewClassStatistics(nFeatures),
			Positive: NewClassStatistics(nFeatures),
		},
		varianceFloor: varianceFloor,
	}
}

// Learn adds a training row. The last value of the row is the label.
func (m *Model) Learn(values []float64) {
	n := len(values) - 1
	if n < 0 {
		panic("naivebayes: empty row")
	}
	m.stats[ClassOf(values[n])].Add(values[:n])
}

// Class returns the statistics of class c.
func (m *Model) Class(c Class) *ClassStatistics {
	return m.stats[c]
}

// Classifier fits the class distributions to the rows learned so far. It
// returns an error wrapping ErrEmptyClass if either class has no rows.
func (m *Model) Classifier() (*Classifier, error) {
	for _, c := range []Class{Negative, Positive} {
		if m.stats[c].Count() == 0 {
			return nil, fmt.Errorf("%w: %v", ErrEmptyClass, c)
		}
	}
	return &Classifier{
		negative: m.stats[Negative].Distribution(m.varianceFloor),
		positive: m.stats[Positive].Distribution(m.varianceFloor),
	}, nil
}

// Classifier predicts the class of a row from fitted class distributions.
type Classifier struct {
	negative distribution.IndependentGaussian
	positive distribution.IndependentGaussian
}

// Likelihoods returns the unnormalized likelihood of the features under each
// class.
func (cl *Classifier) Likelihoods(features []float64) (negative, positive float64) {
	return cl.negative.Prob(features), cl.positive.Prob(features)
}

// Predict returns Negative if the features are strictly more likely under the
// negative class, and Positive otherwise.
func (cl *Classifier) Predict(features []float64) Class {
	neg, pos := cl.Likelihoods(features)
	if neg > pos {
		return Negative
	}
	return Positive
}

// package fold assigns the rows of a dataset to the training and testing
// partitions of a trial.
//
// A trial makes two passes over the rows, one to train and one to test. Each
// pass draws from its own generator built from the trial seed, so the n-th draw
// of the training pass and the n-th draw of the testing pass are the same
// value and every row lands in exactly one partition.
package fold

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// DefaultTestFraction is the probability that a row is held out for testing.
const DefaultTestFraction = 0.30

// Seed identifies the random stream of a trial. Trials are numbered from zero
// and all trials of a run share the same Salt.
type Seed struct {
	Trial uint32
	Salt  uint32
}

// Uint64 packs the seed into the generator seed.
func (s Seed) Uint64() uint64 {
	return uint64(s.Trial)<<32 | uint64(s.Salt)
}

func (s Seed) String() string {
	return fmt.Sprintf("[%d,%d]", s.Trial, s.Salt)
}

// Fold lists the row indices used for each part of a trial. Train and Test are
// disjoint and together contain every row.
type Fold struct {
	Train []int // rows used to fit the class statistics
	Test  []int // rows held out to measure accuracy
}

// Assigner decides the partition of every row from a seed. Each row costs
// exactly one uniform draw in [0, 1), and the row is a test row if the draw is
// at most TestFraction.
type Assigner struct {
	Seed         uint64
	TestFraction float64
}

// NewAssigner returns an Assigner for the seed.
func NewAssigner(seed Seed, testFraction float64) Assigner {
	return Assigner{Seed: seed.Uint64(), TestFraction: testFraction}
}

// Pass returns a fresh generator positioned at the start of the row sequence.
func (a Assigner) Pass() *Pass {
	if !(a.TestFraction > 0 && a.TestFraction < 1) {
		panic("fold: test fraction must be in (0, 1)")
	}
	return &Pass{
		rnd:      rand.New(rand.NewSource(a.Seed)),
		fraction: a.TestFraction,
	}
}

// Assign returns, for each of the n rows, whether it is a test row.
func (a Assigner) Assign(n int) []bool {
	if n < 0 {
		panic("fold: negative number of rows")
	}
	p := a.Pass()
	test := make([]bool, n)
	for i := range test {
		test[i] = p.IsTest()
	}
	return test
}

// Partition returns the row indices of each part for n rows.
func (a Assigner) Partition(n int) Fold {
	var f Fold
	for i, isTest := range a.Assign(n) {
		if isTest {
			f.Test = append(f.Test, i)
		} else {
			f.Train = append(f.Train, i)
		}
	}
	return f
}

// Pass walks the rows of one pass in order. A Pass is not safe for concurrent
// use.
type Pass struct {
	rnd      *rand.Rand
	fraction float64
	n        int
}

// IsTest draws the assignment of the next row.
func (p *Pass) IsTest() bool {
	p.n++
	return p.rnd.Float64() <= p.fraction
}

// Drawn returns the number of rows assigned so far.
func (p *Pass) Drawn() int {
	return p.n
}

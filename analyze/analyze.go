// package analyze repeats naive Bayes trials over independent splits of a
// dataset and summarizes their accuracies.
package analyze

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Arubaruba/naivebayes"
	"github.com/Arubaruba/naivebayes/distribution"
	"github.com/Arubaruba/naivebayes/fold"
	"github.com/Arubaruba/naivebayes/welford"
)

const (
	DefaultTrials   = 20
	DefaultSeedSalt = 1
)

var (
	// ErrTrials is returned for a negative number of trials.
	ErrTrials = errors.New("analyze: number of trials must be positive")
	// ErrTestFraction is returned for a test fraction outside (0, 1).
	ErrTestFraction = errors.New("analyze: test fraction must be in (0, 1)")
	// ErrVarianceFloor is returned for a negative or NaN variance floor.
	ErrVarianceFloor = errors.New("analyze: variance floor must be positive")
)

// Settings controls a run of trials. Zero fields take their defaults.
type Settings struct {
	Trials        int     // number of trials. If 0, defaults to DefaultTrials.
	TestFraction  float64 // If 0, defaults to fold.DefaultTestFraction.
	SeedSalt      uint32  // Second half of every trial seed.
	VarianceFloor float64 // If 0, defaults to distribution.DefaultVarianceFloor.

	// Concurrent is the number of trials run at once. 0 and 1 run the trials
	// sequentially in order.
	Concurrent int

	Logger *zap.Logger
}

// DefaultSettings returns the settings of the reference run.
func DefaultSettings() Settings {
	return Settings{
		Trials:        DefaultTrials,
		TestFraction:  fold.DefaultTestFraction,
		SeedSalt:      DefaultSeedSalt,
		VarianceFloor: distribution.DefaultVarianceFloor,
	}
}

func (s Settings) withDefaults() Settings {
	if s.Trials == 0 {
		s.Trials = DefaultTrials
	}
	if s.TestFraction == 0 {
		s.TestFraction = fold.DefaultTestFraction
	}
	if s.VarianceFloor == 0 {
		s.VarianceFloor = distribution.DefaultVarianceFloor
	}
	if s.Logger == nil {
		s.Logger = zap.NewNop()
	}
	return s
}

func (s Settings) validate() error {
	if s.Trials < 0 {
		return ErrTrials
	}
	if !(s.TestFraction > 0 && s.TestFraction < 1) {
		return fmt.Errorf("%w: %v", ErrTestFraction, s.TestFraction)
	}
	if !(s.VarianceFloor > 0) || math.IsInf(s.VarianceFloor, 1) {
		return fmt.Errorf("%w: %v", ErrVarianceFloor, s.VarianceFloor)
	}
	return nil
}

// Result summarizes the accuracies of a run.
type Result struct {
	Mean    float64 // mean accuracy over trials
	Std     float64 // population standard deviation of the accuracies
	Trials  []naivebayes.TrialResult
	Elapsed time.Duration // time spent running the trials
}

// Accuracies returns the accuracy of every trial in trial order.
func (r Result) Accuracies() []float64 {
	acc := make([]float64, len(r.Trials))
	for i, t := range r.Trials {
		acc[i] = t.Accuracy
	}
	return acc
}

// Run runs the trials and returns their summary. Trial i uses the seed
// (i, SeedSalt). The summary does not depend on Concurrent: the accuracies
// are always accumulated in trial order. The first failing trial aborts the
// run and its error is returned. Invalid settings are reported before any
// trial runs.
func Run(ctx context.Context, d *naivebayes.Dataset, settings Settings) (Result, error) {
	s := settings.withDefaults()
	if err := s.validate(); err != nil {
		return Result{}, err
	}
	log := s.Logger
	start := time.Now()

	log.Info("running trials",
		zap.Int("trials", s.Trials),
		zap.Int("records", d.Len()),
		zap.Int("invalid", d.Invalid()),
		zap.Float64("test_fraction", s.TestFraction),
		zap.Int("concurrent", s.Concurrent),
	)

	trials := make([]naivebayes.TrialResult, s.Trials)
	runOne := func(i int) error {
		seed := fold.Seed{Trial: uint32(i), Salt: s.SeedSalt}
		res, err := naivebayes.RunTrial(d, seed, s.TestFraction, s.VarianceFloor)
		if err != nil {
			return fmt.Errorf("analyze: trial %d: %w", i, err)
		}
		log.Debug("trial finished",
			zap.Int("trial", i),
			zap.Stringer("seed", seed),
			zap.Int("trained", res.Trained),
			zap.Int("tested", res.Tested),
			zap.Int("skipped_train", res.SkippedTrain),
			zap.Int("skipped_test", res.SkippedTest),
			zap.Float64("accuracy", res.Accuracy),
		)
		trials[i] = res
		return nil
	}

	if s.Concurrent <= 1 {
		for i := range trials {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
			if err := runOne(i); err != nil {
				return Result{}, err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.Concurrent)
		for i := range trials {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				return runOne(i)
			})
		}
		if err := g.Wait(); err != nil {
			return Result{}, err
		}
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
	}

	summary := welford.New()
	for _, t := range trials {
		summary.Add(t.Accuracy)
	}
	r := Result{
		Mean:    summary.Mean(),
		Std:     summary.StdDev(),
		Trials:  trials,
		Elapsed: time.Since(start),
	}
	log.Info("trials finished",
		zap.Float64("mean", r.Mean),
		zap.Float64("std", r.Std),
		zap.Duration("elapsed", r.Elapsed),
	)
	return r, nil
}

package naivebayes

import (
	"fmt"

	"github.com/Arubaruba/naivebayes/fold"
)

// TrialResult is the outcome of one train/test split.
type TrialResult struct {
	Seed     fold.Seed
	Accuracy float64 // Correct / Tested

	Trained int // rows used for training
	Tested  int // rows classified
	Correct int // rows classified as their label

	// Invalid records that fell in each partition and were skipped.
	SkippedTrain int
	SkippedTest  int
}

// RunTrial trains a model on the rows the assigner puts in the training
// partition and returns its accuracy on the rows it holds out. The training
// and testing passes each draw from a fresh generator built from the seed,
// so every record is in exactly one partition.
//
// Records with a parse or field count error are skipped in both passes.
// RunTrial returns an error wrapping ErrEmptyClass if a class has no training
// rows, and one wrapping ErrEmptyTestSet if no row was tested.
func RunTrial(d *Dataset, seed fold.Seed, testFraction, varianceFloor float64) (TrialResult, error) {
	res := TrialResult{Seed: seed}
	assigner := fold.NewAssigner(seed, testFraction)
	model := NewModel(d.Features(), varianceFloor)

	pass := assigner.Pass()
	for _, rec := range d.Records {
		if pass.IsTest() {
			continue
		}
		if rec.Err != nil {
			res.SkippedTrain++
			continue
		}
		model.Learn(rec.Values)
		res.Trained++
	}

	classifier, err := model.Classifier()
	if err != nil {
		return res, fmt.Errorf("naivebayes: trial %v: %w", seed, err)
	}

	pass = assigner.Pass()
	nFeatures := d.Features()
	for _, rec := range d.Records {
		if !pass.IsTest() {
			continue
		}
		if rec.Err != nil {
			res.SkippedTest++
			continue
		}
		features, label := rec.Values[:nFeatures], rec.Values[nFeatures]
		if classifier.Predict(features) == ClassOf(label) {
			res.Correct++
		}
		res.Tested++
	}
	if res.Tested == 0 {
		return res, fmt.Errorf("naivebayes: trial %v: %w", seed, ErrEmptyTestSet)
	}
	res.Accuracy = float64(res.Correct) / float64(res.Tested)
	return res, nil
}

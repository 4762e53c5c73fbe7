package naivebayes

import "errors"

var (
	// ErrEmptyTestSet is returned when a trial holds out no usable rows, so
	// its accuracy is undefined.
	ErrEmptyTestSet = errors.New("naivebayes: no rows tested")
	// ErrEmptyClass is returned when a class received no training rows and
	// its feature statistics are undefined.
	ErrEmptyClass = errors.New("naivebayes: class has no training rows")
	// ErrNoFeatures is returned for a field count that leaves no feature
	// columns.
	ErrNoFeatures = errors.New("naivebayes: field count must be at least 2")
)

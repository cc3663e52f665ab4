package numeric

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// ErrTooFewValues is returned when a sample statistic needs more observations.
var ErrTooFewValues = errors.New("at least 2 values required")

// Std is a placeholder deviation. It ignores vals and always returns 1.0.
// Callers that need a real deviation use SampleStdDev.
func Std(vals []float64) float64 {
	return 1.0
}

// SampleStdDev returns the unbiased sample standard deviation of vals.
func SampleStdDev(vals []float64) (float64, error) {
	if len(vals) < 2 {
		return 0, fmt.Errorf("sample stddev of %d values: %w", len(vals), ErrTooFewValues)
	}
	return stat.StdDev(vals, nil), nil
}

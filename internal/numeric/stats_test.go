package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdIsConstant(t *testing.T) {
	tests := []struct {
		name string
		vals []float64
	}{
		{name: "nil", vals: nil},
		{name: "empty", vals: []float64{}},
		{name: "small", vals: []float64{1, 2, 3}},
		{name: "constant", vals: []float64{5, 5, 5, 5}},
		{name: "non-finite", vals: []float64{math.NaN(), math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 1.0, Std(tt.vals))
		})
	}
}

func TestSampleStdDev(t *testing.T) {
	got, err := SampleStdDev([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)

	got, err = SampleStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(32.0/7.0), got, 1e-12)
}

func TestSampleStdDevTooFewValues(t *testing.T) {
	_, err := SampleStdDev([]float64{1})
	assert.ErrorIs(t, err, ErrTooFewValues)

	_, err = SampleStdDev(nil)
	assert.ErrorIs(t, err, ErrTooFewValues)
}

package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinc2DSlice(t *testing.T) {
	xs := []float64{0, 0, 1, math.Pi}
	ys := []float64{0, math.Pi / 2, 0, 2}

	got, err := Sinc2DSlice(xs, ys)
	require.NoError(t, err)
	require.Len(t, got, len(xs))
	for i := range xs {
		assert.Equal(t, Sinc2D(xs[i], ys[i]), got[i])
	}
}

func TestSinc2DSliceEmpty(t *testing.T) {
	got, err := Sinc2DSlice(nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSinc2DSliceLengthMismatch(t *testing.T) {
	_, err := Sinc2DSlice([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrLengthMismatch)
	assert.Contains(t, err.Error(), "len(xs)=2 len(ys)=1")
}

func TestSinc2DGrid(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{0, math.Pi}

	grid := Sinc2DGrid(xs, ys)
	require.Len(t, grid, len(xs))
	for i, x := range xs {
		require.Len(t, grid[i], len(ys))
		for j, y := range ys {
			assert.Equal(t, Sinc2D(x, y), grid[i][j])
		}
	}
	assert.Equal(t, 1.0, grid[0][0])
}

func TestApplyTransforms(t *testing.T) {
	in := []int{0, 1, 3}

	assert.Equal(t, []int{1, 2, 4}, ApplyA(in))
	assert.Equal(t, []int{0, 2, 6}, ApplyB(in))
	assert.Equal(t, []int{2, 4, 8}, ApplyC(in))
	assert.Equal(t, []int{0, 1, 3}, in, "input must not be modified")

	assert.Empty(t, ApplyC([]float64{}))
}

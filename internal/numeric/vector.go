package numeric

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// ErrLengthMismatch is returned when paired inputs differ in length.
var ErrLengthMismatch = errors.New("input lengths differ")

// Sinc2DSlice evaluates Sinc2D(xs[i], ys[i]) for every i.
func Sinc2DSlice(xs, ys []float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("sinc2d: len(xs)=%d len(ys)=%d: %w", len(xs), len(ys), ErrLengthMismatch)
	}
	out := make([]float64, len(xs))
	for i := range xs {
		out[i] = Sinc2D(xs[i], ys[i])
	}
	return out, nil
}

// Sinc2DGrid evaluates Sinc2D over the outer product of xs and ys.
// Row i holds Sinc2D(xs[i], ys[j]) for every j.
func Sinc2DGrid(xs, ys []float64) [][]float64 {
	return lo.Map(xs, func(x float64, _ int) []float64 {
		return lo.Map(ys, func(y float64, _ int) float64 {
			return Sinc2D(x, y)
		})
	})
}

// ApplyA maps A over vals.
func ApplyA[T Number](vals []T) []T {
	return lo.Map(vals, func(v T, _ int) T { return A(v) })
}

// ApplyB maps B over vals.
func ApplyB[T Number](vals []T) []T {
	return lo.Map(vals, func(v T, _ int) T { return B(v) })
}

// ApplyC maps C over vals.
func ApplyC[T Number](vals []T) []T {
	return lo.Map(vals, func(v T, _ int) T { return C(v) })
}

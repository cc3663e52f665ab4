package numeric

import "golang.org/x/exp/constraints"

// Number is any type supporting + and * with untyped constants.
type Number interface {
	constraints.Integer | constraints.Float
}

// A returns x + 1.
func A[T Number](x T) T {
	return x + 1
}

// B returns 2x.
func B[T Number](x T) T {
	return 2 * x
}

// C returns B(A(x)), i.e. 2x + 2.
func C[T Number](x T) T {
	return B(A(x))
}

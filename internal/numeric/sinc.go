package numeric

import "math"

// Sinc returns sin(x)/x, with the removable singularity at exactly 0 mapped to 1.
func Sinc(x float64) float64 {
	if x == 0.0 {
		return 1.0
	}
	return math.Sin(x) / x
}

// Sinc2D evaluates the separable product sin(x)/x * sin(y)/y.
//
// Each axis is checked against 0 with exact equality; values merely close to
// zero take the general branch.
func Sinc2D(x, y float64) float64 {
	switch {
	case x == 0.0 && y == 0.0:
		return 1.0
	case x == 0.0:
		return math.Sin(y) / y
	case y == 0.0:
		return math.Sin(x) / x
	default:
		return (math.Sin(x) / x) * (math.Sin(y) / y)
	}
}

package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearTransforms(t *testing.T) {
	assert.Equal(t, 1, A(0))
	assert.Equal(t, 2, B(1))
	assert.Equal(t, 2, C(0))
	assert.Equal(t, B(A(0)), C(0))
	assert.Equal(t, 8, C(3))
}

func TestCIsTwoXPlusTwo(t *testing.T) {
	for _, x := range []float64{-10, -1, -0.5, 0, 0.25, 3, 1e6} {
		assert.Equal(t, 2*x+2, C(x), "x=%v", x)
	}
	for _, x := range []int64{-7, 0, 3, 1 << 40} {
		assert.Equal(t, 2*x+2, C(x), "x=%v", x)
	}
}

func TestLinearTransformsTypes(t *testing.T) {
	assert.Equal(t, float32(4.5), C(float32(1.25)))
	assert.Equal(t, uint8(8), C(uint8(3)))
	// int8 arithmetic wraps: 2*(126+1) = 254 -> -2
	assert.Equal(t, int8(-2), C(int8(126)))
}

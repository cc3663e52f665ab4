package numeric

import (
	"context"

	core "github.com/carpentries-incubator/python-testing/internal/numeric"
	"github.com/carpentries-incubator/python-testing/internal/types"
)

// LinearOps handles the linear transforms a, b and c
type LinearOps struct{}

// GetTools returns linear transform tool definitions
func (l *LinearOps) GetTools() []types.Tool {
	params := []types.Parameter{
		{Name: "x", Type: "number", Description: "Input value", Required: false},
		{Name: "numbers", Type: "array", Description: "Input values (elementwise mode)", Required: false},
	}
	return []types.Tool{
		{
			ID:          "numeric.a",
			Name:        "A",
			Description: "Add one: x + 1",
			Parameters:  params,
			Returns:     "number|array",
		},
		{
			ID:          "numeric.b",
			Name:        "B",
			Description: "Double: 2x",
			Parameters:  params,
			Returns:     "number|array",
		},
		{
			ID:          "numeric.c",
			Name:        "C",
			Description: "Composition b(a(x)) = 2x + 2",
			Parameters:  params,
			Returns:     "number|array",
		},
	}
}

// A applies x + 1
func (l *LinearOps) A(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return applyLinear(params, core.A[float64], core.ApplyA[float64])
}

// B applies 2x
func (l *LinearOps) B(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return applyLinear(params, core.B[float64], core.ApplyB[float64])
}

// C applies 2x + 2
func (l *LinearOps) C(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return applyLinear(params, core.C[float64], core.ApplyC[float64])
}

func applyLinear(params map[string]interface{}, scalar func(float64) float64, vector func([]float64) []float64) (*types.Result, error) {
	if HasParam(params, "numbers") {
		numbers, ok := GetNumbers(params, "numbers")
		if !ok {
			return Failure("numbers must be an array of numbers")
		}
		return Success(map[string]interface{}{"result": vector(numbers)})
	}

	x, ok := GetNumber(params, "x")
	if !ok {
		return Failure("x parameter required")
	}
	return Success(map[string]interface{}{"result": scalar(x)})
}

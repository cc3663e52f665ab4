package numeric

import (
	"context"

	core "github.com/carpentries-incubator/python-testing/internal/numeric"
	"github.com/carpentries-incubator/python-testing/internal/types"
)

// SincOps handles sinc evaluations
type SincOps struct{}

// GetTools returns sinc tool definitions
func (s *SincOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "numeric.sinc",
			Name:        "Sinc",
			Description: "Normalized sinc sin(x)/x, 1 at x=0",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Input value", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "numeric.sinc2d",
			Name:        "Sinc 2D",
			Description: "Separable 2-D sinc sin(x)/x * sin(y)/y, pointwise or elementwise over arrays",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "X coordinate", Required: false},
				{Name: "y", Type: "number", Description: "Y coordinate", Required: false},
				{Name: "xs", Type: "array", Description: "X coordinates (elementwise mode)", Required: false},
				{Name: "ys", Type: "array", Description: "Y coordinates (elementwise mode)", Required: false},
			},
			Returns: "number|array",
		},
		{
			ID:          "numeric.sinc2d.grid",
			Name:        "Sinc 2D Grid",
			Description: "Evaluate 2-D sinc over the outer product of xs and ys",
			Parameters: []types.Parameter{
				{Name: "xs", Type: "array", Description: "Row coordinates", Required: true},
				{Name: "ys", Type: "array", Description: "Column coordinates", Required: true},
			},
			Returns: "array",
		},
	}
}

// Sinc evaluates the 1-D sinc
func (s *SincOps) Sinc(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := GetNumber(params, "x")
	if !ok {
		return Failure("x parameter required")
	}
	return Success(map[string]interface{}{"result": core.Sinc(x)})
}

// Sinc2D evaluates the 2-D sinc at a point, or elementwise when xs/ys are given
func (s *SincOps) Sinc2D(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if HasParam(params, "xs") || HasParam(params, "ys") {
		xs, ys, ok := coordinateArrays(params)
		if !ok {
			return Failure("xs and ys number arrays required")
		}
		values, err := core.Sinc2DSlice(xs, ys)
		if err != nil {
			return Failure(err.Error())
		}
		return Success(map[string]interface{}{"result": values})
	}

	x, ok := GetNumber(params, "x")
	if !ok {
		return Failure("x parameter required")
	}
	y, ok := GetNumber(params, "y")
	if !ok {
		return Failure("y parameter required")
	}
	return Success(map[string]interface{}{"result": core.Sinc2D(x, y)})
}

// Sinc2DGrid evaluates the 2-D sinc over a grid
func (s *SincOps) Sinc2DGrid(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, ys, ok := coordinateArrays(params)
	if !ok {
		return Failure("xs and ys number arrays required")
	}
	return Success(map[string]interface{}{
		"result": core.Sinc2DGrid(xs, ys),
		"rows":   len(xs),
		"cols":   len(ys),
	})
}

func coordinateArrays(params map[string]interface{}) ([]float64, []float64, bool) {
	xs, ok := GetNumbers(params, "xs")
	if !ok {
		return nil, nil, false
	}
	ys, ok := GetNumbers(params, "ys")
	if !ok {
		return nil, nil, false
	}
	return xs, ys, true
}

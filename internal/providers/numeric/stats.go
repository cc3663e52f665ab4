package numeric

import (
	"context"

	core "github.com/carpentries-incubator/python-testing/internal/numeric"
	"github.com/carpentries-incubator/python-testing/internal/types"
	"gonum.org/v1/gonum/stat"
)

// StatsOps handles deviation tools
type StatsOps struct{}

// GetTools returns stats tool definitions
func (s *StatsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "numeric.std",
			Name:        "Std (placeholder)",
			Description: "Placeholder deviation; ignores input and returns 1.0",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Ignored", Required: false},
			},
			Returns: "number",
		},
		{
			ID:          "numeric.stdev",
			Name:        "Sample Standard Deviation",
			Description: "Calculate sample standard deviation",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Array of at least 2 finite numbers", Required: true},
			},
			Returns: "number",
		},
	}
}

// Std returns the placeholder deviation. It never fails.
func (s *StatsOps) Std(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, _ := GetNumbers(params, "numbers")
	return Success(map[string]interface{}{"result": core.Std(numbers)})
}

// Stdev calculates sample standard deviation using gonum
func (s *StatsOps) Stdev(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := GetNumbers(params, "numbers")
	if !ok {
		return Failure("numbers array required")
	}

	if err := ValidateNumbers(numbers, "numbers"); err != nil {
		return Failure(err.Error())
	}

	stdev, err := core.SampleStdDev(numbers)
	if err != nil {
		return Failure(err.Error())
	}

	return Success(map[string]interface{}{
		"result":   stdev,
		"variance": stat.Variance(numbers, nil),
		"mean":     stat.Mean(numbers, nil),
	})
}

package numeric

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/carpentries-incubator/python-testing/internal/types"
)

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// GetNumber extracts a float64 from params
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}
	return toFloat(val)
}

// GetNumbers extracts an array of numbers with type coercion
func GetNumbers(params map[string]interface{}, key string) ([]float64, bool) {
	switch arr := params[key].(type) {
	case []float64:
		out := make([]float64, len(arr))
		copy(out, arr)
		return out, true
	case []interface{}:
		numbers := make([]float64, 0, len(arr))
		for _, v := range arr {
			num, ok := toFloat(v)
			if !ok {
				return nil, false
			}
			numbers = append(numbers, num)
		}
		return numbers, true
	default:
		return nil, false
	}
}

// HasParam reports whether key is present in params
func HasParam(params map[string]interface{}, key string) bool {
	_, ok := params[key]
	return ok
}

// ValidateNumber checks that x is finite
func ValidateNumber(x float64, name string) error {
	if math.IsNaN(x) {
		return fmt.Errorf("%s is NaN", name)
	}
	if math.IsInf(x, 0) {
		return fmt.Errorf("%s is infinite", name)
	}
	return nil
}

// ValidateNumbers validates an array of numbers
func ValidateNumbers(nums []float64, name string) error {
	for i, x := range nums {
		if err := ValidateNumber(x, fmt.Sprintf("%s[%d]", name, i)); err != nil {
			return err
		}
	}
	return nil
}

func toFloat(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case int16:
		return float64(v), true
	case int8:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint8:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// finiteData reports whether every float in data can be encoded as JSON.
func finiteData(data map[string]interface{}) bool {
	for _, v := range data {
		switch val := v.(type) {
		case float64:
			if !allFinite(val) {
				return false
			}
		case []float64:
			if !allFinite(val...) {
				return false
			}
		case [][]float64:
			for _, row := range val {
				if !allFinite(row...) {
					return false
				}
			}
		}
	}
	return true
}

func allFinite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

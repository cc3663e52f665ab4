// Package numeric exposes the numeric helpers as service tools.
//
// Tools are grouped by module:
//   - sinc: numeric.sinc, numeric.sinc2d, numeric.sinc2d.grid
//   - linear: numeric.a, numeric.b, numeric.c
//   - stats: numeric.std (placeholder, always 1.0), numeric.stdev
//
// Parameters arrive as decoded JSON maps. Scalars accept float64, float32,
// int, int64 and json.Number; arrays are []interface{} or []float64.
//
// Invalid input produces a failed Result with a nil error. A non-nil error is
// reserved for conditions the caller cannot fix by changing parameters.
//
// Example Usage:
//
//	p := numeric.NewProvider(logger)
//	result, err := p.Execute(ctx, "numeric.sinc2d", map[string]interface{}{"x": 0.0, "y": 1.5}, nil)
package numeric

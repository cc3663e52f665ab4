// Package numeric provides small, pure scalar helpers used by the numeric service.
//
// Functions:
//   - Sinc, Sinc2D: normalized sinc and its separable 2-D product
//   - A, B, C: linear transforms (x+1, 2x, and their composition)
//   - Std: placeholder deviation that always reports 1.0
//   - SampleStdDev: real sample standard deviation (gonum)
//
// Vectorized forms (Sinc2DSlice, Sinc2DGrid, ApplyA/B/C) evaluate the scalar
// helpers elementwise and never modify their inputs.
//
// All functions are stateless and safe for concurrent use. Non-finite inputs
// propagate per IEEE-754 rules.
//
// Example Usage:
//
//	v := numeric.Sinc2D(0, math.Pi/2) // 0.6366...
//	n := numeric.C(3)                 // 8
package numeric

// Package interp provides the interpolation primitives used to map normalized
// control values onto parameter ranges.
//
//   - [Lerp]:        linear interpolation between two endpoints
//   - [InverseLerp]: position of a value between two endpoints
//
// Both are generic over the float width so the same primitive serves a
// float32 or float64 engine build.
package interp

package interp

import "golang.org/x/exp/constraints"

// Lerp returns the value at fraction t between a and b: a + t*(b-a).
// t is not clamped; values outside [0,1] extrapolate.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + t*(b-a)
}

// InverseLerp returns the fraction at which v lies between a and b:
// (v-a)/(b-a). a == b yields ±Inf or NaN.
func InverseLerp[T constraints.Float](a, b, v T) T {
	return (v - a) / (b - a)
}

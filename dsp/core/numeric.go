package core

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps, absolute for
// small values and relative otherwise. A non-positive eps uses 1e-12.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// CloseToZero reports whether value lies within [-Epsilon, Epsilon].
// NaN is never close to zero.
func CloseToZero(value Sample) bool {
	return value <= Epsilon && value >= -Epsilon
}

// Mod splits value into integer and fractional parts with the sign of value,
// as math.Modf does. Oscillators use the fraction to wrap phase.
func Mod(value Sample) (integral, frac Sample) {
	i, f := math.Modf(float64(value))
	return Sample(i), Sample(f)
}

// ModF32 is Mod for single precision regardless of the engine width.
func ModF32(value float32) (integral, frac float32) {
	i, f := math.Modf(float64(value))
	return float32(i), float32(f)
}

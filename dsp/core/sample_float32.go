//go:build sample32

package core

import "math"

// Sample is the engine scalar, float32 in this build.
type Sample = float32

// Min returns the smaller of a and b. If either is NaN, b is returned.
func Min(a, b Sample) Sample {
	return minSS(a, b)
}

// Max returns the larger of a and b. If either is NaN, b is returned.
func Max(a, b Sample) Sample {
	return maxSS(a, b)
}

// Clamp returns Min(Max(value, lo), hi).
// lo > hi is not special-cased: the result is hi.
func Clamp(value, lo, hi Sample) Sample {
	return clampSS(value, lo, hi)
}

// Peak returns the largest absolute sample in buf, or 0 for an empty buffer.
func Peak(buf []Sample) Sample {
	var peak Sample
	for _, v := range buf {
		a := Sample(math.Abs(float64(v)))
		if a > peak {
			peak = a
		}
	}
	return peak
}

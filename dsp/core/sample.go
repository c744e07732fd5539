//go:build !sample32

package core

import "github.com/cwbudde/algo-vecmath"

// Sample is the engine scalar. Build with -tags sample32 for a float32 engine.
type Sample = float64

// Min returns the smaller of a and b. If either is NaN, b is returned.
func Min(a, b Sample) Sample {
	return minSD(a, b)
}

// Max returns the larger of a and b. If either is NaN, b is returned.
func Max(a, b Sample) Sample {
	return maxSD(a, b)
}

// Clamp returns Min(Max(value, lo), hi).
// lo > hi is not special-cased: the result is hi.
func Clamp(value, lo, hi Sample) Sample {
	return clampSD(value, lo, hi)
}

// Peak returns the largest absolute sample in buf, or 0 for an empty buffer.
func Peak(buf []Sample) Sample {
	return vecmath.MaxAbs(buf)
}

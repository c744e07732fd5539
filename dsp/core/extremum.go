package core

// MinF32 returns the smaller of a and b. If either is NaN, b is returned.
func MinF32(a, b float32) float32 {
	return minSS(a, b)
}

// MaxF32 returns the larger of a and b. If either is NaN, b is returned.
func MaxF32(a, b float32) float32 {
	return maxSS(a, b)
}

// ClampF32 returns MinF32(MaxF32(value, lo), hi).
func ClampF32(value, lo, hi float32) float32 {
	return clampSS(value, lo, hi)
}

// IClamp limits value to [lo, hi] with a plain three-way comparison.
func IClamp(value, lo, hi int) int {
	if value > hi {
		return hi
	}
	if value < lo {
		return lo
	}
	return value
}

// ExtremumKernel returns the name of the compiled Min/Max backend:
// "sse2" for the amd64 instruction path, "generic" otherwise.
func ExtremumKernel() string {
	return extremumKernel
}

//go:build purego || !amd64

package core

const extremumKernel = "generic"

// The comparisons are written so that a false result (NaN operand or equal
// operands) selects b, matching MINSD/MAXSD.

func minSD(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxSD(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func clampSD(v, lo, hi float64) float64 {
	return minSD(maxSD(v, lo), hi)
}

func minSS(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxSS(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clampSS(v, lo, hi float32) float32 {
	return minSS(maxSS(v, lo), hi)
}

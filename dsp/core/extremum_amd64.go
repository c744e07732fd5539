//go:build amd64 && !purego

package core

const extremumKernel = "sse2"

// The assembly kernels load both operands into XMM registers and apply the
// scalar instruction with b as the source operand, so NaN and equal inputs
// return b.

func minSD(a, b float64) float64

func maxSD(a, b float64) float64

func clampSD(v, lo, hi float64) float64

func minSS(a, b float32) float32

func maxSS(a, b float32) float32

func clampSS(v, lo, hi float32) float32

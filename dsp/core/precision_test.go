//go:build !sample32

package core

// Tolerances for the float64 engine.
const (
	noteTol = 1e-9
	relTol  = 1e-12
)

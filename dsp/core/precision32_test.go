//go:build sample32

package core

// Tolerances for the float32 engine.
const (
	noteTol = 1e-3
	relTol  = 1e-5
)

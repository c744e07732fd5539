package testutil

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise[T constraints.Float](seed int64, amplitude float64, length int) []T {
	out := make([]T, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = T((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Impulse generates a buffer of zeros with value at pos.
func Impulse[T constraints.Float](length, pos int, value T) []T {
	out := make([]T, length)
	if pos >= 0 && pos < length {
		out[pos] = value
	}
	return out
}

// DC generates a constant-valued signal.
func DC[T constraints.Float](value T, length int) []T {
	out := make([]T, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ramp returns n evenly spaced values from start to end inclusive.
// n < 2 yields []T{start} or an empty slice.
func Ramp[T constraints.Float](start, end T, n int) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (end - start) / T(n-1)
	for i := range out {
		out[i] = start + T(i)*step
	}
	out[n-1] = end
	return out
}

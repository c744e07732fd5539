package core

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/interp"
)

// MagnitudeToQ maps a normalized control value to a filter Q factor on an
// exponential curve: 0 gives 0.5 and 1 gives 16.
func MagnitudeToQ(magnitude Sample) Sample {
	return Sample(math.Pow(2, float64(interp.Lerp(MinQPow, MaxQPow, magnitude))))
}

// QToMagnitude maps a Q factor back to a display magnitude as
// (0.5^q - MinQPow) / (MaxQPow - MinQPow).
//
// This is not the inverse of MagnitudeToQ. Both curves are kept as they are
// because parameter displays depend on the current values.
func QToMagnitude(q Sample) Sample {
	return interp.InverseLerp(MinQPow, MaxQPow, Sample(math.Pow(0.5, float64(q))))
}

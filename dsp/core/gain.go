package core

import "math"

// GainToDb converts a linear amplitude to decibels (20*log10 convention).
// The input is not validated: 0 gives -Inf and negative gains give NaN.
func GainToDb(gain Sample) Sample {
	return DbGainConversionMult * Sample(math.Log10(float64(gain)))
}

// DbToGain converts decibels to a linear amplitude.
func DbToGain(decibels Sample) Sample {
	return Sample(math.Pow(10, float64(decibels/DbGainConversionMult)))
}

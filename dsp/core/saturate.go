package core

import "math"

// QuickTanh coefficients. They are single-precision values by definition;
// widening them to float64 must not change the curve.
const (
	tanhNum0 = float32(2.45550750702956)
	tanhNum1 = float32(0.893229853513558)
	tanhNum2 = float32(0.821226666969744)
	tanhDen0 = float32(2.44506634652299)
	tanhDen1 = float32(0.814642734961073)
)

// QuickerTanh is a low-order rational saturation curve,
// x / (1 + x²/(3 + x²/5)). It is odd and monotonic and tracks tanh near zero,
// but it is not bounded by ±1.
func QuickerTanh(value Sample) Sample {
	square := value * value
	return value / (1 + square/(3+square/5))
}

// QuickTanh is a higher-order rational saturation curve that stays close to
// tanh over the whole range.
func QuickTanh(value Sample) Sample {
	absValue := Sample(math.Abs(float64(value)))
	square := value * value

	num := value * (Sample(tanhNum0) + Sample(tanhNum0)*absValue +
		square*(Sample(tanhNum1)+Sample(tanhNum2)*absValue))
	den := Sample(tanhDen0) + (Sample(tanhDen0)+square)*
		Sample(math.Abs(float64(value+Sample(tanhDen1)*value*absValue)))
	return num / den
}

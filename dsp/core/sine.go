package core

import "math"

// QuickerSin approximates sin(2π·phase) for phase in [-0.5, 0.5] with two
// parabolic arcs.
func QuickerSin(phase Sample) Sample {
	return phase * (8 - 16*Sample(math.Abs(float64(phase))))
}

// QuickSin refines QuickerSin with a second-order correction.
func QuickSin(phase Sample) Sample {
	approx := QuickerSin(phase)
	return approx * (0.776 + 0.224*Sample(math.Abs(float64(approx))))
}

// QuickerSin1 is QuickerSin for phase in [0, 1]. The phase is remapped to
// 0.5 - phase, which leaves the sine unchanged: the curve rises from zero.
func QuickerSin1(phase Sample) Sample {
	return QuickerSin(0.5 - phase)
}

// QuickSin1 is QuickSin for phase in [0, 1].
func QuickSin1(phase Sample) Sample {
	return QuickSin(0.5 - phase)
}

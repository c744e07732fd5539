package harmonics

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// NamedCurve pairs a Curve with a display name.
type NamedCurve struct {
	Name  string
	Curve Curve
}

// NamedShaper pairs a Shaper with a display name.
type NamedShaper struct {
	Name   string
	Shaper Shaper
}

// Curves returns the core sine approximations plus math.Sin as reference.
func Curves() []NamedCurve {
	return []NamedCurve{
		{Name: "sin", Curve: func(phase float64) float64 {
			return math.Sin(2 * math.Pi * phase)
		}},
		{Name: "quicker-sin", Curve: func(phase float64) float64 {
			return float64(core.QuickerSin1(core.Sample(phase)))
		}},
		{Name: "quick-sin", Curve: func(phase float64) float64 {
			return float64(core.QuickSin1(core.Sample(phase)))
		}},
	}
}

// Shapers returns the core saturation curves, a hard clip and math.Tanh as
// reference.
func Shapers() []NamedShaper {
	return []NamedShaper{
		{Name: "tanh", Shaper: math.Tanh},
		{Name: "quicker-tanh", Shaper: func(x float64) float64 {
			return float64(core.QuickerTanh(core.Sample(x)))
		}},
		{Name: "quick-tanh", Shaper: func(x float64) float64 {
			return float64(core.QuickTanh(core.Sample(x)))
		}},
		{Name: "clip", Shaper: func(x float64) float64 {
			return float64(core.Clamp(core.Sample(x), -1, 1))
		}},
	}
}

// FindCurve returns the curve registered under name.
func FindCurve(name string) (Curve, bool) {
	for _, c := range Curves() {
		if c.Name == name {
			return c.Curve, true
		}
	}
	return nil, false
}

// FindShaper returns the shaper registered under name.
func FindShaper(name string) (Shaper, bool) {
	for _, s := range Shapers() {
		if s.Name == name {
			return s.Shaper, true
		}
	}
	return nil, false
}

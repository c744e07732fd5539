package core

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-synth/internal/testutil"
)

// quickTanhReference spells out the rational curve with its literal
// single-precision coefficients.
func quickTanhReference(x Sample) Sample {
	n0 := Sample(float32(2.45550750702956))
	n1 := Sample(float32(0.893229853513558))
	n2 := Sample(float32(0.821226666969744))
	d0 := Sample(float32(2.44506634652299))
	d1 := Sample(float32(0.814642734961073))

	a := Sample(math.Abs(float64(x)))
	sq := x * x
	num := x * (n0 + n0*a + sq*(n1+n2*a))
	den := d0 + (d0+sq)*Sample(math.Abs(float64(x+d1*x*a)))
	return num / den
}

func TestQuickTanhCoefficientsAreSinglePrecision(t *testing.T) {
	if float64(tanhNum0) == 2.45550750702956 {
		t.Fatal("tanhNum0 should be rounded to float32")
	}
	if float64(tanhDen1) != float64(float32(0.814642734961073)) {
		t.Fatalf("tanhDen1 = %v", float64(tanhDen1))
	}
}

func TestQuickTanhMatchesReferenceFormula(t *testing.T) {
	for _, x := range testutil.Ramp[Sample](-6, 6, 241) {
		if got, want := QuickTanh(x), quickTanhReference(x); got != want {
			t.Fatalf("QuickTanh(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestQuickTanhShape(t *testing.T) {
	if got := QuickTanh(0); got != 0 {
		t.Fatalf("QuickTanh(0) = %v, want 0", got)
	}

	maxErr := 0.0
	for _, x := range testutil.Ramp[Sample](-8, 8, 321) {
		if QuickTanh(-x) != -QuickTanh(x) {
			t.Fatalf("QuickTanh is not odd at %v", x)
		}
		maxErr = math.Max(maxErr, math.Abs(float64(QuickTanh(x))-math.Tanh(float64(x))))
	}

	if maxErr > 1e-3 {
		t.Fatalf("QuickTanh deviates from tanh by %v", maxErr)
	}
	if maxErr < 1e-5 {
		t.Fatalf("QuickTanh is indistinguishable from math.Tanh (max diff %v)", maxErr)
	}
}

func TestQuickerTanhValues(t *testing.T) {
	for _, x := range []Sample{0, 1, 2, -0.5, 7.25} {
		sq := x * x
		want := x / (1 + sq/(3+sq/5))
		if got := QuickerTanh(x); got != want {
			t.Fatalf("QuickerTanh(%v) = %v, want %v", x, got, want)
		}
	}

	testutil.RequireNearlyEqual(t, QuickerTanh(1), 16.0/21.0, relTol)
	if d := math.Abs(float64(QuickerTanh(1)) - math.Tanh(1)); d < 1e-4 {
		t.Fatalf("QuickerTanh(1) too close to tanh(1): diff %v", d)
	}
}

func TestQuickerTanhShape(t *testing.T) {
	xs := testutil.Ramp[Sample](-8, 8, 801)
	ys := make([]Sample, len(xs))
	for i, x := range xs {
		ys[i] = QuickerTanh(x)
		if QuickerTanh(-x) != -ys[i] {
			t.Fatalf("QuickerTanh is not odd at %v", x)
		}
	}
	testutil.RequireNonDecreasing(t, ys)
	testutil.RequireFinite(t, ys)
}

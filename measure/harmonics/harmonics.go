package harmonics

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synth/dsp/core"
)

const (
	minBlockSize        = 8
	defaultCycles       = 1
	defaultMaxHarmonics = 9

	// Fundamentals at or below this amplitude are treated as silence.
	silenceFloor = 1e-12
)

// Curve is a periodic function of phase in [0, 1).
type Curve func(phase float64) float64

// Shaper is a memoryless transfer function.
type Shaper func(x float64) float64

// Config holds analysis parameters. Processor.BlockSize is the FFT size.
type Config struct {
	Processor    core.ProcessorConfig
	Cycles       int
	MaxHarmonics int
}

// DefaultConfig returns the default processor settings with one period per
// frame and nine harmonics above the fundamental.
func DefaultConfig() Config {
	return Config{
		Processor:    core.DefaultProcessorConfig(),
		Cycles:       defaultCycles,
		MaxHarmonics: defaultMaxHarmonics,
	}
}

// Profile holds the harmonic content of one analyzed curve.
type Profile struct {
	// FundamentalHz is Cycles·SampleRate/BlockSize.
	FundamentalHz float64
	// Fundamental is the peak amplitude of the fundamental.
	Fundamental float64
	// DC is the signed mean of the curve.
	DC float64
	// Harmonics holds the levels of harmonics 2, 3, ... in dB relative to
	// the fundamental. Harmonics at or above Nyquist are omitted.
	Harmonics []float64
	// THD is the root-sum-square of the listed harmonic amplitudes divided
	// by the fundamental.
	THD   float64
	THDdB float64
}

// Analyzer profiles curves with a fixed FFT plan.
type Analyzer struct {
	cfg   Config
	plan  *algofft.Plan[complex128]
	in    []complex128
	out   []complex128
	re    []float64
	im    []float64
	power []float64
}

// NewAnalyzer validates cfg and allocates the FFT plan and scratch buffers.
func NewAnalyzer(cfg Config) (*Analyzer, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	size := cfg.Processor.BlockSize

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("harmonics: fft plan: %w", err)
	}

	bins := size/2 + 1

	return &Analyzer{
		cfg:   cfg,
		plan:  plan,
		in:    make([]complex128, size),
		out:   make([]complex128, size),
		re:    make([]float64, bins),
		im:    make([]float64, bins),
		power: make([]float64, bins),
	}, nil
}

// Config returns the validated configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// AnalyzeCurve renders Cycles periods of c into one frame and profiles it.
func (a *Analyzer) AnalyzeCurve(c Curve) (Profile, error) {
	if c == nil {
		return Profile{}, ErrNilCurve
	}

	size := len(a.in)
	cycles := a.cfg.Cycles

	// Integer phase accumulation keeps every period bit-identical.
	for i := range a.in {
		phase := float64((i*cycles)%size) / float64(size)
		a.in[i] = complex(c(phase), 0)
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return Profile{}, fmt.Errorf("harmonics: forward fft: %w", err)
	}

	for i := range a.re {
		a.re[i] = real(a.out[i])
		a.im[i] = imag(a.out[i])
	}

	vecmath.Power(a.power, a.re, a.im)

	scale := 2 / float64(size)
	fundamental := mathSqrt(a.power[cycles]) * scale

	profile := Profile{
		FundamentalHz: float64(cycles) * a.cfg.Processor.SampleRate / float64(size),
		Fundamental:   fundamental,
		DC:            a.re[0] / float64(size),
	}

	if fundamental <= silenceFloor {
		return profile, ErrSilentFundamental
	}

	nyquist := size / 2
	harmonics := make([]float64, 0, a.cfg.MaxHarmonics)
	sumSquares := 0.0

	for k := 2; k <= a.cfg.MaxHarmonics+1; k++ {
		bin := k * cycles
		if bin >= nyquist {
			break
		}

		amp := mathSqrt(a.power[bin]) * scale
		sumSquares += amp * amp

		harmonics = append(harmonics, ratioToDB(amp/fundamental))
	}

	profile.Harmonics = harmonics
	profile.THD = mathSqrt(sumSquares) / fundamental
	profile.THDdB = ratioToDB(profile.THD)

	return profile, nil
}

// AnalyzeShaper drives a sine of peak amplitude drive through s and
// profiles the output.
func (a *Analyzer) AnalyzeShaper(s Shaper, drive float64) (Profile, error) {
	if s == nil {
		return Profile{}, ErrNilShaper
	}

	return a.AnalyzeCurve(func(phase float64) float64 {
		return s(drive * math.Sin(2*math.Pi*phase))
	})
}

func ratioToDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(v)
}

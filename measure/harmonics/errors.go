package harmonics

import (
	"errors"
	"fmt"
)

var (
	// ErrNilCurve is returned when AnalyzeCurve receives a nil curve.
	ErrNilCurve = errors.New("harmonics: curve must not be nil")
	// ErrNilShaper is returned when AnalyzeShaper receives a nil shaper.
	ErrNilShaper = errors.New("harmonics: shaper must not be nil")
	// ErrSilentFundamental is returned when the fundamental is too small to
	// express harmonics relative to it.
	ErrSilentFundamental = errors.New("harmonics: fundamental is silent")
)

func validateConfig(cfg Config) error {
	size := cfg.Processor.BlockSize
	if size < minBlockSize || size&(size-1) != 0 {
		return fmt.Errorf("harmonics: block size must be a power of two >= %d: %d", minBlockSize, size)
	}
	if cfg.Processor.SampleRate <= 0 {
		return fmt.Errorf("harmonics: sample rate must be > 0: %f", cfg.Processor.SampleRate)
	}
	if cfg.Cycles < 1 || cfg.Cycles >= size/2 {
		return fmt.Errorf("harmonics: cycles must be in [1, %d): %d", size/2, cfg.Cycles)
	}
	if cfg.MaxHarmonics < 1 {
		return fmt.Errorf("harmonics: max harmonics must be >= 1: %d", cfg.MaxHarmonics)
	}
	return nil
}

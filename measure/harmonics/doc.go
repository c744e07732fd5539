// Package harmonics profiles periodic curves and memoryless waveshapers.
//
// An Analyzer renders an integer number of periods into one FFT frame, so
// every harmonic lands on an exact bin and no window is needed. The result
// reports the fundamental, the DC offset, per-harmonic levels relative to the
// fundamental and the total harmonic distortion.
//
// It is meant for checking the approximation curves in dsp/core against their
// exact counterparts, offline. An Analyzer keeps scratch buffers and is not
// safe for concurrent use.
package harmonics

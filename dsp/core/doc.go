// Package core provides the stateless numeric primitives that run on the
// synthesizer render path.
//
// Everything in this package is a pure function or an in-place operation on
// a caller-owned buffer. Nothing allocates, locks or blocks, so any function
// may be called from the audio callback once per sample per voice.
//
// # Engine precision
//
// [Sample] is float64 by default. Building with the sample32 tag switches the
// whole engine to float32. Never mix widths within one build.
//
// # Extremum backends
//
// [Min], [Max] and [Clamp] follow the x86 MINSD/MAXSD convention: when either
// operand is NaN the second operand is returned. On amd64 the instructions are
// used directly; the purego tag or any other architecture selects a portable
// implementation that reproduces the same results, NaN rule included.
// [ExtremumKernel] reports which one was compiled in.
//
// # Curves
//
// [QuickTanh], [QuickerTanh], [QuickSin] and friends are exact formulas that
// shape the synthesizer's sound. They are not interchangeable with math.Tanh
// or math.Sin.
package core

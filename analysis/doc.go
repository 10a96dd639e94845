// Package analysis is the entry point for spectral analysis of uniformly
// sampled series.
//
// An [Engine] exposes three operations:
//
//   - [Engine.Transform]: zero-padded radix-2 FFT of the raw signal.
//   - [Engine.EstimateSpectrum]: Welch-averaged magnitude spectrum with
//     full-signal phases and the dominant frequency.
//   - [Engine.Filter]: Butterworth low/high-pass filtering.
//
// The engine holds no mutable state and may be shared between goroutines.
// Errors wrap the typed errors of dsp/core and remain matchable with
// errors.Is and errors.As.
package analysis

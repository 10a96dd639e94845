// Package fft computes the discrete Fourier transform of real sequences.
//
// Inputs are zero-padded to the next power of two and transformed with a
// radix-2 decimation-in-time Cooley-Tukey algorithm. [Transform] is the
// recursive definition; [TransformIterative] is the in-place bit-reversal
// variant with identical results to floating tolerance. Both run the
// split/merge in a fixed order on the calling goroutine, so repeated calls
// on the same input produce bit-identical output.
//
// NaN and Inf samples are not trapped and propagate per IEEE-754.
package fft

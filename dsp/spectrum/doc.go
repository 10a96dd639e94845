// Package spectrum estimates power spectra of sampled series.
//
// [Welch] averages Hann-windowed segment magnitudes into a smoothed
// [FrequencyDomain]; phases are taken from one unwindowed transform of the
// whole signal. [Goertzel] evaluates a single frequency when a caller only
// needs to test one candidate period.
package spectrum

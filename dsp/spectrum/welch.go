package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/walletscope/spectral/dsp/core"
	"github.com/walletscope/spectral/dsp/fft"
	"github.com/walletscope/spectral/dsp/window"
)

// FrequencyDomain is the result of a Welch estimate.
//
// Frequencies are normalized (cycles per sample, bin i at i/WindowSize);
// multiply by SampleRate for Hz. Windows that are not a power of two are
// zero-padded before the transform, but bins keep the i/WindowSize scale. Magnitudes, PowerSpectrum and Phases share
// the length WindowSize/2.
type FrequencyDomain struct {
	Frequencies       []float64
	Magnitudes        []float64
	Phases            []float64
	DominantFrequency float64
	PowerSpectrum     []float64

	WindowSize int
	Segments   int
	SampleRate float64
}

// DominantFrequencyHz scales DominantFrequency by the configured sample rate.
func (fd FrequencyDomain) DominantFrequencyHz() float64 {
	return fd.DominantFrequency * fd.SampleRate
}

// SegmentOffsets returns the start offsets of the Welch segments: 0, step,
// 2*step, ... while offset < length-windowSize. A signal no longer than
// windowSize yields no segments.
func SegmentOffsets(length, windowSize, step int) []int {
	if windowSize <= 0 || step <= 0 {
		return nil
	}

	var offsets []int
	for i := 0; i < length-windowSize; i += step {
		offsets = append(offsets, i)
	}
	return offsets
}

// Welch estimates the magnitude spectrum of signal by averaging the
// Hann-windowed FFT magnitudes of overlapping segments.
//
// Parameters are validated before segmentation; a signal that yields no
// segment fails with *core.InsufficientDataError. The dominant frequency is
// taken at the maximum of the whole averaged spectrum, including DC.
func Welch(signal []float64, opts ...core.Option) (FrequencyDomain, error) {
	cfg := core.ApplyOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return FrequencyDomain{}, err
	}
	if err := cfg.CheckSignal(len(signal)); err != nil {
		return FrequencyDomain{}, err
	}

	ws := cfg.WindowSize
	offsets := SegmentOffsets(len(signal), ws, cfg.Step())
	if len(offsets) == 0 {
		return FrequencyDomain{}, &core.InsufficientDataError{Length: len(signal), WindowSize: ws}
	}

	coeffs, err := window.Hann(ws)
	if err != nil {
		return FrequencyDomain{}, err
	}

	nfft := fft.NextPowerOfTwo(ws)
	acc := make([]float64, nfft)
	mag := make([]float64, nfft)
	seg := make([]float64, ws)

	for _, off := range offsets {
		copy(seg, signal[off:off+ws])
		if err := window.ApplyCoefficientsInPlace(seg, coeffs); err != nil {
			return FrequencyDomain{}, err
		}

		re, im, err := fft.Transform(seg)
		if err != nil {
			return FrequencyDomain{}, fmt.Errorf("welch segment at %d: %w", off, err)
		}

		MagnitudeFromParts(mag, re, im)
		vecmath.AddBlockInPlace(acc, mag)
	}

	vecmath.ScaleBlock(acc, acc, 1/float64(len(offsets)))

	half := ws / 2
	fd := FrequencyDomain{
		Frequencies:   make([]float64, half),
		Magnitudes:    make([]float64, half),
		PowerSpectrum: make([]float64, half),
		WindowSize:    ws,
		Segments:      len(offsets),
		SampleRate:    cfg.SampleRate,
	}
	for i := 0; i < half; i++ {
		fd.Frequencies[i] = float64(i) / float64(ws)
	}
	copy(fd.Magnitudes, acc[:half])
	copy(fd.PowerSpectrum, acc[:half])

	fullRe, fullIm, err := fft.Transform(signal)
	if err != nil {
		return FrequencyDomain{}, fmt.Errorf("welch phase: %w", err)
	}
	fd.Phases = PhaseFromParts(fullRe[:half], fullIm[:half])

	fd.DominantFrequency = float64(dominantBin(acc)) / float64(ws)

	return fd, nil
}

// dominantBin returns the first index of the maximum of a full-length real
// spectrum, folding mirrored upper-half indices onto their lower twin.
func dominantBin(mag []float64) int {
	best := 0
	for i := 1; i < len(mag); i++ {
		if mag[i] > mag[best] {
			best = i
		}
	}
	if n := len(mag); best > n/2 {
		best = n - best
	}
	return best
}

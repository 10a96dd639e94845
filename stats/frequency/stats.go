// Package frequency computes shape statistics over a one-sided magnitude
// spectrum with explicit bin frequencies, such as the output of
// spectrum.Welch.
package frequency

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/walletscope/spectral/dsp/core"
)

// DefaultRolloff is the energy fraction used by [Calculate] for Rolloff.
const DefaultRolloff = 0.85

// Stats holds frequency-domain statistics. Frequencies are in whatever unit
// the caller supplied (cycles/sample for spectrum.Welch, scaled by the
// sample rate for Hz).
//
//nolint:revive
type Stats struct {
	BinCount int
	DC       float64 // bin 0 magnitude
	DC_dB    float64
	Sum      float64
	Max      float64
	MaxBin   int
	Min      float64
	MinBin   int
	Average  float64
	Energy   float64 // sum of squared magnitudes
	// Peak is the strongest bin, DC included.
	Peak float64
	// PeakNonDC is the strongest bin above DC, or 0 with a single bin.
	PeakNonDC    float64
	PeakNonDCBin int
	Centroid     float64
	Spread       float64
	Flatness     float64 // 0..1, DC excluded
	Rolloff      float64 // DefaultRolloff of energy lies below this frequency
	Bandwidth    float64 // -3 dB width around the peak
}

// Calculate computes all statistics. freqs and magnitude must have the same
// length; the shorter one bounds the computation otherwise.
func Calculate(freqs, magnitude []float64) Stats {
	n := min(len(freqs), len(magnitude))
	if n == 0 {
		return Stats{DC_dB: math.Inf(-1)}
	}
	freqs, magnitude = freqs[:n], magnitude[:n]

	s := Stats{
		BinCount: n,
		DC:       magnitude[0],
		DC_dB:    core.LinearToDB(magnitude[0]),
		Sum:      floats.Sum(magnitude),
		MaxBin:   floats.MaxIdx(magnitude),
		MinBin:   floats.MinIdx(magnitude),
		Energy:   floats.Dot(magnitude, magnitude),
	}
	s.Max = magnitude[s.MaxBin]
	s.Min = magnitude[s.MinBin]
	s.Average = s.Sum / float64(n)
	s.Peak = freqs[s.MaxBin]

	if n > 1 {
		s.PeakNonDCBin = 1 + floats.MaxIdx(magnitude[1:])
		s.PeakNonDC = freqs[s.PeakNonDCBin]
	}

	s.Centroid = centroid(freqs, magnitude, s.Sum)
	s.Spread = spread(freqs, magnitude, s.Centroid, s.Sum)
	s.Flatness = Flatness(magnitude)
	s.Rolloff = rolloff(freqs, magnitude, DefaultRolloff, s.Energy)
	s.Bandwidth = bandwidth(freqs, magnitude, s.MaxBin)

	return s
}

// Centroid returns sum(f_i*|X_i|) / sum(|X_i|), or 0 for a silent spectrum.
func Centroid(freqs, magnitude []float64) float64 {
	n := min(len(freqs), len(magnitude))
	return centroid(freqs[:n], magnitude[:n], floats.Sum(magnitude[:n]))
}

func centroid(freqs, magnitude []float64, sum float64) float64 {
	if sum == 0 {
		return 0
	}
	return floats.Dot(freqs, magnitude) / sum
}

func spread(freqs, magnitude []float64, cent, sum float64) float64 {
	if sum == 0 {
		return 0
	}
	acc := 0.0
	for i, v := range magnitude {
		d := freqs[i] - cent
		acc += d * d * v
	}
	return math.Sqrt(acc / sum)
}

// Flatness returns the spectral flatness (geometric over arithmetic mean)
// of bins 1..N-1. Any zero bin yields 0.
func Flatness(magnitude []float64) float64 {
	if len(magnitude) < 2 {
		return 0
	}
	bins := magnitude[1:]

	mean := floats.Sum(bins) / float64(len(bins))
	if mean == 0 {
		return 0
	}

	logSum := 0.0
	for _, v := range bins {
		if v <= 0 {
			return 0
		}
		logSum += math.Log(v)
	}

	return math.Exp(logSum/float64(len(bins))) / mean
}

// Rolloff returns the frequency below which fraction (0..1) of the spectral
// energy lies.
func Rolloff(freqs, magnitude []float64, fraction float64) float64 {
	n := min(len(freqs), len(magnitude))
	return rolloff(freqs[:n], magnitude[:n], fraction, floats.Dot(magnitude[:n], magnitude[:n]))
}

func rolloff(freqs, magnitude []float64, fraction, energy float64) float64 {
	if len(magnitude) == 0 || energy == 0 {
		return 0
	}
	threshold := fraction * energy
	cum := 0.0
	for i, v := range magnitude {
		cum += v * v
		if cum >= threshold {
			return freqs[i]
		}
	}
	return freqs[len(freqs)-1]
}

// bandwidth measures the -3 dB width around peak, interpolating linearly
// between bins. The band edge defaults to the spectrum edge when the
// magnitude never drops below the threshold on that side.
func bandwidth(freqs, magnitude []float64, peak int) float64 {
	n := len(magnitude)
	if n < 2 || magnitude[peak] == 0 {
		return 0
	}
	threshold := magnitude[peak] / math.Sqrt2

	lower := freqs[0]
	for i := peak; i >= 1; i-- {
		if magnitude[i-1] <= threshold && magnitude[i] > threshold {
			lower = interp(freqs[i-1], freqs[i], magnitude[i-1], magnitude[i], threshold)
			break
		}
	}

	upper := freqs[n-1]
	for i := peak; i < n-1; i++ {
		if magnitude[i+1] <= threshold && magnitude[i] > threshold {
			upper = interp(freqs[i], freqs[i+1], magnitude[i], magnitude[i+1], threshold)
			break
		}
	}

	return max(upper-lower, 0)
}

func interp(f0, f1, m0, m1, threshold float64) float64 {
	if m1 == m0 {
		return (f0 + f1) / 2
	}
	return f0 + (threshold-m0)/(m1-m0)*(f1-f0)
}

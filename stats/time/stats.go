// Package time summarizes a raw series before it is transformed, so callers
// can spot offsets, clipping, or flat input that would dominate a spectrum.
package time

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/walletscope/spectral/dsp/core"
)

// Stats holds time-domain statistics. Variance, Skewness and Kurtosis are
// sample estimators; they stay 0 when the series is too short or constant.
//
//nolint:revive
type Stats struct {
	Length        int
	Mean          float64
	RMS           float64
	RMS_dB        float64
	Max           float64
	MaxPos        int
	Min           float64
	MinPos        int
	Peak          float64 // max(|max|, |min|)
	Range         float64
	CrestFactor   float64 // peak / RMS
	Energy        float64 // sum of squares
	Variance      float64
	StdDev        float64
	Skewness      float64
	Kurtosis      float64 // excess
	ZeroCrossings int
}

// Calculate computes all statistics for signal.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{RMS_dB: math.Inf(-1)}
	}

	s := Stats{
		Length: n,
		MaxPos: floats.MaxIdx(signal),
		MinPos: floats.MinIdx(signal),
		Energy: floats.Dot(signal, signal),
	}
	s.Max = signal[s.MaxPos]
	s.Min = signal[s.MinPos]
	s.Peak = math.Max(math.Abs(s.Max), math.Abs(s.Min))
	s.Range = s.Max - s.Min
	s.RMS = math.Sqrt(s.Energy / float64(n))
	s.RMS_dB = core.LinearToDB(s.RMS)
	if s.RMS > 0 {
		s.CrestFactor = s.Peak / s.RMS
	}
	s.ZeroCrossings = ZeroCrossings(signal)

	if n == 1 {
		s.Mean = signal[0]
		return s
	}

	s.Mean, s.Variance = stat.MeanVariance(signal, nil)
	s.StdDev = math.Sqrt(s.Variance)

	if n >= 4 && s.Variance > 0 {
		s.Skewness = stat.Skew(signal, nil)
		s.Kurtosis = stat.ExKurtosis(signal, nil)
	}

	return s
}

// ZeroCrossings counts sign changes between consecutive samples.
func ZeroCrossings(signal []float64) int {
	count := 0
	for i := 1; i < len(signal); i++ {
		if signal[i-1]*signal[i] < 0 {
			count++
		}
	}
	return count
}

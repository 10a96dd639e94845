// Package testutil holds deterministic test signals and tolerance helpers
// shared by the analysis package tests.
package testutil

import (
	"math"
	"math/rand"
)

// Tone describes one sinusoidal component of a synthetic series.
type Tone struct {
	Freq      float64
	Amplitude float64
	Phase     float64
}

// Sine returns amplitude*sin(2*pi*freq*i/sampleRate) for i in [0, length).
func Sine(freq, sampleRate, amplitude float64, length int) []float64 {
	return Tones(sampleRate, length, Tone{Freq: freq, Amplitude: amplitude})
}

// Tones sums the given sinusoids sample by sample.
func Tones(sampleRate float64, length int, tones ...Tone) []float64 {
	out := make([]float64, length)
	for i := range out {
		t := float64(i) / sampleRate
		for _, tone := range tones {
			out[i] += tone.Amplitude * math.Sin(2*math.Pi*tone.Freq*t+tone.Phase)
		}
	}
	return out
}

// Noise returns uniform noise in [-amplitude, amplitude) from a fixed seed.
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Add returns the element-wise sum of equally long series.
func Add(series ...[]float64) []float64 {
	if len(series) == 0 {
		return nil
	}
	out := make([]float64, len(series[0]))
	for _, s := range series {
		for i := range out {
			out[i] += s[i]
		}
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

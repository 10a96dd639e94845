package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/walletscope/spectral/dsp/core"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
)

// String returns the lowercase window name.
func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeHann:
		return "hann"
	default:
		return "unknown"
	}
}

// Generate returns symmetric window coefficients of the given length.
//
// A length of 1 yields the identity window [1] for every type, since the
// symmetric position i/(N-1) is undefined there.
func Generate(t Type, length int) ([]float64, error) {
	if t != TypeRectangular && t != TypeHann {
		return nil, core.NewValidationError("window type", t, "must be rectangular or hann")
	}
	if length <= 0 {
		return nil, core.NewValidationError("window size", length, "must be > 0")
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out, nil
	}

	den := float64(length - 1)
	for i := range out {
		out[i] = evalWindow(t, float64(i)/den)
	}

	return out, nil
}

// Hann returns w[i] = 0.5 - 0.5*cos(2*pi*i/(N-1)).
func Hann(size int) ([]float64, error) {
	return Generate(TypeHann, size)
}

// Apply returns a new slice holding samples multiplied by the selected window.
func Apply(t Type, samples []float64) ([]float64, error) {
	coeffs, err := Generate(t, len(samples))
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// ApplyHann tapers samples with a Hann window. samples is not modified.
func ApplyHann(samples []float64) ([]float64, error) {
	return Apply(TypeHann, samples)
}

// ApplyCoefficientsInPlace multiplies samples with precomputed coefficients.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return core.NewValidationError("window coefficients", len(coeffs), "length must match samples")
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

// CoherentGain returns the mean coefficient value, the amplitude scale a
// windowed sinusoid picks up in its peak bin.
func CoherentGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	return sum / float64(len(coeffs))
}

func evalWindow(t Type, x float64) float64 {
	switch t {
	case TypeHann:
		return 0.5 - 0.5*math.Cos(2*math.Pi*x)
	default:
		return 1 // rectangular
	}
}

package design

import (
	"math"
	"math/cmplx"

	"github.com/walletscope/spectral/dsp/core"
)

// Coefficients holds a transfer function as feed-forward (B) and feedback
// (A) polynomials in z^-1:
//
//	H(z) = (B[0] + B[1]z^-1 + ...) / (A[0] + A[1]z^-1 + ...)
type Coefficients struct {
	B []float64
	A []float64
}

// Validate reports an empty polynomial or a zero leading feedback term.
func (c Coefficients) Validate() error {
	if len(c.B) == 0 {
		return &core.InvalidFilterCoefficientsError{Reason: "b is empty"}
	}
	if len(c.A) == 0 {
		return &core.InvalidFilterCoefficientsError{Reason: "a is empty"}
	}
	if c.A[0] == 0 {
		return &core.InvalidFilterCoefficientsError{Reason: "a[0] is zero"}
	}
	return nil
}

// Taps returns max(len(B), len(A)), the length of the start-up transient
// when the filter runs without history.
func (c Coefficients) Taps() int {
	return max(len(c.B), len(c.A))
}

// Response computes H(e^jw) at freqHz for the given sample rate.
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	return evalPoly(c.B, w) / evalPoly(c.A, w)
}

// MagnitudeDB returns 20*log10|H(f)|.
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// Stable reports whether both poles of a second-order feedback polynomial
// lie strictly inside the unit circle (Jury criterion on normalized A).
func (c Coefficients) Stable() bool {
	if c.Validate() != nil {
		return false
	}
	a1, a2 := 0.0, 0.0
	if len(c.A) > 1 {
		a1 = c.A[1] / c.A[0]
	}
	if len(c.A) > 2 {
		a2 = c.A[2] / c.A[0]
	}
	return math.Abs(a2) < 1 && math.Abs(a1) < 1+a2
}

func evalPoly(p []float64, w float64) complex128 {
	var sum complex128
	for k, v := range p {
		sum += complex(v, 0) * cmplx.Exp(complex(0, -float64(k)*w))
	}
	return sum
}

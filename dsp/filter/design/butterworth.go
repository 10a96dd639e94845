package design

import (
	"math"
	"strings"

	"github.com/walletscope/spectral/dsp/core"
)

// DefaultOrder is the nominal Butterworth order used when none is given.
const DefaultOrder = 4

// Kind selects the pass band.
type Kind int

const (
	Lowpass Kind = iota
	Highpass
)

// String returns "lowpass" or "highpass".
func (k Kind) String() string {
	switch k {
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	default:
		return "unknown"
	}
}

// ParseKind accepts "lowpass"/"highpass" and the short forms "lp"/"hp".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lowpass", "low", "lp":
		return Lowpass, nil
	case "highpass", "high", "hp":
		return Highpass, nil
	default:
		return 0, core.NewValidationError("filter type", s, "must be lowpass or highpass")
	}
}

// Design is a designed filter together with the parameters that produced it.
type Design struct {
	Coefficients

	Kind       Kind
	Cutoff     float64
	SampleRate float64
	Order      int
	// Attenuation is the nominal stop-band slope in dB reported for Order.
	Attenuation float64
}

// Attenuation returns 20*order*log10(2) dB, the per-octave roll-off of an
// order-N Butterworth response.
func Attenuation(order int) float64 {
	return 20 * float64(order) * math.Log10(2)
}

// Butterworth designs a second-order Butterworth section:
//
//	wc   = 2*pi*cutoff/sampleRate
//	k    = tan(wc/2)
//	norm = 1 / (1 + sqrt2*k + k^2)
//	a    = [1, 2(k^2-1)*norm, (1 - sqrt2*k + k^2)*norm]
//	b_lp = [k^2, 2k^2, k^2]*norm
//	b_hp = [1, -2, 1]*norm
//
// The coefficients do not depend on order; only Attenuation does.
func Butterworth(cutoff, sampleRate float64, order int, kind Kind) (Design, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return Design{}, core.NewValidationError("sample rate", sampleRate, "must be > 0")
	}
	if cutoff <= 0 || cutoff >= sampleRate/2 || !core.IsFinite(cutoff) {
		return Design{}, core.NewValidationError("cutoff frequency", cutoff, "must be between 0 and sampleRate/2")
	}
	if order < 1 {
		return Design{}, core.NewValidationError("order", order, "must be >= 1")
	}
	if kind != Lowpass && kind != Highpass {
		return Design{}, core.NewValidationError("filter type", kind, "must be lowpass or highpass")
	}

	wc := 2 * math.Pi * cutoff / sampleRate
	k := math.Tan(wc / 2)
	k2 := k * k
	norm := 1 / (1 + math.Sqrt2*k + k2)

	a := []float64{1, 2 * (k2 - 1) * norm, (1 - math.Sqrt2*k + k2) * norm}

	var b []float64
	switch kind {
	case Lowpass:
		b = []float64{k2 * norm, 2 * k2 * norm, k2 * norm}
	case Highpass:
		b = []float64{norm, -2 * norm, norm}
	}

	return Design{
		Coefficients: Coefficients{B: b, A: a},
		Kind:         kind,
		Cutoff:       cutoff,
		SampleRate:   sampleRate,
		Order:        order,
		Attenuation:  Attenuation(order),
	}, nil
}

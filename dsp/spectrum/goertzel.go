package spectrum

import (
	"math"

	"github.com/walletscope/spectral/dsp/core"
)

// Goertzel evaluates a single DFT term without computing a full spectrum.
//
// The analyzer accumulates every processed sample; Power and Magnitude
// reflect all samples since the last Reset. For a block of N samples the
// result equals |X(f)|^2 of the DFT of that block evaluated at f.
type Goertzel struct {
	frequency  float64
	sampleRate float64
	coeff      float64
	s0, s1     float64
}

// NewGoertzel creates an analyzer for frequency, which must lie in
// [0, sampleRate/2].
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, core.NewValidationError("sample rate", sampleRate, "must be > 0")
	}

	if frequency < 0 || frequency > sampleRate/2 || !core.IsFinite(frequency) {
		return nil, core.NewValidationError("frequency", frequency, "must be between 0 and sampleRate/2")
	}

	return &Goertzel{
		frequency:  frequency,
		sampleRate: sampleRate,
		coeff:      2 * math.Cos(2*math.Pi*frequency/sampleRate),
	}, nil
}

// Reset clears the internal state.
func (g *Goertzel) Reset() {
	g.s0 = 0
	g.s1 = 0
}

// ProcessBlock updates the internal state with a block of samples.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1

	coeff := g.coeff
	for _, x := range input {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	g.s0, g.s1 = s0, s1
}

// Power returns the squared magnitude of the frequency component.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns the magnitude of the frequency component.
func (g *Goertzel) Magnitude() float64 {
	p := g.Power()
	if p <= 0 {
		return 0
	}

	return math.Sqrt(p)
}

// Frequency returns the target frequency.
func (g *Goertzel) Frequency() float64 { return g.frequency }

// GoertzelMagnitude returns |X(frequency)| of signal in one shot.
func GoertzelMagnitude(signal []float64, frequency, sampleRate float64) (float64, error) {
	if len(signal) == 0 {
		return 0, core.NewValidationError("signal", nil, "must not be empty")
	}

	g, err := NewGoertzel(frequency, sampleRate)
	if err != nil {
		return 0, err
	}

	g.ProcessBlock(signal)

	return g.Magnitude(), nil
}

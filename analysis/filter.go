package analysis

import (
	"go.uber.org/zap"

	"github.com/walletscope/spectral/dsp/filter/design"
	"github.com/walletscope/spectral/dsp/filter/iir"
)

// FilterRequest describes a Butterworth filter. A zero Order selects
// design.DefaultOrder; the zero Kind is low-pass.
type FilterRequest struct {
	Cutoff     float64
	SampleRate float64
	Order      int
	Kind       design.Kind
}

// FilterResult is a filtered signal and the filter that produced it.
type FilterResult struct {
	Filtered []float64
	// Frequency is the cutoff in Hz.
	Frequency   float64
	Attenuation float64
	Order       int
	Kind        design.Kind
	design.Coefficients
}

// Filter designs the requested filter and runs it over signal from zero
// history.
func (e *Engine) Filter(signal []float64, req FilterRequest) (FilterResult, error) {
	if err := e.checkSignal(signal); err != nil {
		return FilterResult{}, e.fail("filter", len(signal), err)
	}

	order := req.Order
	if order == 0 {
		order = design.DefaultOrder
	}

	d, err := design.Butterworth(req.Cutoff, req.SampleRate, order, req.Kind)
	if err != nil {
		return FilterResult{}, e.fail("filter", len(signal), err)
	}

	out, err := iir.Apply(signal, d.Coefficients)
	if err != nil {
		return FilterResult{}, e.fail("filter", len(signal), err)
	}

	e.log.Debug("signal filtered",
		zap.Stringer("kind", d.Kind),
		zap.Float64("cutoff", d.Cutoff),
		zap.Float64("sample_rate", d.SampleRate),
		zap.Int("order", d.Order),
	)

	return FilterResult{
		Filtered:     out,
		Frequency:    d.Cutoff,
		Attenuation:  d.Attenuation,
		Order:        d.Order,
		Kind:         d.Kind,
		Coefficients: d.Coefficients,
	}, nil
}

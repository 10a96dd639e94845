package analysis

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/walletscope/spectral/dsp/core"
	"github.com/walletscope/spectral/dsp/fft"
	"github.com/walletscope/spectral/dsp/spectrum"
	frequencystats "github.com/walletscope/spectral/stats/frequency"
	timestats "github.com/walletscope/spectral/stats/time"
)

// Engine runs the analysis operations with a fixed set of defaults.
type Engine struct {
	log        *zap.Logger
	maxLength  int
	windowSize int
	overlap    int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. Failures are logged at debug level; nil keeps
// the no-op default.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithMaxLength bounds the accepted signal length. It cannot exceed
// fft.MaxLength; non-positive values are ignored.
func WithMaxLength(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxLength = min(n, fft.MaxLength)
		}
	}
}

// WithWindowSize sets the default Welch segment length.
func WithWindowSize(n int) Option {
	return func(e *Engine) {
		e.windowSize = n
	}
}

// WithOverlap sets the default Welch segment overlap.
func WithOverlap(n int) Option {
	return func(e *Engine) {
		e.overlap = n
	}
}

// New returns an Engine with the given options applied over the defaults
// (256-sample window, 128 overlap, 2^20 samples maximum).
func New(opts ...Option) *Engine {
	e := &Engine{
		log:        zap.NewNop(),
		maxLength:  core.DefaultMaxLength,
		windowSize: core.DefaultWindowSize,
		overlap:    core.DefaultOverlap,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Spectrum is the full complex spectrum of a zero-padded signal.
type Spectrum struct {
	Real []float64
	Imag []float64
	// PaddedLength is the power-of-two transform length.
	PaddedLength int
}

// Transform computes the FFT of signal after zero-padding it to the next
// power of two.
func (e *Engine) Transform(signal []float64) (Spectrum, error) {
	if err := e.checkSignal(signal); err != nil {
		return Spectrum{}, e.fail("transform", len(signal), err)
	}

	re, im, err := fft.Transform(signal)
	if err != nil {
		return Spectrum{}, e.fail("transform", len(signal), err)
	}

	return Spectrum{Real: re, Imag: im, PaddedLength: len(re)}, nil
}

// EstimateSpectrum runs a Welch estimate. opts are applied after the
// engine defaults, so callers may override window size, overlap or sample
// rate per call.
func (e *Engine) EstimateSpectrum(signal []float64, opts ...core.Option) (spectrum.FrequencyDomain, error) {
	all := make([]core.Option, 0, len(opts)+3)
	all = append(all,
		core.WithWindowSize(e.windowSize),
		core.WithOverlap(e.overlap),
		core.WithMaxLength(e.maxLength),
	)
	all = append(all, opts...)

	fd, err := spectrum.Welch(signal, all...)
	if err != nil {
		return spectrum.FrequencyDomain{}, e.fail("estimate spectrum", len(signal), err)
	}

	e.log.Debug("spectrum estimated",
		zap.Int("length", len(signal)),
		zap.Int("window_size", fd.WindowSize),
		zap.Int("segments", fd.Segments),
		zap.Float64("dominant_frequency", fd.DominantFrequency),
	)

	return fd, nil
}

// Summarize computes shape statistics of fd with frequencies in Hz.
func (e *Engine) Summarize(fd spectrum.FrequencyDomain) frequencystats.Stats {
	freqs := make([]float64, len(fd.Frequencies))
	rate := fd.SampleRate
	if rate <= 0 {
		rate = 1
	}
	floats.ScaleTo(freqs, rate, fd.Frequencies)
	return frequencystats.Calculate(freqs, fd.Magnitudes)
}

// Describe computes time-domain statistics of signal.
func (e *Engine) Describe(signal []float64) timestats.Stats {
	return timestats.Calculate(signal)
}

func (e *Engine) checkSignal(signal []float64) error {
	if len(signal) == 0 {
		return core.NewValidationError("signal", nil, "must not be empty")
	}
	if len(signal) > e.maxLength {
		return core.NewValidationError("signal length", len(signal), "exceeds maximum accepted length")
	}
	return nil
}

func (e *Engine) fail(op string, length int, err error) error {
	e.log.Debug(op+" failed", zap.Int("length", length), zap.Error(err))
	return fmt.Errorf("analysis: %s: %w", op, err)
}

package core

// Defaults shared by the analysis packages.
const (
	DefaultWindowSize = 256
	DefaultOverlap    = 128
	// DefaultMaxLength bounds accepted signals so recursion depth stays at
	// log2(N) <= 20.
	DefaultMaxLength = 1 << 20
)

// AnalysisConfig defines the spectral estimation settings.
type AnalysisConfig struct {
	SampleRate float64
	WindowSize int
	Overlap    int
	MaxLength  int
}

// Option mutates an AnalysisConfig.
type Option func(*AnalysisConfig)

// DefaultAnalysisConfig returns the Welch defaults (256-sample window, 50%
// overlap) with normalized frequencies.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		SampleRate: 1,
		WindowSize: DefaultWindowSize,
		Overlap:    DefaultOverlap,
		MaxLength:  DefaultMaxLength,
	}
}

// WithSampleRate sets the sample rate used to rescale bin frequencies.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *AnalysisConfig) {
		cfg.SampleRate = sampleRate
	}
}

// WithWindowSize sets the segment length. Like every option it is kept as
// given so that Validate can report a bad value.
func WithWindowSize(windowSize int) Option {
	return func(cfg *AnalysisConfig) {
		cfg.WindowSize = windowSize
	}
}

// WithOverlap sets the number of samples shared by consecutive segments.
func WithOverlap(overlap int) Option {
	return func(cfg *AnalysisConfig) {
		cfg.Overlap = overlap
	}
}

// WithMaxLength sets the largest accepted signal length.
func WithMaxLength(n int) Option {
	return func(cfg *AnalysisConfig) {
		cfg.MaxLength = n
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) AnalysisConfig {
	cfg := DefaultAnalysisConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Step returns the hop between segment starts.
func (c AnalysisConfig) Step() int {
	return c.WindowSize - c.Overlap
}

// Validate checks the segmentation parameters, the sample rate and the
// length limit.
func (c AnalysisConfig) Validate() error {
	if c.SampleRate <= 0 || !IsFinite(c.SampleRate) {
		return NewValidationError("sample rate", c.SampleRate, "must be > 0")
	}
	if c.MaxLength <= 0 {
		return NewValidationError("max length", c.MaxLength, "must be > 0")
	}
	if c.WindowSize <= 0 {
		return NewValidationError("window size", c.WindowSize, "must be > 0")
	}
	if c.Overlap < 0 {
		return NewValidationError("overlap", c.Overlap, "must be >= 0")
	}
	if c.Overlap >= c.WindowSize {
		return NewValidationError("overlap", c.Overlap, "must be < window size")
	}
	if c.WindowSize > c.MaxLength {
		return NewValidationError("window size", c.WindowSize, "exceeds maximum signal length")
	}
	return nil
}

// CheckSignal validates a signal length against the config.
func (c AnalysisConfig) CheckSignal(n int) error {
	if n == 0 {
		return NewValidationError("signal", nil, "must not be empty")
	}
	if c.MaxLength > 0 && n > c.MaxLength {
		return NewValidationError("signal length", n, "exceeds maximum accepted length")
	}
	return nil
}

package main

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/walletscope/spectral/analysis"
	"github.com/walletscope/spectral/dsp/core"
	"github.com/walletscope/spectral/dsp/fft"
	"github.com/walletscope/spectral/dsp/filter/design"
	"github.com/walletscope/spectral/dsp/spectrum"
	"github.com/walletscope/spectral/internal/config"
)

type app struct {
	cfg    *config.Config
	log    *zap.Logger
	stdin  io.Reader
	stdout io.Writer
}

type command func(a *app, args []string) error

var commands = map[string]command{
	"psd":    runPSD,
	"fft":    runFFT,
	"filter": runFilter,
	"probe":  runProbe,
	"stats":  runStats,
}

func (a *app) engine() *analysis.Engine {
	return analysis.New(
		analysis.WithLogger(a.log),
		analysis.WithWindowSize(a.cfg.WindowSize),
		analysis.WithOverlap(a.cfg.Overlap),
	)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: spectra %s [flags] [file]\n\nFlags:\n", name)
		fs.PrintDefaults()
	}
	return fs
}

func runPSD(a *app, args []string) error {
	fs := newFlagSet("psd")
	windowSize := fs.Int("window", a.cfg.WindowSize, "segment length in samples")
	overlap := fs.Int("overlap", a.cfg.Overlap, "samples shared by consecutive segments")
	rate := fs.Float64("rate", a.cfg.SampleRate, "sample rate (1 gives cycles per sample)")
	top := fs.Int("top", 0, "print only the N strongest bins (0 prints all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	samples, err := a.loadSamples(fs.Arg(0))
	if err != nil {
		return err
	}

	e := a.engine()
	fd, err := e.EstimateSpectrum(samples,
		core.WithWindowSize(*windowSize),
		core.WithOverlap(*overlap),
		core.WithSampleRate(*rate),
	)
	if err != nil {
		return err
	}

	stats := e.Summarize(fd)

	summary := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(summary, "samples\t%d\n", len(samples))
	fmt.Fprintf(summary, "segments\t%d\n", fd.Segments)
	fmt.Fprintf(summary, "dominant\t%.6g\n", fd.DominantFrequencyHz())
	fmt.Fprintf(summary, "peak (non-DC)\t%.6g\n", stats.PeakNonDC)
	fmt.Fprintf(summary, "centroid\t%.6g\n", stats.Centroid)
	fmt.Fprintf(summary, "flatness\t%.4f\n", stats.Flatness)
	if err := summary.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(a.stdout)

	unwrapped := spectrum.UnwrapPhase(fd.Phases)

	w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "bin\tfrequency\tperiod\tmagnitude\tphase\tunwrapped\t")
	fmt.Fprintln(w, "---\t---------\t------\t---------\t-----\t---------\t")
	for _, i := range binsToPrint(fd.Magnitudes, *top) {
		f := fd.Frequencies[i] * fd.SampleRate
		fmt.Fprintf(w, "%d\t%.6g\t%s\t%.6g\t%.4f\t%.4f\t\n", i, f, formatPeriod(f), fd.Magnitudes[i], fd.Phases[i], unwrapped[i])
	}
	return w.Flush()
}

func runFFT(a *app, args []string) error {
	fs := newFlagSet("fft")
	check := fs.Bool("check", false, "compare against the reference FFT and report the deviation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	samples, err := a.loadSamples(fs.Arg(0))
	if err != nil {
		return err
	}

	s, err := a.engine().Transform(samples)
	if err != nil {
		return err
	}

	bins := make([]complex128, len(s.Real))
	for k := range bins {
		bins[k] = complex(s.Real[k], s.Imag[k])
	}
	mag := spectrum.Magnitude(bins)
	phase := spectrum.Phase(bins)
	power := make([]float64, len(bins))
	spectrum.PowerFromParts(power, s.Real, s.Imag)

	w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "k\treal\timag\tmagnitude\tpower\tphase\t")
	for k := range bins {
		fmt.Fprintf(w, "%d\t%.6g\t%.6g\t%.6g\t%.6g\t%.4f\t\n", k, s.Real[k], s.Imag[k], mag[k], power[k], phase[k])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if *check {
		refRe, refIm, err := fft.Reference(samples)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "\nmax deviation from reference: %.3g\n", fft.MaxDeviation(s.Real, s.Imag, refRe, refIm))
	}
	return nil
}

func runFilter(a *app, args []string) error {
	fs := newFlagSet("filter")
	cutoff := fs.Float64("cutoff", 0, "cutoff frequency (required)")
	rate := fs.Float64("rate", a.cfg.SampleRate, "sample rate")
	order := fs.Int("order", a.cfg.Order, "nominal filter order (reported attenuation only)")
	kind := fs.String("type", "lowpass", "lowpass or highpass")
	if err := fs.Parse(args); err != nil {
		return err
	}

	k, err := design.ParseKind(*kind)
	if err != nil {
		return err
	}

	samples, err := a.loadSamples(fs.Arg(0))
	if err != nil {
		return err
	}

	res, err := a.engine().Filter(samples, analysis.FilterRequest{
		Cutoff:     *cutoff,
		SampleRate: *rate,
		Order:      *order,
		Kind:       k,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "# %s cutoff=%g rate=%g order=%d attenuation=%.2f dB\n", res.Kind, res.Frequency, *rate, res.Order, res.Attenuation)
	fmt.Fprintf(a.stdout, "# b=%v a=%v\n", res.B, res.A)
	for _, v := range res.Filtered {
		fmt.Fprintf(a.stdout, "%.10g\n", v)
	}
	return nil
}

func runProbe(a *app, args []string) error {
	fs := newFlagSet("probe")
	freq := fs.Float64("freq", 0, "frequency to measure")
	rate := fs.Float64("rate", a.cfg.SampleRate, "sample rate")
	if err := fs.Parse(args); err != nil {
		return err
	}

	samples, err := a.loadSamples(fs.Arg(0))
	if err != nil {
		return err
	}

	mag, err := spectrum.GoertzelMagnitude(samples, *freq, *rate)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "frequency\t%g\n", *freq)
	fmt.Fprintf(w, "magnitude\t%.6g\n", mag)
	fmt.Fprintf(w, "magnitude dB\t%.2f\n", core.LinearToDB(mag))
	return w.Flush()
}

func runStats(a *app, args []string) error {
	fs := newFlagSet("stats")
	if err := fs.Parse(args); err != nil {
		return err
	}

	samples, err := a.loadSamples(fs.Arg(0))
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return core.NewValidationError("signal", nil, "must not be empty")
	}

	s := a.engine().Describe(samples)

	w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "length\t%d\n", s.Length)
	fmt.Fprintf(w, "mean\t%.6g\n", s.Mean)
	fmt.Fprintf(w, "std dev\t%.6g\n", s.StdDev)
	fmt.Fprintf(w, "rms\t%.6g\n", s.RMS)
	fmt.Fprintf(w, "min\t%.6g (at %d)\n", s.Min, s.MinPos)
	fmt.Fprintf(w, "max\t%.6g (at %d)\n", s.Max, s.MaxPos)
	fmt.Fprintf(w, "skewness\t%.4f\n", s.Skewness)
	fmt.Fprintf(w, "kurtosis\t%.4f\n", s.Kurtosis)
	fmt.Fprintf(w, "zero crossings\t%d\n", s.ZeroCrossings)
	return w.Flush()
}

// binsToPrint returns all bin indices, or the top n by magnitude in
// ascending bin order.
func binsToPrint(mag []float64, n int) []int {
	idx := make([]int, len(mag))
	for i := range idx {
		idx[i] = i
	}
	if n <= 0 || n >= len(mag) {
		return idx
	}

	sort.SliceStable(idx, func(i, j int) bool { return mag[idx[i]] > mag[idx[j]] })
	idx = idx[:n]
	sort.Ints(idx)
	return idx
}

func formatPeriod(freq float64) string {
	if freq == 0 {
		return "inf"
	}
	return fmt.Sprintf("%.4g", 1/freq)
}

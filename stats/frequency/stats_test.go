package frequency

import (
	"math"
	"testing"

	"github.com/walletscope/spectral/dsp/core"
	"github.com/walletscope/spectral/dsp/spectrum"
	"github.com/walletscope/spectral/internal/testutil"
)

const tolerance = 1e-9

func bins(n int, step float64) []float64 {
	f := make([]float64, n)
	for i := range f {
		f[i] = float64(i) * step
	}
	return f
}

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(nil, nil)
	if s.BinCount != 0 {
		t.Fatalf("BinCount=%d, want 0", s.BinCount)
	}
	if !math.IsInf(s.DC_dB, -1) {
		t.Fatalf("DC_dB=%v, want -Inf", s.DC_dB)
	}
}

func TestCalculateSilent(t *testing.T) {
	s := Calculate(bins(32, 1), make([]float64, 32))
	if s.Sum != 0 || s.Energy != 0 || s.Centroid != 0 || s.Rolloff != 0 || s.Bandwidth != 0 || s.Flatness != 0 {
		t.Fatalf("silent spectrum produced non-zero stats: %+v", s)
	}
}

func TestCalculateBasic(t *testing.T) {
	freqs := []float64{0, 0.1, 0.2, 0.3, 0.4}
	mag := []float64{4, 1, 2, 1, 0}

	s := Calculate(freqs, mag)

	if s.BinCount != 5 || s.Sum != 8 || s.Energy != 22 {
		t.Fatalf("unexpected sums: %+v", s)
	}
	if s.MaxBin != 0 || s.Max != 4 || s.Peak != 0 {
		t.Fatalf("peak: bin=%d max=%v freq=%v", s.MaxBin, s.Max, s.Peak)
	}
	if s.MinBin != 4 || s.Min != 0 {
		t.Fatalf("min: bin=%d value=%v", s.MinBin, s.Min)
	}
	if s.PeakNonDCBin != 2 || !core.NearlyEqual(s.PeakNonDC, 0.2, tolerance) {
		t.Fatalf("non-DC peak: bin=%d freq=%v", s.PeakNonDCBin, s.PeakNonDC)
	}
	if !core.NearlyEqual(s.Average, 1.6, tolerance) {
		t.Fatalf("Average=%v", s.Average)
	}
	// (0.1 + 0.4 + 0.3) / 8
	if !core.NearlyEqual(s.Centroid, 0.1, tolerance) {
		t.Fatalf("Centroid=%v", s.Centroid)
	}
}

func TestCentroidSymmetric(t *testing.T) {
	freqs := bins(5, 1000)
	if got := Centroid(freqs, []float64{0, 1, 2, 1, 0}); !core.NearlyEqual(got, 2000, tolerance) {
		t.Fatalf("Centroid=%v, want 2000", got)
	}
}

func TestSpreadSingleBinIsZero(t *testing.T) {
	mag := make([]float64, 16)
	mag[5] = 3
	s := Calculate(bins(16, 1), mag)
	if s.Spread != 0 || s.Centroid != 5 {
		t.Fatalf("single bin: centroid=%v spread=%v", s.Centroid, s.Spread)
	}
}

func TestFlatness(t *testing.T) {
	tests := []struct {
		name string
		mag  []float64
		want float64
	}{
		{name: "flat", mag: []float64{9, 1, 1, 1, 1}, want: 1},
		{name: "zero bin", mag: []float64{1, 1, 0, 1}, want: 0},
		{name: "single bin", mag: []float64{1}, want: 0},
		{name: "two levels", mag: []float64{0, 1, 4}, want: 2 / 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Flatness(tt.mag); !core.NearlyEqual(got, tt.want, tolerance) {
				t.Fatalf("Flatness=%v, want %v", got, tt.want)
			}
		})
	}
}

func TestRolloff(t *testing.T) {
	freqs := bins(5, 1)
	mag := []float64{0, 1, 2, 1, 0}
	// Energy 6; 85% = 5.1 reached at bin 3.
	if got := Rolloff(freqs, mag, 0.85); got != 3 {
		t.Fatalf("Rolloff=%v, want 3", got)
	}
	if got := Rolloff(freqs, mag, 0.1); got != 1 {
		t.Fatalf("Rolloff(0.1)=%v, want 1", got)
	}
}

func TestBandwidth(t *testing.T) {
	freqs := bins(5, 1)
	// threshold = 1/sqrt2; crossings interpolated between bins 1-2 and 2-3.
	mag := []float64{0, 0.5, 1, 0.5, 0}
	s := Calculate(freqs, mag)

	edge := (1/math.Sqrt2 - 0.5) / 0.5
	want := (3 - edge) - (1 + edge)
	if !core.NearlyEqual(s.Bandwidth, want, tolerance) {
		t.Fatalf("Bandwidth=%v, want %v", s.Bandwidth, want)
	}
}

func TestCalculateOnWelchOutput(t *testing.T) {
	const sr = 200.0
	sig := testutil.Add(testutil.DC(0.8, 1024), testutil.Sine(25, sr, 1, 1024))

	fd, err := spectrum.Welch(sig, core.WithWindowSize(64), core.WithOverlap(32), core.WithSampleRate(sr))
	if err != nil {
		t.Fatal(err)
	}

	s := Calculate(fd.Frequencies, fd.Magnitudes)
	if s.Peak != 0 {
		t.Fatalf("DC offset should dominate, peak=%v", s.Peak)
	}
	// 25 Hz at 200 Hz is bin 8 of 64: 0.125 cycles/sample.
	if !core.NearlyEqual(s.PeakNonDC, 0.125, tolerance) {
		t.Fatalf("PeakNonDC=%v, want 0.125", s.PeakNonDC)
	}
}

func TestCalculateMismatchedLengths(t *testing.T) {
	s := Calculate([]float64{0, 1, 2}, []float64{1, 2})
	if s.BinCount != 2 || s.MaxBin != 1 || s.Peak != 1 {
		t.Fatalf("unexpected stats for mismatched input: %+v", s)
	}
}

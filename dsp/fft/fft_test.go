package fft

import (
	"errors"
	"math"
	"testing"

	dspfft "github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/walletscope/spectral/dsp/core"
	"github.com/walletscope/spectral/internal/testutil"
)

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{-3, 1}, {0, 1}, {1, 1}, {2, 2}, {3, 4}, {5, 8}, {128, 128}, {129, 256}, {1000, 1024},
	}
	for _, tt := range tests {
		if got := NextPowerOfTwo(tt.n); got != tt.want {
			t.Fatalf("NextPowerOfTwo(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestTransformPadsToPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 100, 257} {
		re, im, err := Transform(testutil.Noise(int64(n), 1, n))
		if err != nil {
			t.Fatalf("Transform(%d) error: %v", n, err)
		}
		want := 1 << int(math.Ceil(math.Log2(float64(n))))
		if len(re) != want || len(im) != want {
			t.Fatalf("n=%d: len=(%d,%d), want %d", n, len(re), len(im), want)
		}
	}
}

func TestTransformSingleSample(t *testing.T) {
	re, im, err := Transform([]float64{2.5})
	if err != nil {
		t.Fatal(err)
	}
	if len(re) != 1 || re[0] != 2.5 || im[0] != 0 {
		t.Fatalf("Transform([2.5]) = %v, %v", re, im)
	}
}

func TestTransformKnownValues(t *testing.T) {
	// DFT of [1, 2, 3, 4] is [10, -2+2i, -2, -2-2i].
	re, im, err := Transform([]float64{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, re, []float64{10, -2, -2, -2}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, im, []float64{0, 2, 0, -2}, 1e-12)

	// Impulse at 0 has a flat unit spectrum.
	re, im, _ = Transform(testutil.Impulse(8, 0))
	testutil.RequireSliceNearlyEqual(t, re, testutil.DC(1, 8), 1e-15)
	testutil.RequireSliceNearlyEqual(t, im, testutil.DC(0, 8), 1e-15)
}

func TestTransformErrors(t *testing.T) {
	if _, _, err := Transform(nil); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("Transform(nil) err=%v, want ErrValidation", err)
	}
	if _, _, err := TransformIterative(make([]float64, MaxLength+1)); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("oversized err=%v, want ErrValidation", err)
	}
}

func TestLinearity(t *testing.T) {
	const n = 100
	const alpha, beta = 2.5, -0.75

	x := testutil.Noise(1, 1, n)
	y := testutil.Noise(2, 3, n)
	mix := make([]float64, n)
	for i := range mix {
		mix[i] = alpha*x[i] + beta*y[i]
	}

	xr, xi, _ := Transform(x)
	yr, yi, _ := Transform(y)
	mr, mi, _ := Transform(mix)

	for k := range mr {
		wantRe := alpha*xr[k] + beta*yr[k]
		wantIm := alpha*xi[k] + beta*yi[k]
		if math.Abs(mr[k]-wantRe) > 1e-9 || math.Abs(mi[k]-wantIm) > 1e-9 {
			t.Fatalf("bin %d: got (%v,%v), want (%v,%v)", k, mr[k], mi[k], wantRe, wantIm)
		}
	}
}

func TestParseval(t *testing.T) {
	for _, n := range []int{1, 5, 64, 300} {
		x := testutil.Noise(int64(100+n), 2, n)

		re, im, err := Transform(x)
		if err != nil {
			t.Fatal(err)
		}

		timeEnergy := 0.0
		for _, v := range x {
			timeEnergy += v * v
		}

		freqEnergy := 0.0
		for k := range re {
			freqEnergy += re[k]*re[k] + im[k]*im[k]
		}
		freqEnergy /= float64(len(re))

		if !core.NearlyEqual(timeEnergy, freqEnergy, 1e-10) {
			t.Fatalf("n=%d: time energy %v != frequency energy %v", n, timeEnergy, freqEnergy)
		}
	}
}

func TestToneDetection(t *testing.T) {
	const f0, fs, n = 10.0, 128.0, 128

	re, im, err := Transform(testutil.Sine(f0, fs, 1, n))
	if err != nil {
		t.Fatal(err)
	}

	mag := make([]float64, len(re))
	for k := range re {
		mag[k] = math.Hypot(re[k], im[k])
	}

	peak := testutil.ArgMax(mag, 1, len(mag)/2)
	if want := int(math.Round(f0 * n / fs)); peak != want {
		t.Fatalf("peak bin=%d, want %d", peak, want)
	}
	if !core.NearlyEqual(mag[peak], n/2, 1e-9) {
		t.Fatalf("peak magnitude=%v, want %v", mag[peak], n/2)
	}
}

func TestIterativeMatchesRecursive(t *testing.T) {
	for _, n := range []int{1, 2, 3, 16, 200, 1024} {
		x := testutil.Noise(int64(n), 1, n)

		r1, i1, err := Transform(x)
		if err != nil {
			t.Fatal(err)
		}
		r2, i2, err := TransformIterative(x)
		if err != nil {
			t.Fatal(err)
		}

		testutil.RequireSliceNearlyEqual(t, r2, r1, 1e-10)
		testutil.RequireSliceNearlyEqual(t, i2, i1, 1e-10)
	}
}

func TestDeterministic(t *testing.T) {
	x := testutil.Noise(9, 1, 777)
	r1, i1, _ := Transform(x)
	r2, i2, _ := Transform(x)
	for k := range r1 {
		if r1[k] != r2[k] || i1[k] != i2[k] {
			t.Fatalf("bin %d differs between runs", k)
		}
	}
}

func TestDoesNotMutateInput(t *testing.T) {
	x := []float64{1, 2, 3}
	_, _, _ = Transform(x)
	_, _, _ = TransformIterative(x)
	if x[0] != 1 || x[1] != 2 || x[2] != 3 || len(x) != 3 {
		t.Fatalf("input mutated: %v", x)
	}
}

func TestNonFinitePropagates(t *testing.T) {
	re, _, err := Transform([]float64{1, math.NaN(), 0, 0})
	if err != nil {
		t.Fatalf("NaN input should not be trapped: %v", err)
	}
	if !math.IsNaN(re[0]) {
		t.Fatalf("re[0]=%v, want NaN", re[0])
	}
}

func TestMatchesAlgoFFT(t *testing.T) {
	for _, n := range []int{1, 8, 100, 512} {
		x := testutil.Noise(int64(7*n), 1, n)

		re, im, _ := Transform(x)
		refRe, refIm, err := Reference(x)
		if err != nil {
			t.Fatalf("Reference(%d) error: %v", n, err)
		}

		if d := MaxDeviation(re, im, refRe, refIm); d > 1e-9 {
			t.Fatalf("n=%d: deviation from algo-fft %v", n, d)
		}
	}
}

func TestMatchesGonum(t *testing.T) {
	x := Pad(testutil.Noise(11, 1, 200))
	re, im, _ := Transform(x)

	coeffs := fourier.NewFFT(len(x)).Coefficients(nil, x)
	for k, c := range coeffs {
		if math.Abs(re[k]-real(c)) > 1e-9 || math.Abs(im[k]-imag(c)) > 1e-9 {
			t.Fatalf("bin %d: got (%v,%v), gonum (%v,%v)", k, re[k], im[k], real(c), imag(c))
		}
	}
}

func TestMatchesGoDSP(t *testing.T) {
	x := Pad(testutil.Tones(64, 100, testutil.Tone{Freq: 3, Amplitude: 1}, testutil.Tone{Freq: 20, Amplitude: 0.25, Phase: 1}))
	re, im, _ := TransformIterative(x)

	for k, c := range dspfft.FFTReal(x) {
		if math.Abs(re[k]-real(c)) > 1e-9 || math.Abs(im[k]-imag(c)) > 1e-9 {
			t.Fatalf("bin %d: got (%v,%v), go-dsp (%v,%v)", k, re[k], im[k], real(c), imag(c))
		}
	}
}

func TestMaxDeviationMismatch(t *testing.T) {
	if !math.IsInf(MaxDeviation([]float64{1}, []float64{0}, nil, nil), 1) {
		t.Fatal("mismatched lengths should yield +Inf")
	}
}

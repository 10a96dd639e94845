package fft

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Reference computes the padded DFT of x with the planned algo-fft backend.
// It is used to cross-check [Transform] and is not bit-identical to it.
func Reference(x []float64) (re, im []float64, err error) {
	if err := checkInput(len(x)); err != nil {
		return nil, nil, err
	}

	n := NextPowerOfTwo(len(x))

	in := make([]complex128, n)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	if n == 1 {
		return []float64{real(in[0])}, []float64{0}, nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, nil, fmt.Errorf("fft reference plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, nil, fmt.Errorf("fft reference forward: %w", err)
	}

	re = make([]float64, n)
	im = make([]float64, n)
	for i, c := range out {
		re[i] = real(c)
		im[i] = imag(c)
	}

	return re, im, nil
}

// MaxDeviation returns the largest absolute difference between two complex
// spectra given as split parts. Mismatched lengths yield +Inf.
func MaxDeviation(re1, im1, re2, im2 []float64) float64 {
	if len(re1) != len(re2) || len(im1) != len(im2) || len(re1) != len(im1) {
		return math.Inf(1)
	}

	maxDiff := 0.0
	for i := range re1 {
		d := math.Hypot(re1[i]-re2[i], im1[i]-im2[i])
		if d > maxDiff {
			maxDiff = d
		}
	}

	return maxDiff
}

package fft

import (
	"math"

	"github.com/walletscope/spectral/dsp/core"
)

// MaxLength is the largest accepted input length. It bounds the recursion
// depth of [Transform] to 20 levels.
const MaxLength = core.DefaultMaxLength

// NextPowerOfTwo returns 2^ceil(log2(n)), or 1 for n <= 1.
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Pad returns a copy of x zero-extended to NextPowerOfTwo(len(x)).
func Pad(x []float64) []float64 {
	out := make([]float64, NextPowerOfTwo(len(x)))
	copy(out, x)
	return out
}

// Transform returns the real and imaginary parts of the DFT of x after
// zero-padding to N = NextPowerOfTwo(len(x)). Both results have length N.
func Transform(x []float64) (re, im []float64, err error) {
	if err := checkInput(len(x)); err != nil {
		return nil, nil, err
	}

	re, im = transform(Pad(x), make([]float64, NextPowerOfTwo(len(x))))
	return re, im, nil
}

// transform is the recursive radix-2 decimation-in-time step. The inputs
// must have equal power-of-two length and are not modified.
func transform(re, im []float64) ([]float64, []float64) {
	n := len(re)
	if n == 1 {
		return []float64{re[0]}, []float64{im[0]}
	}

	half := n / 2
	evenRe := make([]float64, half)
	evenIm := make([]float64, half)
	oddRe := make([]float64, half)
	oddIm := make([]float64, half)
	for i := 0; i < half; i++ {
		evenRe[i], evenIm[i] = re[2*i], im[2*i]
		oddRe[i], oddIm[i] = re[2*i+1], im[2*i+1]
	}

	evenRe, evenIm = transform(evenRe, evenIm)
	oddRe, oddIm = transform(oddRe, oddIm)

	outRe := make([]float64, n)
	outIm := make([]float64, n)
	for k := 0; k < half; k++ {
		theta := -2 * math.Pi * float64(k) / float64(n)
		c, s := math.Cos(theta), math.Sin(theta)

		tRe := oddRe[k]*c - oddIm[k]*s
		tIm := oddRe[k]*s + oddIm[k]*c

		outRe[k] = evenRe[k] + tRe
		outIm[k] = evenIm[k] + tIm
		outRe[k+half] = evenRe[k] - tRe
		outIm[k+half] = evenIm[k] - tIm
	}

	return outRe, outIm
}

// TransformIterative computes the same DFT as [Transform] in place on a
// padded copy using a bit-reversal permutation and iterative butterflies.
func TransformIterative(x []float64) (re, im []float64, err error) {
	if err := checkInput(len(x)); err != nil {
		return nil, nil, err
	}

	re = Pad(x)
	im = make([]float64, len(re))
	bitReverse(re, im)

	n := len(re)
	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		for k := 0; k < half; k++ {
			theta := -2 * math.Pi * float64(k) / float64(size)
			c, s := math.Cos(theta), math.Sin(theta)

			for start := 0; start < n; start += size {
				e := start + k
				o := e + half

				tRe := re[o]*c - im[o]*s
				tIm := re[o]*s + im[o]*c

				re[o] = re[e] - tRe
				im[o] = im[e] - tIm
				re[e] += tRe
				im[e] += tIm
			}
		}
	}

	return re, im, nil
}

func bitReverse(re, im []float64) {
	n := len(re)
	j := 0
	for i := 1; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j |= bit

		if i < j {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}
}

func checkInput(n int) error {
	if n == 0 {
		return core.NewValidationError("signal", nil, "must not be empty")
	}
	if n > MaxLength {
		return core.NewValidationError("signal length", n, "exceeds maximum FFT length")
	}
	return nil
}

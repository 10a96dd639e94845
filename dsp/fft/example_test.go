package fft_test

import (
	"fmt"

	"github.com/walletscope/spectral/dsp/fft"
)

func ExampleTransform() {
	re, im, _ := fft.Transform([]float64{1, 2, 3})
	for k := range re {
		fmt.Printf("%.0f%+.0fi ", re[k], im[k])
	}
	fmt.Println()
	// Output:
	// 6+0i -2-2i 2+0i -2+2i
}

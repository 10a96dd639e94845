package iir

import (
	"testing"

	"github.com/walletscope/spectral/dsp/filter/design"
	"github.com/walletscope/spectral/internal/testutil"
)

func BenchmarkApply(b *testing.B) {
	d, _ := design.Butterworth(5, 200, 4, design.Lowpass)
	sig := testutil.Noise(1, 1, 4096)

	b.SetBytes(int64(len(sig) * 8))
	b.ResetTimer()
	for range b.N {
		if _, err := Apply(sig, d.Coefficients); err != nil {
			b.Fatal(err)
		}
	}
}

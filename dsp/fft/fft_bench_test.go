package fft

import (
	"strconv"
	"testing"

	"github.com/walletscope/spectral/internal/testutil"
)

func BenchmarkTransform(b *testing.B) {
	for _, n := range []int{256, 4096, 65536} {
		x := testutil.Noise(1, 1, n)
		b.Run("recursive/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _, _ = Transform(x)
			}
		})
		b.Run("iterative/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _, _ = TransformIterative(x)
			}
		})
	}
}

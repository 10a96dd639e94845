package iir

import (
	"github.com/walletscope/spectral/dsp/core"
	"github.com/walletscope/spectral/dsp/filter/design"
)

// Filter is a Direct Form I filter with its input and output history.
type Filter struct {
	b, a []float64
	a0   float64

	xh []float64 // xh[k] = x[n-1-k]
	yh []float64 // yh[k] = y[n-1-k]
}

// New validates c and returns a Filter with zeroed history. The
// coefficient slices are copied.
func New(c design.Coefficients) (*Filter, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	f := &Filter{
		b:  append([]float64(nil), c.B...),
		a:  append([]float64(nil), c.A...),
		a0: c.A[0],
	}
	f.xh = make([]float64, len(f.b))
	f.yh = make([]float64, len(f.a))

	return f, nil
}

// ProcessSample filters one sample:
//
//	y[n] = (sum b[k]x[n-k] - sum_{k>=1} a[k]y[n-k]) / a[0]
func (f *Filter) ProcessSample(x float64) float64 {
	acc := f.b[0] * x
	for k := 1; k < len(f.b); k++ {
		acc += f.b[k] * f.xh[k-1]
	}
	for k := 1; k < len(f.a); k++ {
		acc -= f.a[k] * f.yh[k-1]
	}
	y := acc / f.a0

	shift(f.xh, x)
	shift(f.yh, y)

	return y
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1]
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// ProcessBlock filters buf in place.
func (f *Filter) ProcessBlock(buf []float64) {
	f.ProcessBlockTo(buf, buf)
}

// Reset clears the history to zero.
func (f *Filter) Reset() {
	clear(f.xh)
	clear(f.yh)
}

// Apply filters signal with c from zero history and returns a new slice of
// the same length. The input is not modified.
func Apply(signal []float64, c design.Coefficients) ([]float64, error) {
	if len(signal) == 0 {
		return nil, core.NewValidationError("signal", nil, "must not be empty")
	}

	f, err := New(c)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(signal))
	f.ProcessBlockTo(out, signal)

	return out, nil
}

// shift pushes v onto the front of h, dropping the oldest value.
func shift(h []float64, v float64) {
	if len(h) == 0 {
		return
	}
	copy(h[1:], h[:len(h)-1])
	h[0] = v
}

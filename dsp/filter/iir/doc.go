// Package iir runs recursive filters from a design.Coefficients transfer function.
//
// [Apply] filters a whole series in Direct Form I with zero initial history,
// so the first max(len(b), len(a)) outputs carry the start-up transient.
// [Filter] keeps the same state between calls for streaming input.
package iir

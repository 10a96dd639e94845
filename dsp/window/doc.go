// Package window generates taper windows applied before spectral analysis.
//
// All windows are symmetric (denominator N-1). The Welch estimator in
// dsp/spectrum uses [TypeHann]; [TypeRectangular] is provided for
// comparisons.
package window

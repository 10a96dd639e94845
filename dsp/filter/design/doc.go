// Package design derives IIR filter coefficients.
//
// [Butterworth] maps the analog Butterworth prototype to a single digital
// second-order section through the bilinear transform with frequency
// pre-warping. The requested order only drives the reported attenuation
// figure; the coefficients are always second order. Runtime filtering
// lives in dsp/filter/iir.
package design

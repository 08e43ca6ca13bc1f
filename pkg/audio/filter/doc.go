// ABOUTME: Filter engine package
// ABOUTME: Designs and applies lowpass, highpass, notch and bandpass biquads
// Package filter designs and applies the four quiz filters.
//
// Each filter type maps to one RBJ biquad section. Apply runs the section
// forward and then backward over a fixed buffer (zero phase), then matches
// the output RMS to the input so level never gives the answer away.
//
// Frequencies at or above Nyquist are rejected with ErrInvalidFrequency rather
// than clamped, so the frequency shown to the listener is the one applied.
//
// Example:
//
//	out, err := filter.Apply(buf, filter.Notch, 1500)
package filter

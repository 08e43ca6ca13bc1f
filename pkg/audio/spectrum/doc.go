// ABOUTME: Spectrum analysis package
// ABOUTME: Windowed FFT power spectra and octave band levels
// Package spectrum measures the frequency content of audio buffers.
//
// It is used to verify the pink-noise slope, to measure filter responses on
// real noise, and to draw the filter details view.
//
// Example:
//
//	spec := spectrum.Analyze(buf)
//	levels := spec.Levels(spectrum.OctaveBands(buf.SampleRate))
package spectrum

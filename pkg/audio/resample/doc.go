// ABOUTME: Sample rate conversion package
// ABOUTME: Linear-interpolation resampler for decoded uploads
// Package resample converts mono buffers between sample rates.
//
// Uploaded audio is decoded at its native rate and converted once to the
// quiz sample rate before any excerpt is taken.
//
// Example:
//
//	r := resample.New(48000, 44100)
//	out := r.Resample(buf.Samples)
package resample

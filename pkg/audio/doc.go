// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines the mono Buffer type, sample conversion and level helpers
// Package audio provides fundamental audio types and utilities shared by the
// noise generator, the filter engine, the decoders and the playback backends.
//
// This package defines:
//   - Buffer: a mono float64 PCM buffer with its sample rate
//   - Sample conversions between float64 and 16-bit / arbitrary bit depth integers
//   - Level helpers: Peak, RMS, RemoveDC, NormalizePeak, MatchRMS
//
// Samples are nominally in [-1, 1]. Level helpers never modify their input;
// they return a new Buffer.
//
// Example:
//
//	buf := audio.Buffer{Samples: samples, SampleRate: 44100}
//	loud, err := audio.NormalizePeak(buf, 0.4)
package audio

// ABOUTME: Audio encoder package for writing float buffers as PCM and WAV
// ABOUTME: Provides Encoder interface and PCM/WAV implementations
// Package encode provides audio encoders.
//
// Supports: PCM (16-bit and 24-bit little-endian), WAV (mono PCM)
//
// Example:
//
//	enc, err := encode.NewWAV(16)
//	err = enc.Encode(w, buf)
package encode

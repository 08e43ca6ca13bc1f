// ABOUTME: Audio decoder package for uploaded audio files
// ABOUTME: Provides Decoder interface and implementations for MP3, FLAC, WAV
// Package decode turns uploaded audio files into mono PCM buffers.
//
// Supports: MP3 (go-mp3), FLAC (mewkiz/flac), WAV (16/24/32-bit PCM and
// 32-bit float).
//
// All decoders implement the Decoder interface, downmix to mono and output
// float64 samples in [-1, 1] at the file's native sample rate.
//
// Example:
//
//	buf, err := decode.File("upload.flac")
package decode

// ABOUTME: Audio output package for playing quiz buffers
// ABOUTME: Provides Output interface, oto backend and a discarding sink
// Package output provides audio playback for fixed buffers.
//
// The oto backend opens one device context per process and plays each buffer
// through its own player; Play blocks until the buffer finished or the
// context is cancelled, so callers decide when to start, stop or cancel.
//
// Example:
//
//	out := output.NewOto()
//	err := out.Play(ctx, buf)
package output

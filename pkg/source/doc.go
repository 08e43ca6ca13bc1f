// ABOUTME: Quiz audio sources
// ABOUTME: Provides pink noise and uploaded file excerpts as fixed buffers
// Package source provides the audio that quiz questions are built from.
//
// Every source hands out a fresh mono buffer of exactly the requested
// duration at the requested sample rate. Noise synthesizes pink noise on each
// call; File decodes an uploaded file once and returns excerpts starting at
// random offsets.
package source

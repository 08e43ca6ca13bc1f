// ABOUTME: Audio type definitions
// ABOUTME: Defines the mono PCM buffer and sample format conversions
package audio

import (
	"math"
	"time"
)

const (
	// 16-bit range constants
	MaxInt16 = 32767
	MinInt16 = -32768
)

// Buffer is a mono PCM buffer. Samples are nominally in [-1, 1].
type Buffer struct {
	Samples    []float64
	SampleRate int
}

// Len returns the number of samples
func (b Buffer) Len() int {
	return len(b.Samples)
}

// Duration returns the playback length of the buffer
func (b Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(b.Samples)) / float64(b.SampleRate) * float64(time.Second))
}

// Clone returns a deep copy of the buffer
func (b Buffer) Clone() Buffer {
	samples := make([]float64, len(b.Samples))
	copy(samples, b.Samples)
	return Buffer{Samples: samples, SampleRate: b.SampleRate}
}

// Slice returns a copy of samples [start, start+n)
func (b Buffer) Slice(start, n int) Buffer {
	samples := make([]float64, n)
	copy(samples, b.Samples[start:start+n])
	return Buffer{Samples: samples, SampleRate: b.SampleRate}
}

// SamplesFor returns the sample count for a duration in seconds at a rate
func SamplesFor(durationSeconds float64, sampleRate int) int {
	return int(math.Round(durationSeconds * float64(sampleRate)))
}

// SampleToInt16 converts a float sample to int16 with clipping
func SampleToInt16(sample float64) int16 {
	scaled := math.Round(sample * (MaxInt16 + 1))
	if scaled > MaxInt16 {
		return MaxInt16
	}
	if scaled < MinInt16 {
		return MinInt16
	}
	return int16(scaled)
}

// SampleFromInt16 converts an int16 sample to float
func SampleFromInt16(sample int16) float64 {
	return float64(sample) / (MaxInt16 + 1)
}

// SampleFromInt converts a signed integer sample of the given bit depth to float
func SampleFromInt(sample int32, bitDepth int) float64 {
	if bitDepth <= 0 || bitDepth > 32 {
		return 0
	}
	return float64(sample) / float64(int64(1)<<(bitDepth-1))
}

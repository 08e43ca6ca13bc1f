// ABOUTME: Audio output interface definition
// ABOUTME: Common interface for playback backends and volume helpers
package output

import (
	"context"

	"github.com/harperreed/earfilter-go/pkg/audio"
)

// Output represents an audio output device
type Output interface {
	// Play outputs a mono buffer (blocks until played or ctx is done)
	Play(ctx context.Context, buf audio.Buffer) error

	// SetVolume sets the volume (0-100)
	SetVolume(volume int)

	// SetMuted sets mute state
	SetMuted(muted bool)

	// Close releases output resources
	Close() error
}

// Probe plays a few silent samples to surface device errors early
func Probe(ctx context.Context, out Output, sampleRate int) error {
	return out.Play(ctx, audio.Buffer{Samples: make([]float64, 10), SampleRate: sampleRate})
}

// applyVolume applies volume and mute to samples
func applyVolume(samples []float64, volume int, muted bool) []float64 {
	multiplier := getVolumeMultiplier(volume, muted)

	result := make([]float64, len(samples))
	for i, sample := range samples {
		result[i] = sample * multiplier
	}
	return result
}

// getVolumeMultiplier calculates volume multiplier
func getVolumeMultiplier(volume int, muted bool) float64 {
	if muted {
		return 0.0
	}
	return float64(volume) / 100.0
}

// clampVolume keeps volume in 0-100
func clampVolume(volume int) int {
	if volume < 0 {
		return 0
	}
	if volume > 100 {
		return 100
	}
	return volume
}

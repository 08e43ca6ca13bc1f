// ABOUTME: Pink noise quiz source
// ABOUTME: Wraps the Voss-McCartney generator behind the source contract
package source

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/harperreed/earfilter-go/pkg/audio"
	"github.com/harperreed/earfilter-go/pkg/audio/noise"
)

// Noise generates a new pink noise buffer for every request
type Noise struct {
	mu   sync.Mutex
	pink *noise.Pink
}

// NewNoise creates a pink noise source driven by rng
func NewNoise(rng *rand.Rand) (*Noise, error) {
	pink, err := noise.NewPink(rng, noise.DefaultRows)
	if err != nil {
		return nil, fmt.Errorf("failed to create pink noise: %w", err)
	}
	return &Noise{pink: pink}, nil
}

// Buffer returns durationSeconds of pink noise at sampleRate
func (s *Noise) Buffer(durationSeconds float64, sampleRate int) (audio.Buffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pink.Generate(durationSeconds, sampleRate)
}

// Name describes the source for logs and the UI
func (s *Noise) Name() string {
	return "Pink Noise"
}

// ABOUTME: Voss-McCartney pink noise generator
// ABOUTME: Sums octave-rate random rows plus a white term, then normalizes peak
package noise

import (
	"fmt"
	"math/bits"
	"math/rand"

	"github.com/harperreed/earfilter-go/pkg/audio"
)

const (
	// DefaultRows is the number of octave rows
	DefaultRows = 16

	// MaxRows bounds the row count
	MaxRows = 32

	// Amplitude is the peak level of every generated buffer
	Amplitude = 0.4
)

// Pink generates pink noise buffers
type Pink struct {
	rng  *rand.Rand
	rows int
}

// NewPink creates a generator drawing from rng
func NewPink(rng *rand.Rand, rows int) (*Pink, error) {
	if rng == nil {
		return nil, fmt.Errorf("pink noise: random source is required")
	}
	if rows < 1 || rows > MaxRows {
		return nil, fmt.Errorf("pink noise: rows must be in [1, %d]: %d", MaxRows, rows)
	}
	return &Pink{rng: rng, rows: rows}, nil
}

// Rows returns the number of octave rows
func (p *Pink) Rows() int {
	return p.rows
}

// Generate returns durationSeconds of pink noise at sampleRate, DC-free and
// normalized to Amplitude peak.
func (p *Pink) Generate(durationSeconds float64, sampleRate int) (audio.Buffer, error) {
	if sampleRate <= 0 {
		return audio.Buffer{}, fmt.Errorf("pink noise: sample rate must be > 0: %d", sampleRate)
	}
	n := audio.SamplesFor(durationSeconds, sampleRate)
	if n <= 0 {
		return audio.Buffer{}, fmt.Errorf("pink noise: duration too short: %gs", durationSeconds)
	}

	// Each row holds a value in [-1/rows, 1/rows]
	scale := 1.0 / float64(p.rows)
	rows := make([]float64, p.rows)
	sum := 0.0
	for i := range rows {
		rows[i] = p.uniform(scale)
		sum += rows[i]
	}

	samples := make([]float64, n)
	for i := range samples {
		// Row k is refreshed when the counter has exactly k trailing zeros,
		// i.e. once every 2^(k+1) samples. Counters past the last row skip.
		counter := uint64(i) + 1
		if k := bits.TrailingZeros64(counter); k < p.rows {
			sum -= rows[k]
			rows[k] = p.uniform(scale)
			sum += rows[k]
		}

		samples[i] = sum + p.uniform(scale)
	}

	buf := audio.RemoveDC(audio.Buffer{Samples: samples, SampleRate: sampleRate})
	return audio.NormalizePeak(buf, Amplitude)
}

func (p *Pink) uniform(scale float64) float64 {
	return (p.rng.Float64()*2 - 1) * scale
}

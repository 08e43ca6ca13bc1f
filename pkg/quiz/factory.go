// ABOUTME: Quiz question factory
// ABOUTME: Draws filter types and frequencies from an injected random source
package quiz

import (
	"fmt"
	"log"
	"math/rand"
)

// Factory produces questions for one configuration
type Factory struct {
	cfg   Config
	rng   *rand.Rand
	index int
}

// NewFactory validates cfg and returns a factory drawing from rng
func NewFactory(cfg Config, rng *rand.Rand) (*Factory, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Factory{cfg: cfg, rng: rng}, nil
}

// Next returns the next question
func (f *Factory) Next() (Question, error) {
	types := f.cfg.Mode.Types()
	t := types[f.rng.Intn(len(types))]
	freq := f.cfg.Frequencies[f.rng.Intn(len(f.cfg.Frequencies))]

	buf, err := f.cfg.Source.Buffer(f.cfg.DurationSeconds, f.cfg.SampleRate)
	if err != nil {
		return Question{}, fmt.Errorf("failed to get source audio: %w", err)
	}
	if buf.SampleRate != f.cfg.SampleRate {
		return Question{}, fmt.Errorf("%w: source returned %dHz, want %dHz", ErrInvalidConfig, buf.SampleRate, f.cfg.SampleRate)
	}

	q := Question{
		Index:     f.index,
		Type:      t,
		Frequency: freq,
		Duration:  f.cfg.DurationSeconds,
		Source:    buf,
	}
	f.index++

	log.Printf("Question %d: %s at %.0f Hz", q.Index+1, q.Type, q.Frequency)
	return q, nil
}

// Reset restarts question numbering
func (f *Factory) Reset() {
	f.index = 0
}

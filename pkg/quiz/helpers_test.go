// ABOUTME: Shared quiz test helpers
// ABOUTME: Stub audio source and a small default configuration
package quiz

import (
	"math"

	"github.com/harperreed/earfilter-go/pkg/audio"
)

type stubSource struct {
	calls int
	err   error
}

func (s *stubSource) Buffer(durationSeconds float64, sampleRate int) (audio.Buffer, error) {
	s.calls++
	if s.err != nil {
		return audio.Buffer{}, s.err
	}
	n := audio.SamplesFor(durationSeconds, sampleRate)
	samples := make([]float64, n)
	for i := range samples {
		t := float64(i) / float64(sampleRate)
		samples[i] = 0.2*math.Sin(2*math.Pi*220*t) + 0.1*math.Sin(2*math.Pi*3000*t)
	}
	return audio.Buffer{Samples: samples, SampleRate: sampleRate}, nil
}

func testConfig(src SourceProvider) Config {
	cfg := DefaultConfig()
	cfg.SampleRate = 22050
	cfg.DurationSeconds = 1
	cfg.Source = src
	return cfg
}

func freq(f float64) *float64 {
	return &f
}

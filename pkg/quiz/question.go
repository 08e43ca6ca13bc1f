// ABOUTME: Quiz question
// ABOUTME: Holds the source audio and produces the filtered buffer and labels
package quiz

import (
	"fmt"
	"log"

	"github.com/harperreed/earfilter-go/pkg/audio"
	"github.com/harperreed/earfilter-go/pkg/audio/filter"
)

// silenceThreshold is the peak below which a filtered buffer counts as silent
const silenceThreshold = 1e-6

// Question is one filter to identify
type Question struct {
	Index     int
	Type      filter.Type
	Frequency float64
	Duration  float64
	Source    audio.Buffer
}

// Filtered returns Source run through the question's filter.
// A filter that leaves nothing audible falls back to the source audio.
func (q Question) Filtered() (audio.Buffer, error) {
	out, err := filter.Apply(q.Source, q.Type, q.Frequency)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("question %d: %w", q.Index+1, err)
	}

	if audio.Peak(out.Samples) < silenceThreshold {
		log.Printf("Warning: filtered audio for question %d is silent, playing original", q.Index+1)
		return q.Source.Clone(), nil
	}
	return out, nil
}

// Label returns the band label of the question frequency
func (q Question) Label() string {
	return FrequencyLabel(q.Frequency)
}

// Details describes the filter settings
func (q Question) Details() string {
	if q.Type.HasCenter() {
		return fmt.Sprintf("Center: %.0f Hz (%s), Q %.1f", q.Frequency, q.Label(), filter.Q(q.Type))
	}
	return fmt.Sprintf("Cutoff: %.0f Hz (Butterworth, Q %.2f)", q.Frequency, filter.Q(q.Type))
}

// Answer renders the correct answer, e.g. "Notch at 1500 Hz (Mid)"
func (q Question) Answer() string {
	return fmt.Sprintf("%s at %s", q.Type, FormatFrequency(q.Frequency))
}

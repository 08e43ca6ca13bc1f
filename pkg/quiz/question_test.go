// ABOUTME: Question tests
// ABOUTME: Verifies filtered buffers, labels, details and the silent fallback
package quiz

import (
	"errors"
	"testing"

	"github.com/harperreed/earfilter-go/pkg/audio"
	"github.com/harperreed/earfilter-go/pkg/audio/filter"
)

func TestQuestionFiltered(t *testing.T) {
	src, _ := (&stubSource{}).Buffer(1, 22050)
	q := Question{Type: filter.Notch, Frequency: 1500, Duration: 1, Source: src}

	out, err := q.Filtered()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != src.Len() || out.SampleRate != src.SampleRate {
		t.Errorf("expected %d samples at %dHz, got %d at %dHz", src.Len(), src.SampleRate, out.Len(), out.SampleRate)
	}

	again, err := q.Filtered()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range out.Samples {
		if out.Samples[i] != again.Samples[i] {
			t.Fatalf("sample %d differs between calls", i)
		}
	}
}

func TestQuestionFilteredSilentFallback(t *testing.T) {
	src := audio.Buffer{Samples: make([]float64, 1000), SampleRate: 22050}
	q := Question{Type: filter.Bandpass, Frequency: 1500, Source: src}

	out, err := q.Filtered()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != src.Len() {
		t.Errorf("expected %d samples, got %d", src.Len(), out.Len())
	}
}

func TestQuestionFilteredInvalidFrequency(t *testing.T) {
	src, _ := (&stubSource{}).Buffer(1, 16000)
	q := Question{Type: filter.Lowpass, Frequency: 10000, Source: src}

	if _, err := q.Filtered(); !errors.Is(err, ErrInvalidFrequency) {
		t.Errorf("expected ErrInvalidFrequency, got %v", err)
	}
}

func TestQuestionLabelsAndDetails(t *testing.T) {
	tests := []struct {
		q       Question
		label   string
		details string
		answer  string
	}{
		{
			Question{Type: filter.Notch, Frequency: 1500},
			"Mid",
			"Center: 1500 Hz (Mid), Q 3.0",
			"Notch at 1500 Hz (Mid)",
		},
		{
			Question{Type: filter.Bandpass, Frequency: 10000},
			"Very High",
			"Center: 10000 Hz (Very High), Q 3.0",
			"Bandpass at 10000 Hz (Very High)",
		},
		{
			Question{Type: filter.Lowpass, Frequency: 5000},
			"High-Mid",
			"Cutoff: 5000 Hz (Butterworth, Q 0.71)",
			"Lowpass at 5000 Hz (High-Mid)",
		},
	}

	for _, tt := range tests {
		if got := tt.q.Label(); got != tt.label {
			t.Errorf("expected label %q, got %q", tt.label, got)
		}
		if got := tt.q.Details(); got != tt.details {
			t.Errorf("expected details %q, got %q", tt.details, got)
		}
		if got := tt.q.Answer(); got != tt.answer {
			t.Errorf("expected answer %q, got %q", tt.answer, got)
		}
	}
}

func TestFrequencyLabel(t *testing.T) {
	tests := []struct {
		freq     float64
		expected string
	}{
		{100, "Low"},
		{120, "Low"},
		{600, "Low-Mid"},
		{8000, "High"},
		{12000, "Very High"},
		{0, ""},
	}

	for _, tt := range tests {
		if got := FrequencyLabel(tt.freq); got != tt.expected {
			t.Errorf("%v Hz: expected %q, got %q", tt.freq, tt.expected, got)
		}
	}
}

// ABOUTME: Feedback text tests
// ABOUTME: Verifies verdict lines and optional answer and details output
package quiz

import (
	"reflect"
	"testing"

	"github.com/harperreed/earfilter-go/pkg/audio/filter"
)

func TestFeedback(t *testing.T) {
	g := NewGrader(DefaultFrequencies, false)
	notch := Question{Type: filter.Notch, Frequency: 1500}

	tests := []struct {
		name        string
		q           Question
		attempt     Attempt
		showAnswer  bool
		showDetails bool
		expected    []string
	}{
		{
			"correct quiet",
			notch, Attempt{filter.Notch, freq(1500)}, true, false,
			[]string{"Correct! (Type and Frequency)"},
		},
		{
			"partial with answer",
			notch, Attempt{filter.Notch, freq(600)}, true, false,
			[]string{
				"Partially Correct. (Correct type 'Notch', but wrong frequency)",
				"The correct frequency was: 1500 Hz (Mid)",
			},
		},
		{
			"wrong type with answer and details",
			notch, Attempt{filter.Lowpass, nil}, true, true,
			[]string{
				"Incorrect.",
				"The correct filter type was: Notch | Filter Details: Center: 1500 Hz (Mid), Q 3.0",
			},
		},
		{
			"wrong type hidden answer",
			notch, Attempt{filter.Bandpass, freq(1500)}, false, false,
			[]string{"Incorrect."},
		},
		{
			"lowpass with details",
			Question{Type: filter.Lowpass, Frequency: 5000}, Attempt{filter.Lowpass, nil}, true, true,
			[]string{"Correct!", "Filter Details: Cutoff: 5000 Hz (Butterworth, Q 0.71)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Feedback(tt.q, g.Score(tt.q, tt.attempt), tt.showAnswer, tt.showDetails)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFormatScore(t *testing.T) {
	if got := FormatScore(2.5, 4); got != "Score: 2.5/4" {
		t.Errorf("expected %q, got %q", "Score: 2.5/4", got)
	}
}

// ABOUTME: Tests for biquad designs
// ABOUTME: Tests frequency validation, stability and analytic responses
package filter

import (
	"errors"
	"math"
	"testing"
)

var quizFrequencies = []float64{100, 600, 1500, 5000, 8000, 10000}

func TestDesignRejectsInvalidFrequency(t *testing.T) {
	tests := []struct {
		name       string
		freq       float64
		sampleRate int
	}{
		{"zero", 0, 44100},
		{"negative", -100, 44100},
		{"nyquist", 22050, 44100},
		{"above nyquist", 30000, 44100},
		{"above nyquist at low rate", 10000, 16000},
		{"nan", math.NaN(), 44100},
		{"inf", math.Inf(1), 44100},
		{"bad sample rate", 1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, ft := range Types {
				_, err := Design(ft, tt.freq, tt.sampleRate)
				if !errors.Is(err, ErrInvalidFrequency) {
					t.Errorf("%s: expected ErrInvalidFrequency, got %v", ft, err)
				}
			}
		})
	}
}

func TestDesignStable(t *testing.T) {
	for _, sampleRate := range []int{22050, 44100, 48000} {
		for _, ft := range Types {
			for _, f := range quizFrequencies {
				c, err := Design(ft, f, sampleRate)
				if err != nil {
					t.Fatalf("%s %g Hz @ %d: %v", ft, f, sampleRate, err)
				}
				if !c.Stable() {
					t.Errorf("%s %g Hz @ %d: unstable coefficients %+v", ft, f, sampleRate, c)
				}
			}
		}
	}
}

func TestDesignUnknownType(t *testing.T) {
	if _, err := Design(Type(7), 1000, 44100); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestResponseAtCutoff(t *testing.T) {
	for _, ft := range []Type{Lowpass, Highpass} {
		db, err := Response(ft, 1000, 1000, 44100)
		if err != nil {
			t.Fatal(err)
		}
		// Butterworth is -3 dB per pass, the zero-phase pair doubles it
		if math.Abs(db+6.02) > 0.1 {
			t.Errorf("%s: expected about -6 dB at cutoff, got %.2f", ft, db)
		}
	}
}

func TestResponseOctaveBeyondCutoff(t *testing.T) {
	for _, f := range quizFrequencies {
		lp, err := Response(Lowpass, f, 2*f, 44100)
		if err != nil {
			t.Fatal(err)
		}
		if lp > -6 {
			t.Errorf("lowpass %g Hz: expected <= -6 dB one octave above, got %.2f", f, lp)
		}

		hp, err := Response(Highpass, f, f/2, 44100)
		if err != nil {
			t.Fatal(err)
		}
		if hp > -6 {
			t.Errorf("highpass %g Hz: expected <= -6 dB one octave below, got %.2f", f, hp)
		}
	}
}

func TestResponseAtCenter(t *testing.T) {
	for _, f := range quizFrequencies {
		notch, err := Response(Notch, f, f, 44100)
		if err != nil {
			t.Fatal(err)
		}
		if notch > -60 {
			t.Errorf("notch %g Hz: expected deep cut at center, got %.2f", f, notch)
		}

		band, err := Response(Bandpass, f, f, 44100)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(band) > 0.01 {
			t.Errorf("bandpass %g Hz: expected 0 dB at center, got %.2f", f, band)
		}
	}
}

func TestQ(t *testing.T) {
	if Q(Lowpass) != PassQ || Q(Highpass) != PassQ {
		t.Error("pass filters should use PassQ")
	}
	if Q(Notch) != BandQ || Q(Bandpass) != BandQ {
		t.Error("center filters should use BandQ")
	}
}

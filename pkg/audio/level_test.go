// ABOUTME: Tests for level helpers
// ABOUTME: Tests peak, RMS, DC removal and normalization
package audio

import (
	"errors"
	"math"
	"testing"
)

func TestPeakAndRMS(t *testing.T) {
	samples := []float64{0.5, -1, 0.5, 0}

	if p := Peak(samples); p != 1 {
		t.Errorf("expected peak 1, got %v", p)
	}

	want := math.Sqrt((0.25 + 1 + 0.25) / 4)
	if r := RMS(samples); math.Abs(r-want) > 1e-12 {
		t.Errorf("expected rms %v, got %v", want, r)
	}

	if Peak(nil) != 0 || RMS(nil) != 0 {
		t.Error("expected zero levels for empty input")
	}
}

func TestRemoveDC(t *testing.T) {
	buf := Buffer{Samples: []float64{1, 2, 3}, SampleRate: 8000}
	out := RemoveDC(buf)

	if m := Mean(out.Samples); math.Abs(m) > 1e-12 {
		t.Errorf("expected zero mean, got %v", m)
	}
	if buf.Samples[0] != 1 {
		t.Error("RemoveDC modified its input")
	}
}

func TestNormalizePeak(t *testing.T) {
	buf := Buffer{Samples: []float64{0.1, -0.2, 0.05}, SampleRate: 8000}

	out, err := NormalizePeak(buf, 0.4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p := Peak(out.Samples); math.Abs(p-0.4) > 1e-12 {
		t.Errorf("expected peak 0.4, got %v", p)
	}

	silent := Buffer{Samples: []float64{0, 0}, SampleRate: 8000}
	out, err = NormalizePeak(silent, 0.4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Peak(out.Samples) != 0 {
		t.Error("silent buffer should stay silent")
	}

	if _, err := NormalizePeak(Buffer{}, 0.4); !errors.Is(err, ErrEmptyBuffer) {
		t.Errorf("expected ErrEmptyBuffer, got %v", err)
	}
}

func TestMatchRMS(t *testing.T) {
	ref := Buffer{Samples: []float64{0.2, -0.2, 0.2, -0.2}, SampleRate: 8000}
	quiet := Buffer{Samples: []float64{0.01, -0.01, 0.02, -0.02}, SampleRate: 8000}

	out, err := MatchRMS(quiet, ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(RMS(out.Samples)-RMS(ref.Samples)) > 1e-12 {
		t.Errorf("expected rms %v, got %v", RMS(ref.Samples), RMS(out.Samples))
	}
}

func TestMatchRMSRespectsCeiling(t *testing.T) {
	ref := Buffer{Samples: []float64{0.9, -0.9, 0.9, -0.9}, SampleRate: 8000}
	spiky := Buffer{Samples: []float64{0, 0, 0, 0.5}, SampleRate: 8000}

	out, err := MatchRMS(spiky, ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p := Peak(out.Samples); p > PeakCeiling+1e-12 {
		t.Errorf("expected peak <= %v, got %v", PeakCeiling, p)
	}
}

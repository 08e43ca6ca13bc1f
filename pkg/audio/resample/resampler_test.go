// ABOUTME: Tests for the linear resampler
// ABOUTME: Tests output length, interpolation and passthrough
package resample

import (
	"math"
	"testing"

	"github.com/harperreed/earfilter-go/pkg/audio"
)

func TestResamplePassthrough(t *testing.T) {
	r := New(44100, 44100)
	input := []float64{0.1, 0.2, 0.3}
	out := r.Resample(input)

	if len(out) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(out))
	}
	out[0] = 9
	if input[0] != 0.1 {
		t.Error("passthrough should copy the input")
	}
}

func TestResampleUpsampleInterpolates(t *testing.T) {
	r := New(1000, 2000)
	out := r.Resample([]float64{0, 1, 0})

	expected := []float64{0, 0.5, 1, 0.5, 0}
	if len(out) != len(expected) {
		t.Fatalf("expected %d samples, got %d", len(expected), len(out))
	}
	for i := range expected {
		if math.Abs(out[i]-expected[i]) > 1e-12 {
			t.Errorf("sample %d: expected %v, got %v", i, expected[i], out[i])
		}
	}
}

func TestResampleDownsampleLength(t *testing.T) {
	tests := []struct {
		inputRate  int
		outputRate int
		inputLen   int
		expected   int
	}{
		{48000, 44100, 48000, 44100},
		{44100, 22050, 44100, 22050},
		{22050, 44100, 22050, 44099},
	}

	for _, tt := range tests {
		r := New(tt.inputRate, tt.outputRate)
		out := r.Resample(make([]float64, tt.inputLen))
		if len(out) != tt.expected {
			t.Errorf("%d->%d: expected %d samples, got %d",
				tt.inputRate, tt.outputRate, tt.expected, len(out))
		}
	}
}

func TestResampleBuffer(t *testing.T) {
	r := New(48000, 44100)
	buf := audio.Buffer{Samples: make([]float64, 4800), SampleRate: 48000}
	out := r.Buffer(buf)

	if out.SampleRate != 44100 {
		t.Errorf("expected sample rate 44100, got %d", out.SampleRate)
	}
	if d := out.Duration().Seconds(); math.Abs(d-0.1) > 0.001 {
		t.Errorf("expected about 0.1s, got %v", d)
	}
}

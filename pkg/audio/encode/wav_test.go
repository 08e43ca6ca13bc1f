// ABOUTME: Unit tests for WAV encoder
// ABOUTME: Round trips encoded files through the WAV decoder
package encode

import (
	"bytes"
	"math"
	"path/filepath"
	"testing"

	"github.com/harperreed/earfilter-go/pkg/audio"
	"github.com/harperreed/earfilter-go/pkg/audio/decode"
)

func TestWAVRoundTrip(t *testing.T) {
	buf := audio.Buffer{Samples: []float64{0, 0.25, -0.5, 0.75}, SampleRate: 22050}

	for _, depth := range []int{16, 24} {
		enc, err := NewWAV(depth)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var w bytes.Buffer
		if err := enc.Encode(&w, buf); err != nil {
			t.Fatalf("%d-bit: unexpected error: %v", depth, err)
		}
		if w.Len() != 44+len(buf.Samples)*depth/8 {
			t.Errorf("%d-bit: expected %d bytes, got %d", depth, 44+len(buf.Samples)*depth/8, w.Len())
		}

		got, err := decode.NewWAV().Decode(&w)
		if err != nil {
			t.Fatalf("%d-bit: decode failed: %v", depth, err)
		}
		if got.SampleRate != 22050 {
			t.Errorf("%d-bit: expected rate 22050, got %d", depth, got.SampleRate)
		}
		for i, s := range buf.Samples {
			if math.Abs(got.Samples[i]-s) > 1e-4 {
				t.Errorf("%d-bit sample %d: expected %v, got %v", depth, i, s, got.Samples[i])
			}
		}
	}
}

func TestWAVEncodeInvalidRate(t *testing.T) {
	enc, _ := NewWAV(16)
	if err := enc.Encode(&bytes.Buffer{}, audio.Buffer{Samples: []float64{0}}); err == nil {
		t.Error("expected error for zero sample rate")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	buf := audio.Buffer{Samples: make([]float64, 100), SampleRate: 8000}

	if err := WriteFile(path, buf, 16); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := decode.File(path)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got.Len() != 100 {
		t.Errorf("expected 100 samples, got %d", got.Len())
	}

	if err := WriteFile(path, buf, 8); err == nil {
		t.Error("expected error for unsupported bit depth")
	}
}

// ABOUTME: Quiz source tests
// ABOUTME: Verifies noise and file excerpts, lengths and error cases
package source

import (
	"errors"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/harperreed/earfilter-go/pkg/audio"
	"github.com/harperreed/earfilter-go/pkg/audio/encode"
)

func ramp(n, sampleRate int) audio.Buffer {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = float64(i) / float64(n)
	}
	return audio.Buffer{Samples: samples, SampleRate: sampleRate}
}

func TestNoiseBuffer(t *testing.T) {
	src, err := NewNoise(rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	buf, err := src.Buffer(2, 22050)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 44100 {
		t.Errorf("expected 44100 samples, got %d", buf.Len())
	}
	if buf.SampleRate != 22050 {
		t.Errorf("expected rate 22050, got %d", buf.SampleRate)
	}
	if src.Name() != "Pink Noise" {
		t.Errorf("expected name Pink Noise, got %q", src.Name())
	}
}

func TestNoiseNilRandom(t *testing.T) {
	if _, err := NewNoise(nil); err == nil {
		t.Error("expected error for nil rng")
	}
}

func TestFileExcerpt(t *testing.T) {
	full := ramp(44100*4, 44100)
	src, err := FromBuffer(full, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	buf, err := src.Buffer(1, 44100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 44100 {
		t.Fatalf("expected 44100 samples, got %d", buf.Len())
	}

	// The excerpt is a contiguous run of the ramp
	offset := int(buf.Samples[0]*float64(full.Len()) + 0.5)
	for i, s := range buf.Samples {
		if s != full.Samples[offset+i] {
			t.Fatalf("sample %d: expected %v, got %v", i, full.Samples[offset+i], s)
		}
	}

	buf.Samples[0] = 42
	if full.Samples[offset] == 42 {
		t.Error("excerpt shares storage with the decoded audio")
	}
}

func TestFileExcerptExactLength(t *testing.T) {
	src, err := FromBuffer(ramp(44100, 44100), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	buf, err := src.Buffer(1, 44100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Samples[0] != 0 {
		t.Errorf("expected excerpt from offset 0, got first sample %v", buf.Samples[0])
	}
}

func TestFileTooShort(t *testing.T) {
	src, err := FromBuffer(ramp(44100, 44100), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = src.Buffer(3, 44100)
	if !errors.Is(err, ErrTooShort) {
		t.Errorf("expected ErrTooShort, got %v", err)
	}
}

func TestFileResamples(t *testing.T) {
	src, err := FromBuffer(ramp(22050*3, 22050), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	buf, err := src.Buffer(2, 44100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.SampleRate != 44100 {
		t.Errorf("expected rate 44100, got %d", buf.SampleRate)
	}
	if buf.Len() != 88200 {
		t.Errorf("expected 88200 samples, got %d", buf.Len())
	}
}

func TestFromBufferValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name string
		buf  audio.Buffer
		rng  *rand.Rand
	}{
		{"nil rng", ramp(10, 44100), nil},
		{"zero rate", ramp(10, 0), rng},
		{"empty", audio.Buffer{SampleRate: 44100}, rng},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromBuffer(tt.buf, tt.rng); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNewFileFromWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.wav")
	if err := encode.WriteFile(path, ramp(16000, 8000), 16); err != nil {
		t.Fatalf("failed to write wav: %v", err)
	}

	src, err := NewFile(path, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.Name() != "clip.wav" {
		t.Errorf("expected name clip.wav, got %q", src.Name())
	}
	if src.Duration().Seconds() != 2 {
		t.Errorf("expected 2s, got %v", src.Duration())
	}

	if _, err := src.Buffer(3, 8000); !errors.Is(err, ErrTooShort) {
		t.Errorf("expected ErrTooShort, got %v", err)
	}
}

// ABOUTME: Decoder interface definition
// ABOUTME: Common interface for all audio decoders and extension dispatch
package decode

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/earfilter-go/pkg/audio"
)

// Decoder decodes a complete encoded stream to a mono buffer
type Decoder interface {
	Decode(r io.Reader) (audio.Buffer, error)
}

// ForPath picks a decoder from the file extension
func ForPath(path string) (Decoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".mp3":
		return NewMP3(), nil
	case ".flac":
		return NewFLAC(), nil
	case ".wav":
		return NewWAV(), nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .flac, .wav)", ext)
	}
}

// File decodes the audio file at path
func File(path string) (audio.Buffer, error) {
	dec, err := ForPath(path)
	if err != nil {
		return audio.Buffer{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer func() { _ = f.Close() }()

	buf, err := dec.Decode(f)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return buf, nil
}

// downmix averages interleaved frames into mono
func downmix(interleaved []float64, channels int) []float64 {
	if channels <= 1 {
		return interleaved
	}
	frames := len(interleaved) / channels
	mono := make([]float64, frames)
	for i := 0; i < frames; i++ {
		sum := 0.0
		for ch := 0; ch < channels; ch++ {
			sum += interleaved[i*channels+ch]
		}
		mono[i] = sum / float64(channels)
	}
	return mono
}

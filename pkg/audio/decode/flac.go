// ABOUTME: FLAC audio decoder
// ABOUTME: Decodes FLAC audio frame by frame to mono float samples
package decode

import (
	"errors"
	"fmt"
	"io"

	"github.com/harperreed/earfilter-go/pkg/audio"
	"github.com/mewkiz/flac"
)

// FLACDecoder decodes FLAC audio
type FLACDecoder struct{}

// NewFLAC creates a new FLAC decoder
func NewFLAC() Decoder {
	return &FLACDecoder{}
}

// Decode converts a FLAC stream to a mono buffer
func (d *FLACDecoder) Decode(r io.Reader) (audio.Buffer, error) {
	stream, err := flac.New(r)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("failed to decode FLAC: %w", err)
	}

	info := stream.Info
	channels := int(info.NChannels)
	bitDepth := int(info.BitsPerSample)
	if channels == 0 {
		return audio.Buffer{}, fmt.Errorf("FLAC stream has no channels")
	}

	samples := make([]float64, 0, info.NSamples)
	for {
		frame, err := stream.ParseNext()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return audio.Buffer{}, fmt.Errorf("FLAC frame error: %w", err)
		}

		for i := 0; i < int(frame.BlockSize); i++ {
			sum := 0.0
			for ch := 0; ch < channels; ch++ {
				sum += audio.SampleFromInt(frame.Subframes[ch].Samples[i], bitDepth)
			}
			samples = append(samples, sum/float64(channels))
		}
	}

	return audio.Buffer{
		Samples:    samples,
		SampleRate: int(info.SampleRate),
	}, nil
}

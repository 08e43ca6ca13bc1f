// ABOUTME: WAV audio decoder
// ABOUTME: Parses RIFF/WAVE PCM and float chunks to mono float samples
package decode

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/harperreed/earfilter-go/pkg/audio"
)

const (
	wavFormatPCM   = 1
	wavFormatFloat = 3
)

// WAVDecoder decodes RIFF/WAVE audio
type WAVDecoder struct{}

// NewWAV creates a new WAV decoder
func NewWAV() Decoder {
	return &WAVDecoder{}
}

type wavFormat struct {
	audioFormat uint16
	channels    int
	sampleRate  int
	bitDepth    int
}

// Decode converts a WAV stream to a mono buffer
func (d *WAVDecoder) Decode(r io.Reader) (audio.Buffer, error) {
	var header [12]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return audio.Buffer{}, fmt.Errorf("failed to read WAV header: %w", err)
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return audio.Buffer{}, fmt.Errorf("not a RIFF/WAVE file")
	}

	var format *wavFormat
	for {
		var chunk [8]byte
		if _, err := io.ReadFull(r, chunk[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return audio.Buffer{}, fmt.Errorf("WAV data chunk not found")
			}
			return audio.Buffer{}, fmt.Errorf("failed to read WAV chunk: %w", err)
		}
		id := string(chunk[0:4])
		size := int64(binary.LittleEndian.Uint32(chunk[4:8]))

		switch id {
		case "fmt ":
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return audio.Buffer{}, fmt.Errorf("failed to read WAV fmt chunk: %w", err)
			}
			if len(body) < 16 {
				return audio.Buffer{}, fmt.Errorf("WAV fmt chunk too short: %d bytes", len(body))
			}
			format = &wavFormat{
				audioFormat: binary.LittleEndian.Uint16(body[0:2]),
				channels:    int(binary.LittleEndian.Uint16(body[2:4])),
				sampleRate:  int(binary.LittleEndian.Uint32(body[4:8])),
				bitDepth:    int(binary.LittleEndian.Uint16(body[14:16])),
			}
		case "data":
			if format == nil {
				return audio.Buffer{}, fmt.Errorf("WAV data chunk before fmt chunk")
			}
			data := make([]byte, size)
			n, err := io.ReadFull(r, data)
			if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
				return audio.Buffer{}, fmt.Errorf("failed to read WAV data: %w", err)
			}
			return decodeWAVData(data[:n], format)
		default:
			if _, err := io.CopyN(io.Discard, r, size+size%2); err != nil {
				return audio.Buffer{}, fmt.Errorf("failed to skip WAV chunk %q: %w", id, err)
			}
		}

		// chunks are padded to an even size
		if id == "fmt " && size%2 == 1 {
			if _, err := io.CopyN(io.Discard, r, 1); err != nil {
				return audio.Buffer{}, fmt.Errorf("failed to skip WAV padding: %w", err)
			}
		}
	}
}

func decodeWAVData(data []byte, f *wavFormat) (audio.Buffer, error) {
	if f.channels < 1 {
		return audio.Buffer{}, fmt.Errorf("WAV has no channels")
	}

	bytesPerSample := f.bitDepth / 8
	var read func(b []byte) float64

	switch {
	case f.audioFormat == wavFormatPCM && f.bitDepth == 16:
		read = func(b []byte) float64 {
			return audio.SampleFromInt16(int16(binary.LittleEndian.Uint16(b)))
		}
	case f.audioFormat == wavFormatPCM && f.bitDepth == 24:
		read = func(b []byte) float64 {
			val := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
			// Sign extend from 24-bit to 32-bit
			if val&0x800000 != 0 {
				val |= ^0xFFFFFF
			}
			return audio.SampleFromInt(val, 24)
		}
	case f.audioFormat == wavFormatPCM && f.bitDepth == 32:
		read = func(b []byte) float64 {
			return audio.SampleFromInt(int32(binary.LittleEndian.Uint32(b)), 32)
		}
	case f.audioFormat == wavFormatFloat && f.bitDepth == 32:
		read = func(b []byte) float64 {
			return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
		}
	default:
		return audio.Buffer{}, fmt.Errorf("unsupported WAV encoding: format %d, %d-bit (supported: PCM 16/24/32, float 32)",
			f.audioFormat, f.bitDepth)
	}

	numSamples := len(data) / bytesPerSample
	numSamples -= numSamples % f.channels
	samples := make([]float64, numSamples)
	for i := range samples {
		samples[i] = read(data[i*bytesPerSample:])
	}

	return audio.Buffer{
		Samples:    downmix(samples, f.channels),
		SampleRate: f.sampleRate,
	}, nil
}

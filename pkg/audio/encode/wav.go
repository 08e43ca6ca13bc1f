// ABOUTME: WAV file encoder
// ABOUTME: Writes mono PCM buffers with a canonical 44-byte RIFF header
package encode

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/harperreed/earfilter-go/pkg/audio"
)

// WAVEncoder writes mono PCM WAV files
type WAVEncoder struct {
	pcm *PCMEncoder
}

// NewWAV creates a WAV encoder at bitDepth (16 or 24)
func NewWAV(bitDepth int) (*WAVEncoder, error) {
	pcm, err := NewPCM(bitDepth)
	if err != nil {
		return nil, err
	}
	return &WAVEncoder{pcm: pcm}, nil
}

// Encode writes buf as a WAV file
func (e *WAVEncoder) Encode(w io.Writer, buf audio.Buffer) error {
	if buf.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate: %d", buf.SampleRate)
	}

	data := e.pcm.Bytes(buf.Samples)
	blockAlign := e.pcm.BitDepth() / 8

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(36+len(data)))
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(header[22:24], 1) // mono
	binary.LittleEndian.PutUint32(header[24:28], uint32(buf.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(buf.SampleRate*blockAlign))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], uint16(e.pcm.BitDepth()))
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(len(data)))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write WAV header: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write WAV data: %w", err)
	}
	return nil
}

// WriteFile writes buf to path as a WAV file
func WriteFile(path string, buf audio.Buffer, bitDepth int) error {
	enc, err := NewWAV(bitDepth)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := enc.Encode(f, buf); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ABOUTME: PCM audio encoder
// ABOUTME: Encodes float samples to 16-bit or 24-bit PCM bytes
package encode

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/harperreed/earfilter-go/pkg/audio"
)

// max24Bit is the largest 24-bit sample value
const max24Bit = 1<<23 - 1

// PCMEncoder encodes raw little-endian PCM
type PCMEncoder struct {
	bitDepth int
}

// NewPCM creates a new PCM encoder
func NewPCM(bitDepth int) (*PCMEncoder, error) {
	if bitDepth != 16 && bitDepth != 24 {
		return nil, fmt.Errorf("unsupported bit depth: %d (supported: 16, 24)", bitDepth)
	}

	return &PCMEncoder{
		bitDepth: bitDepth,
	}, nil
}

// BitDepth returns the encoded bits per sample
func (e *PCMEncoder) BitDepth() int {
	return e.bitDepth
}

// Bytes converts samples to PCM bytes
func (e *PCMEncoder) Bytes(samples []float64) []byte {
	if e.bitDepth == 24 {
		// 24-bit PCM: 3 bytes per sample
		output := make([]byte, len(samples)*3)
		for i, sample := range samples {
			v := sampleTo24Bit(sample)
			output[i*3] = byte(v)
			output[i*3+1] = byte(v >> 8)
			output[i*3+2] = byte(v >> 16)
		}
		return output
	}

	// 16-bit PCM: 2 bytes per sample
	return PCM16(samples)
}

// Encode writes buf as raw PCM
func (e *PCMEncoder) Encode(w io.Writer, buf audio.Buffer) error {
	_, err := w.Write(e.Bytes(buf.Samples))
	return err
}

// PCM16 converts samples to signed 16-bit little-endian bytes
func PCM16(samples []float64) []byte {
	output := make([]byte, len(samples)*2)
	for i, sample := range samples {
		binary.LittleEndian.PutUint16(output[i*2:], uint16(audio.SampleToInt16(sample)))
	}
	return output
}

// sampleTo24Bit scales a float sample to the signed 24-bit range
func sampleTo24Bit(sample float64) int32 {
	scaled := math.Round(sample * (max24Bit + 1))
	if scaled > max24Bit {
		return max24Bit
	}
	if scaled < -max24Bit-1 {
		return -max24Bit - 1
	}
	return int32(scaled)
}

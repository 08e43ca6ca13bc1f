// ABOUTME: Applies a quiz filter to a fixed buffer
// ABOUTME: Zero-phase forward/backward pass followed by RMS level matching
package filter

import (
	"fmt"

	"github.com/harperreed/earfilter-go/pkg/audio"
)

// Apply filters a copy of buf with t at freq. The result has the same
// length and sample rate as buf, and its RMS matches buf's RMS.
func Apply(buf audio.Buffer, t Type, freq float64) (audio.Buffer, error) {
	if buf.Len() == 0 {
		return audio.Buffer{}, fmt.Errorf("filter %s: %w", t, audio.ErrEmptyBuffer)
	}

	coeffs, err := Design(t, freq, buf.SampleRate)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("filter %s: %w", t, err)
	}

	out := buf.Clone()
	section := NewSection(coeffs)
	section.ProcessBlock(out.Samples)
	section.Reset()
	section.ProcessBlockReverse(out.Samples)

	return audio.MatchRMS(out, buf)
}

// Response returns the zero-phase magnitude response in dB of t at freq,
// evaluated at probe (both passes included).
func Response(t Type, freq, probe float64, sampleRate int) (float64, error) {
	coeffs, err := Design(t, freq, sampleRate)
	if err != nil {
		return 0, err
	}
	return 2 * coeffs.Response(probe, sampleRate), nil
}

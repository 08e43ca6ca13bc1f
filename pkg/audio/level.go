// ABOUTME: Level measurement and normalization helpers
// ABOUTME: Peak, RMS, DC removal and gain matching built on gonum floats
package audio

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// PeakCeiling is the highest peak MatchRMS lets through before scaling down.
const PeakCeiling = 0.99

// ErrEmptyBuffer is returned by helpers that need at least one sample.
var ErrEmptyBuffer = errors.New("audio: empty buffer")

// Peak returns the largest absolute sample value
func Peak(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	return floats.Norm(samples, math.Inf(1))
}

// RMS returns the root-mean-square level
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	return math.Sqrt(floats.Dot(samples, samples) / float64(len(samples)))
}

// Mean returns the arithmetic mean (DC offset)
func Mean(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	return floats.Sum(samples) / float64(len(samples))
}

// RemoveDC returns a copy of buf with its mean subtracted
func RemoveDC(buf Buffer) Buffer {
	out := buf.Clone()
	floats.AddConst(-Mean(out.Samples), out.Samples)
	return out
}

// NormalizePeak scales a copy of buf so its peak equals target.
// A silent buffer is returned unchanged.
func NormalizePeak(buf Buffer, target float64) (Buffer, error) {
	if len(buf.Samples) == 0 {
		return Buffer{}, ErrEmptyBuffer
	}
	out := buf.Clone()
	peak := Peak(out.Samples)
	if peak < 1e-9 {
		return out, nil
	}
	floats.Scale(target/peak, out.Samples)
	return out, nil
}

// MatchRMS scales a copy of buf so its RMS equals reference's RMS, then
// scales down further if the peak would exceed PeakCeiling.
func MatchRMS(buf, reference Buffer) (Buffer, error) {
	if len(buf.Samples) == 0 {
		return Buffer{}, ErrEmptyBuffer
	}
	out := buf.Clone()
	rms := RMS(out.Samples)
	if rms < 1e-12 {
		return out, nil
	}
	floats.Scale(RMS(reference.Samples)/rms, out.Samples)

	if peak := Peak(out.Samples); peak > PeakCeiling {
		floats.Scale(PeakCeiling/peak, out.Samples)
	}
	return out, nil
}

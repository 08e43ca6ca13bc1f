// ABOUTME: FFT power spectrum and band level measurement
// ABOUTME: Uses go-dsp fft and Hann window over the leading power-of-two block
package spectrum

import (
	"math"
	"math/cmplx"

	"github.com/harperreed/earfilter-go/pkg/audio"
	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

// floorDB is reported for bands with no energy
const floorDB = -200.0

// Spectrum holds one-sided power per FFT bin
type Spectrum struct {
	Power []float64 // |X[k]|^2 for k in [0, N/2]
	BinHz float64
}

// Band is a frequency range [Low, High) with a nominal center
type Band struct {
	Center float64
	Low    float64
	High   float64
}

// Analyze computes the Hann-windowed power spectrum of the leading
// power-of-two block of buf.
func Analyze(buf audio.Buffer) Spectrum {
	n := blockSize(len(buf.Samples))
	if n < 2 || buf.SampleRate <= 0 {
		return Spectrum{}
	}

	x := make([]float64, n)
	copy(x, buf.Samples[:n])
	window.Apply(x, window.Hann)

	coeffs := fft.FFTReal(x)
	power := make([]float64, n/2+1)
	for k := range power {
		mag := cmplx.Abs(coeffs[k])
		power[k] = mag * mag
	}

	return Spectrum{
		Power: power,
		BinHz: float64(buf.SampleRate) / float64(n),
	}
}

// BandPower returns the mean bin power inside band
func (s Spectrum) BandPower(b Band) float64 {
	if s.BinHz == 0 {
		return 0
	}
	lo := int(math.Ceil(b.Low / s.BinHz))
	hi := int(math.Ceil(b.High / s.BinHz))
	if lo < 1 {
		lo = 1
	}
	if hi > len(s.Power) {
		hi = len(s.Power)
	}
	if hi <= lo {
		return 0
	}

	sum := 0.0
	for k := lo; k < hi; k++ {
		sum += s.Power[k]
	}
	return sum / float64(hi-lo)
}

// Levels returns the mean power density of each band in dB
func (s Spectrum) Levels(bands []Band) []float64 {
	levels := make([]float64, len(bands))
	for i, b := range bands {
		levels[i] = toDB(s.BandPower(b))
	}
	return levels
}

// Response returns the per-band level difference filtered - original in dB
func Response(original, filtered audio.Buffer, bands []Band) []float64 {
	before := Analyze(original).Levels(bands)
	after := Analyze(filtered).Levels(bands)

	diff := make([]float64, len(bands))
	for i := range bands {
		diff[i] = after[i] - before[i]
	}
	return diff
}

// OctaveBands returns full-octave bands centered on 31.25 Hz * 2^k whose
// upper edge stays below Nyquist.
func OctaveBands(sampleRate int) []Band {
	nyquist := float64(sampleRate) / 2
	var bands []Band
	for center := 31.25; center*math.Sqrt2 < nyquist; center *= 2 {
		bands = append(bands, OctaveBand(center))
	}
	return bands
}

// OctaveBand returns the one-octave band around center
func OctaveBand(center float64) Band {
	return Band{
		Center: center,
		Low:    center / math.Sqrt2,
		High:   center * math.Sqrt2,
	}
}

// SlopePerOctave fits a least-squares line through levels against
// log2(band center) and returns its slope in dB per octave.
func SlopePerOctave(bands []Band, levels []float64) float64 {
	n := float64(len(bands))
	if n < 2 {
		return 0
	}

	var sx, sy, sxx, sxy float64
	for i, b := range bands {
		x := math.Log2(b.Center)
		y := levels[i]
		sx += x
		sy += y
		sxx += x * x
		sxy += x * y
	}

	denom := n*sxx - sx*sx
	if denom == 0 {
		return 0
	}
	return (n*sxy - sx*sy) / denom
}

func toDB(power float64) float64 {
	if power <= 0 {
		return floorDB
	}
	return 10 * math.Log10(power)
}

func blockSize(n int) int {
	size := 1
	for size*2 <= n {
		size *= 2
	}
	if size > n {
		return 0
	}
	return size
}

// ABOUTME: Biquad coefficients and section processing
// ABOUTME: Direct Form II Transposed section with magnitude response
package filter

import (
	"math"
	"math/cmplx"
)

// Coefficients holds a normalized (a0 = 1) second-order section
type Coefficients struct {
	B0, B1, B2 float64 // feedforward
	A1, A2     float64 // feedback
}

// Section is a biquad with its delay-line state
type Section struct {
	Coefficients

	d0, d1 float64
}

// NewSection returns a section with zero state
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one sample (Direct Form II Transposed)
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y
	return y
}

// ProcessBlock filters buf in place
func (s *Section) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = s.ProcessSample(x)
	}
}

// ProcessBlockReverse filters buf in place from the last sample to the first
func (s *Section) ProcessBlockReverse(buf []float64) {
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i] = s.ProcessSample(buf[i])
	}
}

// Reset clears the delay line
func (s *Section) Reset() {
	s.d0 = 0
	s.d1 = 0
}

// Response returns the magnitude response in dB at freq for one pass
func (c Coefficients) Response(freq float64, sampleRate int) float64 {
	w := 2 * math.Pi * freq / float64(sampleRate)
	z1 := cmplx.Exp(complex(0, -w))
	z2 := z1 * z1

	num := complex(c.B0, 0) + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2
	den := 1 + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2

	mag := cmplx.Abs(num / den)
	if mag < 1e-12 {
		return -240
	}
	return 20 * math.Log10(mag)
}

// Stable reports whether both poles lie inside the unit circle
func (c Coefficients) Stable() bool {
	return math.Abs(c.A2) < 1 && math.Abs(c.A1) < 1+c.A2
}

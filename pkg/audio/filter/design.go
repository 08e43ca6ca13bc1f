// ABOUTME: RBJ biquad designs for the quiz filters
// ABOUTME: Lowpass/highpass at Butterworth Q, notch/bandpass at BandQ
package filter

import (
	"errors"
	"fmt"
	"math"
)

const (
	// PassQ is the Butterworth quality factor used for lowpass and highpass
	PassQ = 1 / math.Sqrt2

	// BandQ is the quality factor used for notch and bandpass
	BandQ = 3.0
)

// ErrInvalidFrequency is returned for frequencies outside (0, sampleRate/2)
var ErrInvalidFrequency = errors.New("invalid frequency")

// Q returns the quality factor used for t
func Q(t Type) float64 {
	if t.HasCenter() {
		return BandQ
	}
	return PassQ
}

// Design returns the biquad coefficients for t at freq
func Design(t Type, freq float64, sampleRate int) (Coefficients, error) {
	w0, err := normalizedW0(freq, sampleRate)
	if err != nil {
		return Coefficients{}, err
	}

	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * Q(t))

	switch t {
	case Lowpass:
		return normalize((1-cw)/2, 1-cw, (1-cw)/2, 1+alpha, -2*cw, 1-alpha), nil
	case Highpass:
		return normalize((1+cw)/2, -(1 + cw), (1+cw)/2, 1+alpha, -2*cw, 1-alpha), nil
	case Notch:
		return normalize(1, -2*cw, 1, 1+alpha, -2*cw, 1-alpha), nil
	case Bandpass:
		// constant 0 dB peak gain
		return normalize(alpha, 0, -alpha, 1+alpha, -2*cw, 1-alpha), nil
	default:
		return Coefficients{}, fmt.Errorf("unknown filter type: %v", t)
	}
}

// ValidateFrequency checks 0 < freq < sampleRate/2
func ValidateFrequency(freq float64, sampleRate int) error {
	_, err := normalizedW0(freq, sampleRate)
	return err
}

func normalizedW0(freq float64, sampleRate int) (float64, error) {
	if sampleRate <= 0 {
		return 0, fmt.Errorf("%w: sample rate must be > 0: %d", ErrInvalidFrequency, sampleRate)
	}
	nyquist := float64(sampleRate) / 2
	if math.IsNaN(freq) || math.IsInf(freq, 0) || freq <= 0 || freq >= nyquist {
		return 0, fmt.Errorf("%w: %g Hz is outside (0, %g) Hz", ErrInvalidFrequency, freq, nyquist)
	}
	return 2 * math.Pi * freq / float64(sampleRate), nil
}

func normalize(b0, b1, b2, a0, a1, a2 float64) Coefficients {
	return Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}

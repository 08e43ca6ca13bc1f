// ABOUTME: Filter type enumeration
// ABOUTME: Closed set of quiz filters with parsing and display names
package filter

import (
	"fmt"
	"strings"
)

// Type is one of the four quiz filters
type Type int

const (
	Lowpass Type = iota
	Highpass
	Notch
	Bandpass
)

// Types lists every filter type in display order
var Types = []Type{Lowpass, Highpass, Notch, Bandpass}

func (t Type) String() string {
	switch t {
	case Lowpass:
		return "Lowpass"
	case Highpass:
		return "Highpass"
	case Notch:
		return "Notch"
	case Bandpass:
		return "Bandpass"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Valid reports whether t is a known filter type
func (t Type) Valid() bool {
	return t >= Lowpass && t <= Bandpass
}

// HasCenter reports whether the filter is frequency-selective around a center
func (t Type) HasCenter() bool {
	return t == Notch || t == Bandpass
}

// ParseType parses a filter name or one of its abbreviations
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lp", "low", "lowpass":
		return Lowpass, nil
	case "hp", "high", "highpass":
		return Highpass, nil
	case "n", "notch":
		return Notch, nil
	case "bp", "band", "bandpass":
		return Bandpass, nil
	}
	return 0, fmt.Errorf("unknown filter type: %q", s)
}

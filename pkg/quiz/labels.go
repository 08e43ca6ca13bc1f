// ABOUTME: Human labels for quiz frequencies
// ABOUTME: Maps frequencies to Low..Very High and formats choices
package quiz

import (
	"fmt"
	"math"
)

var bandLabels = []struct {
	freq  float64
	label string
}{
	{100, "Low"},
	{600, "Low-Mid"},
	{1500, "Mid"},
	{5000, "High-Mid"},
	{8000, "High"},
	{10000, "Very High"},
}

// FrequencyLabel returns the band label closest to freq on a log scale
func FrequencyLabel(freq float64) string {
	if freq <= 0 {
		return ""
	}
	best := 0
	bestDist := math.Inf(1)
	for i, b := range bandLabels {
		d := math.Abs(math.Log2(freq / b.freq))
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return bandLabels[best].label
}

// FormatFrequency renders freq as "1500 Hz (Mid)"
func FormatFrequency(freq float64) string {
	return fmt.Sprintf("%.0f Hz (%s)", freq, FrequencyLabel(freq))
}

// ABOUTME: Simple linear resampler for converting audio sample rates
// ABOUTME: Used to convert decoded uploads to the quiz sample rate
package resample

import (
	"github.com/harperreed/earfilter-go/pkg/audio"
)

// Resampler performs linear interpolation to convert between sample rates
type Resampler struct {
	inputRate  int
	outputRate int
	ratio      float64
}

// New creates a new resampler
func New(inputRate, outputRate int) *Resampler {
	return &Resampler{
		inputRate:  inputRate,
		outputRate: outputRate,
		ratio:      float64(inputRate) / float64(outputRate),
	}
}

// OutputSamplesNeeded calculates how many output samples a whole input produces
func (r *Resampler) OutputSamplesNeeded(inputSamples int) int {
	if inputSamples < 2 {
		return inputSamples
	}
	return int(float64(inputSamples-1)/r.ratio) + 1
}

// Resample converts a complete mono signal to the output rate
func (r *Resampler) Resample(input []float64) []float64 {
	if r.inputRate == r.outputRate || len(input) < 2 {
		out := make([]float64, len(input))
		copy(out, input)
		return out
	}

	output := make([]float64, r.OutputSamplesNeeded(len(input)))
	last := len(input) - 1

	for i := range output {
		pos := float64(i) * r.ratio
		idx := int(pos)
		if idx >= last {
			output[i] = input[last]
			continue
		}

		// Linear interpolation
		frac := pos - float64(idx)
		output[i] = input[idx]*(1.0-frac) + input[idx+1]*frac
	}

	return output
}

// Buffer resamples buf to the output rate
func (r *Resampler) Buffer(buf audio.Buffer) audio.Buffer {
	return audio.Buffer{
		Samples:    r.Resample(buf.Samples),
		SampleRate: r.outputRate,
	}
}

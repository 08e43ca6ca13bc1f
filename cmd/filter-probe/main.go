// ABOUTME: Filter probe tool
// ABOUTME: Measures every quiz filter against pink noise or an audio file
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/earfilter-go/pkg/audio"
	"github.com/harperreed/earfilter-go/pkg/audio/encode"
	"github.com/harperreed/earfilter-go/pkg/audio/filter"
	"github.com/harperreed/earfilter-go/pkg/audio/spectrum"
	"github.com/harperreed/earfilter-go/pkg/quiz"
	"github.com/harperreed/earfilter-go/pkg/source"
)

var (
	sampleRate = flag.Int("sample-rate", quiz.DefaultSampleRate, "Sample rate in Hz")
	duration   = flag.Float64("duration", quiz.DefaultDuration, "Sample duration in seconds")
	seed       = flag.Int64("seed", 1, "Random seed")
	audioFile  = flag.String("file", "", "Probe with an audio file instead of pink noise")
	minAtten   = flag.Float64("min-atten", 6, "Required attenuation in dB at the probe band")
	check      = flag.Bool("check", false, "Exit non-zero when a filter misses -min-atten")
	outDir     = flag.String("out", "", "Write source and filtered WAV files to this directory")
)

func main() {
	flag.Parse()

	src, name, err := openSource()
	if err != nil {
		log.Fatalf("Failed to open source: %v", err)
	}

	buf, err := src.Buffer(*duration, *sampleRate)
	if err != nil {
		log.Fatalf("Failed to get audio: %v", err)
	}

	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			log.Fatalf("Failed to create %s: %v", *outDir, err)
		}
		if err := encode.WriteFile(filepath.Join(*outDir, "source.wav"), buf, 16); err != nil {
			log.Fatalf("Failed to write source: %v", err)
		}
	}

	bands := spectrum.OctaveBands(*sampleRate)
	levels := spectrum.Analyze(buf).Levels(bands)
	fmt.Printf("Source: %s, %.1fs at %dHz, peak %.2f, rms %.3f, slope %+.2f dB/oct\n\n",
		name, buf.Duration().Seconds(), buf.SampleRate, audio.Peak(buf.Samples), audio.RMS(buf.Samples),
		spectrum.SlopePerOctave(bands, levels))

	fmt.Printf("%-9s %-22s %-10s %10s %10s  %s\n", "TYPE", "FREQUENCY", "PROBE", "MEASURED", "DESIGNED", "")

	failures := 0
	for _, t := range filter.Types {
		for _, f := range quiz.DefaultFrequencies {
			ok, err := probe(buf, t, f)
			if err != nil {
				fmt.Printf("%-9s %-22s %v\n", t, quiz.FormatFrequency(f), err)
				failures++
				continue
			}
			if !ok {
				failures++
			}
		}
	}

	if failures > 0 {
		fmt.Printf("\n%d filter(s) below %.1f dB attenuation\n", failures, *minAtten)
		if *check {
			os.Exit(1)
		}
	}
}

func openSource() (quiz.SourceProvider, string, error) {
	rng := rand.New(rand.NewSource(*seed))
	if *audioFile != "" {
		src, err := source.NewFile(*audioFile, rng)
		if err != nil {
			return nil, "", err
		}
		return src, src.Name(), nil
	}
	src, err := source.NewNoise(rng)
	if err != nil {
		return nil, "", err
	}
	return src, src.Name(), nil
}

// probe filters buf and compares the probe band against the source
func probe(buf audio.Buffer, t filter.Type, freq float64) (bool, error) {
	filtered, err := filter.Apply(buf, t, freq)
	if err != nil {
		return false, err
	}

	probeFreq := probeFrequency(t, freq, buf.SampleRate)
	band := spectrum.OctaveBand(probeFreq)
	measured := spectrum.Response(buf, filtered, []spectrum.Band{band})[0]

	designed, err := filter.Response(t, freq, probeFreq, buf.SampleRate)
	if err != nil {
		return false, err
	}

	// Bandpass is judged by how far the probe band falls below its center
	atten := -measured
	if t == filter.Bandpass {
		center := spectrum.Response(buf, filtered, []spectrum.Band{spectrum.OctaveBand(freq)})[0]
		atten = center - measured
	}

	if *outDir != "" {
		name := fmt.Sprintf("%s-%.0fHz.wav", strings.ToLower(t.String()), freq)
		if err := encode.WriteFile(filepath.Join(*outDir, name), filtered, 16); err != nil {
			return false, err
		}
	}

	ok := atten >= *minAtten
	mark := "ok"
	if !ok {
		mark = "LOW"
	}

	fmt.Printf("%-9s %-22s %-10s %+9.1fdB %+9.1fdB  %s\n",
		t, quiz.FormatFrequency(freq), fmt.Sprintf("%.0f Hz", probeFreq), measured, designed, mark)
	return ok, nil
}

// probeFrequency picks where each filter should remove energy
func probeFrequency(t filter.Type, freq float64, sampleRate int) float64 {
	nyquist := float64(sampleRate) / 2
	switch t {
	case filter.Lowpass:
		if freq*2*math.Sqrt2 < nyquist {
			return freq * 2
		}
		return freq * 1.5
	case filter.Highpass:
		return freq / 2
	case filter.Bandpass:
		if freq*4*math.Sqrt2 < nyquist {
			return freq * 4
		}
		return freq / 4
	default:
		return freq
	}
}

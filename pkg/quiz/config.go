// ABOUTME: Quiz configuration
// ABOUTME: Source kinds, quiz modes, defaults and validation
package quiz

import (
	"fmt"
	"strings"

	"github.com/harperreed/earfilter-go/pkg/audio"
	"github.com/harperreed/earfilter-go/pkg/audio/filter"
)

const (
	// DefaultSampleRate is the quiz sample rate
	DefaultSampleRate = 44100

	// DefaultDuration is the default sample length in seconds
	DefaultDuration = 3.0

	// DefaultQuestionCount is the number of questions per session
	DefaultQuestionCount = 10

	// MaxFrequencies bounds the allowed set so every choice has a single-digit key
	MaxFrequencies = 9
)

// Durations lists the allowed sample lengths in seconds
var Durations = []float64{1, 2, 3, 5}

// DefaultFrequencies is the allowed center and cutoff frequency set in Hz
var DefaultFrequencies = []float64{100, 600, 1500, 5000, 8000, 10000}

// SourceProvider supplies the unfiltered audio for a question
type SourceProvider interface {
	// Buffer returns exactly durationSeconds of mono audio at sampleRate.
	// It fails with ErrSourceTooShort when not enough audio is available.
	Buffer(durationSeconds float64, sampleRate int) (audio.Buffer, error)
}

// SourceKind names where question audio comes from
type SourceKind int

const (
	SourcePinkNoise SourceKind = iota
	SourceUploaded
)

func (k SourceKind) String() string {
	switch k {
	case SourcePinkNoise:
		return "pink"
	case SourceUploaded:
		return "file"
	default:
		return fmt.Sprintf("SourceKind(%d)", int(k))
	}
}

// ParseSourceKind parses "pink" or "file"
func ParseSourceKind(s string) (SourceKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pink", "noise", "pink-noise":
		return SourcePinkNoise, nil
	case "file", "upload", "uploaded":
		return SourceUploaded, nil
	default:
		return 0, fmt.Errorf("%w: unknown source %q (use pink or file)", ErrInvalidConfig, s)
	}
}

// Mode selects which filter types questions use
type Mode int

const (
	// ModeRandom draws from all four filter types
	ModeRandom Mode = iota
	// ModeFocus draws only from notch and bandpass
	ModeFocus
)

func (m Mode) String() string {
	switch m {
	case ModeRandom:
		return "random"
	case ModeFocus:
		return "focus"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Types returns the filter types the mode draws from
func (m Mode) Types() []filter.Type {
	switch m {
	case ModeRandom:
		return []filter.Type{filter.Lowpass, filter.Highpass, filter.Notch, filter.Bandpass}
	case ModeFocus:
		return []filter.Type{filter.Notch, filter.Bandpass}
	default:
		return nil
	}
}

// ParseMode parses "random" or "focus"
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random", "all":
		return ModeRandom, nil
	case "focus", "notch-bandpass", "nb":
		return ModeFocus, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q (use random or focus)", ErrInvalidConfig, s)
	}
}

// Config holds quiz settings
type Config struct {
	SampleRate        int
	DurationSeconds   float64
	SourceKind        SourceKind
	Source            SourceProvider
	Mode              Mode
	ShowCorrectAnswer bool
	ShowFilterDetails bool
	QuestionCount     int
	Frequencies       []float64
	GradeCutoff       bool
}

// DefaultConfig returns the default settings without a source
func DefaultConfig() Config {
	freqs := make([]float64, len(DefaultFrequencies))
	copy(freqs, DefaultFrequencies)

	return Config{
		SampleRate:        DefaultSampleRate,
		DurationSeconds:   DefaultDuration,
		SourceKind:        SourcePinkNoise,
		Mode:              ModeRandom,
		ShowCorrectAnswer: true,
		ShowFilterDetails: false,
		QuestionCount:     DefaultQuestionCount,
		Frequencies:       freqs,
	}
}

// Validate checks the configuration
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be > 0: %d", ErrInvalidConfig, c.SampleRate)
	}
	if !validDuration(c.DurationSeconds) {
		return fmt.Errorf("%w: duration %gs not in %v", ErrInvalidConfig, c.DurationSeconds, Durations)
	}
	if c.SourceKind != SourcePinkNoise && c.SourceKind != SourceUploaded {
		return fmt.Errorf("%w: unknown source kind %v", ErrInvalidConfig, c.SourceKind)
	}
	if c.Source == nil {
		return fmt.Errorf("%w: no audio source", ErrInvalidConfig)
	}
	if len(c.Mode.Types()) == 0 {
		return fmt.Errorf("%w: unknown mode %v", ErrInvalidConfig, c.Mode)
	}
	if c.QuestionCount <= 0 {
		return fmt.Errorf("%w: question count must be > 0: %d", ErrInvalidConfig, c.QuestionCount)
	}
	if len(c.Frequencies) == 0 {
		return fmt.Errorf("%w: empty frequency set", ErrInvalidConfig)
	}
	if len(c.Frequencies) > MaxFrequencies {
		return fmt.Errorf("%w: %d frequencies, at most %d allowed", ErrInvalidConfig, len(c.Frequencies), MaxFrequencies)
	}

	seen := make(map[float64]bool, len(c.Frequencies))
	for _, f := range c.Frequencies {
		if err := filter.ValidateFrequency(f, c.SampleRate); err != nil {
			return err
		}
		if seen[f] {
			return fmt.Errorf("%w: duplicate frequency %g Hz", ErrInvalidConfig, f)
		}
		seen[f] = true
	}

	return nil
}

func validDuration(d float64) bool {
	for _, allowed := range Durations {
		if d == allowed {
			return true
		}
	}
	return false
}

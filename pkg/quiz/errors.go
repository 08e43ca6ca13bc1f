// ABOUTME: Quiz error values
// ABOUTME: Sentinels for configuration, source, frequency and state errors
package quiz

import (
	"errors"

	"github.com/harperreed/earfilter-go/pkg/audio/filter"
	"github.com/harperreed/earfilter-go/pkg/source"
)

var (
	// ErrSourceTooShort is returned when the source audio cannot fill a question
	ErrSourceTooShort = source.ErrTooShort

	// ErrInvalidFrequency is returned for frequencies outside (0, sampleRate/2)
	ErrInvalidFrequency = filter.ErrInvalidFrequency

	// ErrInvalidTransition is returned when an operation is not allowed in the current status
	ErrInvalidTransition = errors.New("invalid session transition")

	// ErrInvalidConfig is returned by Config.Validate
	ErrInvalidConfig = errors.New("invalid quiz config")

	// ErrInvalidAttempt is returned for attempts naming an unknown filter type
	ErrInvalidAttempt = errors.New("invalid attempt")
)

// ABOUTME: Uploaded audio file quiz source
// ABOUTME: Decodes once, resamples on demand and cuts random excerpts
package source

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"path/filepath"
	"sync"
	"time"

	"github.com/harperreed/earfilter-go/pkg/audio"
	"github.com/harperreed/earfilter-go/pkg/audio/decode"
	"github.com/harperreed/earfilter-go/pkg/audio/resample"
)

// ErrTooShort is returned when the audio is shorter than the requested excerpt
var ErrTooShort = errors.New("source audio too short")

// File serves excerpts of one decoded audio file
type File struct {
	mu      sync.Mutex
	name    string
	decoded audio.Buffer
	byRate  map[int]audio.Buffer
	rng     *rand.Rand
}

// NewFile decodes path and returns a source drawing offsets from rng
func NewFile(path string, rng *rand.Rand) (*File, error) {
	buf, err := decode.File(path)
	if err != nil {
		return nil, err
	}

	log.Printf("Loaded %s: %d samples at %dHz (%v)", path, buf.Len(), buf.SampleRate, buf.Duration())

	f, err := FromBuffer(buf, rng)
	if err != nil {
		return nil, err
	}
	f.name = filepath.Base(path)
	return f, nil
}

// FromBuffer wraps already decoded mono audio
func FromBuffer(buf audio.Buffer, rng *rand.Rand) (*File, error) {
	if rng == nil {
		return nil, errors.New("source: nil random source")
	}
	if buf.SampleRate <= 0 {
		return nil, fmt.Errorf("source: invalid sample rate %d", buf.SampleRate)
	}
	if buf.Len() == 0 {
		return nil, audio.ErrEmptyBuffer
	}

	return &File{
		name:    "Uploaded Audio",
		decoded: buf,
		byRate:  map[int]audio.Buffer{buf.SampleRate: buf},
		rng:     rng,
	}, nil
}

// Buffer returns a durationSeconds excerpt at sampleRate from a random offset
func (f *File) Buffer(durationSeconds float64, sampleRate int) (audio.Buffer, error) {
	if durationSeconds <= 0 || sampleRate <= 0 {
		return audio.Buffer{}, fmt.Errorf("source: invalid request %.2fs at %dHz", durationSeconds, sampleRate)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	full, ok := f.byRate[sampleRate]
	if !ok {
		full = resample.New(f.decoded.SampleRate, sampleRate).Buffer(f.decoded)
		f.byRate[sampleRate] = full
	}

	n := audio.SamplesFor(durationSeconds, sampleRate)
	if full.Len() < n {
		return audio.Buffer{}, fmt.Errorf("%w: have %v, need %.2fs", ErrTooShort, full.Duration(), durationSeconds)
	}

	offset := f.rng.Intn(full.Len() - n + 1)
	return full.Slice(offset, n), nil
}

// Duration returns the length of the decoded audio
func (f *File) Duration() time.Duration {
	return f.decoded.Duration()
}

// Name describes the source for logs and the UI
func (f *File) Name() string {
	return f.name
}

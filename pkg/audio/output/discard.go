// ABOUTME: Discarding audio output
// ABOUTME: Accepts buffers without a device, for tests and muted runs
package output

import (
	"context"
	"sync"

	"github.com/harperreed/earfilter-go/pkg/audio"
)

// Discard drops every buffer and remembers what it was asked to play
type Discard struct {
	mu     sync.Mutex
	played []audio.Buffer
	volume int
	muted  bool
}

// NewDiscard creates a discarding output
func NewDiscard() *Discard {
	return &Discard{volume: 100}
}

// Play records buf and returns immediately unless ctx is already done
func (d *Discard) Play(ctx context.Context, buf audio.Buffer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.played = append(d.played, buf)
	return nil
}

// Played returns the buffers passed to Play, oldest first
func (d *Discard) Played() []audio.Buffer {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]audio.Buffer, len(d.played))
	copy(out, d.played)
	return out
}

// SetVolume sets the volume (0-100)
func (d *Discard) SetVolume(volume int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.volume = clampVolume(volume)
}

// SetMuted sets mute state
func (d *Discard) SetMuted(muted bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.muted = muted
}

// GetVolume returns current volume
func (d *Discard) GetVolume() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.volume
}

// IsMuted returns mute state
func (d *Discard) IsMuted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.muted
}

// Close releases nothing
func (d *Discard) Close() error {
	return nil
}

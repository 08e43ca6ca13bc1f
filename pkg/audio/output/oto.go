// ABOUTME: Oto-based audio output implementation
// ABOUTME: Plays mono buffers with software volume control using oto library
package output

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/harperreed/earfilter-go/pkg/audio"
	"github.com/harperreed/earfilter-go/pkg/audio/encode"
	"github.com/harperreed/earfilter-go/pkg/audio/resample"
)

// pollInterval is how often Play checks whether the player drained
const pollInterval = 10 * time.Millisecond

// Oto output implementation using oto library
type Oto struct {
	mu         sync.Mutex
	otoCtx     *oto.Context
	sampleRate int
	volume     int
	muted      bool
}

// NewOto creates a new Oto output
func NewOto() Output {
	return &Oto{
		volume: 100,
	}
}

// open initializes the device context on first use
func (o *Oto) open(sampleRate int) error {
	if o.otoCtx != nil {
		return nil
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to create oto context: %w", err)
	}

	<-readyChan

	o.otoCtx = ctx
	o.sampleRate = sampleRate

	log.Printf("Audio output initialized: %dHz mono", sampleRate)

	return nil
}

// Play outputs a buffer and blocks until it drained or ctx is done
func (o *Oto) Play(ctx context.Context, buf audio.Buffer) error {
	o.mu.Lock()
	if err := o.open(buf.SampleRate); err != nil {
		o.mu.Unlock()
		return err
	}

	// oto allows one context per process, so other rates are converted
	if buf.SampleRate != o.sampleRate {
		log.Printf("Resampling playback buffer %dHz -> %dHz", buf.SampleRate, o.sampleRate)
		buf = resample.New(buf.SampleRate, o.sampleRate).Buffer(buf)
	}

	pcm := encode.PCM16(applyVolume(buf.Samples, o.volume, o.muted))
	player := o.otoCtx.NewPlayer(bytes.NewReader(pcm))
	o.mu.Unlock()

	defer func() { _ = player.Close() }()
	player.Play()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			return ctx.Err()
		case <-ticker.C:
		}
	}

	return nil
}

// Close releases output resources
func (o *Oto) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.otoCtx != nil {
		if err := o.otoCtx.Suspend(); err != nil {
			return fmt.Errorf("failed to suspend oto context: %w", err)
		}
	}
	return nil
}

// SetVolume sets the volume (0-100)
func (o *Oto) SetVolume(volume int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.volume = clampVolume(volume)
	log.Printf("Volume set to %d", o.volume)
}

// SetMuted sets mute state
func (o *Oto) SetMuted(muted bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.muted = muted
	log.Printf("Muted: %v", muted)
}

// GetVolume returns current volume
func (o *Oto) GetVolume() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.volume
}

// IsMuted returns mute state
func (o *Oto) IsMuted() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.muted
}

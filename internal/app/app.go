// ABOUTME: Quiz application orchestration
// ABOUTME: Builds the source, session and output, then runs the TUI or console
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/harperreed/earfilter-go/internal/ui"
	"github.com/harperreed/earfilter-go/pkg/audio/output"
	"github.com/harperreed/earfilter-go/pkg/quiz"
	"github.com/harperreed/earfilter-go/pkg/source"
)

// probeTimeout bounds the startup device check
const probeTimeout = 2 * time.Second

// Config holds application configuration
type Config struct {
	Quiz     quiz.Config
	FilePath string
	Seed     int64
	Volume   int
	Muted    bool
	UseTUI   bool

	// Console mode streams
	Input  io.Reader
	Output io.Writer
}

// App represents the quiz application
type App struct {
	config  Config
	session *quiz.Session
	out     output.Output
}

// New builds the quiz source and session. out receives all playback.
func New(config Config, out output.Output) (*App, error) {
	if out == nil {
		return nil, errors.New("app: nil output")
	}

	src, err := newSource(config)
	if err != nil {
		return nil, err
	}
	config.Quiz.Source = src

	session, err := quiz.NewSession(config.Quiz, rand.New(rand.NewSource(config.Seed)))
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	out.SetVolume(config.Volume)
	out.SetMuted(config.Muted)

	return &App{
		config:  config,
		session: session,
		out:     out,
	}, nil
}

// newSource picks the audio source for the configured kind
func newSource(config Config) (quiz.SourceProvider, error) {
	rng := rand.New(rand.NewSource(config.Seed + 1))

	switch config.Quiz.SourceKind {
	case quiz.SourcePinkNoise:
		return source.NewNoise(rng)
	case quiz.SourceUploaded:
		if config.FilePath == "" {
			return nil, fmt.Errorf("%w: file source needs a file path", quiz.ErrInvalidConfig)
		}
		src, err := source.NewFile(config.FilePath, rng)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", config.FilePath, err)
		}
		return src, nil
	default:
		return nil, fmt.Errorf("%w: unknown source kind %v", quiz.ErrInvalidConfig, config.Quiz.SourceKind)
	}
}

// Session returns the quiz session
func (a *App) Session() *quiz.Session {
	return a.session
}

// CheckDevice plays a short silent buffer and reports device problems
func (a *App) CheckDevice(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	if err := output.Probe(ctx, a.out, a.config.Quiz.SampleRate); err != nil {
		return fmt.Errorf("audio device issue: %w", err)
	}
	return nil
}

// Run runs the quiz until the user quits or ctx is cancelled
func (a *App) Run(ctx context.Context) error {
	log.Printf("Starting quiz session %s (seed %d, source %s, mode %s)",
		a.session.ID(), a.config.Seed, a.config.Quiz.SourceKind, a.config.Quiz.Mode)

	if a.config.UseTUI {
		return ui.Run(ctx, a.session, a.out, ui.Controls{Volume: a.config.Volume, Muted: a.config.Muted})
	}

	runner := NewConsole(a.session, a.out, a.config.Input, a.config.Output)
	return runner.Run(ctx)
}

// Close releases the audio output
func (a *App) Close() error {
	return a.out.Close()
}

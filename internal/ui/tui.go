// ABOUTME: TUI initialization and control
// ABOUTME: Wraps bubbletea program for the quiz UI
package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harperreed/earfilter-go/pkg/audio/output"
	"github.com/harperreed/earfilter-go/pkg/quiz"
)

// Run starts the TUI and blocks until the user quits or ctx is cancelled.
// Leaving the TUI cancels any playback still in flight.
func Run(ctx context.Context, session *quiz.Session, out output.Output, controls Controls) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(NewModel(ctx, session, out, controls), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

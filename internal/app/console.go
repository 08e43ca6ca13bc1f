// ABOUTME: Line-oriented quiz runner
// ABOUTME: Plays each pair, prompts for answers and prints feedback
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/earfilter-go/pkg/audio/filter"
	"github.com/harperreed/earfilter-go/pkg/audio/output"
	"github.com/harperreed/earfilter-go/pkg/quiz"
)

// DefaultPause is the gap between the original and filtered sample
const DefaultPause = 500 * time.Millisecond

// Console runs the quiz over plain text streams
type Console struct {
	session *quiz.Session
	out     output.Output
	in      *bufio.Scanner
	w       io.Writer
	pause   time.Duration
}

// NewConsole creates a console runner
func NewConsole(session *quiz.Session, out output.Output, r io.Reader, w io.Writer) *Console {
	return &Console{
		session: session,
		out:     out,
		in:      bufio.NewScanner(r),
		w:       w,
		pause:   DefaultPause,
	}
}

// SetPause changes the gap between the two samples
func (c *Console) SetPause(d time.Duration) {
	c.pause = d
}

// Run plays sessions until the user declines another round
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := c.runSession(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				log.Printf("Input closed, ending quiz")
				return nil
			}
			return err
		}

		again, err := c.askYesNo("Play again? (y/n): ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil || !again {
			return err
		}
		c.session.Reset()
	}
}

func (c *Console) runSession(ctx context.Context) error {
	cfg := c.session.Config()
	c.printf("\n--- Filter Quiz ---\n")
	c.printf("Source: %s | Mode: %s | Duration: %gs | Questions: %d\n",
		cfg.SourceKind, cfg.Mode, cfg.DurationSeconds, cfg.QuestionCount)

	if c.session.Status() == quiz.StatusSetup {
		if err := c.session.Start(); err != nil {
			return fmt.Errorf("failed to start quiz: %w", err)
		}
	}

	for c.session.Status() == quiz.StatusInProgress {
		if err := c.runQuestion(ctx); err != nil {
			return err
		}
		if err := c.session.Advance(); err != nil {
			return err
		}
	}

	c.printf("\n%s\n", strings.Repeat("=", 30))
	c.printf("      Quiz Complete!\n")
	c.printf("      Final Score: %.1f/%d\n", c.session.Score(), c.session.Len())
	c.printf("%s\n", strings.Repeat("=", 30))
	return nil
}

func (c *Console) runQuestion(ctx context.Context) error {
	q, err := c.session.Current()
	if err != nil {
		return err
	}

	c.printf("\n--- Question %d/%d ---\n", q.Index+1, c.session.Len())
	if err := c.playPair(ctx, q); err != nil {
		return err
	}

	guessType, err := c.askType(ctx, q)
	if err != nil {
		return err
	}

	attempt := quiz.Attempt{Type: guessType}
	if c.session.NeedsFrequency(guessType) {
		f, err := c.askFrequency()
		if err != nil {
			return err
		}
		attempt.Frequency = &f
	}

	rec, err := c.session.Submit(attempt)
	if err != nil {
		return err
	}

	cfg := c.session.Config()
	for _, line := range quiz.Feedback(q, rec, cfg.ShowCorrectAnswer, cfg.ShowFilterDetails) {
		c.printf("%s\n", line)
	}
	c.printf("Current %s\n", quiz.FormatScore(c.session.Score(), q.Index+1))
	return nil
}

// playPair plays the source then the filtered buffer; device errors are
// reported and the question continues
func (c *Console) playPair(ctx context.Context, q quiz.Question) error {
	filtered, err := q.Filtered()
	if err != nil {
		return err
	}

	c.printf("Playing ORIGINAL...\n")
	if err := c.out.Play(ctx, q.Source); err != nil {
		return c.playbackError(ctx, err)
	}

	select {
	case <-time.After(c.pause):
	case <-ctx.Done():
		return ctx.Err()
	}

	c.printf("Playing FILTERED...\n")
	if err := c.out.Play(ctx, filtered); err != nil {
		return c.playbackError(ctx, err)
	}
	return nil
}

func (c *Console) playbackError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	log.Printf("Playback error: %v", err)
	c.printf("\nError during audio playback: %v\n", err)
	c.printf("Please ensure you have a working audio output device.\n")
	return nil
}

func (c *Console) askType(ctx context.Context, q quiz.Question) (filter.Type, error) {
	names := make([]string, len(filter.Types))
	for i, t := range filter.Types {
		names[i] = t.String()
	}
	choices := strings.Join(names, ", ")

	for {
		line, err := c.prompt(fmt.Sprintf("Guess the filter type (%s, r to replay): ", choices))
		if err != nil {
			return 0, err
		}
		if strings.EqualFold(line, "r") {
			if err := c.playPair(ctx, q); err != nil {
				return 0, err
			}
			continue
		}

		t, err := filter.ParseType(line)
		if err == nil {
			return t, nil
		}
		c.printf("Invalid guess. Please enter one of: %s (or abbreviations like lp, hp, n, bp)\n", choices)
	}
}

func (c *Console) askFrequency() (float64, error) {
	freqs := append([]float64(nil), c.session.Config().Frequencies...)
	sort.Float64s(freqs)

	choices := make([]string, len(freqs))
	for i, f := range freqs {
		choices[i] = quiz.FormatFrequency(f)
	}
	c.printf("Available frequencies: %s\n", strings.Join(choices, ", "))

	for {
		line, err := c.prompt("Guess the frequency (enter just the number): ")
		if err != nil {
			return 0, err
		}

		guess, err := strconv.ParseFloat(line, 64)
		if err != nil {
			c.printf("Invalid input. Please enter a number.\n")
			continue
		}
		for _, f := range freqs {
			if guess == f {
				return guess, nil
			}
		}
		c.printf("Invalid frequency. Please enter one of: %v\n", freqs)
	}
}

func (c *Console) askYesNo(prompt string) (bool, error) {
	for {
		line, err := c.prompt(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		c.printf("Invalid input. Please enter 'y' or 'n'.\n")
	}
}

func (c *Console) prompt(text string) (string, error) {
	c.printf("%s", text)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.w, format, args...)
}

// ABOUTME: Tests for quiz application orchestration
// ABOUTME: Tests app creation, source selection and the device check
package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/harperreed/earfilter-go/pkg/audio/output"
	"github.com/harperreed/earfilter-go/pkg/quiz"
)

func testConfig() Config {
	qc := quiz.DefaultConfig()
	qc.SampleRate = 22050
	qc.DurationSeconds = 1
	qc.QuestionCount = 1
	qc.Mode = quiz.ModeFocus

	return Config{
		Quiz:   qc,
		Seed:   11,
		Volume: 80,
		Muted:  true,
	}
}

func TestNewApp(t *testing.T) {
	out := output.NewDiscard()
	a, err := New(testConfig(), out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.Session() == nil {
		t.Fatal("expected session to be created")
	}
	if a.Session().Status() != quiz.StatusSetup {
		t.Errorf("expected setup, got %v", a.Session().Status())
	}
}

func TestNewAppErrors(t *testing.T) {
	if _, err := New(testConfig(), nil); err == nil {
		t.Error("expected error for nil output")
	}

	cfg := testConfig()
	cfg.Quiz.SourceKind = quiz.SourceUploaded
	if _, err := New(cfg, output.NewDiscard()); !errors.Is(err, quiz.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig without a file, got %v", err)
	}

	cfg.FilePath = "/nonexistent/clip.mp3"
	if _, err := New(cfg, output.NewDiscard()); err == nil {
		t.Error("expected error for missing file")
	}

	cfg = testConfig()
	cfg.Quiz.DurationSeconds = 4
	if _, err := New(cfg, output.NewDiscard()); !errors.Is(err, quiz.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewAppAppliesControls(t *testing.T) {
	out := output.NewDiscard()
	if _, err := New(testConfig(), out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.GetVolume() != 80 {
		t.Errorf("expected volume 80, got %d", out.GetVolume())
	}
	if !out.IsMuted() {
		t.Error("expected output to start muted")
	}
}

func TestCheckDevice(t *testing.T) {
	out := output.NewDiscard()
	a, err := New(testConfig(), out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := a.CheckDevice(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if len(out.Played()) != 1 {
		t.Errorf("expected one probe buffer, got %d", len(out.Played()))
	}
}

func TestRunConsole(t *testing.T) {
	cfg := testConfig()
	var w bytes.Buffer
	cfg.Input = strings.NewReader("notch\n1500\nn\n")
	cfg.Output = &w

	a, err := New(cfg, output.NewDiscard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(w.String(), "Quiz Complete!") {
		t.Errorf("expected completed quiz, got:\n%s", w.String())
	}
	if err := a.Close(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}
}

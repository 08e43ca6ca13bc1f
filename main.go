// ABOUTME: Entry point for the filter ear-training quiz
// ABOUTME: Parses CLI flags and starts the quiz application
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/harperreed/earfilter-go/internal/app"
	"github.com/harperreed/earfilter-go/internal/version"
	"github.com/harperreed/earfilter-go/pkg/audio/output"
	"github.com/harperreed/earfilter-go/pkg/quiz"
)

var (
	duration    = flag.Float64("duration", quiz.DefaultDuration, "Sample duration in seconds (1, 2, 3 or 5)")
	sourceKind  = flag.String("source", "", "Audio source: pink or file (default: file when -file is set)")
	filePath    = flag.String("file", "", "Audio file to quiz on (.mp3, .flac, .wav)")
	mode        = flag.String("mode", "random", "Question mode: random or focus (notch/bandpass only)")
	showAnswer  = flag.Bool("show-answer", true, "Show the correct answer after each question")
	showDetails = flag.Bool("show-details", false, "Show filter details after each question")
	questions   = flag.Int("questions", quiz.DefaultQuestionCount, "Number of questions")
	gradeCutoff = flag.Bool("grade-cutoff", false, "Also ask for the cutoff frequency of lowpass/highpass")
	seed        = flag.Int64("seed", 0, "Random seed (0 uses the current time)")
	sampleRate  = flag.Int("sample-rate", quiz.DefaultSampleRate, "Sample rate in Hz")
	volume      = flag.Int("volume", 100, "Playback volume (0-100)")
	mute        = flag.Bool("mute", false, "Start with audio muted")
	noTUI       = flag.Bool("no-tui", false, "Disable TUI, use a line-oriented prompt instead")
	logFile     = flag.String("log-file", "earfilter.log", "Log file path")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	useTUI := !*noTUI

	// Set up logging
	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer func() { _ = f.Close() }()

	if useTUI {
		// TUI mode: log only to file
		log.SetOutput(f)
	} else {
		// Console mode: log to both stderr and file
		log.SetOutput(io.MultiWriter(os.Stderr, f))
	}

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	log.Printf("Starting %s", version.String())

	a, err := app.New(cfg, output.NewOto())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Fatalf("Failed to create quiz: %v", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Printf("Error closing output: %v", err)
		}
	}()

	// Handle shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Println("Testing audio device...")
	if err := a.CheckDevice(ctx); err != nil {
		log.Printf("Warning: %v", err)
		fmt.Fprintf(os.Stderr, "\nWarning: %v\n", err)
		fmt.Fprintln(os.Stderr, "Please check your audio settings and connections.")
		time.Sleep(2 * time.Second)
	}

	if err := a.Run(ctx); err != nil && ctx.Err() == nil {
		log.Printf("Quiz error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if ctx.Err() != nil {
		fmt.Println("\nQuiz interrupted by user.")
	}
	log.Printf("Quiz stopped")
}

// buildConfig maps flags onto the application configuration
func buildConfig() (app.Config, error) {
	qc := quiz.DefaultConfig()
	qc.SampleRate = *sampleRate
	qc.DurationSeconds = *duration
	qc.ShowCorrectAnswer = *showAnswer
	qc.ShowFilterDetails = *showDetails
	qc.QuestionCount = *questions
	qc.GradeCutoff = *gradeCutoff

	kindName := *sourceKind
	if kindName == "" {
		kindName = "pink"
		if *filePath != "" {
			kindName = "file"
		}
	}
	kind, err := quiz.ParseSourceKind(kindName)
	if err != nil {
		return app.Config{}, err
	}
	qc.SourceKind = kind

	m, err := quiz.ParseMode(*mode)
	if err != nil {
		return app.Config{}, err
	}
	qc.Mode = m

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	return app.Config{
		Quiz:     qc,
		FilePath: *filePath,
		Seed:     s,
		Volume:   *volume,
		Muted:    *mute,
		UseTUI:   !*noTUI,
		Input:    os.Stdin,
		Output:   os.Stdout,
	}, nil
}

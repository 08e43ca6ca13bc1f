// ABOUTME: Quiz session state machine
// ABOUTME: Setup, InProgress and Finished with exactly-once answers per question
package quiz

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/google/uuid"
	"github.com/harperreed/earfilter-go/pkg/audio/filter"
)

// Status is the session lifecycle state
type Status int

const (
	StatusSetup Status = iota
	StatusInProgress
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusSetup:
		return "setup"
	case StatusInProgress:
		return "in progress"
	case StatusFinished:
		return "finished"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Session runs one quiz
type Session struct {
	id        string
	cfg       Config
	factory   *Factory
	grader    Grader
	status    Status
	questions []Question
	records   []*ScoreRecord
	index     int
	score     float64
}

// NewSession creates a session in Setup
func NewSession(cfg Config, rng *rand.Rand) (*Session, error) {
	factory, err := NewFactory(cfg, rng)
	if err != nil {
		return nil, err
	}

	return &Session{
		id:      uuid.New().String(),
		cfg:     cfg,
		factory: factory,
		grader:  NewGrader(cfg.Frequencies, cfg.GradeCutoff),
		status:  StatusSetup,
	}, nil
}

// Start generates the questions and moves to InProgress.
// On a source error the session stays in Setup.
func (s *Session) Start() error {
	if s.status != StatusSetup {
		return fmt.Errorf("%w: start while %s", ErrInvalidTransition, s.status)
	}

	s.factory.Reset()
	questions := make([]Question, 0, s.cfg.QuestionCount)
	for i := 0; i < s.cfg.QuestionCount; i++ {
		q, err := s.factory.Next()
		if err != nil {
			return err
		}
		questions = append(questions, q)
	}

	s.questions = questions
	s.records = make([]*ScoreRecord, len(questions))
	s.index = 0
	s.score = 0
	s.status = StatusInProgress

	log.Printf("Session %s started: %d questions, mode %s, %gs samples", s.id, len(questions), s.cfg.Mode, s.cfg.DurationSeconds)
	return nil
}

// Current returns the question awaiting an answer or just answered
func (s *Session) Current() (Question, error) {
	if s.status != StatusInProgress {
		return Question{}, fmt.Errorf("%w: no current question while %s", ErrInvalidTransition, s.status)
	}
	return s.questions[s.index], nil
}

// Submit grades a for the current question. Each question accepts one answer.
func (s *Session) Submit(a Attempt) (ScoreRecord, error) {
	if s.status != StatusInProgress {
		return ScoreRecord{}, fmt.Errorf("%w: submit while %s", ErrInvalidTransition, s.status)
	}
	if s.records[s.index] != nil {
		return ScoreRecord{}, fmt.Errorf("%w: question %d already answered", ErrInvalidTransition, s.index+1)
	}
	if !a.Type.Valid() {
		return ScoreRecord{}, fmt.Errorf("%w: unknown filter type %v", ErrInvalidAttempt, a.Type)
	}
	if a.Frequency != nil && s.grader.GradesFrequency(a.Type) && !s.grader.Allowed(*a.Frequency) {
		return ScoreRecord{}, fmt.Errorf("%w: %g Hz is not an allowed frequency", ErrInvalidAttempt, *a.Frequency)
	}

	rec := s.grader.Score(s.questions[s.index], copyAttempt(a))
	s.records[s.index] = &rec
	s.score += rec.Points

	log.Printf("Session %s question %d: %s (%.1f points, score %.1f)", s.id, s.index+1, rec.Verdict(), rec.Points, s.score)
	return rec, nil
}

// Advance moves past an answered question, finishing after the last one
func (s *Session) Advance() error {
	if s.status != StatusInProgress {
		return fmt.Errorf("%w: advance while %s", ErrInvalidTransition, s.status)
	}
	if s.records[s.index] == nil {
		return fmt.Errorf("%w: question %d not answered", ErrInvalidTransition, s.index+1)
	}

	if s.index+1 >= len(s.questions) {
		s.status = StatusFinished
		log.Printf("Session %s finished: %.1f/%d", s.id, s.score, len(s.questions))
		return nil
	}
	s.index++
	return nil
}

// Reset discards all progress and returns to Setup with a new ID
func (s *Session) Reset() {
	s.questions = nil
	s.records = nil
	s.index = 0
	s.score = 0
	s.status = StatusSetup
	s.id = uuid.New().String()
}

// ID returns the session identifier
func (s *Session) ID() string { return s.id }

// Status returns the lifecycle state
func (s *Session) Status() Status { return s.status }

// Index returns the zero-based current question index
func (s *Session) Index() int { return s.index }

// Len returns the number of questions
func (s *Session) Len() int { return len(s.questions) }

// Score returns the accumulated points
func (s *Session) Score() float64 { return s.score }

// Config returns the session configuration
func (s *Session) Config() Config { return s.cfg }

// MaxScore returns the points available so far among answered questions
func (s *Session) MaxScore() float64 {
	var total float64
	for _, r := range s.records {
		if r != nil {
			total += r.MaxPoints
		}
	}
	return total
}

// Answered reports whether the current question has been answered
func (s *Session) Answered() bool {
	switch s.status {
	case StatusInProgress:
		return s.records[s.index] != nil
	case StatusFinished:
		return true
	default:
		return false
	}
}

// Records returns the score records in question order
func (s *Session) Records() []ScoreRecord {
	out := make([]ScoreRecord, 0, len(s.records))
	for _, r := range s.records {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

// NeedsFrequency reports whether answers for t must include a frequency
func (s *Session) NeedsFrequency(t filter.Type) bool {
	return s.grader.GradesFrequency(t)
}

func copyAttempt(a Attempt) Attempt {
	if a.Frequency != nil {
		f := *a.Frequency
		a.Frequency = &f
	}
	return a
}

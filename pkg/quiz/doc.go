// ABOUTME: Filter ear-training quiz core
// ABOUTME: Question generation, grading and the session state machine
// Package quiz implements the filter identification quiz.
//
// A Session moves through Setup, InProgress and Finished. Start asks the
// Factory for a fixed number of Questions, each holding an immutable source
// buffer plus a filter type and frequency. The host plays Source and then
// Filtered, collects an Attempt, and calls Submit and Advance in turn. The
// Grader awards full, partial or zero credit, with partial credit decided by
// how many log-spaced frequency bins the guess is away from the answer.
//
// Example:
//
//	cfg := quiz.DefaultConfig()
//	cfg.Source = src
//	s, _ := quiz.NewSession(cfg, rand.New(rand.NewSource(seed)))
//	_ = s.Start()
//	q, _ := s.Current()
//	rec, _ := s.Submit(quiz.Attempt{Type: filter.Notch, Frequency: &f})
//	_ = s.Advance()
//
// Sessions are not safe for concurrent use.
package quiz

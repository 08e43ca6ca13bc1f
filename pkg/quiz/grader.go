// ABOUTME: Quiz answer grading
// ABOUTME: Full, partial or zero credit by type and log-frequency bin distance
package quiz

import (
	"sort"

	"github.com/harperreed/earfilter-go/pkg/audio/filter"
)

// Credit holds the points awarded by bin distance; further or off-set guesses score 0
var Credit = []float64{1.0, 0.5}

// MaxPoints is the score of a perfect answer
const MaxPoints = 1.0

// Attempt is a user's answer to one question
type Attempt struct {
	Type      filter.Type
	Frequency *float64
}

// ScoreRecord is the graded result of one attempt
type ScoreRecord struct {
	Index            int
	Points           float64
	MaxPoints        float64
	TypeCorrect      bool
	FrequencyCorrect bool
	FrequencyGraded  bool
	// BinDistance is -1 when the frequency was not graded or not given
	BinDistance int
	Attempt     Attempt
}

// Verdict returns the feedback headline for the record
func (r ScoreRecord) Verdict() string {
	switch {
	case !r.TypeCorrect:
		return "Incorrect."
	case !r.FrequencyGraded:
		return "Correct!"
	case r.FrequencyCorrect:
		return "Correct! (Type and Frequency)"
	case r.Points > 0:
		return "Partially Correct."
	default:
		return "Incorrect."
	}
}

// Grader scores attempts against questions
type Grader struct {
	bins        []float64
	gradeCutoff bool
}

// NewGrader creates a grader over the allowed frequency set.
// gradeCutoff also grades the cutoff of lowpass and highpass answers.
func NewGrader(frequencies []float64, gradeCutoff bool) Grader {
	bins := make([]float64, 0, len(frequencies))
	for _, f := range frequencies {
		if f > 0 {
			bins = append(bins, f)
		}
	}
	sort.Float64s(bins)
	return Grader{bins: bins, gradeCutoff: gradeCutoff}
}

// GradesFrequency reports whether answers for t need a frequency
func (g Grader) GradesFrequency(t filter.Type) bool {
	return t.HasCenter() || g.gradeCutoff
}

// Score grades a against q
func (g Grader) Score(q Question, a Attempt) ScoreRecord {
	rec := ScoreRecord{
		Index:           q.Index,
		MaxPoints:       MaxPoints,
		TypeCorrect:     a.Type == q.Type,
		FrequencyGraded: g.GradesFrequency(q.Type),
		BinDistance:     -1,
		Attempt:         a,
	}

	if !rec.TypeCorrect {
		return rec
	}
	if !rec.FrequencyGraded {
		rec.Points = MaxPoints
		return rec
	}
	if a.Frequency == nil {
		return rec
	}

	dist := g.BinDistance(q.Frequency, *a.Frequency)
	if dist < 0 {
		return rec
	}
	rec.BinDistance = dist
	rec.FrequencyCorrect = *a.Frequency == q.Frequency
	if dist < len(Credit) {
		rec.Points = Credit[dist] * MaxPoints
	}
	return rec
}

// Allowed reports whether freq is a member of the allowed set
func (g Grader) Allowed(freq float64) bool {
	return g.binIndex(freq) >= 0
}

// BinDistance returns how many allowed-set bins separate two frequencies,
// or -1 if either is not in the allowed set
func (g Grader) BinDistance(actual, guess float64) int {
	a := g.binIndex(actual)
	b := g.binIndex(guess)
	if a < 0 || b < 0 {
		return -1
	}
	if a > b {
		return a - b
	}
	return b - a
}

// binIndex returns the position of freq in the sorted set, or -1
func (g Grader) binIndex(freq float64) int {
	i := sort.SearchFloat64s(g.bins, freq)
	if i < len(g.bins) && g.bins[i] == freq {
		return i
	}
	return -1
}

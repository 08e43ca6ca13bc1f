// ABOUTME: Answer feedback text
// ABOUTME: Builds the verdict, answer and details lines shown after grading
package quiz

import (
	"fmt"
	"strings"
)

// Feedback returns the lines shown after an answer: the verdict first, then
// the optional correct answer and filter details joined on one line
func Feedback(q Question, rec ScoreRecord, showAnswer, showDetails bool) []string {
	headline := rec.Verdict()
	if rec.TypeCorrect && rec.FrequencyGraded && !rec.FrequencyCorrect && rec.Points > 0 {
		headline = fmt.Sprintf("%s (Correct type '%s', but wrong frequency)", headline, q.Type)
	}
	lines := []string{headline}

	var extra []string
	if showAnswer {
		if !rec.TypeCorrect {
			extra = append(extra, fmt.Sprintf("The correct filter type was: %s", q.Type))
		}
		if rec.TypeCorrect && rec.FrequencyGraded && !rec.FrequencyCorrect {
			extra = append(extra, fmt.Sprintf("The correct frequency was: %s", FormatFrequency(q.Frequency)))
		}
	}
	if showDetails {
		extra = append(extra, "Filter Details: "+q.Details())
	}
	if len(extra) > 0 {
		lines = append(lines, strings.Join(extra, " | "))
	}
	return lines
}

// FormatScore renders a running score such as "Score: 2.5/4"
func FormatScore(score float64, answered int) string {
	return fmt.Sprintf("Score: %.1f/%d", score, answered)
}

package scoring

import "math"

// LowScoreThreshold is the final score below which an answer gets the
// "add more points" feedback note.
const LowScoreThreshold = 2

const lowScoreFeedback = "Consider adding more relevant points to strengthen this answer."

// Result is the outcome of scoring one answer.
type Result struct {
	MLScore      int
	KeywordScore int
	Score        int
}

// Combine averages the classifier and keyword scores and rounds half away
// from zero, so 1+2 gives 2 and 2+3 gives 3. The result is not clamped: a
// classifier score above MaxScore carries through.
func Combine(ml, kw int) int {
	return int(math.Round(float64(ml+kw) / 2))
}

// Feedback returns the improvement note for a final score, or "" when the
// score is good enough not to need one.
func Feedback(score int) string {
	if score < LowScoreThreshold {
		return lowScoreFeedback
	}
	return ""
}

package session

import "github.com/abhisek/interviewprep/internal/scoring"

// Summary holds the aggregate numbers shown on the home screen.
type Summary struct {
	Count         int
	AvgScore      float64
	AvgConfidence float64
	// LowScores is how many answers scored below the feedback threshold.
	LowScores int
}

// Summarize aggregates responses.
func Summarize(responses []Response) Summary {
	s := Summary{Count: len(responses)}
	if s.Count == 0 {
		return s
	}

	var score, conf int
	for _, r := range responses {
		score += r.Score
		conf += r.Confidence
		if r.Score < scoring.LowScoreThreshold {
			s.LowScores++
		}
	}
	s.AvgScore = float64(score) / float64(s.Count)
	s.AvgConfidence = float64(conf) / float64(s.Count)
	return s
}

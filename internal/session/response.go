package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/interviewprep/internal/scoring"
)

const (
	MinConfidence = 1
	MaxConfidence = 5
)

// ErrInvalidConfidence is returned for a confidence outside 1..5.
var ErrInvalidConfidence = errors.New("confidence must be between 1 and 5")

// Response is one submitted answer with its scores. It is created once per
// submit and never changed afterwards.
type Response struct {
	Question     string
	Answer       string
	Confidence   int
	MLScore      int
	KeywordScore int
	Score        int
	SubmittedAt  time.Time
}

// NewResponse builds a Response from a scoring result and the user's
// self-reported confidence.
func NewResponse(question, answer string, confidence int, r scoring.Result) (Response, error) {
	if confidence < MinConfidence || confidence > MaxConfidence {
		return Response{}, fmt.Errorf("%w: got %d", ErrInvalidConfidence, confidence)
	}
	return Response{
		Question:     question,
		Answer:       answer,
		Confidence:   confidence,
		MLScore:      r.MLScore,
		KeywordScore: r.KeywordScore,
		Score:        r.Score,
		SubmittedAt:  time.Now(),
	}, nil
}

// Feedback returns the improvement note for this response, if any.
func (r Response) Feedback() string {
	return scoring.Feedback(r.Score)
}

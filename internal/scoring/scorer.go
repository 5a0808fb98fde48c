package scoring

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/interviewprep/internal/logger"
	"github.com/abhisek/interviewprep/internal/questions"
)

// ErrUnknownQuestion is returned when scoring an answer to a question that
// is not in the catalog.
var ErrUnknownQuestion = errors.New("unknown question")

// Predictor produces a classifier score for a question/answer pair.
type Predictor interface {
	Predict(question, answer string) int
}

// Scorer runs the hybrid pipeline: classifier score, keyword score, and
// their rounded average.
type Scorer struct {
	model Predictor
	log   *zap.Logger
}

// NewScorer returns a Scorer backed by model.
func NewScorer(model Predictor, log *zap.Logger) *Scorer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scorer{model: model, log: log}
}

// Score scores answer against the catalog question with the exact text
// question. Empty answers are scored like any other text.
func (s *Scorer) Score(question, answer string) (Result, error) {
	q, ok := questions.ByText(question)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownQuestion, question)
	}

	ml := s.model.Predict(q.Text, answer)
	kw := KeywordScore(answer, q.Keywords)
	r := Result{
		MLScore:      ml,
		KeywordScore: kw,
		Score:        Combine(ml, kw),
	}

	s.log.Debug("answer scored",
		zap.String("question", q.ID),
		zap.String("answer", logger.TruncateForLog(answer, 80)),
		zap.Int("ml_score", r.MLScore),
		zap.Int("keyword_score", r.KeywordScore),
		zap.Int("score", r.Score),
	)
	return r, nil
}

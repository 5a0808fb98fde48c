package scoring

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/interviewprep/internal/corpus"
	"github.com/abhisek/interviewprep/internal/forest"
	"github.com/abhisek/interviewprep/internal/textvec"
)

// Model is the trained vectorizer + classifier pair. Build it once with
// Train and share it read-only.
type Model struct {
	vec    *textvec.Vectorizer
	forest *forest.Forest
}

// Train fits the vectorizer on "question answer" texts and the forest on the
// resulting vectors and the example scores.
func Train(examples []corpus.Example, cfg forest.Config, log *zap.Logger) (*Model, error) {
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()

	texts := corpus.Texts(examples)
	vec, err := textvec.Fit(texts)
	if err != nil {
		return nil, fmt.Errorf("fit vectorizer: %w", err)
	}

	f, err := forest.Fit(vec.TransformAll(texts), corpus.Labels(examples), cfg)
	if err != nil {
		return nil, fmt.Errorf("fit classifier: %w", err)
	}

	log.Debug("readiness model trained",
		zap.Int("examples", len(examples)),
		zap.Int("features", vec.Features()),
		zap.Int("trees", f.Trees()),
		zap.Ints("classes", f.Classes()),
		zap.Duration("took", time.Since(start)),
	)

	return &Model{vec: vec, forest: f}, nil
}

// Predict returns the classifier's readiness score for an answer to
// question. The value is whatever label the forest picks; it is not clamped.
func (m *Model) Predict(question, answer string) int {
	return m.forest.Predict(m.vec.Transform(question + " " + answer))
}

// Features returns the vocabulary size of the vectorizer.
func (m *Model) Features() int {
	return m.vec.Features()
}

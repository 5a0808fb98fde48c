package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/interviewprep/internal/corpus"
	"github.com/abhisek/interviewprep/internal/questions"
	"github.com/abhisek/interviewprep/internal/scoring"
)

// trainScorer checks the built-in data and trains the readiness model.
func trainScorer(cfg *Config, logger *zap.Logger) (*scoring.Scorer, error) {
	if err := questions.Validate(); err != nil {
		return nil, fmt.Errorf("question catalog: %w", err)
	}
	examples := corpus.Examples()
	if err := corpus.Validate(examples); err != nil {
		return nil, fmt.Errorf("training corpus: %w", err)
	}

	model, err := scoring.Train(examples, cfg.Model.Forest(), logger)
	if err != nil {
		return nil, fmt.Errorf("train model: %w", err)
	}
	return scoring.NewScorer(model, logger), nil
}

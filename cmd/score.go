package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/interviewprep/internal/logger"
	"github.com/abhisek/interviewprep/internal/questions"
	"github.com/abhisek/interviewprep/internal/scoring"
	"github.com/abhisek/interviewprep/internal/session"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single answer without starting the TUI",
	Long: "Score a single answer without starting the TUI. Without --answer the " +
		"question, answer and confidence are asked for interactively.",
	Example: `  interviewprep score --question 3 --answer "I bring value and the right skills"
  interviewprep score -q 1 -a "My background is in education" -c 4
  interviewprep score`,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("question")
		answer, _ := cmd.Flags().GetString("answer")
		confidence, _ := cmd.Flags().GetInt("confidence")

		interactive := !cmd.Flags().Changed("answer")
		if interactive && !cmd.Flags().Changed("question") {
			i, err := promptQuestion()
			if err != nil {
				return err
			}
			n = i + 1
		}

		q, err := checkScoreFlags(n, confidence)
		if err != nil {
			return err
		}

		if interactive {
			if answer, err = promptAnswer(q); err != nil {
				return err
			}
			if confidence == 0 {
				if confidence, err = promptConfidence(); err != nil {
					return err
				}
			}
		}

		config, err := getConfig()
		if err != nil {
			return fmt.Errorf("getting a config: %w", err)
		}

		// One-shot commands own the terminal's stderr, so they log there unless told otherwise.
		path := config.LogFile
		if path == "" {
			path = "stderr"
		}
		log, err := logger.New(logger.Options{JSON: config.JSON, Debug: config.Debug, Path: path})
		if err != nil {
			return fmt.Errorf("creating a logger: %w", err)
		}
		defer log.Sync()

		scorer, err := trainScorer(config, log)
		if err != nil {
			return err
		}

		res, err := scorer.Score(q.Text, answer)
		if err != nil {
			return err
		}

		fmt.Printf("Question:       %s\n", q.Text)
		if confidence != 0 {
			fmt.Printf("Confidence:     %d/%d\n", confidence, session.MaxConfidence)
		}
		fmt.Printf("ML score:       %d\n", res.MLScore)
		fmt.Printf("Keyword score:  %d\n", res.KeywordScore)
		fmt.Printf("Hybrid score:   %d/%d\n", res.Score, scoring.MaxScore)
		if fb := scoring.Feedback(res.Score); fb != "" {
			fmt.Printf("\nFeedback: %s\n", fb)
		}
		return nil
	},
}

// checkScoreFlags validates --question and --confidence before any work is
// done. A confidence of 0 means none was given.
func checkScoreFlags(n, confidence int) (questions.Question, error) {
	q, ok := questions.At(n - 1)
	if !ok {
		return questions.Question{}, fmt.Errorf("--question must be between 1 and %d, got %d", questions.Count(), n)
	}
	if confidence != 0 && (confidence < session.MinConfidence || confidence > session.MaxConfidence) {
		return questions.Question{}, fmt.Errorf("--confidence: %w: got %d", session.ErrInvalidConfidence, confidence)
	}
	return q, nil
}

func init() {
	scoreCmd.Flags().IntP("question", "q", 1, fmt.Sprintf("question number (1-%d, see 'questions')", questions.Count()))
	scoreCmd.Flags().StringP("answer", "a", "", "the answer text")
	scoreCmd.Flags().IntP("confidence", "c", 0, "optional self-rated confidence (1-5)")
}

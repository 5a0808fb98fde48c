// Package corpus holds the hand-labelled answers the readiness classifier is
// trained on. The set is tiny and illustrative, not a real dataset.
package corpus

import (
	"fmt"
	"strings"

	"github.com/abhisek/interviewprep/internal/questions"
)

// Example is a labelled (question, answer) pair. Score is the readiness
// label, 0 (poor) to 4 (strong).
type Example struct {
	Question string
	Answer   string
	Score    int
}

// Text returns the classifier input for the example: the question and the
// answer joined by a single space.
func (e Example) Text() string {
	return e.Question + " " + e.Answer
}

const (
	qAbout     = "Tell me about yourself."
	qStrengths = "What are your strengths and weaknesses?"
	qHire      = "Why should we hire you?"
	qChallenge = "Tell me about a challenge you overcame."
	qFuture    = "Where do you see yourself in 5 years?"
)

var examples = []Example{
	{qAbout, "I have experience in data analysis using Python and Excel", 3},
	{qAbout, "I'm good", 1},
	{qAbout, "I studied electronics and took a minor in data science", 3},
	{qAbout, "Love music and watching movies", 0},
	{qAbout, "I recently graduated with a degree in data science, and I enjoy working with data to solve complex problems.", 4},
	{qAbout, "I'm a quick learner and eager to contribute.", 2},
	{qAbout, "I like sports.", 0},
	{qStrengths, "Problem-solving, attention to detail, and teamwork", 4},
	{qStrengths, "Python", 1},
	{qStrengths, "I can lead teams and manage time well", 3},
	{qStrengths, "I am detail-oriented and work well under pressure.", 4},
	{qStrengths, "I am friendly.", 1},
	{qStrengths, "Sometimes I overthink problems, but I am working on it.", 3},
	{qStrengths, "I am bad at everything.", 0},
	{qHire, "Because I'm passionate about analytics and want to solve real problems", 4},
	{qHire, "Job is good", 1},
	{qHire, "I want to apply my skills in data visualization and machine learning", 3},
	{qHire, "I am excited to apply my knowledge of machine learning and analytics to help business growth.", 4},
	{qHire, "Because I want a job.", 0},
	{qChallenge, "I solved a data quality problem by creating automated scripts.", 4},
	{qChallenge, "Had a problem, fixed it.", 1},
	{qFuture, "I aim to grow into a data science leader in the industry.", 4},
	{qFuture, "Not sure, just working.", 1},
}

// Examples returns a copy of the built-in training examples.
func Examples() []Example {
	return append([]Example(nil), examples...)
}

// Texts returns the classifier inputs of exs in order.
func Texts(exs []Example) []string {
	out := make([]string, len(exs))
	for i, e := range exs {
		out[i] = e.Text()
	}
	return out
}

// Labels returns the scores of exs in order.
func Labels(exs []Example) []int {
	out := make([]int, len(exs))
	for i, e := range exs {
		out[i] = e.Score
	}
	return out
}

// CountByQuestion returns how many examples each question has.
func CountByQuestion(exs []Example) map[string]int {
	counts := make(map[string]int)
	for _, e := range exs {
		counts[e.Question]++
	}
	return counts
}

// Validate checks that every example refers to a catalog question and has a
// non-empty answer. Score ranges are deliberately not checked: the classifier
// learns whatever labels it is given.
func Validate(exs []Example) error {
	var errs []string
	if len(exs) == 0 {
		errs = append(errs, "no training examples")
	}
	for i, e := range exs {
		if _, ok := questions.ByText(e.Question); !ok {
			errs = append(errs, fmt.Sprintf("example %d: unknown question %q", i, e.Question))
		}
		if strings.TrimSpace(e.Answer) == "" {
			errs = append(errs, fmt.Sprintf("example %d: empty answer", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("training corpus validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

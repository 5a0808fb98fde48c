package cmd

import (
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/abhisek/interviewprep/internal/questions"
	"github.com/abhisek/interviewprep/internal/session"
)

// promptQuestion asks the user to pick a catalog question and returns its index.
func promptQuestion() (int, error) {
	prompt := promptui.Select{
		Label: "Choose a question",
		Items: questions.Texts(),
		Size:  questions.Count(),
	}
	i, _, err := prompt.Run()
	return i, err
}

// answerPrompt builds the answer prompt for q. Blank answers are accepted and
// scored like any other text.
func answerPrompt(q questions.Question) promptui.Prompt {
	return promptui.Prompt{
		Label: "Your answer (keywords: " + strings.Join(q.Keywords, ", ") + ")",
	}
}

// promptAnswer reads a single-line answer, showing the question's keyword hints.
func promptAnswer(q questions.Question) (string, error) {
	prompt := answerPrompt(q)
	answer, err := prompt.Run()
	return strings.TrimSpace(answer), err
}

// promptConfidence asks for a 1-5 confidence rating.
func promptConfidence() (int, error) {
	items := make([]string, 0, session.MaxConfidence-session.MinConfidence+1)
	for c := session.MinConfidence; c <= session.MaxConfidence; c++ {
		items = append(items, strconv.Itoa(c))
	}
	prompt := promptui.Select{
		Label: "Confidence level (1 to 5)",
		Items: items,
	}
	i, _, err := prompt.Run()
	if err != nil {
		return 0, err
	}
	return session.MinConfidence + i, nil
}

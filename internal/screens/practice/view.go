package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/interviewprep/internal/questions"
	"github.com/abhisek/interviewprep/internal/scoring"
	"github.com/abhisek/interviewprep/internal/session"
	"github.com/abhisek/interviewprep/internal/ui/components"
	"github.com/abhisek/interviewprep/internal/ui/theme"
)

// SavedMessage is the confirmation shown after a submit.
func SavedMessage(r session.Response) string {
	return fmt.Sprintf("Answer saved with hybrid score: %d/%d (ML: %d, Keywords: %d)",
		r.Score, scoring.MaxScore, r.MLScore, r.KeywordScore)
}

func (s *PracticeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	s.answer.SetWidth(cw - 4)

	var sections []string

	sections = append(sections, components.FocusPanel(
		theme.Label.Render("Choose a question")+"\n"+s.selector.View(),
		cw, s.focus == fieldQuestion))

	hints := questions.Keywords(s.Question())
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Secondary).Width(cw).
		Render("💡 Suggested Keywords: "+strings.Join(hints, ", ")))

	sections = append(sections, components.FocusPanel(
		theme.Label.Render("Your answer")+"\n"+s.answer.View(),
		cw, s.focus == fieldAnswer))

	sections = append(sections, components.FocusPanel(
		theme.Label.Render("Confidence level (1 to 5)")+"\n"+s.confidence.View(),
		cw, s.focus == fieldConfidence))

	sections = append(sections, s.submit.View())

	if s.errMsg != "" {
		sections = append(sections, theme.Bad.Render("Error: "+s.errMsg))
	} else if s.saved != nil {
		sections = append(sections, s.renderSaved(cw))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func (s *PracticeScreen) renderSaved(cw int) string {
	r := *s.saved
	lines := []string{
		theme.Good.Render(SavedMessage(r)),
		components.NewMeter("Score", r.Score, scoring.MaxScore, cw).View(),
	}
	if fb := r.Feedback(); fb != "" {
		lines = append(lines, theme.Warn.Render("🔍 Feedback: "+fb))
	}
	return strings.Join(lines, "\n")
}

package responses

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/interviewprep/internal/export"
	"github.com/abhisek/interviewprep/internal/scoring"
	"github.com/abhisek/interviewprep/internal/session"
	"github.com/abhisek/interviewprep/internal/ui/components"
	"github.com/abhisek/interviewprep/internal/ui/theme"
)

const emptyHint = "No responses yet. Answer a question in Practice to see it here."

func statusFor(msg ExportDoneMsg) (string, bool) {
	return export.StatusText(msg.Path, msg.Err)
}

// RenderEntry renders response r as the n-th entry (1-based).
func RenderEntry(n int, r session.Response, cw int) string {
	lines := []string{
		theme.Selected.Render(fmt.Sprintf("%d. %s", n, r.Question)),
		lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 4).Render("Answer: " + r.Answer),
		theme.Hint.Render(fmt.Sprintf("Confidence: %d/%d | Score: %d/%d (ML: %d, Keywords: %d)",
			r.Confidence, session.MaxConfidence, r.Score, scoring.MaxScore, r.MLScore, r.KeywordScore)),
	}
	if fb := r.Feedback(); fb != "" {
		lines = append(lines, theme.Warn.Render("🔍 Feedback: "+fb))
	}
	return components.Panel(strings.Join(lines, "\n"), cw)
}

func (s *ResponsesScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	all := s.log.All()

	var sections []string
	if len(all) == 0 {
		sections = append(sections, theme.Hint.Render(emptyHint))
	} else {
		sections = append(sections, theme.Label.Render(fmt.Sprintf("💾 Saved Responses (%d)", len(all))))
		used := 1
		for i := min(s.offset, len(all)-1); i < len(all); i++ {
			entry := RenderEntry(i+1, all[i], cw)
			h := lipgloss.Height(entry)
			// Always show at least one entry, then stop before overflowing.
			if used+h > height-2 && i > s.offset {
				sections = append(sections, theme.Hint.Render(fmt.Sprintf("… %d more", len(all)-i)))
				break
			}
			sections = append(sections, entry)
			used += h
		}
	}

	if s.status != "" {
		sections = append(sections, components.StatusLine(s.status, s.statusIsErr))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, strings.Join(sections, "\n"))
}

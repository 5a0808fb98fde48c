package charts

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/interviewprep/internal/session"
	"github.com/abhisek/interviewprep/internal/ui/components"
	"github.com/abhisek/interviewprep/internal/ui/theme"
)

const emptyHint = "No responses yet. Submit an answer in Practice to see your charts."

// chartMax is the shared y-axis top: confidence tops out at 5, scores at 4.
const chartMax = session.MaxConfidence

// Series builds the confidence and score series for responses.
func Series(responses []session.Response) []components.Series {
	conf := make([]int, len(responses))
	score := make([]int, len(responses))
	for i, r := range responses {
		conf[i] = r.Confidence
		score[i] = r.Score
	}
	return []components.Series{
		{Name: "confidence", Values: conf, Style: lipgloss.NewStyle().Foreground(theme.SeriesConfidence), Glyph: "●"},
		{Name: "score", Values: score, Style: lipgloss.NewStyle().Foreground(theme.SeriesScore), Glyph: "■"},
	}
}

func (s *ChartsScreen) View(width, height int) string {
	responses := s.log.All()
	if len(responses) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Hint.Render(emptyHint))
	}

	total := len(responses)
	s.scroll = min(max(s.scroll, 0), total-1)
	end := total - s.scroll
	labels := components.EntryLabels(end)
	series := Series(responses[:end])

	var title, body string
	switch s.kind {
	case KindLine:
		title = "📈 Confidence vs Score Line Chart"
		c := components.LineChart{Labels: labels, Series: series, Max: chartMax, Height: chartMax}
		s.visible = c.FitWidth(width)
		body = c.Tail(s.visible).View()
	default:
		title = "📊 Confidence vs Score Bar Chart"
		c := components.BarChart{Labels: labels, Series: series, Max: chartMax, Height: chartMax}
		s.visible = c.FitWidth(width)
		body = c.Tail(s.visible).View()
	}

	lines := []string{
		s.renderTabs(),
		"",
		theme.Label.Render(title),
		"",
		body,
	}
	if s.visible < total {
		lines = append(lines, "", theme.Hint.Render(windowHint(end-s.visible+1, end, total)))
	}
	content := strings.Join(lines, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func (s *ChartsScreen) renderTabs() string {
	parts := make([]string, 0, 2)
	for _, k := range []Kind{KindBar, KindLine} {
		label := fmt.Sprintf(" %s ", k)
		if k == s.kind {
			parts = append(parts, theme.ButtonActive.Render(label))
		} else {
			parts = append(parts, theme.ButtonInactive.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func windowHint(first, last, total int) string {
	return fmt.Sprintf("showing Ans %d–%d of %d  ←/→ scroll", first, last, total)
}

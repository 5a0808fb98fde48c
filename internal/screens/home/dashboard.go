package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/interviewprep/internal/session"
	"github.com/abhisek/interviewprep/internal/ui/theme"
)

const titleFull = "🧠 AI Interview Readiness Analyzer"

const titleCompact = "Interview Prep"

// renderTitle returns the styled title or compact fallback.
func renderTitle(cw int, compact bool) string {
	text := titleFull
	if compact {
		text = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(text)
}

// renderStatsBar renders the session stats in a bordered box matching content width.
func renderStatsBar(sum session.Summary, cw int, compact bool) string {
	countStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	confStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			countStyle.Render(fmt.Sprintf("✎%d", sum.Count)),
			scoreStyle.Render(fmt.Sprintf("★%.1f", sum.AvgScore)),
			confStyle.Render(fmt.Sprintf("♥%.1f", sum.AvgConfidence)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			countStyle.Render(fmt.Sprintf("✎ %d SAVED", sum.Count)),
			scoreStyle.Render(fmt.Sprintf("★ %.1f AVG SCORE", sum.AvgScore)),
			confStyle.Render(fmt.Sprintf("♥ %.1f AVG CONFIDENCE", sum.AvgConfidence)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

func centered(s string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(s)
}

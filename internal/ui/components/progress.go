package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/interviewprep/internal/ui/theme"
)

// Meter displays a horizontal bar for an integer value out of Max.
type Meter struct {
	Label string
	Value int
	Max   int
	Width int
	Color lipgloss.Style
}

// NewMeter creates a meter using the default fill color.
func NewMeter(label string, value, limit, width int) Meter {
	return Meter{
		Label: label,
		Value: value,
		Max:   limit,
		Width: width,
		Color: theme.ProgressFilled,
	}
}

// Fraction returns Value/Max clamped to [0, 1].
func (m Meter) Fraction() float64 {
	if m.Max <= 0 {
		return 0
	}
	f := float64(m.Value) / float64(m.Max)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// View renders the meter.
func (m Meter) View() string {
	var result string

	if m.Label != "" {
		result += theme.Label.Render(m.Label) + "  "
	}

	value := fmt.Sprintf("  %d/%d", m.Value, m.Max)
	barWidth := m.Width - lipgloss.Width(result) - len(value)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * m.Fraction())
	empty := barWidth - filled

	result += m.Color.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(value)
	return result
}

package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/interviewprep/internal/ui/theme"
)

// Slider picks an integer in [Min, Max]. It accepts ←/→ and direct digit entry.
type Slider struct {
	Min     int
	Max     int
	Value   int
	Focused bool
}

// NewSlider creates a slider with value clamped into range.
func NewSlider(lo, hi, value int) Slider {
	s := Slider{Min: lo, Max: hi}
	s.Set(value)
	return s
}

// Set assigns v, clamped to [Min, Max].
func (s *Slider) Set(v int) {
	s.Value = min(max(v, s.Min), s.Max)
}

// Update handles key events while focused.
func (s Slider) Update(msg tea.Msg) (Slider, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !s.Focused {
		return s, nil
	}

	key := kmsg.String()
	switch key {
	case "left", "h", "-":
		s.Set(s.Value - 1)
	case "right", "l", "+", "=":
		s.Set(s.Value + 1)
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			d := int(key[0] - '0')
			if d >= s.Min && d <= s.Max {
				s.Value = d
			}
		}
	}
	return s, nil
}

// View renders the slider track with the current value marked.
func (s Slider) View() string {
	var b strings.Builder
	b.WriteString(theme.Hint.Render(fmt.Sprint(s.Min)) + " ")
	for v := s.Min; v <= s.Max; v++ {
		if v > s.Min {
			b.WriteString(theme.Hint.Render("──"))
		}
		switch {
		case v == s.Value && s.Focused:
			b.WriteString(theme.Selected.Render("●"))
		case v == s.Value:
			b.WriteString(theme.Body.Render("●"))
		default:
			b.WriteString(theme.Hint.Render("○"))
		}
	}
	b.WriteString(" " + theme.Hint.Render(fmt.Sprint(s.Max)))
	b.WriteString("   " + theme.Label.Render(fmt.Sprintf("%d/%d", s.Value, s.Max)))
	return b.String()
}

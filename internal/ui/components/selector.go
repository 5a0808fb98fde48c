package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/interviewprep/internal/ui/theme"
)

// Selector cycles through a fixed list of options with ←/→.
type Selector struct {
	Options []string
	Index   int
	Focused bool
}

// NewSelector creates a selector positioned on the first option.
func NewSelector(options []string) Selector {
	return Selector{Options: options}
}

// Value returns the selected option, or "" if there are none.
func (s Selector) Value() string {
	if s.Index < 0 || s.Index >= len(s.Options) {
		return ""
	}
	return s.Options[s.Index]
}

// Update handles ←/→ while focused. Selection wraps around.
func (s Selector) Update(msg tea.Msg) (Selector, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !s.Focused || len(s.Options) == 0 {
		return s, nil
	}

	n := len(s.Options)
	switch kmsg.String() {
	case "left", "h":
		s.Index = (s.Index - 1 + n) % n
	case "right", "l":
		s.Index = (s.Index + 1) % n
	}
	return s, nil
}

// View renders the selected option with its position.
func (s Selector) View() string {
	if len(s.Options) == 0 {
		return theme.Hint.Render("(no options)")
	}
	arrows := theme.Hint
	if s.Focused {
		arrows = theme.Selected
	}
	pos := theme.Hint.Render(fmt.Sprintf("%d/%d", s.Index+1, len(s.Options)))
	return arrows.Render("◂") + " " + pos + " " + arrows.Render("▸") + "  " + theme.Body.Render(s.Value())
}

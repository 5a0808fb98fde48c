package components

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// AnswerInput wraps bubbles/textarea for multi-line free-text answers.
type AnswerInput struct {
	Model textarea.Model
}

// NewAnswerInput creates an unfocused answer box.
func NewAnswerInput(placeholder string, width, height int) AnswerInput {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(width)
	ta.SetHeight(height)
	return AnswerInput{Model: ta}
}

// Focus focuses the textarea and returns its cursor blink command.
func (a *AnswerInput) Focus() tea.Cmd {
	return a.Model.Focus()
}

// Blur removes focus.
func (a *AnswerInput) Blur() {
	a.Model.Blur()
}

// SetWidth resizes the box.
func (a *AnswerInput) SetWidth(w int) {
	a.Model.SetWidth(w)
}

// Update forwards messages to the textarea.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the textarea.
func (a AnswerInput) View() string {
	return a.Model.View()
}

// Value returns the trimmed answer text.
func (a AnswerInput) Value() string {
	return strings.TrimSpace(a.Model.Value())
}

// Reset clears the answer.
func (a *AnswerInput) Reset() {
	a.Model.Reset()
}

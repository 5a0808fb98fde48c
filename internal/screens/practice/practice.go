package practice

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/interviewprep/internal/questions"
	"github.com/abhisek/interviewprep/internal/scoring"
	"github.com/abhisek/interviewprep/internal/screen"
	"github.com/abhisek/interviewprep/internal/session"
	"github.com/abhisek/interviewprep/internal/ui/components"
	"github.com/abhisek/interviewprep/internal/ui/layout"
)

// Scorer scores an answer to a catalog question.
type Scorer interface {
	Score(question, answer string) (scoring.Result, error)
}

// field identifies which control has keyboard focus.
type field int

const (
	fieldQuestion field = iota
	fieldAnswer
	fieldConfidence
	fieldSubmit
	fieldCount
)

const (
	answerHeight      = 6
	defaultConfidence = session.MinConfidence
)

// PracticeScreen lets the user answer one question at a time and records
// every submission in the session log.
type PracticeScreen struct {
	scorer     Scorer
	log        *session.Log
	selector   components.Selector
	answer     components.AnswerInput
	confidence components.Slider
	submit     components.Button
	focus      field

	saved  *session.Response
	errMsg string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen that scores with scorer and appends to log.
func New(scorer Scorer, log *session.Log) *PracticeScreen {
	s := &PracticeScreen{
		scorer:     scorer,
		log:        log,
		selector:   components.NewSelector(questions.Texts()),
		answer:     components.NewAnswerInput("Type your answer...", 60, answerHeight),
		confidence: components.NewSlider(session.MinConfidence, session.MaxConfidence, defaultConfidence),
		submit:     components.NewButton("Submit", nil),
	}
	s.selector.Focused = true
	return s
}

func (s *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+S", Description: "Submit"},
	}
	switch s.focus {
	case fieldQuestion:
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Question"})
	case fieldConfidence:
		hints = append(hints, layout.KeyHint{Key: "←→/1-5", Description: "Confidence"})
	case fieldSubmit:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Submit"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// Question returns the currently selected question text.
func (s *PracticeScreen) Question() string {
	return s.selector.Value()
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if s.focus == fieldAnswer {
			var cmd tea.Cmd
			s.answer, cmd = s.answer.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	switch kmsg.String() {
	case "tab":
		return s, s.setFocus((s.focus + 1) % fieldCount)
	case "shift+tab":
		return s, s.setFocus((s.focus + fieldCount - 1) % fieldCount)
	case "ctrl+s":
		s.handleSubmit()
		return s, nil
	}

	var cmd tea.Cmd
	switch s.focus {
	case fieldQuestion:
		s.selector, cmd = s.selector.Update(msg)
	case fieldAnswer:
		s.answer, cmd = s.answer.Update(msg)
	case fieldConfidence:
		s.confidence, cmd = s.confidence.Update(msg)
	case fieldSubmit:
		if kmsg.String() == "enter" {
			s.handleSubmit()
		}
	}
	return s, cmd
}

func (s *PracticeScreen) setFocus(f field) tea.Cmd {
	s.focus = f
	s.selector.Focused = f == fieldQuestion
	s.confidence.Focused = f == fieldConfidence
	s.submit.Focused = f == fieldSubmit
	if f == fieldAnswer {
		return s.answer.Focus()
	}
	s.answer.Blur()
	return nil
}

// handleSubmit scores the current answer and appends exactly one response.
func (s *PracticeScreen) handleSubmit() {
	question := s.Question()
	answer := s.answer.Value()

	res, err := s.scorer.Score(question, answer)
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	r, err := session.NewResponse(question, answer, s.confidence.Value, res)
	if err != nil {
		s.errMsg = err.Error()
		return
	}

	s.log.Append(r)
	s.saved = &r
	s.errMsg = ""
}

package responses

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/interviewprep/internal/screen"
	"github.com/abhisek/interviewprep/internal/session"
	"github.com/abhisek/interviewprep/internal/ui/layout"
)

// Exporter writes responses somewhere durable and reports where.
type Exporter interface {
	Export(responses []session.Response) (string, error)
}

// ExportCmd runs an export of log's current contents.
func ExportCmd(exp Exporter, log *session.Log) tea.Cmd {
	responses := log.All()
	return func() tea.Msg {
		path, err := exp.Export(responses)
		return ExportDoneMsg{Path: path, Err: err}
	}
}

// ResponsesScreen lists every saved response in submission order.
type ResponsesScreen struct {
	log      *session.Log
	exporter Exporter
	offset   int

	status      string
	statusIsErr bool
}

var _ screen.Screen = (*ResponsesScreen)(nil)
var _ screen.KeyHintProvider = (*ResponsesScreen)(nil)

// New creates a ResponsesScreen over log.
func New(log *session.Log, exporter Exporter) *ResponsesScreen {
	return &ResponsesScreen{
		log:      log,
		exporter: exporter,
	}
}

func (s *ResponsesScreen) Init() tea.Cmd {
	return nil
}

func (s *ResponsesScreen) Title() string {
	return "Saved Responses"
}

func (s *ResponsesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "x", Description: "Export CSV"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResponsesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case ExportDoneMsg:
		s.status, s.statusIsErr = statusFor(msg)
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.offset < s.log.Len()-1 {
				s.offset++
			}
		case "x":
			return s, ExportCmd(s.exporter, s.log)
		}
	}
	return s, nil
}

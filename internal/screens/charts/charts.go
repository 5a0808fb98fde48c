package charts

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/interviewprep/internal/screen"
	"github.com/abhisek/interviewprep/internal/session"
	"github.com/abhisek/interviewprep/internal/ui/layout"
)

// Kind selects which chart is shown.
type Kind int

const (
	KindBar Kind = iota
	KindLine
)

func (k Kind) String() string {
	if k == KindLine {
		return "Line"
	}
	return "Bar"
}

// ChartsScreen plots confidence against score for every saved response.
// Charts wider than the terminal show a window of the most recent entries;
// scroll counts the entries hidden past the right edge.
type ChartsScreen struct {
	log     *session.Log
	kind    Kind
	scroll  int
	visible int
}

var _ screen.Screen = (*ChartsScreen)(nil)
var _ screen.KeyHintProvider = (*ChartsScreen)(nil)

// New creates a ChartsScreen showing the bar chart first.
func New(log *session.Log) *ChartsScreen {
	return &ChartsScreen{log: log}
}

func (s *ChartsScreen) Init() tea.Cmd {
	return nil
}

func (s *ChartsScreen) Title() string {
	return "Charts"
}

func (s *ChartsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Bar/Line"},
		{Key: "←→", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

// Kind returns the chart currently shown.
func (s *ChartsScreen) Kind() Kind {
	return s.kind
}

func (s *ChartsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab":
			s.kind = 1 - s.kind
		case "left", "h":
			s.scroll = min(s.scroll+1, s.maxScroll())
		case "right", "l":
			s.scroll = max(s.scroll-1, 0)
		}
	}
	return s, nil
}

// Scroll returns how many entries are hidden past the right edge.
func (s *ChartsScreen) Scroll() int {
	return s.scroll
}

func (s *ChartsScreen) maxScroll() int {
	if s.visible == 0 {
		return 0
	}
	return max(s.log.Len()-s.visible, 0)
}

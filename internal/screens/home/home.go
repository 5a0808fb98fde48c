package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/interviewprep/internal/router"
	"github.com/abhisek/interviewprep/internal/screen"
	"github.com/abhisek/interviewprep/internal/screens/charts"
	"github.com/abhisek/interviewprep/internal/screens/practice"
	"github.com/abhisek/interviewprep/internal/screens/responses"
	"github.com/abhisek/interviewprep/internal/session"
	"github.com/abhisek/interviewprep/internal/ui/components"
	"github.com/abhisek/interviewprep/internal/ui/layout"
)

// Deps are the services shared by the screens reachable from home.
type Deps struct {
	Scorer   practice.Scorer
	Log      *session.Log
	Exporter responses.Exporter
	Logger   *zap.Logger
}

const (
	menuPractice = iota
	menuResponses
	menuCharts
	menuExport
	menuExit
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps Deps
	menu components.Menu

	status      string
	statusIsErr bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	h := &HomeScreen{deps: deps}

	push := func(name string, build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			deps.Logger.Debug("open screen", zap.String("screen", name))
			s := build()
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: s}
			}
		}
	}

	items := []components.MenuItem{
		menuPractice: {Label: "PRACTICE", Action: push("practice", func() screen.Screen {
			return practice.New(deps.Scorer, deps.Log)
		})},
		menuResponses: {Label: "RESPONSES", Action: push("responses", func() screen.Screen {
			return responses.New(deps.Log, deps.Exporter)
		})},
		menuCharts: {Label: "CHARTS", Action: push("charts", func() screen.Screen {
			return charts.New(deps.Log)
		})},
		menuExport: {Label: "EXPORT CSV", Action: func() tea.Cmd {
			return responses.ExportCmd(deps.Exporter, deps.Log)
		}},
		menuExit: {Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if done, ok := msg.(responses.ExportDoneMsg); ok {
		h.status, h.statusIsErr = exportStatus(done)
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	if _, ok := msg.(tea.KeyPressMsg); ok {
		h.status = ""
	}
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)
	sum := session.Summarize(h.deps.Log.All())

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(ChooseMascot(sum), cw))
	}
	sections = append(sections, renderStatsBar(sum, cw, compact))

	if compact {
		sections = append(sections, centered(h.menu.View(), cw))
	} else {
		sections = append(sections, centered(h.menu.ButtonsView(buttonWidth), cw))
	}

	if h.status != "" {
		sections = append(sections, centered(components.StatusLine(h.status, h.statusIsErr), cw))
	}

	content := strings.Join(sections, "\n\n")
	return components.Frame(content, width, height)
}

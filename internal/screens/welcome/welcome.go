package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/interviewprep/internal/router"
	"github.com/abhisek/interviewprep/internal/screen"
	"github.com/abhisek/interviewprep/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	stepDelay    = 400 * time.Millisecond
)

const tagline = "AI Interview Readiness Analyzer"

const intro = "Score your answers to common interview questions with keyword matching and a trained model."

// Steps are the usage instructions shown under the banner.
var Steps = []string{
	"Select a question.",
	"Write your answer in the text area.",
	"Set how confident you feel about your answer.",
	"Submit to get scored feedback and track your progress!",
}

type tickMsg time.Time

// WelcomeScreen shows the banner and usage steps before handing off to home.
// Steps are revealed one at a time; any key continues.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

// visibleSteps returns how many usage steps have been revealed so far.
func (w *WelcomeScreen) visibleSteps() int {
	return min(int(w.elapsed/stepDelay), len(Steps))
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.visibleSteps() >= len(Steps) {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{
		RenderBanner(width),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(tagline),
		theme.Hint.Render(intro),
		"",
	}

	var steps []string
	steps = append(steps, theme.Label.Render("How to use:"))
	for i := range w.visibleSteps() {
		steps = append(steps, fmt.Sprintf("%s %s",
			lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("%d.", i+1)),
			theme.Body.Render(Steps[i])))
	}
	// Reserve the rows so the layout doesn't jump as steps appear.
	for range len(Steps) - w.visibleSteps() {
		steps = append(steps, "")
	}
	sections = append(sections, lipgloss.JoinVertical(lipgloss.Left, steps...), "")
	sections = append(sections, theme.Hint.Render("press any key to continue"))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.TrimRight(content, "\n"))
}

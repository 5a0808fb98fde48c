package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/interviewprep/internal/router"
	"github.com/abhisek/interviewprep/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "home" }
func (s *stubScreen) Title() string                          { return "Home" }

func newTestWelcomeWithCounter() (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory), &callCount
}

func sendTicks(w *WelcomeScreen, n int) (screen.Screen, tea.Cmd) {
	var s screen.Screen = w
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		s, cmd = s.Update(tickMsg(time.Now()))
	}
	return s, cmd
}

func TestStepsRevealOverTime(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()

	if got := w.visibleSteps(); got != 0 {
		t.Errorf("expected 0 visible steps at start, got %d", got)
	}

	sendTicks(w, 4)
	if got := w.visibleSteps(); got != 1 {
		t.Errorf("expected 1 visible step after 400ms, got %d", got)
	}

	sendTicks(w, 12)
	if got := w.visibleSteps(); got != len(Steps) {
		t.Errorf("expected all %d steps after 1600ms, got %d", len(Steps), got)
	}

	view := w.View(100, 30)
	for _, step := range Steps {
		if !strings.Contains(view, step) {
			t.Errorf("view missing step %q", step)
		}
	}
}

func TestTickingStopsWhenAllStepsShown(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()

	_, cmd := sendTicks(w, 17)
	if cmd != nil {
		t.Error("expected no further tick once all steps are shown")
	}
	if w.elapsed != 1600*time.Millisecond {
		t.Errorf("elapsed should stop advancing, got %v", w.elapsed)
	}
}

func TestAnyKeyTransitionsToHome(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()

	_, cmd := w.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if cmd == nil {
		t.Fatal("expected transition command")
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Errorf("expected ReplaceScreenMsg, got %T", msg)
	}
	if *callCount != 1 {
		t.Errorf("expected factory called once, got %d", *callCount)
	}
}

func TestTransitionOnlyOnce(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()

	w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if cmd != nil {
		t.Error("second keypress should not transition again")
	}
	if *callCount != 1 {
		t.Errorf("expected factory called once, got %d", *callCount)
	}
}

func TestBannerCompactFallback(t *testing.T) {
	if !strings.Contains(RenderBanner(60), bannerCompact) {
		t.Error("narrow terminal should use compact banner")
	}
	if strings.Contains(RenderBanner(100), bannerCompact) {
		t.Error("wide terminal should use full banner")
	}
}

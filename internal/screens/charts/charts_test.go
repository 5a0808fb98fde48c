package charts

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/interviewprep/internal/scoring"
	"github.com/abhisek/interviewprep/internal/session"
)

func logWith(t *testing.T, scores ...int) *session.Log {
	t.Helper()
	log := session.NewLog()
	for i, sc := range scores {
		r, err := session.NewResponse("Tell me about yourself.", "answer", i%5+1, scoring.Result{Score: sc})
		if err != nil {
			t.Fatal(err)
		}
		log.Append(r)
	}
	return log
}

func TestEmptyShowsHint(t *testing.T) {
	s := New(session.NewLog())
	if !strings.Contains(s.View(100, 30), "No responses yet") {
		t.Error("empty log should show hint")
	}
}

func TestTabTogglesChart(t *testing.T) {
	s := New(logWith(t, 2))
	if s.Kind() != KindBar {
		t.Fatal("expected bar chart first")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.Kind() != KindLine {
		t.Error("tab should switch to line chart")
	}
	if !strings.Contains(s.View(100, 30), "Line Chart") {
		t.Error("view should show line chart title")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.Kind() != KindBar {
		t.Error("tab should switch back to bar chart")
	}
}

func TestViewLabelsEveryEntry(t *testing.T) {
	s := New(logWith(t, 1, 2, 3))

	view := s.View(100, 30)
	for _, want := range []string{"Ans 1", "Ans 2", "Ans 3", "confidence", "score"} {
		if !strings.Contains(view, want) {
			t.Errorf("bar chart view missing %q", want)
		}
	}
	if view != s.View(100, 30) {
		t.Error("rendering twice should produce identical output")
	}
}

func TestSeries(t *testing.T) {
	log := logWith(t, 4, 0)
	series := Series(log.All())

	if len(series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(series))
	}
	if got := series[0].Values; got[0] != 1 || got[1] != 2 {
		t.Errorf("unexpected confidence values %v", got)
	}
	if got := series[1].Values; got[0] != 4 || got[1] != 0 {
		t.Errorf("unexpected score values %v", got)
	}
}

func manyScores(n int) []int {
	scores := make([]int, n)
	for i := range scores {
		scores[i] = i % 5
	}
	return scores
}

func TestViewFitsTerminalWidth(t *testing.T) {
	for _, kind := range []Kind{KindBar, KindLine} {
		t.Run(kind.String(), func(t *testing.T) {
			s := New(logWith(t, manyScores(25)...))
			s.kind = kind

			view := s.View(80, 30)
			if w := lipgloss.Width(view); w > 80 {
				t.Errorf("view is %d columns wide, want <= 80", w)
			}
			for _, want := range []string{"Ans 25", "of 25"} {
				if !strings.Contains(view, want) {
					t.Errorf("view missing %q", want)
				}
			}
			if strings.Contains(view, "Ans 2 ") {
				t.Error("oldest entries should be off screen")
			}
		})
	}
}

func TestNoWindowHintWhenEverythingFits(t *testing.T) {
	s := New(logWith(t, 1, 2, 3))
	if strings.Contains(s.View(100, 30), "showing") {
		t.Error("hint shown although every entry fits")
	}
}

func TestArrowsScrollWindow(t *testing.T) {
	s := New(logWith(t, manyScores(25)...))
	s.View(80, 30)

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.Scroll() != 0 {
		t.Errorf("right at newest entry should stay put, got %d", s.Scroll())
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if s.Scroll() != 1 {
		t.Fatalf("left should scroll back one entry, got %d", s.Scroll())
	}
	view := s.View(80, 30)
	if !strings.Contains(view, "–24 of 25") {
		t.Error("window should end at Ans 24 after scrolling left")
	}
	if strings.Contains(view, "Ans 25") {
		t.Error("Ans 25 should be scrolled off")
	}
	if s.Kind() != KindBar {
		t.Error("arrows should not switch chart kind")
	}

	for range 50 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	}
	view = s.View(80, 30)
	if !strings.Contains(view, "showing Ans 1–") {
		t.Error("scrolling far left should stop at Ans 1")
	}
	if w := lipgloss.Width(view); w > 80 {
		t.Errorf("scrolled view is %d columns wide, want <= 80", w)
	}
}

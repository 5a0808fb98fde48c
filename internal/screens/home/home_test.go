package home

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/interviewprep/internal/export"
	"github.com/abhisek/interviewprep/internal/router"
	"github.com/abhisek/interviewprep/internal/scoring"
	"github.com/abhisek/interviewprep/internal/screens/charts"
	"github.com/abhisek/interviewprep/internal/screens/practice"
	"github.com/abhisek/interviewprep/internal/screens/responses"
	"github.com/abhisek/interviewprep/internal/session"
)

type stubScorer struct{}

func (stubScorer) Score(string, string) (scoring.Result, error) {
	return scoring.Result{MLScore: 2, KeywordScore: 2, Score: 2}, nil
}

type stubExporter struct{ err error }

func (m stubExporter) Export(rs []session.Response) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if len(rs) == 0 {
		return "", export.ErrNoResponses
	}
	return export.DefaultPath, nil
}

func newTestHome(exp stubExporter) (*HomeScreen, *session.Log) {
	log := session.NewLog()
	return New(Deps{Scorer: stubScorer{}, Log: log, Exporter: exp}), log
}

// selectItem moves to menu item i and presses enter, returning the message produced.
func selectItem(t *testing.T, h *HomeScreen, i int) tea.Msg {
	t.Helper()
	for range i {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("menu item %d produced no command", i)
	}
	return cmd()
}

func TestMenuLabels(t *testing.T) {
	h, _ := newTestHome(stubExporter{})
	view := h.View(120, 40)
	for _, want := range []string{"PRACTICE", "RESPONSES", "CHARTS", "EXPORT CSV", "EXIT"} {
		if !strings.Contains(view, want) {
			t.Errorf("home view missing %q", want)
		}
	}
}

func TestMenuPushesScreens(t *testing.T) {
	tests := []struct {
		item  int
		check func(msg router.PushScreenMsg) bool
	}{
		{menuPractice, func(m router.PushScreenMsg) bool { _, ok := m.Screen.(*practice.PracticeScreen); return ok }},
		{menuResponses, func(m router.PushScreenMsg) bool { _, ok := m.Screen.(*responses.ResponsesScreen); return ok }},
		{menuCharts, func(m router.PushScreenMsg) bool { _, ok := m.Screen.(*charts.ChartsScreen); return ok }},
	}
	for _, tt := range tests {
		h, _ := newTestHome(stubExporter{})
		msg := selectItem(t, h, tt.item)
		push, ok := msg.(router.PushScreenMsg)
		if !ok {
			t.Errorf("item %d: expected PushScreenMsg, got %T", tt.item, msg)
			continue
		}
		if !tt.check(push) {
			t.Errorf("item %d: pushed wrong screen %T", tt.item, push.Screen)
		}
	}
}

func TestExitQuits(t *testing.T) {
	h, _ := newTestHome(stubExporter{})
	msg := selectItem(t, h, menuExit)
	if _, ok := msg.(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", msg)
	}
}

func TestExportStatusMessages(t *testing.T) {
	h, log := newTestHome(stubExporter{})

	h.Update(selectItem(t, h, menuExport))
	if !strings.Contains(h.View(120, 40), "No responses to export yet.") {
		t.Error("expected empty-export warning")
	}

	r, _ := session.NewResponse("Why should we hire you?", "value", 3, scoring.Result{Score: 2})
	log.Append(r)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	h.Update(cmd())
	if !strings.Contains(h.View(120, 40), "Exported to 'interview_responses.csv'") {
		t.Error("expected export success message")
	}
}

func TestExportFailureMessage(t *testing.T) {
	h, _ := newTestHome(stubExporter{err: errors.New("permission denied")})

	h.Update(selectItem(t, h, menuExport))
	if !strings.Contains(h.View(120, 40), "permission denied") {
		t.Error("expected export error message")
	}
}

func TestStatsReflectLog(t *testing.T) {
	h, log := newTestHome(stubExporter{})
	r, _ := session.NewResponse("Why should we hire you?", "value", 4, scoring.Result{Score: 3})
	log.Append(r)

	view := h.View(120, 40)
	if !strings.Contains(view, "1 SAVED") {
		t.Error("stats should show saved count")
	}
	if !strings.Contains(view, "3.0 AVG SCORE") {
		t.Error("stats should show average score")
	}
}

func TestChooseMascot(t *testing.T) {
	tests := []struct {
		name string
		sum  session.Summary
		want MascotVariant
	}{
		{"empty", session.Summary{}, MascotIdle},
		{"strong", session.Summary{Count: 2, AvgScore: 3.5}, MascotCelebrating},
		{"mostly low", session.Summary{Count: 3, AvgScore: 1, LowScores: 2}, MascotAlert},
		{"middling", session.Summary{Count: 2, AvgScore: 2, LowScores: 1}, MascotIdle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChooseMascot(tt.sum); got != tt.want {
				t.Errorf("ChooseMascot() = %v, want %v", got, tt.want)
			}
		})
	}
}

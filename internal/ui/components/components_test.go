package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/interviewprep/internal/ui/theme"
)

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func char(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMenuWrapsAndSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "A"},
		{Label: "B", Disabled: true},
		{Label: "C"},
	})

	m, _ = m.Update(key(tea.KeyDown))
	if m.Selected != 2 {
		t.Errorf("down should skip disabled item, got %d", m.Selected)
	}
	m, _ = m.Update(key(tea.KeyDown))
	if m.Selected != 0 {
		t.Errorf("down at bottom should wrap to 0, got %d", m.Selected)
	}
	m, _ = m.Update(key(tea.KeyUp))
	if m.Selected != 2 {
		t.Errorf("up at top should wrap to 2, got %d", m.Selected)
	}
}

func TestMenuEnterRunsAction(t *testing.T) {
	type picked struct{}
	m := NewMenu([]MenuItem{
		{Label: "Go", Action: func() tea.Cmd { return func() tea.Msg { return picked{} } }},
	})

	_, cmd := m.Update(key(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected command from enter")
	}
	if _, ok := cmd().(picked); !ok {
		t.Error("expected action message")
	}
}

func TestButtonIgnoresEnterWhenBlurred(t *testing.T) {
	pressed := 0
	b := NewButton("Submit", func() tea.Cmd { pressed++; return nil })

	b.Update(key(tea.KeyEnter))
	if pressed != 0 {
		t.Error("blurred button should not fire")
	}

	b.Focused = true
	b.Update(key(tea.KeyEnter))
	if pressed != 1 {
		t.Errorf("focused button should fire once, fired %d", pressed)
	}
}

func TestSelectorCycles(t *testing.T) {
	s := NewSelector([]string{"one", "two", "three"})

	s, _ = s.Update(key(tea.KeyRight))
	if s.Index != 0 {
		t.Error("unfocused selector should ignore keys")
	}

	s.Focused = true
	s, _ = s.Update(key(tea.KeyLeft))
	if s.Value() != "three" {
		t.Errorf("left from first should wrap to last, got %q", s.Value())
	}
	s, _ = s.Update(key(tea.KeyRight))
	s, _ = s.Update(key(tea.KeyRight))
	if s.Value() != "two" {
		t.Errorf("expected two, got %q", s.Value())
	}
}

func TestSliderClampsAndAcceptsDigits(t *testing.T) {
	s := NewSlider(1, 5, 9)
	if s.Value != 5 {
		t.Fatalf("initial value should clamp to 5, got %d", s.Value)
	}

	s.Focused = true
	s, _ = s.Update(key(tea.KeyRight))
	if s.Value != 5 {
		t.Errorf("right at max should stay at 5, got %d", s.Value)
	}

	s, _ = s.Update(char('2'))
	if s.Value != 2 {
		t.Errorf("digit 2 should set value, got %d", s.Value)
	}

	s, _ = s.Update(char('8'))
	if s.Value != 2 {
		t.Errorf("out-of-range digit should be ignored, got %d", s.Value)
	}

	s, _ = s.Update(key(tea.KeyLeft))
	s, _ = s.Update(key(tea.KeyLeft))
	if s.Value != 1 {
		t.Errorf("left should clamp at 1, got %d", s.Value)
	}
}

func TestMeterFraction(t *testing.T) {
	tests := []struct {
		value, max int
		want       float64
	}{
		{2, 4, 0.5},
		{6, 4, 1},
		{-1, 4, 0},
		{3, 0, 0},
	}
	for _, tt := range tests {
		m := NewMeter("", tt.value, tt.max, 30)
		if got := m.Fraction(); got != tt.want {
			t.Errorf("Fraction(%d/%d) = %v, want %v", tt.value, tt.max, got, tt.want)
		}
	}
	if v := NewMeter("Score", 3, 4, 30).View(); !strings.Contains(v, "3/4") {
		t.Errorf("meter view missing value: %q", v)
	}
}

func testSeries() []Series {
	return []Series{
		{Name: "Confidence", Values: []int{3, 5, 1}, Style: theme.Good, Glyph: "●"},
		{Name: "Score", Values: []int{2, 4, 0}, Style: theme.Warn, Glyph: "■"},
	}
}

func TestBarChartDeterministic(t *testing.T) {
	c := BarChart{Labels: EntryLabels(3), Series: testSeries(), Max: 5, Height: 5}

	first := c.View()
	second := c.View()
	if first != second {
		t.Error("bar chart render should be deterministic")
	}
	for _, want := range []string{"Ans 1", "Ans 2", "Ans 3", "Confidence", "Score"} {
		if !strings.Contains(first, want) {
			t.Errorf("bar chart missing %q", want)
		}
	}
}

func TestLineChartDeterministic(t *testing.T) {
	c := LineChart{Labels: EntryLabels(3), Series: testSeries(), Max: 5, Height: 5}

	first := c.View()
	if first != c.View() {
		t.Error("line chart render should be deterministic")
	}
	if !strings.Contains(first, "Ans 3") {
		t.Error("line chart missing entry label")
	}
	// One row per value 0..5 plus axis, labels, blank, legend.
	if got := strings.Count(first, "\n") + 1; got != 6+4 {
		t.Errorf("expected 10 lines, got %d", got)
	}
}

func longSeries(n int) []Series {
	conf := make([]int, n)
	score := make([]int, n)
	for i := range conf {
		conf[i] = i%5 + 1
		score[i] = i % 5
	}
	return []Series{
		{Name: "Confidence", Values: conf, Style: theme.Good, Glyph: "●"},
		{Name: "Score", Values: score, Style: theme.Warn, Glyph: "■"},
	}
}

func TestChartsFitWidth(t *testing.T) {
	const n, width = 24, 80
	bar := BarChart{Labels: EntryLabels(n), Series: longSeries(n), Max: 5, Height: 5}
	line := LineChart{Labels: EntryLabels(n), Series: longSeries(n), Max: 5, Height: 5}

	views := map[string]struct {
		fit  int
		view func(k int) string
	}{
		"bar":  {bar.FitWidth(width), func(k int) string { return bar.Tail(k).View() }},
		"line": {line.FitWidth(width), func(k int) string { return line.Tail(k).View() }},
	}
	for name, c := range views {
		if c.fit < 1 || c.fit >= n {
			t.Fatalf("%s: expected a partial window, got %d of %d", name, c.fit, n)
		}
		view := c.view(c.fit)
		if w := lipgloss.Width(view); w > width {
			t.Errorf("%s: %d entries render %d columns wide, want <= %d", name, c.fit, w, width)
		}
		if !strings.Contains(view, "Ans 24") {
			t.Errorf("%s: newest entry missing from window", name)
		}
		if w := lipgloss.Width(c.view(c.fit + 1)); w <= width {
			t.Errorf("%s: one more entry would still fit (%d columns)", name, w)
		}
	}
}

func TestChartTailKeepsLabelsAligned(t *testing.T) {
	c := BarChart{Labels: EntryLabelsFrom(10, 3), Series: testSeries(), Max: 5, Height: 5}.Tail(2)

	if len(c.Labels) != 2 || c.Labels[0] != "Ans 12" || c.Labels[1] != "Ans 13" {
		t.Fatalf("unexpected labels %v", c.Labels)
	}
	if got := c.Series[0].Values; len(got) != 2 || got[0] != 5 || got[1] != 1 {
		t.Errorf("unexpected tail values %v", got)
	}
	if got := (LineChart{Labels: EntryLabels(3), Series: testSeries()}).Tail(9); len(got.Labels) != 3 {
		t.Errorf("tail past length should keep everything, got %d", len(got.Labels))
	}
}

func TestChartsEmpty(t *testing.T) {
	if v := (BarChart{Max: 5, Height: 5}).View(); v != "" {
		t.Errorf("empty bar chart should render nothing, got %q", v)
	}
	if v := (LineChart{Series: testSeries(), Max: 5, Height: 5}).View(); v != "" {
		t.Errorf("line chart without labels should render nothing, got %q", v)
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		v, top, height, want int
	}{
		{0, 5, 5, 0},
		{5, 5, 5, 5},
		{2, 4, 8, 4},
		{9, 5, 5, 5},
		{-3, 5, 5, 0},
		{1, 0, 5, 0},
	}
	for _, tt := range tests {
		if got := scale(tt.v, tt.top, tt.height); got != tt.want {
			t.Errorf("scale(%d, %d, %d) = %d, want %d", tt.v, tt.top, tt.height, got, tt.want)
		}
	}
}

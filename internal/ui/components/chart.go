package components

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/interviewprep/internal/ui/theme"
)

// Series is one named sequence of values plotted by a chart.
type Series struct {
	Name   string
	Values []int
	Style  lipgloss.Style
	Glyph  string
}

// EntryLabels returns "Ans 1".."Ans n".
func EntryLabels(n int) []string {
	return EntryLabelsFrom(0, n)
}

// EntryLabelsFrom returns n labels starting at "Ans first+1".
func EntryLabelsFrom(first, n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("Ans %d", first+i+1)
	}
	return labels
}

// tailSeries keeps the last n values of every series, aligned to total entries.
func tailSeries(series []Series, total, n int) []Series {
	start := total - n
	out := make([]Series, len(series))
	for i, s := range series {
		out[i] = s
		if start < len(s.Values) {
			out[i].Values = s.Values[start:]
		} else {
			out[i].Values = nil
		}
	}
	return out
}

// minEntryWidth is the narrowest column either chart gives one entry.
const minEntryWidth = lineColWidth

// fitEntries returns how many trailing entries of a chart with total entries
// render within width columns. view renders the last n entries. At least one
// entry is always kept.
func fitEntries(total, width, yw int, view func(n int) string) int {
	if total == 0 {
		return 0
	}
	n := min(total, max(1, (width-yw-2)/minEntryWidth))
	for n > 1 && lipgloss.Width(view(n)) > width {
		n--
	}
	for n < total && lipgloss.Width(view(n+1)) <= width {
		n++
	}
	return n
}

// scale maps v in [0, top] onto [0, height] rows.
func scale(v, top, height int) int {
	if top <= 0 || height <= 0 {
		return 0
	}
	r := int(math.Round(float64(v) * float64(height) / float64(top)))
	if r < 0 {
		return 0
	}
	if r > height {
		return height
	}
	return r
}

func legend(series []Series) string {
	parts := make([]string, 0, len(series))
	for _, s := range series {
		parts = append(parts, s.Style.Render(s.Glyph)+" "+s.Name)
	}
	return strings.Join(parts, "   ")
}

// axisLabel renders the y-axis tick for a row, or blank padding.
func axisLabel(row, top, height, width int) string {
	if top == height || row == height || row == 0 {
		v := row
		if top != height {
			v = top * row / height
		}
		return fmt.Sprintf("%*d │", width, v)
	}
	return strings.Repeat(" ", width) + " │"
}

// BarChart draws grouped vertical bars, one group per label and one bar per series.
type BarChart struct {
	Labels []string
	Series []Series
	Max    int
	Height int
}

// Tail returns a copy of c holding only the last n entries.
func (c BarChart) Tail(n int) BarChart {
	n = min(max(n, 0), len(c.Labels))
	total := len(c.Labels)
	c.Series = tailSeries(c.Series, total, n)
	c.Labels = c.Labels[total-n:]
	return c
}

// FitWidth returns how many trailing entries fit in width columns.
func (c BarChart) FitWidth(width int) int {
	return fitEntries(len(c.Labels), width, len(fmt.Sprint(c.Max)), func(n int) string {
		return c.Tail(n).View()
	})
}

func (c BarChart) groupWidth() int {
	w := len(c.Series)*3 + 1
	for _, l := range c.Labels {
		if lipgloss.Width(l)+2 > w {
			w = lipgloss.Width(l) + 2
		}
	}
	return w
}

// View renders the chart. An empty chart renders as an empty string.
func (c BarChart) View() string {
	if len(c.Labels) == 0 || len(c.Series) == 0 || c.Height <= 0 {
		return ""
	}

	gw := c.groupWidth()
	yw := len(fmt.Sprint(c.Max))
	var b strings.Builder

	for row := c.Height; row >= 1; row-- {
		b.WriteString(theme.Hint.Render(axisLabel(row, c.Max, c.Height, yw)))
		for i := range c.Labels {
			var cell strings.Builder
			cell.WriteString(" ")
			for _, s := range c.Series {
				v := 0
				if i < len(s.Values) {
					v = s.Values[i]
				}
				if scale(v, c.Max, c.Height) >= row {
					cell.WriteString(s.Style.Render("██"))
				} else {
					cell.WriteString("  ")
				}
				cell.WriteString(" ")
			}
			pad := gw - 1 - len(c.Series)*3
			b.WriteString(cell.String() + strings.Repeat(" ", max(pad, 0)))
		}
		b.WriteString("\n")
	}

	b.WriteString(theme.Hint.Render(fmt.Sprintf("%*d └", yw, 0) + strings.Repeat("─", gw*len(c.Labels))))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", yw+2))
	for _, l := range c.Labels {
		b.WriteString(lipgloss.PlaceHorizontal(gw, lipgloss.Center, l))
	}
	b.WriteString("\n\n")
	b.WriteString(strings.Repeat(" ", yw+2) + legend(c.Series))
	return b.String()
}

// LineChart plots each series as markers joined by line segments over a value grid.
// Cells where series meet are drawn with a shared marker.
type LineChart struct {
	Labels []string
	Series []Series
	Max    int
	Height int
}

const lineColWidth = 7

// Tail returns a copy of c holding only the last n entries.
func (c LineChart) Tail(n int) LineChart {
	n = min(max(n, 0), len(c.Labels))
	total := len(c.Labels)
	c.Series = tailSeries(c.Series, total, n)
	c.Labels = c.Labels[total-n:]
	return c
}

// FitWidth returns how many trailing entries fit in width columns.
func (c LineChart) FitWidth(width int) int {
	return fitEntries(len(c.Labels), width, len(fmt.Sprint(c.Max)), func(n int) string {
		return c.Tail(n).View()
	})
}

// View renders the chart. An empty chart renders as an empty string.
func (c LineChart) View() string {
	if len(c.Labels) == 0 || len(c.Series) == 0 || c.Height <= 0 {
		return ""
	}

	// grid[row][col] holds the index of the series occupying the cell, -1 if
	// empty, -2 if more than one series landed there.
	width := (len(c.Labels)-1)*lineColWidth + 1
	grid := make([][]int, c.Height+1)
	marks := make([][]bool, c.Height+1)
	for r := range grid {
		grid[r] = make([]int, width)
		marks[r] = make([]bool, width)
		for x := range grid[r] {
			grid[r][x] = -1
		}
	}

	put := func(r, x, si int, mark bool) {
		switch grid[r][x] {
		case -1, si:
			grid[r][x] = si
		default:
			grid[r][x] = -2
		}
		marks[r][x] = marks[r][x] || mark
	}

	for si, s := range c.Series {
		for i := range c.Labels {
			if i >= len(s.Values) {
				break
			}
			r := scale(s.Values[i], c.Max, c.Height)
			x := i * lineColWidth
			put(r, x, si, true)
			if i+1 >= len(c.Labels) || i+1 >= len(s.Values) {
				continue
			}
			next := scale(s.Values[i+1], c.Max, c.Height)
			for step := 1; step < lineColWidth; step++ {
				y := r + int(math.Round(float64((next-r)*step)/float64(lineColWidth)))
				put(y, x+step, si, false)
			}
		}
	}

	yw := len(fmt.Sprint(c.Max))
	var b strings.Builder
	for row := c.Height; row >= 0; row-- {
		b.WriteString(theme.Hint.Render(axisLabel(row, c.Max, c.Height, yw)))
		for x := range width {
			b.WriteString(c.cell(grid[row][x], marks[row][x]))
		}
		b.WriteString("\n")
	}

	b.WriteString(theme.Hint.Render(strings.Repeat(" ", yw+1) + "└" + strings.Repeat("─", width+lineColWidth/2)))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", yw+2))
	for i, l := range c.Labels {
		if i == len(c.Labels)-1 {
			b.WriteString(l)
			break
		}
		b.WriteString(l + strings.Repeat(" ", max(lineColWidth-lipgloss.Width(l), 1)))
	}
	b.WriteString("\n\n")
	b.WriteString(strings.Repeat(" ", yw+2) + legend(c.Series))
	return b.String()
}

func (c LineChart) cell(si int, mark bool) string {
	switch {
	case si == -1:
		return " "
	case si == -2 && mark:
		return theme.Body.Bold(true).Render("◆")
	case si == -2:
		return theme.Hint.Render("·")
	case mark:
		s := c.Series[si]
		return s.Style.Render(s.Glyph)
	default:
		return c.Series[si].Style.Render("·")
	}
}

package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/interviewprep/internal/session"
	"github.com/abhisek/interviewprep/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // No answers yet, or middling scores
	MascotCelebrating                      // Average score 3 or better
	MascotAlert                            // Most answers need more points
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ?!… │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ ✓✓✓ │
└─╥═╥─┘
  ╚═╝`

const mascotAlert = `┌─────┐
│ ◉ ◉ │ !
│  ▽  │
│ ?!… │
└─────┘`

// ChooseMascot picks a variant from the session summary.
func ChooseMascot(sum session.Summary) MascotVariant {
	switch {
	case sum.Count == 0:
		return MascotIdle
	case sum.AvgScore >= 3:
		return MascotCelebrating
	case sum.LowScores*2 > sum.Count:
		return MascotAlert
	}
	return MascotIdle
}

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Success
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}

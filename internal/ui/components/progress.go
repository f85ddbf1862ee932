package components

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/minatbakat/internal/ui/theme"
)

// ProgressBar displays a horizontal bar. It serves both the quiz progress
// line and the per-letter score charts on the result screen.
type ProgressBar struct {
	Label       string
	Percent     float64 // 0..1
	ShowPercent bool
	Suffix      string // printed after the bar, e.g. a raw score
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// PercentText is the rounded percentage shown next to the bar.
func (p ProgressBar) PercentText() string {
	return fmt.Sprintf("%d%%", int(math.Round(p.clamped()*100)))
}

func (p ProgressBar) clamped() float64 {
	return math.Max(0, math.Min(1, p.Percent))
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(p.Label) + "  "
	}

	var tail string
	if p.ShowPercent {
		tail += "  " + p.PercentText()
	}
	if p.Suffix != "" {
		tail += "  " + p.Suffix
	}
	tail = lipgloss.NewStyle().Foreground(theme.TextDim).Render(tail)

	barWidth := max(p.Width-lipgloss.Width(result)-lipgloss.Width(tail), 4)

	filled := min(int(float64(barWidth)*p.clamped()), barWidth)
	empty := barWidth - filled

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty)) +
		tail

	return result
}

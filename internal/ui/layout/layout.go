// Package layout draws the chrome around every screen: a one-line header
// with a rule beneath it, the screen body, and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/minatbakat/internal/ui/theme"
)

// AppName is the brand on the left of the header.
const AppName = "Minat Bakat"

// Smallest terminal the quiz renders in.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one footer entry.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below MinWidth x MinHeight.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal terlalu kecil!\n\nPerbesar jendela minimal %d x %d\n(sekarang %d x %d)",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Body.Align(lipgloss.Center).Render(msg))
}

var (
	brandStyle  = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	titleStyle  = lipgloss.NewStyle().Foreground(theme.Text)
	statusStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	ruleStyle   = lipgloss.NewStyle().Foreground(theme.Border)
	keyStyle    = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
)

// RenderHeader puts the brand left, the title centred and status right,
// over a full-width rule.
func RenderHeader(title, status string, width int) string {
	left := brandStyle.Render(" " + AppName)
	right := statusStyle.Render(status + " ")
	mid := titleStyle.Render(title)

	free := width - lipgloss.Width(left) - lipgloss.Width(right)
	line := left + lipgloss.PlaceHorizontal(max(free, 0), lipgloss.Center, mid) + right
	return line + "\n" + ruleStyle.Render(strings.Repeat("─", width))
}

// RenderFooter lays hints out on one line under a rule. Hints that do not
// fit are dropped from the end.
func RenderFooter(hints []KeyHint, width int) string {
	const sep = "  ·  "
	var b strings.Builder
	b.WriteString(" ")
	for i, h := range hints {
		part := keyStyle.Render(h.Key) + " " + theme.Hint.Render(h.Description)
		if i > 0 {
			part = theme.Hint.Render(sep) + part
		}
		if lipgloss.Width(b.String())+lipgloss.Width(part) > width {
			break
		}
		b.WriteString(part)
	}
	return ruleStyle.Render(strings.Repeat("─", width)) + "\n" + b.String()
}

// RenderFrame stacks header, body and footer, padding the body so the
// footer sits on the last line.
func RenderFrame(header, body, footer string, width, height int) string {
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Width(width).Height(bodyHeight).MaxHeight(bodyHeight).Render(body),
		footer,
	)
}

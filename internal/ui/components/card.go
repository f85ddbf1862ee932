package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/minatbakat/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all screen
// sections so boxes line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 76)
}

// Center places content in the middle of the given area.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return theme.Card.
		Width(cw).
		Render(content)
}

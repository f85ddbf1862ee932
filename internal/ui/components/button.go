package components

import (
	"github.com/abhisek/minatbakat/internal/ui/theme"
)

// Button is a navigation button. A disabled button renders dimmed; the
// owning screen decides what a press does.
type Button struct {
	Label   string
	Enabled bool
}

// NewButton creates a new button.
func NewButton(label string, enabled bool) Button {
	return Button{Label: label, Enabled: enabled}
}

// View renders the button.
func (b Button) View() string {
	if b.Enabled {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonDisabled.Render(b.Label)
}

// Package screen defines the contract every TUI step implements.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/minatbakat/internal/ui/layout"
)

// Screen is one step of the quiz: welcome, participant form, a question,
// or the result report.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is an optional interface for text shown on the right of
// the header, such as the participant name or question counter.
type StatusProvider interface {
	Status() string
}

// BackGuard lets a screen veto the global Esc-to-go-back. The question
// screen uses it because Esc would discard the run; it has its own
// previous-question key instead.
type BackGuard interface {
	AllowBack() bool
}

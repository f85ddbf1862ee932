package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/minatbakat/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a label and a required marker.
type TextInput struct {
	Label string
	Model textinput.Model
}

// NewTextInput creates a new labelled, unfocused text input.
func NewTextInput(label, placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Label: label, Model: ti}
}

// Focus gives the input the cursor.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes the cursor.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has the cursor.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// Value returns the input value with surrounding whitespace trimmed.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// Filled reports whether the input holds anything besides whitespace.
func (t TextInput) Filled() bool {
	return t.Value() != ""
}

// View renders the label line and the input. When showMissing is set an
// empty input is flagged.
func (t TextInput) View(showMissing bool) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if t.Focused() {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	label := labelStyle.Render(t.Label)
	if showMissing && !t.Filled() {
		label += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("wajib diisi")
	}
	return label + "\n" + t.Model.View()
}

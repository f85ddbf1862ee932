package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/minatbakat/internal/quiz"
	"github.com/abhisek/minatbakat/internal/ui/theme"
)

// Scale end captions.
const (
	LikertLowCaption  = "Sangat Tidak Setuju"
	LikertHighCaption = "Sangat Setuju"
)

// Likert is a horizontal 1..5 agreement selector. Value 0 means no
// answer yet. Left/right move the cursor and select, except that the
// first arrow press on an unanswered question selects the cursor where
// it rests. Digits select directly; space selects the cursor position.
type Likert struct {
	Value  int
	Cursor int
}

// NewLikert starts with value pre-selected, or nothing selected when value
// is 0. The cursor rests on the selection or the neutral midpoint.
func NewLikert(value int) Likert {
	cursor := quiz.LikertNeutral
	if quiz.ValidLikert(value) {
		cursor = value
	} else {
		value = 0
	}
	return Likert{Value: value, Cursor: cursor}
}

// Selected reports whether a value has been chosen.
func (l Likert) Selected() bool {
	return l.Value != 0
}

// Update handles key presses. changed is true when Value moved.
func (l Likert) Update(msg tea.Msg) (updated Likert, changed bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, false
	}

	before := l.Value
	switch key := kmsg.String(); key {
	case "left", "h":
		if l.Selected() {
			l.Cursor = max(l.Cursor-1, quiz.LikertMin)
		}
		l.Value = l.Cursor
	case "right", "l":
		if l.Selected() {
			l.Cursor = min(l.Cursor+1, quiz.LikertMax)
		}
		l.Value = l.Cursor
	case "space":
		l.Value = l.Cursor
	default:
		if v, err := strconv.Atoi(key); err == nil && quiz.ValidLikert(v) {
			l.Cursor = v
			l.Value = v
		}
	}
	return l, l.Value != before
}

// View renders the five options between the scale captions.
func (l Likert) View() string {
	opts := make([]string, 0, quiz.LikertMax)
	for v := quiz.LikertMin; v <= quiz.LikertMax; v++ {
		label := "[" + strconv.Itoa(v) + "]"
		switch {
		case v == l.Value:
			opts = append(opts, theme.LikertChosen.Render(label))
		case v == l.Cursor:
			opts = append(opts, theme.LikertCursor.Render(label))
		default:
			opts = append(opts, theme.LikertIdle.Render(label))
		}
	}

	caption := lipgloss.NewStyle().Foreground(theme.TextDim)
	return caption.Render(LikertLowCaption) + "  " +
		strings.Join(opts, " ") + "  " +
		caption.Render(LikertHighCaption)
}

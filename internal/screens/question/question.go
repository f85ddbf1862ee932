// Package question walks the participant through the Likert statements.
package question

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/minatbakat/internal/router"
	"github.com/abhisek/minatbakat/internal/screen"
	"github.com/abhisek/minatbakat/internal/session"
	"github.com/abhisek/minatbakat/internal/ui/components"
	"github.com/abhisek/minatbakat/internal/ui/layout"
	"github.com/abhisek/minatbakat/internal/ui/theme"
)

// PrevLabel is the caption of the back button.
const PrevLabel = "Kembali"

// QuestionScreen shows one statement at a time and drives the session
// transitions.
type QuestionScreen struct {
	state    session.State
	likert   components.Likert
	finish   func(session.State) screen.Screen
	logger   *zap.Logger
	nudge    bool
	finished bool
}

var (
	_ screen.Screen    = (*QuestionScreen)(nil)
	_ screen.BackGuard = (*QuestionScreen)(nil)
)

// New creates the screen at the state's current question. finish builds
// the result screen once the last question is answered.
func New(st session.State, finish func(session.State) screen.Screen, logger *zap.Logger) *QuestionScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	q := &QuestionScreen{state: st, finish: finish, logger: logger}
	q.syncLikert()
	return q
}

// State returns the run as it stands.
func (q *QuestionScreen) State() session.State {
	return q.state
}

func (q *QuestionScreen) syncLikert() {
	v, _ := q.state.CurrentAnswer()
	q.likert = components.NewLikert(v)
}

func (q *QuestionScreen) Title() string {
	return "Pertanyaan"
}

// Status is the "N/total" counter in the header.
func (q *QuestionScreen) Status() string {
	return fmt.Sprintf("%d/%d", q.state.Index+1, len(q.state.Questions))
}

// AllowBack keeps Esc from throwing away the run.
func (q *QuestionScreen) AllowBack() bool {
	return false
}

func (q *QuestionScreen) Init() tea.Cmd {
	return nil
}

func (q *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || q.finished {
		return q, nil
	}

	switch kmsg.String() {
	case "enter":
		return q, q.next()
	case "p", "shift+tab", "backspace":
		q.state = session.Prev(q.state)
		q.nudge = false
		q.syncLikert()
		return q, nil
	}

	likert, changed := q.likert.Update(kmsg)
	q.likert = likert
	if !changed {
		return q, nil
	}
	st, err := session.SelectCurrent(q.state, likert.Value)
	if err != nil {
		q.logger.Debug("answer rejected", zap.Error(err))
		return q, nil
	}
	q.state = st
	q.nudge = false
	return q, nil
}

func (q *QuestionScreen) next() tea.Cmd {
	st, step := session.Next(q.state)
	q.state = st

	switch step {
	case session.StepBlocked:
		q.nudge = true
		return nil
	case session.StepMoved:
		q.nudge = false
		q.syncLikert()
		return nil
	}

	q.finished = true
	q.logger.Debug("run answered",
		zap.String("run", st.ID),
		zap.Int("answered", st.Answered()),
	)
	result := q.finish(st)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: result}
	}
}

func (q *QuestionScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "1-5 ←→", Description: "Pilih"},
		{Key: "Enter", Description: q.state.NextLabel()},
	}
	if q.state.CanGoBack() {
		hints = append(hints, layout.KeyHint{Key: "p", Description: PrevLabel})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Keluar"})
}

func (q *QuestionScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	cur, ok := q.state.Current()
	if !ok {
		return ""
	}

	text := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(cw - 6).
		Render(fmt.Sprintf("%d. %s", q.state.Index+1, cur.Text))

	sections := []string{text}
	if cur.Example != "" {
		sections = append(sections, theme.Hint.Width(cw-6).Render("Contoh: "+cur.Example))
	}
	sections = append(sections, "", q.likert.View(), "")

	buttons := []string{}
	if q.state.CanGoBack() {
		buttons = append(buttons, components.NewButton(PrevLabel, true).View())
	}
	buttons = append(buttons, components.NewButton(q.state.NextLabel(), q.state.CanAdvance()).View())
	sections = append(sections, strings.Join(buttons, "  "))

	if q.nudge {
		sections = append(sections, "", theme.ErrorText.Render("Pilih jawaban dulu ya."))
	}

	progress := components.NewProgressBar("", q.state.Progress(), true, cw)

	body := lipgloss.JoinVertical(lipgloss.Left,
		components.Card(lipgloss.JoinVertical(lipgloss.Left, sections...), cw),
		"",
		progress.View(),
	)
	return components.Center(body, width, height)
}

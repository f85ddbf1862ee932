// Package userinfo is the participant form that precedes the questions.
package userinfo

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/minatbakat/internal/content"
	"github.com/abhisek/minatbakat/internal/quiz"
	"github.com/abhisek/minatbakat/internal/router"
	"github.com/abhisek/minatbakat/internal/screen"
	"github.com/abhisek/minatbakat/internal/session"
	"github.com/abhisek/minatbakat/internal/ui/components"
	"github.com/abhisek/minatbakat/internal/ui/layout"
	"github.com/abhisek/minatbakat/internal/ui/theme"
)

// LoadTimeout bounds the question fetch.
const LoadTimeout = 15 * time.Second

const (
	fieldName = iota
	fieldSchool
	fieldGrade
	fieldCount
)

// Options wires the form to the rest of the quiz.
type Options struct {
	// Load fetches the question bank.
	Load func(ctx context.Context) (*quiz.Bank, error)

	// NewID returns a fresh run identifier.
	NewID func() string

	// Next builds the first question screen for a started run.
	Next func(session.State) screen.Screen

	// OnLoadError is told about failed loads, e.g. for metrics.
	OnLoadError func(err error)

	Logger *zap.Logger
}

type questionsLoadedMsg struct {
	bank *quiz.Bank
	err  error
}

// UserInfoScreen collects name, school and grade, then loads the
// questions and starts the run.
type UserInfoScreen struct {
	opts    Options
	inputs  [fieldCount]components.TextInput
	focus   int
	tried   bool
	loading bool
	failed  bool
	errMsg  string
}

var _ screen.Screen = (*UserInfoScreen)(nil)

// New creates the form with the name field focused.
func New(opts Options) *UserInfoScreen {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	s := &UserInfoScreen{opts: opts}
	s.inputs[fieldName] = components.NewTextInput("Nama Lengkap", "contoh: Sari Wulandari", 80)
	s.inputs[fieldSchool] = components.NewTextInput("Asal Sekolah", "contoh: SMAN 1 Bandung", 80)
	s.inputs[fieldGrade] = components.NewTextInput("Kelas", "contoh: XII IPA 2", 20)
	s.inputs[fieldName].Focus()
	return s
}

func (s *UserInfoScreen) Title() string {
	return "Data Diri"
}

func (s *UserInfoScreen) Init() tea.Cmd {
	return s.inputs[s.focus].Focus()
}

// Participant returns the current form values.
func (s *UserInfoScreen) Participant() quiz.Participant {
	return quiz.Participant{
		Name:   s.inputs[fieldName].Value(),
		School: s.inputs[fieldSchool].Value(),
		Grade:  s.inputs[fieldGrade].Value(),
	}.Normalize()
}

func (s *UserInfoScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		return s, s.handleLoaded(msg)

	case tea.KeyPressMsg:
		// A failed load is final; the participant can only go back or quit.
		if s.loading || s.failed {
			return s, nil
		}
		switch msg.String() {
		case "tab", "down":
			return s, s.moveFocus(1)
		case "shift+tab", "up":
			return s, s.moveFocus(-1)
		case "enter":
			return s, s.submit()
		}
	}

	if s.loading || s.failed {
		return s, nil
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *UserInfoScreen) moveFocus(delta int) tea.Cmd {
	s.inputs[s.focus].Blur()
	s.focus = (s.focus + delta + fieldCount) % fieldCount
	return s.inputs[s.focus].Focus()
}

// submit starts the question load when every field is filled. Enter on
// an incomplete form moves to the first empty field instead.
func (s *UserInfoScreen) submit() tea.Cmd {
	s.tried = true
	if err := s.Participant().Validate(); err != nil {
		for i := range s.inputs {
			if !s.inputs[i].Filled() {
				return s.moveFocus(i - s.focus)
			}
		}
		return nil
	}

	s.loading = true
	load := s.opts.Load
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), LoadTimeout)
		defer cancel()
		bank, err := load(ctx)
		return questionsLoadedMsg{bank: bank, err: err}
	}
}

func (s *UserInfoScreen) handleLoaded(msg questionsLoadedMsg) tea.Cmd {
	s.loading = false

	if msg.err != nil {
		s.opts.Logger.Warn("question load failed", zap.Error(msg.err))
		if s.opts.OnLoadError != nil {
			s.opts.OnLoadError(msg.err)
		}
		s.failed = true
		s.errMsg = content.QuestionsFailedMessage
		var le *content.LoadError
		if errors.As(msg.err, &le) {
			s.errMsg = le.UserMessage()
		}
		return nil
	}

	st, err := session.New(s.opts.NewID(), s.Participant(), msg.bank)
	if err != nil {
		s.opts.Logger.Warn("cannot start run", zap.Error(err))
		s.failed = true
		s.errMsg = content.QuestionsFailedMessage
		return nil
	}

	s.opts.Logger.Info("run started",
		zap.String("run", st.ID),
		zap.String("grade", st.Participant.Grade),
		zap.Int("questions", len(st.Questions)),
	)

	next := s.opts.Next(st)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *UserInfoScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/Shift+Tab", Description: "Pindah kolom"},
		{Key: "Enter", Description: "Mulai"},
		{Key: "Esc", Description: "Kembali"},
	}
}

func (s *UserInfoScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{
		theme.Title.Render("Isi data dirimu dulu, yuk!"),
		"",
	}
	for i := range s.inputs {
		sections = append(sections, s.inputs[i].View(s.tried), "")
	}

	switch {
	case s.loading:
		sections = append(sections, theme.Hint.Render("Memuat pertanyaan..."))
	case s.errMsg != "":
		sections = append(sections, theme.ErrorText.Render(s.errMsg))
	default:
		ready := s.Participant().Validate() == nil
		sections = append(sections, components.NewButton("Mulai Tes", ready).View())
	}

	card := components.Card(lipgloss.JoinVertical(lipgloss.Left, sections...), cw)
	return components.Center(card, width, height)
}

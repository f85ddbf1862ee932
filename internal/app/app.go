package app

import (
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/minatbakat/internal/advisor"
	"github.com/abhisek/minatbakat/internal/content"
	"github.com/abhisek/minatbakat/internal/metrics"
	"github.com/abhisek/minatbakat/internal/notify"
	"github.com/abhisek/minatbakat/internal/router"
	"github.com/abhisek/minatbakat/internal/scoring"
	"github.com/abhisek/minatbakat/internal/screen"
	"github.com/abhisek/minatbakat/internal/screens/question"
	"github.com/abhisek/minatbakat/internal/screens/result"
	"github.com/abhisek/minatbakat/internal/screens/userinfo"
	"github.com/abhisek/minatbakat/internal/screens/welcome"
	"github.com/abhisek/minatbakat/internal/session"
	"github.com/abhisek/minatbakat/internal/ui/layout"
)

// Options holds the collaborators the screens need.
type Options struct {
	Source     content.Source
	CodeLength scoring.CodeLength
	Notifier   *notify.Notifier
	Advisor    *advisor.Service
	Metrics    *metrics.Metrics
	Logger     *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the welcome screen.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return AppModel{
		router: router.New(welcome.New(func() screen.Screen {
			return newUserInfo(opts)
		})),
	}
}

func newUserInfo(opts Options) screen.Screen {
	return userinfo.New(userinfo.Options{
		Load:  opts.Source.Questions,
		NewID: uuid.NewString,
		Next: func(st session.State) screen.Screen {
			return question.New(st, func(done session.State) screen.Screen {
				return newResult(opts, done)
			}, opts.Logger)
		},
		OnLoadError: func(err error) {
			what := content.WhatQuestions
			var le *content.LoadError
			if errors.As(err, &le) {
				what = le.What
			}
			opts.Metrics.RecordLoadFailure(what)
		},
		Logger: opts.Logger,
	})
}

func newResult(opts Options, st session.State) screen.Screen {
	return result.New(st, result.Options{
		Profiles:   opts.Source.Profiles,
		CodeLength: opts.CodeLength,
		Notifier:   opts.Notifier,
		Advisor:    opts.Advisor,
		Metrics:    opts.Metrics,
		Logger:     opts.Logger,
	})
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.CanPop() {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame as a string.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	var footerHints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if hp, ok := active.(screen.KeyHintProvider); ok {
			footerHints = hp.KeyHints()
		}
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{{Key: "Ctrl+C", Description: "Keluar"}}
		if m.router.CanPop() {
			footerHints = append([]layout.KeyHint{{Key: "Esc", Description: "Kembali"}}, footerHints...)
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	body := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, body, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and waits for pending notifications
// before returning.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	opts.Notifier.Wait()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

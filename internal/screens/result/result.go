// Package result scores the finished run and shows the report.
package result

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/minatbakat/internal/advisor"
	"github.com/abhisek/minatbakat/internal/content"
	"github.com/abhisek/minatbakat/internal/metrics"
	"github.com/abhisek/minatbakat/internal/notify"
	"github.com/abhisek/minatbakat/internal/profile"
	"github.com/abhisek/minatbakat/internal/report"
	"github.com/abhisek/minatbakat/internal/scoring"
	"github.com/abhisek/minatbakat/internal/screen"
	"github.com/abhisek/minatbakat/internal/session"
	"github.com/abhisek/minatbakat/internal/ui/components"
	"github.com/abhisek/minatbakat/internal/ui/layout"
	"github.com/abhisek/minatbakat/internal/ui/theme"
)

// CalculatingMessage is shown while the profiles are fetched.
const CalculatingMessage = "Lagi ngitung hasil akhir kamu, sabar ya..."

const (
	loadTimeout   = 15 * time.Second
	adviceTimeout = 60 * time.Second
)

// Options wires the result screen.
type Options struct {
	// Profiles fetches the recommendation table.
	Profiles func(ctx context.Context) (profile.Table, error)

	CodeLength scoring.CodeLength
	Notifier   *notify.Notifier
	Advisor    *advisor.Service
	Metrics    *metrics.Metrics
	Logger     *zap.Logger
}

type profilesLoadedMsg struct {
	table profile.Table
	err   error
}

type adviceMsg struct {
	text string
	err  error
}

// ResultScreen shows the finished report. It is the last step; Esc is
// disabled and q quits.
type ResultScreen struct {
	opts     Options
	state    session.State
	report   *report.Report
	errMsg   string
	advising bool
	lines    []string // rendered report, cached per width
	width    int
	offset   int
}

var (
	_ screen.Screen    = (*ResultScreen)(nil)
	_ screen.BackGuard = (*ResultScreen)(nil)
)

// New creates the result screen for a fully answered run.
func New(st session.State, opts Options) *ResultScreen {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.CodeLength == 0 {
		opts.CodeLength = scoring.DefaultCodeLength
	}
	return &ResultScreen{opts: opts, state: st}
}

// Report returns the assembled report, or nil while loading or after a
// failed load.
func (s *ResultScreen) Report() *report.Report {
	return s.report
}

func (s *ResultScreen) Title() string {
	return "Hasil Tes"
}

// Status shows whose report this is.
func (s *ResultScreen) Status() string {
	return s.state.Participant.Name
}

func (s *ResultScreen) AllowBack() bool {
	return false
}

func (s *ResultScreen) Init() tea.Cmd {
	load := s.opts.Profiles
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		table, err := load(ctx)
		return profilesLoadedMsg{table: table, err: err}
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profilesLoadedMsg:
		return s, s.handleProfiles(msg)

	case adviceMsg:
		s.advising = false
		if msg.err != nil {
			s.opts.Logger.Warn("advice unavailable", zap.String("run", s.state.ID), zap.Error(msg.err))
			return s, nil
		}
		if s.report != nil {
			s.report.Advice = msg.text
			s.lines = nil
		}
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q":
			return s, tea.Quit
		case "down", "j":
			s.offset++
		case "up", "k":
			s.offset--
		case "pgdown", "space":
			s.offset += 10
		case "pgup":
			s.offset -= 10
		case "home", "g":
			s.offset = 0
		}
		s.offset = max(s.offset, 0)
	}
	return s, nil
}

func (s *ResultScreen) handleProfiles(msg profilesLoadedMsg) tea.Cmd {
	if msg.err != nil {
		s.opts.Logger.Warn("profile load failed", zap.String("run", s.state.ID), zap.Error(msg.err))
		s.errMsg = content.ProfilesFailedMessage
		var le *content.LoadError
		if errors.As(msg.err, &le) {
			s.opts.Metrics.RecordLoadFailure(le.What)
			s.errMsg = le.UserMessage()
		} else {
			s.opts.Metrics.RecordLoadFailure(content.WhatProfiles)
		}
		return nil
	}

	outcome := session.Result(s.state, msg.table, s.opts.CodeLength)
	rep := outcome.Report(s.state)
	s.report = &rep
	s.lines = nil

	s.opts.Metrics.RecordResult(rep.MBTIType, rep.RIASECCode, rep.Found)
	s.opts.Logger.Info("run scored",
		zap.String("run", s.state.ID),
		zap.String("mbti", rep.MBTIType),
		zap.String("riasec", rep.RIASECCode),
		zap.Bool("matched", rep.Found),
	)

	if p, ok := notify.FromReport(rep); ok {
		s.opts.Notifier.Fire(p)
		return nil
	}

	if !s.opts.Advisor.Enabled() {
		return nil
	}
	s.advising = true
	svc := s.opts.Advisor
	in := advisor.Input{Grade: s.state.Participant.Grade, MBTI: outcome.MBTI, RIASEC: outcome.RIASEC}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), adviceTimeout)
		defer cancel()
		advice, err := svc.Advise(ctx, in)
		if err != nil {
			return adviceMsg{err: err}
		}
		return adviceMsg{text: advice.Text()}
	}
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓ PgUp/PgDn", Description: "Gulir"},
		{Key: "q", Description: "Selesai"},
	}
}

func (s *ResultScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	switch {
	case s.errMsg != "":
		return components.Center(theme.ErrorText.Render(s.errMsg), width, height)
	case s.report == nil:
		return components.Center(theme.Hint.Render(CalculatingMessage), width, height)
	}

	if s.lines == nil || s.width != cw {
		s.width = cw
		s.lines = strings.Split(Render(*s.report, cw), "\n")
	}

	if s.advising {
		height--
	}
	height = max(height, 1)
	maxOffset := max(len(s.lines)-height, 0)
	s.offset = min(s.offset, maxOffset)
	end := min(s.offset+height, len(s.lines))

	body := strings.Join(s.lines[s.offset:end], "\n")
	body = lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
	if s.advising {
		body += "\n" + theme.Hint.Render("  Konselor AI sedang menyiapkan catatan...")
	}
	return body
}

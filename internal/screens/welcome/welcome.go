package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/minatbakat/internal/router"
	"github.com/abhisek/minatbakat/internal/screen"
	"github.com/abhisek/minatbakat/internal/ui/components"
	"github.com/abhisek/minatbakat/internal/ui/layout"
	"github.com/abhisek/minatbakat/internal/ui/theme"
)

// StartLabel is the caption of the only action on this screen.
const StartLabel = "Mulai Tes"

const (
	tickInterval = 100 * time.Millisecond
	introAt      = 300 * time.Millisecond
	promptAt     = 800 * time.Millisecond
)

var introLines = []string{
	"Kenali tipe kepribadian (MBTI) dan minat karier (RIASEC) kamu.",
	"Jawab setiap pernyataan dari 1 (sangat tidak setuju) sampai 5 (sangat setuju).",
	"Di akhir tes kamu dapat rekomendasi jurusan kuliah dan karier.",
}

type tickMsg time.Time

// WelcomeScreen shows the banner and a short intro, then hands over to the
// participant form.
type WelcomeScreen struct {
	next    func() screen.Screen
	elapsed time.Duration
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that pushes the screen produced by next when
// the participant starts the test.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) revealed() bool {
	return w.elapsed >= promptAt
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if w.revealed() {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		// The first key skips the reveal; Enter starts once everything shows.
		if !w.revealed() {
			w.elapsed = promptAt
			return w, nil
		}
		switch msg.String() {
		case "enter":
			return w, w.start()
		case "q":
			return w, tea.Quit
		}
	}
	return w, nil
}

// start pushes a fresh form each time, so coming back with Esc and
// starting again never reuses old input.
func (w *WelcomeScreen) start() tea.Cmd {
	next := w.next()
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: StartLabel},
		{Key: "q", Description: "Keluar"},
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{RenderBanner(width)}

	if w.elapsed >= introAt {
		sections = append(sections, "", theme.Body.Render(strings.Join(introLines, "\n")))
	}

	if w.revealed() {
		sections = append(sections, "", components.NewButton(StartLabel, true).View(),
			"", theme.Hint.Render("Tekan Enter untuk mulai"))
	}

	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return components.Center(body, width, height)
}

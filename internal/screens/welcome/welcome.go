// Package welcome is the splash screen shown at startup.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skillmatch/skillmatch/internal/router"
	"github.com/skillmatch/skillmatch/internal/screen"
	"github.com/skillmatch/skillmatch/internal/ui/theme"
)

const tickInterval = 100 * time.Millisecond

// The splash runs through three phases and then continues on its own.
type phase int

const (
	phaseBadge  phase = iota // badge only
	phaseGlint               // badge with blinking glints
	phaseBanner              // wordmark, tagline and prompt
)

var phaseStarts = [...]time.Duration{
	phaseBadge:  0,
	phaseGlint:  500 * time.Millisecond,
	phaseBanner: 1500 * time.Millisecond,
}

// autoContinue is how long the finished splash stays up without input.
const autoContinue = 4 * time.Second

// Tagline is shown under the wordmark.
const Tagline = "Prove your skills. Get discovered."

const badgeArt = `╭─────────────╮
│  ┌───────┐  │
│  │  ✓ ✓  │  │
│  │  ✓ ✓  │  │
│  └───────┘  │
│   VERIFIED  │
╰─────────────╯`

const wordmark = `
███████╗██╗  ██╗██╗██╗     ██╗     ███╗   ███╗ █████╗ ████████╗ ██████╗██╗  ██╗
██╔════╝██║ ██╔╝██║██║     ██║     ████╗ ████║██╔══██╗╚══██╔══╝██╔════╝██║  ██║
███████╗█████╔╝ ██║██║     ██║     ██╔████╔██║███████║   ██║   ██║     ███████║
╚════██║██╔═██╗ ██║██║     ██║     ██║╚██╔╝██║██╔══██║   ██║   ██║     ██╔══██║
███████║██║  ██╗██║███████╗███████╗██║ ╚═╝ ██║██║  ██║   ██║   ╚██████╗██║  ██║
╚══════╝╚═╝  ╚═╝╚═╝╚══════╝╚══════╝╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝    ╚═════╝╚═╝  ╚═╝`

const wordmarkCompact = "S K I L L M A T C H"

type tickMsg time.Time

// WelcomeScreen animates the splash and then swaps itself for the screen
// built by next. Any key skips ahead.
type WelcomeScreen struct {
	next    func() screen.Screen
	elapsed time.Duration
	done    bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. next is called once, when the splash ends.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return tick() }

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (w *WelcomeScreen) phase() phase {
	p := phaseBadge
	for i, start := range phaseStarts {
		if w.elapsed >= start {
			p = phase(i)
		}
	}
	return p
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.done {
			return w, nil
		}
		w.elapsed += tickInterval
		if w.elapsed >= phaseStarts[phaseBanner]+autoContinue {
			return w, w.finish()
		}
		return w, tick()
	case tea.KeyPressMsg:
		return w, w.finish()
	}
	return w, nil
}

func (w *WelcomeScreen) finish() tea.Cmd {
	if w.done {
		return nil
	}
	w.done = true
	return router.Swap(w.next())
}

func (w *WelcomeScreen) View(width, height int) string {
	badge := lipgloss.NewStyle().Foreground(theme.Secondary).Render(badgeArt)
	p := w.phase()

	if p >= phaseGlint {
		glyph := "✦"
		if (w.elapsed/tickInterval)%2 == 1 {
			glyph = "·"
		}
		glint := lipgloss.NewStyle().Foreground(theme.Accent).Render(glyph)
		badge = lipgloss.JoinHorizontal(lipgloss.Top, glint+" ", badge, " "+glint)
	}

	parts := []string{badge}
	if p == phaseBanner {
		parts = append(parts,
			"",
			renderWordmark(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(Tagline),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, parts...))
}

// renderWordmark falls back to spaced letters when the block art would
// wrap.
func renderWordmark(width int) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	if width < lipgloss.Width(strings.TrimPrefix(wordmark, "\n"))+2 {
		return style.Render(wordmarkCompact)
	}
	return style.Render(wordmark)
}

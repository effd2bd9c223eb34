package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skillmatch/skillmatch/internal/account"
	"github.com/skillmatch/skillmatch/internal/assessment"
	"github.com/skillmatch/skillmatch/internal/evaluation"
	"github.com/skillmatch/skillmatch/internal/logger"
	"github.com/skillmatch/skillmatch/internal/quiz"
	"github.com/skillmatch/skillmatch/internal/router"
	"github.com/skillmatch/skillmatch/internal/screen"
	"github.com/skillmatch/skillmatch/internal/screens/employer"
	"github.com/skillmatch/skillmatch/internal/screens/landing"
	"github.com/skillmatch/skillmatch/internal/screens/seeker"
	"github.com/skillmatch/skillmatch/internal/screens/welcome"
	"github.com/skillmatch/skillmatch/internal/ui/layout"
)

// Options holds the services the TUI runs on.
type Options struct {
	Accounts  *account.Store
	Session   *account.Session
	Selector  *quiz.Selector
	Evaluator evaluation.Evaluator
	Board     *assessment.Board
	Log       *logger.Logger

	// SkipSplash starts directly on the home screen.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model. The first screen is the splash,
// followed by the home screen for whoever is logged in.
func newAppModel(opts Options) AppModel {
	if opts.Session == nil {
		opts.Session = &account.Session{}
	}
	if opts.Board == nil {
		opts.Board = assessment.NewBoard()
	}
	if opts.Selector == nil {
		opts.Selector = quiz.Default()
	}
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}

	m := AppModel{opts: opts}
	var first screen.Screen
	if opts.SkipSplash {
		first = m.homeScreen()
	} else {
		first = welcome.New(m.homeScreen)
	}
	m.router = router.New(first)
	return m
}

// homeScreen picks the start screen for the current session: the seeker
// dashboard, the employer dashboard, or the landing page for visitors and
// unrecognised roles.
func (m AppModel) homeScreen() screen.Screen {
	u, ok := m.opts.Session.Current()
	if !ok {
		return landing.New(m.opts.Accounts)
	}
	switch u.Role {
	case account.RoleSeeker:
		return seeker.New(u, seeker.Deps{
			Accounts:  m.opts.Accounts,
			Selector:  m.opts.Selector,
			Evaluator: m.opts.Evaluator,
			Board:     m.opts.Board,
			Log:       m.opts.Log,
		})
	case account.RoleEmployer:
		return employer.New(u, m.opts.Accounts)
	default:
		return landing.New(m.opts.Accounts)
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.SessionChangedMsg:
		if msg.User == nil {
			m.opts.Session.Clear()
			m.opts.Board.Clear()
			m.opts.Log.Info().Msg("logged out")
		} else {
			m.opts.Session.Set(msg.User)
			m.opts.Log.Info().Str("user_id", msg.User.ID).Str("role", string(msg.User.Role)).Msg("logged in")
		}
		return m, m.router.Reset(m.homeScreen())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, router.Back()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	var name, role string
	if u, ok := m.opts.Session.Current(); ok {
		name, role = u.Name, u.Role.Label()
	}
	header := layout.RenderHeader(title, name, role, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillmatch/skillmatch/internal/router"
	"github.com/skillmatch/skillmatch/internal/screen"
)

type landingStub struct{}

func (l *landingStub) Init() tea.Cmd                            { return nil }
func (l *landingStub) Update(tea.Msg) (screen.Screen, tea.Cmd) { return l, nil }
func (l *landingStub) View(int, int) string                     { return "landing" }
func (l *landingStub) Title() string                            { return "Welcome" }

func newSplash() (*WelcomeScreen, *int) {
	built := 0
	return New(func() screen.Screen {
		built++
		return &landingStub{}
	}), &built
}

func ticks(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for range n {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestPhasesAdvanceWithTicks(t *testing.T) {
	w, _ := newSplash()
	assert.Equal(t, phaseBadge, w.phase())
	assert.NotContains(t, w.View(100, 40), Tagline)

	ticks(w, 5)
	assert.Equal(t, phaseGlint, w.phase())
	assert.NotContains(t, w.View(100, 40), Tagline)

	ticks(w, 10)
	assert.Equal(t, phaseBanner, w.phase())
	assert.Contains(t, w.View(100, 40), Tagline)
}

func TestKeyPressSkipsSplash(t *testing.T) {
	w, built := newSplash()
	ticks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	require.NotNil(t, cmd)
	swap, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Welcome", swap.Screen.Title())
	assert.Equal(t, 1, *built)

	_, cmd = w.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Nil(t, cmd, "a finished splash ignores further keys")
	assert.Equal(t, 1, *built)
}

func TestSplashContinuesOnItsOwn(t *testing.T) {
	w, built := newSplash()
	limit := int((phaseStarts[phaseBanner] + autoContinue) / tickInterval)

	cmd := ticks(w, limit-1)
	require.NotNil(t, cmd)
	assert.Zero(t, *built)

	cmd = ticks(w, 1)
	require.NotNil(t, cmd)
	_, ok := cmd().(router.ReplaceScreenMsg)
	assert.True(t, ok)
	assert.Equal(t, 1, *built)

	assert.Nil(t, ticks(w, 1), "ticks stop once the splash is done")
}

func TestWordmarkFallsBackWhenNarrow(t *testing.T) {
	assert.Contains(t, renderWordmark(40), wordmarkCompact)
	assert.False(t, strings.Contains(renderWordmark(120), wordmarkCompact))
}

func TestTitleIsBlank(t *testing.T) {
	w, _ := newSplash()
	assert.Empty(t, w.Title())
}

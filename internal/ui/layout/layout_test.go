package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
	assert.True(t, IsTooSmall(MinWidth-1, MinHeight))
	assert.True(t, IsTooSmall(MinWidth, MinHeight-1))
}

func TestIsCompactHeight(t *testing.T) {
	assert.True(t, IsCompactHeight(CompactHeightThreshold-1))
	assert.False(t, IsCompactHeight(CompactHeightThreshold))
}

func TestRenderHeaderShowsSession(t *testing.T) {
	h := RenderHeader("Dashboard", "Ada Lovelace", "Job Seeker", 100)
	assert.Contains(t, h, "SkillMatch")
	assert.Contains(t, h, "Dashboard")
	assert.Contains(t, h, "Ada Lovelace")
	assert.Contains(t, h, "Job Seeker")
	assert.Equal(t, HeaderHeight, lipgloss.Height(h))
}

func TestRenderHeaderAnonymous(t *testing.T) {
	h := RenderHeader("Welcome", "", "", 90)
	assert.Contains(t, h, "Welcome")
	assert.NotContains(t, h, "·")
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{"Enter", "Select"}, {"Esc", "Back"}}, 90)
	assert.Contains(t, f, "Enter")
	assert.Contains(t, f, "Back")
	assert.Equal(t, FooterHeight, lipgloss.Height(f))
}

func TestRenderFrameFillsHeight(t *testing.T) {
	header := RenderHeader("Title", "", "", 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, "body", footer, 80, 30)

	assert.Equal(t, 30, lipgloss.Height(frame))
	assert.True(t, strings.Contains(frame, "body"))
}

func TestRenderMinSizeMessage(t *testing.T) {
	msg := RenderMinSizeMessage(60, 20)
	assert.Contains(t, msg, "Terminal too small")
	assert.Contains(t, msg, "60 x 20")
}

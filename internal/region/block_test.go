package region

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertDims(t *testing.T, out string, width, height int) {
	t.Helper()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, height)
	for i, line := range lines {
		assert.Equal(t, width, lipgloss.Width(line), "line %d: %q", i, line)
	}
}

func TestBlockTitle(t *testing.T) {
	for _, s := range LeftSlots() {
		info := s.Info()
		assert.Equal(t, info.Title+" ("+string(info.Hotkey)+")", BlockTitle(info))
	}
	assert.Equal(t, "Progress (p)", BlockTitle(RightBottom.Info()))
}

func TestNewBlock(t *testing.T) {
	b := NewBlock(RightTop.Info())
	assert.Equal(t, "Results (r)", b.Title)
	assert.Equal(t, lipgloss.RoundedBorder(), b.Border)
	assert.Equal(t, [4]int{2, 10, 2, 10}, b.Padding)
}

func TestBlock_RenderDimensions(t *testing.T) {
	b := NewBlock(LeftTop.Info())
	sizes := [][2]int{{25, 12}, {75, 36}, {25, 4}, {40, 3}, {30, 2}, {3, 3}, {2, 2}, {1, 5}, {5, 1}}
	for _, sz := range sizes {
		out := b.Render(sz[0], sz[1])
		assertDims(t, out, sz[0], sz[1])
	}
}

func TestBlock_RenderEmptyArea(t *testing.T) {
	b := NewBlock(LeftTop.Info())
	assert.Empty(t, b.Render(0, 10))
	assert.Empty(t, b.Render(10, 0))
}

func TestBlock_RenderChrome(t *testing.T) {
	out := NewBlock(LeftTop.Info()).Render(25, 12)
	lines := strings.Split(out, "\n")

	top := lines[0]
	assert.True(t, strings.HasPrefix(top, "╭"), top)
	assert.True(t, strings.HasSuffix(top, "╮"), top)
	assert.Contains(t, top, "Backend (b)")

	// 23 inner cells, 11 taken by the title: 6 before, 6 after.
	assert.Equal(t, "╭"+strings.Repeat("─", 6)+"Backend (b)"+strings.Repeat("─", 6)+"╮", top)

	bottom := lines[len(lines)-1]
	assert.Equal(t, "╰"+strings.Repeat("─", 23)+"╯", bottom)

	for _, line := range lines[1 : len(lines)-1] {
		assert.True(t, strings.HasPrefix(line, "│"), line)
		assert.True(t, strings.HasSuffix(line, "│"), line)
	}
}

func TestBlock_RenderTruncatesTitle(t *testing.T) {
	out := NewBlock(RightBottom.Info()).Render(8, 4)
	top := strings.Split(out, "\n")[0]
	assert.Equal(t, "╭Progr…╮", top)
}

func TestClampPadding(t *testing.T) {
	tests := []struct {
		lead, trail, avail int
		wantLead, wantTail int
	}{
		{2, 2, 10, 2, 2},
		{2, 2, 3, 2, 1},
		{2, 2, 1, 1, 0},
		{10, 10, 23, 10, 10},
		{10, 10, 15, 10, 5},
		{2, 2, -1, 0, 0},
	}
	for _, tt := range tests {
		lead, trail := clampPadding(tt.lead, tt.trail, tt.avail)
		assert.Equal(t, tt.wantLead, lead)
		assert.Equal(t, tt.wantTail, trail)
	}
}

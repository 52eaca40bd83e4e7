package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout_DrawOrder(t *testing.T) {
	assert.Equal(t,
		[]string{"LeftTop", "LeftMiddle", "LeftBottom", "RightTop", "RightBottom"},
		Layout{}.DrawOrder())
}

func TestLayout_PanelBounds(t *testing.T) {
	panels := Layout{}.Panels()
	require.Len(t, panels, 5)

	want := map[string][4]int{
		"LeftTop":     {0, 0, 25, 12},
		"LeftMiddle":  {0, 12, 25, 24},
		"LeftBottom":  {0, 36, 25, 4},
		"RightTop":    {25, 0, 75, 36},
		"RightBottom": {25, 36, 75, 4},
	}
	for _, p := range panels {
		x, y, w, h := p.Bounds(100, 40)
		assert.Equal(t, want[p.ID], [4]int{x, y, w, h}, p.ID)
	}
	assert.Equal(t, "Backend (b)", panels[0].Title)
	assert.Equal(t, "Progress (p)", panels[4].Title)
}

func TestLayout_BoundsFollowFrame(t *testing.T) {
	p := Layout{}.Panels()[3]
	x, _, w, _ := p.Bounds(101, 40)
	assert.Equal(t, 25, x)
	assert.Equal(t, 76, w)
}

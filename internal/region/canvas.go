package region

import (
	"image"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Canvas is a Surface that composes rendered areas into a single frame.
// Areas are expected not to overlap; where they do, the leftmost area wins.
type Canvas struct {
	bounds image.Rectangle
	areas  []placedArea
}

type placedArea struct {
	rect  image.Rectangle
	lines []string
}

// NewCanvas creates a canvas of width x height cells.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{bounds: image.Rect(0, 0, max(0, width), max(0, height))}
}

// Render implements Surface. Content is clipped to area and area is clipped
// to the canvas.
func (c *Canvas) Render(area image.Rectangle, content string) {
	clipped := area.Intersect(c.bounds)
	if clipped.Empty() {
		return
	}

	lines := strings.Split(content, "\n")
	if skip := clipped.Min.Y - area.Min.Y; skip > 0 {
		if skip >= len(lines) {
			lines = nil
		} else {
			lines = lines[skip:]
		}
	}
	clip := lipgloss.NewStyle().MaxWidth(clipped.Dx())
	out := make([]string, clipped.Dy())
	for i := range out {
		var line string
		if i < len(lines) {
			line = clip.Render(lines[i])
		}
		if pad := clipped.Dx() - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		out[i] = line
	}
	c.areas = append(c.areas, placedArea{rect: clipped, lines: out})
}

// String returns the composed frame: exactly height lines of width cells,
// with uncovered cells left blank.
func (c *Canvas) String() string {
	width, height := c.bounds.Dx(), c.bounds.Dy()
	if width == 0 || height == 0 {
		return ""
	}

	areas := append([]placedArea(nil), c.areas...)
	sort.SliceStable(areas, func(i, j int) bool {
		return areas[i].rect.Min.X < areas[j].rect.Min.X
	})

	rows := make([]string, height)
	for y := range rows {
		var b strings.Builder
		x := 0
		for _, a := range areas {
			if y < a.rect.Min.Y || y >= a.rect.Max.Y || a.rect.Min.X < x {
				continue
			}
			b.WriteString(strings.Repeat(" ", a.rect.Min.X-x))
			b.WriteString(a.lines[y-a.rect.Min.Y])
			x = a.rect.Max.X
		}
		b.WriteString(strings.Repeat(" ", width-x))
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

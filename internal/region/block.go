package region

import (
	"fmt"
	"strings"

	"benchdash/internal/ui"
	"benchdash/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

// Panel padding in cells.
const (
	PaddingX = 10
	PaddingY = 2
)

// Block describes the chrome drawn around a panel.
type Block struct {
	Title  string
	Border lipgloss.Border

	// Padding inside the border: top, right, bottom, left.
	Padding [4]int

	BorderStyle lipgloss.Style
	TitleStyle  lipgloss.Style
	Style       lipgloss.Style
}

// BlockTitle formats a slot's title with its hotkey hint.
func BlockTitle(info SlotInfo) string {
	return fmt.Sprintf("%s (%c)", info.Title, info.Hotkey)
}

// NewBlock returns the panel decoration for a slot: a rounded dim border with
// the title centered on top, fixed padding and a solid background.
func NewBlock(info SlotInfo) Block {
	return Block{
		Title:       BlockTitle(info),
		Border:      lipgloss.RoundedBorder(),
		Padding:     [4]int{PaddingY, PaddingX, PaddingY, PaddingX},
		BorderStyle: ui.Styles.PanelBorder,
		TitleStyle:  ui.Styles.PanelTitle,
		Style:       ui.Styles.PanelFill,
	}
}

// Render draws the block into a width x height area. The result always has
// exactly height lines of width cells; an area smaller than the border is
// filled with background only.
func (b Block) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if width < 2 || height < 2 {
		return b.Style.Width(width).Height(height).Render("")
	}

	if height == 2 {
		return b.topBorder(width) + "\n" + b.bottomBorder(width)
	}

	// One row is kept for the (empty) content line.
	top, bottom := clampPadding(b.Padding[0], b.Padding[2], height-3)
	left, right := clampPadding(b.Padding[3], b.Padding[1], width-2)

	body := b.Style.
		Border(b.Border, false, true, true, true).
		BorderForeground(b.BorderStyle.GetForeground()).
		BorderBackground(b.Style.GetBackground()).
		Padding(top, right, bottom, left).
		Width(width - 2).
		Height(height - 2).
		Render("")

	block := b.topBorder(width) + "\n" + body
	return lipgloss.NewStyle().MaxWidth(width).MaxHeight(height).Render(block)
}

// topBorder renders the top edge with the title centered between the corners.
func (b Block) topBorder(width int) string {
	inner := width - 2
	title := textutil.Truncate(b.Title, inner)
	left, right := textutil.CenterGaps(title, inner)

	edge := b.BorderStyle.Background(b.Style.GetBackground())
	return edge.Render(b.Border.TopLeft+strings.Repeat(b.Border.Top, left)) +
		b.TitleStyle.Background(b.Style.GetBackground()).Render(title) +
		edge.Render(strings.Repeat(b.Border.Top, right)+b.Border.TopRight)
}

func (b Block) bottomBorder(width int) string {
	edge := b.BorderStyle.Background(b.Style.GetBackground())
	return edge.Render(b.Border.BottomLeft + strings.Repeat(b.Border.Bottom, width-2) + b.Border.BottomRight)
}

// clampPadding shrinks a pair of opposing paddings so they fit in avail
// cells, taking space from the leading side first.
func clampPadding(lead, trail, avail int) (int, int) {
	lead = max(0, min(lead, avail))
	trail = max(0, min(trail, avail-lead))
	return lead, trail
}

// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in an ellipsis when
// anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= VisualWidth(TruncateEllipsis) {
		return TruncateEllipsis
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// PadRightVisual pads s with spaces to targetWidth columns, truncating it
// first if it is wider.
func PadRightVisual(s string, targetWidth int) string {
	s = Truncate(s, targetWidth)
	return runewidth.FillRight(s, targetWidth)
}

// CenterGaps returns how many columns to leave before and after s to center
// it in width columns. The extra column of an odd gap goes after.
func CenterGaps(s string, width int) (before, after int) {
	gap := max(0, width-VisualWidth(s))
	before = gap / 2
	return before, gap - before
}

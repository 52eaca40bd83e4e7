package ui

// Layout arranges panels and defines the order they are drawn in.
type Layout interface {
	Panels() []Panel
	DrawOrder() []string // Panel IDs, first drawn first
}

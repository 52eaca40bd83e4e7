package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorText       = "252" // Light gray - for normal text
	ColorBorder     = "243" // Dim gray - for panel borders
	ColorBackground = "0"   // Black - panel fill
)

// Styles contains shared style definitions used by the dashboard.
var Styles = struct {
	// Panel chrome
	PanelBorder lipgloss.Style // Dim border lines
	PanelTitle  lipgloss.Style // Title text on the top border
	PanelFill   lipgloss.Style // Solid panel background
}{
	PanelBorder: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBorder)),
	PanelTitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	PanelFill: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBackground)),
}

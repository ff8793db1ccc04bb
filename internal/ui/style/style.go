// Package style holds the colors and icons shared by terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Cross   = "✗"
	Warning = "!"
	Tick    = "."
)

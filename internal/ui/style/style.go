// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Arrow   = "→"
)

// Text styles.
var (
	// FileName renders provenance labels.
	FileName = lipgloss.NewStyle().Foreground(Iris).Bold(true)
	// Muted renders secondary information such as detail labels.
	Muted = lipgloss.NewStyle().Foreground(Slate)
	// Code renders inline values.
	Code = lipgloss.NewStyle().Foreground(Green)
	// Notice renders informational results such as "not found" messages.
	Notice = lipgloss.NewStyle().Foreground(Yellow)
)

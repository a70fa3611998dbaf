package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: module names, paths, URLs.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "fetched" and "copied" module statuses.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "skipped" module status.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "failed" module status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (module names, paths, URLs).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (copying, cloning, merging, unpacking).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (scope prefixes, separators, timestamps).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Module status constants.
const (
	StatusCopied  = "copied"
	StatusFetched = "fetched"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// StatusStyle returns the lipgloss style for a given module status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCopied, StatusFetched:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusSkipped:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minModuleColumnWidth is the minimum width for the module name column
// before the status suffix. This ensures status words align consistently.
const minModuleColumnWidth = 32

// FormatModuleLine renders a module name with a right-aligned, color-coded
// status suffix and an optional trailing message.
//
// Format: m:<name>  <status>  <message>
func FormatModuleLine(name, status, message string) string {
	padding := minModuleColumnWidth - len(name)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render("m:")
	styledName := StyleNoun.Render(name)
	styledStatus := StatusStyle(status).Render(status)

	line := prefix + styledName + strings.Repeat(" ", padding) + styledStatus
	if message != "" {
		line += "  " + StyleDim.Render(message)
	}
	return line
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatStep renders a numbered pipeline step header.
func FormatStep(n int, msg string) string {
	return StyleAction.Render(fmt.Sprintf("Step %d.", n)) + " " + msg
}

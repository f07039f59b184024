package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Header represents a command banner with title and command path.
type Header struct {
	Title   string // e.g., "SAVE CV"
	Command string // e.g., "termfolio resume save"
	Width   int
}

// NewHeader creates a new header with the given values
func NewHeader(title, command string) *Header {
	return &Header{Title: title, Command: command, Width: GetTerminalWidth()}
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := max(h.Width, MinTerminalWidth)

	content := lipgloss.JoinVertical(lipgloss.Left,
		HeaderTitleStyle.Render(strings.ToUpper(h.Title)),
		HeaderCommandStyle.Render(h.Command),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Render(content)
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}

// Package theme holds the light and dark palettes and the toggle between them.
package theme

import "github.com/charmbracelet/lipgloss"

// Name identifies a palette.
type Name string

const (
	Dark  Name = "dark"
	Light Name = "light"
)

// Palette is the set of colors every view draws with.
type Palette struct {
	Name       Name
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color // glow start
	AccentAlt  lipgloss.Color // glow end
	Success    lipgloss.Color
	Error      lipgloss.Color
}

var palettes = map[Name]Palette{
	Dark: {
		Name:       Dark,
		Background: lipgloss.Color("#0B0E14"),
		Surface:    lipgloss.Color("#151A24"),
		Text:       lipgloss.Color("#E6EDF3"),
		Muted:      lipgloss.Color("#626262"),
		Accent:     lipgloss.Color("#00C8FF"),
		AccentAlt:  lipgloss.Color("#7D56F4"),
		Success:    lipgloss.Color("#00C9A7"),
		Error:      lipgloss.Color("#FF5555"),
	},
	Light: {
		Name:       Light,
		Background: lipgloss.Color("#F5F7FA"),
		Surface:    lipgloss.Color("#FFFFFF"),
		Text:       lipgloss.Color("#1A1A1A"),
		Muted:      lipgloss.Color("#8A8F98"),
		Accent:     lipgloss.Color("#0077CC"),
		AccentAlt:  lipgloss.Color("#7D56F4"),
		Success:    lipgloss.Color("#00A884"),
		Error:      lipgloss.Color("#D32F2F"),
	},
}

// Get returns the palette for n, falling back to Dark.
func Get(n Name) Palette {
	if p, ok := palettes[n]; ok {
		return p
	}
	return palettes[Dark]
}

// Parse maps a config value to a Name. Unknown values are dark.
func Parse(s string) Name {
	if Name(s) == Light {
		return Light
	}
	return Dark
}

// Toggle maps the switch state to a palette: light iff checked.
func Toggle(checked bool) Name {
	if checked {
		return Light
	}
	return Dark
}

// Other returns the opposite palette name.
func (n Name) Other() Name {
	return Toggle(n != Light)
}

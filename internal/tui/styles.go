package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/termfolio/internal/theme"
)

// Layout constants
const (
	headerRows   = 2 // nav bar + glow rule
	footerRows   = 2 // dots/status + help
	glowRadius   = 12
	cardMinWidth = 28
)

// Indicator glyphs
const (
	dotActive   = "●"
	dotInactive = "○"
	cursorGlyph = "▌"
)

// styles is the palette-dependent style set. It is rebuilt on theme change.
type styles struct {
	palette theme.Palette

	Page       lipgloss.Style
	Brand      lipgloss.Style
	NavButton  lipgloss.Style
	NavActive  lipgloss.Style
	Toggle     lipgloss.Style
	Button     lipgloss.Style
	ButtonSent lipgloss.Style
	Title      lipgloss.Style
	Hero       lipgloss.Style
	Typed      lipgloss.Style
	Muted      lipgloss.Style
	Card       lipgloss.Style
	CardTitle  lipgloss.Style
	Tech       lipgloss.Style
	Label      lipgloss.Style
	Field      lipgloss.Style
	FieldFocus lipgloss.Style
	Dot        lipgloss.Style
	DotActive  lipgloss.Style
	Notice     lipgloss.Style
	NoticeErr  lipgloss.Style
	Help       lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	return styles{
		palette: p,

		Page: lipgloss.NewStyle().
			Foreground(p.Text),

		Brand: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true).
			PaddingRight(2),

		NavButton: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),

		NavActive: lipgloss.NewStyle().
			Foreground(p.Background).
			Background(p.Accent).
			Bold(true).
			Padding(0, 1),

		Toggle: lipgloss.NewStyle().
			Foreground(p.AccentAlt).
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.AccentAlt).
			Padding(0, 2),

		ButtonSent: lipgloss.NewStyle().
			Foreground(p.Background).
			Background(p.Success).
			Bold(true).
			Padding(0, 2),

		Title: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true).
			MarginBottom(1),

		Hero: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true),

		Typed: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.AccentAlt).
			Padding(0, 1),

		CardTitle: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),

		Tech: lipgloss.NewStyle().
			Foreground(p.AccentAlt).
			Italic(true),

		Label: lipgloss.NewStyle().
			Foreground(p.Muted).
			Width(10),

		Field: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(p.Muted),

		FieldFocus: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(p.Accent),

		Dot: lipgloss.NewStyle().
			Foreground(p.Muted),

		DotActive: lipgloss.NewStyle().
			Foreground(p.Accent),

		Notice: lipgloss.NewStyle().
			Foreground(p.Success),

		NoticeErr: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(p.Muted),
	}
}

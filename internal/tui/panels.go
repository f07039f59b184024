package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"github.com/muurk/termfolio/internal/config"
	"github.com/muurk/termfolio/internal/contact"
	"github.com/muurk/termfolio/internal/nav"
	"github.com/muurk/termfolio/internal/theme"
)

// Panels in document order
const (
	panelHome = iota
	panelAbout
	panelProjects
	panelContact
	panelCount
)

var panelTitles = [panelCount]string{"Home", "About", "Projects", "Contact"}

// maxContentWidth caps text blocks on very wide terminals.
const maxContentWidth = 96

// markdownCache keeps the last glamour render of the About text.
type markdownCache struct {
	width int
	theme theme.Name
	out   string
}

// mark wraps s in a click zone when the region is interactive.
func (m *Model) mark(id, s string, interactive bool) string {
	if !interactive || m.zones == nil {
		return s
	}
	return m.zones.Mark(id, s)
}

// contentWidth is the usable text width inside a panel of width w.
func contentWidth(w int) int {
	return max(10, min(w-4, maxContentWidth))
}

// fit sizes a panel. Desktop panels are exactly w×h; mobile panels are at
// least h rows and grow with their content.
func fit(content string, w, h int, mode nav.Mode) string {
	if mode == nav.ModeMobile {
		h = max(h, lipgloss.Height(content))
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Top, content)
	}
	placed := lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, content)
	return lipgloss.NewStyle().MaxWidth(w).MaxHeight(h).Render(placed)
}

// renderPanel renders panel i into a w×h block.
func (m *Model) renderPanel(i, w, h int, interactive bool, mode nav.Mode) string {
	var content string
	switch i {
	case panelHome:
		content = m.renderHome(w)
	case panelAbout:
		content = m.renderAbout(w)
	case panelProjects:
		content = m.renderProjects(w, interactive)
	case panelContact:
		content = m.renderContact(w, interactive)
	}
	return fit(content, w, h, mode)
}

func (m *Model) renderHome(w int) string {
	cw := contentWidth(w)
	p := m.cfg.Profile

	name := m.st.Hero.Render(p.Name)
	typed := "I'm a " + m.st.Typed.Render(m.typed+cursorGlyph)
	tagline := m.st.Muted.Render(wordwrap.String(p.Tagline, cw))
	hint := m.st.Muted.Render("→ scroll to explore")

	return lipgloss.JoinVertical(lipgloss.Center, name, "", typed, "", tagline, "", hint)
}

func (m *Model) renderAbout(w int) string {
	cw := contentWidth(w)

	var b strings.Builder
	b.WriteString(m.st.Title.Render("About"))
	b.WriteString("\n")
	b.WriteString(m.aboutMarkdown(cw))
	b.WriteString("\n\n")

	barWidth := max(10, cw-m.st.Label.GetWidth()-2)
	for i, sk := range m.skills.Skills() {
		bar := m.bars[i]
		bar.Width = barWidth
		b.WriteString(m.st.Label.Render(sk.Name))
		b.WriteString(" ")
		b.WriteString(bar.View())
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// aboutMarkdown renders the About text with glamour, cached per width and theme.
func (m *Model) aboutMarkdown(width int) string {
	if m.md.out != "" && m.md.width == width && m.md.theme == m.themeName {
		return m.md.out
	}

	out := wordwrap.String(m.cfg.Profile.About, width)
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(string(m.themeName)),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		if rendered, err := r.Render(m.cfg.Profile.About); err == nil {
			out = strings.Trim(rendered, "\n")
		}
	}

	m.md = markdownCache{width: width, theme: m.themeName, out: out}
	return out
}

// visibleCards is how many project cards fit side by side.
func (m *Model) visibleCards(w int) int {
	n := max(1, m.cfg.Layout.VisibleCards)
	for n > 1 && contentWidth(w) < n*(cardMinWidth+3) {
		n--
	}
	return n
}

func (m *Model) renderProjects(w int, interactive bool) string {
	cw := contentWidth(w)
	n := m.visibleCards(w)
	cardW := cw/n - 3

	var cards []string
	for _, p := range m.projects.Visible(n) {
		cards = append(cards, m.renderCard(p, cardW))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(cards, " ")...)

	controls := m.mark("prev", m.st.NavButton.Render("‹ prev"), interactive) +
		m.st.Muted.Render(fmt.Sprintf("  %d projects  ", m.projects.Len())) +
		m.mark("next", m.st.NavButton.Render("next ›"), interactive)

	return lipgloss.JoinVertical(lipgloss.Center, m.st.Title.Render("Projects"), row, "", controls)
}

func (m *Model) renderCard(p config.Project, w int) string {
	body := []string{
		m.st.CardTitle.Render(ansi.Truncate(p.Title, w, "…")),
		wordwrap.String(p.Summary, w),
	}
	if len(p.Tech) > 0 {
		body = append(body, "", m.st.Tech.Render(wordwrap.String(strings.Join(p.Tech, " · "), w)))
	}
	if p.URL != "" {
		body = append(body, m.st.Muted.Render(ansi.Truncate(p.URL, w, "…")))
	}
	return m.st.Card.Width(w).Render(strings.Join(body, "\n"))
}

func joinWithGap(items []string, gap string) []string {
	out := make([]string, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, it)
	}
	return out
}

func (m *Model) renderContact(w int, interactive bool) string {
	cw := contentWidth(w)

	email := m.mark("copy", m.st.Typed.Render("✉ "+m.cfg.Profile.Email), interactive) +
		m.st.Muted.Render("  (y to copy)")

	field := func(idx int, label, view string) string {
		st := m.st.Field
		if m.form.focused && m.form.field == idx {
			st = m.st.FieldFocus
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, m.st.Label.Render(label), st.Render(view))
		return m.mark(fmt.Sprintf("field-%d", idx), row, interactive)
	}

	send := m.st.Button.Render(contact.IdleLabel + " ➤")
	if m.form.sent {
		send = m.st.ButtonSent.Render(contact.SentLabel)
	}
	cv := m.st.Button.Render("Download CV")

	buttons := m.mark("send", send, interactive) + "  " + m.mark("cv-contact", cv, interactive)

	var links []string
	for _, l := range m.cfg.Profile.Links {
		links = append(links, m.st.Muted.Render(l.Label+": ")+ansi.Truncate(l.URL, max(10, cw-len(l.Label)-2), "…"))
	}

	hint := "tab to write a message"
	if m.form.focused {
		hint = "ctrl+s to send · esc to leave"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.st.Title.Render("Contact"),
		email,
		strings.Join(links, "\n"),
		"",
		field(fieldName, "Name", m.form.name.View()),
		field(fieldEmail, "Email", m.form.email.View()),
		field(fieldMessage, "Message", m.form.message.View()),
		"",
		buttons,
		m.st.Muted.Render(hint),
	)
}

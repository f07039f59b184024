package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"github.com/muurk/termfolio/internal/carousel"
	"github.com/muurk/termfolio/internal/config"
	"github.com/muurk/termfolio/internal/contact"
	"github.com/muurk/termfolio/internal/glow"
	"github.com/muurk/termfolio/internal/logging"
	"github.com/muurk/termfolio/internal/nav"
	"github.com/muurk/termfolio/internal/resume"
	"github.com/muurk/termfolio/internal/skills"
	"github.com/muurk/termfolio/internal/theme"
	"github.com/muurk/termfolio/internal/typewriter"
)

// Messages
type scrollTickMsg struct{}
type typeTickMsg struct{}
type contactResetMsg struct{}
type noticeExpiredMsg struct{ seq int }

type resumeSavedMsg struct {
	path string
	err  error
}

type clipboardMsg struct{ err error }

const (
	noticeTTL = 4 * time.Second
	wheelRows = 3
)

// Options configures a Model.
type Options struct {
	Config *config.Config
	// Resume overrides where the CV is read from. The zero value uses the
	// build-time document and the config's b64_path.
	Resume resume.Source
	// Clipboard copies text. Defaults to the system clipboard.
	Clipboard func(string) error
	// Zones tracks clickable regions. Nil disables mouse clicks.
	Zones *zone.Manager
}

// Model is the portfolio page: a fixed header, four panels and a footer.
type Model struct {
	cfg       *config.Config
	st        styles
	themeName theme.Name

	keys     keyMap
	formKeys formKeyMap
	help     help.Model
	zones    *zone.Manager

	host    *host
	ctrl    *nav.Controller
	dots    *markers
	buttons *markers

	tw       *typewriter.Typewriter
	typed    string
	skills   *skills.Set
	bars     []progress.Model
	projects *carousel.Ring[config.Project]
	form     contactForm
	glow     glow.Glow
	md       markdownCache

	downloader resume.Downloader
	copyText   func(string) error

	notice    string
	noticeErr bool
	noticeSeq int

	// stack caches the rendered panels in mobile layout.
	stack []string

	started bool
	ticking bool
	pending []tea.Cmd
}

// New creates the page model.
func New(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	m := &Model{
		cfg:       cfg,
		themeName: theme.Parse(cfg.Theme),
		keys:      newKeyMap(),
		formKeys:  newFormKeyMap(),
		help:      help.New(),
		zones:     opts.Zones,
		host: newHost(metrics{cellW: cfg.Layout.CellWidth, cellH: cfg.Layout.CellHeight},
			headerRows, footerRows, panelCount),
		dots:     newMarkers(panelCount),
		buttons:  newMarkers(panelCount),
		projects: carousel.New(cfg.Projects),
		form:     newContactForm(),
		copyText: opts.Clipboard,
		stack:    make([]string, panelCount),
	}
	if m.copyText == nil {
		m.copyText = clipboard.WriteAll
	}

	src := opts.Resume
	if src.Encoded == "" && src.Path == "" {
		src = resume.Source{Encoded: resume.Encoded, Path: cfg.Resume.B64Path}
	}
	m.downloader = resume.Downloader{Source: src, Dir: cfg.Resume.DownloadDir, FileName: cfg.Resume.FileName}

	m.tw = typewriter.New(cfg.Profile.Roles, typewriter.Timing{
		Type:   cfg.Typewriter.TypeDelay(),
		Delete: cfg.Typewriter.DeleteDelay(),
		Hold:   cfg.Typewriter.Hold(),
	})

	list := make([]skills.Skill, len(cfg.Skills))
	for i, s := range cfg.Skills {
		list[i] = skills.Skill{Name: s.Name, Percent: s.Percent}
	}
	m.skills = skills.New(list)
	m.bars = make([]progress.Model, len(list))
	for i := range m.bars {
		m.bars[i] = progress.New(progress.WithWidth(30))
	}
	m.applyTheme(m.themeName)

	ctrl, err := nav.New(nav.Config{
		Panels:         panelCount,
		MobileMaxWidth: cfg.Layout.MobileMaxWidth,
		Viewport:       m.host,
		Scroller:       m.host,
		Layout:         m.host,
		Indicators:     []nav.Indicators{m.dots, m.buttons},
		OnTarget:       m.revealSkills,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create navigation controller: %w", err)
	}
	m.ctrl = ctrl

	return m, nil
}

// Init starts the typewriter.
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg { return typeTickMsg{} }
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case scrollTickMsg:
		m.ticking = false
		if m.host.step() {
			m.ctrl.ScrollObserved(m.host.measure())
		}

	case typeTickMsg:
		text, next := m.tw.Step()
		m.typed = text
		if next > 0 {
			cmds = append(cmds, tea.Tick(next, func(time.Time) tea.Msg { return typeTickMsg{} }))
		}

	case progress.FrameMsg:
		for i := range m.bars {
			updated, cmd := m.bars[i].Update(msg)
			m.bars[i] = updated.(progress.Model)
			cmds = append(cmds, cmd)
		}

	case contactResetMsg:
		m.form.reset()

	case resumeSavedMsg:
		if msg.err != nil {
			logging.Warn("CV download failed", zap.Error(msg.err))
			text := "Could not save CV: " + msg.err.Error()
			if errors.Is(msg.err, resume.ErrUnavailable) {
				text = "CV not available in this build"
			}
			cmds = append(cmds, m.setNotice(text, true))
		} else {
			logging.Info("CV saved", zap.String("path", msg.path))
			cmds = append(cmds, m.setNotice("CV saved to "+msg.path, false))
		}

	case clipboardMsg:
		if msg.err != nil {
			logging.Warn("Clipboard copy failed", zap.Error(msg.err))
			cmds = append(cmds, m.setNotice("Clipboard unavailable: "+m.cfg.Profile.Email, true))
		} else {
			cmds = append(cmds, m.setNotice("Email copied", false))
		}

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))

	case tea.KeyMsg:
		if m.form.focused {
			cmds = append(cmds, m.handleFormKey(msg))
		} else {
			cmds = append(cmds, m.handleKey(msg))
		}

	default:
		// cursor blink and other input internals
		if m.form.focused {
			cmds = append(cmds, m.form.update(msg))
		}
	}

	if m.started && m.ctrl.Mode() == nav.ModeMobile {
		m.relayout()
	}
	if m.host.animating() && !m.ticking {
		m.ticking = true
		cmds = append(cmds, tea.Tick(scrollFrame, func(time.Time) tea.Msg { return scrollTickMsg{} }))
	}
	cmds = append(cmds, m.pending...)
	m.pending = nil

	return m, tea.Batch(cmds...)
}

// resize applies a new terminal size. The first size establishes the
// initial panel; later ones re-snap the track. Crossing into the mobile
// layout brings the current panel under the header.
func (m *Model) resize(cols, rows int) {
	was := m.ctrl.Mode()
	m.host.cols, m.host.rows = cols, rows
	m.help.Width = cols
	m.form.setWidth(contentWidth(cols) - m.st.Label.GetWidth() - 2)

	mode := m.ctrl.Mode()
	if mode == nav.ModeMobile {
		m.relayout()
	}
	if !m.started {
		m.started = true
		m.ctrl.Start(m.host.measure())
		return
	}
	if mode == nav.ModeMobile && was != nav.ModeMobile {
		cur := m.ctrl.Current()
		m.host.ScrollPageTo(m.host.PanelTop(cur)-m.host.HeaderHeight(), nav.Instant)
	}
	m.ctrl.Resize(nav.ResizeEvent{Width: m.host.Width()})
}

// relayout renders the stacked panels and records their heights.
func (m *Model) relayout() {
	for i := range m.stack {
		m.stack[i] = m.renderPanel(i, m.host.cols, m.host.bodyRows(), true, nav.ModeMobile)
		m.host.panelRows[i] = lipgloss.Height(m.stack[i])
	}
}

// revealSkills is the controller's target hook.
func (m *Model) revealSkills() {
	if !m.skills.Animate() {
		return
	}
	logging.Debug("Revealing skill bars", zap.Int("count", len(m.bars)))
	for i := range m.bars {
		m.pending = append(m.pending, m.bars[i].SetPercent(m.skills.Fill(i)))
	}
}

func (m *Model) applyTheme(n theme.Name) {
	m.themeName = n
	p := theme.Get(n)
	m.st = newStyles(p)
	for i := range m.bars {
		m.bars[i].FullColor = string(p.Accent)
		m.bars[i].EmptyColor = string(p.Muted)
	}
}

func (m *Model) toggleTheme() {
	m.applyTheme(m.themeName.Other())
	logging.Info("Theme changed", zap.String("theme", string(m.themeName)))
}

// scrollPage moves the mobile page natively and lets the controller observe it.
func (m *Model) scrollPage(rows int) {
	if m.ctrl.Mode() != nav.ModeMobile {
		return
	}
	m.host.nudgePage(rows)
	m.ctrl.ScrollObserved(m.host.measure())
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Forward):
		m.ctrl.Step(nav.Forward)
		if s := msg.String(); s == "down" || s == "j" {
			m.scrollPage(wheelRows)
		}

	case key.Matches(msg, m.keys.Backward):
		m.ctrl.Step(nav.Backward)
		if s := msg.String(); s == "up" || s == "k" {
			m.scrollPage(-wheelRows)
		}

	case key.Matches(msg, m.keys.PageDown):
		m.scrollPage(m.host.bodyRows())

	case key.Matches(msg, m.keys.PageUp):
		m.scrollPage(-m.host.bodyRows())

	case key.Matches(msg, m.keys.Jump):
		m.ctrl.NavigateTo(int(msg.String()[0] - '1'))

	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()

	case key.Matches(msg, m.keys.Resume):
		return m.saveResume()

	case key.Matches(msg, m.keys.NextCard):
		m.projects.Next()

	case key.Matches(msg, m.keys.PrevCard):
		m.projects.Prev()

	case key.Matches(msg, m.keys.Form):
		m.ctrl.NavigateTo(panelContact)
		return m.form.focus()

	case key.Matches(msg, m.keys.Copy):
		return m.copyEmail()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return tea.Quit
	case key.Matches(msg, m.formKeys.Leave):
		m.form.blur()
	case key.Matches(msg, m.formKeys.Next):
		return m.form.move(1)
	case key.Matches(msg, m.formKeys.Prev):
		return m.form.move(-1)
	case key.Matches(msg, m.formKeys.Submit):
		return m.submit()
	case msg.Type == tea.KeyEnter && m.form.field != fieldMessage:
		return m.form.move(1)
	default:
		return m.form.update(msg)
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Action == tea.MouseActionMotion:
		m.glow.Track(float64(msg.X*m.host.cellW), float64(msg.Y*m.host.cellH),
			m.host.Width(), m.host.rows*m.host.cellH)

	case msg.Button == tea.MouseButtonWheelDown:
		m.ctrl.Step(nav.Forward)
		m.scrollPage(wheelRows)

	case msg.Button == tea.MouseButtonWheelUp:
		m.ctrl.Step(nav.Backward)
		m.scrollPage(-wheelRows)

	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease:
		return m.click(msg)
	}
	return nil
}

// click dispatches a left click to the zone under the pointer.
func (m *Model) click(msg tea.MouseMsg) tea.Cmd {
	if m.zones == nil {
		return nil
	}
	in := func(id string) bool {
		z := m.zones.Get(id)
		return z != nil && z.InBounds(msg)
	}
	logging.Debug("Click", zap.Any("pointer", m.glow.Vars()))

	for i := 0; i < panelCount; i++ {
		if in(fmt.Sprintf("nav-%d", i)) || in(fmt.Sprintf("dot-%d", i)) {
			m.ctrl.NavigateTo(i)
			return nil
		}
	}
	for i := 0; i < fieldCount; i++ {
		if in(fmt.Sprintf("field-%d", i)) {
			m.form.field = i
			return m.form.focus()
		}
	}

	switch {
	case in("theme"):
		m.toggleTheme()
	case in("cv-nav"), in("cv-contact"):
		return m.saveResume()
	case in("prev"):
		m.projects.Prev()
	case in("next"):
		m.projects.Next()
	case in("send"):
		return m.submit()
	case in("copy"):
		return m.copyEmail()
	}
	return nil
}

// submit validates the contact form and acknowledges it.
func (m *Model) submit() tea.Cmd {
	sub, err := contact.Submit(m.form.values(), m.ownerName(), m.cfg.Contact.ResetDelay())
	if err != nil {
		return m.setNotice("Please fill in all fields.", true)
	}

	logging.Info("Contact form submitted", zap.String("email", m.form.values().Trimmed().Email))
	m.form.sent = true
	m.form.blur()
	return tea.Batch(
		m.setNotice(sub.Acknowledgement, false),
		tea.Tick(sub.ResetAfter, func(time.Time) tea.Msg { return contactResetMsg{} }),
	)
}

// ownerName is the first name of the profile owner.
func (m *Model) ownerName() string {
	if f := strings.Fields(m.cfg.Profile.Name); len(f) > 0 {
		return f[0]
	}
	return "I"
}

func (m *Model) saveResume() tea.Cmd {
	d := m.downloader
	return func() tea.Msg {
		path, err := d.Download()
		return resumeSavedMsg{path: path, err: err}
	}
}

func (m *Model) copyEmail() tea.Cmd {
	copyText, email := m.copyText, m.cfg.Profile.Email
	return func() tea.Msg {
		return clipboardMsg{err: copyText(email)}
	}
}

// setNotice shows text in the footer until it expires or is replaced.
func (m *Model) setNotice(text string, isErr bool) tea.Cmd {
	m.noticeSeq++
	seq := m.noticeSeq
	m.notice, m.noticeErr = text, isErr
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg { return noticeExpiredMsg{seq: seq} })
}

// View renders the page.
func (m *Model) View() string {
	if !m.started {
		return "Loading..."
	}

	var body string
	if m.ctrl.Mode() == nav.ModeMobile {
		body = m.renderStack()
	} else {
		body = m.renderTrack()
	}

	view := lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderFooter())
	if m.zones != nil {
		return m.zones.Scan(view)
	}
	return view
}

// renderTrack shows the desktop window onto the horizontal panel track.
// Zones are only marked once the track has settled on a panel.
func (m *Model) renderTrack() string {
	w, h := m.host.cols, m.host.bodyRows()
	if w <= 0 {
		return ""
	}
	off := max(0, min(m.host.trackCols(), (panelCount-1)*w))

	a := off / w
	if off%w == 0 {
		return m.renderPanel(a, w, h, true, nav.ModeDesktop)
	}

	left := strings.Split(m.renderPanel(a, w, h, false, nav.ModeDesktop), "\n")
	right := strings.Split(m.renderPanel(a+1, w, h, false, nav.ModeDesktop), "\n")
	shift := off - a*w

	lines := make([]string, h)
	for r := range lines {
		var l, rt string
		if r < len(left) {
			l = left[r]
		}
		if r < len(right) {
			rt = right[r]
		}
		row := l + strings.Repeat(" ", max(0, w-ansi.StringWidth(l))) + rt
		lines[r] = ansi.Cut(row, shift, shift+w)
	}
	return strings.Join(lines, "\n")
}

// renderStack shows the mobile window onto the vertically stacked panels.
func (m *Model) renderStack() string {
	h := m.host.bodyRows()
	doc := strings.Split(strings.Join(m.stack, "\n"), "\n")
	start := max(0, min(m.host.pageRows(), len(doc)))
	end := min(start+h, len(doc))

	lines := append([]string(nil), doc[start:end]...)
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderHeader() string {
	mobile := m.ctrl.Mode() == nav.ModeMobile

	parts := []string{m.st.Brand.Render(m.cfg.Profile.Name)}
	for i, title := range panelTitles {
		label := title
		if mobile {
			label = fmt.Sprint(i + 1)
		}
		st := m.st.NavButton
		if m.buttons.isActive(i) {
			st = m.st.NavActive
		}
		parts = append(parts, m.mark(fmt.Sprintf("nav-%d", i), st.Render(label), true))
	}

	toggle := "☾ dark"
	if m.themeName == theme.Light {
		toggle = "☀ light"
	}
	parts = append(parts,
		"  ",
		m.mark("theme", m.st.Toggle.Render(toggle), true),
		m.mark("cv-nav", m.st.Button.Render("CV"), true),
	)

	bar := ansi.Truncate(lipgloss.JoinHorizontal(lipgloss.Center, parts...), m.host.cols, "")
	return bar + "\n" + m.renderGlowRule()
}

// renderGlowRule draws the header rule with a highlight that follows the pointer.
func (m *Model) renderGlowRule() string {
	cols := m.host.cols
	center := int(m.glow.XP * float64(cols))
	lo := max(0, min(cols, center-glowRadius))
	hi := max(lo, min(cols, center+glowRadius))

	accent := lipgloss.Color(m.glow.Blend(string(m.st.palette.Accent), string(m.st.palette.AccentAlt)))
	return m.st.Muted.Render(strings.Repeat("─", lo)) +
		lipgloss.NewStyle().Foreground(accent).Render(strings.Repeat("━", hi-lo)) +
		m.st.Muted.Render(strings.Repeat("─", cols-hi))
}

func (m *Model) renderFooter() string {
	var dots []string
	for i := 0; i < panelCount; i++ {
		glyph := m.st.Dot.Render(dotInactive)
		if m.dots.isActive(i) {
			glyph = m.st.DotActive.Render(dotActive)
		}
		dots = append(dots, m.mark(fmt.Sprintf("dot-%d", i), glyph, true))
	}

	status := m.st.Muted.Render(fmt.Sprintf("  %s · %d/%d  ", m.ctrl.Mode(), m.ctrl.Current()+1, m.ctrl.Panels()))
	line := strings.Join(dots, " ") + status
	if m.notice != "" {
		st := m.st.Notice
		if m.noticeErr {
			st = m.st.NoticeErr
		}
		line += st.Render(m.notice)
	}

	var bindings []key.Binding
	switch {
	case m.form.focused:
		bindings = m.formKeys.ShortHelp()
	case m.help.ShowAll:
		// flattened so the footer keeps its height
		for _, group := range m.keys.FullHelp() {
			bindings = append(bindings, group...)
		}
	default:
		bindings = m.keys.ShortHelp()
	}
	helpView := m.help.ShortHelpView(bindings)

	return ansi.Truncate(line, m.host.cols, "…") + "\n" +
		ansi.Truncate(m.st.Help.Render(helpView), m.host.cols, "…")
}

// Run starts the full-screen program.
func Run(opts Options) error {
	zones := zone.New()
	defer zones.Close()
	opts.Zones = zones

	m, err := New(opts)
	if err != nil {
		return err
	}

	logging.Info("Starting portfolio", zap.String("theme", string(m.themeName)))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		logging.Error("Portfolio exited with an error", zap.Error(err))
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

package tui

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/termfolio/internal/config"
	"github.com/muurk/termfolio/internal/contact"
	"github.com/muurk/termfolio/internal/nav"
	"github.com/muurk/termfolio/internal/resume"
	"github.com/muurk/termfolio/internal/theme"
)

const (
	desktopCols = 120 // 960px
	mobileCols  = 80  // 640px
	testRows    = 40
)

func newTestModel(t *testing.T, cols int, opts Options) *Model {
	t.Helper()
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = func(string) error { return nil }
	}
	m, err := New(opts)
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: cols, Height: testRows})
	return m
}

func press(m *Model, keys ...tea.KeyMsg) {
	for _, k := range keys {
		m.Update(k)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// settle runs scroll frames until both axes are at rest.
func settle(t *testing.T, m *Model) {
	t.Helper()
	for i := 0; i < 2000 && m.host.animating(); i++ {
		m.Update(scrollTickMsg{})
	}
	require.False(t, m.host.animating(), "scroll did not settle")
}

func TestStartsOnFirstPanel(t *testing.T) {
	m := newTestModel(t, desktopCols, Options{})

	assert.Equal(t, 0, m.ctrl.Current())
	assert.Equal(t, nav.ModeDesktop, m.ctrl.Mode())
	assert.True(t, m.dots.isActive(0))
	assert.True(t, m.buttons.isActive(0))
	assert.False(t, m.skills.Animated())
}

func TestDesktopArrowKeysStepThroughPanels(t *testing.T) {
	m := newTestModel(t, desktopCols, Options{})

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.ctrl.Current())
	assert.True(t, m.skills.Animated(), "reaching About reveals the skill bars")

	settle(t, m)
	assert.Equal(t, float64(desktopCols*8), m.host.track.pos)
	assert.Equal(t, 1, m.ctrl.Current())

	press(m,
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRight},
	)
	assert.Equal(t, panelContact, m.ctrl.Current())

	press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, panelProjects, m.ctrl.Current())
	settle(t, m)
	assert.Equal(t, panelProjects, m.ctrl.Current())
}

func TestJumpKeysClamp(t *testing.T) {
	m := newTestModel(t, desktopCols, Options{})

	press(m, runes("3"))
	assert.Equal(t, panelProjects, m.ctrl.Current())

	press(m, runes("9"))
	assert.Equal(t, panelContact, m.ctrl.Current())
}

func TestSkillsRevealOnce(t *testing.T) {
	m := newTestModel(t, desktopCols, Options{})

	press(m, runes("2"), runes("1"), runes("2"))
	assert.True(t, m.skills.Animated())

	m.revealSkills()
	assert.Empty(t, m.pending, "second reveal queues nothing")
}

func TestResizeResnapsTrack(t *testing.T) {
	m := newTestModel(t, desktopCols, Options{})
	press(m, runes("3"))
	settle(t, m)

	m.Update(tea.WindowSizeMsg{Width: 150, Height: testRows})
	assert.Equal(t, panelProjects, m.ctrl.Current())
	assert.Equal(t, float64(2*150*8), m.host.track.pos)
	assert.False(t, m.host.track.moving, "re-snap is instant")
}

func TestCrossingIntoMobileKeepsCurrentPanelInView(t *testing.T) {
	m := newTestModel(t, desktopCols, Options{})
	press(m, runes("3"))
	settle(t, m)

	m.Update(tea.WindowSizeMsg{Width: mobileCols, Height: testRows})
	require.Equal(t, nav.ModeMobile, m.ctrl.Mode())
	assert.Equal(t, panelProjects, m.ctrl.Current())

	want := m.host.clampPage(m.host.PanelTop(panelProjects) - m.host.HeaderHeight())
	assert.Positive(t, want)
	assert.Equal(t, float64(want), m.host.page.pos)
	assert.False(t, m.host.page.moving, "the page jumps without animating")

	m.ctrl.ScrollObserved(m.host.measure())
	assert.Equal(t, panelProjects, m.ctrl.Current())
}

func TestResizeSizesContactForm(t *testing.T) {
	m := newTestModel(t, desktopCols, Options{})
	want := contentWidth(desktopCols) - m.st.Label.GetWidth() - 2
	assert.Equal(t, want, m.form.name.Width)
	assert.Equal(t, want, m.form.email.Width)

	m.Update(tea.WindowSizeMsg{Width: mobileCols, Height: testRows})
	want = contentWidth(mobileCols) - m.st.Label.GetWidth() - 2
	assert.Equal(t, want, m.form.name.Width)

	m.View()
	assert.Equal(t, want, m.form.name.Width, "rendering leaves the form size alone")
}

func TestMobileIgnoresHorizontalSteps(t *testing.T) {
	m := newTestModel(t, mobileCols, Options{})
	require.Equal(t, nav.ModeMobile, m.ctrl.Mode())

	press(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.ctrl.Current())
	assert.Equal(t, 0.0, m.host.track.pos)
}

func TestMobileNavigateScrollsPage(t *testing.T) {
	m := newTestModel(t, mobileCols, Options{})

	press(m, runes("3"))
	assert.Equal(t, panelProjects, m.ctrl.Current())
	settle(t, m)

	assert.Equal(t, panelProjects, m.ctrl.Current())
	want := m.host.PanelTop(panelProjects) - m.host.HeaderHeight()
	assert.Equal(t, float64(want), m.host.page.pos)
}

func TestMobileScrollingUpdatesIndex(t *testing.T) {
	m := newTestModel(t, mobileCols, Options{})

	for i := 0; i < 200 && m.ctrl.Current() == 0; i++ {
		press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, panelAbout, m.ctrl.Current())
	assert.True(t, m.skills.Animated())
}

func TestThemeToggle(t *testing.T) {
	m := newTestModel(t, desktopCols, Options{})
	require.Equal(t, theme.Dark, m.themeName)

	press(m, runes("t"))
	assert.Equal(t, theme.Light, m.themeName)
	assert.Equal(t, string(theme.Get(theme.Light).Accent), m.bars[0].FullColor)

	press(m, runes("t"))
	assert.Equal(t, theme.Dark, m.themeName)
}

func TestContactFormSubmitAndReset(t *testing.T) {
	m := newTestModel(t, desktopCols, Options{})

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, panelContact, m.ctrl.Current())
	require.True(t, m.form.focused)

	press(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.True(t, m.noticeErr)
	assert.Equal(t, "Please fill in all fields.", m.notice)
	assert.False(t, m.form.sent)

	press(m, runes("Ada"), tea.KeyMsg{Type: tea.KeyEnter}, runes("ada@example.com"),
		tea.KeyMsg{Type: tea.KeyTab}, runes("Hello there"))
	assert.Equal(t, "Ada", m.form.name.Value())
	assert.Equal(t, "ada@example.com", m.form.email.Value())
	assert.Equal(t, "Hello there", m.form.message.Value())

	press(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.False(t, m.noticeErr)
	assert.Equal(t, "Thanks Ada! Christopher will reply to ada@example.com shortly.", m.notice)
	assert.True(t, m.form.sent)
	assert.False(t, m.form.focused)

	m.Update(contactResetMsg{})
	assert.False(t, m.form.sent)
	assert.Empty(t, m.form.values().Name)
	assert.Empty(t, m.form.values().Message)
}

func TestContactFormDoubleSubmitResetsTwice(t *testing.T) {
	m := newTestModel(t, desktopCols, Options{})
	press(m, tea.KeyMsg{Type: tea.KeyTab}, runes("Ada"), tea.KeyMsg{Type: tea.KeyTab},
		runes("ada@example.com"), tea.KeyMsg{Type: tea.KeyTab}, runes("Hi"))

	require.NotNil(t, m.submit())
	require.True(t, m.form.sent)
	seq := m.noticeSeq

	// a second click on send before the reset fires
	require.NotNil(t, m.submit())
	assert.True(t, m.form.sent)
	assert.Equal(t, seq+1, m.noticeSeq)

	assert.NotPanics(t, func() {
		m.Update(contactResetMsg{})
		m.Update(contactResetMsg{})
	})
	assert.False(t, m.form.sent)
	assert.False(t, m.form.focused)
	assert.Equal(t, contact.Form{}, m.form.values())

	m.submit()
	assert.False(t, m.form.sent, "an emptied form is not sent again")
	assert.Equal(t, "Please fill in all fields.", m.notice)
}

func TestFormCapturesNavigationKeys(t *testing.T) {
	m := newTestModel(t, desktopCols, Options{})
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	settle(t, m)

	press(m, runes("q"), runes("1"))
	assert.Equal(t, panelContact, m.ctrl.Current())
	assert.Equal(t, "q1", m.form.name.Value())

	press(m, tea.KeyMsg{Type: tea.KeyEsc}, runes("1"))
	assert.Equal(t, panelHome, m.ctrl.Current())
}

func TestNoticeExpiry(t *testing.T) {
	m := newTestModel(t, desktopCols, Options{})
	m.setNotice("first", false)
	m.setNotice("second", false)

	m.Update(noticeExpiredMsg{seq: 1})
	assert.Equal(t, "second", m.notice)

	m.Update(noticeExpiredMsg{seq: 2})
	assert.Empty(t, m.notice)
}

func TestCopyEmail(t *testing.T) {
	var copied string
	m := newTestModel(t, desktopCols, Options{Clipboard: func(s string) error {
		copied = s
		return nil
	}})

	m.Update(m.copyEmail()())
	assert.Equal(t, m.cfg.Profile.Email, copied)
	assert.Equal(t, "Email copied", m.notice)
}

func TestCopyEmailFailure(t *testing.T) {
	m := newTestModel(t, desktopCols, Options{Clipboard: func(string) error {
		return errors.New("no clipboard")
	}})

	m.Update(m.copyEmail()())
	assert.True(t, m.noticeErr)
	assert.Contains(t, m.notice, m.cfg.Profile.Email)
}

func TestSaveResume(t *testing.T) {
	cfg := config.Default()
	cfg.Resume.DownloadDir = t.TempDir()
	m := newTestModel(t, desktopCols, Options{
		Config: cfg,
		Resume: resume.Source{Encoded: base64.StdEncoding.EncodeToString([]byte("cv"))},
	})

	msg := m.saveResume()()
	saved, ok := msg.(resumeSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.err)

	data, err := os.ReadFile(filepath.Join(cfg.Resume.DownloadDir, cfg.Resume.FileName))
	require.NoError(t, err)
	assert.Equal(t, "cv", string(data))

	m.Update(saved)
	assert.Contains(t, m.notice, "CV saved")
}

func TestSaveResumeUnavailable(t *testing.T) {
	m := newTestModel(t, desktopCols, Options{Resume: resume.Source{Path: filepath.Join(t.TempDir(), "missing.b64")}})

	m.Update(m.saveResume()())
	assert.True(t, m.noticeErr)
	assert.Equal(t, "CV not available in this build", m.notice)
}

func TestCarouselKeys(t *testing.T) {
	m := newTestModel(t, desktopCols, Options{})
	first := m.projects.Items()[0].Title

	press(m, runes("]"))
	assert.NotEqual(t, first, m.projects.Items()[0].Title)

	press(m, runes("["))
	assert.Equal(t, first, m.projects.Items()[0].Title)
}

func TestViewRendersBothLayouts(t *testing.T) {
	for _, cols := range []int{desktopCols, mobileCols} {
		m := newTestModel(t, cols, Options{})
		view := m.View()
		assert.Contains(t, view, "Christopher")
		assert.Contains(t, view, dotActive)
		assert.Contains(t, view, "1/4", "status counts the controller's panels")
	}
}

func TestViewWhileTrackMoves(t *testing.T) {
	m := newTestModel(t, desktopCols, Options{})
	press(m, tea.KeyMsg{Type: tea.KeyRight})
	m.Update(scrollTickMsg{})
	require.True(t, m.host.animating())

	assert.NotPanics(t, func() { _ = m.View() })
}

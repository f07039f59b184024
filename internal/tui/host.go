package tui

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/muurk/termfolio/internal/nav"
)

// Scroll animation parameters.
const (
	scrollFPS       = 60
	scrollFrequency = 7.0
	scrollDamping   = 1.0
	settleThreshold = 0.5
)

// scrollFrame is the interval between scroll animation ticks.
var scrollFrame = time.Second / scrollFPS

// axis is one spring-animated scroll position in logical pixels.
type axis struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	moving bool
}

func newAxis() *axis {
	return &axis{spring: harmonica.NewSpring(harmonica.FPS(scrollFPS), scrollFrequency, scrollDamping)}
}

// to retargets the axis. A new target replaces the one in flight.
func (a *axis) to(target float64, b nav.Behavior) {
	a.target = target
	if b == nav.Instant {
		a.pos, a.vel, a.moving = target, 0, false
		return
	}
	a.moving = a.pos != target
}

// jump moves the axis immediately, cancelling any animation.
func (a *axis) jump(pos float64) {
	a.to(pos, nav.Instant)
}

// step advances one frame and reports whether the position changed.
func (a *axis) step() bool {
	if !a.moving {
		return false
	}
	before := a.pos
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	if math.Abs(a.pos-a.target) < settleThreshold && math.Abs(a.vel) < settleThreshold {
		a.pos, a.vel, a.moving = a.target, 0, false
	}
	return a.pos != before
}

// metrics converts terminal cells to logical pixels.
type metrics struct {
	cellW int
	cellH int
}

// host adapts the terminal to the navigation controller's collaborators:
// it is the viewport, the scroller and the layout at once.
type host struct {
	metrics
	cols, rows int
	headerRows int
	footerRows int

	// panelRows holds each stacked panel's height in mobile layout.
	panelRows []int

	track *axis // desktop horizontal offset
	page  *axis // mobile vertical offset
}

func newHost(m metrics, headerRows, footerRows, panels int) *host {
	return &host{
		metrics:    m,
		headerRows: headerRows,
		footerRows: footerRows,
		panelRows:  make([]int, panels),
		track:      newAxis(),
		page:       newAxis(),
	}
}

// Width implements nav.Viewport.
func (h *host) Width() int { return h.cols * h.cellW }

// ScrollTrackTo implements nav.Scroller.
func (h *host) ScrollTrackTo(x int, b nav.Behavior) {
	h.track.to(float64(x), b)
}

// ScrollPageTo implements nav.Scroller. The target is kept inside the document.
func (h *host) ScrollPageTo(y int, b nav.Behavior) {
	h.page.to(float64(h.clampPage(y)), b)
}

// PanelTop implements nav.Layout.
func (h *host) PanelTop(i int) int {
	rows := h.headerRows
	for j := 0; j < i && j < len(h.panelRows); j++ {
		rows += h.panelRows[j]
	}
	return rows * h.cellH
}

// HeaderHeight implements nav.Layout.
func (h *host) HeaderHeight() int { return h.headerRows * h.cellH }

// bodyRows is the height available to panels between header and footer.
func (h *host) bodyRows() int {
	return max(1, h.rows-h.headerRows-h.footerRows)
}

// documentRows is the stacked height of all panels.
func (h *host) documentRows() int {
	total := 0
	for _, r := range h.panelRows {
		total += r
	}
	return total
}

func (h *host) clampPage(y int) int {
	maxY := (h.documentRows() - h.bodyRows()) * h.cellH
	return max(0, min(y, maxY))
}

// nudgePage scrolls the page natively, as a wheel or arrow key would.
func (h *host) nudgePage(rows int) {
	y := h.clampPage(int(math.Round(h.page.pos)) + rows*h.cellH)
	h.page.jump(float64(y))
}

// animating reports whether either axis still has frames to run.
func (h *host) animating() bool {
	return h.track.moving || h.page.moving
}

// step advances both axes by one frame.
func (h *host) step() bool {
	moved := h.track.step()
	return h.page.step() || moved
}

// measure takes the scroll measurement the controller observes.
func (h *host) measure() nav.ScrollEvent {
	pageY := int(math.Round(h.page.pos))
	tops := make([]int, len(h.panelRows))
	for i := range tops {
		tops[i] = h.PanelTop(i) - pageY
	}
	return nav.ScrollEvent{
		ScrollLeft: int(math.Round(h.track.pos)),
		PanelTops:  tops,
	}
}

// trackCols is the desktop track offset in columns.
func (h *host) trackCols() int {
	return int(math.Round(h.track.pos / float64(h.cellW)))
}

// pageRows is the mobile page offset in rows.
func (h *host) pageRows() int {
	return int(math.Round(h.page.pos / float64(h.cellH)))
}

// markers is an indicator set rendered as dots or buttons.
type markers struct {
	active []bool
}

func newMarkers(n int) *markers { return &markers{active: make([]bool, n)} }

// Len implements nav.Indicators.
func (s *markers) Len() int { return len(s.active) }

// SetActive implements nav.Indicators.
func (s *markers) SetActive(i int, active bool) { s.active[i] = active }

// isActive reports whether marker i is active.
func (s *markers) isActive(i int) bool {
	return i >= 0 && i < len(s.active) && s.active[i]
}

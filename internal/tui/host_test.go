package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/muurk/termfolio/internal/nav"
)

func newTestHost(cols, rows int) *host {
	h := newHost(metrics{cellW: 8, cellH: 16}, headerRows, footerRows, 3)
	h.cols, h.rows = cols, rows
	return h
}

func TestHostWidthInPixels(t *testing.T) {
	h := newTestHost(120, 40)
	assert.Equal(t, 960, h.Width())
	assert.Equal(t, 32, h.HeaderHeight())
	assert.Equal(t, 36, h.bodyRows())
}

func TestHostPanelTop(t *testing.T) {
	h := newTestHost(80, 30)
	h.panelRows = []int{30, 10, 20}

	assert.Equal(t, 2*16, h.PanelTop(0))
	assert.Equal(t, 32*16, h.PanelTop(1))
	assert.Equal(t, 42*16, h.PanelTop(2))
	assert.Equal(t, 60, h.documentRows())
}

func TestAxisInstantAndSmooth(t *testing.T) {
	a := newAxis()
	a.to(500, nav.Instant)
	assert.Equal(t, 500.0, a.pos)
	assert.False(t, a.moving)

	a.to(0, nav.Smooth)
	assert.True(t, a.moving)
	assert.True(t, a.step())
	assert.Less(t, a.pos, 500.0)

	for i := 0; i < 1000 && a.moving; i++ {
		a.step()
	}
	assert.False(t, a.moving)
	assert.Equal(t, 0.0, a.pos)
}

func TestAxisRetargetReplacesAnimation(t *testing.T) {
	a := newAxis()
	a.to(1000, nav.Smooth)
	a.step()
	a.to(200, nav.Smooth)

	for i := 0; i < 1000 && a.moving; i++ {
		a.step()
	}
	assert.Equal(t, 200.0, a.pos)
}

func TestHostClampsPage(t *testing.T) {
	h := newTestHost(80, 30) // 26 body rows
	h.panelRows = []int{30, 30, 30}

	h.ScrollPageTo(-100, nav.Instant)
	assert.Equal(t, 0.0, h.page.pos)

	h.ScrollPageTo(1_000_000, nav.Instant)
	assert.Equal(t, float64((90-26)*16), h.page.pos)

	h.page.jump(0)
	h.nudgePage(3)
	assert.Equal(t, 3, h.pageRows())
}

func TestHostMeasure(t *testing.T) {
	h := newTestHost(80, 30)
	h.panelRows = []int{30, 30, 30}
	h.page.jump(40 * 16)
	h.track.jump(123)

	ev := h.measure()
	assert.Equal(t, 123, ev.ScrollLeft)
	assert.Equal(t, []int{(2 - 40) * 16, (32 - 40) * 16, (62 - 40) * 16}, ev.PanelTops)
}

func TestMarkers(t *testing.T) {
	s := newMarkers(3)
	s.SetActive(1, true)

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.isActive(1))
	assert.False(t, s.isActive(0))
	assert.False(t, s.isActive(7))
}

package nav

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/muurk/termfolio/internal/logging"
)

// DefaultMobileMaxWidth is the widest viewport (in logical pixels) that is
// still classified as mobile.
const DefaultMobileMaxWidth = 768

// DefaultTargetPanel is the panel whose first visit fires the OnTarget hook.
const DefaultTargetPanel = 1

// Mode is the layout classification derived from the viewport width.
type Mode int

const (
	ModeDesktop Mode = iota
	ModeMobile
)

// String returns the mode name used in logs and the status line.
func (m Mode) String() string {
	switch m {
	case ModeDesktop:
		return "desktop"
	case ModeMobile:
		return "mobile"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Classify returns ModeMobile iff width <= mobileMax.
func Classify(width, mobileMax int) Mode {
	if width <= mobileMax {
		return ModeMobile
	}
	return ModeDesktop
}

// Direction is a logical keyboard step.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Behavior selects between an animated and an immediate scroll.
type Behavior int

const (
	Smooth Behavior = iota
	Instant
)

// Viewport reports the current viewport width in logical pixels.
type Viewport interface {
	Width() int
}

// Scroller issues scroll commands. Both methods are fire-and-forget: a new
// command replaces any animation still in flight.
type Scroller interface {
	ScrollTrackTo(x int, b Behavior)
	ScrollPageTo(y int, b Behavior)
}

// Layout exposes the document geometry used in mobile mode.
type Layout interface {
	// PanelTop returns the top offset of panel i relative to the document.
	PanelTop(i int) int
	// HeaderHeight returns the height of the fixed header.
	HeaderHeight() int
}

// Indicators is an ordered set of markers addressed by panel position.
type Indicators interface {
	Len() int
	SetActive(i int, active bool)
}

// ScrollEvent carries the measurements taken when a scroll is observed.
type ScrollEvent struct {
	// ScrollLeft is the horizontal track offset (desktop).
	ScrollLeft int
	// PanelTops are the viewport-relative panel tops (mobile).
	PanelTops []int
}

// ResizeEvent carries the new viewport width.
type ResizeEvent struct {
	Width int
}

// Config wires a Controller to its collaborators.
type Config struct {
	Panels         int
	MobileMaxWidth int // defaults to DefaultMobileMaxWidth
	TargetPanel    *int // nil selects DefaultTargetPanel

	Viewport   Viewport
	Scroller   Scroller
	Layout     Layout
	Indicators []Indicators

	// OnTarget runs the first time TargetPanel becomes current.
	OnTarget func()
}

// Controller tracks the current panel and keeps dependent UI in sync.
type Controller struct {
	cfg      Config
	target   int
	current  int
	animated bool
}

// New creates a Controller. It fails only for an unusable configuration.
func New(cfg Config) (*Controller, error) {
	if cfg.Panels < 1 {
		return nil, fmt.Errorf("panel count must be at least 1, got %d", cfg.Panels)
	}
	if cfg.Viewport == nil || cfg.Scroller == nil || cfg.Layout == nil {
		return nil, errors.New("viewport, scroller and layout are required")
	}
	if cfg.MobileMaxWidth == 0 {
		cfg.MobileMaxWidth = DefaultMobileMaxWidth
	}
	target := DefaultTargetPanel
	if cfg.TargetPanel != nil {
		target = *cfg.TargetPanel
		if target < 0 || target >= cfg.Panels {
			return nil, fmt.Errorf("target panel %d out of range [0,%d)", target, cfg.Panels)
		}
	}
	return &Controller{cfg: cfg, target: target}, nil
}

// Current returns the current panel index.
func (c *Controller) Current() int { return c.current }

// Panels returns the fixed panel count.
func (c *Controller) Panels() int { return c.cfg.Panels }

// Animated reports whether the OnTarget hook has fired.
func (c *Controller) Animated() bool { return c.animated }

// Mode classifies the viewport as it is right now.
func (c *Controller) Mode() Mode {
	return Classify(c.cfg.Viewport.Width(), c.cfg.MobileMaxWidth)
}

// Start establishes the initial index from the first scroll measurement.
// The target panel check runs even when the index stays at zero.
func (c *Controller) Start(ev ScrollEvent) {
	width := c.cfg.Viewport.Width()
	mode := Classify(width, c.cfg.MobileMaxWidth)
	idx, ok := c.observe(mode, width, ev)
	if !ok {
		idx = c.current
	}
	c.set(idx, "start", mode)
}

// NavigateTo scrolls to panel i, clamped to the panel range, and makes it current.
func (c *Controller) NavigateTo(i int) {
	width := c.cfg.Viewport.Width()
	c.navigate(i, width, Classify(width, c.cfg.MobileMaxWidth))
}

func (c *Controller) navigate(i, width int, mode Mode) {
	i = c.clamp(i)
	if mode == ModeMobile {
		y := c.cfg.Layout.PanelTop(i) - c.cfg.Layout.HeaderHeight()
		c.cfg.Scroller.ScrollPageTo(y, Smooth)
	} else {
		c.cfg.Scroller.ScrollTrackTo(i*width, Smooth)
	}

	c.set(i, "navigate", mode)
}

// ScrollObserved updates the index from a passive scroll measurement.
func (c *Controller) ScrollObserved(ev ScrollEvent) {
	width := c.cfg.Viewport.Width()
	mode := Classify(width, c.cfg.MobileMaxWidth)
	idx, ok := c.observe(mode, width, ev)
	if !ok || idx == c.current {
		return
	}
	c.set(idx, "scroll", mode)
}

// Resize re-snaps the desktop track to the current panel without animation.
// It never changes the index and does nothing in mobile mode.
func (c *Controller) Resize(ev ResizeEvent) {
	mode := Classify(ev.Width, c.cfg.MobileMaxWidth)
	logging.LogResize(ev.Width, mode.String())
	if mode == ModeMobile {
		return
	}
	c.cfg.Scroller.ScrollTrackTo(c.current*ev.Width, Instant)
}

// Step moves one panel in desktop mode. Mobile mode leaves keys to the host.
func (c *Controller) Step(d Direction) {
	width := c.cfg.Viewport.Width()
	mode := Classify(width, c.cfg.MobileMaxWidth)
	if mode == ModeMobile {
		return
	}
	switch d {
	case Forward:
		c.navigate(c.current+1, width, mode)
	case Backward:
		c.navigate(c.current-1, width, mode)
	}
}

// Sync marks position i active in every indicator set and clears the rest.
func (c *Controller) Sync(i int) {
	for _, set := range c.cfg.Indicators {
		for j := 0; j < set.Len(); j++ {
			set.SetActive(j, j == i)
		}
	}
}

func (c *Controller) observe(mode Mode, width int, ev ScrollEvent) (int, bool) {
	if mode == ModeMobile {
		return c.closestToHeader(ev.PanelTops)
	}
	if width <= 0 {
		return 0, false
	}
	// Round half up.
	idx := int(math.Floor(float64(ev.ScrollLeft)/float64(width) + 0.5))
	return c.clamp(idx), true
}

func (c *Controller) closestToHeader(tops []int) (int, bool) {
	if len(tops) == 0 {
		return 0, false
	}
	header := c.cfg.Layout.HeaderHeight()
	best, bestDist := 0, math.MaxInt
	for i, top := range tops {
		if i >= c.cfg.Panels {
			break
		}
		d := top - header
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, true
}

func (c *Controller) set(i int, source string, mode Mode) {
	from := c.current
	c.current = i
	c.Sync(i)
	c.checkTarget()

	if from != i {
		logging.LogNavigation(source, from, i, mode.String())
	}
}

func (c *Controller) checkTarget() {
	if c.animated || c.current != c.target {
		return
	}
	c.animated = true
	logging.Debug("Target panel reached", zap.Int("panel", c.current))
	if c.cfg.OnTarget != nil {
		c.cfg.OnTarget()
	}
}

func (c *Controller) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i > c.cfg.Panels-1 {
		return c.cfg.Panels - 1
	}
	return i
}

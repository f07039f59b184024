// Package glow tracks the pointer position that drives the cursor-reactive
// background and blends the accent color from it.
package glow

import (
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Glow is the last observed pointer position.
type Glow struct {
	X, Y   float64
	XP, YP float64
}

// Track records a pointer at (x, y) inside a w×h viewport.
// A zero-sized viewport leaves the fractions at zero.
func (g *Glow) Track(x, y float64, w, h int) {
	g.X, g.Y = x, y
	g.XP, g.YP = 0, 0
	if w > 0 {
		g.XP = round2(x / float64(w))
	}
	if h > 0 {
		g.YP = round2(y / float64(h))
	}
}

// Vars returns the position as --x, --y, --xp and --yp, each formatted
// with two decimals.
func (g Glow) Vars() map[string]string {
	return map[string]string{
		"--x":  strconv.FormatFloat(g.X, 'f', 2, 64),
		"--y":  strconv.FormatFloat(g.Y, 'f', 2, 64),
		"--xp": strconv.FormatFloat(g.XP, 'f', 2, 64),
		"--yp": strconv.FormatFloat(g.YP, 'f', 2, 64),
	}
}

// Blend mixes two hex colors by the horizontal fraction. Invalid input
// returns from unchanged.
func (g Glow) Blend(from, to string) string {
	a, err := colorful.Hex(from)
	if err != nil {
		return from
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return from
	}
	switch t := g.XP; {
	case t <= 0:
		return a.Hex()
	case t >= 1:
		return b.Hex()
	default:
		return a.BlendLab(b, t).Clamped().Hex()
	}
}

func round2(v float64) float64 {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return f
}

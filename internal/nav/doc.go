// Package nav implements the panel navigation controller for the portfolio.
//
// The controller owns the single authoritative "current panel" index and keeps
// it consistent between two input sources: explicit navigation requests
// (keyboard steps, nav buttons, dots) and passive observation of the scroll
// position. It supports two layouts, selected from the viewport width on every
// call:
//
//   - Desktop: panels page horizontally on a track; index = round(scrollLeft / width)
//   - Mobile: panels stack vertically under a fixed header; the panel whose top
//     edge is closest to the header's bottom edge is current
//
// # Collaborators
//
// The controller never touches a renderer directly. Everything it needs is
// injected through Config:
//
//	ctrl, err := nav.New(nav.Config{
//	    Panels:     4,
//	    Viewport:   host,            // Width() in logical pixels
//	    Scroller:   host,            // fire-and-forget smooth scroll
//	    Layout:     host,            // panel tops and fixed header height
//	    Indicators: []nav.Indicators{dots, buttons},
//	    OnTarget:   revealSkills,    // runs at most once
//	})
//
// # Ordering
//
// Every transition updates the index first, then the indicator sets, then
// runs the one-time target panel check.
//
// # Thread Safety
//
// A Controller is not safe for concurrent use. It is driven from the single
// Bubble Tea update goroutine.
package nav

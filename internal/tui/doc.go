// Package tui implements the full-screen terminal rendition of the portfolio page.
//
// The page is a fixed header, four panels (Home, About, Projects, Contact) and
// a footer carrying the page dots and key help. Built on Bubble Tea, the Model
// owns a nav.Controller and hands it a host that supplies its collaborators:
//
//   - Viewport: terminal width converted to logical pixels (cell_width per column)
//   - Scroller: two harmonica spring axes, one for the horizontal track and one
//     for the vertical page; a new target replaces the animation in flight
//   - Layout: the stacked panel heights measured on every render in mobile layout
//   - Indicators: the footer dots and the header buttons
//
// # Layouts
//
// Terminals wider than layout.mobile_max_width pixels (96 columns at the
// default 8px cells) show one panel at a time on a horizontal track. While the
// track is moving the two neighbouring panels are cut with x/ansi so the
// slide is visible. Narrower terminals stack the panels vertically under the
// header and scroll line by line.
//
// # Framework Components
//
//   - bubbles/progress: skill bars, filled the first time About is reached
//   - bubbles/textinput, bubbles/textarea: the contact form
//   - bubbles/help, bubbles/key: bindings and the footer help line
//   - bubblezone: click targets for buttons, dots and form fields
//   - glamour: the About markdown
//   - lipgloss: styling and layout
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	return tui.Run(tui.Options{Config: cfg})
package tui

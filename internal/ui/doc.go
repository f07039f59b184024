// Package ui provides the styled output used by termfolio's non-interactive commands.
//
// Unlike the full-screen page in package tui, these components follow a
// "print once and exit" pattern:
//
//   - Header: command banner with title and command path
//   - Result: success, failure or warning box with ordered details
//   - Confirm: warning box followed by a y/N prompt
//
// Example:
//
//	fmt.Println(ui.NewHeader("Save CV", "termfolio resume save").Render())
//	fmt.Println(ui.NewSuccessResult("CV saved").AddDetail("Path", path).Render())
//
// # Logging Integration
//
// zap logging is controlled by TERMFOLIO_LOG_LEVEL and written to a file, so
// it never interleaves with this output.
package ui

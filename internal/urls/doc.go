// Package urls provides centralized constants for the project URLs shown in
// help text, error boxes and the default portfolio content.
//
// Usage:
//
//	import "github.com/muurk/termfolio/internal/urls"
//
//	fmt.Printf("See %s for the config reference\n", urls.ConfigReference)
package urls

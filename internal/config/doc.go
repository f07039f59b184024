// Package config provides the portfolio content and preferences file.
//
// The file is YAML and holds everything the terminal page shows: profile,
// typed roles, skills, projects, contact details, the resume source, layout
// metrics and the starting theme. When no file exists the built-in defaults
// are used, so the program runs with zero setup.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/termfolio/config.yaml or $HOME/.config/termfolio/config.yaml
//   - macOS: $HOME/.config/termfolio/config.yaml
//   - Windows: %LOCALAPPDATA%\termfolio\config.yaml
//
// The --config flag overrides the location.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
//	// Write the defaults out for editing
//	if err := config.Default().Save(path); err != nil {
//	    return err
//	}
//
// The page never writes to this file; only `termfolio config init` does.
package config

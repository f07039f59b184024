package config

import (
	"fmt"
	"strings"
	"time"
)

// CurrentVersion is the only file version this build understands.
const CurrentVersion = 1

// Config represents the entire configuration file.
type Config struct {
	Version    int        `yaml:"version"`
	Theme      string     `yaml:"theme"` // "dark" or "light"
	Profile    Profile    `yaml:"profile"`
	Skills     []Skill    `yaml:"skills"`
	Projects   []Project  `yaml:"projects"`
	Layout     Layout     `yaml:"layout"`
	Typewriter Typewriter `yaml:"typewriter"`
	Contact    Contact    `yaml:"contact"`
	Resume     Resume     `yaml:"resume"`
}

// Profile is the owner of the portfolio.
type Profile struct {
	Name    string   `yaml:"name"`
	Tagline string   `yaml:"tagline"`
	Roles   []string `yaml:"roles"` // cycled by the typewriter
	About   string   `yaml:"about"` // markdown
	Email   string   `yaml:"email"`
	Links   []Link   `yaml:"links,omitempty"`
}

// Link is a labelled external URL.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Skill is one skill bar.
type Skill struct {
	Name    string `yaml:"name"`
	Percent int    `yaml:"percent"` // 0..100
}

// Project is one carousel card.
type Project struct {
	Title   string   `yaml:"title"`
	Summary string   `yaml:"summary"`
	Tech    []string `yaml:"tech,omitempty"`
	URL     string   `yaml:"url,omitempty"`
}

// Layout holds the viewport metrics.
type Layout struct {
	MobileMaxWidth int `yaml:"mobile_max_width"` // logical px, inclusive
	CellWidth      int `yaml:"cell_width"`       // px per column
	CellHeight     int `yaml:"cell_height"`      // px per row
	VisibleCards   int `yaml:"visible_cards"`    // carousel cards shown at once
}

// Typewriter holds the typing effect pace in milliseconds.
type Typewriter struct {
	TypeMS   int `yaml:"type_ms"`
	DeleteMS int `yaml:"delete_ms"`
	HoldMS   int `yaml:"hold_ms"`
}

// Contact holds the contact form settings.
type Contact struct {
	ResetMS int `yaml:"reset_ms"`
}

// Resume locates the encoded CV.
type Resume struct {
	FileName    string `yaml:"file_name"`
	B64Path     string `yaml:"b64_path,omitempty"`
	DownloadDir string `yaml:"download_dir,omitempty"`
}

// ms converts a millisecond count to a Duration.
func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// TypeDelay returns the per-rune typing delay.
func (t Typewriter) TypeDelay() time.Duration { return ms(t.TypeMS) }

// DeleteDelay returns the per-rune deleting delay.
func (t Typewriter) DeleteDelay() time.Duration { return ms(t.DeleteMS) }

// Hold returns the pause at a fully typed word.
func (t Typewriter) Hold() time.Duration { return ms(t.HoldMS) }

// ResetDelay returns how long the contact success state lasts.
func (c Contact) ResetDelay() time.Duration { return ms(c.ResetMS) }

// ValidationError describes one invalid setting.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found by Validate.
type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return "invalid config: " + strings.Join(msgs, "; ")
}

// Validate checks the config and returns ValidationErrors if anything is off.
func (c *Config) Validate() error {
	var errs ValidationErrors
	add := func(field, format string, args ...any) {
		errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.Theme != "" && c.Theme != "dark" && c.Theme != "light" {
		add("theme", "must be dark or light, got %q", c.Theme)
	}
	if strings.TrimSpace(c.Profile.Name) == "" {
		add("profile.name", "is required")
	}
	if len(c.Profile.Roles) == 0 {
		add("profile.roles", "needs at least one role")
	}
	for i, s := range c.Skills {
		if s.Percent < 0 || s.Percent > 100 {
			add(fmt.Sprintf("skills[%d].percent", i), "must be between 0-100, got %d", s.Percent)
		}
	}
	if c.Layout.MobileMaxWidth <= 0 {
		add("layout.mobile_max_width", "must be positive")
	}
	if c.Layout.CellWidth <= 0 {
		add("layout.cell_width", "must be positive")
	}
	if c.Layout.CellHeight <= 0 {
		add("layout.cell_height", "must be positive")
	}
	if c.Typewriter.TypeMS <= 0 || c.Typewriter.DeleteMS <= 0 || c.Typewriter.HoldMS < 0 {
		add("typewriter", "delays must be positive")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// applyDefaults fills zero values from Default so partial files work.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Theme == "" {
		c.Theme = d.Theme
	}
	if c.Profile.Name == "" {
		c.Profile = d.Profile
	}
	if c.Skills == nil {
		c.Skills = d.Skills
	}
	if c.Projects == nil {
		c.Projects = d.Projects
	}
	if c.Layout.MobileMaxWidth == 0 {
		c.Layout.MobileMaxWidth = d.Layout.MobileMaxWidth
	}
	if c.Layout.CellWidth == 0 {
		c.Layout.CellWidth = d.Layout.CellWidth
	}
	if c.Layout.CellHeight == 0 {
		c.Layout.CellHeight = d.Layout.CellHeight
	}
	if c.Layout.VisibleCards == 0 {
		c.Layout.VisibleCards = d.Layout.VisibleCards
	}
	if c.Typewriter == (Typewriter{}) {
		c.Typewriter = d.Typewriter
	}
	if c.Contact.ResetMS == 0 {
		c.Contact.ResetMS = d.Contact.ResetMS
	}
	if c.Resume.FileName == "" {
		c.Resume.FileName = d.Resume.FileName
	}
}

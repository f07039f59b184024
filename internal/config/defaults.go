package config

import "github.com/muurk/termfolio/internal/urls"

// Default returns the built-in portfolio used when no config file exists.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Theme:   "dark",
		Profile: Profile{
			Name:    "Christopher Muturi",
			Tagline: "I build fast, friendly things for the web and the terminal.",
			Roles:   []string{"Web Developer.", "IT Specialist.", "UI Designer.", "Problem Solver."},
			About: `I enjoy turning rough ideas into **working software** and keeping
the systems behind them healthy.

- Front-end work with a focus on motion and detail
- IT support, networking and hardware troubleshooting
- Interface design from sketch to polished screen`,
			Email: "hello@example.com",
			Links: []Link{
				{Label: "Source", URL: urls.Repository},
			},
		},
		Skills: []Skill{
			{Name: "HTML & CSS", Percent: 92},
			{Name: "JavaScript", Percent: 85},
			{Name: "Go", Percent: 70},
			{Name: "UI Design", Percent: 80},
			{Name: "IT Support", Percent: 88},
		},
		Projects: []Project{
			{
				Title:   "Portfolio v5",
				Summary: "A horizontally paged portfolio with cursor glow, a theme toggle and a typed hero line.",
				Tech:    []string{"HTML", "CSS", "JavaScript"},
			},
			{
				Title:   "Helpdesk Tracker",
				Summary: "Ticket intake and triage board for a small office IT team.",
				Tech:    []string{"Go", "SQLite"},
			},
			{
				Title:   "Network Inventory",
				Summary: "Scans a LAN segment and keeps a tidy list of devices and owners.",
				Tech:    []string{"Go", "YAML"},
			},
			{
				Title:   "Design System",
				Summary: "Reusable components and tokens shared across three client sites.",
				Tech:    []string{"Figma", "CSS"},
			},
		},
		Layout: Layout{
			MobileMaxWidth: 768,
			CellWidth:      8,
			CellHeight:     16,
			VisibleCards:   2,
		},
		Typewriter: Typewriter{TypeMS: 100, DeleteMS: 55, HoldMS: 1600},
		Contact:    Contact{ResetMS: 2500},
		Resume:     Resume{FileName: "Christopher_Muturi_Murimi_CV.docx"},
	}
}

package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/termfolio/internal/contact"
)

// Form fields in focus order
const (
	fieldName = iota
	fieldEmail
	fieldMessage
	fieldCount
)

// contactForm wraps the three bubbles inputs of the contact panel.
type contactForm struct {
	name    textinput.Model
	email   textinput.Model
	message textarea.Model

	focused bool
	field   int
	sent    bool
}

func newContactForm() contactForm {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 80
	name.Prompt = ""

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 120
	email.Prompt = ""

	message := textarea.New()
	message.Placeholder = "Say hello..."
	message.ShowLineNumbers = false
	message.CharLimit = 2000
	message.SetHeight(4)

	return contactForm{name: name, email: email, message: message}
}

// values returns the form contents.
func (f *contactForm) values() contact.Form {
	return contact.Form{
		Name:    f.name.Value(),
		Email:   f.email.Value(),
		Message: f.message.Value(),
	}
}

// setWidth sizes every input to w columns.
func (f *contactForm) setWidth(w int) {
	w = max(10, w)
	f.name.Width = w
	f.email.Width = w
	f.message.SetWidth(w)
}

// focus gives keyboard focus to the current field.
func (f *contactForm) focus() tea.Cmd {
	f.focused = true
	return f.focusField(f.field)
}

// blur releases keyboard focus.
func (f *contactForm) blur() {
	f.focused = false
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
}

// move shifts focus by delta fields, wrapping around.
func (f *contactForm) move(delta int) tea.Cmd {
	f.field = (f.field + delta + fieldCount) % fieldCount
	return f.focusField(f.field)
}

func (f *contactForm) focusField(field int) tea.Cmd {
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
	switch field {
	case fieldName:
		return f.name.Focus()
	case fieldEmail:
		return f.email.Focus()
	default:
		return f.message.Focus()
	}
}

// update forwards a message to the focused input.
func (f *contactForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.field {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldEmail:
		f.email, cmd = f.email.Update(msg)
	default:
		f.message, cmd = f.message.Update(msg)
	}
	return cmd
}

// reset clears the fields and the sent state.
func (f *contactForm) reset() {
	f.sent = false
	f.name.Reset()
	f.email.Reset()
	f.message.Reset()
}

// Package contact validates the contact form and builds the feedback shown
// after a simulated submission. Nothing is sent anywhere.
package contact

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultResetDelay is how long the success state stays up.
const DefaultResetDelay = 2500 * time.Millisecond

// SentLabel and IdleLabel are the submit button captions.
const (
	SentLabel = "✓ Sent!"
	IdleLabel = "Send Message"
)

// ErrIncomplete is returned when a field is empty after trimming.
var ErrIncomplete = errors.New("please fill in all fields")

// Form is the three-field contact form.
type Form struct {
	Name    string
	Email   string
	Message string
}

// Trimmed returns the form with surrounding whitespace removed.
func (f Form) Trimmed() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}
}

// Validate requires every field to be non-empty after trimming.
func (f Form) Validate() error {
	t := f.Trimmed()
	if t.Name == "" || t.Email == "" || t.Message == "" {
		return ErrIncomplete
	}
	return nil
}

// Submission is the feedback for an accepted form.
type Submission struct {
	Acknowledgement string
	ResetAfter      time.Duration
}

// Submit validates f and returns the acknowledgement for owner.
// A non-positive reset uses DefaultResetDelay.
func Submit(f Form, owner string, reset time.Duration) (Submission, error) {
	if err := f.Validate(); err != nil {
		return Submission{}, err
	}
	if reset <= 0 {
		reset = DefaultResetDelay
	}
	t := f.Trimmed()
	return Submission{
		Acknowledgement: fmt.Sprintf("Thanks %s! %s will reply to %s shortly.", t.Name, owner, t.Email),
		ResetAfter:      reset,
	}, nil
}

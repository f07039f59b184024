// Package typewriter cycles through a list of phrases, typing and deleting
// them one rune at a time.
package typewriter

import "time"

// Default timings.
const (
	DefaultTypeDelay   = 100 * time.Millisecond
	DefaultDeleteDelay = 55 * time.Millisecond
	DefaultHold        = 1600 * time.Millisecond
)

// Timing controls the pace of the effect.
type Timing struct {
	Type   time.Duration
	Delete time.Duration
	Hold   time.Duration
}

// DefaultTiming returns the stock pace.
func DefaultTiming() Timing {
	return Timing{Type: DefaultTypeDelay, Delete: DefaultDeleteDelay, Hold: DefaultHold}
}

// Typewriter is the effect state. The zero value is not usable; use New.
type Typewriter struct {
	words    [][]rune
	timing   Timing
	word     int
	chars    int
	deleting bool
}

// New creates a Typewriter over words. Empty words are skipped.
func New(words []string, timing Timing) *Typewriter {
	tw := &Typewriter{timing: timing}
	for _, w := range words {
		if w != "" {
			tw.words = append(tw.words, []rune(w))
		}
	}
	return tw
}

// Text returns what is currently shown.
func (t *Typewriter) Text() string {
	if len(t.words) == 0 {
		return ""
	}
	return string(t.words[t.word][:t.chars])
}

// Step advances by one rune and returns the new text and the delay before
// the next step. With no words the delay is zero and nothing changes.
func (t *Typewriter) Step() (string, time.Duration) {
	if len(t.words) == 0 {
		return "", 0
	}

	word := t.words[t.word]
	if !t.deleting {
		t.chars++
		if t.chars >= len(word) {
			t.chars = len(word)
			t.deleting = true
			return t.Text(), t.timing.Hold
		}
	} else {
		t.chars--
		if t.chars <= 0 {
			t.chars = 0
			t.deleting = false
			t.word = (t.word + 1) % len(t.words)
		}
	}

	if t.deleting {
		return t.Text(), t.timing.Delete
	}
	return t.Text(), t.timing.Type
}

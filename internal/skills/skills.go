// Package skills models the skill bars revealed on the About panel.
package skills

// Skill is one bar with its target fill in percent.
type Skill struct {
	Name    string
	Percent int
}

// Set is the collection of bars. Bars stay empty until Animate is called.
type Set struct {
	skills   []Skill
	animated bool
}

// New creates a Set. Percentages are clamped to 0..100.
func New(skills []Skill) *Set {
	s := &Set{skills: make([]Skill, len(skills))}
	for i, sk := range skills {
		sk.Percent = max(0, min(100, sk.Percent))
		s.skills[i] = sk
	}
	return s
}

// Skills returns the bars in display order.
func (s *Set) Skills() []Skill {
	return append([]Skill(nil), s.skills...)
}

// Animated reports whether the bars have been revealed.
func (s *Set) Animated() bool { return s.animated }

// Animate reveals every bar. It reports whether this call did the reveal.
func (s *Set) Animate() bool {
	if s.animated {
		return false
	}
	s.animated = true
	return true
}

// Fill returns the current fill of bar i as a fraction of 1.
func (s *Set) Fill(i int) float64 {
	if !s.animated || i < 0 || i >= len(s.skills) {
		return 0
	}
	return float64(s.skills[i].Percent) / 100
}

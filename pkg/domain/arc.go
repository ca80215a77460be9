package domain

import "time"

// ArcID identifies a registered guided arc.
type ArcID string

// Page names a screen of the demo surface. Rendering is the host's problem;
// the engine only routes intents at page granularity.
type Page string

// Step is one beat of a guided arc. Steps are immutable after registration;
// the step index is the unit of navigation.
type Step struct {
	TargetPage       Page          `yaml:"target_page"`
	Narration        string        `yaml:"narration"`
	HighlightTarget  string        `yaml:"highlight_target"`
	AutoAdvanceAfter time.Duration `yaml:"auto_advance_after"`
}

// Arc is a pre-scripted walkthrough across pages. Read-only script data
// supplied at build time.
type Arc struct {
	ID       ArcID   `yaml:"id"`
	Title    string  `yaml:"title"`
	Audience Persona `yaml:"audience"`
	Steps    []Step  `yaml:"steps"`
}

// LastStep returns the index of the final step, or -1 for an empty arc.
func (a *Arc) LastStep() int {
	return len(a.Steps) - 1
}

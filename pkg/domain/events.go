package domain

// EventName is the key under which subscribers register on the state bus.
type EventName string

const (
	EventIndustryChanged   EventName = "industry_changed"
	EventPersonaChanged    EventName = "persona_changed"
	EventThemeChanged      EventName = "theme_changed"
	EventAIModeChanged     EventName = "ai_mode_changed"
	EventArcChanged        EventName = "arc_changed"
	EventStepChanged       EventName = "step_changed"
	EventConnectionChanged EventName = "connection_changed"
	EventNavigate          EventName = "navigate"
	EventNarrate           EventName = "narrate"
	EventHighlight         EventName = "highlight"
)

// IndustryChanged is published after a successful industry switch.
type IndustryChanged struct {
	Industry Industry `json:"industry"`
}

// PersonaChanged is published after a successful persona switch.
type PersonaChanged struct {
	Persona Persona `json:"persona"`
}

// ThemeChanged is published after a theme toggle.
type ThemeChanged struct {
	Theme Theme `json:"theme"`
}

// AIModeChanged is published after an AI mode toggle.
type AIModeChanged struct {
	Mode AIMode `json:"mode"`
}

// ArcChanged is published when the demo mode or current arc changes.
// Arc is empty when the demo returns to free mode.
type ArcChanged struct {
	Mode DemoMode `json:"mode"`
	Arc  ArcID    `json:"arc,omitempty"`
}

// StepChanged is published when the read pointer moves inside an arc.
type StepChanged struct {
	Arc  ArcID `json:"arc"`
	Step int   `json:"step"`
}

// ConnectionChanged is published when a platform's connection status
// reaches a new externally visible phase.
type ConnectionChanged struct {
	Platform Platform         `json:"platform"`
	Status   ConnectionStatus `json:"status"`
}

// Navigate asks the rendering layer to switch to a page.
type Navigate struct {
	Page Page `json:"page"`
}

// Narrate carries the narration text for the current arc step.
type Narrate struct {
	Arc       ArcID  `json:"arc"`
	Step      int    `json:"step"`
	Narration string `json:"narration"`
}

// Highlight asks the rendering layer to spotlight an element.
type Highlight struct {
	Target string `json:"target"`
}

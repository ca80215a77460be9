package domain

// Industry selects which sample dataset backs the demo.
type Industry string

const (
	IndustryConsulting  Industry = "consulting"
	IndustryTech        Industry = "tech"
	IndustryHospitality Industry = "hospitality"
)

// Industries lists the closed set of valid industries, in registration order.
func Industries() []Industry {
	return []Industry{IndustryConsulting, IndustryTech, IndustryHospitality}
}

// Valid reports whether the industry is a member of the closed set.
func (i Industry) Valid() bool {
	switch i {
	case IndustryConsulting, IndustryTech, IndustryHospitality:
		return true
	}
	return false
}

// Persona is the role-based view scoping which pages and data are shown.
type Persona string

const (
	PersonaCEO         Persona = "ceo"
	PersonaOps         Persona = "ops"
	PersonaEngineering Persona = "engineering"
	PersonaNewHire     Persona = "new-hire"
)

// Personas lists the closed set of valid personas, in registration order.
func Personas() []Persona {
	return []Persona{PersonaCEO, PersonaOps, PersonaEngineering, PersonaNewHire}
}

// Valid reports whether the persona is a member of the closed set.
func (p Persona) Valid() bool {
	switch p {
	case PersonaCEO, PersonaOps, PersonaEngineering, PersonaNewHire:
		return true
	}
	return false
}

// DemoMode distinguishes free exploration from a guided arc run.
type DemoMode string

const (
	ModeFree   DemoMode = "free"
	ModeGuided DemoMode = "guided"
)

// AIMode selects between scripted lookups and a live backend.
// Only scripted is implemented; live exists so the toggle round-trips.
type AIMode string

const (
	AIScripted AIMode = "scripted"
	AILive     AIMode = "live"
)

// Toggle returns the other AI mode.
func (m AIMode) Toggle() AIMode {
	if m == AIScripted {
		return AILive
	}
	return AIScripted
}

// Theme is the visual theme of the rendering layer.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Valid reports whether the theme is dark or light.
func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
